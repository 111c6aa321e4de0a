package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/Black-And-White-Club/golphy/app/modules/session"
	"github.com/Black-And-White-Club/golphy/app/observability"
	"github.com/Black-And-White-Club/golphy/config"
	"github.com/urfave/cli/v2"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newApp(os.Stdin, os.Stdout).RunContext(ctx, os.Args); err != nil {
		log.Fatal(err)
	}
}

func newApp(in io.Reader, out io.Writer) *cli.App {
	configFlag := &cli.StringFlag{
		Name:    "config",
		Aliases: []string{"c"},
		Value:   "config.yaml",
		Usage:   "path to the configuration file",
		EnvVars: []string{"GOLPHY_CONFIG"},
	}

	return &cli.App{
		Name:      "golphy",
		Usage:     "keep score for a round of golf",
		Reader:    in,
		Writer:    out,
		ErrWriter: os.Stderr,
		Commands: []*cli.Command{
			newPlayCommand(configFlag),
			newParCommand(configFlag),
		},
	}
}

func newPlayCommand(configFlag cli.Flag) *cli.Command {
	return &cli.Command{
		Name:  "play",
		Usage: "start an interactive scoring session",
		Flags: []cli.Flag{
			configFlag,
			&cli.IntFlag{Name: "holes", Usage: "number of holes (1-18), overrides the configured default"},
			&cli.StringSliceFlag{Name: "player", Aliases: []string{"p"}, Usage: "register a player (repeatable)"},
			&cli.BoolFlag{Name: "start", Usage: "start the round immediately"},
			&cli.StringFlag{Name: "env-file", Value: ".env", Usage: "dotenv file with GOLPHY_* overrides"},
		},
		Action: func(c *cli.Context) error {
			if err := config.LoadEnvFile(c.String("env-file")); err != nil {
				return err
			}
			cfg, err := config.LoadConfig(c.String("config"))
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}

			obs, err := observability.New(observability.Config{
				LogLevel:    cfg.Logging.Level,
				LogFormat:   cfg.Logging.Format,
				Environment: cfg.Observability.Environment,
				Output:      c.App.ErrWriter,
			})
			if err != nil {
				return fmt.Errorf("failed to initialize observability: %w", err)
			}

			module, err := session.NewSessionModule(c.Context, cfg, obs, c.App.Reader, c.App.Writer)
			if err != nil {
				return err
			}
			defer module.Close()

			module.Seed(c.Context, c.StringSlice("player"), c.Int("holes"), c.Bool("start"))
			return module.Run(c.Context)
		},
	}
}

func newParCommand(configFlag cli.Flag) *cli.Command {
	return &cli.Command{
		Name:  "par",
		Usage: "print the configured par table",
		Flags: []cli.Flag{configFlag},
		Action: func(c *cli.Context) error {
			cfg, err := config.LoadConfig(c.String("config"))
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}

			par := cfg.ParTable()
			total := 0
			for i, p := range par {
				fmt.Fprintf(c.App.Writer, "%2d  %d\n", i+1, p)
				total += p
			}
			fmt.Fprintf(c.App.Writer, "total %d over %d holes\n", total, len(par))
			return nil
		},
	}
}
