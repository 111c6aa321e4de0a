package console

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	scorecardservice "github.com/Black-And-White-Club/golphy/app/modules/scorecard/application"
	scorecarddomain "github.com/Black-And-White-Club/golphy/app/modules/scorecard/domain"
	sessionservice "github.com/Black-And-White-Club/golphy/app/modules/session/application"
)

// FileExporter writes the card to a file chosen by name.
type FileExporter interface {
	ExportFile(filename string, card scorecardservice.Service) error
}

// Console is a line-oriented front end for a session. It renders the view the
// session asks for and turns typed commands into session intents.
type Console struct {
	session  sessionservice.Service
	exporter FileExporter
	in       io.Reader
	out      io.Writer
	logger   *slog.Logger
}

// NewConsole creates a console reading commands from in and writing views to out.
// exporter may be nil, which disables the export command.
func NewConsole(session sessionservice.Service, exporter FileExporter, in io.Reader, out io.Writer, logger *slog.Logger) *Console {
	if logger == nil {
		logger = slog.Default()
	}
	return &Console{
		session:  session,
		exporter: exporter,
		in:       in,
		out:      out,
		logger:   logger,
	}
}

// Run renders the current view and processes commands until quit, end of
// input or ctx is cancelled.
func (c *Console) Run(ctx context.Context) error {
	c.Render()

	scanner := bufio.NewScanner(c.in)
	for {
		fmt.Fprint(c.out, "> ")
		if !scanner.Scan() {
			break
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if quit := c.Execute(ctx, scanner.Text()); quit {
			return nil
		}
	}
	fmt.Fprintln(c.out)
	return scanner.Err()
}

// Execute runs a single command line and reports whether the console should exit.
func (c *Console) Execute(ctx context.Context, line string) bool {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return false
	}
	cmd, args := strings.ToLower(fields[0]), fields[1:]

	switch cmd {
	case "quit", "exit", "q":
		return true
	case "help", "?":
		c.printHelp()
		return false
	case "leaderboard", "lb":
		c.renderLeaderboard(c.session.Aggregates().Leaderboard())
		return false
	case "card":
		c.renderGrid(c.session.Aggregates().Grid())
		return false
	case "export":
		c.export(args)
		return false
	}

	if !c.dispatch(ctx, cmd, args) {
		return false
	}
	c.Render()
	return false
}

// dispatch sends session intents. It returns false when the command line could
// not be turned into one.
func (c *Console) dispatch(ctx context.Context, cmd string, args []string) bool {
	switch cmd {
	case "add":
		if len(args) == 0 {
			c.usage("add <name>")
			return false
		}
		c.session.RegisterPlayer(ctx, strings.Join(args, " "))
	case "remove", "rm":
		player, ok := c.playerArg(args, "remove <n>")
		if !ok {
			return false
		}
		c.session.RemovePlayer(ctx, player.ID)
	case "holes":
		if len(args) != 1 {
			c.usage("holes <n>")
			return false
		}
		c.session.SetTotalHolesInput(ctx, args[0])
	case "start":
		c.session.StartGame(ctx)
	case "score", "s":
		if len(args) != 3 {
			c.usage("score <n> <hole> <strokes>")
			return false
		}
		player, ok := c.playerArg(args[:1], "score <n> <hole> <strokes>")
		if !ok {
			return false
		}
		hole, err := strconv.Atoi(args[1])
		if err != nil {
			fmt.Fprintf(c.out, "hole %q is not a number\n", args[1])
			return false
		}
		c.session.SetStrokeInput(ctx, player.ID, hole, args[2])
	case "+", "-":
		player, ok := c.playerArg(args, cmd+" <n>")
		if !ok {
			return false
		}
		delta := 1
		if cmd == "-" {
			delta = -1
		}
		c.session.AdjustStroke(ctx, player.ID, delta)
	case "next", "n":
		c.session.NextHole(ctx)
	case "prev", "p":
		c.session.PrevHole(ctx)
	case "view", "v":
		c.session.ToggleView(ctx)
	default:
		fmt.Fprintf(c.out, "unknown command %q, type help\n", cmd)
		return false
	}
	return true
}

// playerArg resolves a 1-based roster position.
func (c *Console) playerArg(args []string, usage string) (scorecarddomain.Player, bool) {
	if len(args) != 1 {
		c.usage(usage)
		return scorecarddomain.Player{}, false
	}
	players := c.session.Players()
	n, err := strconv.Atoi(args[0])
	if err != nil || n < 1 || n > len(players) {
		fmt.Fprintf(c.out, "no player %s (roster has %d)\n", args[0], len(players))
		return scorecarddomain.Player{}, false
	}
	return players[n-1], true
}

func (c *Console) export(args []string) {
	if len(args) != 1 {
		c.usage("export <file.csv|file.xlsx|file.png>")
		return
	}
	if c.exporter == nil {
		fmt.Fprintln(c.out, "export is not available")
		return
	}
	if err := c.exporter.ExportFile(args[0], c.session.Aggregates()); err != nil {
		c.logger.Error("Export failed", slog.String("file", args[0]), slog.Any("error", err))
		fmt.Fprintf(c.out, "export failed: %v\n", err)
		return
	}
	fmt.Fprintf(c.out, "exported %s\n", args[0])
}

func (c *Console) usage(u string) {
	fmt.Fprintf(c.out, "usage: %s\n", u)
}

func (c *Console) printHelp() {
	fmt.Fprint(c.out, `setup:
  add <name>                  register a player
  remove <n>                  remove player n
  holes <n>                   set the number of holes (1-18)
  start                       start the round
play:
  score <n> <hole> <strokes>  record strokes (0 clears)
  + <n> / - <n>               adjust player n on the current hole
  next / prev                 move between holes
  view                        toggle quick entry and full scorecard
any time:
  card                        print the full scorecard
  leaderboard                 print the leaderboard
  export <file>               write .csv, .xlsx or .png
  help                        show this help
  quit                        exit
`)
}
