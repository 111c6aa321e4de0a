package config

import (
	"errors"
	"fmt"
	"os"
	"regexp"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	scorecarddomain "github.com/Black-And-White-Club/golphy/app/modules/scorecard/domain"
)

// Config struct to hold the configuration settings
type Config struct {
	Game          GameConfig          `yaml:"game"`
	Logging       LoggingConfig       `yaml:"logging"`
	Observability ObservabilityConfig `yaml:"observability"`
}

// GameConfig holds the course and roster settings.
type GameConfig struct {
	DefaultHoles int      `yaml:"default_holes"`
	Par          []int    `yaml:"par"`
	Palette      []string `yaml:"palette"`
}

// LoggingConfig holds log handler settings.
type LoggingConfig struct {
	Level  string `yaml:"level"`  // debug|info|warn|error
	Format string `yaml:"format"` // text|json
}

// ObservabilityConfig holds configuration for observability components
type ObservabilityConfig struct {
	MetricsAddress string `yaml:"metrics_address"` // empty disables the metrics server
	Environment    string `yaml:"environment"`
}

var hexColor = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

// Default returns the built-in configuration.
func Default() *Config {
	palette := make([]string, 0, scorecarddomain.MaxPlayers)
	for _, c := range scorecarddomain.DefaultPalette {
		palette = append(palette, string(c))
	}
	return &Config{
		Game: GameConfig{
			DefaultHoles: scorecarddomain.DefaultHoles,
			Par:          scorecarddomain.DefaultPar.Clone(),
			Palette:      palette,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

// LoadConfig loads the configuration from a YAML file. A missing file is not an
// error: the defaults are used instead. Environment variables override both.
func LoadConfig(filename string) (*Config, error) {
	cfg := Default()

	if filename != "" {
		data, err := os.ReadFile(filename)
		switch {
		case errors.Is(err, os.ErrNotExist):
		case err != nil:
			return nil, fmt.Errorf("failed to read config: %w", err)
		default:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("failed to unmarshal config: %w", err)
			}
		}
	}

	if err := applyEnv(cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadEnvFile exports the variables in a dotenv file. Variables already set in
// the environment keep their values. A missing file is ignored.
func LoadEnvFile(path string) error {
	if path == "" {
		return nil
	}
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("failed to load %s: %w", path, err)
	}
	return nil
}

// --- OVERRIDE WITH ENV VARS IF PRESENT ---
func applyEnv(cfg *Config) error {
	if v := os.Getenv("GOLPHY_LOG_LEVEL"); v != "" {
		cfg.Logging.Level = v
	}
	if v := os.Getenv("GOLPHY_LOG_FORMAT"); v != "" {
		cfg.Logging.Format = v
	}
	if v := os.Getenv("GOLPHY_DEFAULT_HOLES"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid GOLPHY_DEFAULT_HOLES value: %w", err)
		}
		cfg.Game.DefaultHoles = n
	}
	if v := os.Getenv("GOLPHY_PAR"); v != "" {
		par, err := ParsePar(v)
		if err != nil {
			return fmt.Errorf("invalid GOLPHY_PAR value: %w", err)
		}
		cfg.Game.Par = par
	}
	if v := os.Getenv("METRICS_ADDRESS"); v != "" {
		cfg.Observability.MetricsAddress = v
	}
	if v := os.Getenv("ENV"); v != "" {
		cfg.Observability.Environment = v
	}
	return nil
}

// ParsePar parses a comma separated par list such as "4,3,5".
func ParsePar(raw string) ([]int, error) {
	fields := strings.Split(raw, ",")
	par := make([]int, 0, len(fields))
	for _, f := range fields {
		n, err := strconv.Atoi(strings.TrimSpace(f))
		if err != nil {
			return nil, fmt.Errorf("par %q: %w", f, err)
		}
		par = append(par, n)
	}
	return par, nil
}

// Validate checks the par table and palette.
func (c *Config) Validate() error {
	if n := len(c.Game.Par); n < scorecarddomain.MinHoles || n > scorecarddomain.MaxHoles {
		return fmt.Errorf("par table must have %d..%d entries, got %d", scorecarddomain.MinHoles, scorecarddomain.MaxHoles, n)
	}
	for i, p := range c.Game.Par {
		if p < 2 || p > 7 {
			return fmt.Errorf("par for hole %d must be between 2 and 7, got %d", i+1, p)
		}
	}
	if len(c.Game.Palette) != scorecarddomain.MaxPlayers {
		return fmt.Errorf("palette must have exactly %d colors, got %d", scorecarddomain.MaxPlayers, len(c.Game.Palette))
	}
	seen := make(map[string]bool, len(c.Game.Palette))
	for _, color := range c.Game.Palette {
		if !hexColor.MatchString(color) {
			return fmt.Errorf("palette color %q is not a #rrggbb value", color)
		}
		// Colors identify player slots, so each must be distinct.
		key := strings.ToLower(color)
		if seen[key] {
			return fmt.Errorf("palette color %q is repeated", color)
		}
		seen[key] = true
	}
	return nil
}

// ParTable returns the configured par values.
func (c *Config) ParTable() scorecarddomain.ParTable {
	return scorecarddomain.ParTable(c.Game.Par).Clone()
}

// Palette returns the configured player colors. Validate must have passed.
func (c *Config) Palette() scorecarddomain.Palette {
	var p scorecarddomain.Palette
	for i := range p {
		p[i] = scorecarddomain.Color(c.Game.Palette[i])
	}
	return p
}
