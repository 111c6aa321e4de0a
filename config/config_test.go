package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	scorecarddomain "github.com/Black-And-White-Club/golphy/app/modules/scorecard/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoadConfig_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)

	assert.Equal(t, scorecarddomain.DefaultHoles, cfg.Game.DefaultHoles)
	assert.Equal(t, scorecarddomain.DefaultPar, cfg.ParTable())
	assert.Equal(t, scorecarddomain.DefaultPalette, cfg.Palette())
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Empty(t, cfg.Observability.MetricsAddress)
}

func TestLoadConfig_File(t *testing.T) {
	path := writeConfig(t, `
game:
  default_holes: 9
  par: [3, 3, 4, 4, 5, 3, 4, 4, 3]
logging:
  level: debug
  format: json
observability:
  metrics_address: ":9100"
`)
	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, 9, cfg.Game.DefaultHoles)
	assert.Equal(t, scorecarddomain.ParTable{3, 3, 4, 4, 5, 3, 4, 4, 3}, cfg.ParTable())
	assert.Len(t, cfg.Game.Palette, 8, "palette keeps its default when omitted")
	assert.Equal(t, "json", cfg.Logging.Format)
	assert.Equal(t, ":9100", cfg.Observability.MetricsAddress)
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	path := writeConfig(t, "logging:\n  level: warn\n")
	t.Setenv("GOLPHY_LOG_LEVEL", "debug")
	t.Setenv("GOLPHY_DEFAULT_HOLES", "12")
	t.Setenv("GOLPHY_PAR", "4, 4,5")
	t.Setenv("METRICS_ADDRESS", "127.0.0.1:9200")
	t.Setenv("ENV", "test")

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, 12, cfg.Game.DefaultHoles)
	assert.Equal(t, []int{4, 4, 5}, cfg.Game.Par)
	assert.Equal(t, "127.0.0.1:9200", cfg.Observability.MetricsAddress)
	assert.Equal(t, "test", cfg.Observability.Environment)
}

func TestLoadConfig_Errors(t *testing.T) {
	tests := []struct {
		name string
		body string
		env  map[string]string
	}{
		{name: "bad yaml", body: "game: [\n"},
		{name: "bad holes env", env: map[string]string{"GOLPHY_DEFAULT_HOLES": "lots"}},
		{name: "bad par env", env: map[string]string{"GOLPHY_PAR": "4,x"}},
		{name: "par out of range", body: "game:\n  par: [4, 9]\n"},
		{name: "too many holes", body: "game:\n  par: [4,4,4,4,4,4,4,4,4,4,4,4,4,4,4,4,4,4,4]\n"},
		{name: "short palette", body: "game:\n  palette: ['#000000']\n"},
		{name: "bad color", body: "game:\n  palette: [red, '#000001', '#000002', '#000003', '#000004', '#000005', '#000006', '#000007']\n"},
		{name: "repeated color", body: "game:\n  palette: ['#111111', '#111111', '#111111', '#111111', '#111111', '#111111', '#111111', '#111111']\n"},
		{name: "repeated color ignoring case", body: "game:\n  palette: ['#AABBCC', '#aabbcc', '#000002', '#000003', '#000004', '#000005', '#000006', '#000007']\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			_, err := LoadConfig(writeConfig(t, tt.body))
			assert.Error(t, err)
		})
	}
}

func TestParsePar(t *testing.T) {
	par, err := ParsePar("3,4, 5")
	require.NoError(t, err)
	assert.Equal(t, []int{3, 4, 5}, par)

	_, err = ParsePar("")
	assert.Error(t, err)
}

func TestLoadEnvFile(t *testing.T) {
	// t.Setenv restores the original values once the test ends.
	t.Setenv("GOLPHY_DEFAULT_HOLES", "")
	t.Setenv("GOLPHY_LOG_LEVEL", "warn")
	require.NoError(t, os.Unsetenv("GOLPHY_DEFAULT_HOLES"))

	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("GOLPHY_DEFAULT_HOLES=7\nGOLPHY_LOG_LEVEL=debug\n"), 0o600))
	require.NoError(t, LoadEnvFile(path))

	cfg, err := LoadConfig("")
	require.NoError(t, err)
	assert.Equal(t, 7, cfg.Game.DefaultHoles)
	assert.Equal(t, "warn", cfg.Logging.Level, "existing environment wins")

	assert.NoError(t, LoadEnvFile(filepath.Join(t.TempDir(), "missing.env")))
	assert.NoError(t, LoadEnvFile(""))
}

func TestValidate_DistinctPaletteFillsRoster(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())

	palette := cfg.Palette()
	players := make([]scorecarddomain.Player, 0, scorecarddomain.MaxPlayers)
	for i := 0; i < scorecarddomain.MaxPlayers; i++ {
		color, ok := palette.NextFree(players)
		require.True(t, ok, "slot %d has a free color", i+1)
		players = append(players, scorecarddomain.Player{Color: color})
	}
	_, ok := palette.NextFree(players)
	assert.False(t, ok)

	cfg.Game.Palette[7] = strings.ToUpper(cfg.Game.Palette[0])
	assert.ErrorContains(t, cfg.Validate(), "repeated")
}
