package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/atomicstack/gridselect/internal/app"
	"github.com/atomicstack/gridselect/internal/menu"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadArgsDefaults(t *testing.T) {
	cfg, err := LoadArgs(nil, nil)
	require.NoError(t, err)
	assert.Equal(t, app.FrontendTea, cfg.App.Frontend)
	assert.True(t, cfg.App.Instructions)
	assert.Zero(t, cfg.App.Top)
	assert.Equal(t, app.AutoBottom, cfg.App.Bottom)
	assert.Empty(t, cfg.Items)
	assert.False(t, cfg.Logging.Trace)
	require.NoError(t, Validate(cfg))
}

func TestLoadArgsFlagsAndItems(t *testing.T) {
	cfg, err := LoadArgs([]string{"--top", "2", "--bottom=10", "--frontend", "tcell", "--instructions=false", "alpha", "beta"}, nil)
	require.NoError(t, err)
	assert.Equal(t, 2, cfg.App.Top)
	assert.Equal(t, 10, cfg.App.Bottom)
	assert.Equal(t, app.FrontendTcell, cfg.App.Frontend)
	assert.False(t, cfg.App.Instructions)
	assert.Equal(t, []string{"alpha", "beta"}, cfg.Items)
	assert.Equal(t, "10", cfg.Flags["bottom"])
}

func TestLoadArgsEnvironment(t *testing.T) {
	cfg, err := LoadArgs([]string{"--width", "50"}, []string{
		"GRIDSELECT_WIDTH=90",
		"GRIDSELECT_TOP=3",
		"GRIDSELECT_TRACE=true",
		"GRIDSELECT_LOG_FILE=/tmp/grid.log",
	})
	require.NoError(t, err)
	assert.Equal(t, 50, cfg.App.Width, "flags win over environment")
	assert.Equal(t, 3, cfg.App.Top)
	assert.True(t, cfg.Logging.Trace)
	assert.Equal(t, "/tmp/grid.log", cfg.Logging.FilePath)
}

func TestLoadArgsBadEnvironment(t *testing.T) {
	_, err := LoadArgs(nil, []string{"GRIDSELECT_TOP=abc"})
	assert.ErrorContains(t, err, "GRIDSELECT_TOP must be an integer")
}

func TestLoadArgsConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "grid.toml")
	data := `
frontend = "tcell"
instructions = false

[viewport]
top = 4
width = 60

[style]
normal = "7"
selected_background = "#005f87"

[keys]
move_down = ["down", "j"]
cancel = ["q"]

[logging]
trace = true
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	cfg, err := LoadArgs([]string{"-c", path, "--top", "1"}, []string{"GRIDSELECT_WIDTH=70"})
	require.NoError(t, err)
	assert.Equal(t, app.FrontendTcell, cfg.App.Frontend)
	assert.False(t, cfg.App.Instructions)
	assert.Equal(t, 1, cfg.App.Top, "flag beats file")
	assert.Equal(t, 70, cfg.App.Width, "environment beats file")
	assert.Equal(t, menu.Style{Normal: "7", SelectedBackground: "#005f87"}, cfg.App.Style)
	assert.Equal(t, []string{"down", "j"}, cfg.App.Keys["move_down"])
	assert.True(t, cfg.Logging.Trace)
	assert.Equal(t, path, cfg.ConfigFile)
	require.NoError(t, Validate(cfg))
}

func TestLoadArgsMissingConfigFile(t *testing.T) {
	_, err := LoadArgs(nil, []string{"GRIDSELECT_CONFIG=/nonexistent/grid.toml"})
	assert.ErrorContains(t, err, "read config")
}

func TestLoadArgsUnknownFlag(t *testing.T) {
	_, err := LoadArgs([]string{"--socket", "x"}, nil)
	assert.Error(t, err)
}

func TestLoadArgsSingleRowAtTop(t *testing.T) {
	cfg, err := LoadArgs([]string{"--top", "0", "--bottom", "0"}, nil)
	require.NoError(t, err)
	assert.Equal(t, 0, cfg.App.Top)
	assert.Equal(t, 0, cfg.App.Bottom, "an explicit zero bottom is a row, not auto")
	require.NoError(t, Validate(cfg))
}

func TestValidate(t *testing.T) {
	base := Config{App: app.Config{Frontend: app.FrontendTea}}
	require.NoError(t, Validate(base))

	cases := map[string]func(*Config){
		"negative top":    func(c *Config) { c.App.Top = -1 },
		"bottom above":    func(c *Config) { c.App.Top, c.App.Bottom = 5, 2 },
		"bottom sentinel": func(c *Config) { c.App.Bottom = -2 },
		"negative width":  func(c *Config) { c.App.Width = -3 },
		"unknown engine":  func(c *Config) { c.App.Frontend = "gtk" },
		"unknown binding": func(c *Config) { c.App.Keys = map[string][]string{"jump": {"x"}} },
	}
	for name, mutate := range cases {
		cfg := base
		mutate(&cfg)
		assert.Error(t, Validate(cfg), name)
	}
}
