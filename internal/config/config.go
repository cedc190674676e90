package config

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/atomicstack/gridselect/internal/app"
	"github.com/atomicstack/gridselect/internal/menu"
	"github.com/atomicstack/gridselect/internal/ui/state"
	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/pflag"
)

// Config captures runtime configuration for the application.
type Config struct {
	App        app.Config
	Logging    Logging
	ConfigFile string
	ListKeys   bool
	Flags      map[string]string
	Args       []string
	Items      []string
}

type Logging struct {
	FilePath string
	Trace    bool
}

const (
	envTop          = "GRIDSELECT_TOP"
	envBottom       = "GRIDSELECT_BOTTOM"
	envWidth        = "GRIDSELECT_WIDTH"
	envFrontend     = "GRIDSELECT_FRONTEND"
	envInstructions = "GRIDSELECT_INSTRUCTIONS"
	envTrace        = "GRIDSELECT_TRACE"
	envLogFile      = "GRIDSELECT_LOG_FILE"
	envConfig       = "GRIDSELECT_CONFIG"
)

// fileConfig mirrors the TOML configuration file. Unset keys stay nil so
// environment and defaults can fill them.
type fileConfig struct {
	Frontend     *string `toml:"frontend"`
	Instructions *bool   `toml:"instructions"`
	Viewport     struct {
		Top    *int `toml:"top"`
		Bottom *int `toml:"bottom"`
		Width  *int `toml:"width"`
	} `toml:"viewport"`
	Style struct {
		Normal             string `toml:"normal"`
		SelectedForeground string `toml:"selected_foreground"`
		SelectedBackground string `toml:"selected_background"`
	} `toml:"style"`
	Keys    map[string][]string `toml:"keys"`
	Logging struct {
		File  *string `toml:"file"`
		Trace *bool   `toml:"trace"`
	} `toml:"logging"`
}

// Load parses configuration from CLI arguments and environment variables.
func Load() (Config, error) {
	return LoadArgs(os.Args[1:], os.Environ())
}

// LoadArgs allows tests to supply specific args/environment. Precedence is
// flags, then environment, then the config file, then defaults.
func LoadArgs(args []string, environ []string) (Config, error) {
	env := parseEnv(environ)

	fs := pflag.NewFlagSet("gridselect", pflag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.Int("top", 0, "first screen row of the grid")
	fs.Int("bottom", app.AutoBottom, "last screen row of the grid (-1 fits the terminal)")
	fs.Int("width", 0, "grid width in cells (0 uses terminal width)")
	fs.String("frontend", app.FrontendTea, "display frontend: tea or tcell")
	fs.Bool("instructions", true, "show the key instructions banner below the grid")
	fs.Bool("trace", false, "enable verbose JSON trace logging")
	fs.String("log-file", "", "path to the log file")
	fs.StringP("config", "c", "", "path to a TOML config file")
	listKeys := fs.Bool("list-keys", false, "print the key bindings and exit")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	var file fileConfig
	configPath := stringFrom(fs, "config", env, envConfig, nil)
	if configPath != "" {
		data, err := os.ReadFile(configPath)
		if err != nil {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
		if err := toml.Unmarshal(data, &file); err != nil {
			return Config{}, fmt.Errorf("parse config %s: %w", configPath, err)
		}
	}

	top, err := intFrom(fs, "top", env, envTop, file.Viewport.Top)
	if err != nil {
		return Config{}, err
	}
	bottom, err := intFrom(fs, "bottom", env, envBottom, file.Viewport.Bottom)
	if err != nil {
		return Config{}, err
	}
	width, err := intFrom(fs, "width", env, envWidth, file.Viewport.Width)
	if err != nil {
		return Config{}, err
	}
	instructions, err := boolFrom(fs, "instructions", env, envInstructions, file.Instructions)
	if err != nil {
		return Config{}, err
	}
	trace, err := boolFrom(fs, "trace", env, envTrace, file.Logging.Trace)
	if err != nil {
		return Config{}, err
	}
	frontend := stringFrom(fs, "frontend", env, envFrontend, file.Frontend)
	logFile := stringFrom(fs, "log-file", env, envLogFile, file.Logging.File)

	cfg := Config{
		App: app.Config{
			Top:          top,
			Bottom:       bottom,
			Width:        width,
			Frontend:     strings.ToLower(frontend),
			Instructions: instructions,
			Keys:         file.Keys,
			Style: menu.Style{
				Normal:             file.Style.Normal,
				SelectedForeground: file.Style.SelectedForeground,
				SelectedBackground: file.Style.SelectedBackground,
			},
		},
		Logging: Logging{
			FilePath: logFile,
			Trace:    trace,
		},
		ConfigFile: configPath,
		ListKeys:   *listKeys,
		Flags: map[string]string{
			"top":          strconv.Itoa(top),
			"bottom":       strconv.Itoa(bottom),
			"width":        strconv.Itoa(width),
			"frontend":     frontend,
			"instructions": strconv.FormatBool(instructions),
			"config":       configPath,
		},
		Args:  append([]string(nil), args...),
		Items: append([]string(nil), fs.Args()...),
	}

	return cfg, nil
}

func parseEnv(environ []string) map[string]string {
	values := make(map[string]string, len(environ))
	for _, entry := range environ {
		if entry == "" {
			continue
		}
		parts := strings.SplitN(entry, "=", 2)
		if len(parts) != 2 {
			continue
		}
		values[parts[0]] = parts[1]
	}
	return values
}

func envValue(env map[string]string, key string) (string, bool) {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return "", false
	}
	return strings.TrimSpace(v), true
}

func stringFrom(fs *pflag.FlagSet, name string, env map[string]string, key string, file *string) string {
	if fs.Changed(name) {
		v, _ := fs.GetString(name)
		return v
	}
	if v, ok := envValue(env, key); ok {
		return v
	}
	if file != nil {
		return *file
	}
	v, _ := fs.GetString(name)
	return v
}

func intFrom(fs *pflag.FlagSet, name string, env map[string]string, key string, file *int) (int, error) {
	if fs.Changed(name) {
		return fs.GetInt(name)
	}
	if v, ok := envValue(env, key); ok {
		parsed, err := strconv.Atoi(v)
		if err != nil {
			return 0, fmt.Errorf("%s must be an integer (got %q)", key, v)
		}
		return parsed, nil
	}
	if file != nil {
		return *file, nil
	}
	return fs.GetInt(name)
}

func boolFrom(fs *pflag.FlagSet, name string, env map[string]string, key string, file *bool) (bool, error) {
	if fs.Changed(name) {
		return fs.GetBool(name)
	}
	if v, ok := envValue(env, key); ok {
		parsed, err := strconv.ParseBool(v)
		if err != nil {
			return false, fmt.Errorf("%s must be a boolean (got %q)", key, v)
		}
		return parsed, nil
	}
	if file != nil {
		return *file, nil
	}
	return fs.GetBool(name)
}

// MustLoad returns configuration or exits.
func MustLoad() Config {
	cfg, err := Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(2)
	}
	return cfg
}

// Validate rejects settings the grid cannot be built from.
func Validate(cfg Config) error {
	a := cfg.App
	if a.Top < 0 {
		return fmt.Errorf("top must be >= 0 (got %d)", a.Top)
	}
	if a.Bottom < app.AutoBottom {
		return fmt.Errorf("bottom must be >= 0, or %d to fit the terminal (got %d)", app.AutoBottom, a.Bottom)
	}
	if a.Bottom != app.AutoBottom && a.Bottom < a.Top {
		return fmt.Errorf("bottom %d is above top %d", a.Bottom, a.Top)
	}
	if a.Width < 0 {
		return fmt.Errorf("width must be >= 0 (got %d)", a.Width)
	}
	switch a.Frontend {
	case app.FrontendTea, app.FrontendTcell:
	default:
		return fmt.Errorf("frontend must be %q or %q (got %q)", app.FrontendTea, app.FrontendTcell, a.Frontend)
	}
	for name := range a.Keys {
		if _, ok := state.ParseSignal(name); !ok {
			return fmt.Errorf("unknown key binding %q", name)
		}
	}
	return nil
}
