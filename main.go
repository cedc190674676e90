package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/atomicstack/gridselect/internal/app"
	"github.com/atomicstack/gridselect/internal/config"
	"github.com/atomicstack/gridselect/internal/logging"
	"github.com/atomicstack/gridselect/internal/logging/events"
	"github.com/atomicstack/gridselect/internal/menu"
	"github.com/atomicstack/gridselect/internal/ui"
	"golang.org/x/term"
)

const (
	exitCancelled = 1
	exitConfig    = 2
	exitFailure   = 3
)

func main() {
	runtimeCfg := config.MustLoad()
	if err := config.Validate(runtimeCfg); err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(exitConfig)
	}
	logging.Configure(runtimeCfg.Logging.FilePath)
	logging.SetTraceEnabled(runtimeCfg.Logging.Trace)

	if runtimeCfg.ListKeys {
		keys, err := ui.DefaultKeyMap().Override(runtimeCfg.App.Keys)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
			os.Exit(exitConfig)
		}
		fmt.Println(strings.Join(keys.Describe(), "\n"))
		return
	}

	tty := collectTTYDetails()
	traceStartup(runtimeCfg, tty)

	items, source, err := loadItems(runtimeCfg.Items, os.Stdin, !tty.probe("stdin").IsTerminal)
	if err != nil {
		logging.Error(err)
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(exitFailure)
	}
	events.App.Items(source, len(items))
	runtimeCfg.App.InputTTY = source == sourceStdin

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGHUP)
	defer stop()

	result, err := app.Run(ctx, runtimeCfg.App, items, tty.terminal())
	if err != nil {
		logging.Error(err)
		code := exitCodeFor(err)
		if code == exitConfig {
			fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		} else {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(code)
	}
	events.App.Exit(result.Selected, result.Value)
	if !result.Selected {
		os.Exit(exitCancelled)
	}
	fmt.Println(result.Value)
}

// exitCodeFor reports viewport bounds that only fail once the terminal size
// is known as configuration errors.
func exitCodeFor(err error) int {
	if errors.Is(err, menu.ErrInvalidViewport) {
		return exitConfig
	}
	return exitFailure
}

const (
	sourceArgs  = "args"
	sourceStdin = "stdin"
	sourceNone  = "none"
)

// loadItems prefers positional arguments and falls back to non-blank lines
// from a piped stdin.
func loadItems(args []string, stdin io.Reader, piped bool) ([]string, string, error) {
	if len(args) > 0 {
		return args, sourceArgs, nil
	}
	if !piped || stdin == nil {
		return nil, sourceNone, nil
	}
	var items []string
	scanner := bufio.NewScanner(stdin)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		items = append(items, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, sourceStdin, fmt.Errorf("read stdin: %w", err)
	}
	return items, sourceStdin, nil
}

func traceStartup(cfg config.Config, tty ttyDetails) {
	events.App.Start(startupTracePayload(cfg, tty))
}

// startupTracePayload bundles runtime context for trace logging.
func startupTracePayload(cfg config.Config, tty ttyDetails) map[string]interface{} {
	flags := make(map[string]interface{}, len(cfg.Flags))
	for k, v := range cfg.Flags {
		flags[k] = v
	}
	flags["trace"] = cfg.Logging.Trace
	flags["logFile"] = cfg.Logging.FilePath
	payload := map[string]interface{}{
		"argv":   cfg.Args,
		"flags":  flags,
		"config": cfg,
	}
	if exe, err := os.Executable(); err == nil {
		payload["executable"] = exe
	} else {
		payload["executableError"] = err.Error()
	}
	if cwd, err := os.Getwd(); err == nil {
		payload["cwd"] = cwd
	} else {
		payload["cwdError"] = err.Error()
	}
	payload["tty"] = tty
	return payload
}

type ttyDetails struct {
	Detected *ttyDetected     `json:"detected,omitempty"`
	Probes   []ttyProbeResult `json:"probes"`
}

type ttyDetected struct {
	Source string `json:"source"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

type ttyProbeResult struct {
	Name       string `json:"name"`
	IsTerminal bool   `json:"is_terminal"`
	Width      int    `json:"width,omitempty"`
	Height     int    `json:"height,omitempty"`
	Error      string `json:"error,omitempty"`
}

func (d ttyDetails) probe(name string) ttyProbeResult {
	for _, p := range d.Probes {
		if p.Name == name {
			return p
		}
	}
	return ttyProbeResult{Name: name}
}

// terminal returns the first detected terminal size, or zeroes when no
// descriptor is a terminal.
func (d ttyDetails) terminal() app.Terminal {
	if d.Detected == nil {
		return app.Terminal{}
	}
	return app.Terminal{Width: d.Detected.Width, Height: d.Detected.Height}
}

// collectTTYDetails inspects standard descriptors for terminal support and dimensions.
func collectTTYDetails() ttyDetails {
	probes := []struct {
		name string
		fd   uintptr
	}{
		{"stdin", os.Stdin.Fd()},
		{"stdout", os.Stdout.Fd()},
		{"stderr", os.Stderr.Fd()},
	}
	results := make([]ttyProbeResult, 0, len(probes))
	var detected *ttyDetected
	for _, probe := range probes {
		entry := ttyProbeResult{Name: probe.name}
		fd := int(probe.fd)
		if fd >= 0 && term.IsTerminal(fd) {
			entry.IsTerminal = true
			if width, height, err := term.GetSize(fd); err == nil {
				entry.Width = width
				entry.Height = height
				if detected == nil {
					detected = &ttyDetected{Source: probe.name, Width: width, Height: height}
				}
			} else {
				entry.Error = err.Error()
			}
		}
		results = append(results, entry)
	}
	return ttyDetails{Detected: detected, Probes: results}
}
