package app

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/atomicstack/gridselect/internal/backend"
	"github.com/atomicstack/gridselect/internal/menu"
	"github.com/atomicstack/gridselect/internal/ui"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	FrontendTea   = "tea"
	FrontendTcell = "tcell"

	// AutoBottom as Config.Bottom fits the grid to the terminal height.
	AutoBottom = -1

	fallbackWidth  = 80
	fallbackHeight = 24
	// reservedRows holds the banner and the two notice rows below the grid.
	reservedRows = 3
)

// Config describes user-provided application options.
type Config struct {
	Top          int
	Bottom       int
	Width        int
	Frontend     string
	Instructions bool
	InputTTY     bool
	Keys         map[string][]string
	Style        menu.Style
}

// Terminal is the detected terminal size; zero values are unknown.
type Terminal struct {
	Width  int
	Height int
}

// Result is what the user picked.
type Result struct {
	Selected bool
	Value    string
}

// ResolveViewport fills unset bounds from the terminal size. A negative
// Bottom is sized to the terminal; zero is a valid row.
func ResolveViewport(cfg Config, term Terminal) (menu.Viewport, int, error) {
	height := term.Height
	if height <= 0 {
		height = fallbackHeight
	}
	width := cfg.Width
	if width <= 0 {
		width = term.Width
	}
	if width <= 0 {
		width = fallbackWidth
	}
	bottom := cfg.Bottom
	if bottom < 0 {
		bottom = height - reservedRows - 1
	}
	v := menu.Viewport{Top: cfg.Top, Bottom: bottom, Width: width}
	if err := v.Validate(); err != nil {
		return menu.Viewport{}, 0, err
	}
	if bottom+reservedRows >= height {
		height = bottom + reservedRows + 1
	}
	return v, height, nil
}

// Run shows items in the configured frontend and blocks until the user
// selects one, cancels, or ctx is done.
func Run(ctx context.Context, cfg Config, items []string, term Terminal) (Result, error) {
	keys, err := ui.DefaultKeyMap().Override(cfg.Keys)
	if err != nil {
		return Result{}, err
	}
	viewport, height, err := ResolveViewport(cfg, term)
	if err != nil {
		return Result{}, err
	}
	reg, err := buildRegistry(viewport, items, cfg.Style)
	if err != nil {
		return Result{}, err
	}

	var result Result
	var session *ui.Session[string]
	opts := []ui.Option[string]{
		ui.WithSelectAction(func(v string) {
			result = Result{Selected: true, Value: v}
			session.Break()
		}),
	}
	if cfg.Instructions {
		opts = append(opts, ui.WithInstructionText[string](keys.Instructions()))
	}

	switch cfg.Frontend {
	case FrontendTcell:
		screen, err := backend.Open(keys)
		if err != nil {
			return Result{}, fmt.Errorf("open terminal: %w", err)
		}
		defer screen.Close()
		session = ui.NewSession(reg, screen, screen, screen, opts...)
		stop := context.AfterFunc(ctx, func() {
			session.Break()
			screen.Interrupt()
		})
		defer stop()
		if err := session.Run(); err != nil {
			return Result{}, err
		}
	case FrontendTea, "":
		canvas := ui.NewCanvas(viewport.Width, height)
		session = ui.NewSession[string](reg, canvas, canvas, nil, opts...)
		model := ui.NewModel(session, canvas, keys)
		programOpts := []tea.ProgramOption{tea.WithAltScreen(), tea.WithOutput(os.Stderr), tea.WithContext(ctx)}
		if cfg.InputTTY {
			programOpts = append(programOpts, tea.WithInputTTY())
		}
		program := tea.NewProgram(model, programOpts...)
		if _, err := program.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
			return Result{}, err
		}
	default:
		return Result{}, fmt.Errorf("unknown frontend %q", cfg.Frontend)
	}
	return result, nil
}

func buildRegistry(v menu.Viewport, items []string, style menu.Style) (*menu.Registry[string], error) {
	reg, err := menu.NewRegistry[string](v)
	if err != nil {
		return nil, err
	}
	batch := make([]menu.Item[string], 0, len(items))
	for _, item := range items {
		batch = append(batch, menu.Item[string]{Value: item, Caption: item, Style: style})
	}
	if _, err := reg.AddRange(batch...); err != nil {
		return nil, err
	}
	return reg, nil
}
