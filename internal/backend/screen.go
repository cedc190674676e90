package backend

import (
	"errors"
	"strconv"
	"strings"

	"github.com/atomicstack/gridselect/internal/theme"
	"github.com/atomicstack/gridselect/internal/ui"
	"github.com/atomicstack/gridselect/internal/ui/state"
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// ErrClosed is returned by Next once the screen has been finalized.
var ErrClosed = errors.New("screen closed")

var newScreen = tcell.NewScreen

// Screen adapts a tcell screen to the ui Renderer, NotificationSink and
// InputSource interfaces.
type Screen struct {
	screen  tcell.Screen
	keys    ui.KeyMap
	palette theme.Palette
}

// Open initialises the terminal and takes it over until Close.
func Open(keys ui.KeyMap) (*Screen, error) {
	screen, err := newScreen()
	if err != nil {
		return nil, err
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}
	return New(screen, keys), nil
}

// New wraps an initialised screen.
func New(screen tcell.Screen, keys ui.KeyMap) *Screen {
	screen.Clear()
	return &Screen{screen: screen, keys: keys, palette: theme.DefaultPalette()}
}

// Size returns the terminal dimensions.
func (s *Screen) Size() (width, height int) {
	return s.screen.Size()
}

// Close restores the terminal.
func (s *Screen) Close() {
	s.screen.Fini()
}

// DrawCell implements ui.Renderer.
func (s *Screen) DrawCell(c ui.Cell) {
	style := styleFor(c.Style.Normal, "", false)
	if c.Highlighted {
		style = styleFor(c.Style.SelectedForeground, c.Style.SelectedBackground, false)
	}
	s.write(c.X, c.Y, c.Text, style)
	s.screen.Show()
}

// ClearRegion implements ui.Renderer.
func (s *Screen) ClearRegion(top, bottom int) {
	width, height := s.screen.Size()
	if top < 0 {
		top = 0
	}
	if bottom > height-1 {
		bottom = height - 1
	}
	for y := top; y <= bottom; y++ {
		for x := 0; x < width; x++ {
			s.screen.SetContent(x, y, ' ', nil, tcell.StyleDefault)
		}
	}
	s.screen.Show()
}

// Notify implements ui.NotificationSink using the bottom two rows.
func (s *Screen) Notify(message string, kind ui.NoticeKind) {
	width, height := s.screen.Size()
	s.ClearRegion(height-2, height-1)
	if height >= 2 {
		s.write(0, height-2, strings.Repeat("-", width), styleFor(s.palette.Separator, "", false))
		if kind == ui.NoticeWarning {
			s.write(2, height-2, ui.WarningTag, styleFor(s.palette.Warning, "", true))
		}
	}
	if kind == ui.NoticeWarning {
		s.write(0, height-1, strings.ToUpper(message), styleFor(s.palette.Warning, "", false))
	} else {
		s.write(0, height-1, message, styleFor(s.palette.Info, "", false))
	}
	s.screen.Show()
}

// Next implements ui.InputSource. It blocks until a bound key is pressed or
// Interrupt is called; an interrupt yields state.SignalNone so the caller
// can re-check whether it should stop.
func (s *Screen) Next() (state.Signal, error) {
	for {
		ev := s.screen.PollEvent()
		switch ev := ev.(type) {
		case nil:
			return state.SignalNone, ErrClosed
		case *tcell.EventResize:
			s.screen.Sync()
		case *tcell.EventInterrupt:
			return state.SignalNone, nil
		case *tcell.EventKey:
			if sig := s.keys.SignalFor(keyName(ev.Key(), ev.Rune(), ev.Modifiers())); sig != state.SignalNone {
				return sig, nil
			}
		}
	}
}

// Interrupt wakes a blocked Next. Safe for concurrent use.
func (s *Screen) Interrupt() {
	_ = s.screen.PostEvent(tcell.NewEventInterrupt(nil))
}

func (s *Screen) write(x, y int, text string, style tcell.Style) {
	width, height := s.screen.Size()
	if y < 0 || y >= height || x < 0 {
		return
	}
	for _, r := range text {
		w := runewidth.RuneWidth(r)
		if w == 0 {
			continue
		}
		if x+w > width {
			return
		}
		s.screen.SetContent(x, y, r, nil, style)
		x += w
	}
}

var keyNames = map[tcell.Key]string{
	tcell.KeyUp:     "up",
	tcell.KeyDown:   "down",
	tcell.KeyLeft:   "left",
	tcell.KeyRight:  "right",
	tcell.KeyPgUp:   "pgup",
	tcell.KeyPgDn:   "pgdown",
	tcell.KeyHome:   "home",
	tcell.KeyEnd:    "end",
	tcell.KeyF7:     "f7",
	tcell.KeyF8:     "f8",
	tcell.KeyEnter:  "enter",
	tcell.KeyEscape: "esc",
	tcell.KeyCtrlC:  "ctrl+c",
}

// keyName spells a tcell key the way tea.KeyMsg.String does so one KeyMap
// serves both frontends.
func keyName(key tcell.Key, r rune, mod tcell.ModMask) string {
	if key == tcell.KeyRune {
		if mod&tcell.ModAlt != 0 {
			return "alt+" + string(r)
		}
		return string(r)
	}
	if name, ok := keyNames[key]; ok {
		return name
	}
	return ""
}

// styleFor builds a tcell style from palette strings. Numeric strings are
// palette indexes; anything else goes through tcell.GetColor.
func styleFor(fg, bg string, bold bool) tcell.Style {
	style := tcell.StyleDefault.Foreground(parseColor(fg)).Background(parseColor(bg))
	if bold {
		style = style.Bold(true)
	}
	return style
}

func parseColor(value string) tcell.Color {
	value = strings.TrimSpace(value)
	if value == "" {
		return tcell.ColorDefault
	}
	if n, err := strconv.Atoi(value); err == nil && n >= 0 && n <= 255 {
		return tcell.PaletteColor(n)
	}
	return tcell.GetColor(value)
}
