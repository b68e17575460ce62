// Package viewer is a minimal read-only file viewer that hosts the
// copyline extension. It implements every capability in internal/host:
// the viewed file is the active document, the highlighted line is the
// cursor, and notifications appear on the bottom line.
package viewer

import (
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/gdamore/tcell/v2"

	"copyline/internal/command"
	"copyline/internal/config"
	"copyline/internal/extension"
	"copyline/internal/host"
	"copyline/internal/logging"
)

// Options configure a Viewer.
type Options struct {
	// Path is the file to view.
	Path string

	// Config supplies key bindings and display settings.
	Config config.Config

	// Registry holds the commands keys are routed to.
	Registry *command.Registry

	// Logger receives viewer diagnostics. Defaults to a silent logger.
	Logger *logging.Logger

	// Screen overrides the terminal screen; used by tests with a
	// simulation screen. A real terminal screen is created when nil.
	Screen tcell.Screen
}

// Viewer displays one file and routes keys to registered commands.
type Viewer struct {
	screen tcell.Screen
	reg    *command.Registry
	log    *logging.Logger

	path  string
	lines []string

	mu     sync.Mutex
	cfg    config.Config
	cursor int // 0-based line under the highlight
	top    int // first visible line
	notice notice
}

type notice struct {
	text  string
	level host.NotificationLevel
}

// New opens path and prepares a viewer for it.
func New(opts Options) (*Viewer, error) {
	if opts.Path == "" {
		return nil, fmt.Errorf("viewer: no file given")
	}

	data, err := os.ReadFile(opts.Path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", opts.Path, err)
	}
	lines := strings.Split(strings.TrimSuffix(string(data), "\n"), "\n")

	screen := opts.Screen
	if screen == nil {
		screen, err = tcell.NewScreen()
		if err != nil {
			return nil, fmt.Errorf("creating screen: %w", err)
		}
	}

	log := opts.Logger
	if log == nil {
		log = logging.NullLogger
	}
	reg := opts.Registry
	if reg == nil {
		reg = command.NewRegistry()
	}

	return &Viewer{
		screen: screen,
		reg:    reg,
		log:    log.WithComponent("viewer"),
		path:   opts.Path,
		lines:  lines,
		cfg:    opts.Config,
	}, nil
}

// Run owns the screen until the user quits or Stop is called.
func (v *Viewer) Run() error {
	if err := v.screen.Init(); err != nil {
		return fmt.Errorf("initializing screen: %w", err)
	}
	defer v.screen.Fini()

	v.draw()
	for {
		switch ev := v.screen.PollEvent().(type) {
		case *tcell.EventResize:
			v.screen.Sync()
			v.draw()
		case *tcell.EventInterrupt:
			return nil
		case *tcell.EventKey:
			if v.handleKey(ev) {
				return nil
			}
			v.draw()
		case nil:
			// Screen was finalized underneath us.
			return nil
		}
	}
}

// Stop makes Run return. Safe to call from any goroutine.
func (v *Viewer) Stop() {
	_ = v.screen.PostEvent(tcell.NewEventInterrupt(nil))
}

// SetConfig applies a reloaded configuration.
func (v *Viewer) SetConfig(cfg config.Config) {
	v.mu.Lock()
	v.cfg = cfg
	v.mu.Unlock()
	v.draw()
}

// handleKey routes one key event. Returns true when the viewer should quit.
func (v *Viewer) handleKey(ev *tcell.EventKey) bool {
	v.mu.Lock()
	keys := v.cfg.Keys
	v.mu.Unlock()

	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyUp:
		v.moveCursor(-1)
	case tcell.KeyDown:
		v.moveCursor(1)
	case tcell.KeyPgUp:
		v.moveCursor(-v.pageSize())
	case tcell.KeyPgDn:
		v.moveCursor(v.pageSize())
	case tcell.KeyHome:
		v.moveCursorTo(0)
	case tcell.KeyEnd:
		v.moveCursorTo(len(v.lines) - 1)
	case tcell.KeyRune:
		switch string(ev.Rune()) {
		case keys.Quit:
			return true
		case keys.CopyRelative:
			v.execute(extension.CmdCopyRelativePath)
		case keys.CopyAbsolute:
			v.execute(extension.CmdCopyAbsolutePath)
		case "j":
			v.moveCursor(1)
		case "k":
			v.moveCursor(-1)
		case "g":
			v.moveCursorTo(0)
		case "G":
			v.moveCursorTo(len(v.lines) - 1)
		}
	}
	return false
}

// execute runs a registered command on its own goroutine. Invocations are
// independent and report their outcome through notifications.
func (v *Viewer) execute(id string) {
	go func() {
		if err := v.reg.Execute(id, nil); err != nil {
			v.log.Error("command %s: %v", id, err)
		}
	}()
}

func (v *Viewer) moveCursor(delta int) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.cursor = clamp(v.cursor+delta, 0, len(v.lines)-1)
}

func (v *Viewer) moveCursorTo(line int) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.cursor = clamp(line, 0, len(v.lines)-1)
}

func (v *Viewer) pageSize() int {
	_, height := v.screen.Size()
	if height < 4 {
		return 1
	}
	return height - 3
}

func clamp(n, lo, hi int) int {
	if n < lo {
		return lo
	}
	if n > hi {
		return hi
	}
	return n
}
