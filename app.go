package tui

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sync"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/grindlemire/tuicss/internal/debug"
)

// ErrQueueFull is returned by Post when the event queue has no room.
var ErrQueueFull = errors.New("event queue full")

// Classes toggled on the root node by App.Dark.
const (
	DarkModeClass  = "-dark-mode"
	LightModeClass = "-light-mode"
)

// App owns a node tree and a terminal and keeps the terminal showing the
// tree. All tree mutation happens on its event loop; other goroutines hand
// work to the loop with Post.
type App struct {
	terminal Terminal
	tree     *Tree
	root     *Node

	prev       *Frame // last frame sent to the terminal
	frames     int
	needsClear bool
	dirty      atomic.Bool
	batch      batchContext

	eventQueue chan func()
	stopCh     chan struct{}
	stopOnce   sync.Once

	// Background tasks started with Go.
	group    *errgroup.Group
	groupCtx context.Context
	cancel   context.CancelFunc

	// Tasks waiting for a slot when maxTasks is set.
	taskMu  sync.Mutex
	running int
	queued  []func() error

	actions map[string]func() error
	dark    *State[bool]

	// Configuration (set via options)
	frameDuration  time.Duration
	eventQueueSize int
	maxTasks       int
	now            func() time.Time
	backend        string
	debugLog       string
	initialDark    bool
	pendingRules   []*Rule
}

// NewApp creates an app. Without WithTerminal it draws to stdout with ANSI
// sequences, or through tcell when the "tcell" backend is configured.
func NewApp(opts ...AppOption) (*App, error) {
	a := &App{
		stopCh:         make(chan struct{}),
		frameDuration:  time.Second / 60,
		eventQueueSize: 256,
		now:            time.Now,
		actions:        make(map[string]func() error),
		batch:          batchContext{pending: make(map[uint64]func())},
	}

	for _, opt := range opts {
		if err := opt(a); err != nil {
			return nil, err
		}
	}

	if a.debugLog != "" {
		if err := debug.Init(a.debugLog); err != nil {
			return nil, fmt.Errorf("debug log: %w", err)
		}
	}

	if a.terminal == nil {
		switch a.backend {
		case "", "ansi":
			a.terminal = NewANSITerminal(os.Stdout, os.Stdin)
		case "tcell":
			t, err := NewTcellScreenTerminal()
			if err != nil {
				return nil, fmt.Errorf("tcell backend: %w", err)
			}
			a.terminal = t
		default:
			return nil, fmt.Errorf("unknown backend %q", a.backend)
		}
	}

	a.eventQueue = make(chan func(), a.eventQueueSize)

	ctx, cancel := context.WithCancel(context.Background())
	a.group, a.groupCtx = errgroup.WithContext(ctx)
	a.cancel = cancel

	a.tree = NewTree(NewStylesheet())
	a.tree.app = a
	a.tree.anim = NewAnimator(a.now)
	a.tree.onChange = a.MarkDirty
	a.tree.AddRules(a.pendingRules...)
	a.pendingRules = nil

	a.dark = NewState(a, a.initialDark)
	a.dark.Bind(func(bool) { a.applyDark() })

	if a.root != nil {
		if err := a.SetRoot(a.root); err != nil {
			return nil, err
		}
	}
	return a, nil
}

// Tree returns the app's node tree.
func (a *App) Tree() *Tree {
	return a.tree
}

// Terminal returns the terminal the app draws to.
func (a *App) Terminal() Terminal {
	return a.terminal
}

// Diagnostics returns the non-fatal errors reported while styling, laying
// out and painting.
func (a *App) Diagnostics() *Diagnostics {
	return a.tree.diag
}

// SetRoot replaces the node tree shown by the app.
func (a *App) SetRoot(root *Node) error {
	if err := a.tree.SetRoot(root); err != nil {
		return err
	}
	a.root = root
	a.applyDark()
	a.MarkDirty()
	return nil
}

// AddRules loads style rules. Their declaration errors are reported to the
// diagnostics and returned.
func (a *App) AddRules(rules ...*Rule) []error {
	return a.tree.AddRules(rules...)
}

// Dark returns the shared dark-mode flag. Setting it toggles the
// -dark-mode and -light-mode classes on the root node.
func (a *App) Dark() *State[bool] {
	return a.dark
}

func (a *App) applyDark() {
	root := a.tree.Root()
	if root == nil {
		return
	}
	dark := a.dark.Get()
	root.SetClass(DarkModeClass, dark)
	root.SetClass(LightModeClass, !dark)
}

// MarkDirty schedules a render on the next loop turn.
func (a *App) MarkDirty() {
	a.dirty.Store(true)
}

// Frame returns the last frame sent to the terminal, or nil.
func (a *App) Frame() *Frame {
	return a.prev
}

// Frames returns how many frames have been rendered.
func (a *App) Frames() int {
	return a.frames
}

// Render runs one full cycle: style, layout, paint, diff and flush. The
// loop calls it at most once per turn; tests may call it directly when the
// loop is not running.
func (a *App) Render() error {
	w, h := a.terminal.Size()
	next := a.tree.Render(Size{Width: w, Height: h})

	ops, full := Diff(a.prev, next)
	if a.needsClear && !full {
		ops, full = Diff(nil, next)
	}
	if full {
		if err := a.terminal.Clear(); err != nil {
			return fmt.Errorf("clear: %w", err)
		}
	}
	if err := a.terminal.Flush(ops); err != nil {
		return fmt.Errorf("flush: %w", err)
	}
	debug.Log("render: frame %d, %d ops, full=%v", a.frames, len(ops), full)

	a.prev = next
	a.needsClear = false
	a.frames++
	return nil
}

// handleResize forces the next render to repaint everything.
func (a *App) handleResize() {
	a.needsClear = true
	if root := a.tree.Root(); root != nil {
		root.MarkDirty()
	}
	a.MarkDirty()
}
