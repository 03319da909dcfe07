package tui

import (
	"fmt"
	"time"
)

// AppOption is a functional option for configuring an App.
type AppOption func(*App) error

// WithTerminal sets the terminal to draw to.
func WithTerminal(t Terminal) AppOption {
	return func(a *App) error {
		if t == nil {
			return fmt.Errorf("terminal must not be nil")
		}
		a.terminal = t
		return nil
	}
}

// WithBackend picks the built-in terminal: "ansi" (default) or "tcell".
// It is ignored when WithTerminal is also given.
func WithBackend(name string) AppOption {
	return func(a *App) error {
		switch name {
		case "", "ansi", "tcell":
			a.backend = name
			return nil
		}
		return fmt.Errorf("unknown backend %q", name)
	}
}

// WithFrameRate sets how often animations advance.
// Default is 60 fps. Valid range is 1-240 fps.
func WithFrameRate(fps int) AppOption {
	return func(a *App) error {
		if fps < 1 {
			return fmt.Errorf("frame rate must be at least 1 fps")
		}
		if fps > 240 {
			return fmt.Errorf("frame rate cannot exceed 240 fps")
		}
		a.frameDuration = time.Second / time.Duration(fps)
		return nil
	}
}

// WithEventQueueSize sets the capacity of the event queue.
// Default is 256. Must be at least 1.
func WithEventQueueSize(size int) AppOption {
	return func(a *App) error {
		if size < 1 {
			return fmt.Errorf("event queue size must be at least 1")
		}
		a.eventQueueSize = size
		return nil
	}
}

// WithMaxTasks bounds how many tasks started with Go run at once. Tasks
// started beyond the limit are queued in order; Go itself never waits.
// Zero means no limit.
func WithMaxTasks(n int) AppOption {
	return func(a *App) error {
		if n < 0 {
			return fmt.Errorf("max tasks must not be negative")
		}
		a.maxTasks = n
		return nil
	}
}

// WithRules loads style rules at startup.
func WithRules(rules ...*Rule) AppOption {
	return func(a *App) error {
		a.pendingRules = append(a.pendingRules, rules...)
		return nil
	}
}

// WithRoot sets the node tree shown at startup.
func WithRoot(root *Node) AppOption {
	return func(a *App) error {
		a.root = root
		return nil
	}
}

// WithDark sets the initial value of the dark-mode flag.
func WithDark(dark bool) AppOption {
	return func(a *App) error {
		a.initialDark = dark
		return nil
	}
}

// WithDebugLog writes the debug log to path.
func WithDebugLog(path string) AppOption {
	return func(a *App) error {
		a.debugLog = path
		return nil
	}
}

// WithClock replaces the time source animations read.
func WithClock(now func() time.Time) AppOption {
	return func(a *App) error {
		if now == nil {
			return fmt.Errorf("clock must not be nil")
		}
		a.now = now
		return nil
	}
}

// WithConfig applies the non-zero settings of cfg.
func WithConfig(cfg Config) AppOption {
	return func(a *App) error {
		if cfg.FrameRate != 0 {
			if err := WithFrameRate(cfg.FrameRate)(a); err != nil {
				return err
			}
		}
		if cfg.QueueSize != 0 {
			if err := WithEventQueueSize(cfg.QueueSize)(a); err != nil {
				return err
			}
		}
		if cfg.MaxTasks != 0 {
			if err := WithMaxTasks(cfg.MaxTasks)(a); err != nil {
				return err
			}
		}
		if err := WithBackend(cfg.Backend)(a); err != nil {
			return err
		}
		if cfg.DebugLog != "" {
			a.debugLog = cfg.DebugLog
		}
		if cfg.Dark != nil {
			a.initialDark = *cfg.Dark
		}
		return nil
	}
}
