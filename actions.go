package tui

import (
	"fmt"
	"slices"
)

// RegisterAction binds name to fn. Registering a name again replaces it.
func (a *App) RegisterAction(name string, fn func() error) {
	a.actions[name] = fn
}

// RunAction runs the action bound to name on the calling goroutine. It
// returns a *LookupError for unknown names.
func (a *App) RunAction(name string) error {
	fn, ok := a.actions[name]
	if !ok {
		return &LookupError{Query: name}
	}
	if err := fn(); err != nil {
		return fmt.Errorf("action %s: %w", name, err)
	}
	return nil
}

// Actions returns the registered action names in sorted order.
func (a *App) Actions() []string {
	names := make([]string, 0, len(a.actions))
	for name := range a.actions {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}
