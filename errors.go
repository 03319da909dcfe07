package tui

import (
	"errors"
	"fmt"
)

// ErrStopped is returned by App operations after the app has stopped.
var ErrStopped = errors.New("app stopped")

// ErrNotMounted is returned by node operations that need a running app.
var ErrNotMounted = errors.New("node not mounted in a running app")

// StyleError reports a selector that does not parse, an unknown property or
// a malformed value. Style errors are never fatal: the offending declaration
// is skipped or replaced by the property's default.
type StyleError struct {
	Selector string
	Property string
	Value    string
	Err      error
}

func (e *StyleError) Error() string {
	if e.Property == "" {
		return fmt.Sprintf("style %q: %v", e.Selector, e.Err)
	}
	return fmt.Sprintf("style %q: %s: %q: %v", e.Selector, e.Property, e.Value, e.Err)
}

func (e *StyleError) Unwrap() error { return e.Err }

// LayoutError reports content that did not fit and was clipped.
type LayoutError struct {
	NodeID string
	Reason string
}

func (e *LayoutError) Error() string {
	return fmt.Sprintf("layout %s: %s", e.NodeID, e.Reason)
}

// LookupError reports a query, id or action name that matched nothing.
type LookupError struct {
	Query string
}

func (e *LookupError) Error() string {
	return fmt.Sprintf("no match for %q", e.Query)
}

// RenderError reports a widget whose Paint failed or panicked. The node's
// content area is filled with a placeholder and the rest of the frame renders.
type RenderError struct {
	NodeID string
	Err    error
}

func (e *RenderError) Error() string {
	return fmt.Sprintf("render %s: %v", e.NodeID, e.Err)
}

func (e *RenderError) Unwrap() error { return e.Err }
