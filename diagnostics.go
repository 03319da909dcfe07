package tui

import (
	"sync"

	"github.com/grindlemire/tuicss/internal/debug"
)

// DefaultDiagnosticsSize is how many recent errors Diagnostics keeps.
const DefaultDiagnosticsSize = 256

// Diagnostics is a bounded ring of recent non-fatal errors. Every report is
// also written to the debug log.
type Diagnostics struct {
	mu    sync.Mutex
	buf   []error
	next  int
	full  bool
	total int
}

// NewDiagnostics returns a ring holding up to size errors.
func NewDiagnostics(size int) *Diagnostics {
	if size <= 0 {
		size = DefaultDiagnosticsSize
	}
	return &Diagnostics{buf: make([]error, size)}
}

// Report records errs. nil entries are ignored.
func (d *Diagnostics) Report(errs ...error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	for _, err := range errs {
		if err == nil {
			continue
		}
		debug.Log("diagnostic: %v", err)
		d.buf[d.next] = err
		d.next = (d.next + 1) % len(d.buf)
		if d.next == 0 {
			d.full = true
		}
		d.total++
	}
}

// Errors returns the retained errors, oldest first.
func (d *Diagnostics) Errors() []error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if !d.full {
		return append([]error(nil), d.buf[:d.next]...)
	}
	out := make([]error, 0, len(d.buf))
	out = append(out, d.buf[d.next:]...)
	return append(out, d.buf[:d.next]...)
}

// Total returns how many errors were ever reported, including evicted ones.
func (d *Diagnostics) Total() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.total
}

// Clear drops every retained error.
func (d *Diagnostics) Clear() {
	d.mu.Lock()
	defer d.mu.Unlock()
	clear(d.buf)
	d.next, d.full, d.total = 0, false, 0
}
