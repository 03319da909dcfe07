package tui

import (
	"strings"
	"sync"
)

// MockTerminal is an in-memory Terminal for tests. It applies write ops to a
// cell grid and counts what it was asked to do.
type MockTerminal struct {
	mu            sync.Mutex
	width, height int
	cells         []Cell
	cursorHidden  bool
	setup         bool
	caps          Capabilities
	onResize      func()

	flushes int
	ops     int
	written int // cells written, continuation cells excluded
	clears  int
}

var (
	_ Terminal       = (*MockTerminal)(nil)
	_ ResizeNotifier = (*MockTerminal)(nil)
)

// NewMockTerminal creates a blank mock terminal of the given size.
func NewMockTerminal(width, height int) *MockTerminal {
	m := &MockTerminal{
		width:  width,
		height: height,
		cells:  make([]Cell, width*height),
		caps:   Capabilities{Colors: ColorTrue, Unicode: true, TrueColor: true, AltScreen: true},
	}
	m.blank()
	return m
}

func (m *MockTerminal) blank() {
	for i := range m.cells {
		m.cells[i] = blankCell
	}
}

// Size returns the terminal dimensions.
func (m *MockTerminal) Size() (width, height int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.width, m.height
}

// Flush applies ops to the grid. Cells off the grid are dropped.
func (m *MockTerminal) Flush(ops []WriteOp) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(ops) == 0 {
		return nil
	}
	m.flushes++
	m.ops += len(ops)
	for _, op := range ops {
		for i, cell := range op.Cells {
			x := op.X + i
			if x < 0 || x >= m.width || op.Y < 0 || op.Y >= m.height {
				continue
			}
			m.cells[op.Y*m.width+x] = cell
			if !cell.IsContinuation() {
				m.written++
			}
		}
	}
	return nil
}

// Clear blanks the grid.
func (m *MockTerminal) Clear() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.blank()
	m.clears++
	return nil
}

// HideCursor records that the cursor is hidden.
func (m *MockTerminal) HideCursor() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.cursorHidden = true
}

// ShowCursor records that the cursor is visible.
func (m *MockTerminal) ShowCursor() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.cursorHidden = false
}

// Setup records that the terminal was prepared.
func (m *MockTerminal) Setup() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.setup = true
	return nil
}

// Restore records that the terminal was restored.
func (m *MockTerminal) Restore() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.setup = false
	return nil
}

// Caps returns the mock's capabilities.
func (m *MockTerminal) Caps() Capabilities {
	return m.caps
}

// NotifyResize registers fn to be called by Resize.
func (m *MockTerminal) NotifyResize(fn func()) (stop func()) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.onResize = fn
	return func() {
		m.mu.Lock()
		defer m.mu.Unlock()
		m.onResize = nil
	}
}

// Resize changes the terminal size, blanking the grid, and notifies the
// registered resize callback.
func (m *MockTerminal) Resize(width, height int) {
	m.mu.Lock()
	m.width, m.height = width, height
	m.cells = make([]Cell, width*height)
	m.blank()
	fn := m.onResize
	m.mu.Unlock()
	if fn != nil {
		fn()
	}
}

// CellAt returns the cell at (x, y).
func (m *MockTerminal) CellAt(x, y int) Cell {
	m.mu.Lock()
	defer m.mu.Unlock()
	if x < 0 || x >= m.width || y < 0 || y >= m.height {
		return Cell{}
	}
	return m.cells[y*m.width+x]
}

// Lines returns the text of every row.
func (m *MockTerminal) Lines() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	lines := make([]string, m.height)
	for y := range lines {
		var sb strings.Builder
		for _, c := range m.cells[y*m.width : (y+1)*m.width] {
			sb.WriteString(c.String())
		}
		lines[y] = sb.String()
	}
	return lines
}

// String returns the screen text, rows joined by newlines.
func (m *MockTerminal) String() string {
	return strings.Join(m.Lines(), "\n")
}

// Flushes returns how many non-empty flushes were applied.
func (m *MockTerminal) Flushes() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.flushes
}

// Ops returns how many write ops were applied.
func (m *MockTerminal) Ops() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.ops
}

// CellsWritten returns how many cells were written.
func (m *MockTerminal) CellsWritten() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.written
}

// Clears returns how many times the screen was cleared.
func (m *MockTerminal) Clears() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.clears
}

// IsSetup reports whether Setup was called without a later Restore.
func (m *MockTerminal) IsSetup() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.setup
}

// IsCursorHidden reports whether the cursor is hidden.
func (m *MockTerminal) IsCursorHidden() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.cursorHidden
}
