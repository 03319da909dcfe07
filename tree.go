package tui

import (
	"errors"
	"fmt"
	"time"
)

// ErrDuplicateID is returned when a node's id is already in use in a tree.
var ErrDuplicateID = errors.New("duplicate node id")

// Tree is the registry of mounted nodes. It resolves parent links, keeps the
// class index and owns the stylesheet, the animator and the diagnostics the
// nodes report into.
type Tree struct {
	root       *Node
	nodes      map[string]*Node
	classIndex map[string]map[string]struct{}

	sheet *Stylesheet
	anim  *Animator
	diag  *Diagnostics

	app      *App   // nil for a standalone tree
	onChange func() // called when a mounted node needs a render
}

// NewTree returns an empty tree styled by sheet. A nil sheet is replaced by
// an empty one.
func NewTree(sheet *Stylesheet) *Tree {
	if sheet == nil {
		sheet = NewStylesheet()
	}
	return &Tree{
		nodes:      make(map[string]*Node),
		classIndex: make(map[string]map[string]struct{}),
		sheet:      sheet,
		anim:       NewAnimator(nil),
		diag:       NewDiagnostics(0),
	}
}

// Root returns the root node, or nil.
func (t *Tree) Root() *Node {
	return t.root
}

// SetRoot replaces the whole tree with root and its descendants.
func (t *Tree) SetRoot(root *Node) error {
	if root != nil {
		if err := checkSubtreeIDs(root, nil); err != nil {
			return err
		}
	}
	if t.root != nil {
		t.unregister(t.root)
	}
	t.root = root
	if root != nil {
		root.parentID = ""
		t.register(root)
		root.MarkDirty()
	}
	t.changed()
	return nil
}

// Len returns the number of mounted nodes.
func (t *Tree) Len() int {
	return len(t.nodes)
}

// Stylesheet returns the tree's stylesheet.
func (t *Tree) Stylesheet() *Stylesheet {
	return t.sheet
}

// Animator returns the animator driving style transitions.
func (t *Tree) Animator() *Animator {
	return t.anim
}

// Diagnostics returns the ring of non-fatal errors reported by the tree.
func (t *Tree) Diagnostics() *Diagnostics {
	return t.diag
}

// AddRules loads rules into the stylesheet and restyles every node. The
// declaration errors the rules carry are reported and returned.
func (t *Tree) AddRules(rules ...*Rule) []error {
	errs := t.sheet.Add(rules...)
	t.report(errs...)
	if t.root != nil {
		t.root.invalidateStyle()
	}
	return errs
}

// Get returns the node with id.
func (t *Tree) Get(id string) (*Node, error) {
	n, ok := t.nodes[id]
	if !ok {
		return nil, &LookupError{Query: "#" + id}
	}
	return n, nil
}

// Walk visits every node in document order until fn returns false.
func (t *Tree) Walk(fn func(*Node) bool) {
	if t.root != nil {
		t.root.walk(fn)
	}
}

// Path returns the ancestor chain of n from the root down to n.
func (t *Tree) Path(n *Node) []Selectable {
	var rev []Selectable
	for node := n; node != nil; node = node.Parent() {
		rev = append(rev, node)
	}
	path := make([]Selectable, len(rev))
	for i, s := range rev {
		path[len(rev)-1-i] = s
	}
	return path
}

func (t *Tree) register(n *Node) {
	n.walk(func(d *Node) bool {
		d.tree = t
		d.styleValid = false
		d.dirty = true
		t.nodes[d.id] = d
		for c := range d.classes {
			t.indexClass(c, d.id)
		}
		for _, c := range d.children {
			c.parentID = d.id
		}
		if len(d.errs) > 0 {
			t.report(d.errs...)
			d.errs = nil
		}
		return true
	})
}

func (t *Tree) unregister(n *Node) {
	n.walk(func(d *Node) bool {
		for c := range d.classes {
			t.unindexClass(c, d.id)
		}
		t.anim.CancelOwner(d.id)
		delete(t.nodes, d.id)
		d.tree = nil
		d.styled = false
		return true
	})
}

// checkIDs reports the first id among the subtrees of children that is
// already mounted or repeated.
func (t *Tree) checkIDs(children []*Node) error {
	seen := make(map[string]struct{})
	for _, c := range children {
		if err := checkSubtreeIDs(c, seen); err != nil {
			return err
		}
	}
	for id := range seen {
		if _, ok := t.nodes[id]; ok {
			return fmt.Errorf("mount %q: %w", id, ErrDuplicateID)
		}
	}
	return nil
}

func checkSubtreeIDs(n *Node, seen map[string]struct{}) error {
	if seen == nil {
		seen = make(map[string]struct{})
	}
	var err error
	n.walk(func(d *Node) bool {
		if _, dup := seen[d.id]; dup {
			err = fmt.Errorf("mount %q: %w", d.id, ErrDuplicateID)
			return false
		}
		seen[d.id] = struct{}{}
		return true
	})
	return err
}

func (t *Tree) indexClass(class, id string) {
	ids, ok := t.classIndex[class]
	if !ok {
		ids = make(map[string]struct{})
		t.classIndex[class] = ids
	}
	ids[id] = struct{}{}
}

func (t *Tree) unindexClass(class, id string) {
	ids, ok := t.classIndex[class]
	if !ok {
		return
	}
	delete(ids, id)
	if len(ids) == 0 {
		delete(t.classIndex, class)
	}
}

func (t *Tree) report(errs ...error) {
	t.diag.Report(errs...)
}

func (t *Tree) changed() {
	if t.onChange != nil {
		t.onChange()
	}
}

// Tick advances running transitions to now. Nodes with a running transition
// are marked dirty so the next render picks up the new values. It reports
// whether any transition was running.
func (t *Tree) Tick(now time.Time) bool {
	if !t.anim.Active() {
		return false
	}
	for _, key := range t.anim.Keys() {
		if n, ok := t.nodes[keyOwner(key)]; ok {
			n.MarkDirty()
		}
	}
	return t.anim.Tick(now)
}
