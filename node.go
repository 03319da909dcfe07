package tui

import (
	"fmt"
	"slices"
	"sync/atomic"
)

// Widget paints a node's content. size is the node's content region; the
// returned Renderable is aligned into it using the node's content-align.
type Widget interface {
	Paint(size Size, style ComputedStyle) (Renderable, error)
}

// Measurer is implemented by widgets that know their natural size. Widgets
// without it are measured by rendering them.
type Measurer interface {
	IntrinsicSize(maxWidth int, style ComputedStyle) (width, height int)
}

// nextNodeID numbers nodes created without an explicit id.
var nextNodeID atomic.Uint64

// Node is one element of the UI tree. A node owns its children; the link
// back to its parent is an id resolved through the Tree it is mounted in.
//
// Node methods must be called from the event loop once the node is mounted
// in a running App.
type Node struct {
	id       string
	typeName string
	classes  map[string]struct{}
	pseudo   map[string]struct{}
	inline   []compiledDecl
	pending  []Declaration // inline declarations given before the id was known
	errs     []error       // inline declaration errors not yet reported

	widget Widget
	title  string

	children []*Node
	parentID string
	tree     *Tree

	// Resolved style cache.
	style        ComputedStyle
	styleVersion uint64
	styleValid   bool
	styled       bool // style has been resolved at least once

	layout LayoutResult
	dirty  bool
	scroll Point
}

var (
	_ Layoutable = (*Node)(nil)
	_ Selectable = (*Node)(nil)
)

// NodeOption configures a Node.
type NodeOption func(*Node)

// WithID sets the node's id. Ids must be unique within a tree.
func WithID(id string) NodeOption {
	return func(n *Node) {
		n.id = id
	}
}

// WithClasses adds classes to the node.
func WithClasses(classes ...string) NodeOption {
	return func(n *Node) {
		for _, c := range classes {
			n.classes[c] = struct{}{}
		}
	}
}

// WithWidget sets the widget that paints the node's content.
func WithWidget(w Widget) NodeOption {
	return func(n *Node) {
		n.widget = w
	}
}

// WithStyle sets inline declarations. They apply after every stylesheet rule.
func WithStyle(decls ...Declaration) NodeOption {
	return func(n *Node) {
		n.pending = append(n.pending, decls...)
	}
}

// WithChildren appends children.
func WithChildren(children ...*Node) NodeOption {
	return func(n *Node) {
		n.children = append(n.children, children...)
	}
}

// WithBorderTitle sets the text drawn in the top border.
func WithBorderTitle(title string) NodeOption {
	return func(n *Node) {
		n.title = title
	}
}

// NewNode creates a detached node. typeName is what type selectors match.
func NewNode(typeName string, opts ...NodeOption) *Node {
	n := &Node{
		typeName: typeName,
		classes:  make(map[string]struct{}),
		pseudo:   make(map[string]struct{}),
		dirty:    true,
	}
	for _, opt := range opts {
		opt(n)
	}
	if n.id == "" {
		n.id = fmt.Sprintf("%s-%d", typeName, nextNodeID.Add(1))
	}
	for _, c := range n.children {
		c.parentID = n.id
	}
	if len(n.pending) > 0 {
		n.inline, n.errs = compileDeclarations(n.inlineSelector(), n.pending)
		n.pending = nil
	}
	return n
}

func (n *Node) inlineSelector() string {
	return "#" + n.id + " (inline)"
}

// ID returns the node's id.
func (n *Node) ID() string { return n.id }

// TypeName returns the name type selectors match.
func (n *Node) TypeName() string { return n.typeName }

// HasClass reports whether the node carries class.
func (n *Node) HasClass(class string) bool {
	_, ok := n.classes[class]
	return ok
}

// HasPseudo reports whether the pseudo-state is set.
func (n *Node) HasPseudo(state string) bool {
	_, ok := n.pseudo[state]
	return ok
}

// Classes returns the node's classes, sorted.
func (n *Node) Classes() []string {
	out := make([]string, 0, len(n.classes))
	for c := range n.classes {
		out = append(out, c)
	}
	slices.Sort(out)
	return out
}

// Children returns the node's children in order.
func (n *Node) Children() []*Node {
	return n.children
}

// Parent returns the parent node, or nil for the root or a detached node.
func (n *Node) Parent() *Node {
	if n.tree == nil || n.parentID == "" {
		return nil
	}
	return n.tree.nodes[n.parentID]
}

// Tree returns the tree the node is mounted in, or nil.
func (n *Node) Tree() *Tree {
	return n.tree
}

// Widget returns the node's widget, or nil.
func (n *Node) Widget() Widget {
	return n.widget
}

// SetWidget replaces the node's widget and schedules a repaint.
func (n *Node) SetWidget(w Widget) {
	n.widget = w
	n.MarkDirty()
}

// BorderTitle returns the text drawn in the top border.
func (n *Node) BorderTitle() string {
	return n.title
}

// SetBorderTitle changes the border title.
func (n *Node) SetBorderTitle(title string) {
	n.title = title
	n.Refresh()
}

// AddClass adds classes. The node's style and its descendants' are
// recomputed on the next render.
func (n *Node) AddClass(classes ...string) {
	changed := false
	for _, c := range classes {
		if n.HasClass(c) {
			continue
		}
		n.classes[c] = struct{}{}
		if n.tree != nil {
			n.tree.indexClass(c, n.id)
		}
		changed = true
	}
	if changed {
		n.invalidateStyle()
	}
}

// RemoveClass removes classes.
func (n *Node) RemoveClass(classes ...string) {
	changed := false
	for _, c := range classes {
		if !n.HasClass(c) {
			continue
		}
		delete(n.classes, c)
		if n.tree != nil {
			n.tree.unindexClass(c, n.id)
		}
		changed = true
	}
	if changed {
		n.invalidateStyle()
	}
}

// ToggleClass adds class if absent and removes it otherwise.
func (n *Node) ToggleClass(class string) {
	if n.HasClass(class) {
		n.RemoveClass(class)
	} else {
		n.AddClass(class)
	}
}

// SetClass adds or removes class.
func (n *Node) SetClass(class string, on bool) {
	if on {
		n.AddClass(class)
	} else {
		n.RemoveClass(class)
	}
}

// SetPseudo turns a pseudo-state such as "hover" or "focus" on or off.
func (n *Node) SetPseudo(state string, on bool) {
	if n.HasPseudo(state) == on {
		return
	}
	if on {
		n.pseudo[state] = struct{}{}
	} else {
		delete(n.pseudo, state)
	}
	n.invalidateStyle()
}

// SetStyle sets one inline declaration, replacing an earlier one for the
// same property. A malformed value applies the property's default and
// returns a StyleError; an unknown property is ignored.
func (n *Node) SetStyle(property, value string) error {
	apply, err := compileDeclaration(property, value)
	if err != nil {
		err = &StyleError{Selector: n.inlineSelector(), Property: property, Value: value, Err: err}
		if n.tree != nil {
			n.tree.report(err)
		}
	}
	if apply == nil {
		return err
	}
	n.inline = slices.DeleteFunc(n.inline, func(d compiledDecl) bool {
		return d.Property == property
	})
	n.inline = append(n.inline, compiledDecl{Declaration: Decl(property, value), apply: apply})
	n.invalidateStyle()
	return err
}

// Mount appends children. A child whose id is already in the tree is an
// error and nothing is mounted.
func (n *Node) Mount(children ...*Node) error {
	if n.tree != nil {
		if err := n.tree.checkIDs(children); err != nil {
			return err
		}
	}
	for _, c := range children {
		c.parentID = n.id
		n.children = append(n.children, c)
		if n.tree != nil {
			n.tree.register(c)
		}
	}
	n.MarkDirty()
	return nil
}

// Remove detaches the node and its subtree from its parent. Timers, deferred
// calls and animations owned by the subtree are dropped.
func (n *Node) Remove() {
	parent := n.Parent()
	if parent == nil {
		return
	}
	parent.children = slices.DeleteFunc(parent.children, func(c *Node) bool {
		return c == n
	})
	n.tree.unregister(n)
	n.parentID = ""
	parent.MarkDirty()
}

// Mounted reports whether the node is part of a tree.
func (n *Node) Mounted() bool {
	return n.tree != nil
}

// MarkDirty marks the node and its ancestors as needing layout and tells the
// owning app to render.
func (n *Node) MarkDirty() {
	for node := n; node != nil; node = node.Parent() {
		node.dirty = true
	}
	if n.tree != nil {
		n.tree.changed()
	}
}

// Refresh schedules a repaint without invalidating layout.
func (n *Node) Refresh() {
	if n.tree != nil {
		n.tree.changed()
	}
}

// CallLater runs fn on the event loop after the current turn. It is dropped
// if the node has been removed by then.
func (n *Node) CallLater(fn func()) error {
	if n.tree == nil || n.tree.app == nil {
		return ErrNotMounted
	}
	id := n.id
	tree := n.tree
	return tree.app.Post(func() {
		if tree.nodes[id] == n {
			fn()
		}
	})
}

// invalidateStyle drops the cached style of the node and its descendants.
func (n *Node) invalidateStyle() {
	n.walk(func(d *Node) bool {
		d.styleValid = false
		d.dirty = true
		return true
	})
	n.MarkDirty()
}

// walk visits the subtree in document order while fn returns true.
func (n *Node) walk(fn func(*Node) bool) bool {
	if !fn(n) {
		return false
	}
	for _, c := range n.children {
		if !c.walk(fn) {
			return false
		}
	}
	return true
}
