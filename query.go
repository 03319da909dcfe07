package tui

import (
	"slices"
	"strings"
)

// Query returns the nodes matching selector in document order. A selector
// that is a single class, such as ".item", is answered from the class index.
func (t *Tree) Query(selector string) ([]*Node, error) {
	sel, err := ParseSelector(selector)
	if err != nil {
		return nil, &StyleError{Selector: selector, Err: err}
	}
	if class, ok := singleClass(sel); ok {
		return t.ByClass(class), nil
	}

	var out []*Node
	var path []Selectable
	var visit func(n *Node)
	visit = func(n *Node) {
		path = append(path, n)
		if _, ok := sel.Match(path); ok {
			out = append(out, n)
		}
		for _, c := range n.children {
			visit(c)
		}
		path = path[:len(path)-1]
	}
	if t.root != nil {
		visit(t.root)
	}
	return out, nil
}

// QueryOne returns the first node matching selector in document order.
func (t *Tree) QueryOne(selector string) (*Node, error) {
	if id, ok := strings.CutPrefix(selector, "#"); ok && isName(id) {
		return t.Get(id)
	}
	nodes, err := t.Query(selector)
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &LookupError{Query: selector}
	}
	return nodes[0], nil
}

// ByClass returns the nodes carrying class in document order.
func (t *Tree) ByClass(class string) []*Node {
	ids := t.classIndex[class]
	if len(ids) == 0 {
		return nil
	}
	out := make([]*Node, 0, len(ids))
	for id := range ids {
		out = append(out, t.nodes[id])
	}
	slices.SortFunc(out, func(a, b *Node) int {
		return slices.Compare(t.position(a), t.position(b))
	})
	return out
}

// position returns the child indices leading from the root to n, which
// order nodes by document order when compared lexicographically.
func (t *Tree) position(n *Node) []int {
	var rev []int
	for node := n; ; {
		parent := node.Parent()
		if parent == nil {
			break
		}
		rev = append(rev, slices.Index(parent.children, node))
		node = parent
	}
	slices.Reverse(rev)
	return rev
}

func singleClass(sel SelectorList) (string, bool) {
	if len(sel) != 1 || len(sel[0].Parts) != 1 {
		return "", false
	}
	c := sel[0].Parts[0]
	if c.Type != "" || c.ID != "" || len(c.Pseudo) > 0 || len(c.Classes) != 1 {
		return "", false
	}
	return c.Classes[0], true
}

func isName(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if !isIdentByte(s[i]) {
			return false
		}
	}
	return true
}
