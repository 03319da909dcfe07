package tui

import (
	"fmt"
	"strings"
)

// Selectable is what a selector is matched against. Node implements it.
type Selectable interface {
	TypeName() string
	ID() string
	HasClass(class string) bool
	HasPseudo(state string) bool
}

// Combinator joins two compound selectors.
type Combinator uint8

const (
	// Descendant matches any ancestor (whitespace).
	Descendant Combinator = iota
	// Child matches the immediate parent (>).
	Child
)

// Compound is a run of simple selectors that must all match one node,
// e.g. "Button#ok.primary:hover".
type Compound struct {
	Type    string // "" or "*" matches any type
	ID      string
	Classes []string
	Pseudo  []string
}

func (c Compound) matches(n Selectable) bool {
	if c.Type != "" && c.Type != "*" && c.Type != n.TypeName() {
		return false
	}
	if c.ID != "" && c.ID != n.ID() {
		return false
	}
	for _, class := range c.Classes {
		if !n.HasClass(class) {
			return false
		}
	}
	for _, p := range c.Pseudo {
		if !n.HasPseudo(p) {
			return false
		}
	}
	return true
}

// Selector is a chain of compounds. Combinators[i] joins Parts[i] and
// Parts[i+1]; the last part is the subject the selector styles.
type Selector struct {
	Parts       []Compound
	Combinators []Combinator
	raw         string
}

// String returns the selector source text.
func (s Selector) String() string {
	return s.raw
}

// Specificity counts (ids, classes + pseudo-classes, types).
type Specificity [3]int

// Less orders specificities lexicographically.
func (a Specificity) Less(b Specificity) bool {
	for i := range a {
		if a[i] != b[i] {
			return a[i] < b[i]
		}
	}
	return false
}

// Specificity returns the selector's specificity.
func (s Selector) Specificity() Specificity {
	var sp Specificity
	for _, p := range s.Parts {
		if p.ID != "" {
			sp[0]++
		}
		sp[1] += len(p.Classes) + len(p.Pseudo)
		if p.Type != "" && p.Type != "*" {
			sp[2]++
		}
	}
	return sp
}

// Match reports whether the selector matches the last node of path. path runs
// from the root to the node being styled.
func (s Selector) Match(path []Selectable) bool {
	if len(path) == 0 || len(s.Parts) == 0 {
		return false
	}
	return s.matchAt(len(s.Parts)-1, path, len(path)-1)
}

// matchAt checks Parts[pi] against path[ni] and then the rest of the chain
// leftward, backtracking over ancestors for descendant combinators.
func (s Selector) matchAt(pi int, path []Selectable, ni int) bool {
	if !s.Parts[pi].matches(path[ni]) {
		return false
	}
	if pi == 0 {
		return true
	}
	if s.Combinators[pi-1] == Child {
		return ni > 0 && s.matchAt(pi-1, path, ni-1)
	}
	for j := ni - 1; j >= 0; j-- {
		if s.matchAt(pi-1, path, j) {
			return true
		}
	}
	return false
}

// SelectorList is a comma separated group of alternatives.
type SelectorList []Selector

// Match returns the highest specificity among the alternatives that match.
func (l SelectorList) Match(path []Selectable) (Specificity, bool) {
	var best Specificity
	found := false
	for _, s := range l {
		if !s.Match(path) {
			continue
		}
		if sp := s.Specificity(); !found || best.Less(sp) {
			best = sp
		}
		found = true
	}
	return best, found
}

// String returns the list as source text.
func (l SelectorList) String() string {
	parts := make([]string, len(l))
	for i, s := range l {
		parts[i] = s.raw
	}
	return strings.Join(parts, ", ")
}

// ParseSelector parses a selector list such as "Screen > .panel Button:hover, #footer".
func ParseSelector(src string) (SelectorList, error) {
	var list SelectorList
	for _, alt := range strings.Split(src, ",") {
		alt = strings.TrimSpace(alt)
		if alt == "" {
			return nil, fmt.Errorf("empty selector in %q", src)
		}
		sel, err := parseChain(alt)
		if err != nil {
			return nil, err
		}
		list = append(list, sel)
	}
	return list, nil
}

func parseChain(src string) (Selector, error) {
	sel := Selector{raw: src}
	p := &selectorParser{src: src}

	pendingChild := false
	for {
		sawSpace := p.skipSpace()
		if p.done() {
			break
		}
		if p.peek() == '>' {
			if len(sel.Parts) == 0 || pendingChild {
				return Selector{}, fmt.Errorf("selector %q: misplaced '>'", src)
			}
			p.pos++
			pendingChild = true
			continue
		}
		if len(sel.Parts) > 0 {
			if !sawSpace && !pendingChild {
				return Selector{}, fmt.Errorf("selector %q: unexpected %q at %d", src, p.peek(), p.pos)
			}
			comb := Descendant
			if pendingChild {
				comb = Child
			}
			sel.Combinators = append(sel.Combinators, comb)
		}
		pendingChild = false

		c, err := p.compound()
		if err != nil {
			return Selector{}, fmt.Errorf("selector %q: %w", src, err)
		}
		sel.Parts = append(sel.Parts, c)
	}

	if pendingChild {
		return Selector{}, fmt.Errorf("selector %q: trailing '>'", src)
	}
	if len(sel.Parts) == 0 {
		return Selector{}, fmt.Errorf("empty selector")
	}
	return sel, nil
}

type selectorParser struct {
	src string
	pos int
}

func (p *selectorParser) done() bool { return p.pos >= len(p.src) }
func (p *selectorParser) peek() byte { return p.src[p.pos] }

func (p *selectorParser) skipSpace() bool {
	start := p.pos
	for !p.done() && (p.peek() == ' ' || p.peek() == '\t' || p.peek() == '\n') {
		p.pos++
	}
	return p.pos > start
}

func isIdentByte(b byte) bool {
	return b == '-' || b == '_' ||
		(b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z') || (b >= '0' && b <= '9')
}

func (p *selectorParser) ident() (string, error) {
	start := p.pos
	for !p.done() && isIdentByte(p.peek()) {
		p.pos++
	}
	if p.pos == start {
		if p.done() {
			return "", fmt.Errorf("expected name at end of input")
		}
		return "", fmt.Errorf("expected name at %d, got %q", p.pos, p.peek())
	}
	return p.src[start:p.pos], nil
}

func (p *selectorParser) compound() (Compound, error) {
	var c Compound
	if p.peek() == '*' {
		c.Type = "*"
		p.pos++
	} else if isIdentByte(p.peek()) {
		name, _ := p.ident()
		c.Type = name
	}

	for !p.done() {
		kind := p.peek()
		if kind != '#' && kind != '.' && kind != ':' {
			break
		}
		p.pos++
		name, err := p.ident()
		if err != nil {
			return Compound{}, err
		}
		switch kind {
		case '#':
			if c.ID != "" {
				return Compound{}, fmt.Errorf("two ids in one compound")
			}
			c.ID = name
		case '.':
			c.Classes = append(c.Classes, name)
		case ':':
			c.Pseudo = append(c.Pseudo, name)
		}
	}

	if c.Type == "" && c.ID == "" && len(c.Classes) == 0 && len(c.Pseudo) == 0 {
		return Compound{}, fmt.Errorf("unexpected %q at %d", p.peek(), p.pos)
	}
	if !p.done() && !isSelectorBoundary(p.peek()) {
		return Compound{}, fmt.Errorf("unexpected %q at %d", p.peek(), p.pos)
	}
	return c, nil
}

func isSelectorBoundary(b byte) bool {
	return b == ' ' || b == '\t' || b == '\n' || b == '>'
}
