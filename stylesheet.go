package tui

import (
	"slices"
	"strings"
)

// Declaration is one property assignment, e.g. {"width", "50%"}.
type Declaration struct {
	Property string
	Value    string
}

// Decl is shorthand for a Declaration.
func Decl(property, value string) Declaration {
	return Declaration{Property: property, Value: value}
}

// compiledDecl is a declaration with its value already parsed.
type compiledDecl struct {
	Declaration
	apply applyFunc
}

// compileDeclarations parses decls. Unknown properties are dropped; malformed
// values compile to their property's default. Both produce a StyleError.
func compileDeclarations(selector string, decls []Declaration) ([]compiledDecl, []error) {
	var out []compiledDecl
	var errs []error
	for _, d := range decls {
		apply, err := compileDeclaration(d.Property, d.Value)
		if err != nil {
			errs = append(errs, &StyleError{Selector: selector, Property: d.Property, Value: d.Value, Err: err})
		}
		if apply != nil {
			out = append(out, compiledDecl{Declaration: d, apply: apply})
		}
	}
	return out, errs
}

// Rule pairs a selector list with ordered declarations. Rules are immutable
// once created.
type Rule struct {
	selectors SelectorList
	decls     []compiledDecl
	errs      []error
	order     int // source order, assigned by the Stylesheet
}

// NewRule parses selector and compiles decls. A selector that does not parse
// is an error; problems with individual declarations are kept on the rule and
// reported when it is added to a Stylesheet.
func NewRule(selector string, decls ...Declaration) (*Rule, error) {
	sel, err := ParseSelector(selector)
	if err != nil {
		return nil, &StyleError{Selector: selector, Err: err}
	}
	compiled, errs := compileDeclarations(sel.String(), decls)
	return &Rule{selectors: sel, decls: compiled, errs: errs, order: -1}, nil
}

// MustRule is like NewRule but panics on a selector error.
func MustRule(selector string, decls ...Declaration) *Rule {
	r, err := NewRule(selector, decls...)
	if err != nil {
		panic(err)
	}
	return r
}

// Selectors returns the rule's selector list.
func (r *Rule) Selectors() SelectorList {
	return r.selectors
}

// Declarations returns the rule's declarations in source order.
func (r *Rule) Declarations() []Declaration {
	out := make([]Declaration, len(r.decls))
	for i, d := range r.decls {
		out[i] = d.Declaration
	}
	return out
}

// Errors returns the declaration problems found when the rule was compiled.
func (r *Rule) Errors() []error {
	return r.errs
}

// Stylesheet is an ordered collection of rules. Its version increases on
// every change so cached computed styles know when they are stale.
type Stylesheet struct {
	rules   []*Rule
	version uint64
}

// NewStylesheet returns a stylesheet holding rules in order.
func NewStylesheet(rules ...*Rule) *Stylesheet {
	s := &Stylesheet{}
	s.Add(rules...)
	return s
}

// Add appends rules, assigning each its source order, and returns the
// declaration errors they carry. Each rule's errors are returned only by the
// call that loads it.
func (s *Stylesheet) Add(rules ...*Rule) []error {
	var errs []error
	for _, r := range rules {
		if r == nil {
			continue
		}
		loaded := *r
		loaded.order = len(s.rules)
		s.rules = append(s.rules, &loaded)
		errs = append(errs, r.errs...)
	}
	if len(rules) > 0 {
		s.version++
	}
	return errs
}

// Rules returns the loaded rules in source order.
func (s *Stylesheet) Rules() []*Rule {
	return slices.Clone(s.rules)
}

// Version identifies the current contents of the stylesheet.
func (s *Stylesheet) Version() uint64 {
	if s == nil {
		return 0
	}
	return s.version
}

// RuleMatch is a rule that applies to a node and the specificity of its best
// matching selector.
type RuleMatch struct {
	Rule        *Rule
	Specificity Specificity
}

// Match returns the rules whose selectors match the last node of path,
// ordered so that applying them in sequence lets the most specific, latest
// rule win.
func (s *Stylesheet) Match(path []Selectable) []RuleMatch {
	if s == nil {
		return nil
	}
	var matches []RuleMatch
	for _, r := range s.rules {
		if sp, ok := r.selectors.Match(path); ok {
			matches = append(matches, RuleMatch{Rule: r, Specificity: sp})
		}
	}
	slices.SortStableFunc(matches, func(a, b RuleMatch) int {
		switch {
		case a.Specificity.Less(b.Specificity):
			return -1
		case b.Specificity.Less(a.Specificity):
			return 1
		}
		return a.Rule.order - b.Rule.order
	})
	return matches
}

// Compute resolves the style of the last node in path. parent is the
// computed style of its parent, or nil for the root. inline declarations
// apply after every stylesheet rule.
func (s *Stylesheet) Compute(path []Selectable, parent *ComputedStyle, inline []compiledDecl) ComputedStyle {
	style := DefaultComputedStyle()
	if parent != nil {
		inheritFrom(&style, *parent)
	}
	for _, m := range s.Match(path) {
		for _, d := range m.Rule.decls {
			d.apply(&style)
		}
	}
	for _, d := range inline {
		d.apply(&style)
	}
	return style
}

// String renders the stylesheet in a CSS-like form for debugging.
func (s *Stylesheet) String() string {
	var sb strings.Builder
	for _, r := range s.rules {
		sb.WriteString(r.selectors.String())
		sb.WriteString(" {")
		for _, d := range r.decls {
			sb.WriteString(" ")
			sb.WriteString(d.Property)
			sb.WriteString(": ")
			sb.WriteString(d.Value)
			sb.WriteString(";")
		}
		sb.WriteString(" }\n")
	}
	return sb.String()
}
