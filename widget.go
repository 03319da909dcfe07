package tui

// WidgetFunc adapts a function to the Widget interface.
type WidgetFunc func(size Size, style ComputedStyle) (Renderable, error)

// Paint implements Widget.
func (f WidgetFunc) Paint(size Size, style ComputedStyle) (Renderable, error) {
	return f(size, style)
}

// Static is a widget showing fixed text in the node's style.
type Static struct {
	Text string
	Wrap bool
}

var (
	_ Widget   = (*Static)(nil)
	_ Measurer = (*Static)(nil)
)

// NewStatic returns a Static widget that does not wrap.
func NewStatic(text string) *Static {
	return &Static{Text: text}
}

// Paint implements Widget.
func (s *Static) Paint(Size, ComputedStyle) (Renderable, error) {
	return &Text{Content: s.Text, Wrap: s.Wrap}, nil
}

// IntrinsicSize implements Measurer.
func (s *Static) IntrinsicSize(maxWidth int, _ ComputedStyle) (width, height int) {
	return measureRenderable(&Text{Content: s.Text, Wrap: s.Wrap}, maxWidth)
}

// Label creates a node of type "Label" showing text.
func Label(text string, opts ...NodeOption) *Node {
	return NewNode("Label", append([]NodeOption{WithWidget(NewStatic(text))}, opts...)...)
}

// Container creates a node of type "Container" holding children.
func Container(children []*Node, opts ...NodeOption) *Node {
	return NewNode("Container", append(opts, WithChildren(children...))...)
}
