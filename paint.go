package tui

import (
	"fmt"
)

// placeholderStyle marks a node whose widget failed to paint.
var placeholderStyle = NewStyle().Foreground(White).Background(Red).Bold()

// paintNode draws n through c: background, then border, then widget content
// aligned into the content region. c's clip is the part of the frame n may
// touch; coordinates are frame coordinates.
func (t *Tree) paintNode(c *Canvas, n *Node, style ComputedStyle) {
	if !style.Visible || c.Empty() {
		return
	}
	rect := n.layout.Rect
	text := style.Text()
	if text.Bg.IsDefault() {
		text.Bg = t.backdrop(n)
	}

	if !style.Background.IsDefault() {
		c.Fill(rect, ' ', text)
	}
	border := style.BorderStyle()
	border.Bg = text.Bg
	DrawBox(c, rect, style.Border, border, n.title)

	content := n.layout.ContentRect
	if n.widget == nil || content.IsEmpty() {
		return
	}

	lines, err := paintWidget(n.widget, content.Size(), style)
	if err != nil {
		t.report(&RenderError{NodeID: n.id, Err: err})
		lines = placeholder(content.Size())
	} else {
		based := make(Lines, len(lines))
		for i, l := range lines {
			based[i] = l.WithBase(text)
		}
		lines = NewAlign(based, content.Size(), text, style.ContentAlignH, style.ContentAlignV).RenderLines(content.Width)
	}

	cc := c.Within(content)
	for i, line := range lines {
		cc.SetStrip(content.X, content.Y+i, line)
	}
}

// backdrop returns the nearest background set on an ancestor of n, which
// shows through nodes without a background of their own.
func (t *Tree) backdrop(n *Node) Color {
	for a := n.Parent(); a != nil; a = a.Parent() {
		if bg := t.Style(a).Background; !bg.IsDefault() {
			return bg
		}
	}
	return DefaultColor()
}

// paintWidget asks w for its content and renders it at the content width.
// A panic in either step is returned as an error.
func paintWidget(w Widget, size Size, style ComputedStyle) ([]Strip, error) {
	r, err := safePaint(w, size, style)
	if err != nil {
		return nil, err
	}
	if r == nil {
		return nil, nil
	}
	return safeRenderLines(r, size.Width)
}

func safePaint(w Widget, size Size, style ComputedStyle) (r Renderable, err error) {
	defer func() {
		if p := recover(); p != nil {
			err = fmt.Errorf("paint panicked: %v", p)
		}
	}()
	return w.Paint(size, style)
}

func safeRenderLines(r Renderable, width int) (lines []Strip, err error) {
	defer func() {
		if p := recover(); p != nil {
			err = fmt.Errorf("render panicked: %v", p)
		}
	}()
	return r.RenderLines(width), nil
}

// placeholder is the block drawn in place of failed content.
func placeholder(size Size) []Strip {
	label := Lines{NewStrip("render error", placeholderStyle)}
	return AlignLines(label, size, placeholderStyle, AlignCenter, AlignMiddle)
}
