// layout.go re-exports layout types from internal/layout.
// Any changes to internal/layout types must be mirrored here.
package tui

import "github.com/grindlemire/tuicss/internal/layout"

// Rect represents a rectangle with position and dimensions.
type Rect = layout.Rect

// Edges represents spacing on four sides (top, right, bottom, left).
type Edges = layout.Edges

// Size represents a non-negative width/height pair.
type Size = layout.Size

// Point represents an x/y coordinate or offset. It may be negative.
type Point = layout.Point

// Value represents a dimension value (auto, fixed, percent or fraction).
type Value = layout.Value

// Unit specifies how a Value is interpreted.
type Unit = layout.Unit

const (
	UnitAuto     = layout.UnitAuto
	UnitFixed    = layout.UnitFixed
	UnitPercent  = layout.UnitPercent
	UnitFraction = layout.UnitFraction
)

// LayoutMode specifies how a container arranges its flow children.
type LayoutMode = layout.Mode

const (
	LayoutVertical   = layout.Vertical
	LayoutHorizontal = layout.Horizontal
	LayoutGrid       = layout.Grid
)

// Dock pins a node to an edge of its parent.
type Dock = layout.Dock

const (
	DockNone   = layout.DockNone
	DockTop    = layout.DockTop
	DockRight  = layout.DockRight
	DockBottom = layout.DockBottom
	DockLeft   = layout.DockLeft
)

// Overflow controls clipping and scrolling on one axis.
type Overflow = layout.Overflow

const (
	OverflowHidden = layout.OverflowHidden
	OverflowAuto   = layout.OverflowAuto
	OverflowScroll = layout.OverflowScroll
)

// HAlign is horizontal placement within a box.
type HAlign = layout.HAlign

const (
	AlignLeft   = layout.AlignLeft
	AlignCenter = layout.AlignCenter
	AlignRight  = layout.AlignRight
)

// VAlign is vertical placement within a box.
type VAlign = layout.VAlign

const (
	AlignTop    = layout.AlignTop
	AlignMiddle = layout.AlignMiddle
	AlignBottom = layout.AlignBottom
)

// DefaultLayer is the layer nodes sit on unless they name another.
const DefaultLayer = layout.DefaultLayer

// LayoutStyle holds the layout properties for a node.
type LayoutStyle = layout.Style

// LayoutResult holds the computed layout for a node.
type LayoutResult = layout.Layout

// Layoutable is the interface that nodes must implement for layout calculation.
type Layoutable = layout.Layoutable

// Fixed creates a Value with a fixed character count.
func Fixed(n int) Value {
	return layout.Fixed(n)
}

// Percent creates a Value representing a percentage of the parent's content region.
func Percent(p float64) Value {
	return layout.Percent(p)
}

// Fraction creates a Value taking f shares of the space siblings leave.
func Fraction(f float64) Value {
	return layout.Fraction(f)
}

// Auto creates a Value that sizes to content.
func Auto() Value {
	return layout.Auto()
}

// ParseValue reads "auto", "N", "N%" or "Nfr".
func ParseValue(s string) (Value, error) {
	return layout.ParseValue(s)
}

// NewRect creates a new Rect with the given position and dimensions.
func NewRect(x, y, width, height int) Rect {
	return layout.NewRect(x, y, width, height)
}

// NewSize creates a Size, clamping negative dimensions to zero.
func NewSize(width, height int) Size {
	return layout.NewSize(width, height)
}

// EdgeAll creates Edges with the same value on all sides.
func EdgeAll(n int) Edges {
	return layout.EdgeAll(n)
}

// EdgeSymmetric creates Edges with vertical (top/bottom) and horizontal (left/right) values.
func EdgeSymmetric(v, h int) Edges {
	return layout.EdgeSymmetric(v, h)
}

// EdgeTRBL creates Edges following CSS order: Top, Right, Bottom, Left.
func EdgeTRBL(t, r, b, l int) Edges {
	return layout.EdgeTRBL(t, r, b, l)
}
