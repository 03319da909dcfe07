package layout

// Mode specifies how a container arranges its flow children.
type Mode uint8

const (
	Vertical   Mode = iota // Children stacked top-to-bottom
	Horizontal             // Children stacked left-to-right
	Grid                   // Children placed in equal grid cells
)

// Dock pins a child to an edge of its parent, outside normal flow.
type Dock uint8

const (
	DockNone Dock = iota
	DockTop
	DockRight
	DockBottom
	DockLeft
)

// Overflow controls what happens when children exceed the content region.
type Overflow uint8

const (
	OverflowHidden Overflow = iota // Clip
	OverflowAuto                   // Scroll when content exceeds the viewport
	OverflowScroll                 // Always scrollable
)

// Scrollable reports whether the overflow mode allows scrolling.
func (o Overflow) Scrollable() bool {
	return o == OverflowAuto || o == OverflowScroll
}

// HAlign is horizontal placement within a box.
type HAlign uint8

const (
	AlignLeft HAlign = iota
	AlignCenter
	AlignRight
)

// VAlign is vertical placement within a box.
type VAlign uint8

const (
	AlignTop VAlign = iota
	AlignMiddle
	AlignBottom
)

// DefaultLayer is the layer name used when a node declares none.
const DefaultLayer = "default"

// Style contains all layout properties for a node.
type Style struct {
	// Sizing. Width and Height are border-box sizes.
	Width     Value
	Height    Value
	MinWidth  Value
	MinHeight Value
	MaxWidth  Value // Auto = unbounded
	MaxHeight Value // Auto = unbounded

	// Box model
	Margin  Edges
	Border  Edges
	Padding Edges

	// Container properties
	Mode       Mode
	Layers     []string // Stack order of layers declared on this container
	AlignH     HAlign   // Placement of the flow block within free space
	AlignV     VAlign
	GridCols   int
	GridRows   int
	GridGutter int
	OverflowX  Overflow
	OverflowY  Overflow

	// Item properties
	Dock   Dock
	Layer  string // "" means DefaultLayer
	Offset Point
	Hidden bool // display: none
}

// DefaultStyle returns a Style with sensible defaults.
func DefaultStyle() Style {
	return Style{
		Width:     Fraction(1),
		Height:    Auto(),
		MinWidth:  Fixed(0),
		MinHeight: Fixed(0),
		MaxWidth:  Auto(),
		MaxHeight: Auto(),
	}
}

// LayerName returns the effective layer name.
func (s Style) LayerName() string {
	if s.Layer == "" {
		return DefaultLayer
	}
	return s.Layer
}

// Box returns border plus padding: everything between region and content.
func (s Style) Box() Edges {
	return s.Border.Add(s.Padding)
}
