package curveaxis

// Element holds the computed geometry of a visual axis element. Renderers
// write to it from their update methods; drawing back ends read it.
type Element struct {
	// Placement of the element in renderer space.
	X, Y float64
	// Rotation in degrees.
	Rotation float64
	// Path is the element's outline in renderer space. It is nil for
	// elements that are only placed, such as labels and bullets.
	Path BezPath
	// Hidden is set by ToggleVisibility.
	Hidden bool

	// MinPosition and MaxPosition delimit, as fractions of the visible
	// window, where the element may be shown.
	MinPosition float64
	MaxPosition float64
}

func (el *Element) SetHidden(hidden bool) { el.Hidden = hidden }

// Point returns the element's placement.
func (el *Element) Point() Point { return Pt(el.X, el.Y) }

func (el *Element) place(pt Point) {
	el.X = pt.X
	el.Y = pt.Y
}

func newElement() Element {
	return Element{MaxPosition: 1}
}

// Hider is implemented by anything a renderer can hide or show.
type Hider interface {
	SetHidden(hidden bool)
}

// Grid is a grid line at one axis position.
type Grid struct {
	Element
	// Location selects the point inside a cell, 0 being the cell start.
	Location float64
}

func NewGrid() *Grid {
	return &Grid{Element: newElement()}
}

// Tick is a short line marking an axis position.
type Tick struct {
	Element
	Length        float64
	Inside        bool
	Location      float64
	MultiLocation float64
}

func NewTick(length float64) *Tick {
	return &Tick{Element: newElement(), Length: length}
}

// Label is an axis label.
type Label struct {
	Element
	Text string
	// Offset moves the label away from the axis line, towards the plot when
	// Inside is set.
	Offset        float64
	Inside        bool
	Location      float64
	MultiLocation float64
	// FollowPath rotates the label to run along a curved axis.
	FollowPath bool
}

func NewLabel(text string) *Label {
	return &Label{
		Element:       newElement(),
		Text:          text,
		Location:      0.5,
		MultiLocation: 0.5,
	}
}

// Fill is an axis range fill, such as alternating cell backgrounds.
type Fill struct {
	Element
}

func NewFill() *Fill {
	return &Fill{Element: newElement()}
}

// Bullet is a marker placed at an axis position.
type Bullet struct {
	Element
	Location float64
}

func NewBullet() *Bullet {
	return &Bullet{Element: newElement(), Location: 0.5}
}

// Tooltip is the axis tooltip. PointTo is where its pointer points and
// Bounds the region it must stay in.
type Tooltip struct {
	PointTo Point
	Bounds  Rect
	Hidden  bool
}

func (t *Tooltip) SetHidden(hidden bool) { t.Hidden = hidden }

// locate returns the position inside [position, endPosition) selected by
// location.
func locate(position, endPosition, location float64) float64 {
	return position + (endPosition-position)*location
}

func multiLocation(count int, location, multi float64) float64 {
	if count > 1 {
		return multi
	}
	return location
}
