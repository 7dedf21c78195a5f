package core

import "fmt"

// Axis restricts which sides of a collider take part in a point test.
type Axis int

const (
	AxisBoth       Axis = iota // All sides
	AxisHorizontal             // Left and right sides only
	AxisVertical               // Top and bottom sides only
)

// String returns the axis name.
func (a Axis) String() string {
	switch a {
	case AxisBoth:
		return "both"
	case AxisHorizontal:
		return "horizontal"
	case AxisVertical:
		return "vertical"
	default:
		return "unknown"
	}
}

// Shape is the closed set of collider variants.
type Shape int

const (
	ShapeCircle Shape = iota
	ShapeRect
)

// String returns the shape name.
func (s Shape) String() string {
	switch s {
	case ShapeCircle:
		return "circle"
	case ShapeRect:
		return "rect"
	default:
		return "unknown"
	}
}

// circleTouchEpsilon is the tolerance for a point lying on a circle outline.
const circleTouchEpsilon = 0.01

// Collider is a geometric shape used for discrete, point-sampled overlap tests.
// For circles the origin is the center, for rectangles the top-left corner.
// Colliders are mutable: Translate moves the shape in place.
type Collider struct {
	shape  Shape
	origin Vector2
	radius float64 // circle only
	width  float64 // rect only
	height float64 // rect only
}

// NewCircle creates a circle collider.
func NewCircle(center Vector2, radius float64) *Collider {
	return &Collider{shape: ShapeCircle, origin: center, radius: radius}
}

// CircleFromDimensions creates the circle inscribed into an object box given
// its top-left position and size. The radius is the mean of the half sides.
func CircleFromDimensions(position Vector2, width, height float64) *Collider {
	center := Vec(position.X+width/2, position.Y+height/2)
	return NewCircle(center, (width+height)/4)
}

// NewRect creates a rectangle collider.
func NewRect(origin Vector2, width, height float64) *Collider {
	return &Collider{shape: ShapeRect, origin: origin, width: width, height: height}
}

// Shape returns the collider variant.
func (c *Collider) Shape() Shape {
	return c.shape
}

// Position returns the collider origin.
func (c *Collider) Position() Vector2 {
	return c.origin
}

// Radius returns the circle radius (zero for rectangles).
func (c *Collider) Radius() float64 {
	return c.radius
}

// Size returns the rectangle width and height (zero for circles).
func (c *Collider) Size() (float64, float64) {
	return c.width, c.height
}

// Translate moves the collider by the given vector.
func (c *Collider) Translate(v Vector2) {
	c.origin = c.origin.Add(v)
}

// Clone returns an independent copy of the collider.
func (c *Collider) Clone() *Collider {
	cp := *c
	return &cp
}

// PointInside reports whether p lies strictly inside the collider. Points on
// the outline are not inside.
//
// Rectangles treat a point touching the side of the opposite axis as inside:
// with AxisVertical a point on the left or right side counts, with
// AxisHorizontal a point on the top or bottom side counts. Circles ignore the
// axis.
func (c *Collider) PointInside(p Vector2, axis Axis) bool {
	switch c.shape {
	case ShapeCircle:
		return Distance(p, c.origin) < c.radius
	case ShapeRect:
		truly := p.X > c.origin.X && p.X < c.origin.X+c.width &&
			p.Y > c.origin.Y && p.Y < c.origin.Y+c.height

		switch axis {
		case AxisHorizontal:
			return truly || c.PointTouches(p, AxisVertical)
		case AxisVertical:
			return truly || c.PointTouches(p, AxisHorizontal)
		default:
			return truly
		}
	default:
		panic(fmt.Sprintf("core: unknown collider shape %d", c.shape))
	}
}

// PointTouches reports whether p lies on the collider outline. Rectangles
// compare coordinates exactly and honour the axis restriction; circles use a
// small tolerance and ignore the axis.
func (c *Collider) PointTouches(p Vector2, axis Axis) bool {
	switch c.shape {
	case ShapeCircle:
		d := Distance(p, c.origin) - c.radius
		return d < circleTouchEpsilon && d > -circleTouchEpsilon
	case ShapeRect:
		left, right := c.origin.X, c.origin.X+c.width
		top, bottom := c.origin.Y, c.origin.Y+c.height

		onLeftOrRight := (p.X == left || p.X == right) && p.Y >= top && p.Y <= bottom
		onTopOrBottom := (p.Y == top || p.Y == bottom) && p.X >= left && p.X <= right

		switch axis {
		case AxisHorizontal:
			return onLeftOrRight
		case AxisVertical:
			return onTopOrBottom
		default:
			return onLeftOrRight || onTopOrBottom
		}
	default:
		panic(fmt.Sprintf("core: unknown collider shape %d", c.shape))
	}
}

// ValidationPoints returns the sample points used for collision checks.
// Circles yield the center and the four axis-aligned points on the outline.
// Rectangles yield the four corners and the four edge midpoints.
func (c *Collider) ValidationPoints() []Vector2 {
	o := c.origin
	switch c.shape {
	case ShapeCircle:
		r := c.radius
		return []Vector2{
			o,
			Vec(o.X, o.Y+r),
			Vec(o.X, o.Y-r),
			Vec(o.X+r, o.Y),
			Vec(o.X-r, o.Y),
		}
	case ShapeRect:
		w, h := c.width, c.height
		return []Vector2{
			o,
			Vec(o.X, o.Y+h/2),
			Vec(o.X, o.Y+h),
			Vec(o.X+w/2, o.Y),
			Vec(o.X+w, o.Y),
			Vec(o.X+w, o.Y+h/2),
			Vec(o.X+w, o.Y+h),
			Vec(o.X+w/2, o.Y+h),
		}
	default:
		panic(fmt.Sprintf("core: unknown collider shape %d", c.shape))
	}
}

// String describes the collider, e.g. "rect@v(0|400) 50x20".
func (c *Collider) String() string {
	if c.shape == ShapeCircle {
		return fmt.Sprintf("circle@%s r=%g", c.origin, c.radius)
	}
	return fmt.Sprintf("rect@%s %gx%g", c.origin, c.width, c.height)
}
