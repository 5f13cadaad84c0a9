package aerobatica

// Screen bounds of the playfield. World coordinates map 1:1 to pixels with
// the origin at the top-left and Y increasing downward.
const (
	ScreenWidth  = 1000
	ScreenHeight = 700
)

// Point is an integer pixel position or a per-tick velocity.
type Point struct {
	X, Y int
}

// Add returns p translated by q.
func (p Point) Add(q Point) Point {
	return Point{p.X + q.X, p.Y + q.Y}
}

// Size is an integer width and height in pixels.
type Size struct {
	W, H int
}

// Rect is an axis-aligned rectangle covering [X, X+W) × [Y, Y+H).
type Rect struct {
	X, Y, W, H int
}

// Right returns the exclusive right edge.
func (r Rect) Right() int { return r.X + r.W }

// Bottom returns the exclusive bottom edge.
func (r Rect) Bottom() int { return r.Y + r.H }

// Empty reports whether r covers no pixels.
func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

// Contains reports whether the pixel (x, y) lies inside the rectangle.
// The right and bottom edges are exclusive.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() &&
		y >= r.Y && y < r.Bottom()
}

// Intersects reports whether r and other share at least one pixel.
// Rectangles that only touch along an edge do not intersect, and an empty
// rectangle intersects nothing.
func (r Rect) Intersects(other Rect) bool {
	if r.Empty() || other.Empty() {
		return false
	}
	return r.X < other.Right() &&
		r.Right() > other.X &&
		r.Y < other.Bottom() &&
		r.Bottom() > other.Y
}

// screenRect is the visible playfield.
var screenRect = Rect{0, 0, ScreenWidth, ScreenHeight}

// Visible reports whether any part of r lies on the playfield.
func (r Rect) Visible() bool {
	return r.Intersects(screenRect)
}
