package aerobatica

// Collides reports whether the bounding boxes of a and b overlap.
// It is symmetric and has no side effects.
func Collides(a, b *Entity) bool {
	return a.Bounds().Intersects(b.Bounds())
}
