package sim

// TryMove translates bounds by d and returns the result, unless the
// translated box overlaps any obstacle, in which case the whole move is
// rejected and bounds is returned unchanged. There is no per-axis sliding:
// a diagonal move blocked on one axis is discarded even if the other axis
// alone would have been free.
func TryMove(bounds Rect, d Vec2, obstacles []Rect) Rect {
	candidate := bounds.Translated(d)
	for _, o := range obstacles {
		if RectsOverlap(candidate, o) {
			return bounds
		}
	}
	return candidate
}

// ClampToWorld keeps bounds fully inside world: the top-left corner is
// limited to [world.X, world.Right()-bounds.W] on X and likewise on Y.
func ClampToWorld(bounds Rect, world Rect) Rect {
	bounds.X = clampF(bounds.X, world.X, world.Right()-bounds.W)
	bounds.Y = clampF(bounds.Y, world.Y, world.Bottom()-bounds.H)
	return bounds
}

// Resolver applies displacements against a fixed obstacle set and world box.
type Resolver struct {
	Obstacles []Rect
	World     Rect

	// AxisSliding resolves X then Y independently so actors slide along
	// walls instead of sticking in corners. Off by default.
	AxisSliding bool
}

// Move resolves d against the obstacles and then clamps to the world box.
// The clamp applies whether or not the move was rejected.
func (r Resolver) Move(bounds Rect, d Vec2) Rect {
	if r.AxisSliding {
		bounds = TryMove(bounds, Vec2{X: d.X}, r.Obstacles)
		bounds = TryMove(bounds, Vec2{Y: d.Y}, r.Obstacles)
	} else {
		bounds = TryMove(bounds, d, r.Obstacles)
	}
	return ClampToWorld(bounds, r.World)
}

// Blocked reports whether bounds overlaps any obstacle.
func (r Resolver) Blocked(bounds Rect) bool {
	for _, o := range r.Obstacles {
		if RectsOverlap(bounds, o) {
			return true
		}
	}
	return false
}
