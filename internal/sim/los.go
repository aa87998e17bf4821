package sim

// HasLineOfSight returns true if the straight segment from a to b crosses no
// edge of any obstacle rectangle. Every call is computed fresh from the
// current positions; there is no spatial index or cache.
func HasLineOfSight(a, b Vec2, obstacles []Rect) bool {
	for _, o := range obstacles {
		if SegmentIntersectsRect(a, b, o) {
			return false
		}
	}
	return true
}

// FirstBlocker returns the index of the first obstacle whose edges cross the
// segment a-b, or -1 when the line is clear. Used by the debug overlay to
// highlight the wall that hid the player.
func FirstBlocker(a, b Vec2, obstacles []Rect) int {
	for i, o := range obstacles {
		if SegmentIntersectsRect(a, b, o) {
			return i
		}
	}
	return -1
}
