package sim

import "math"

// Vec2 is a point or displacement in world coordinates.
type Vec2 struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// V is shorthand for Vec2{x, y}.
func V(x, y float64) Vec2 { return Vec2{X: x, Y: y} }

func (v Vec2) Add(o Vec2) Vec2 { return Vec2{v.X + o.X, v.Y + o.Y} }
func (v Vec2) Sub(o Vec2) Vec2 { return Vec2{v.X - o.X, v.Y - o.Y} }
func (v Vec2) Scale(f float64) Vec2 { return Vec2{v.X * f, v.Y * f} }
func (v Vec2) Len() float64 { return math.Hypot(v.X, v.Y) }
func (v Vec2) DistTo(o Vec2) float64 { return o.Sub(v).Len() }
func (v Vec2) IsZero() bool { return v.X == 0 && v.Y == 0 }

// Normalized returns the unit vector in the direction of v, or the zero
// vector when v has no length.
func (v Vec2) Normalized() Vec2 {
	l := v.Len()
	if l == 0 {
		return Vec2{}
	}
	return Vec2{v.X / l, v.Y / l}
}

// Rect is an axis-aligned rectangle anchored at its top-left corner.
type Rect struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	W float64 `json:"w"`
	H float64 `json:"h"`
}

// R is shorthand for Rect{x, y, w, h}.
func R(x, y, w, h float64) Rect { return Rect{X: x, Y: y, W: w, H: h} }

func (r Rect) Right() float64 { return r.X + r.W }
func (r Rect) Bottom() float64 { return r.Y + r.H }
func (r Rect) Pos() Vec2 { return Vec2{r.X, r.Y} }

// Empty reports whether the rectangle has no area.
func (r Rect) Empty() bool { return r.W <= 0 || r.H <= 0 }

// Translated returns r moved by d.
func (r Rect) Translated(d Vec2) Rect {
	r.X += d.X
	r.Y += d.Y
	return r
}

// At returns r with its top-left corner moved to p.
func (r Rect) At(p Vec2) Rect {
	r.X, r.Y = p.X, p.Y
	return r
}

// ContainsPoint reports whether p lies in the half-open box [X,Right) x [Y,Bottom).
func (r Rect) ContainsPoint(p Vec2) bool {
	return p.X >= r.X && p.X < r.Right() && p.Y >= r.Y && p.Y < r.Bottom()
}

// Edges returns the four boundary segments: top, right, bottom, left.
func (r Rect) Edges() [4][2]Vec2 {
	tl := Vec2{r.X, r.Y}
	tr := Vec2{r.Right(), r.Y}
	br := Vec2{r.Right(), r.Bottom()}
	bl := Vec2{r.X, r.Bottom()}
	return [4][2]Vec2{{tl, tr}, {tr, br}, {bl, br}, {tl, bl}}
}

// RectsOverlap is a strict AABB test: rectangles that only share an edge
// do not overlap.
func RectsOverlap(a, b Rect) bool {
	if a.X >= b.Right() || b.X >= a.Right() {
		return false
	}
	if a.Y >= b.Bottom() || b.Y >= a.Bottom() {
		return false
	}
	return true
}

// SegmentsIntersect reports whether segment p1-p2 crosses segment q1-q2.
// Parallel and collinear segments (zero denominator) never intersect, and
// neither does a zero-length segment.
func SegmentsIntersect(p1, p2, q1, q2 Vec2) bool {
	den := (p1.X-p2.X)*(q1.Y-q2.Y) - (p1.Y-p2.Y)*(q1.X-q2.X)
	if den == 0 {
		return false
	}
	t := ((p1.X-q1.X)*(q1.Y-q2.Y) - (p1.Y-q1.Y)*(q1.X-q2.X)) / den
	u := -((p1.X-p2.X)*(p1.Y-q1.Y) - (p1.Y-p2.Y)*(p1.X-q1.X)) / den
	return t >= 0 && t <= 1 && u >= 0 && u <= 1
}

// SegmentIntersectsRect reports whether segment p1-p2 crosses any of the
// rectangle's four edges. A segment lying wholly inside the rectangle does
// not count.
func SegmentIntersectsRect(p1, p2 Vec2, r Rect) bool {
	for _, e := range r.Edges() {
		if SegmentsIntersect(p1, p2, e[0], e[1]) {
			return true
		}
	}
	return false
}

// SubtractRect returns the parts of r not covered by hole, as up to four
// non-overlapping rectangles. r is returned unchanged when they don't overlap.
func SubtractRect(r, hole Rect) []Rect {
	if !RectsOverlap(r, hole) {
		return []Rect{r}
	}
	var out []Rect
	// Full-width bands above and below the hole.
	if hole.Y > r.Y {
		out = append(out, Rect{r.X, r.Y, r.W, hole.Y - r.Y})
	}
	if hole.Bottom() < r.Bottom() {
		out = append(out, Rect{r.X, hole.Bottom(), r.W, r.Bottom() - hole.Bottom()})
	}
	// Side pieces within the hole's vertical span.
	top := math.Max(r.Y, hole.Y)
	bottom := math.Min(r.Bottom(), hole.Bottom())
	if hole.X > r.X {
		out = append(out, Rect{r.X, top, hole.X - r.X, bottom - top})
	}
	if hole.Right() < r.Right() {
		out = append(out, Rect{hole.Right(), top, r.Right() - hole.Right(), bottom - top})
	}
	return out
}

func clampF(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
