package sim

// Actor is anything that moves through the house with a bounding box.
// Pos is the top-left corner of the box; distances and sight lines are
// measured between these corners.
type Actor struct {
	Pos   Vec2
	Size  Vec2
	Speed float64 // units per second
}

// Bounds returns the actor's bounding box at its current position.
func (a Actor) Bounds() Rect { return Rect{a.Pos.X, a.Pos.Y, a.Size.X, a.Size.Y} }

// Player is the character under input control.
type Player struct {
	Actor
	Health    int
	Inventory []string // item kinds in pickup order
}

// Damage lowers health by n, clamped at zero, and returns the new value.
func (p *Player) Damage(n int) int {
	p.Health -= n
	if p.Health < 0 {
		p.Health = 0
	}
	return p.Health
}

// Intent is the four-way movement request for one tick.
type Intent struct {
	Up, Down, Left, Right bool
}

// Velocity converts intent into a velocity at the given speed. Down wins
// over Up and Right over Left when both are held. Diagonals are scaled by
// diag on each axis.
func (in Intent) Velocity(speed, diag float64) Vec2 {
	var v Vec2
	if in.Up {
		v.Y = -speed
	}
	if in.Down {
		v.Y = speed
	}
	if in.Left {
		v.X = -speed
	}
	if in.Right {
		v.X = speed
	}
	if v.X != 0 && v.Y != 0 {
		v = v.Scale(diag)
	}
	return v
}

// Item is a collectible placed in the house.
type Item struct {
	Kind      string
	Bounds    Rect
	Collected bool
}
