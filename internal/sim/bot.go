package sim

import "math"

// RouteBot is a scripted player that walks a fixed list of waypoints by
// pressing the four direction keys. It stands in for a human in the batch
// report.
type RouteBot struct {
	Route    []Vec2
	Deadzone float64

	next  int
	world Rect
	size  Vec2
}

// NewRouteBot creates a bot for a player of the given size. Waypoints beyond
// the world edge are steered toward but count as reached at the clamp.
func NewRouteBot(route []Vec2, world Rect, size Vec2) *RouteBot {
	return &RouteBot{Route: route, Deadzone: 4, world: world, size: size}
}

// HouseRoute visits every item in the default house and ends in the exit.
// Coordinates are the player's top-left corner.
func HouseRoute() []Vec2 {
	return []Vec2{
		{140, 140}, // key
		{280, 135}, {360, 135}, {450, 135}, {560, 135}, {650, 135},
		{740, 140}, // hammer
		{650, 135}, {560, 135}, {560, 415}, {650, 415},
		{740, 440}, // screwdriver
		{650, 415}, {560, 415}, {450, 415}, {360, 415}, {280, 415},
		{140, 390}, // battery
		{280, 415}, {360, 415}, {360, 655}, {280, 655},
		{140, 640}, // master key
		{280, 655}, {360, 655}, {360, -20},
		{1100, -20}, // exit
	}
}

// Intent returns the keys to hold from pos.
func (b *RouteBot) Intent(pos Vec2) Intent {
	for b.next < len(b.Route) {
		target := b.Route[b.next]
		reach := ClampToWorld(Rect{target.X, target.Y, b.size.X, b.size.Y}, b.world).Pos()
		if math.Abs(reach.X-pos.X) > b.Deadzone || math.Abs(reach.Y-pos.Y) > b.Deadzone {
			dx, dy := target.X-pos.X, target.Y-pos.Y
			return Intent{
				Up:    dy < -b.Deadzone,
				Down:  dy > b.Deadzone,
				Left:  dx < -b.Deadzone,
				Right: dx > b.Deadzone,
			}
		}
		b.next++
	}
	return Intent{}
}

// Restart sends the bot back to the first waypoint, e.g. after a capture.
func (b *RouteBot) Restart() { b.next = 0 }

// Done reports whether the last waypoint has been reached.
func (b *RouteBot) Done() bool { return b.next >= len(b.Route) }

// Progress returns the index of the waypoint being walked to.
func (b *RouteBot) Progress() int { return b.next }
