package sim

import "math"

// AdversaryState is the behaviour the adversary is currently running.
type AdversaryState int

const (
	StatePatrol AdversaryState = iota // wandering between random waypoints
	StateChase                        // pursuing the player's current position
	StateSearch                       // walking to where the player was last seen
)

func (s AdversaryState) String() string {
	switch s {
	case StatePatrol:
		return "patrol"
	case StateChase:
		return "chase"
	case StateSearch:
		return "search"
	default:
		return "unknown"
	}
}

// Adversary is the house's hunter. Patrol waypoint and its timer live on the
// entity so several adversaries would not share them.
type Adversary struct {
	Actor

	State       AdversaryState
	Awareness   float64 // [0, MaxAwareness]; maxed on sighting, decays on patrol
	LastSeen    Vec2
	SearchTimer float64

	PatrolTarget    Vec2
	HasPatrolTarget bool
	RetargetTimer   float64
}

// Perception is what the adversary senses about the player this tick.
type Perception struct {
	Distance float64
	Visible  bool // unobstructed line of sight, regardless of range
}

// Perceive measures distance and line of sight to the player.
func (a *Adversary) Perceive(player Vec2, obstacles []Rect) Perception {
	return Perception{
		Distance: player.DistTo(a.Pos),
		Visible:  HasLineOfSight(player, a.Pos, obstacles),
	}
}

// Transition runs one level-triggered state update and returns the state
// held before it. Rules are checked in order:
//
//	in range and visible  -> chase, awareness maxed, last seen updated
//	was chasing           -> search, timer restarted
//	searching, time left  -> keep searching, timer runs down
//	otherwise             -> patrol, awareness decays
func (a *Adversary) Transition(p Perception, player Vec2, dt float64, t Tuning) AdversaryState {
	prev := a.State
	switch {
	case p.Distance < t.DetectionRadius && p.Visible:
		a.State = StateChase
		a.Awareness = t.MaxAwareness
		a.LastSeen = player
		a.SearchTimer = t.SearchDuration
	case a.State == StateChase:
		a.State = StateSearch
		a.SearchTimer = t.SearchDuration
	case a.State == StateSearch && a.SearchTimer > 0:
		a.SearchTimer -= dt
	default:
		a.State = StatePatrol
		a.Awareness = math.Max(0, a.Awareness-t.AwarenessDecay*dt)
	}
	return prev
}

// Steer returns this tick's displacement for the current state. Patrol
// bookkeeping (waypoint, timer) and search jitter mutate the adversary.
func (a *Adversary) Steer(player Vec2, dt float64, rng Rand, patrol Rect, t Tuning) Vec2 {
	switch a.State {
	case StateChase:
		return a.toward(player, a.Speed*t.ChaseMultiplier*dt)
	case StateSearch:
		d := a.toward(a.LastSeen, a.Speed*dt)
		if rng.Float64() < t.SearchJitterChance {
			a.LastSeen.X += jitter(rng, t.SearchJitterRange)
			a.LastSeen.Y += jitter(rng, t.SearchJitterRange)
		}
		return d
	default:
		a.updatePatrolTarget(dt, rng, patrol, t)
		return a.toward(a.PatrolTarget, a.Speed*dt)
	}
}

// updatePatrolTarget picks a fresh waypoint when none is set, the current
// one is reached on both axes, or the timeout has run out.
func (a *Adversary) updatePatrolTarget(dt float64, rng Rand, patrol Rect, t Tuning) {
	a.RetargetTimer -= dt
	arrived := math.Abs(a.Pos.X-a.PatrolTarget.X) < t.PatrolArrive &&
		math.Abs(a.Pos.Y-a.PatrolTarget.Y) < t.PatrolArrive
	if a.HasPatrolTarget && a.RetargetTimer > 0 && !arrived {
		return
	}
	a.PatrolTarget = Vec2{
		X: patrol.X + rng.Float64()*patrol.W,
		Y: patrol.Y + rng.Float64()*patrol.H,
	}
	a.HasPatrolTarget = true
	a.RetargetTimer = t.PatrolTimeout
}

func (a *Adversary) toward(target Vec2, step float64) Vec2 {
	return target.Sub(a.Pos).Normalized().Scale(step)
}

func jitter(rng Rand, r float64) float64 {
	return rng.Float64()*2*r - r
}

// reset returns the adversary to spawn in a fresh patrol.
func (a *Adversary) reset(spawn Vec2) {
	a.Pos = spawn
	a.State = StatePatrol
	a.Awareness = 0
	a.LastSeen = Vec2{}
	a.SearchTimer = 0
	a.PatrolTarget = Vec2{}
	a.HasPatrolTarget = false
	a.RetargetTimer = 0
}
