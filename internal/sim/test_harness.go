package sim

// TestSim is a headless harness for tests and the batch report. It builds a
// minimal level from options, with deterministic randomness by default.
type TestSim struct {
	Level  *Level
	World  *World
	SimLog *SimLog
	Rand   Rand

	tuning         Tuning
	adversaryWalls bool
	axisSliding    bool
}

// simOptionKind controls the pass in which an option is applied.
type simOptionKind int

const (
	simOptLevel simOptionKind = iota // level geometry, tuning, randomness, applied first
	simOptWorld                      // mutate the built world's startup state
)

// SimOption is a builder function applied to a TestSim during construction.
type SimOption struct {
	kind simOptionKind
	fn   func(*TestSim)
}

// emptyLevel is an open 1200x800 room with the house's actor specs, no
// walls, no items and no exit.
func emptyLevel() *Level {
	h := DefaultHouse()
	return &Level{
		Name:          "empty",
		World:         h.World,
		WallThickness: WallThickness,
		Player:        h.Player,
		Adversary:     h.Adversary,
		PatrolBounds:  h.PatrolBounds,
	}
}

// WithHouse starts from the shipped house instead of an empty room. Put it
// before other level options; it replaces whatever was built so far.
func WithHouse() SimOption {
	return SimOption{simOptLevel, func(ts *TestSim) {
		ts.Level = DefaultHouse()
	}}
}

// WithWorldSize sets the playfield dimensions.
func WithWorldSize(w, h float64) SimOption {
	return SimOption{simOptLevel, func(ts *TestSim) {
		ts.Level.World = R(0, 0, w, h)
	}}
}

// WithWall adds a free-standing obstacle.
func WithWall(x, y, w, h float64) SimOption {
	return SimOption{simOptLevel, func(ts *TestSim) {
		ts.Level.Walls = append(ts.Level.Walls, R(x, y, w, h))
	}}
}

// WithRoom adds a walled room; pair it with WithDoor to get in.
func WithRoom(name string, x, y, w, h float64) SimOption {
	return SimOption{simOptLevel, func(ts *TestSim) {
		ts.Level.Rooms = append(ts.Level.Rooms, RoomSpec{Name: name, Bounds: R(x, y, w, h)})
	}}
}

// WithDoor carves an opening out of any room wall it overlaps.
func WithDoor(x, y, w, h float64) SimOption {
	return SimOption{simOptLevel, func(ts *TestSim) {
		ts.Level.Doors = append(ts.Level.Doors, R(x, y, w, h))
	}}
}

// WithItem places a 20x20 item with its top-left at (x,y).
func WithItem(kind string, x, y float64) SimOption {
	return SimOption{simOptLevel, func(ts *TestSim) {
		ts.Level.Items = append(ts.Level.Items, ItemSpec{Kind: kind, Pos: V(x, y), Size: V(20, 20)})
	}}
}

// WithExit sets the exit region.
func WithExit(x, y, w, h float64) SimOption {
	return SimOption{simOptLevel, func(ts *TestSim) {
		ts.Level.Exit = R(x, y, w, h)
	}}
}

// WithPlayerAt moves the player's spawn point.
func WithPlayerAt(x, y float64) SimOption {
	return SimOption{simOptLevel, func(ts *TestSim) {
		ts.Level.Player.Spawn = V(x, y)
	}}
}

// WithAdversaryAt moves the adversary's spawn point.
func WithAdversaryAt(x, y float64) SimOption {
	return SimOption{simOptLevel, func(ts *TestSim) {
		ts.Level.Adversary.Spawn = V(x, y)
	}}
}

// WithPatrolBounds sets the box patrol waypoints are drawn from.
func WithPatrolBounds(x, y, w, h float64) SimOption {
	return SimOption{simOptLevel, func(ts *TestSim) {
		ts.Level.PatrolBounds = R(x, y, w, h)
	}}
}

// WithSeed uses a seeded math/rand source.
func WithSeed(seed int64) SimOption {
	return SimOption{simOptLevel, func(ts *TestSim) {
		ts.Rand = NewRand(seed)
	}}
}

// WithRand injects a specific random source, e.g. a ScriptedRand.
func WithRand(r Rand) SimOption {
	return SimOption{simOptLevel, func(ts *TestSim) {
		ts.Rand = r
	}}
}

// WithTuning edits the tuning constants.
func WithTuning(edit func(*Tuning)) SimOption {
	return SimOption{simOptLevel, func(ts *TestSim) {
		edit(&ts.tuning)
	}}
}

// WithAdversaryWalls makes the adversary respect walls.
func WithAdversaryWalls() SimOption {
	return SimOption{simOptLevel, func(ts *TestSim) {
		ts.adversaryWalls = true
	}}
}

// WithAxisSliding lets the player slide along walls.
func WithAxisSliding() SimOption {
	return SimOption{simOptLevel, func(ts *TestSim) {
		ts.axisSliding = true
	}}
}

// WithVerbose records per-tick positions in the SimLog.
func WithVerbose(v bool) SimOption {
	return SimOption{simOptLevel, func(ts *TestSim) {
		ts.SimLog = NewSimLog(v)
	}}
}

// WithAdversaryState starts the adversary in the given state.
func WithAdversaryState(s AdversaryState) SimOption {
	return SimOption{simOptWorld, func(ts *TestSim) {
		ts.World.Adversary.State = s
	}}
}

// WithClock starts the clock at the given hour and day.
func WithClock(hour float64, day int) SimOption {
	return SimOption{simOptWorld, func(ts *TestSim) {
		ts.World.Clock = Clock{Hour: hour, Day: day}
	}}
}

// WithHealth starts the player with the given health.
func WithHealth(hp int) SimOption {
	return SimOption{simOptWorld, func(ts *TestSim) {
		ts.World.Player.Health = hp
	}}
}

// NewTestSim constructs a TestSim in two ordered passes:
//  1. Level geometry, tuning and randomness
//  2. World startup-state overrides
func NewTestSim(opts ...SimOption) *TestSim {
	ts := &TestSim{
		Level:  emptyLevel(),
		SimLog: NewSimLog(false),
		Rand:   NewRand(1),
		tuning: DefaultTuning(),
	}
	for _, o := range opts {
		if o.kind == simOptLevel {
			o.fn(ts)
		}
	}
	tuning := ts.tuning
	ts.World = NewWorld(ts.Level, Options{
		Tuning:         &tuning,
		Rand:           ts.Rand,
		SimLog:         ts.SimLog,
		AdversaryWalls: ts.adversaryWalls,
		AxisSliding:    ts.axisSliding,
	})
	for _, o := range opts {
		if o.kind == simOptWorld {
			o.fn(ts)
		}
	}
	return ts
}

// Step advances one tick.
func (ts *TestSim) Step(dt float64, in Input) Events {
	return ts.World.Step(dt, in)
}

// RunTicks advances n ticks with the same input and returns every tick's
// events.
func (ts *TestSim) RunTicks(n int, dt float64, in Input) []Events {
	out := make([]Events, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, ts.World.Step(dt, in))
	}
	return out
}

// RunUntil advances up to maxTicks, stopping early once predicate returns
// true. Returns the number of ticks run when it did, or -1.
func (ts *TestSim) RunUntil(predicate func(*TestSim) bool, maxTicks int, dt float64, in Input) int {
	for i := 1; i <= maxTicks; i++ {
		ts.World.Step(dt, in)
		if predicate(ts) {
			return i
		}
	}
	return -1
}
