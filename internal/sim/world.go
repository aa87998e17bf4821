package sim

import (
	"fmt"
	"log/slog"
)

// Input is what the input collaborator samples once per tick.
type Input struct {
	Intent
	Restart   bool // honoured only once the game has ended
	ToggleMap bool // rendering only; the core ignores it
}

// LossReason says why GameOver was set.
type LossReason int

const (
	LossNone LossReason = iota
	LossCaught
	LossTimeExpired
)

func (r LossReason) String() string {
	switch r {
	case LossNone:
		return "none"
	case LossCaught:
		return "caught"
	case LossTimeExpired:
		return "time_expired"
	default:
		return "unknown"
	}
}

// Events are the discrete things that happened during one Step, handed to
// the presentation layer for audio and visuals.
type Events struct {
	Captured     bool
	Collected    []string // item kinds picked up this tick
	DayAdvanced  bool
	StateChanged bool
	From, To     AdversaryState
	Won          bool
	Lost         bool
	Reason       LossReason
	Reset        bool
}

// Options configure a World. The zero value is usable.
type Options struct {
	Tuning *Tuning // nil means DefaultTuning
	Rand   Rand    // nil means a time-seeded source
	Logger *slog.Logger
	SimLog *SimLog

	// AdversaryWalls routes adversary motion through the Movement Resolver.
	// Off by default: the adversary walks through walls.
	AdversaryWalls bool
	// AxisSliding resolves player moves per axis instead of all-or-nothing.
	AxisSliding bool
}

// World owns every mutable entity of one game. Step is the only mutator
// besides Reset; the presentation layer reads a Snapshot afterwards.
type World struct {
	level          *Level
	tuning         Tuning
	obstacles      []Rect
	resolver       Resolver
	rng            Rand
	log            *slog.Logger
	simLog         *SimLog
	adversaryWalls bool

	Player    Player
	Adversary Adversary
	Items     []Item
	Clock     Clock
	GameOver  bool
	GameWon   bool
	Loss      LossReason

	// Tick counts steps since construction. It is not game state and
	// survives Reset so log lines stay ordered.
	Tick int
}

// NewWorld builds a world for level in its startup state.
func NewWorld(level *Level, opts Options) *World {
	w := &World{
		level:          level,
		tuning:         DefaultTuning(),
		obstacles:      level.Obstacles(),
		rng:            opts.Rand,
		log:            opts.Logger,
		simLog:         opts.SimLog,
		adversaryWalls: opts.AdversaryWalls,
	}
	if opts.Tuning != nil {
		w.tuning = *opts.Tuning
	}
	if w.rng == nil {
		w.rng = NewRand(0)
	}
	if w.log == nil {
		w.log = slog.New(slog.DiscardHandler)
	}
	if w.simLog == nil {
		w.simLog = NewSimLog(false)
	}
	w.resolver = Resolver{
		Obstacles:   w.obstacles,
		World:       level.World,
		AxisSliding: opts.AxisSliding,
	}
	w.init()
	return w
}

// init puts every mutable field into its startup value. Used by both
// NewWorld and Reset so the two can never drift apart.
func (w *World) init() {
	l := w.level
	w.Player = Player{
		Actor:  Actor{Pos: l.Player.Spawn, Size: l.Player.Size, Speed: l.Player.Speed},
		Health: w.tuning.MaxHealth,
	}
	w.Adversary = Adversary{
		Actor: Actor{Pos: l.Adversary.Spawn, Size: l.Adversary.Size, Speed: l.Adversary.Speed},
	}
	w.Adversary.reset(l.Adversary.Spawn)
	w.Items = make([]Item, len(l.Items))
	for i, spec := range l.Items {
		w.Items[i] = Item{Kind: spec.Kind, Bounds: Rect{spec.Pos.X, spec.Pos.Y, spec.Size.X, spec.Size.Y}}
	}
	w.Clock = Clock{Hour: w.tuning.DayStartHour, Day: 1}
	w.GameOver = false
	w.GameWon = false
	w.Loss = LossNone
}

func (w *World) Level() *Level { return w.level }
func (w *World) Tuning() Tuning { return w.tuning }
func (w *World) Obstacles() []Rect { return w.obstacles }
func (w *World) SimLog() *SimLog { return w.simLog }
func (w *World) Terminal() bool { return w.GameOver || w.GameWon }
func (w *World) Logger() *slog.Logger { return w.log }

// Reset restores the startup state. The obstacle set and random source are
// kept.
func (w *World) Reset() {
	w.init()
	w.simLog.Add(w.Tick, "--", "outcome", "reset", "new game", 0)
	w.log.Info("game reset")
}

// Step advances the simulation by dt seconds. Once GameOver or GameWon is
// set nothing advances; a Restart input then resets the world. Negative dt
// is treated as zero; large dt is applied as-is.
func (w *World) Step(dt float64, in Input) Events {
	var ev Events
	if w.Terminal() {
		if in.Restart {
			w.Reset()
			ev.Reset = true
		}
		return ev
	}
	if dt < 0 {
		w.log.Debug("negative dt ignored", "dt", dt)
		dt = 0
	}
	w.Tick++

	w.movePlayer(dt, in.Intent)
	w.updateAdversary(dt, &ev)
	if w.Terminal() {
		return ev
	}
	w.collectItems(&ev)
	w.advanceClock(dt, &ev)
	if w.Terminal() {
		return ev
	}
	w.checkWin(&ev)
	return ev
}

func (w *World) movePlayer(dt float64, in Intent) {
	v := in.Velocity(w.Player.Speed, w.tuning.DiagonalScale)
	bounds := w.resolver.Move(w.Player.Bounds(), v.Scale(dt))
	w.Player.Pos = bounds.Pos()
	w.simLog.AddVerbose(w.Tick, "player", "move", "position",
		fmt.Sprintf("(%.1f,%.1f)", w.Player.Pos.X, w.Player.Pos.Y), 0)
}

func (w *World) updateAdversary(dt float64, ev *Events) {
	a := &w.Adversary
	player := w.Player.Pos
	p := a.Perceive(player, w.obstacles)

	prev := a.Transition(p, player, dt, w.tuning)
	if prev != a.State {
		ev.StateChanged = true
		ev.From, ev.To = prev, a.State
		w.simLog.Add(w.Tick, "adversary", "state", "change",
			fmt.Sprintf("%s → %s", prev, a.State), p.Distance)
		w.log.Debug("adversary state change", "from", prev, "to", a.State, "distance", p.Distance)
	}

	d := a.Steer(player, dt, w.rng, w.level.PatrolBounds, w.tuning)
	if w.adversaryWalls {
		a.Pos = w.resolver.Move(a.Bounds(), d).Pos()
	} else {
		a.Pos = a.Pos.Add(d)
	}
	w.simLog.AddVerbose(w.Tick, "adversary", "move", "position",
		fmt.Sprintf("(%.1f,%.1f)", a.Pos.X, a.Pos.Y), 0)

	// Distance is measured before this tick's adversary move, whatever the state.
	if p.Distance < w.tuning.CaptureRadius {
		w.capture(ev)
	}
}

func (w *World) capture(ev *Events) {
	hp := w.Player.Damage(w.tuning.CaptureDamage)
	w.Player.Pos = w.level.Player.Spawn
	w.Adversary.Pos = w.level.Adversary.Spawn
	ev.Captured = true
	w.simLog.Add(w.Tick, "player", "encounter", "captured", fmt.Sprintf("health %d", hp), float64(hp))
	w.log.Info("player captured", "health", hp)
	if hp <= 0 {
		w.lose(LossCaught, ev)
	}
}

func (w *World) collectItems(ev *Events) {
	pb := w.Player.Bounds()
	for i := range w.Items {
		it := &w.Items[i]
		if it.Collected || !RectsOverlap(it.Bounds, pb) {
			continue
		}
		it.Collected = true
		w.Player.Inventory = append(w.Player.Inventory, it.Kind)
		ev.Collected = append(ev.Collected, it.Kind)
		w.simLog.Add(w.Tick, "player", "item", "collected", it.Kind, float64(w.CollectedCount()))
		w.log.Info("item collected", "kind", it.Kind, "have", w.CollectedCount(), "of", len(w.Items))
	}
}

func (w *World) advanceClock(dt float64, ev *Events) {
	if !w.Clock.Advance(dt, w.tuning) {
		return
	}
	ev.DayAdvanced = true
	w.simLog.Add(w.Tick, "--", "clock", "day", fmt.Sprintf("day %d", w.Clock.Day), float64(w.Clock.Day))
	w.log.Info("day advanced", "day", w.Clock.Day)
	if w.Clock.Expired(w.tuning) {
		w.lose(LossTimeExpired, ev)
	}
}

func (w *World) checkWin(ev *Events) {
	if !w.AllCollected() || !w.level.Exit.ContainsPoint(w.Player.Pos) {
		return
	}
	w.GameWon = true
	ev.Won = true
	w.simLog.Add(w.Tick, "player", "outcome", "won", w.Clock.String(), float64(w.Player.Health))
	w.log.Info("player escaped", "clock", w.Clock.String(), "health", w.Player.Health)
}

func (w *World) lose(reason LossReason, ev *Events) {
	w.GameOver = true
	w.Loss = reason
	ev.Lost = true
	ev.Reason = reason
	w.simLog.Add(w.Tick, "player", "outcome", "lost", reason.String(), float64(w.Player.Health))
	w.log.Info("game over", "reason", reason, "clock", w.Clock.String())
}

// AllCollected reports whether every item has been picked up.
func (w *World) AllCollected() bool {
	for _, it := range w.Items {
		if !it.Collected {
			return false
		}
	}
	return true
}

// CollectedCount returns how many items have been picked up.
func (w *World) CollectedCount() int {
	n := 0
	for _, it := range w.Items {
		if it.Collected {
			n++
		}
	}
	return n
}

// Snapshot is a read-only copy of the world for rendering.
type Snapshot struct {
	Tick         int
	Player       Actor
	Health       int
	Inventory    []string
	Adversary    Actor
	State        AdversaryState
	Awareness    float64
	LastSeen     Vec2
	PatrolTarget Vec2
	Items        []Item
	Clock        Clock
	GameOver     bool
	GameWon      bool
	Loss         LossReason
}

// Snapshot copies the current state; slices are not shared with the world.
func (w *World) Snapshot() Snapshot {
	return Snapshot{
		Tick:         w.Tick,
		Player:       w.Player.Actor,
		Health:       w.Player.Health,
		Inventory:    append([]string(nil), w.Player.Inventory...),
		Adversary:    w.Adversary.Actor,
		State:        w.Adversary.State,
		Awareness:    w.Adversary.Awareness,
		LastSeen:     w.Adversary.LastSeen,
		PatrolTarget: w.Adversary.PatrolTarget,
		Items:        append([]Item(nil), w.Items...),
		Clock:        w.Clock,
		GameOver:     w.GameOver,
		GameWon:      w.GameWon,
		Loss:         w.Loss,
	}
}
