package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const frame = 1.0 / 60

func TestWorld_PatrolStaysPatrolAndConverges(t *testing.T) {
	ts := NewTestSim(WithRand(&ScriptedRand{Values: []float64{0.5}}))
	start := ts.World.Adversary.Pos.DistTo(V(600, 400))

	ts.RunTicks(150, frame, Input{})

	a := ts.World.Adversary
	assert.Equal(t, StatePatrol, a.State)
	assert.Equal(t, 0, ts.SimLog.Count("state", "change"))
	assert.Equal(t, V(600, 400), a.PatrolTarget)
	assert.Less(t, a.Pos.DistTo(V(600, 400)), 10.0)
	assert.Less(t, a.Pos.DistTo(V(600, 400)), start)
	assert.True(t, R(50, 50, 1100, 700).ContainsPoint(a.PatrolTarget))
}

func TestWorld_DetectionForcesChase(t *testing.T) {
	ts := NewTestSim(WithPlayerAt(100, 100), WithAdversaryAt(250, 100))
	ev := ts.Step(frame, Input{})

	a := ts.World.Adversary
	assert.Equal(t, StateChase, a.State)
	assert.Equal(t, 100.0, a.Awareness)
	assert.Equal(t, V(100, 100), a.LastSeen)
	assert.True(t, ev.StateChanged)
	assert.Equal(t, StatePatrol, ev.From)
	assert.Equal(t, StateChase, ev.To)
	assert.Equal(t, 1, ts.SimLog.Count("state", "change"))
}

func TestWorld_WallHidesPlayer(t *testing.T) {
	ts := NewTestSim(WithPlayerAt(100, 100), WithAdversaryAt(250, 100), WithWall(170, 0, 20, 800))
	ts.Step(frame, Input{})
	assert.Equal(t, StatePatrol, ts.World.Adversary.State)
}

func TestWorld_ChaseSearchPatrolCycle(t *testing.T) {
	ts := NewTestSim(WithPlayerAt(100, 100), WithAdversaryAt(250, 100))
	ts.Step(frame, Input{})
	require.Equal(t, StateChase, ts.World.Adversary.State)

	// Teleport the player out of reach; the adversary loses sight.
	ts.World.Player.Pos = V(1150, 750)
	ts.Step(1, Input{})
	require.Equal(t, StateSearch, ts.World.Adversary.State)
	assert.Equal(t, 3.0, ts.World.Adversary.SearchTimer)

	for i := 0; i < 3; i++ {
		ts.Step(1, Input{})
		require.Equal(t, StateSearch, ts.World.Adversary.State, "tick %d", i)
	}
	ts.Step(1, Input{})
	assert.Equal(t, StatePatrol, ts.World.Adversary.State)
	assert.Equal(t, 50.0, ts.World.Adversary.Awareness)
}

func TestWorld_CaptureSequence(t *testing.T) {
	ts := NewTestSim(WithPlayerAt(100, 100), WithAdversaryAt(130, 100))
	w := ts.World

	for i, want := range []int{75, 50, 25} {
		ev := ts.Step(frame, Input{})
		require.True(t, ev.Captured, "capture %d", i+1)
		assert.Equal(t, want, w.Player.Health)
		assert.False(t, w.GameOver)
		assert.Equal(t, V(100, 100), w.Player.Pos)
		assert.Equal(t, V(130, 100), w.Adversary.Pos)
	}

	ev := ts.Step(frame, Input{})
	assert.True(t, ev.Captured)
	assert.True(t, ev.Lost)
	assert.Equal(t, LossCaught, ev.Reason)
	assert.Equal(t, 0, w.Player.Health)
	assert.True(t, w.GameOver)
	assert.False(t, w.GameWon)
	assert.Equal(t, 4, ts.SimLog.Count("encounter", "captured"))
}

func TestWorld_CaptureIgnoresLineOfSight(t *testing.T) {
	// A thin wall between them hides the player but does not stop a capture.
	ts := NewTestSim(WithPlayerAt(100, 100), WithAdversaryAt(145, 100), WithWall(135, 0, 5, 800))
	ev := ts.Step(frame, Input{})
	assert.True(t, ev.Captured)
	assert.Equal(t, StatePatrol, ts.World.Adversary.State)
}

func TestWorld_TerminalFreezesUntilRestart(t *testing.T) {
	ts := NewTestSim(WithPlayerAt(100, 100), WithAdversaryAt(130, 100), WithHealth(25))
	w := ts.World
	ts.Step(frame, Input{})
	require.True(t, w.GameOver)

	tick := w.Tick
	pos := w.Player.Pos
	ev := ts.Step(frame, Input{Intent: Intent{Right: true}})
	assert.Equal(t, Events{}, ev)
	assert.Equal(t, tick, w.Tick)
	assert.Equal(t, pos, w.Player.Pos)

	ev = ts.Step(frame, Input{Restart: true})
	assert.True(t, ev.Reset)
	assert.False(t, w.GameOver)
	assert.Equal(t, 100, w.Player.Health)
}

func TestWorld_RestartIgnoredWhilePlaying(t *testing.T) {
	ts := NewTestSim(WithPlayerAt(100, 100), WithAdversaryAt(130, 100))
	ts.Step(frame, Input{})
	require.Equal(t, 75, ts.World.Player.Health)

	ts.World.Player.Pos = V(1100, 700) // out of reach
	ev := ts.Step(frame, Input{Restart: true})
	assert.False(t, ev.Reset)
	assert.Equal(t, 75, ts.World.Player.Health)
}

func TestWorld_ClockWraps(t *testing.T) {
	ts := NewTestSim(WithClock(23.95, 1))
	ev := ts.Step(1.0, Input{})
	assert.True(t, ev.DayAdvanced)
	assert.Equal(t, 7.0, ts.World.Clock.Hour)
	assert.Equal(t, 2, ts.World.Clock.Day)
	assert.False(t, ts.World.GameOver)
}

func TestWorld_DayLimitEndsGame(t *testing.T) {
	ts := NewTestSim(WithClock(23.95, 5))
	ev := ts.Step(1.0, Input{})
	assert.Equal(t, 6, ts.World.Clock.Day)
	assert.True(t, ts.World.GameOver)
	assert.True(t, ev.Lost)
	assert.Equal(t, LossTimeExpired, ts.World.Loss)
	assert.Equal(t, 100, ts.World.Player.Health)
}

func fiveItemsAtSpawn() []SimOption {
	return []SimOption{
		WithPlayerAt(100, 100),
		WithItem("key", 100, 100),
		WithItem("hammer", 105, 105),
		WithItem("screwdriver", 110, 110),
		WithItem("battery", 100, 120),
		WithItem("master_key", 110, 125),
		WithExit(1000, 0, 200, 100),
	}
}

func TestWorld_WinWithAllItemsInExit(t *testing.T) {
	ts := NewTestSim(fiveItemsAtSpawn()...)
	ev := ts.Step(frame, Input{})
	require.Len(t, ev.Collected, 5)
	assert.False(t, ts.World.GameWon, "not in the exit yet")
	assert.Equal(t, []string{"key", "hammer", "screwdriver", "battery", "master_key"}, ts.World.Player.Inventory)

	ts.World.Player.Pos = V(1050, 20)
	ev = ts.Step(frame, Input{})
	assert.True(t, ev.Won)
	assert.True(t, ts.World.GameWon)
	assert.False(t, ts.World.GameOver)
}

func TestWorld_ExitWithoutAllItemsDoesNotWin(t *testing.T) {
	opts := append(fiveItemsAtSpawn()[:5], WithItem("master_key", 900, 700), WithExit(1000, 0, 200, 100))
	ts := NewTestSim(opts...)
	ts.Step(frame, Input{})
	require.Equal(t, 4, ts.World.CollectedCount())

	ts.World.Player.Pos = V(1050, 20)
	ev := ts.Step(frame, Input{})
	assert.False(t, ev.Won)
	assert.False(t, ts.World.GameWon)
}

func TestWorld_ItemPickupIsIdempotent(t *testing.T) {
	ts := NewTestSim(WithPlayerAt(100, 100), WithItem("key", 110, 110))
	ts.RunTicks(10, frame, Input{})
	assert.Equal(t, []string{"key"}, ts.World.Player.Inventory)
	assert.Equal(t, 1, ts.SimLog.Count("item", "collected"))
}

func TestWorld_ResetRestoresEveryField(t *testing.T) {
	opts := append(fiveItemsAtSpawn(), WithAdversaryAt(140, 100), WithClock(23.95, 3))
	ts := NewTestSim(opts...)
	w := ts.World

	ts.Step(1.0, Input{}) // items, capture, day rollover
	for !w.GameOver {
		ts.Step(frame, Input{})
	}
	w.Adversary.State = StateSearch
	w.Adversary.Awareness = 80

	ts.Step(frame, Input{Restart: true})

	fresh := NewTestSim(opts...).World
	assert.Equal(t, fresh.Player, w.Player)
	assert.Equal(t, fresh.Adversary, w.Adversary)
	assert.Equal(t, fresh.Items, w.Items)
	assert.Equal(t, Clock{Hour: 7, Day: 1}, w.Clock)
	assert.False(t, w.GameOver)
	assert.False(t, w.GameWon)
	assert.Equal(t, LossNone, w.Loss)
	for _, it := range w.Items {
		assert.False(t, it.Collected, it.Kind)
	}
}

func TestWorld_NegativeDtIsZero(t *testing.T) {
	ts := NewTestSim()
	ts.Step(-5, Input{Intent: Intent{Right: true}})
	assert.Equal(t, 7.0, ts.World.Clock.Hour)
	assert.Equal(t, V(100, 100), ts.World.Player.Pos)
}

func TestWorld_PlayerBlockedByWall(t *testing.T) {
	ts := NewTestSim(WithPlayerAt(100, 100), WithWall(131, 0, 20, 800))
	ts.RunTicks(30, frame, Input{Intent: Intent{Right: true}})
	assert.Equal(t, 100.0, ts.World.Player.Pos.X)
}

func TestWorld_DiagonalStickVersusSlide(t *testing.T) {
	wall := WithWall(130, 0, 20, 800)
	stuck := NewTestSim(WithPlayerAt(100, 100), wall)
	stuck.RunTicks(10, frame, Input{Intent: Intent{Right: true, Down: true}})
	assert.Equal(t, V(100, 100), stuck.World.Player.Pos)

	slide := NewTestSim(WithPlayerAt(100, 100), wall, WithAxisSliding())
	slide.RunTicks(10, frame, Input{Intent: Intent{Right: true, Down: true}})
	assert.Equal(t, 100.0, slide.World.Player.Pos.X)
	assert.Greater(t, slide.World.Player.Pos.Y, 100.0)
}

func TestWorld_AdversaryWallsOption(t *testing.T) {
	// The wall sits below the sight line between the two top-left corners,
	// so the adversary sees the player but its body is blocked.
	opts := []SimOption{WithPlayerAt(100, 100), WithAdversaryAt(290, 100), WithWall(200, 110, 20, 200)}

	through := NewTestSim(opts...)
	n := through.RunUntil(func(ts *TestSim) bool { return ts.World.Player.Health < 100 }, 120, frame, Input{})
	assert.NotEqual(t, -1, n, "without wall collision the adversary reaches the player")

	blocked := NewTestSim(append(opts, WithAdversaryWalls())...)
	for i := 0; i < 120; i++ {
		blocked.Step(frame, Input{})
		require.GreaterOrEqual(t, blocked.World.Adversary.Pos.X, 220.0)
	}
	assert.Equal(t, StateChase, blocked.World.Adversary.State)
	assert.Equal(t, 100, blocked.World.Player.Health)
}

func TestWorld_SnapshotIsACopy(t *testing.T) {
	ts := NewTestSim(WithPlayerAt(100, 100), WithItem("key", 110, 110))
	ts.Step(frame, Input{})
	snap := ts.World.Snapshot()
	snap.Items[0].Collected = false
	snap.Inventory[0] = "nothing"
	assert.True(t, ts.World.Items[0].Collected)
	assert.Equal(t, "key", ts.World.Player.Inventory[0])
	assert.Equal(t, ts.World.Tick, snap.Tick)
}
