package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

var testWorld = R(0, 0, 1200, 800)

func TestTryMove_Free(t *testing.T) {
	got := TryMove(R(100, 100, 30, 50), V(5, -5), []Rect{R(500, 500, 20, 20)})
	assert.Equal(t, R(105, 95, 30, 50), got)
}

func TestTryMove_BlockedRejectsWholeMove(t *testing.T) {
	start := R(70, 50, 30, 50)
	wall := R(100, 0, 20, 200)
	got := TryMove(start, V(5, 5), []Rect{wall})
	assert.Equal(t, start, got, "diagonal into a wall must not slide along Y")
}

func TestTryMove_TouchingWallIsAllowed(t *testing.T) {
	got := TryMove(R(60, 50, 30, 50), V(10, 0), []Rect{R(100, 0, 20, 200)})
	assert.Equal(t, R(70, 50, 30, 50), got)
}

func TestResolver_AxisSlidingSlidesAlongWall(t *testing.T) {
	r := Resolver{Obstacles: []Rect{R(100, 0, 20, 200)}, World: testWorld, AxisSliding: true}
	got := r.Move(R(70, 50, 30, 50), V(5, 5))
	assert.Equal(t, R(70, 55, 30, 50), got)
}

func TestResolver_ClampsToWorld(t *testing.T) {
	r := Resolver{World: testWorld}
	assert.Equal(t, R(1170, 0, 30, 50), r.Move(R(1160, 5, 30, 50), V(50, -50)))
	assert.Equal(t, R(0, 750, 30, 50), r.Move(R(3, 745, 30, 50), V(-10, 10)))
}

func TestResolver_ClampAppliesEvenWhenRejected(t *testing.T) {
	// Actor already outside the world and blocked: the move is rejected but
	// the clamp still pulls it back inside.
	r := Resolver{Obstacles: []Rect{R(1180, 0, 20, 800)}, World: testWorld}
	got := r.Move(R(1190, 10, 30, 50), V(-15, 0))
	assert.Equal(t, 1170.0, got.X)
}

func TestResolver_Blocked(t *testing.T) {
	r := Resolver{Obstacles: []Rect{R(0, 0, 10, 10)}, World: testWorld}
	assert.True(t, r.Blocked(R(5, 5, 10, 10)))
	assert.False(t, r.Blocked(R(10, 0, 10, 10)))
}

func TestIntent_Velocity(t *testing.T) {
	assert.Equal(t, V(0, -300), Intent{Up: true}.Velocity(300, 0.707))
	assert.Equal(t, V(0, 300), Intent{Up: true, Down: true}.Velocity(300, 0.707), "down overrides up")
	assert.Equal(t, V(300, 0), Intent{Left: true, Right: true}.Velocity(300, 0.707), "right overrides left")
	d := Intent{Up: true, Left: true}.Velocity(300, 0.707)
	assert.InDelta(t, -212.1, d.X, 1e-9)
	assert.InDelta(t, -212.1, d.Y, 1e-9)
	assert.Equal(t, Vec2{}, Intent{}.Velocity(300, 0.707))
}
