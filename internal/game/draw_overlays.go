package game

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/Garsondee/grannys-house/internal/sim"
)

// drawLOSOverlay shows what the adversary sees: its detection radius, the
// sight line to the player (green when clear, red up to the blocking wall),
// and its current patrol or search target.
func (g *Game) drawLOSOverlay(dst *ebiten.Image) {
	a := g.snap.Adversary.Pos
	p := g.snap.Player.Pos
	t := g.world.Tuning()

	vector.StrokeCircle(dst, float32(a.X), float32(a.Y), float32(t.DetectionRadius), 1, color.RGBA{R: 200, G: 60, B: 200, A: 90}, true)
	vector.StrokeCircle(dst, float32(a.X), float32(a.Y), float32(t.CaptureRadius), 1, color.RGBA{R: 230, G: 40, B: 40, A: 120}, true)

	obstacles := g.world.Obstacles()
	if i := sim.FirstBlocker(p, a, obstacles); i >= 0 {
		vector.StrokeLine(dst, float32(a.X), float32(a.Y), float32(p.X), float32(p.Y), 1, color.RGBA{R: 230, G: 50, B: 50, A: 140}, true)
		strokeRect(dst, obstacles[i], 2, color.RGBA{R: 255, G: 80, B: 80, A: 220})
	} else {
		vector.StrokeLine(dst, float32(a.X), float32(a.Y), float32(p.X), float32(p.Y), 1, color.RGBA{R: 60, G: 220, B: 60, A: 160}, true)
	}

	switch g.snap.State {
	case sim.StateSearch:
		drawMarker(dst, g.snap.LastSeen, color.RGBA{R: 255, G: 160, B: 0, A: 220})
	case sim.StatePatrol:
		drawMarker(dst, g.snap.PatrolTarget, color.RGBA{R: 120, G: 120, B: 255, A: 200})
	}
}

// drawMarker draws a small cross at p.
func drawMarker(dst *ebiten.Image, p sim.Vec2, c color.Color) {
	x, y := float32(p.X), float32(p.Y)
	vector.StrokeLine(dst, x-6, y-6, x+6, y+6, 2, c, true)
	vector.StrokeLine(dst, x-6, y+6, x+6, y-6, 2, c, true)
}

// drawFlash tints the whole screen red for a few frames after a capture.
func drawFlash(screen *ebiten.Image, ticks int) {
	a := uint8(ticks * 6)
	b := screen.Bounds()
	vector.FillRect(screen, 0, 0, float32(b.Dx()), float32(b.Dy()), color.RGBA{R: a, A: a}, false)
}
