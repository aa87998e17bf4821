package game

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/Garsondee/grannys-house/internal/sim"
)

var (
	wallColor   = color.RGBA{R: 100, G: 100, B: 100, A: 255}
	floorColor  = color.RGBA{R: 34, G: 30, B: 44, A: 255}
	doorColor   = color.RGBA{R: 139, G: 69, B: 19, A: 160}
	closetColor = color.RGBA{R: 139, G: 69, B: 19, A: 255}
	exitColor   = color.RGBA{R: 40, G: 160, B: 60, A: 90}
	playerColor = color.RGBA{R: 40, G: 200, B: 60, A: 255}
)

var itemColors = map[string]color.RGBA{
	"key":         {R: 255, G: 255, B: 0, A: 255},
	"hammer":      {R: 165, G: 42, B: 42, A: 255},
	"screwdriver": {R: 0, G: 0, B: 255, A: 255},
	"battery":     {R: 0, G: 255, B: 0, A: 255},
	"master_key":  {R: 0, G: 255, B: 255, A: 255},
}

// itemColor returns the display colour of an item kind; unknown kinds are
// white.
func itemColor(kind string) color.RGBA {
	if c, ok := itemColors[kind]; ok {
		return c
	}
	return color.RGBA{R: 255, G: 255, B: 255, A: 255}
}

func fillRect(dst *ebiten.Image, r sim.Rect, c color.Color) {
	vector.FillRect(dst, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), c, false)
}

func strokeRect(dst *ebiten.Image, r sim.Rect, width float32, c color.Color) {
	vector.StrokeRect(dst, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), width, c, false)
}

// drawWorld renders the house and its occupants in world coordinates.
func (g *Game) drawWorld(dst *ebiten.Image) {
	l := g.world.Level()

	for _, room := range l.Rooms {
		fillRect(dst, room.Bounds, floorColor)
	}
	fillRect(dst, l.Exit, exitColor)
	for _, w := range g.world.Obstacles() {
		fillRect(dst, w, wallColor)
	}
	for _, d := range l.Doors {
		strokeRect(dst, d, 2, doorColor)
	}
	for _, c := range l.HidingSpots {
		fillRect(dst, c, closetColor)
	}
	for _, it := range g.snap.Items {
		if !it.Collected {
			fillRect(dst, it.Bounds, itemColor(it.Kind))
		}
	}

	if g.showLOS {
		g.drawLOSOverlay(dst)
	}

	g.drawAdversary(dst)
	fillRect(dst, g.snap.Player.Bounds(), playerColor)
}

// drawAdversary stretches the face texture over the adversary's box.
func (g *Game) drawAdversary(dst *ebiten.Image) {
	a := g.snap.Adversary
	face := g.assets.Face
	fw, fh := face.Bounds().Dx(), face.Bounds().Dy()

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(a.Size.X/float64(fw), a.Size.Y/float64(fh))
	op.GeoM.Translate(a.Pos.X, a.Pos.Y)
	dst.DrawImage(face, op)

	// Awareness meter just above the head.
	if g.snap.Awareness > 0 {
		frac := g.snap.Awareness / g.world.Tuning().MaxAwareness
		bar := sim.R(a.Pos.X, a.Pos.Y-8, a.Size.X*frac, 4)
		fillRect(dst, bar, color.RGBA{R: 230, G: 40, B: 40, A: 220})
	}
}
