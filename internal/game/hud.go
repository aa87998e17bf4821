package game

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/Garsondee/grannys-house/internal/sim"
)

// HUD layout in screen pixels.
const (
	healthBarX     = 20
	healthBarY     = 50
	healthBarH     = 20
	healthPxPerHP  = 2
	minimapX       = 980
	minimapY       = 20
	minimapSize    = 200
	minimapInset   = 10
	minimapDot     = 6
	inventorySlots = 5
	slotSize       = 40
	slotStride     = 50
	slotX          = 980
	slotY          = 750
)

var (
	white     = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	slotColor = color.RGBA{R: 50, G: 50, B: 50, A: 255}
)

func lineHeight(face text.Face) float64 {
	m := face.Metrics()
	return m.HAscent + m.HDescent + m.HLineGap
}

func drawText(dst *ebiten.Image, s string, face text.Face, x, y float64, c color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(c)
	op.LineSpacing = lineHeight(face)
	text.Draw(dst, s, face, op)
}

// drawHUD renders the clock and the health bar.
func (g *Game) drawHUD(screen *ebiten.Image) {
	drawText(screen, g.snap.Clock.String(), g.assets.HUDFace, 20, 20, white)

	maxW := float32(g.world.Tuning().MaxHealth * healthPxPerHP)
	vector.FillRect(screen, healthBarX, healthBarY, maxW, healthBarH, slotColor, false)
	vector.FillRect(screen, healthBarX, healthBarY, float32(healthBarWidth(g.snap.Health)), healthBarH, color.RGBA{R: 255, A: 255}, false)
}

// healthBarWidth is the filled width of the health bar in pixels.
func healthBarWidth(health int) int {
	if health < 0 {
		return 0
	}
	return health * healthPxPerHP
}

// minimapPoint maps a world position into the minimap square.
func minimapPoint(p sim.Vec2, world sim.Rect) (float32, float32) {
	inner := float64(minimapSize - 2*minimapInset)
	x := (p.X-world.X)/world.W*inner + minimapInset
	y := (p.Y-world.Y)/world.H*inner + minimapInset
	return float32(minimapX + x), float32(minimapY + y)
}

func (g *Game) drawMinimap(screen *ebiten.Image) {
	world := g.world.Level().World
	vector.FillRect(screen, minimapX, minimapY, minimapSize, minimapSize, color.RGBA{A: 150}, false)
	vector.StrokeRect(screen, minimapX, minimapY, minimapSize, minimapSize, 2, white, false)

	for _, it := range g.snap.Items {
		if it.Collected {
			continue
		}
		x, y := minimapPoint(it.Bounds.Pos(), world)
		vector.FillRect(screen, x, y, 3, 3, itemColor(it.Kind), false)
	}
	x, y := minimapPoint(g.snap.Player.Pos, world)
	vector.FillRect(screen, x, y, minimapDot, minimapDot, color.RGBA{G: 255, A: 255}, false)
	x, y = minimapPoint(g.snap.Adversary.Pos, world)
	vector.FillRect(screen, x, y, minimapDot, minimapDot, color.RGBA{R: 255, B: 255, A: 255}, false)
}

// drawInventory draws five slots along the bottom right, filled in pickup
// order.
func (g *Game) drawInventory(screen *ebiten.Image) {
	for i := 0; i < inventorySlots; i++ {
		x := float32(slotX + i*slotStride)
		vector.FillRect(screen, x, slotY, slotSize, slotSize, slotColor, false)
		vector.StrokeRect(screen, x, slotY, slotSize, slotSize, 2, white, false)
		if i < len(g.snap.Inventory) {
			vector.FillRect(screen, x+10, slotY+10, 20, 20, itemColor(g.snap.Inventory[i]), false)
		}
	}
}

func (g *Game) drawHelp(screen *ebiten.Image) {
	lines := "WASD/arrows  move\n" +
		"M  minimap\n" +
		"L  sight lines\n" +
		"=/-  zoom\n" +
		"C  copy status\n" +
		"R  restart (after game end)\n" +
		"H  hide help"
	vector.FillRect(screen, 20, 90, 200, 100, color.RGBA{R: 6, G: 6, B: 12, A: 210}, false)
	ebitenutil.DebugPrintAt(screen, lines, 26, 94)
}

// outcomeText returns the end-of-game message and its colour, or "" while
// the game is running.
func outcomeText(s sim.Snapshot) (string, color.RGBA) {
	switch {
	case s.GameWon:
		return "YOU ESCAPED!\nYou survived Granny's house!\nPress R to play again", color.RGBA{G: 255, A: 255}
	case s.GameOver && s.Loss == sim.LossTimeExpired:
		return "GAME OVER\nYou ran out of days!\nPress R to restart", color.RGBA{R: 255, A: 255}
	case s.GameOver:
		return "GAME OVER\nGranny caught you!\nPress R to restart", color.RGBA{R: 255, A: 255}
	default:
		return "", color.RGBA{}
	}
}

func (g *Game) drawOutcome(screen *ebiten.Image) {
	msg, c := outcomeText(g.snap)
	if msg == "" {
		return
	}
	vector.FillRect(screen, 0, 0, float32(g.width), float32(g.height), color.RGBA{A: 200}, false)
	x := 400.0
	if g.snap.GameWon {
		x = 350
	}
	drawText(screen, msg, g.assets.TitleFace, x, 300, c)
}
