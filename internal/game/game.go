package game

import (
	"fmt"
	"image/color"
	"log/slog"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/Garsondee/grannys-house/internal/sim"
)

// Camera zoom limits. At 1x the whole house fits the window.
const (
	zoomMin     = 1.0
	zoomMax     = 3.0
	zoomDefault = 1.5
)

var backgroundColor = color.RGBA{R: 20, G: 20, B: 40, A: 255}

// Options configure the presentation layer.
type Options struct {
	AssetDir string
	RunID    string
	Logger   *slog.Logger
}

// Game adapts a sim.World to ebiten: it samples input, steps the world with
// the real elapsed time and draws the latest snapshot.
type Game struct {
	world  *sim.World
	log    *slog.Logger
	runID  string
	assets *Assets
	feed   *EventFeed

	width    int
	height   int
	worldBuf *ebiten.Image
	snap     sim.Snapshot
	last     time.Time

	camZoom    float64
	showMap    bool
	showLOS    bool
	showHelp   bool
	flashTicks int // red screen flash after a capture
	prevKeys   map[ebiten.Key]bool
}

// New wires a world to the screen. Assets are loaded from opts.AssetDir
// with generated fallbacks for anything missing.
func New(world *sim.World, opts Options) *Game {
	log := opts.Logger
	if log == nil {
		log = world.Logger()
	}
	lw := world.Level().World
	g := &Game{
		world:    world,
		log:      log,
		runID:    opts.RunID,
		assets:   LoadAssets(opts.AssetDir, log),
		feed:     NewEventFeed(),
		width:    int(lw.W),
		height:   int(lw.H),
		worldBuf: ebiten.NewImage(int(lw.W), int(lw.H)),
		camZoom:  zoomDefault,
		prevKeys: map[ebiten.Key]bool{},
		last:     time.Now(),
	}
	g.snap = world.Snapshot()
	g.feed.Add(0, FeedInfo, "Find all five items and get out. Don't let her see you.")
	return g
}

func (g *Game) Update() error {
	now := time.Now()
	dt := now.Sub(g.last).Seconds()
	g.last = now

	in := g.handleInput()
	ev := g.world.Step(dt, in)
	g.handleEvents(ev)
	g.snap = g.world.Snapshot()

	if g.flashTicks > 0 {
		g.flashTicks--
	}
	return nil
}

// pressed reports a key-down edge and records the key's state for the next
// frame.
func (g *Game) pressed(cur map[ebiten.Key]bool, k ebiten.Key) bool {
	cur[k] = ebiten.IsKeyPressed(k)
	return cur[k] && !g.prevKeys[k]
}

func anyPressed(keys ...ebiten.Key) bool {
	for _, k := range keys {
		if ebiten.IsKeyPressed(k) {
			return true
		}
	}
	return false
}

// handleInput samples movement keys (level-triggered) and the toggles
// (edge-triggered).
func (g *Game) handleInput() sim.Input {
	currentKeys := map[ebiten.Key]bool{}

	in := sim.Input{
		Intent: sim.Intent{
			Up:    anyPressed(ebiten.KeyW, ebiten.KeyArrowUp),
			Down:  anyPressed(ebiten.KeyS, ebiten.KeyArrowDown),
			Left:  anyPressed(ebiten.KeyA, ebiten.KeyArrowLeft),
			Right: anyPressed(ebiten.KeyD, ebiten.KeyArrowRight),
		},
		Restart: ebiten.IsKeyPressed(ebiten.KeyR),
	}

	if g.pressed(currentKeys, ebiten.KeyM) {
		in.ToggleMap = true
		g.showMap = !g.showMap
	}
	if g.pressed(currentKeys, ebiten.KeyL) {
		g.showLOS = !g.showLOS
	}
	if g.pressed(currentKeys, ebiten.KeyH) {
		g.showHelp = !g.showHelp
	}
	if g.pressed(currentKeys, ebiten.KeyC) {
		g.copySummary()
	}
	if g.pressed(currentKeys, ebiten.KeyEqual) {
		g.camZoom *= 1.25
	}
	if g.pressed(currentKeys, ebiten.KeyMinus) {
		g.camZoom /= 1.25
	}
	g.camZoom = clampZoom(g.camZoom)

	g.prevKeys = currentKeys
	return in
}

func clampZoom(z float64) float64 {
	if z < zoomMin {
		return zoomMin
	}
	if z > zoomMax {
		return zoomMax
	}
	return z
}

// handleEvents turns one tick's events into sound, flashes and feed lines.
func (g *Game) handleEvents(ev sim.Events) {
	tick := g.world.Tick
	if ev.StateChanged {
		g.feed.Add(tick, FeedAdversary, fmt.Sprintf("Granny: %s -> %s", ev.From, ev.To))
	}
	if ev.Captured {
		g.assets.PlayJumpscare()
		g.flashTicks = 20
		g.feed.Add(tick, FeedDanger, fmt.Sprintf("Granny caught you! Health %d", g.world.Player.Health))
	}
	for _, kind := range ev.Collected {
		g.feed.Add(tick, FeedItem, fmt.Sprintf("Picked up %s (%d/%d)", kind, g.world.CollectedCount(), len(g.world.Items)))
	}
	if ev.DayAdvanced {
		g.feed.Add(tick, FeedInfo, fmt.Sprintf("Day %d begins", g.world.Clock.Day))
	}
	if ev.Won {
		g.feed.Add(tick, FeedItem, "You escaped!")
	}
	if ev.Lost {
		g.feed.Add(tick, FeedDanger, "Game over: "+ev.Reason.String())
	}
	if ev.Reset {
		g.feed.Add(tick, FeedInfo, "New game")
	}
}

func (g *Game) copySummary() {
	summary := StatusSummary(g.runID, g.snap, len(g.world.Items))
	if err := CopyToClipboard(summary); err != nil {
		g.log.Warn("clipboard copy failed", "error", err)
		g.feed.Add(g.world.Tick, FeedDanger, "Clipboard unavailable")
		return
	}
	g.feed.Add(g.world.Tick, FeedInfo, "Status copied to clipboard")
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)

	// Render the house at world coordinates, then blit with the camera.
	g.worldBuf.Fill(backgroundColor)
	g.drawWorld(g.worldBuf)

	var blit ebiten.DrawImageOptions
	blit.GeoM = cameraGeoM(g.cameraFocus(), g.camZoom, float64(g.width), float64(g.height), g.world.Level().World)
	screen.DrawImage(g.worldBuf, &blit)

	if g.flashTicks > 0 {
		drawFlash(screen, g.flashTicks)
	}

	g.drawHUD(screen)
	if g.showMap {
		g.drawMinimap(screen)
	}
	g.drawInventory(screen)
	g.feed.Draw(screen, 20, g.height-20)
	if g.showHelp {
		g.drawHelp(screen)
	}
	g.drawOutcome(screen)
}

// cameraFocus is the centre of the player's box.
func (g *Game) cameraFocus() sim.Vec2 {
	p := g.snap.Player
	return p.Pos.Add(p.Size.Scale(0.5))
}

func (g *Game) Layout(_, _ int) (int, int) {
	return g.width, g.height
}
