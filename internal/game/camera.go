package game

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/Garsondee/grannys-house/internal/sim"
)

// cameraCenter keeps focus at the centre of a vw x vh viewport scaled by
// zoom, clamped so the view never leaves the world. If the view is larger
// than the world on an axis, the world is centred on that axis.
func cameraCenter(focus sim.Vec2, zoom, vw, vh float64, world sim.Rect) sim.Vec2 {
	halfW := vw / 2 / zoom
	halfH := vh / 2 / zoom
	return sim.V(
		clampAxis(focus.X, world.X+halfW, world.Right()-halfW),
		clampAxis(focus.Y, world.Y+halfH, world.Bottom()-halfH),
	)
}

func clampAxis(v, lo, hi float64) float64 {
	if lo > hi {
		return (lo + hi) / 2
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// cameraGeoM maps world coordinates to screen coordinates.
func cameraGeoM(focus sim.Vec2, zoom, vw, vh float64, world sim.Rect) ebiten.GeoM {
	c := cameraCenter(focus, zoom, vw, vh, world)
	var cam ebiten.GeoM
	cam.Translate(-c.X, -c.Y)
	cam.Scale(zoom, zoom)
	cam.Translate(vw/2, vh/2)
	return cam
}
