package main

import (
	"log"

	"github.com/google/uuid"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/Garsondee/grannys-house/internal/config"
	"github.com/Garsondee/grannys-house/internal/game"
	"github.com/Garsondee/grannys-house/internal/logger"
	"github.com/Garsondee/grannys-house/internal/sim"
)

func main() {
	cfg := config.Load()
	runID := uuid.NewString()
	lg := logger.WithRunID(logger.Setup(cfg), runID)

	level := sim.DefaultHouse()
	if cfg.LevelFile != "" {
		var err error
		level, err = sim.LoadLevel(cfg.LevelFile)
		if err != nil {
			log.Fatal(err)
		}
	}

	world := sim.NewWorld(level, sim.Options{
		Rand:           sim.NewRand(cfg.Seed),
		Logger:         lg,
		AdversaryWalls: cfg.AdversaryWalls,
		AxisSliding:    cfg.AxisSliding,
	})
	lg.Info("starting", "level", level.Name, "seed", cfg.Seed, "adversary_walls", cfg.AdversaryWalls, "axis_sliding", cfg.AxisSliding)

	ebiten.SetWindowTitle("Granny's House")
	ebiten.SetWindowSize(int(level.World.W), int(level.World.H))
	if err := ebiten.RunGame(game.New(world, game.Options{AssetDir: cfg.AssetDir, RunID: runID, Logger: lg})); err != nil {
		log.Fatal(err)
	}
}
