package main

import (
	"context"
	"errors"
	"io/fs"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/rs/zerolog"

	"magic-boxes/internal/commands"
	"magic-boxes/internal/config"
	"magic-boxes/internal/console"
	"magic-boxes/internal/controls"
	"magic-boxes/internal/debug"
	"magic-boxes/internal/devpanel"
	"magic-boxes/internal/game"
	"magic-boxes/internal/graphics"
	"magic-boxes/internal/logger"
	"magic-boxes/internal/scene"
	"magic-boxes/internal/ui"
)

// stylePath overrides the built-in overlay stylesheet when present.
const stylePath = "assets/ui/game.css"

func main() {
	log := logger.New(logger.LogFilePath)
	zerolog.SetGlobalLevel(zerolog.InfoLevel)

	cfg, err := config.Load(config.ConfigPath)
	if err != nil {
		log.Warn().Err(err).Msg("using default config")
	}

	world := game.New(cfg.World, cfg.CameraOffset, game.NewRand(cfg.World.Seed))
	world.Log = log.With().Str("component", "world").Logger()
	world.BoxPicked.AddListener(func(_ context.Context, ev game.BoxPicked) {
		log.Info().Int("box", ev.ID).Float32("x", ev.Position.X).Float32("z", ev.Position.Z).Msg("box picked")
	})
	log.Info().Int("boxes", len(world.Boxes)).Msg("world ready")

	scn := scene.New()
	scn.SetGridVisible(cfg.Engine.GridVisible)
	scn.SetProbesVisible(cfg.Engine.ShowProbes)

	dbg := debug.New()
	dbg.SetShowFPS(cfg.Engine.ShowFPS)
	dbg.SetShowMemAlloc(cfg.Engine.ShowMemAlloc)

	overlay := ui.New(ui.DefaultStylesheet())
	if err := overlay.LoadCSS(stylePath); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Warn().Err(err).Str("path", stylePath).Msg("keeping built-in stylesheet")
	}
	popup := ui.NewPopup()
	banner := ui.NewInstructions()
	panel := devpanel.New()

	reg := commands.NewRegistry()
	registerCommands(reg, &session{
		log:    log,
		cfg:    cfg,
		world:  world,
		scene:  scn,
		debug:  dbg,
		panel:  panel,
		reg:    reg,
		config: config.ConfigPath,
	})
	con := console.New(log, reg)

	ctx := context.Background()
	start := time.Now()
	nodes := make([]*ui.Node, 0, 4)

	update := func() {
		con.Update()
		var in game.Input
		if !con.IsOpen() {
			in = controls.Poll()
			if pos, ok := controls.PointerDown(); ok && !panel.Contains(pos, int32(rl.GetScreenWidth())) {
				world.Pick(ctx, controls.PickRay(pos, world.Camera))
			}
		}
		world.Step(in, time.Since(start))
	}
	draw := func() {
		scn.Draw(world)
		nodes = append(nodes[:0], banner)
		nodes = popup.AppendNodes(nodes, world.Popup.Visible, world.Popup.BoxID)
		overlay.Draw(nodes)
		panel.Draw(&world.CameraOffset)
		dbg.Draw()
		con.Draw()
	}
	teardown := func() {
		overlay.Unload()
		scn.Unload()
	}
	graphics.Run(cfg.Window, scene.Background, nil, update, draw, teardown)
	log.Info().Msg("window closed")
}
