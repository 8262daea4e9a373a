package main

import (
	"fmt"
	"strconv"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/rs/zerolog"

	"magic-boxes/internal/commands"
	"magic-boxes/internal/config"
	"magic-boxes/internal/debug"
	"magic-boxes/internal/devpanel"
	"magic-boxes/internal/game"
	"magic-boxes/internal/logger"
	"magic-boxes/internal/scene"
)

// session is what console commands can change at runtime.
type session struct {
	log    *logger.Logger
	cfg    config.Config
	world  *game.World
	scene  *scene.Scene
	debug  *debug.Debug
	panel  *devpanel.Panel
	reg    *commands.Registry
	config string // path used by "cmd config -save"
}

// registerCommands adds the developer console commands to reg.
func registerCommands(reg *commands.Registry, s *session) {
	toggle(reg, "grid", "show or hide the ground grid", func(on bool) {
		s.scene.SetGridVisible(on)
		s.cfg.Engine.GridVisible = on
	})
	toggle(reg, "probes", "show or hide the collision probe arrows", func(on bool) {
		s.scene.SetProbesVisible(on)
		s.cfg.Engine.ShowProbes = on
	})
	toggle(reg, "fps", "show or hide the FPS readout", func(on bool) {
		s.debug.SetShowFPS(on)
		s.cfg.Engine.ShowFPS = on
	})
	toggle(reg, "mem", "show or hide heap usage", func(on bool) {
		s.debug.SetShowMemAlloc(on)
		s.cfg.Engine.ShowMemAlloc = on
	})
	toggle(reg, "panel", "show or hide the camera offset panel", func(on bool) {
		s.panel.Visible = on
	})

	offsetFS := commands.NewFlagSet("offset")
	var axes [3]component
	offsetFS.Var(&axes[0], "x", "camera offset x")
	offsetFS.Var(&axes[1], "y", "camera offset y")
	offsetFS.Var(&axes[2], "z", "camera offset z")
	reg.Register("offset", "set camera offset components: cmd offset -x F -y F -z F", offsetFS, func() error {
		defer func() { axes = [3]component{} }()
		v, err := applyOffset(s.world.CameraOffset, axes)
		if err != nil {
			return err
		}
		s.world.CameraOffset = v
		s.log.Info().Float32("x", v.X).Float32("y", v.Y).Float32("z", v.Z).Msg("camera offset")
		return nil
	})

	reg.Register("popup", "hide the box popup", commands.NewFlagSet("popup"), func() error {
		s.world.HidePopup()
		return nil
	})

	levelFS := commands.NewFlagSet("log")
	level := levelFS.String("level", "info", "trace, debug, info, warn or error")
	reg.Register("log", "set the log level: cmd log -level debug", levelFS, func() error {
		defer func() { *level = "info" }()
		l, err := zerolog.ParseLevel(*level)
		if err != nil {
			return err
		}
		zerolog.SetGlobalLevel(l)
		return nil
	})

	configFS := commands.NewFlagSet("config")
	save := configFS.Bool("save", false, "write current settings to the config file")
	reg.Register("config", "save settings: cmd config -save", configFS, func() error {
		defer func() { *save = false }()
		if !*save {
			return fmt.Errorf("config: nothing to do, use -save")
		}
		o := s.world.CameraOffset
		s.cfg.CameraOffset = [3]float32{o.X, o.Y, o.Z}
		if err := config.Save(s.config, s.cfg); err != nil {
			return fmt.Errorf("save config: %w", err)
		}
		s.log.Info().Str("path", s.config).Msg("config saved")
		return nil
	})

	reg.Register("help", "list commands", commands.NewFlagSet("help"), func() error {
		for _, line := range s.reg.Help() {
			s.log.Log(line)
		}
		return nil
	})
}

// toggle registers a command with a single -on flag (default true) and resets the flag after each run.
func toggle(reg *commands.Registry, name, summary string, apply func(on bool)) {
	fs := commands.NewFlagSet(name)
	on := fs.Bool("on", true, summary)
	reg.Register(name, summary+": cmd "+name+" -on=false", fs, func() error {
		apply(*on)
		*on = true
		return nil
	})
}

// component is one offset axis given on the command line. set is false when the flag was omitted.
type component struct {
	v   float32
	set bool
}

func (c *component) String() string {
	return strconv.FormatFloat(float64(c.v), 'g', -1, 32)
}

func (c *component) Set(s string) error {
	f, err := strconv.ParseFloat(s, 32)
	if err != nil {
		return err
	}
	c.v, c.set = float32(f), true
	return nil
}

// applyOffset replaces the axes of cur that were given, each clamped to the panel range.
func applyOffset(cur rl.Vector3, axes [3]component) (rl.Vector3, error) {
	dst := [3]*float32{&cur.X, &cur.Y, &cur.Z}
	n := 0
	for i, a := range axes {
		if a.set {
			*dst[i] = devpanel.Clamp(a.v)
			n++
		}
	}
	if n == 0 {
		return cur, fmt.Errorf("offset: give at least one of -x, -y, -z")
	}
	return cur, nil
}
