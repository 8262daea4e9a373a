package graphics

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"magic-boxes/internal/config"
)

// Run opens the window and drives the frame loop until it is closed. Each frame it calls update
// (input and simulation), then clears to background and calls draw. There is no fixed timestep:
// one update per displayed frame. ESC is reserved for the console; close via the window button.
// setup runs once after the window and GL context exist; teardown runs before the window closes.
func Run(win config.Window, background rl.Color, setup, update, draw, teardown func()) {
	flags := uint32(rl.FlagWindowResizable | rl.FlagMsaa4xHint | rl.FlagVsyncHint)
	if win.Fullscreen {
		flags |= rl.FlagFullscreenMode
	}
	rl.SetConfigFlags(flags)
	rl.InitWindow(win.Width, win.Height, win.Title)
	defer rl.CloseWindow()

	rl.SetExitKey(rl.KeyNull)
	rl.SetTargetFPS(win.TargetFPS)

	if setup != nil {
		setup()
	}
	if teardown != nil {
		defer teardown()
	}
	for !rl.WindowShouldClose() {
		update()

		rl.BeginDrawing()
		rl.ClearBackground(background)
		draw()
		rl.EndDrawing()
	}
}
