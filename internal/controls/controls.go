package controls

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"magic-boxes/internal/game"
)

// Poll samples the held movement keys. Call once per frame when the console is closed.
func Poll() game.Input {
	return game.Input{
		Forward:   rl.IsKeyDown(rl.KeyW),
		Backward:  rl.IsKeyDown(rl.KeyS),
		TurnLeft:  rl.IsKeyDown(rl.KeyA),
		TurnRight: rl.IsKeyDown(rl.KeyD),
	}
}

// PointerDown returns the cursor position when the left button went down this frame.
func PointerDown() (rl.Vector2, bool) {
	if !rl.IsMouseButtonPressed(rl.MouseButtonLeft) {
		return rl.Vector2{}, false
	}
	return rl.GetMousePosition(), true
}

// PickRay converts a screen position into a world ray through cam, using the current render size.
func PickRay(pos rl.Vector2, cam rl.Camera3D) rl.Ray {
	return rl.GetScreenToWorldRayEx(pos, cam, int32(rl.GetScreenWidth()), int32(rl.GetScreenHeight()))
}
