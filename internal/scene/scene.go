package scene

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"magic-boxes/internal/game"
	"magic-boxes/internal/primitives"
)

const (
	groundSize    = 2000
	gridSize      = 200
	gridDivisions = 100
	// gridLift keeps grid lines just above the ground to avoid z-fighting.
	gridLift = 0.005

	fogNear = 20
	fogFar  = 100

	lightIntensity = 3

	probeLength     = 1
	probeHeadLength = 0.2
	probeHeadRadius = 0.08
	probeSlices     = 8
)

var (
	// Background is the clear color; fog fades toward it.
	Background = rl.NewColor(0xdd, 0xdd, 0xdd, 255)

	groundColor    = rl.NewColor(0x44, 0x44, 0x44, 255)
	gridColor      = rl.NewColor(0, 0, 0, 26)
	skyLight       = rl.NewColor(0xff, 0xff, 0xff, 255)
	groundLight    = rl.NewColor(0x8d, 0x8d, 0x8d, 255)
	boxIdleColor   = rl.NewColor(0x77, 0x77, 0x77, 128)
	boxActiveColor = rl.NewColor(0xff, 0x00, 0x00, 128)
	bodyColor      = rl.NewColor(0x77, 0x77, 0x77, 255)
	limbColor      = rl.NewColor(0xaa, 0xaa, 0xaa, 255)
	frontProbe     = rl.NewColor(0xff, 0x00, 0x00, 255)
	backProbe      = rl.NewColor(0x00, 0x00, 0xff, 255)
)

// Scene draws the game world: ground, grid, character, optional probe arrows and the boxes.
// It owns no game state; Draw reads everything from the world passed in, including the camera.
type Scene struct {
	GridVisible   bool
	ProbesVisible bool
	prims         *primitives.Registry
}

// New returns a scene with the grid visible and probe arrows hidden.
func New() *Scene {
	return &Scene{
		GridVisible: true,
		prims: primitives.NewRegistry(
			primitives.Fog{Color: Background, Near: fogNear, Far: fogFar},
			primitives.Hemisphere{Sky: skyLight, Ground: groundLight, Intensity: lightIntensity},
		),
	}
}

// SetGridVisible sets whether the ground grid is drawn.
func (s *Scene) SetGridVisible(visible bool) {
	s.GridVisible = visible
}

// SetProbesVisible sets whether the character's front/back probe arrows are drawn.
func (s *Scene) SetProbesVisible(visible bool) {
	s.ProbesVisible = visible
}

// Draw renders one frame of w from w.Camera. Call after ClearBackground and before 2D overlays.
// Boxes are translucent, so they are drawn after everything opaque.
func (s *Scene) Draw(w *game.World) {
	rl.BeginMode3D(w.Camera)
	s.prims.SetView(w.Camera.Position)

	s.prims.DrawGround(groundSize, groundColor)
	if s.GridVisible {
		drawGrid()
	}

	c := w.Character
	s.prims.DrawCube(c.PartTransform(c.Body), bodyColor)
	s.prims.DrawCube(c.PartTransform(c.LeftLeg), limbColor)
	s.prims.DrawCube(c.PartTransform(c.RightLeg), limbColor)

	if s.ProbesVisible {
		drawProbe(c.Position, c.Front, frontProbe)
		drawProbe(c.Position, c.Back, backProbe)
	}

	for i := range w.Boxes {
		b := &w.Boxes[i]
		color := boxIdleColor
		if b.Activated {
			color = boxActiveColor
		}
		transform := rl.MatrixMultiply(
			rl.MatrixScale(b.Size, b.Size, b.Size),
			rl.MatrixTranslate(b.Position.X, b.Position.Y, b.Position.Z),
		)
		s.prims.DrawCube(transform, color)
	}
	rl.EndMode3D()
}

// Unload releases GPU resources held by the scene.
func (s *Scene) Unload() {
	s.prims.Unload()
}

// drawGrid draws gridDivisions cells across gridSize on the XZ plane.
// Reuses start/end vectors to avoid per-frame allocations in the hot loop.
func drawGrid() {
	half := float32(gridSize) / 2
	step := float32(gridSize) / gridDivisions
	var start, end rl.Vector3
	for i := 0; i <= gridDivisions; i++ {
		k := -half + float32(i)*step
		start.X, start.Y, start.Z = k, gridLift, -half
		end.X, end.Y, end.Z = k, gridLift, half
		rl.DrawLine3D(start, end, gridColor)
		start.X, start.Y, start.Z = -half, gridLift, k
		end.X, end.Y, end.Z = half, gridLift, k
		rl.DrawLine3D(start, end, gridColor)
	}
}

// drawProbe draws a unit arrow from origin along dir.
func drawProbe(origin, dir rl.Vector3, color rl.Color) {
	shaftEnd := rl.Vector3Add(origin, rl.Vector3Scale(dir, probeLength-probeHeadLength))
	tip := rl.Vector3Add(origin, rl.Vector3Scale(dir, probeLength))
	rl.DrawLine3D(origin, shaftEnd, color)
	rl.DrawCylinderEx(shaftEnd, tip, probeHeadRadius, 0, probeSlices, color)
}
