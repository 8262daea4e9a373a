package game

import rl "github.com/gen2brain/raylib-go/raylib"

const (
	cameraFovy = 45
)

// NewCamera returns the perspective camera used before the first follow update.
func NewCamera() rl.Camera3D {
	return rl.Camera3D{
		Position:   rl.NewVector3(-5, 3, 10),
		Target:     rl.NewVector3(0, 2, 0),
		Up:         rl.NewVector3(0, 1, 0),
		Fovy:       cameraFovy,
		Projection: rl.CameraPerspective,
	}
}

// FollowPosition returns where the camera sits for character c: its position plus offset rotated by its orientation.
func FollowPosition(c *Character, offset rl.Vector3) rl.Vector3 {
	return rl.Vector3Add(c.Position, rl.Vector3RotateByQuaternion(offset, c.Rotation()))
}

// Follow places cam behind c and aims it at c. There is no smoothing; the camera tracks instantly.
func Follow(cam *rl.Camera3D, c *Character, offset rl.Vector3) {
	cam.Position = FollowPosition(c, offset)
	cam.Target = c.Position
}
