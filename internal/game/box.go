package game

import (
	"math/rand/v2"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// maxBoxID bounds the random identifiers given to boxes (0..999).
const maxBoxID = 1000

// Box is a magic box: static position, an identifier, and whether the character is close enough
// for it to be highlighted and clickable.
type Box struct {
	ID        int
	Position  rl.Vector3
	Size      float32
	Activated bool
}

// spawnBox places a box uniformly in [-extent, extent) on X and Z, resting on the ground.
func spawnBox(rng *rand.Rand, extent, size float32) Box {
	x := rng.Float32()*2*extent - extent
	z := rng.Float32()*2*extent - extent
	return Box{
		ID:       rng.IntN(maxBoxID),
		Position: rl.NewVector3(x, size*0.5, z),
		Size:     size,
	}
}

// UpdateProximity sets Activated from the distance to target. It holds no memory of previous frames.
func (b *Box) UpdateProximity(target rl.Vector3, threshold float32) {
	b.Activated = rl.Vector3Distance(b.Position, target) < threshold
}

// Clickable reports whether a pick on this box should surface its identifier.
func (b *Box) Clickable() bool {
	return b.Activated
}

// Bounds returns the box's AABB.
func (b *Box) Bounds() rl.BoundingBox {
	h := b.Size * 0.5
	return rl.NewBoundingBox(
		rl.NewVector3(b.Position.X-h, b.Position.Y-h, b.Position.Z-h),
		rl.NewVector3(b.Position.X+h, b.Position.Y+h, b.Position.Z+h),
	)
}
