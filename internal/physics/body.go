package physics

import rl "github.com/gen2brain/raylib-go/raylib"

// Body is a static axis-aligned collider: a center position and a size (full extents).
// Bodies never move after they are added to a World.
type Body struct {
	Position [3]float32
	Scale    [3]float32
}

// NewBody returns a body centered at position with the given size. Zero components of scale are treated as 1.
func NewBody(position, scale [3]float32) *Body {
	for i := range scale {
		if scale[i] == 0 {
			scale[i] = 1
		}
	}
	return &Body{Position: position, Scale: scale}
}

// Bounds returns the body's AABB.
func (b *Body) Bounds() rl.BoundingBox {
	half := [3]float32{b.Scale[0] * 0.5, b.Scale[1] * 0.5, b.Scale[2] * 0.5}
	return rl.NewBoundingBox(
		rl.NewVector3(b.Position[0]-half[0], b.Position[1]-half[1], b.Position[2]-half[2]),
		rl.NewVector3(b.Position[0]+half[0], b.Position[1]+half[1], b.Position[2]+half[2]),
	)
}
