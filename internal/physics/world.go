package physics

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

// World holds the collidable bodies. Order is preserved so a hit's Body index maps back to the
// game object the body was created for.
type World struct {
	Bodies []*Body
}

// NewWorld returns an empty world.
func NewWorld() *World {
	return &World{}
}

// AddBody appends a body and returns its index.
func (w *World) AddBody(b *Body) int {
	w.Bodies = append(w.Bodies, b)
	return len(w.Bodies) - 1
}

// Hit is the nearest intersection found by Raycast. Distance is measured along the ray direction;
// raylib reports a negative distance when the ray starts inside the body.
type Hit struct {
	Body     int
	Distance float32
	Point    rl.Vector3
}

// Raycast returns the nearest body hit by ray, or false when nothing is hit.
// ray.Direction must be unit length for Distance to be in world units.
func (w *World) Raycast(ray rl.Ray) (Hit, bool) {
	best := Hit{Body: -1}
	found := false
	for i, b := range w.Bodies {
		c := rl.GetRayCollisionBox(ray, b.Bounds())
		if !c.Hit {
			continue
		}
		if !found || c.Distance < best.Distance {
			best = Hit{Body: i, Distance: c.Distance, Point: c.Point}
			found = true
		}
	}
	return best, found
}

// ProbeClear reports whether moving from origin along dir is allowed. A nearest hit closer than
// epsilon is treated as self-intersection noise and allowed; a hit closer than threshold blocks.
func (w *World) ProbeClear(origin, dir rl.Vector3, epsilon, threshold float32) bool {
	hit, ok := w.Raycast(rl.NewRay(origin, dir))
	if !ok {
		return true
	}
	if hit.Distance < epsilon {
		return true
	}
	return hit.Distance >= threshold
}
