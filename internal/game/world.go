package game

import (
	"context"
	"math/rand/v2"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/maniartech/signals"
	"github.com/rs/zerolog"

	"magic-boxes/internal/config"
	"magic-boxes/internal/physics"
)

// groundExtent is half the side of the ground plane.
const groundExtent = 1000

// Popup is the overlay that shows the identifier of the last picked box.
type Popup struct {
	Visible bool
	BoxID   int
}

// BoxPicked is emitted when a pick lands on an activated box.
type BoxPicked struct {
	ID       int
	Position rl.Vector3
}

// World is the whole mutable game state. Step advances it by one frame; nothing here touches the window,
// so the render loop owns the only reference and no locking is needed.
type World struct {
	Boxes        []Box
	Character    *Character
	Camera       rl.Camera3D
	CameraOffset rl.Vector3
	Popup        Popup

	// BoxPicked notifies listeners (log, overlay) about accepted picks.
	BoxPicked signals.Signal[BoxPicked]
	Log       zerolog.Logger

	cfg       config.World
	colliders *physics.World
}

// NewRand returns the generator used for spawning. seed 0 picks a time-based seed.
func NewRand(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewPCG(uint64(seed), uint64(seed)^0x9e3779b97f4a7c15))
}

// New spawns cfg.BoxCount boxes with rng and places the character at (0, 1, 0).
func New(cfg config.World, offset [3]float32, rng *rand.Rand) *World {
	boxes := make([]Box, 0, cfg.BoxCount)
	for i := 0; i < cfg.BoxCount; i++ {
		boxes = append(boxes, spawnBox(rng, cfg.SpawnExtent, cfg.BoxSize))
	}
	return NewWithBoxes(cfg, offset, boxes)
}

// NewWithBoxes builds a world around an explicit set of boxes. Boxes are the collidable set for movement probes.
func NewWithBoxes(cfg config.World, offset [3]float32, boxes []Box) *World {
	w := &World{
		Boxes:        boxes,
		Character:    NewCharacter(rl.NewVector3(0, 1, 0)),
		Camera:       NewCamera(),
		CameraOffset: rl.NewVector3(offset[0], offset[1], offset[2]),
		BoxPicked:    signals.New[BoxPicked](),
		Log:          zerolog.Nop(),
		cfg:          cfg,
		colliders:    physics.NewWorld(),
	}
	for _, b := range boxes {
		size := [3]float32{b.Size, b.Size, b.Size}
		w.colliders.AddBody(physics.NewBody([3]float32{b.Position.X, b.Position.Y, b.Position.Z}, size))
	}
	return w
}

// Step advances one frame: movement and turning from in, box proximity, walk pose at elapsed time t, camera follow.
func (w *World) Step(in Input, t time.Duration) {
	c := w.Character
	c.Walking = false
	if in.Forward {
		w.MoveForward(w.cfg.MoveStep)
	}
	if in.Backward {
		w.MoveBackward(w.cfg.MoveStep)
	}
	if in.TurnLeft {
		c.TurnLeft(w.cfg.TurnStep)
	}
	if in.TurnRight {
		c.TurnRight(w.cfg.TurnStep)
	}

	w.UpdateProximity()

	c.Walk(t, w.cfg.WalkFrequency, w.cfg.WalkAmplitude)
	Follow(&w.Camera, c, w.CameraOffset)
}

// UpdateProximity recomputes every box's activation from its distance to the character.
func (w *World) UpdateProximity() {
	for i := range w.Boxes {
		w.Boxes[i].UpdateProximity(w.Character.Position, w.cfg.ActivationDistance)
	}
}

// MoveForward hides the popup and translates the character by step along its front probe unless the probe is blocked.
// It reports whether the character moved.
func (w *World) MoveForward(step float32) bool {
	w.Popup.Visible = false
	c := w.Character
	c.updateProbes()
	return w.move(c.Front, step)
}

// MoveBackward is MoveForward along the back probe.
func (w *World) MoveBackward(step float32) bool {
	w.Popup.Visible = false
	c := w.Character
	c.updateProbes()
	return w.move(c.Back, step)
}

func (w *World) move(dir rl.Vector3, step float32) bool {
	c := w.Character
	if !w.colliders.ProbeClear(w.ProbeOrigin(), dir, w.cfg.SelfHitEpsilon, w.cfg.BlockDistance) {
		w.Log.Debug().
			Float32("x", c.Position.X).
			Float32("z", c.Position.Z).
			Msg("move blocked")
		return false
	}
	c.translate(dir, step)
	c.Walking = true
	return true
}

// ProbeOrigin is where movement probes start: the character position lowered by the configured probe height.
func (w *World) ProbeOrigin() rl.Vector3 {
	return rl.Vector3Subtract(w.Character.Position, rl.NewVector3(0, w.cfg.ProbeHeight, 0))
}

// Pick resolves a pointer ray against the scene. Only the nearest object counts: when it is an activated box
// the popup shows that box's identifier and BoxPicked is emitted; anything else leaves the popup unchanged.
func (w *World) Pick(ctx context.Context, ray rl.Ray) (Box, bool) {
	idx := -1
	var nearest float32
	if hit, ok := w.colliders.Raycast(ray); ok {
		idx, nearest = hit.Body, hit.Distance
	}
	if d, ok := w.characterHit(ray); ok && (idx < 0 || d < nearest) {
		idx = -1
		nearest = d
	}
	if d, ok := groundHit(ray); ok && idx >= 0 && d < nearest {
		idx = -1
	}
	if idx < 0 {
		return Box{}, false
	}
	box := w.Boxes[idx]
	if !box.Clickable() {
		return Box{}, false
	}
	w.Popup = Popup{Visible: true, BoxID: box.ID}
	w.BoxPicked.Emit(ctx, BoxPicked{ID: box.ID, Position: box.Position})
	return box, true
}

// HidePopup closes the overlay.
func (w *World) HidePopup() {
	w.Popup.Visible = false
}

// characterHit tests ray against the character's parts in character space, legs at rest.
func (w *World) characterHit(ray rl.Ray) (float32, bool) {
	c := w.Character
	inv := rl.QuaternionInvert(c.Rotation())
	local := rl.NewRay(
		rl.Vector3RotateByQuaternion(rl.Vector3Subtract(ray.Position, c.Position), inv),
		rl.Vector3RotateByQuaternion(ray.Direction, inv),
	)
	found := false
	var best float32
	for _, p := range c.Parts() {
		h := rl.Vector3Scale(p.Size, 0.5)
		col := rl.GetRayCollisionBox(local, rl.NewBoundingBox(rl.Vector3Subtract(p.Offset, h), rl.Vector3Add(p.Offset, h)))
		if col.Hit && (!found || col.Distance < best) {
			best = col.Distance
			found = true
		}
	}
	return best, found
}

// groundHit intersects ray with the ground plane (y = 0).
func groundHit(ray rl.Ray) (float32, bool) {
	col := rl.GetRayCollisionQuad(ray,
		rl.NewVector3(-groundExtent, 0, -groundExtent),
		rl.NewVector3(-groundExtent, 0, groundExtent),
		rl.NewVector3(groundExtent, 0, groundExtent),
		rl.NewVector3(groundExtent, 0, -groundExtent),
	)
	return col.Distance, col.Hit
}
