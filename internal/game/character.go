package game

import (
	"time"

	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/jinzhu/copier"
)

// Part is one box-shaped piece of the character in character space.
// Pitch is the rotation around the part's own X axis (legs swing with it).
type Part struct {
	Offset rl.Vector3
	Size   rl.Vector3
	Pitch  float32
}

// Character is the player-controlled figure: a body and two legs grouped under one transform.
// Front and Back are the collision probe directions and always match Yaw.
type Character struct {
	Position rl.Vector3
	Yaw      float32
	Walking  bool
	Front    rl.Vector3
	Back     rl.Vector3

	Body     Part
	LeftLeg  Part
	RightLeg Part
}

// NewCharacter returns a character standing at position and facing -Z.
func NewCharacter(position rl.Vector3) *Character {
	c := &Character{
		Position: position,
		Body:     Part{Offset: rl.NewVector3(0, 0.5, 0), Size: rl.NewVector3(1, 1, 1)},
		LeftLeg:  Part{Offset: rl.NewVector3(-0.3, -0.5, 0), Size: rl.NewVector3(0.25, 1, 0.25)},
	}
	_ = copier.Copy(&c.RightLeg, &c.LeftLeg)
	c.RightLeg.Offset.X = 0.3
	c.updateProbes()
	return c
}

// worldDirection is the character's local +Z axis in world space.
func (c *Character) worldDirection() rl.Vector3 {
	return rl.NewVector3(math32.Sin(c.Yaw), 0, math32.Cos(c.Yaw))
}

// updateProbes recomputes Front and Back from Yaw.
func (c *Character) updateProbes() {
	d := c.worldDirection()
	c.Front = rl.Vector3Negate(d)
	c.Back = d
}

// TurnLeft rotates the character counter-clockwise (seen from above) by angle radians.
func (c *Character) TurnLeft(angle float32) {
	c.Yaw += angle
	c.updateProbes()
}

// TurnRight rotates the character clockwise by angle radians.
func (c *Character) TurnRight(angle float32) {
	c.Yaw -= angle
	c.updateProbes()
}

// translate moves the character by distance along dir.
func (c *Character) translate(dir rl.Vector3, distance float32) {
	c.Position = rl.Vector3Add(c.Position, rl.Vector3Scale(dir, distance))
}

// Rotation returns the character's orientation as a quaternion around +Y.
func (c *Character) Rotation() rl.Quaternion {
	return rl.QuaternionFromAxisAngle(rl.NewVector3(0, 1, 0), c.Yaw)
}

// Walk poses the legs for time t: opposite sine swings while walking, neutral otherwise.
// frequency is in radians per millisecond.
func (c *Character) Walk(t time.Duration, frequency, amplitude float32) {
	if !c.Walking {
		c.LeftLeg.Pitch = 0
		c.RightLeg.Pitch = 0
		return
	}
	phase := float32(t.Seconds()*1000) * frequency
	c.LeftLeg.Pitch = math32.Sin(phase) * amplitude
	c.RightLeg.Pitch = math32.Sin(phase+math32.Pi) * amplitude
}

// Parts returns body and legs in draw order.
func (c *Character) Parts() []Part {
	return []Part{c.Body, c.LeftLeg, c.RightLeg}
}

// PartTransform returns the world matrix of a unit cube scaled and placed as p.
func (c *Character) PartTransform(p Part) rl.Matrix {
	m := rl.MatrixScale(p.Size.X, p.Size.Y, p.Size.Z)
	m = rl.MatrixMultiply(m, rl.MatrixRotateX(p.Pitch))
	m = rl.MatrixMultiply(m, rl.MatrixTranslate(p.Offset.X, p.Offset.Y, p.Offset.Z))
	m = rl.MatrixMultiply(m, rl.MatrixRotateY(c.Yaw))
	return rl.MatrixMultiply(m, rl.MatrixTranslate(c.Position.X, c.Position.Y, c.Position.Z))
}
