package devpanel

import (
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/stretchr/testify/assert"
)

func TestClamp(t *testing.T) {
	assert.Equal(t, float32(-10), Clamp(-12))
	assert.Equal(t, float32(10), Clamp(10.5))
	assert.Equal(t, float32(3), Clamp(3))
}

func TestContains(t *testing.T) {
	p := New()
	b := p.Bounds(1280)
	inside := rl.NewVector2(b.X+b.Width/2, b.Y+b.Height/2)

	assert.True(t, p.Contains(inside, 1280))
	assert.False(t, p.Contains(rl.NewVector2(10, 10), 1280))

	p.Visible = false
	assert.False(t, p.Contains(inside, 1280))
}
