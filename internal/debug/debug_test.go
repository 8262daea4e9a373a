package debug

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormat(t *testing.T) {
	assert.Equal(t, "60 FPS", FormatFPS(60))
	assert.Equal(t, "Mem: 3.1 MB", FormatMem(3_100_000))
	assert.Equal(t, "Mem: 512 B", FormatMem(512))
}

func TestToggles(t *testing.T) {
	d := New()
	assert.False(t, d.ShowFPS)
	d.SetShowFPS(true)
	d.SetShowMemAlloc(true)
	assert.True(t, d.ShowFPS)
	assert.True(t, d.ShowMemAlloc)
}
