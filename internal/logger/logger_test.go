package logger

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogger_LinesAndFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "game.log")
	log := New(path)

	log.Log("hello")
	log.Info().Int("box", 417).Msg("box picked")

	lines := log.Lines()
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], "hello")
	assert.Contains(t, lines[1], "box picked")
	assert.Contains(t, lines[1], "box=417")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"message":"hello"`)
	assert.Contains(t, string(data), `"box":417`)
}

func TestLogger_LinesReturnsCopy(t *testing.T) {
	log := New(filepath.Join(t.TempDir(), "game.log"))
	log.Log("a")
	lines := log.Lines()
	lines[0] = "changed"
	assert.Contains(t, log.Lines()[0], "a")
}

func TestLogger_HistoryIsBounded(t *testing.T) {
	log := New(filepath.Join(t.TempDir(), "game.log"))
	for i := 0; i < maxLines+25; i++ {
		log.Log(fmt.Sprintf("line %d", i))
	}
	lines := log.Lines()
	require.Len(t, lines, maxLines)
	assert.Contains(t, lines[0], "line 25")
	assert.Contains(t, lines[len(lines)-1], fmt.Sprintf("line %d", maxLines+24))
}
