package game

import (
	"context"
	"testing"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func downRayAt(x, z float32) rl.Ray {
	return rl.NewRay(rl.NewVector3(x, 10, z), rl.NewVector3(0, -1, 0))
}

func TestPick_InactiveBoxNeverShowsPopup(t *testing.T) {
	w := newTestWorld(boxAt(311, 6, 0.5, 6))
	w.UpdateProximity()

	for _, off := range []float32{0, 0.2, -0.45} {
		_, ok := w.Pick(context.Background(), downRayAt(6+off, 6-off))
		assert.False(t, ok)
	}
	assert.False(t, w.Popup.Visible)
}

func TestPick_ActiveBoxShowsItsID(t *testing.T) {
	w := newTestWorld(boxAt(417, 1.5, 0.5, 0), boxAt(12, 6, 0.5, 6))
	w.UpdateProximity()
	require.True(t, w.Boxes[0].Activated)

	box, ok := w.Pick(context.Background(), downRayAt(1.5, 0.1))
	require.True(t, ok)
	assert.Equal(t, 417, box.ID)
	assert.Equal(t, Popup{Visible: true, BoxID: 417}, w.Popup)
}

func TestPick_EmitsBoxPicked(t *testing.T) {
	w := newTestWorld(boxAt(73, 1.5, 0.5, 0))
	w.UpdateProximity()
	got := make(chan BoxPicked, 1)
	w.BoxPicked.AddListener(func(_ context.Context, ev BoxPicked) {
		got <- ev
	})

	_, ok := w.Pick(context.Background(), downRayAt(1.5, 0))
	require.True(t, ok)
	select {
	case ev := <-got:
		assert.Equal(t, 73, ev.ID)
		assertVec(t, rl.NewVector3(1.5, 0.5, 0), ev.Position)
	case <-time.After(time.Second):
		t.Fatal("no BoxPicked event")
	}
}

func TestPick_MissKeepsPopupState(t *testing.T) {
	w := newTestWorld(boxAt(417, 1.5, 0.5, 0))
	w.UpdateProximity()
	w.Popup = Popup{Visible: true, BoxID: 5}

	_, ok := w.Pick(context.Background(), downRayAt(8, 8))
	assert.False(t, ok)
	assert.Equal(t, Popup{Visible: true, BoxID: 5}, w.Popup)
}

func TestPick_NearestObjectWins(t *testing.T) {
	// The character stands between the ray origin and an activated box.
	w := newTestWorld(boxAt(417, 1.5, 0.5, 0))
	w.UpdateProximity()
	require.True(t, w.Boxes[0].Activated)

	ray := rl.NewRay(rl.NewVector3(-5, 0.5, 0), rl.NewVector3(1, 0, 0))
	_, ok := w.Pick(context.Background(), ray)
	assert.False(t, ok)
	assert.False(t, w.Popup.Visible)

	// From the other side the box is nearest.
	ray = rl.NewRay(rl.NewVector3(5, 0.5, 0), rl.NewVector3(-1, 0, 0))
	box, ok := w.Pick(context.Background(), ray)
	require.True(t, ok)
	assert.Equal(t, 417, box.ID)
}

func TestPick_OnlyNearestBoxIsSelected(t *testing.T) {
	w := newTestWorld(boxAt(1, 1.2, 0.5, -1), boxAt(2, 1.2, 0.5, 1))
	w.UpdateProximity()
	require.True(t, w.Boxes[0].Activated)
	require.True(t, w.Boxes[1].Activated)

	ray := rl.NewRay(rl.NewVector3(1.2, 0.5, -6), rl.NewVector3(0, 0, 1))
	box, ok := w.Pick(context.Background(), ray)
	require.True(t, ok)
	assert.Equal(t, 1, box.ID)
	assert.Equal(t, 1, w.Popup.BoxID)
}

func TestHidePopup(t *testing.T) {
	w := newTestWorld()
	w.Popup = Popup{Visible: true, BoxID: 3}
	w.HidePopup()
	assert.False(t, w.Popup.Visible)
}
