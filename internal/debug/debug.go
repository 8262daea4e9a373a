package debug

import (
	"fmt"
	"runtime"

	"github.com/dustin/go-humanize"
	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	fontSize   = 20
	padding    = 12
	lineHeight = fontSize + 4
	// updateInterval: only refresh the text every N frames to reduce allocations.
	updateInterval = 30
)

// Debug draws the performance readout in the top-left corner: frames per second and, optionally, heap usage.
type Debug struct {
	ShowFPS      bool
	ShowMemAlloc bool
	frameCount   uint32
	fpsText      string
	memText      string
	memStats     runtime.MemStats
}

// New returns a Debug system with all overlays hidden.
func New() *Debug {
	return &Debug{}
}

// SetShowFPS sets whether the FPS counter is drawn.
func (d *Debug) SetShowFPS(show bool) {
	d.ShowFPS = show
}

// SetShowMemAlloc sets whether the heap allocation counter is drawn under the FPS counter.
func (d *Debug) SetShowMemAlloc(show bool) {
	d.ShowMemAlloc = show
}

// FormatFPS formats a frame rate for the readout.
func FormatFPS(fps int32) string {
	return fmt.Sprintf("%d FPS", fps)
}

// FormatMem formats heap bytes for the readout (e.g. "Mem: 3.1 MB").
func FormatMem(alloc uint64) string {
	return "Mem: " + humanize.Bytes(alloc)
}

// Draw renders any enabled overlays. Call after the scene and before the console.
// Text is only recomputed every updateInterval frames.
func (d *Debug) Draw() {
	d.frameCount++
	refresh := d.frameCount%updateInterval == 0
	if d.ShowFPS && d.fpsText == "" {
		refresh = true
	}
	if d.ShowMemAlloc && d.memText == "" {
		refresh = true
	}

	y := int32(padding)
	if d.ShowFPS {
		if refresh {
			d.fpsText = FormatFPS(rl.GetFPS())
		}
		rl.DrawRectangle(padding-4, y-4, rl.MeasureText(d.fpsText, fontSize)+8, lineHeight, rl.NewColor(0, 0, 34, 200))
		rl.DrawText(d.fpsText, padding, y, fontSize, rl.SkyBlue)
		y += lineHeight
	}
	if d.ShowMemAlloc {
		if refresh {
			runtime.ReadMemStats(&d.memStats)
			d.memText = FormatMem(d.memStats.Alloc)
		}
		rl.DrawText(d.memText, padding, y, fontSize, rl.DarkGreen)
	}
}
