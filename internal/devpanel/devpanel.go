package devpanel

import (
	"fmt"

	"github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// Slider range for each offset component.
const (
	Min = -10
	Max = 10
)

const (
	width      = 260
	margin     = 12
	headerH    = 24
	rowH       = 26
	labelW     = 20
	valueW     = 50
	rowPadding = 8
)

// Panel is the developer folder "cameraOffset": three sliders editing the follow-camera offset in place.
type Panel struct {
	Title   string
	Visible bool
}

// New returns a visible panel.
func New() *Panel {
	return &Panel{Title: "cameraOffset", Visible: true}
}

// Bounds returns the panel rectangle for a screen of width screenW (top-right corner).
func (p *Panel) Bounds(screenW int32) rl.Rectangle {
	return rl.NewRectangle(float32(screenW-width-margin), margin, width, headerH+3*rowH+rowPadding)
}

// Contains reports whether pt is over the visible panel, so clicks there are not treated as picks.
func (p *Panel) Contains(pt rl.Vector2, screenW int32) bool {
	return p.Visible && rl.CheckCollisionPointRec(pt, p.Bounds(screenW))
}

// Clamp limits v to the slider range.
func Clamp(v float32) float32 {
	return min(max(v, Min), Max)
}

// Draw draws the panel and applies slider changes to offset. Call in the 2D overlay phase.
func (p *Panel) Draw(offset *rl.Vector3) {
	if !p.Visible {
		return
	}
	b := p.Bounds(int32(rl.GetScreenWidth()))
	raygui.GroupBox(b, p.Title)

	fields := []struct {
		name string
		v    *float32
	}{
		{"x", &offset.X},
		{"y", &offset.Y},
		{"z", &offset.Z},
	}
	for i, f := range fields {
		row := rl.NewRectangle(
			b.X+rowPadding+labelW,
			b.Y+headerH+float32(i)*rowH,
			b.Width-2*rowPadding-labelW-valueW,
			rowH-6,
		)
		*f.v = Clamp(raygui.SliderBar(row, f.name, fmt.Sprintf("%.2f", *f.v), *f.v, Min, Max))
	}
}
