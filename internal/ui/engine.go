package ui

import (
	_ "embed"
	"fmt"
	"os"

	rl "github.com/gen2brain/raylib-go/raylib"

	"magic-boxes/internal/fonts"
)

const fontSpacing = 1

//go:embed game.css
var defaultCSS string

// DefaultStylesheet returns the built-in overlay stylesheet (popup, instructions banner).
func DefaultStylesheet() *Stylesheet {
	sheet, err := ParseCSS(defaultCSS)
	if err != nil {
		panic(fmt.Sprintf("ui: embedded stylesheet: %v", err))
	}
	return sheet
}

// Engine holds the current stylesheet and draws nodes with raylib.
// Draw order is node order (first node drawn first, then on top the next).
// Resolved styles are cached per node and only recomputed when the stylesheet changes.
type Engine struct {
	sheet  *Stylesheet
	styles map[*Node]ComputedStyle
	fonts  map[string]rl.Font // by font-family; a zero Font marks a family that was not found
}

// New creates an engine using sheet (may be nil).
func New(sheet *Stylesheet) *Engine {
	return &Engine{
		sheet:  sheet,
		styles: make(map[*Node]ComputedStyle),
		fonts:  make(map[string]rl.Font),
	}
}

// font returns the loaded font for family, loading it from the font dirs on first use.
// Must be called with a GL context.
func (e *Engine) font(family string) (rl.Font, bool) {
	if family == "" {
		return rl.Font{}, false
	}
	f, seen := e.fonts[family]
	if !seen {
		if path, err := fonts.Find(family, fonts.BaseDirs()); err == nil {
			f = rl.LoadFont(path)
		}
		e.fonts[family] = f
	}
	return f, f.Texture.ID != 0
}

// Unload releases fonts loaded for font-family rules.
func (e *Engine) Unload() {
	for _, f := range e.fonts {
		if f.Texture.ID != 0 {
			rl.UnloadFont(f)
		}
	}
	clear(e.fonts)
}

// LoadCSS loads and parses a CSS file from path. Replaces the current stylesheet.
func (e *Engine) LoadCSS(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	sheet, err := ParseCSS(string(data))
	if err != nil {
		return err
	}
	e.SetStylesheet(sheet)
	return nil
}

// SetStylesheet sets the stylesheet directly and drops cached styles.
func (e *Engine) SetStylesheet(sheet *Stylesheet) {
	e.sheet = sheet
	clear(e.styles)
}

// resolveProps returns merged properties for a node (class and id matched; last wins).
func (e *Engine) resolveProps(n *Node) map[string]string {
	merged := make(map[string]string)
	if e.sheet == nil {
		return merged
	}
	for _, rule := range e.sheet.Rules {
		sel := rule.Selector
		if len(sel) < 2 {
			continue
		}
		matches := (sel[0] == '.' && n.Class == sel[1:]) || (sel[0] == '#' && n.ID == sel[1:])
		if !matches {
			continue
		}
		for k, v := range rule.Props {
			merged[k] = v
		}
	}
	return merged
}

// Style returns the computed style of n, resolving and caching it on first use.
func (e *Engine) Style(n *Node) ComputedStyle {
	if s, ok := e.styles[n]; ok {
		return s
	}
	s := ResolveProps(e.resolveProps(n))
	e.styles[n] = s
	return s
}

// Layout returns n's on-screen rectangle for a screen of the given size.
// Percentages place the node so that 50% centers it.
func (e *Engine) Layout(n *Node, screenW, screenH int32) rl.Rectangle {
	style := e.Style(n)
	w, h := style.Width, style.Height
	x, y := style.Left, style.Top
	if style.LeftPct >= 0 {
		x = (screenW - w) * style.LeftPct / 100
	}
	if style.TopPct >= 0 {
		y = (screenH - h) * style.TopPct / 100
	}
	n.Bounds = rl.NewRectangle(float32(x), float32(y), float32(w), float32(h))
	return n.Bounds
}

// Draw draws nodes in order: background, 1px border, then text. Nodes styled display:none are skipped.
func (e *Engine) Draw(nodes []*Node) {
	screenW := int32(rl.GetScreenWidth())
	screenH := int32(rl.GetScreenHeight())
	for _, n := range nodes {
		style := e.Style(n)
		if style.Hidden {
			continue
		}
		b := e.Layout(n, screenW, screenH)
		x, y, w, h := int32(b.X), int32(b.Y), int32(b.Width), int32(b.Height)

		if style.Background.A > 0 {
			rl.DrawRectangle(x, y, w, h, style.Background)
		}
		if style.HasBorder && w > 0 && h > 0 {
			rl.DrawRectangleLines(x, y, w, h, style.Border)
		}
		if n.Text == "" {
			continue
		}
		e.drawText(n.Text, style, x, y, w)
	}
}

func (e *Engine) drawText(text string, style ComputedStyle, x, y, w int32) {
	size := float32(style.FontSize)
	f, ok := e.font(style.FontFamily)
	textX := x + style.Padding
	if style.Center && w > 0 {
		var tw int32
		if ok {
			tw = int32(rl.MeasureTextEx(f, text, size, fontSpacing).X)
		} else {
			tw = rl.MeasureText(text, style.FontSize)
		}
		textX = x + (w-tw)/2
	}
	if ok {
		rl.DrawTextEx(f, text, rl.NewVector2(float32(textX), float32(y+style.Padding)), size, fontSpacing, style.Color)
		return
	}
	rl.DrawText(text, textX, y+style.Padding, style.FontSize, style.Color)
}
