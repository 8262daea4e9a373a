package ui

import (
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCSS(t *testing.T) {
	sheet, err := ParseCSS(`
/* comment */
.popup { background: #fff; width: 200px; }
#popup-text, .label { color: #ff0000; }
div.popup { color: #000; }
@media screen { .x { color: #111; } }
`)
	require.NoError(t, err)
	require.Len(t, sheet.Rules, 3)
	assert.Equal(t, ".popup", sheet.Rules[0].Selector)
	assert.Equal(t, "200px", sheet.Rules[0].Props["width"])
	assert.Equal(t, "#popup-text", sheet.Rules[1].Selector)
	assert.Equal(t, ".label", sheet.Rules[2].Selector)
	assert.Equal(t, "#ff0000", sheet.Rules[2].Props["color"])
}

func TestDefaultStylesheet(t *testing.T) {
	sheet := DefaultStylesheet()
	e := New(sheet)
	style := e.Style(NewInstructions())
	assert.True(t, style.Center)
	assert.Equal(t, int32(50), style.LeftPct)
}

func TestParseHexColor(t *testing.T) {
	cases := []struct {
		in   string
		want rl.Color
		ok   bool
	}{
		{"#fff", rl.NewColor(255, 255, 255, 255), true},
		{"#ff0000", rl.NewColor(255, 0, 0, 255), true},
		{"#77777780", rl.NewColor(0x77, 0x77, 0x77, 0x80), true},
		{"red", rl.Black, false},
		{"#12345", rl.Black, false},
		{"#gggggg", rl.Black, false},
	}
	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			got, ok := ParseHexColor(tc.in)
			assert.Equal(t, tc.ok, ok)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestResolveProps(t *testing.T) {
	s := ResolveProps(map[string]string{
		"width":       "120px",
		"height":      "40",
		"left":        "50%",
		"top":         "12",
		"font-size":   "32",
		"text-align":  "center",
		"display":     "none",
		"border":      "#000",
		"font-family": `"Open Sans"`,
		"unknown":     "x",
	})
	assert.Equal(t, int32(120), s.Width)
	assert.Equal(t, int32(40), s.Height)
	assert.Equal(t, int32(50), s.LeftPct)
	assert.Equal(t, int32(-1), s.TopPct)
	assert.Equal(t, int32(12), s.Top)
	assert.Equal(t, int32(32), s.FontSize)
	assert.True(t, s.Center)
	assert.True(t, s.Hidden)
	assert.True(t, s.HasBorder)
	assert.Equal(t, "Open Sans", s.FontFamily)
}

func TestEngine_LayoutCentersOnPercent(t *testing.T) {
	sheet, err := ParseCSS(`.box { width: 200; height: 100; left: 50%; top: 50%; } #pinned { left: 10; top: 20; width: 5; height: 5; }`)
	require.NoError(t, err)
	e := New(sheet)

	b := e.Layout(NewNode("panel", "box", "", ""), 800, 600)
	assert.Equal(t, rl.NewRectangle(300, 250, 200, 100), b)

	b = e.Layout(NewNode("panel", "", "pinned", ""), 800, 600)
	assert.Equal(t, rl.NewRectangle(10, 20, 5, 5), b)
}

func TestEngine_LaterRulesWin(t *testing.T) {
	sheet, err := ParseCSS(`.a { color: #111111; } #b { color: #222222; } .a { padding: 9; }`)
	require.NoError(t, err)
	e := New(sheet)
	s := e.Style(NewNode("label", "a", "b", "x"))
	assert.Equal(t, rl.NewColor(0x22, 0x22, 0x22, 255), s.Color)
	assert.Equal(t, int32(9), s.Padding)
}

func TestPopup_AppendNodes(t *testing.T) {
	p := NewPopup()
	assert.Empty(t, p.AppendNodes(nil, false, 417))

	nodes := p.AppendNodes(nil, true, 417)
	require.Len(t, nodes, 3)
	assert.Equal(t, "417", p.Text())
	assert.Equal(t, "417", nodes[2].Text)
}
