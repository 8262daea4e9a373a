package console

import (
	"unicode/utf8"

	rl "github.com/gen2brain/raylib-go/raylib"

	"magic-boxes/internal/commands"
	"magic-boxes/internal/logger"
)

const (
	BarHeight = 40
	prompt    = "> "
	fontSize  = 20
	padding   = 8
	// Number of log lines drawn above the input bar when the console is open.
	maxLinesOnScreen = 14
	lineHeight       = fontSize + 4
	maxLineChars     = 200
)

var (
	barColor    = rl.NewColor(40, 40, 40, 255)
	lineColor   = rl.NewColor(80, 80, 80, 255)
	historyBg   = rl.NewColor(24, 24, 24, 240)
	historyText = rl.LightGray
)

// Console is the developer input bar at the bottom of the screen, shown and hidden with ESC.
// While open it captures the keyboard, so the character does not move. Lines starting with "cmd "
// run through the command registry; anything else is echoed to the log.
type Console struct {
	log      *logger.Logger
	reg      *commands.Registry
	inputBuf string
	open     bool
	// submitted lines, oldest first; recall indexes into it (len = not recalling).
	submitted []string
	recall    int
}

// New returns a closed Console that logs to log and runs commands through reg.
func New(log *logger.Logger, reg *commands.Registry) *Console {
	return &Console{log: log, reg: reg}
}

// IsOpen reports whether the console is visible and capturing input.
func (c *Console) IsOpen() bool {
	return c.open
}

// Toggle opens or closes the console.
func (c *Console) Toggle() {
	c.open = !c.open
}

// Input returns the text typed so far.
func (c *Console) Input() string {
	return c.inputBuf
}

// Submit logs line and, if it is a command, executes it. Command errors are logged, never returned.
func (c *Console) Submit(line string) {
	if line == "" {
		return
	}
	c.log.Log(prompt + line)
	c.submitted = append(c.submitted, line)
	c.recall = len(c.submitted)
	c.inputBuf = ""

	args, isCmd := commands.Parse(line)
	if !isCmd {
		return
	}
	if err := c.reg.Execute(args); err != nil {
		c.log.Warn().Err(err).Msg("command failed")
	}
}

// Recall moves through previously submitted lines: -1 is older, +1 is newer.
// Moving past the newest line clears the input.
func (c *Console) Recall(delta int) {
	if len(c.submitted) == 0 {
		return
	}
	c.recall = min(max(c.recall+delta, 0), len(c.submitted))
	if c.recall == len(c.submitted) {
		c.inputBuf = ""
		return
	}
	c.inputBuf = c.submitted[c.recall]
}

// Update handles ESC (toggle) and, when open: typing, paste, backspace, history, enter. Call once per frame.
func (c *Console) Update() {
	if rl.IsKeyPressed(rl.KeyEscape) {
		c.Toggle()
	}
	if !c.open {
		return
	}
	if rl.IsKeyPressed(rl.KeyV) && (rl.IsKeyDown(rl.KeyLeftControl) || rl.IsKeyDown(rl.KeyRightControl) || rl.IsKeyDown(rl.KeyLeftSuper) || rl.IsKeyDown(rl.KeyRightSuper)) {
		c.inputBuf += rl.GetClipboardText()
	} else {
		for ch := rl.GetCharPressed(); ch != 0; ch = rl.GetCharPressed() {
			c.inputBuf += string(rune(ch))
		}
	}
	if rl.IsKeyPressed(rl.KeyBackspace) && len(c.inputBuf) > 0 {
		_, size := utf8.DecodeLastRuneInString(c.inputBuf)
		c.inputBuf = c.inputBuf[:len(c.inputBuf)-size]
	}
	if rl.IsKeyPressed(rl.KeyUp) {
		c.Recall(-1)
	}
	if rl.IsKeyPressed(rl.KeyDown) {
		c.Recall(1)
	}
	if rl.IsKeyPressed(rl.KeyEnter) || rl.IsKeyPressed(rl.KeyKpEnter) {
		c.Submit(c.inputBuf)
	}
}

// Draw draws the input bar at the bottom when open, and the most recent log lines above it.
func (c *Console) Draw() {
	if !c.open {
		return
	}
	screenW := int32(rl.GetScreenWidth())
	barY := int32(rl.GetScreenHeight()) - BarHeight

	historyH := int32(maxLinesOnScreen * lineHeight)
	historyY := max(barY-historyH, 0)
	rl.DrawRectangle(0, historyY, screenW, barY-historyY, historyBg)

	lines := c.log.Lines()
	start := max(len(lines)-maxLinesOnScreen, 0)
	for i, line := range lines[start:] {
		if len(line) > maxLineChars {
			line = line[:maxLineChars-3] + "..."
		}
		rl.DrawText(line, padding, historyY+int32(i*lineHeight)+padding, fontSize, historyText)
	}

	rl.DrawRectangle(0, barY, screenW, BarHeight, barColor)
	rl.DrawRectangle(0, barY, screenW, 1, lineColor)
	rl.DrawText(prompt+c.inputBuf+"|", padding, barY+padding, fontSize, rl.White)
}
