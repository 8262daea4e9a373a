package ui

import "strconv"

// Instructions is the banner shown at the top of the screen.
const Instructions = "WASD to move, Space to interact"

// Popup is the centered panel that shows the identifier of a picked box.
// It owns its nodes and updates their text when AppendNodes is called with visible true.
type Popup struct {
	panel *Node
	title *Node
	text  *Node
}

// NewPopup creates a Popup with nodes styled by .popup, #popup-title and #popup-text.
func NewPopup() *Popup {
	return &Popup{
		panel: NewNode("panel", "popup", "popup", ""),
		title: NewNode("label", "", "popup-title", "Magic box"),
		text:  NewNode("label", "", "popup-text", ""),
	}
}

// AppendNodes appends the popup nodes to dst when visible is true, after setting the text to boxID.
// When visible is false, dst is returned unchanged. Call every frame so visibility and content stay in sync.
func (p *Popup) AppendNodes(dst []*Node, visible bool, boxID int) []*Node {
	if !visible {
		return dst
	}
	p.text.Text = strconv.Itoa(boxID)
	return append(dst, p.panel, p.title, p.text)
}

// Text returns the identifier text currently shown.
func (p *Popup) Text() string {
	return p.text.Text
}

// NewInstructions returns the banner node.
func NewInstructions() *Node {
	return NewNode("label", "", "instructions", Instructions)
}
