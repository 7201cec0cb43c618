package bridge

import "fmt"

// DefaultAccent is applied by the demo path when the host supplied none.
const DefaultAccent = "#744DA9"

// win11Correction compensates for the extra window frame on Windows 11.
const win11Correction = 12

// Offset is the translation applied to the backdrop layer, in pixels.
type Offset struct {
	X int
	Y int
}

// Transform renders the offset as a CSS-style translate.
func (o Offset) Transform() string {
	return fmt.Sprintf("translate(%dpx, %dpx)", o.X, o.Y)
}

// BackdropOffset keeps the backdrop aligned with the desktop behind the
// window. It depends only on its inputs.
func BackdropOffset(pos Position, isWin11 bool) Offset {
	if isWin11 {
		return Offset{X: -(pos.X + win11Correction), Y: -(pos.Y + win11Correction)}
	}
	return Offset{X: -pos.X, Y: -pos.Y}
}

// Document is the presentation surface the bridge writes to: the panel's
// visibility attribute, the accent variable and the backdrop transform.
type Document struct {
	Visible     bool
	AccentColor string
	// Backdrop is not drawn by the terminal view. It is tracked for renderers
	// that paint the wallpaper behind the panel.
	Backdrop Offset
}
