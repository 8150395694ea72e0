// Package render defines the minimal, opaque draw-command vocabulary a
// gamemode.Mode emits from Draw. The gameplay runtime never interprets
// these commands itself; it only collects and forwards them, matching
// the teacher's separation between simulation state and the GL renderer
// in _examples/Blazzycrafter-danser-go/app/states/components/overlays
// (draw calls built from plain data, issued by a renderer this module
// does not own).
package render

// Kind discriminates a Command's payload.
type Kind int

const (
	Circle Kind = iota
	Sprite
	Line
	Text
)

// Color is a plain RGBA color in [0,1].
type Color struct {
	R, G, B, A float32
}

// Command is a single opaque draw instruction. Only the fields relevant
// to Kind are meaningful.
type Command struct {
	Kind Kind

	X, Y, Radius float32 // Circle
	TextureName  string  // Sprite
	X2, Y2       float32 // Line end point
	Text         string  // Text
	Size         float32 // Sprite scale / Line width / Text size

	Color Color
	Depth float32
}

// List accumulates Commands emitted during a single Draw call.
type List struct {
	commands []Command
}

// NewList returns an empty command list.
func NewList() *List {
	return &List{}
}

// AddCircle appends a Circle command.
func (l *List) AddCircle(x, y, radius float32, c Color, depth float32) {
	l.commands = append(l.commands, Command{Kind: Circle, X: x, Y: y, Radius: radius, Color: c, Depth: depth})
}

// AddSprite appends a Sprite command.
func (l *List) AddSprite(textureName string, x, y, scale float32, c Color, depth float32) {
	l.commands = append(l.commands, Command{Kind: Sprite, TextureName: textureName, X: x, Y: y, Size: scale, Color: c, Depth: depth})
}

// AddLine appends a Line command.
func (l *List) AddLine(x1, y1, x2, y2, width float32, c Color, depth float32) {
	l.commands = append(l.commands, Command{Kind: Line, X: x1, Y: y1, X2: x2, Y2: y2, Size: width, Color: c, Depth: depth})
}

// AddText appends a Text command.
func (l *List) AddText(text string, x, y, size float32, c Color, depth float32) {
	l.commands = append(l.commands, Command{Kind: Text, Text: text, X: x, Y: y, Size: size, Color: c, Depth: depth})
}

// Commands returns the accumulated commands. Callers must not mutate it.
func (l *List) Commands() []Command {
	return l.commands
}

// Reset clears the list for reuse on the next Draw call.
func (l *List) Reset() {
	l.commands = l.commands[:0]
}
