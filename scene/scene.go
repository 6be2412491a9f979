// Package scene describes drawings as data. A scene document lists
// sprites and drawing operations that are replayed onto a canvas, so
// pictures can be kept in TOML or JSON files instead of code.
package scene

// Scene is a complete drawing: canvas size, starting colours, reusable
// sprites and the operations to replay in order.
type Scene struct {
	Width  int    `toml:"width" json:"width"`
	Height int    `toml:"height" json:"height"`
	Fg     string `toml:"fg" json:"fg"`
	Bg     string `toml:"bg" json:"bg"`
	Style  string `toml:"style" json:"style"`

	Sprites []Sprite `toml:"sprite" json:"sprites"`
	Ops     []Op     `toml:"op" json:"ops"`
}

// Sprite is a small picture that blit operations copy onto the scene.
type Sprite struct {
	Name string   `toml:"name" json:"name"`
	Rows []string `toml:"rows" json:"rows"`

	// Mask rows have the size of Rows. A blank in the mask leaves the
	// destination cell alone.
	Mask []string `toml:"mask" json:"mask"`

	// Transparent is a glyph that stands for a see-through cell.
	Transparent string `toml:"transparent" json:"transparent"`

	// Handle is the sprite cell placed at the blit position.
	Handle [2]int `toml:"handle" json:"handle"`

	Fg    string `toml:"fg" json:"fg"`
	Bg    string `toml:"bg" json:"bg"`
	Style string `toml:"style" json:"style"`
}

// Op is one drawing operation. Which fields matter depends on Kind; the
// rest are ignored.
//
//	clear, invert, flip, flop, rotate   whole canvas
//	rotate-left, rotate-right           whole canvas, resized
//	stretch-left, stretch-right         whole canvas, resized
//	fill                                Glyph
//	line, polyline, triangle            Points, Glyph (thin-* variants: Points)
//	fill-triangle                       Points, Glyph
//	box, fill-box                       X, Y, W, H, Glyph
//	thin-box, cp437-box                 X, Y, W, H
//	styled-box                          X, Y, W, H, Box, Join
//	circle                              X, Y, Radius, Glyph
//	ellipse, fill-ellipse               X, Y, A, B, Glyph (thin-ellipse: no Glyph)
//	text                                X, Y, Text
//	paragraph                           X, Y, W, Text, Wrap
//	cursor                              X, Y
//	print                               Text at the cursor
//	line-to                             X, Y, Glyph from the cursor
//	blit                                X, Y, Sprite
//
// Colours and style given on an op become the canvas attribute and stay
// in effect for the ops that follow.
type Op struct {
	Kind string `toml:"kind" json:"kind"`

	X int `toml:"x" json:"x"`
	Y int `toml:"y" json:"y"`
	W int `toml:"w" json:"w"`
	H int `toml:"h" json:"h"`

	Points [][2]int `toml:"points" json:"points"`
	Radius int      `toml:"radius" json:"radius"`
	A      int      `toml:"a" json:"a"`
	B      int      `toml:"b" json:"b"`

	Glyph  string `toml:"glyph" json:"glyph"`
	Text   string `toml:"text" json:"text"`
	Wrap   string `toml:"wrap" json:"wrap"`
	Box    string `toml:"box" json:"box"`
	Join   bool   `toml:"join" json:"join"`
	Sprite string `toml:"sprite" json:"sprite"`

	Fg    string `toml:"fg" json:"fg"`
	Bg    string `toml:"bg" json:"bg"`
	Style string `toml:"style" json:"style"`
}
