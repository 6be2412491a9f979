// Package attr packs and unpacks cell attributes: a foreground colour, a
// background colour and a set of style flags.
//
// Colours come in five modes:
//
//   - ModeDefault: whatever the renderer considers its default colour
//   - ModeTransparent: shows the layer underneath when composited
//   - ModeANSI: one of the 16 classic colours, in DOS/CGA order (Blue is 1)
//   - ModePalette: an xterm 256-colour palette index
//   - ModeRGB: 24-bit truecolor
//
// Encoding is lossless within a colour mode. Downgrading between modes goes
// through Color.To, which is deterministic: truecolor to ANSI picks the
// nearest entry of a fixed 16-colour table by CIE Lab distance, truecolor to
// palette picks the nearest xterm cube or grey-ramp entry.
package attr

import "fmt"

// ColorMode tags the interpretation of a Color payload.
type ColorMode uint8

const (
	ModeDefault     ColorMode = iota // renderer default colour
	ModeTransparent                  // no colour, composited through
	ModeANSI                         // 16-colour index, DOS/CGA order
	ModePalette                      // xterm 256-colour index
	ModeRGB                          // 24-bit truecolor
)

// String returns the mode name.
func (m ColorMode) String() string {
	switch m {
	case ModeDefault:
		return "default"
	case ModeTransparent:
		return "transparent"
	case ModeANSI:
		return "ansi"
	case ModePalette:
		return "palette"
	case ModeRGB:
		return "rgb"
	default:
		return fmt.Sprintf("mode(%d)", uint8(m))
	}
}

// Color is a tagged colour value: bits 24-27 hold the ColorMode, bits 0-23
// hold the payload (an index for ANSI/palette colours, 0xRRGGBB for RGB).
// The zero value is Default.
type Color uint32

const (
	colorModeShift = 24
	colorPayload   = 1<<colorModeShift - 1
	colorBits      = 28
	colorMask      = 1<<colorBits - 1
)

// Special colours.
const (
	Default     Color = Color(ModeDefault) << colorModeShift
	Transparent Color = Color(ModeTransparent) << colorModeShift
)

// The 16 ANSI colours, in the order used by ToANSI.
const (
	Black Color = Color(ModeANSI)<<colorModeShift | iota
	Blue
	Green
	Cyan
	Red
	Magenta
	Brown
	LightGray
	DarkGray
	LightBlue
	LightGreen
	LightCyan
	LightRed
	LightMagenta
	Yellow
	White
)

func makeColor(mode ColorMode, payload uint32) Color {
	return Color(mode)<<colorModeShift | Color(payload&colorPayload)
}

// ANSI returns the 16-colour entry i. Indices above 15 produce an invalid
// colour that Encode rejects.
func ANSI(i uint8) Color {
	return makeColor(ModeANSI, uint32(i))
}

// Palette returns the xterm 256-colour palette entry i.
func Palette(i uint8) Color {
	return makeColor(ModePalette, uint32(i))
}

// RGB returns a truecolor value.
func RGB(r, g, b uint8) Color {
	return makeColor(ModeRGB, uint32(r)<<16|uint32(g)<<8|uint32(b))
}

// Hex returns a truecolor value from a 0xRRGGBB integer. Bits above 24 are ignored.
func Hex(rgb uint32) Color {
	return makeColor(ModeRGB, rgb)
}

// Mode returns the colour mode tag.
func (c Color) Mode() ColorMode {
	return ColorMode(c >> colorModeShift & 0xF)
}

// Index returns the palette index of an ANSI or palette colour, 0 otherwise.
func (c Color) Index() uint8 {
	switch c.Mode() {
	case ModeANSI, ModePalette:
		return uint8(c & 0xFF)
	}
	return 0
}

// Components returns the raw channels of an RGB colour. For other modes it
// returns zeros; use Resolve to get the displayed value.
func (c Color) Components() (r, g, b uint8) {
	if c.Mode() != ModeRGB {
		return 0, 0, 0
	}
	v := uint32(c & colorPayload)
	return uint8(v >> 16), uint8(v >> 8), uint8(v)
}

// Valid reports whether c is a well-formed colour.
func (c Color) Valid() bool {
	if c&^colorMask != 0 {
		return false
	}
	switch c.Mode() {
	case ModeDefault, ModeTransparent:
		return c&colorPayload == 0
	case ModeANSI:
		return c&colorPayload < 16
	case ModePalette:
		return c&colorPayload < 256
	case ModeRGB:
		return true
	}
	return false
}

// IsSpecial reports whether c is Default or Transparent.
func (c Color) IsSpecial() bool {
	m := c.Mode()
	return m == ModeDefault || m == ModeTransparent
}

var ansiNames = [16]string{
	"black", "blue", "green", "cyan", "red", "magenta", "brown", "lightgray",
	"darkgray", "lightblue", "lightgreen", "lightcyan", "lightred", "lightmagenta", "yellow", "white",
}

// String returns a form accepted by ParseColor.
func (c Color) String() string {
	if !c.Valid() {
		return fmt.Sprintf("invalid(%#x)", uint32(c))
	}
	switch c.Mode() {
	case ModeDefault:
		return "default"
	case ModeTransparent:
		return "transparent"
	case ModeANSI:
		return ansiNames[c.Index()]
	case ModePalette:
		return fmt.Sprintf("palette:%d", c.Index())
	default:
		return fmt.Sprintf("#%06x", uint32(c&colorPayload))
	}
}

// family groups modes that may share an attribute without conversion.
type family uint8

const (
	familyAny family = iota
	familyIndexed
	familyTrue
)

func (c Color) family() family {
	switch c.Mode() {
	case ModeANSI, ModePalette:
		return familyIndexed
	case ModeRGB:
		return familyTrue
	}
	return familyAny
}

// Compatible reports whether a and b may be encoded together without an
// explicit conversion. Default and Transparent combine with anything;
// ANSI and palette colours combine with each other but not with RGB.
func Compatible(a, b Color) bool {
	fa, fb := a.family(), b.family()
	return fa == familyAny || fb == familyAny || fa == fb
}
