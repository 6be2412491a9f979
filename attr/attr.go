package attr

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidColorMode is returned when colours cannot be encoded together,
// either because one is malformed or because they mix indexed and truecolor
// modes without an explicit conversion.
var ErrInvalidColorMode = errors.New("invalid color mode")

// Style is a set of text style flags.
type Style uint8

const (
	Bold Style = 1 << iota
	Italics
	Underline
	Blink

	// StyleMask covers every defined style bit.
	StyleMask = Bold | Italics | Underline | Blink
)

var styleNames = []struct {
	s    Style
	name string
}{
	{Bold, "bold"},
	{Italics, "italics"},
	{Underline, "underline"},
	{Blink, "blink"},
}

// String returns the style flags joined by '+', or "none".
func (s Style) String() string {
	var parts []string
	for _, n := range styleNames {
		if s&n.s != 0 {
			parts = append(parts, n.name)
		}
	}
	if len(parts) == 0 {
		return "none"
	}
	return strings.Join(parts, "+")
}

// Attr is a packed cell attribute. It is 64 bits wide rather than the
// classic 32: two 24-bit true colours plus their mode tags and the style
// flags do not fit in 32 bits. Layout from LSB:
//
//	bits  0-3   style flags
//	bits  4-31  foreground Color
//	bits 32-59  background Color
//
// Attr values are plain data; copy them freely.
type Attr uint64

const (
	fgShift = 4
	bgShift = 32
)

// DefaultAttr is the attribute of a freshly created canvas: default
// foreground on default background, no style.
const DefaultAttr Attr = 0

func pack(fg, bg Color, s Style) Attr {
	return Attr(uint64(s&StyleMask) |
		uint64(fg&colorMask)<<fgShift |
		uint64(bg&colorMask)<<bgShift)
}

// Encode packs a colour pair and style flags. It fails with
// ErrInvalidColorMode if a colour is malformed or if the two colours belong
// to incompatible modes; use EncodeAs to request a conversion.
func Encode(fg, bg Color, s Style) (Attr, error) {
	if !fg.Valid() {
		return 0, fmt.Errorf("%w: foreground %s", ErrInvalidColorMode, fg)
	}
	if !bg.Valid() {
		return 0, fmt.Errorf("%w: background %s", ErrInvalidColorMode, bg)
	}
	if !Compatible(fg, bg) {
		return 0, fmt.Errorf("%w: cannot mix %s foreground with %s background",
			ErrInvalidColorMode, fg.Mode(), bg.Mode())
	}
	return pack(fg, bg, s), nil
}

// MustEncode is like Encode but panics on error. It is meant for package
// level attribute tables built from constant colours.
func MustEncode(fg, bg Color, s Style) Attr {
	a, err := Encode(fg, bg, s)
	if err != nil {
		panic(err)
	}
	return a
}

// EncodeAs converts both colours to mode before packing them. Default and
// Transparent are kept as they are. mode must be ModeANSI, ModePalette or
// ModeRGB.
func EncodeAs(fg, bg Color, s Style, mode ColorMode) (Attr, error) {
	switch mode {
	case ModeANSI, ModePalette, ModeRGB:
	default:
		return 0, fmt.Errorf("%w: cannot convert to %s", ErrInvalidColorMode, mode)
	}
	if !fg.Valid() {
		return 0, fmt.Errorf("%w: foreground %s", ErrInvalidColorMode, fg)
	}
	if !bg.Valid() {
		return 0, fmt.Errorf("%w: background %s", ErrInvalidColorMode, bg)
	}
	return pack(fg.To(mode), bg.To(mode), s), nil
}

// Decode unpacks an attribute.
func Decode(a Attr) (fg, bg Color, s Style) {
	return a.Foreground(), a.Background(), a.Style()
}

// Foreground returns the foreground colour.
func (a Attr) Foreground() Color {
	return Color(uint64(a) >> fgShift & colorMask)
}

// Background returns the background colour.
func (a Attr) Background() Color {
	return Color(uint64(a) >> bgShift & colorMask)
}

// Style returns the style flags.
func (a Attr) Style() Style {
	return Style(a) & StyleMask
}

// WithStyle returns a with the given flags set, colours untouched.
func (a Attr) WithStyle(s Style) Attr {
	return a | Attr(s&StyleMask)
}

// WithoutStyle returns a with the given flags cleared.
func (a Attr) WithoutStyle(s Style) Attr {
	return a &^ Attr(s&StyleMask)
}

// ToggleStyle returns a with the given flags flipped.
func (a Attr) ToggleStyle(s Style) Attr {
	return a ^ Attr(s&StyleMask)
}

// ReplaceStyle returns a with its style flags replaced by s.
func (a Attr) ReplaceStyle(s Style) Attr {
	return a.WithoutStyle(StyleMask).WithStyle(s)
}

// WithColors returns a with its colours replaced, keeping the style.
func (a Attr) WithColors(fg, bg Color) (Attr, error) {
	return Encode(fg, bg, a.Style())
}

// Invert returns a with both colours complemented.
func (a Attr) Invert() Attr {
	return pack(a.Foreground().Invert(), a.Background().Invert(), a.Style())
}

// String describes the attribute as "fg/bg style".
func (a Attr) String() string {
	return fmt.Sprintf("%s/%s %s", a.Foreground(), a.Background(), a.Style())
}
