package attr

import (
	"fmt"
	"strconv"
	"strings"
)

var colorAliases = map[string]Color{
	"lightgrey":  LightGray,
	"grey":       LightGray,
	"gray":       LightGray,
	"darkgrey":   DarkGray,
	"lightred":   LightRed,
	"pink":       LightMagenta,
	"orange":     Brown,
	"none":       Transparent,
	"background": Transparent,
}

// ParseColor parses a colour name as written in scene files:
//
//	default, transparent         special colours
//	black ... white              the 16 ANSI names (also "light-gray", "grey")
//	ansi:N                       ANSI index 0-15
//	palette:N or 256:N           xterm palette index 0-255
//	#rgb or #rrggbb              truecolor
func ParseColor(s string) (Color, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	name = strings.NewReplacer("-", "", "_", "", " ", "").Replace(name)

	switch name {
	case "", "default":
		return Default, nil
	case "transparent":
		return Transparent, nil
	}

	for i, n := range ansiNames {
		if n == name {
			return ANSI(uint8(i)), nil
		}
	}
	if c, ok := colorAliases[name]; ok {
		return c, nil
	}

	if strings.HasPrefix(name, "#") {
		return parseHex(s, name[1:])
	}

	if prefix, num, ok := strings.Cut(name, ":"); ok {
		n, err := strconv.ParseUint(num, 10, 8)
		if err != nil {
			return 0, fmt.Errorf("%w: bad index in %q", ErrInvalidColorMode, s)
		}
		switch prefix {
		case "ansi":
			if n > 15 {
				return 0, fmt.Errorf("%w: ansi index %d out of range", ErrInvalidColorMode, n)
			}
			return ANSI(uint8(n)), nil
		case "palette", "256":
			return Palette(uint8(n)), nil
		}
	}

	return 0, fmt.Errorf("%w: unknown color %q", ErrInvalidColorMode, s)
}

func parseHex(orig, digits string) (Color, error) {
	v, err := strconv.ParseUint(digits, 16, 32)
	if err != nil {
		return 0, fmt.Errorf("%w: bad hex color %q", ErrInvalidColorMode, orig)
	}
	switch len(digits) {
	case 3:
		r, g, b := uint32(v>>8&0xF), uint32(v>>4&0xF), uint32(v&0xF)
		return Hex(r*0x110000 | g*0x1100 | b*0x11), nil
	case 6:
		return Hex(uint32(v)), nil
	}
	return 0, fmt.Errorf("%w: bad hex color %q", ErrInvalidColorMode, orig)
}

// ParseStyle parses style flags separated by '+', '|', ',' or spaces.
// "none" and the empty string yield no flags.
func ParseStyle(s string) (Style, error) {
	fields := strings.FieldsFunc(strings.ToLower(s), func(r rune) bool {
		return r == '+' || r == '|' || r == ',' || r == ' '
	})

	var style Style
	for _, f := range fields {
		switch f {
		case "none":
		case "bold":
			style |= Bold
		case "italic", "italics":
			style |= Italics
		case "underline":
			style |= Underline
		case "blink":
			style |= Blink
		default:
			return 0, fmt.Errorf("unknown style %q", f)
		}
	}
	return style, nil
}
