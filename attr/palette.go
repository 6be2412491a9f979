package attr

import (
	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"
)

// ansiTable holds the 24-bit value of each ANSI colour. There is no real
// standard; these are the gnome-terminal values, with Brown at 0xaa5500
// rather than 0xaaaa00.
var ansiTable = [16]uint32{
	0x000000, 0x0000aa, 0x00aa00, 0x00aaaa, 0xaa0000, 0xaa00aa, 0xaa5500, 0xaaaaaa,
	0x555555, 0x5555ff, 0x55ff55, 0x55ffff, 0xff5555, 0xff55ff, 0xffff55, 0xffffff,
}

// dosToSGR maps DOS/CGA colour order to the xterm/SGR order used by the
// first 16 palette entries. The mapping is its own inverse.
var dosToSGR = [16]uint8{0, 4, 2, 6, 1, 5, 3, 7, 8, 12, 10, 14, 9, 13, 11, 15}

// xterm colour cube levels for palette indices 16-231.
var cubeLevels = [6]int{0, 95, 135, 175, 215, 255}

// ansiLab caches the Lab-space version of ansiTable for nearest lookups.
var ansiLab [16]colorful.Color

func init() {
	for i, v := range ansiTable {
		ansiLab[i] = toColorful(v)
	}
}

func toColorful(rgb uint32) colorful.Color {
	return colorful.Color{
		R: float64(rgb>>16&0xFF) / 255.0,
		G: float64(rgb>>8&0xFF) / 255.0,
		B: float64(rgb&0xFF) / 255.0,
	}
}

// paletteRGB returns the 24-bit value of an xterm palette entry.
// Entries 0-15 reuse ansiTable so both 16-colour spellings agree.
func paletteRGB(i uint8) uint32 {
	if i < 16 {
		return ansiTable[dosToSGR[i]]
	}
	r, g, b := tcell.PaletteColor(int(i)).RGB()
	return uint32(r)<<16 | uint32(g)<<8 | uint32(b)
}

// nearestANSI returns the ansiTable index closest to rgb by CIE Lab distance.
// Ties resolve to the lower index.
func nearestANSI(rgb uint32) uint8 {
	target := toColorful(rgb)
	best := uint8(7)
	bestDist := -1.0
	for i := range ansiLab {
		d := target.DistanceLab(ansiLab[i])
		if bestDist < 0 || d < bestDist {
			bestDist = d
			best = uint8(i)
		}
	}
	return best
}

// nearestCube maps a channel value to the nearest cube level index.
func nearestCube(v int) int {
	best := 0
	bestDist := abs(v - cubeLevels[0])
	for j := 1; j < len(cubeLevels); j++ {
		if d := abs(v - cubeLevels[j]); d < bestDist {
			bestDist = d
			best = j
		}
	}
	return best
}

// nearestPalette finds the nearest 256-colour palette index for an RGB value,
// choosing between the 6x6x6 cube and the 24-step grey ramp.
func nearestPalette(rgb uint32) uint8 {
	r, g, b := int(rgb>>16&0xFF), int(rgb>>8&0xFF), int(rgb&0xFF)
	cr, cg, cb := nearestCube(r), nearestCube(g), nearestCube(b)
	cube := uint8(16 + 36*cr + 6*cg + cb)

	gray := (r + g + b) / 3
	if max(abs(r-gray), abs(g-gray), abs(b-gray)) >= 10 {
		return cube
	}
	if gray < 4 {
		return 16
	}
	if gray > 243 {
		return 231
	}

	step := (gray - 8) / 10
	if step < 0 {
		step = 0
	}
	if step > 23 {
		step = 23
	}
	level := 8 + step*10
	grayDist := abs(r-level) + abs(g-level) + abs(b-level)
	cubeDist := abs(r-cubeLevels[cr]) + abs(g-cubeLevels[cg]) + abs(b-cubeLevels[cb])
	if grayDist < cubeDist {
		return uint8(232 + step)
	}
	return cube
}

// invertPalette returns the palette entry with the opposite luminance.
func invertPalette(i uint8) uint8 {
	switch {
	case i < 16:
		return 15 - i
	case i < 232:
		n := i - 16
		r, g, b := n/36, n%36/6, n%6
		return 16 + 36*(5-r) + 6*(5-g) + (5 - b)
	default:
		return 232 + (23 - (i - 232))
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// To converts c to the given mode. Default and Transparent are left unchanged
// since they have no concrete value; converting to them returns c as well.
func (c Color) To(mode ColorMode) Color {
	if c.Mode() == mode || c.IsSpecial() || !c.Valid() {
		return c
	}
	switch mode {
	case ModeANSI:
		if c.Mode() == ModePalette && c.Index() < 16 {
			return ANSI(dosToSGR[c.Index()])
		}
		return ANSI(nearestANSI(c.resolve(roleForeground)))
	case ModePalette:
		if c.Mode() == ModeANSI {
			return Palette(dosToSGR[c.Index()])
		}
		return Palette(nearestPalette(c.resolve(roleForeground)))
	case ModeRGB:
		return Hex(c.resolve(roleForeground))
	}
	return c
}

// Invert returns the colour with each channel complemented. ANSI and palette
// colours stay in their mode.
func (c Color) Invert() Color {
	if !c.Valid() {
		return c
	}
	switch c.Mode() {
	case ModeANSI:
		return ANSI(15 - c.Index())
	case ModePalette:
		return Palette(invertPalette(c.Index()))
	case ModeRGB:
		return Hex(^uint32(c) & colorPayload)
	}
	return c
}

type role uint8

const (
	roleForeground role = iota
	roleBackground
)

// resolve returns the 24-bit value a renderer should display for c.
// Default and Transparent fall back to LightGray on Black, as a plain
// terminal would.
func (c Color) resolve(r role) uint32 {
	if c.Valid() {
		switch c.Mode() {
		case ModeANSI:
			return ansiTable[c.Index()]
		case ModePalette:
			return paletteRGB(c.Index())
		case ModeRGB:
			return uint32(c & colorPayload)
		}
	}
	if r == roleBackground {
		return ansiTable[Black.Index()]
	}
	return ansiTable[LightGray.Index()]
}

// Resolve returns the displayed 24-bit value of c as a foreground colour.
func (c Color) Resolve() (r, g, b uint8) {
	v := c.resolve(roleForeground)
	return uint8(v >> 16), uint8(v >> 8), uint8(v)
}
