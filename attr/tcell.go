package attr

import "github.com/gdamore/tcell/v2"

// TcellColor converts c to the tcell representation. Default and
// Transparent both become tcell.ColorDefault.
func TcellColor(c Color) tcell.Color {
	if !c.Valid() {
		return tcell.ColorDefault
	}
	switch c.Mode() {
	case ModeANSI:
		return tcell.PaletteColor(int(dosToSGR[c.Index()]))
	case ModePalette:
		return tcell.PaletteColor(int(c.Index()))
	case ModeRGB:
		r, g, b := c.Components()
		return tcell.NewRGBColor(int32(r), int32(g), int32(b))
	}
	return tcell.ColorDefault
}

// FromTcell converts a tcell colour. Palette entries keep their index,
// RGB colours stay truecolor and anything else is Default.
func FromTcell(c tcell.Color) Color {
	switch {
	case c == tcell.ColorDefault || !c.Valid():
		return Default
	case c.IsRGB():
		r, g, b := c.RGB()
		return RGB(uint8(r), uint8(g), uint8(b))
	case c >= tcell.ColorValid && c < tcell.ColorValid+256:
		return Palette(uint8(c - tcell.ColorValid))
	}
	return Default
}

// TcellStyle converts the attribute into a tcell.Style for terminal
// renderers built on tcell.
func (a Attr) TcellStyle() tcell.Style {
	fg, bg, s := Decode(a)
	return tcell.StyleDefault.
		Foreground(TcellColor(fg)).
		Background(TcellColor(bg)).
		Bold(s&Bold != 0).
		Italic(s&Italics != 0).
		Underline(s&Underline != 0).
		Blink(s&Blink != 0)
}

// FromTcellStyle converts a tcell.Style back into an attribute. A palette
// colour paired with an RGB colour is widened to RGB.
func FromTcellStyle(st tcell.Style) Attr {
	fg, bg, tattr := st.Decompose()
	f, b := FromTcell(fg), FromTcell(bg)

	var s Style
	if tattr&tcell.AttrBold != 0 {
		s |= Bold
	}
	if tattr&tcell.AttrItalic != 0 {
		s |= Italics
	}
	if tattr&tcell.AttrUnderline != 0 {
		s |= Underline
	}
	if tattr&tcell.AttrBlink != 0 {
		s |= Blink
	}

	if !Compatible(f, b) {
		f, b = f.To(ModeRGB), b.To(ModeRGB)
	}
	return pack(f, b, s)
}
