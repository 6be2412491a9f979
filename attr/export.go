package attr

// ansiIndex maps a colour to its nearest ANSI index. Default and Transparent
// map to fallback, as does anything malformed.
func ansiIndex(c Color, fallback uint8) uint8 {
	if !c.Valid() || c.IsSpecial() {
		return fallback
	}
	if c.Mode() == ModeANSI {
		return c.Index()
	}
	return c.To(ModeANSI).Index()
}

// ANSIForeground returns the nearest ANSI foreground index, LightGray for
// Default and Transparent.
func ANSIForeground(a Attr) uint8 {
	return ansiIndex(a.Foreground(), LightGray.Index())
}

// ANSIBackground returns the nearest ANSI background index, Black for
// Default and Transparent.
func ANSIBackground(a Attr) uint8 {
	return ansiIndex(a.Background(), Black.Index())
}

// ToANSI returns the DOS-style colour byte: background in the high nibble,
// foreground in the low nibble. It never fails.
func ToANSI(a Attr) byte {
	return ANSIForeground(a) | ANSIBackground(a)<<4
}

func rgb12(v uint32) uint16 {
	r := uint16(v>>16&0xFF) >> 4
	g := uint16(v>>8&0xFF) >> 4
	b := uint16(v&0xFF) >> 4
	return r<<8 | g<<4 | b
}

// ToRGB12 returns the foreground and background as 12-bit 0xRGB values.
// Each 8-bit channel is truncated to its top 4 bits, without rounding.
func ToRGB12(a Attr) (fg, bg uint16) {
	return rgb12(a.Foreground().resolve(roleForeground)),
		rgb12(a.Background().resolve(roleBackground))
}

// RGB24Foreground returns the displayed foreground as 0xRRGGBB.
func RGB24Foreground(a Attr) uint32 {
	return a.Foreground().resolve(roleForeground)
}

// RGB24Background returns the displayed background as 0xRRGGBB.
func RGB24Background(a Attr) uint32 {
	return a.Background().resolve(roleBackground)
}

func argb(c Color, r role) (alpha, red, green, blue byte) {
	v := c.resolve(r)
	alpha = 0xFF
	if c.Mode() == ModeTransparent {
		alpha = 0x00
	}
	return alpha, byte(v >> 16), byte(v >> 8), byte(v)
}

// ToARGB64 returns the attribute colours as
// [fgA, fgR, fgG, fgB, bgA, bgR, bgG, bgB] with full 8-bit channels.
// Alpha is 0xFF for every mode except Transparent, which gets 0x00.
func ToARGB64(a Attr) [8]byte {
	var out [8]byte
	out[0], out[1], out[2], out[3] = argb(a.Foreground(), roleForeground)
	out[4], out[5], out[6], out[7] = argb(a.Background(), roleBackground)
	return out
}
