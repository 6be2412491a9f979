package attr

import "testing"

func TestColorTo(t *testing.T) {
	tests := []struct {
		name string
		in   Color
		mode ColorMode
		want Color
	}{
		{"ANSI to palette", Blue, ModePalette, Palette(4)},
		{"Palette to ANSI", Palette(6), ModeANSI, Cyan},
		{"Palette yellow to ANSI", Palette(3), ModeANSI, Brown},
		{"ANSI to RGB", Brown, ModeRGB, Hex(0xAA5500)},
		{"Exact RGB to ANSI", Hex(0x55FFFF), ModeANSI, LightCyan},
		{"RGB to palette cube", Hex(0xFF0000), ModePalette, Palette(196)},
		{"RGB to palette grey", Hex(0x808080), ModePalette, Palette(244)},
		{"RGB black to palette", Hex(0x000000), ModePalette, Palette(16)},
		{"Default untouched", Default, ModeRGB, Default},
		{"Transparent untouched", Transparent, ModeANSI, Transparent},
		{"Same mode", Palette(100), ModePalette, Palette(100)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.in.To(tt.mode); got != tt.want {
				t.Errorf("%v.To(%v) = %v, want %v", tt.in, tt.mode, got, tt.want)
			}
		})
	}
}

// Every ANSI table entry must map back onto itself.
func TestNearestANSIExact(t *testing.T) {
	for i, v := range ansiTable {
		if got := nearestANSI(v); int(got) != i {
			t.Errorf("nearestANSI(%06x) = %d, want %d", v, got, i)
		}
	}
}

func TestDOSOrderInvolution(t *testing.T) {
	for i := range dosToSGR {
		if back := dosToSGR[dosToSGR[i]]; int(back) != i {
			t.Errorf("dosToSGR is not its own inverse at %d", i)
		}
	}
}

func TestPaletteLowEntriesMatchANSI(t *testing.T) {
	for i := uint8(0); i < 16; i++ {
		p := Palette(i).To(ModeRGB)
		a := Palette(i).To(ModeANSI).To(ModeRGB)
		if p != a {
			t.Errorf("palette %d resolves to %v but its ANSI form to %v", i, p, a)
		}
	}
}
