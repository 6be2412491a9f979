package canvas_test

import (
	"math/rand"
	"testing"

	"textcanvas/canvas"
	"textcanvas/core"
	"textcanvas/validation"
)

// TestWideGlyphInvariants runs random operations and checks after each one
// that no wide glyph has lost a half.
func TestWideGlyphInvariants(t *testing.T) {
	glyphs := []rune{'a', '世', '界', '─', ' ', canvas.TransparentRune}
	rng := rand.New(rand.NewSource(1))

	c, err := canvas.New(9, 4)
	if err != nil {
		t.Fatalf("New error = %v", err)
	}
	sprite, err := canvas.New(4, 2)
	if err != nil {
		t.Fatalf("New error = %v", err)
	}
	sprite.PutString(0, 0, "世b界")
	sprite.PutString(1, 1, "世")

	checker := validation.NewChecker()
	checker.SetLineChecks(false)

	randPoint := func() core.Point {
		w, h := c.Size()
		return core.Point{X: rng.Intn(w+4) - 2, Y: rng.Intn(h+2) - 1}
	}

	ops := []struct {
		name string
		run  func()
	}{
		{"put char", func() {
			p := randPoint()
			c.PutChar(p.X, p.Y, glyphs[rng.Intn(len(glyphs))])
		}},
		{"put string", func() {
			p := randPoint()
			c.PutString(p.X, p.Y, "x世y界")
		}},
		{"blit", func() {
			p := randPoint()
			c.Blit(p.X, p.Y, sprite, nil)
		}},
		{"fill box", func() {
			p := randPoint()
			c.FillBox(p.X, p.Y, rng.Intn(5)-2, rng.Intn(3)-1, '界')
		}},
		{"line", func() {
			c.DrawLine(randPoint(), randPoint(), '世')
		}},
		{"resize", func() {
			c.Resize(rng.Intn(10)+1, rng.Intn(5)+1)
		}},
		{"flip", func() { c.Flip() }},
		{"rotate", func() { c.Rotate180() }},
		{"rotate left", func() { c.RotateLeft() }},
		{"rotate right", func() { c.RotateRight() }},
		{"stretch", func() {
			if rng.Intn(2) == 0 {
				c.StretchLeft()
			} else {
				c.StretchRight()
			}
		}},
		{"frames", func() {
			switch n := c.FrameCount(); {
			case n < 4 && rng.Intn(2) == 0:
				c.CreateFrame(rng.Intn(n + 1))
			case n > 1 && rng.Intn(2) == 0:
				c.FreeFrame(rng.Intn(n))
			default:
				c.SetFrame(rng.Intn(n))
			}
		}},
		{"set boundaries", func() {
			w, h := c.Size()
			c.SetBoundaries(rng.Intn(3)-1, rng.Intn(3)-1, w, h)
		}},
	}

	for i := 0; i < 2000; i++ {
		op := ops[rng.Intn(len(ops))]
		op.run()
		if issues := checker.Check(c); len(issues) > 0 {
			t.Fatalf("step %d (%s): %v\n%s", i, op.name, issues, c.String())
		}
	}
}
