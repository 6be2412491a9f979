package scene

import (
	"errors"
	"fmt"
	"strings"

	"github.com/rivo/uniseg"

	"textcanvas/attr"
	"textcanvas/canvas"
	"textcanvas/core"
)

// DefaultGlyph is drawn by ops that take a glyph when none is given.
const DefaultGlyph = '#'

var (
	// ErrUnknownOp is returned for an op kind that does not exist.
	ErrUnknownOp = errors.New("unknown op")
	// ErrUnknownSprite is returned when a blit names a missing sprite.
	ErrUnknownSprite = errors.New("unknown sprite")
	// ErrBadOp is returned when an op is missing required fields.
	ErrBadOp = errors.New("malformed op")
)

// OpError reports which op of a scene failed.
type OpError struct {
	Index int
	Kind  string
	Err   error
}

func (e *OpError) Error() string {
	return fmt.Sprintf("op %d (%s): %v", e.Index, e.Kind, e.Err)
}

func (e *OpError) Unwrap() error {
	return e.Err
}

// pointCounts lists the ops that take Points and how many they need.
var pointCounts = map[string]int{
	"line":          2,
	"thin-line":     2,
	"polyline":      2,
	"thin-polyline": 2,
	"triangle":      3,
	"thin-triangle": 3,
	"fill-triangle": 3,
}

var boxStyles = map[string]canvas.BoxStyle{
	"":        canvas.DefaultBoxStyle,
	"rounded": canvas.DefaultBoxStyle,
	"simple":  canvas.SimpleBoxStyle,
	"ascii":   canvas.SimpleBoxStyle,
	"double":  canvas.DoubleBoxStyle,
	"thin":    canvas.ThinBoxStyle,
	"cp437":   canvas.CP437BoxStyle,
}

var wrapModes = map[string]canvas.WrapMode{
	"":          canvas.WrapModeWord,
	"word":      canvas.WrapModeWord,
	"char":      canvas.WrapModeChar,
	"hyphenate": canvas.WrapModeHyphenate,
}

// Validate checks the parts of a scene that can be checked without
// drawing it: sizes, op kinds, point counts and sprite references.
func (s *Scene) Validate() error {
	if s.Width < 0 || s.Height < 0 {
		return fmt.Errorf("scene size %dx%d: %w", s.Width, s.Height, canvas.ErrInvalidSize)
	}

	sprites := make(map[string]bool, len(s.Sprites))
	for i, sp := range s.Sprites {
		if sp.Name == "" {
			return fmt.Errorf("sprite %d has no name", i)
		}
		if sprites[sp.Name] {
			return fmt.Errorf("sprite %q defined twice", sp.Name)
		}
		sprites[sp.Name] = true
	}

	for i, op := range s.Ops {
		if err := op.validate(sprites); err != nil {
			return &OpError{Index: i, Kind: op.Kind, Err: err}
		}
	}
	return nil
}

func (op *Op) validate(sprites map[string]bool) error {
	kind := strings.ToLower(op.Kind)
	if _, ok := applyFuncs[kind]; !ok {
		return ErrUnknownOp
	}
	if n, ok := pointCounts[kind]; ok && len(op.Points) < n {
		return fmt.Errorf("%w: need %d points, have %d", ErrBadOp, n, len(op.Points))
	}
	if _, ok := boxStyles[strings.ToLower(op.Box)]; !ok {
		return fmt.Errorf("%w: unknown box style %q", ErrBadOp, op.Box)
	}
	if _, ok := wrapModes[strings.ToLower(op.Wrap)]; !ok {
		return fmt.Errorf("%w: unknown wrap mode %q", ErrBadOp, op.Wrap)
	}
	if kind == "blit" && !sprites[op.Sprite] {
		return fmt.Errorf("%w: %q", ErrUnknownSprite, op.Sprite)
	}
	return nil
}

// Render creates a canvas of the scene size and draws the scene on it.
func (s *Scene) Render() (*canvas.Canvas, error) {
	c, err := canvas.New(s.Width, s.Height)
	if err != nil {
		return nil, err
	}
	if err := s.Apply(c); err != nil {
		c.Release()
		return nil, err
	}
	return c, nil
}

// Apply replays the scene onto c. The scene colours are installed and
// the canvas cleared first. Drawing stops at the first failing op.
func (s *Scene) Apply(c *canvas.Canvas) error {
	if err := s.Validate(); err != nil {
		return err
	}
	if err := setAttr(c, s.Fg, s.Bg, s.Style); err != nil {
		return fmt.Errorf("scene colors: %w", err)
	}
	if err := c.Clear(); err != nil {
		return err
	}

	sprites := make(map[string]*sprite, len(s.Sprites))
	for _, sp := range s.Sprites {
		built, err := sp.build()
		if err != nil {
			return fmt.Errorf("sprite %q: %w", sp.Name, err)
		}
		defer built.release()
		sprites[sp.Name] = built
	}

	r := &runner{c: c, sprites: sprites}
	for i := range s.Ops {
		op := &s.Ops[i]
		if err := r.apply(op); err != nil {
			return &OpError{Index: i, Kind: op.Kind, Err: err}
		}
	}
	return nil
}

// setAttr installs colours and style on c. Empty names keep the current
// value. Colours from different families are converted to truecolor.
func setAttr(c *canvas.Canvas, fgName, bgName, styleName string) error {
	if fgName != "" || bgName != "" {
		fg, bg := c.Attr().Foreground(), c.Attr().Background()
		var err error
		if fgName != "" {
			if fg, err = attr.ParseColor(fgName); err != nil {
				return err
			}
		}
		if bgName != "" {
			if bg, err = attr.ParseColor(bgName); err != nil {
				return err
			}
		}
		if !attr.Compatible(fg, bg) {
			err = c.SetColorsAs(fg, bg, attr.ModeRGB)
		} else {
			err = c.SetColors(fg, bg)
		}
		if err != nil {
			return err
		}
	}

	if styleName != "" {
		style, err := attr.ParseStyle(styleName)
		if err != nil {
			return err
		}
		return c.SetAttr(c.Attr().ReplaceStyle(style))
	}
	return nil
}

// glyph returns the first rune of the first grapheme of s.
func glyph(s string) rune {
	if s == "" {
		return DefaultGlyph
	}
	cluster, _, _, _ := uniseg.FirstGraphemeClusterInString(s, -1)
	return []rune(cluster)[0]
}

func points(ps [][2]int) []core.Point {
	out := make([]core.Point, len(ps))
	for i, p := range ps {
		out[i] = core.Point{X: p[0], Y: p[1]}
	}
	return out
}

type runner struct {
	c       *canvas.Canvas
	sprites map[string]*sprite
}

type applyFunc func(r *runner, op *Op) error

var applyFuncs = map[string]applyFunc{
	"clear":  func(r *runner, _ *Op) error { return r.c.Clear() },
	"invert": func(r *runner, _ *Op) error { return r.c.Invert() },
	"flip":   func(r *runner, _ *Op) error { return r.c.Flip() },
	"flop":   func(r *runner, _ *Op) error { return r.c.Flop() },
	"rotate": func(r *runner, _ *Op) error { return r.c.Rotate180() },

	"rotate-left":   func(r *runner, _ *Op) error { return r.c.RotateLeft() },
	"rotate-right":  func(r *runner, _ *Op) error { return r.c.RotateRight() },
	"stretch-left":  func(r *runner, _ *Op) error { return r.c.StretchLeft() },
	"stretch-right": func(r *runner, _ *Op) error { return r.c.StretchRight() },
	"fill":          func(r *runner, op *Op) error { return r.c.Fill(glyph(op.Glyph)) },

	"line": func(r *runner, op *Op) error {
		p := points(op.Points)
		return r.c.DrawLine(p[0], p[1], glyph(op.Glyph))
	},
	"thin-line": func(r *runner, op *Op) error {
		p := points(op.Points)
		return r.c.DrawThinLine(p[0], p[1])
	},
	"polyline": func(r *runner, op *Op) error {
		return r.c.DrawPolyline(points(op.Points), glyph(op.Glyph))
	},
	"thin-polyline": func(r *runner, op *Op) error {
		return r.c.DrawThinPolyline(points(op.Points))
	},
	"cursor": func(r *runner, op *Op) error { return r.c.SetCursor(op.X, op.Y) },
	"line-to": func(r *runner, op *Op) error {
		return r.c.LineTo(op.X, op.Y, glyph(op.Glyph))
	},

	"box": func(r *runner, op *Op) error {
		return r.c.DrawBox(op.X, op.Y, op.W, op.H, glyph(op.Glyph))
	},
	"thin-box": func(r *runner, op *Op) error {
		return r.c.DrawThinBox(op.X, op.Y, op.W, op.H)
	},
	"cp437-box": func(r *runner, op *Op) error {
		return r.c.DrawCP437Box(op.X, op.Y, op.W, op.H)
	},
	"styled-box": func(r *runner, op *Op) error {
		style := boxStyles[strings.ToLower(op.Box)]
		style.Join = op.Join
		return r.c.DrawStyledBox(op.X, op.Y, op.W, op.H, style)
	},
	"fill-box": func(r *runner, op *Op) error {
		return r.c.FillBox(op.X, op.Y, op.W, op.H, glyph(op.Glyph))
	},

	"triangle": func(r *runner, op *Op) error {
		p := points(op.Points)
		return r.c.DrawTriangle(p[0], p[1], p[2], glyph(op.Glyph))
	},
	"thin-triangle": func(r *runner, op *Op) error {
		p := points(op.Points)
		return r.c.DrawThinTriangle(p[0], p[1], p[2])
	},
	"fill-triangle": func(r *runner, op *Op) error {
		p := points(op.Points)
		return r.c.FillTriangle(p[0], p[1], p[2], glyph(op.Glyph))
	},

	"circle": func(r *runner, op *Op) error {
		return r.c.DrawCircle(core.Point{X: op.X, Y: op.Y}, op.Radius, glyph(op.Glyph))
	},
	"ellipse": func(r *runner, op *Op) error {
		return r.c.DrawEllipse(core.Point{X: op.X, Y: op.Y}, op.A, op.B, glyph(op.Glyph))
	},
	"thin-ellipse": func(r *runner, op *Op) error {
		return r.c.DrawThinEllipse(core.Point{X: op.X, Y: op.Y}, op.A, op.B)
	},
	"fill-ellipse": func(r *runner, op *Op) error {
		return r.c.FillEllipse(core.Point{X: op.X, Y: op.Y}, op.A, op.B, glyph(op.Glyph))
	},

	"text": func(r *runner, op *Op) error {
		_, err := r.c.PutString(op.X, op.Y, op.Text)
		return err
	},
	"paragraph": func(r *runner, op *Op) error {
		_, err := r.c.PutParagraph(op.X, op.Y, op.W, op.Text, wrapModes[strings.ToLower(op.Wrap)])
		return err
	},
	"print": func(r *runner, op *Op) error { return r.c.Print(op.Text) },

	"blit": func(r *runner, op *Op) error {
		sp := r.sprites[op.Sprite]
		err := r.c.Blit(op.X, op.Y, sp.src, sp.mask)
		if errors.Is(err, canvas.ErrOutOfBounds) {
			// Sprites may be placed off screen.
			return nil
		}
		return err
	},
}

func (r *runner) apply(op *Op) error {
	if err := setAttr(r.c, op.Fg, op.Bg, op.Style); err != nil {
		return err
	}
	return applyFuncs[strings.ToLower(op.Kind)](r, op)
}
