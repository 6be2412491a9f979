package canvas

import (
	"textcanvas/attr"
	"textcanvas/core"
)

// SetCursor moves the drawing cursor. The cursor may sit outside the
// canvas; primitives clip.
func (c *Canvas) SetCursor(x, y int) error {
	if err := c.check("set cursor"); err != nil {
		return err
	}
	c.cursor = core.Point{X: x, Y: y}
	return nil
}

// Cursor returns the drawing cursor. A released canvas reports the
// origin and raises a diagnostic.
func (c *Canvas) Cursor() core.Point {
	if c.check("cursor") != nil {
		return core.Point{}
	}
	return c.cursor
}

// SetAttr sets the attribute used by PutChar, Print and the primitives.
func (c *Canvas) SetAttr(a attr.Attr) error {
	if err := c.check("set attr"); err != nil {
		return err
	}
	c.attr = a
	return nil
}

// Attr returns the current drawing attribute, or DefaultAttr with a
// diagnostic once the canvas is released.
func (c *Canvas) Attr() attr.Attr {
	if c.check("attr") != nil {
		return attr.DefaultAttr
	}
	return c.attr
}

// SetColors replaces the colours of the current attribute, keeping its
// style. It fails with attr.ErrInvalidColorMode for incompatible colours,
// leaving the attribute unchanged.
func (c *Canvas) SetColors(fg, bg attr.Color) error {
	if err := c.check("set colors"); err != nil {
		return err
	}
	a, err := c.attr.WithColors(fg, bg)
	if err != nil {
		return err
	}
	c.attr = a
	return nil
}

// SetColorsAs converts both colours to mode before installing them.
func (c *Canvas) SetColorsAs(fg, bg attr.Color, mode attr.ColorMode) error {
	if err := c.check("set colors"); err != nil {
		return err
	}
	a, err := attr.EncodeAs(fg, bg, c.attr.Style(), mode)
	if err != nil {
		return err
	}
	c.attr = a
	return nil
}

// SetStyle adds style flags to the current attribute.
func (c *Canvas) SetStyle(s attr.Style) error {
	if err := c.check("set style"); err != nil {
		return err
	}
	c.attr = c.attr.WithStyle(s)
	return nil
}

// UnsetStyle removes style flags from the current attribute.
func (c *Canvas) UnsetStyle(s attr.Style) error {
	if err := c.check("unset style"); err != nil {
		return err
	}
	c.attr = c.attr.WithoutStyle(s)
	return nil
}

// ToggleStyle flips style flags on the current attribute.
func (c *Canvas) ToggleStyle(s attr.Style) error {
	if err := c.check("toggle style"); err != nil {
		return err
	}
	c.attr = c.attr.ToggleStyle(s)
	return nil
}

// SetHandle sets the anchor point used when this canvas is the source of
// a Blit: the handle lands on the blit coordinates.
func (c *Canvas) SetHandle(x, y int) error {
	if err := c.check("set handle"); err != nil {
		return err
	}
	c.handle = core.Point{X: x, Y: y}
	return nil
}

// Handle returns the blit anchor.
func (c *Canvas) Handle() core.Point {
	if c.check("handle") != nil {
		return core.Point{}
	}
	return c.handle
}

// SetSink routes this canvas's diagnostics to s instead of the default
// sink. A nil s restores the default.
func (c *Canvas) SetSink(s Sink) error {
	if err := c.check("set sink"); err != nil {
		return err
	}
	c.sink = s
	return nil
}
