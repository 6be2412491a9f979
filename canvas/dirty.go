package canvas

import "textcanvas/core"

// MaxDirtyRects is the length of the dirty list. Once it is full, new
// areas are merged into the first rectangle.
const MaxDirtyRects = 8

type dirtyList struct {
	rects    []core.Rect
	disabled bool
}

func (d *dirtyList) reset() {
	d.rects = d.rects[:0]
}

func (d *dirtyList) add(r core.Rect) {
	if d.disabled || r.Empty() {
		return
	}
	for _, have := range d.rects {
		if have.Intersect(r) == r {
			return
		}
	}
	if len(d.rects) < MaxDirtyRects {
		d.rects = append(d.rects, r)
		return
	}
	d.rects[0] = d.rects[0].Union(r)
}

// clip drops whatever falls outside bounds, for use after a resize.
func (d *dirtyList) clip(bounds core.Rect) {
	kept := d.rects[:0]
	for _, r := range d.rects {
		if r = r.Intersect(bounds); !r.Empty() {
			kept = append(kept, r)
		}
	}
	d.rects = kept
}

func (c *Canvas) markDirty(r core.Rect) {
	c.dirty.add(r.Intersect(c.Bounds()))
}

// DirtyRects returns the areas changed since the last flush.
func (c *Canvas) DirtyRects() ([]core.Rect, error) {
	if err := c.check("dirty rects"); err != nil {
		return nil, err
	}
	out := make([]core.Rect, len(c.dirty.rects))
	copy(out, c.dirty.rects)
	return out, nil
}

// FlushDirty returns the dirty areas and empties the list. Exporters call
// it once per frame.
func (c *Canvas) FlushDirty() ([]core.Rect, error) {
	if err := c.check("flush dirty"); err != nil {
		return nil, err
	}
	out, _ := c.DirtyRects()
	c.dirty.reset()
	return out, nil
}

// ClearDirty empties the dirty list.
func (c *Canvas) ClearDirty() error {
	if err := c.check("clear dirty"); err != nil {
		return err
	}
	c.dirty.reset()
	return nil
}

// AddDirty marks r as changed. It is clipped to the canvas; an empty
// result fails with ErrOutOfBounds.
func (c *Canvas) AddDirty(r core.Rect) error {
	if err := c.check("add dirty"); err != nil {
		return err
	}
	r = r.Intersect(c.Bounds())
	if r.Empty() {
		return ErrOutOfBounds
	}
	c.dirty.add(r)
	return nil
}

// SetDirtyTracking turns change tracking on or off. Turning it off does
// not clear the list.
func (c *Canvas) SetDirtyTracking(on bool) error {
	if err := c.check("dirty tracking"); err != nil {
		return err
	}
	c.dirty.disabled = !on
	return nil
}
