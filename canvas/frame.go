package canvas

import (
	"fmt"
	"slices"

	"textcanvas/attr"
	"textcanvas/core"
)

// frame is the stored state of one frame. The current frame is kept in
// the Canvas fields and only written back by saveFrame.
type frame struct {
	name          string
	width, height int
	cells         []Cell
	attr          attr.Attr
	cursor        core.Point
	handle        core.Point
}

func (c *Canvas) saveFrame() {
	f := &c.frames[c.frame]
	f.width, f.height, f.cells = c.width, c.height, c.cells
	f.attr, f.cursor, f.handle = c.attr, c.cursor, c.handle
}

func (c *Canvas) loadFrame() {
	f := &c.frames[c.frame]
	c.width, c.height, c.cells = f.width, f.height, f.cells
	c.attr, c.cursor, c.handle = f.attr, f.cursor, f.handle
}

func (c *Canvas) nextFrameName() string {
	name := fmt.Sprintf("frame#%08x", c.frameSeq)
	c.frameSeq++
	return name
}

// eachFrame runs fn with every frame loaded in turn, then reselects the
// current one.
func (c *Canvas) eachFrame(fn func() error) error {
	c.saveFrame()
	current := c.frame
	defer func() {
		c.frame = current
		c.loadFrame()
	}()
	for i := range c.frames {
		c.frame = i
		c.loadFrame()
		err := fn()
		c.saveFrame()
		if err != nil {
			return err
		}
	}
	return nil
}

// FrameCount returns the number of frames. A released canvas has none.
func (c *Canvas) FrameCount() int {
	return len(c.frames)
}

// Frame returns the index of the current frame.
func (c *Canvas) Frame() int {
	return c.frame
}

// SetFrame makes frame id current and marks the whole canvas dirty.
func (c *Canvas) SetFrame(id int) error {
	if err := c.check("set frame"); err != nil {
		return err
	}
	if id < 0 || id >= len(c.frames) {
		return fmt.Errorf("frame %d of %d: %w", id, len(c.frames), ErrOutOfBounds)
	}
	if id == c.frame {
		return nil
	}
	c.saveFrame()
	c.frame = id
	c.loadFrame()
	c.markDirty(c.Bounds())
	return nil
}

// FrameName returns the name of the current frame.
func (c *Canvas) FrameName() string {
	if c.check("frame name") != nil {
		return ""
	}
	return c.frames[c.frame].name
}

// SetFrameName renames the current frame.
func (c *Canvas) SetFrameName(name string) error {
	if err := c.check("set frame name"); err != nil {
		return err
	}
	c.frames[c.frame].name = name
	return nil
}

// CreateFrame inserts a copy of the current frame at index id, clamped to
// [0, FrameCount()]. The current frame stays selected.
func (c *Canvas) CreateFrame(id int) error {
	if err := c.check("create frame"); err != nil {
		return err
	}
	id = max(0, min(id, len(c.frames)))

	c.saveFrame()
	f := c.frames[c.frame]
	f.cells = slices.Clone(c.cells)
	f.name = c.nextFrameName()

	c.frames = slices.Insert(c.frames, id, f)
	if c.frame >= id {
		c.frame++
	}
	return nil
}

// FreeFrame removes frame id. The last remaining frame cannot be freed.
// Freeing the current frame selects frame 0.
func (c *Canvas) FreeFrame(id int) error {
	if err := c.check("free frame"); err != nil {
		return err
	}
	if id < 0 || id >= len(c.frames) {
		return fmt.Errorf("frame %d of %d: %w", id, len(c.frames), ErrOutOfBounds)
	}
	if len(c.frames) == 1 {
		return fmt.Errorf("cannot free the only frame: %w", ErrOutOfBounds)
	}

	c.saveFrame()
	c.frames = slices.Delete(c.frames, id, id+1)
	switch {
	case c.frame > id:
		c.frame--
	case c.frame == id:
		c.frame = 0
		c.loadFrame()
		c.markDirty(c.Bounds())
	}
	return nil
}
