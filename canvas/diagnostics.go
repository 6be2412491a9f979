package canvas

import (
	"fmt"
	"log"
	"sync/atomic"
)

// Kind classifies a diagnostic.
type Kind int

const (
	// KindWideAtEdge: a double-width glyph was written to the last column
	// and dropped.
	KindWideAtEdge Kind = iota
	// KindMarkerWrite: the continuation marker was passed as a glyph.
	KindMarkerWrite
	// KindReleased: an operation was attempted on a released canvas.
	KindReleased
	// KindSplitGlyph: a wide glyph was cut in half and its remaining
	// half blanked.
	KindSplitGlyph
)

func (k Kind) String() string {
	switch k {
	case KindWideAtEdge:
		return "wide-at-edge"
	case KindMarkerWrite:
		return "marker-write"
	case KindReleased:
		return "released"
	case KindSplitGlyph:
		return "split-glyph"
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// Diagnostic describes a recoverable invariant violation. The canvas never
// prints anything itself; diagnostics go to the registered Sink.
type Diagnostic struct {
	Kind    Kind
	Op      string
	X, Y    int
	Message string
}

func (d Diagnostic) String() string {
	return fmt.Sprintf("%s: %s at (%d,%d): %s", d.Op, d.Kind, d.X, d.Y, d.Message)
}

// Sink receives diagnostics. It is called synchronously from the
// operation that raised the diagnostic.
type Sink func(Diagnostic)

var defaultSink atomic.Pointer[Sink]

// SetDefaultSink installs the sink used by canvases that have none of
// their own. Passing nil discards diagnostics, which is the initial state.
func SetDefaultSink(s Sink) {
	if s == nil {
		defaultSink.Store(nil)
		return
	}
	defaultSink.Store(&s)
}

// LogSink returns a sink writing one line per diagnostic to l.
func LogSink(l *log.Logger) Sink {
	return func(d Diagnostic) {
		l.Printf("canvas: %s", d)
	}
}

func (c *Canvas) diag(kind Kind, op string, x, y int, format string, args ...any) {
	sink := c.sink
	if sink == nil {
		if p := defaultSink.Load(); p != nil {
			sink = *p
		}
	}
	if sink == nil {
		return
	}
	sink(Diagnostic{Kind: kind, Op: op, X: x, Y: y, Message: fmt.Sprintf(format, args...)})
}
