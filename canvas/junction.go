package canvas

// arms is the set of directions a line-drawing glyph reaches out to.
type arms uint8

const (
	armUp arms = 1 << iota
	armDown
	armLeft
	armRight

	armsAll = armUp | armDown | armLeft | armRight
)

// junctionSet is one family of line-drawing glyphs that can be joined.
type junctionSet struct {
	arms   map[rune]arms
	glyphs map[arms]rune
}

func newJunctionSet(glyphs map[arms]rune, extra map[rune]arms) junctionSet {
	s := junctionSet{arms: make(map[rune]arms), glyphs: glyphs}
	for a, r := range glyphs {
		s.arms[r] = a
	}
	for r, a := range extra {
		s.arms[r] = a
	}
	return s
}

var junctionSets = []junctionSet{
	newJunctionSet(map[arms]rune{
		armLeft | armRight:           '─',
		armUp | armDown:              '│',
		armDown | armRight:           '┌',
		armDown | armLeft:            '┐',
		armUp | armRight:             '└',
		armUp | armLeft:              '┘',
		armUp | armDown | armRight:   '├',
		armUp | armDown | armLeft:    '┤',
		armDown | armLeft | armRight: '┬',
		armUp | armLeft | armRight:   '┴',
		armsAll:                      '┼',
		armRight:                     '╶',
		armLeft:                      '╴',
		armUp:                        '╵',
		armDown:                      '╷',
	}, map[rune]arms{
		'╭': armDown | armRight,
		'╮': armDown | armLeft,
		'╰': armUp | armRight,
		'╯': armUp | armLeft,
	}),
	newJunctionSet(map[arms]rune{
		armLeft | armRight:           '═',
		armUp | armDown:              '║',
		armDown | armRight:           '╔',
		armDown | armLeft:            '╗',
		armUp | armRight:             '╚',
		armUp | armLeft:              '╝',
		armUp | armDown | armRight:   '╠',
		armUp | armDown | armLeft:    '╣',
		armDown | armLeft | armRight: '╦',
		armUp | armLeft | armRight:   '╩',
		armsAll:                      '╬',
	}, nil),
	newJunctionSet(map[arms]rune{
		armLeft | armRight: '-',
		armUp | armDown:    '|',
		armsAll:            '+',
	}, nil),
}

// joinGlyph merges a line-drawing glyph into the one already on the
// canvas, so that crossing lines become junctions. Glyphs from different
// families, or that are not line glyphs at all, are not merged: the new
// glyph wins.
func joinGlyph(existing, next rune) rune {
	if existing == next {
		return next
	}
	for _, set := range junctionSets {
		a, ok := set.arms[existing]
		if !ok {
			continue
		}
		b, ok := set.arms[next]
		if !ok {
			return next
		}
		merged := a | b
		switch merged {
		case b:
			return next
		case a:
			return existing
		}
		if r, ok := set.glyphs[merged]; ok {
			return r
		}
		// Families without every combination fall back to the full cross.
		return set.glyphs[armsAll]
	}
	return next
}

// LineArms reports the directions a line-drawing glyph reaches out to.
// ok is false when r is not a line-drawing glyph.
func LineArms(r rune) (up, down, left, right, ok bool) {
	for _, set := range junctionSets {
		if a, found := set.arms[r]; found {
			return a&armUp != 0, a&armDown != 0, a&armLeft != 0, a&armRight != 0, true
		}
	}
	return false, false, false, false, false
}
