package canvas

import (
	"fmt"
	"strings"

	"github.com/rivo/uniseg"
)

// MeasureText returns the display width of a string in terminal cells.
func MeasureText(text string) int {
	return StringWidth(text)
}

// PutString writes s starting at (x, y) with the current attribute and
// returns the number of columns it spans. Text is split into grapheme
// clusters; each cluster occupies one cell (two for wide glyphs) holding
// its first rune, and zero-width clusters are skipped. Text running off
// either side of the canvas is clipped.
func (c *Canvas) PutString(x, y int, s string) (int, error) {
	if err := c.check("put string"); err != nil {
		return 0, err
	}
	start := x
	g := uniseg.NewGraphemes(s)
	for g.Next() {
		if StringWidth(g.Str()) == 0 {
			continue
		}
		x += c.put("put string", x, y, g.Runes()[0], c.attr)
	}
	return x - start, nil
}

// Printf formats according to format and writes the result at (x, y).
func (c *Canvas) Printf(x, y int, format string, args ...any) (int, error) {
	return c.PutString(x, y, fmt.Sprintf(format, args...))
}

// Print writes s at the cursor and advances it. A newline moves the
// cursor to the first column of the next row.
func (c *Canvas) Print(s string) error {
	if err := c.check("print"); err != nil {
		return err
	}
	g := uniseg.NewGraphemes(s)
	for g.Next() {
		cluster := g.Str()
		switch {
		case cluster == "\n" || cluster == "\r\n":
			c.cursor.X = 0
			c.cursor.Y++
		case StringWidth(cluster) == 0:
		default:
			c.cursor.X += c.put("print", c.cursor.X, c.cursor.Y, g.Runes()[0], c.attr)
		}
	}
	return nil
}

// PutParagraph wraps text to width columns and writes the lines
// downwards from (x, y). It returns the number of lines written.
func (c *Canvas) PutParagraph(x, y, width int, text string, mode WrapMode) (int, error) {
	if err := c.check("put paragraph"); err != nil {
		return 0, err
	}
	lines := WrapTextMode(text, width, mode)
	for i, line := range lines {
		if _, err := c.PutString(x, y+i, line); err != nil {
			return i, err
		}
	}
	return len(lines), nil
}

// WrapMode defines how text wrapping should handle long words.
type WrapMode int

const (
	// WrapModeWord wraps at word boundaries (default).
	WrapModeWord WrapMode = iota
	// WrapModeChar breaks words at character boundaries.
	WrapModeChar
	// WrapModeHyphenate adds hyphens when breaking words.
	WrapModeHyphenate
)

// WrapText wraps text to fit within maxWidth using word boundaries.
func WrapText(text string, maxWidth int) []string {
	return WrapTextMode(text, maxWidth, WrapModeWord)
}

// WrapTextMode wraps text to fit within maxWidth using the specified mode.
// Words are separated by whitespace; a word wider than maxWidth overflows
// in WrapModeWord and is broken up in the other modes.
func WrapTextMode(text string, maxWidth int, mode WrapMode) []string {
	if maxWidth <= 0 {
		return nil
	}

	words := strings.Fields(text)
	if len(words) == 0 {
		return []string{}
	}

	var lines []string
	var line strings.Builder
	lineWidth := 0

	flush := func() {
		if line.Len() > 0 {
			lines = append(lines, line.String())
			line.Reset()
			lineWidth = 0
		}
	}

	for _, word := range words {
		wordWidth := StringWidth(word)

		if lineWidth == 0 || lineWidth+1+wordWidth <= maxWidth {
			if lineWidth > 0 {
				line.WriteByte(' ')
				lineWidth++
			}
			if lineWidth == 0 && wordWidth > maxWidth && mode != WrapModeWord {
				word = breakWord(word, maxWidth, mode, &lines)
				wordWidth = StringWidth(word)
			}
			line.WriteString(word)
			lineWidth += wordWidth
			continue
		}

		flush()
		if wordWidth > maxWidth && mode != WrapModeWord {
			word = breakWord(word, maxWidth, mode, &lines)
			wordWidth = StringWidth(word)
		}
		line.WriteString(word)
		lineWidth = wordWidth
	}

	flush()
	return lines
}

// breakWord appends the full-width pieces of word to lines and returns
// the remainder, which starts the next line.
func breakWord(word string, maxWidth int, mode WrapMode, lines *[]string) string {
	hyphen := ""
	if mode == WrapModeHyphenate && maxWidth > 1 {
		hyphen = "-"
	}

	for StringWidth(word) > maxWidth {
		cut := findCutPoint(word, maxWidth-len(hyphen))
		piece := word[:cut] + hyphen
		if cut == 0 {
			// Not even one cluster fits; emit it anyway.
			cut = firstCluster(word)
			piece = word[:cut]
		}
		*lines = append(*lines, piece)
		word = word[cut:]
	}
	return word
}

// findCutPoint returns the byte offset of the longest prefix of s, cut
// on a grapheme boundary, that fits within maxWidth.
func findCutPoint(s string, maxWidth int) int {
	if maxWidth <= 0 {
		return 0
	}

	width := 0
	offset := 0
	g := uniseg.NewGraphemes(s)
	for g.Next() {
		w := StringWidth(g.Str())
		if width+w > maxWidth {
			return offset
		}
		width += w
		_, offset = g.Positions()
	}
	return len(s)
}

func firstCluster(s string) int {
	cluster, _, _, _ := uniseg.FirstGraphemeClusterInString(s, -1)
	return len(cluster)
}

// TruncateToWidth cuts s to at most maxWidth cells without splitting a
// grapheme cluster.
func TruncateToWidth(s string, maxWidth int) string {
	return s[:findCutPoint(s, maxWidth)]
}

// FitText truncates text to fit within maxWidth, adding ellipsis if needed.
func FitText(text string, maxWidth int, ellipsis string) string {
	textWidth := StringWidth(text)
	if textWidth <= maxWidth {
		return text
	}

	ellipsisWidth := StringWidth(ellipsis)
	if maxWidth <= ellipsisWidth {
		return TruncateToWidth(text, maxWidth)
	}

	targetWidth := maxWidth - ellipsisWidth
	truncated := TruncateToWidth(text, targetWidth)
	return truncated + ellipsis
}
