// Package markdown renders scene blocks embedded in markdown documents.
//
// A scene block is a fenced code block whose info string is "textcanvas"
// (format detected), "textcanvas-toml" or "textcanvas-json". Rendering
// places the picture in a "textcanvas-output" block right after it,
// replacing the previous output if there is one.
package markdown

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"

	"textcanvas/scene"
)

const (
	sceneLang  = "textcanvas"
	outputLang = "textcanvas-output"
)

// Block is a fenced code block found in markdown.
type Block struct {
	Lang        string // info string after the fence
	Content     string // lines between the fences, indentation removed
	StartLine   int    // line of the opening fence (0-based)
	EndLine     int    // line of the closing fence
	Indent      string // indentation before the fence
	ContentHash string // SHA256 of Content, used to detect concurrent edits
}

// Format returns the scene format named by the block, or "" to detect it.
func (b Block) Format() string {
	_, format, _ := strings.Cut(b.Lang, "-")
	return format
}

// IsScene reports whether the block holds a scene.
func (b Block) IsScene() bool {
	switch strings.ToLower(b.Lang) {
	case sceneLang, sceneLang + "-toml", sceneLang + "-json":
		return true
	}
	return false
}

// Scanner finds fenced blocks in markdown content.
type Scanner struct {
	content string
	lines   []string
}

// NewScanner creates a new markdown scanner.
func NewScanner(content string) *Scanner {
	return &Scanner{
		content: content,
		lines:   strings.Split(content, "\n"),
	}
}

// UpdateContent updates the scanner's internal content after a successful replacement.
func (s *Scanner) UpdateContent(newContent string) {
	s.content = newContent
	s.lines = strings.Split(newContent, "\n")
}

// FindBlocks finds all fenced blocks with a scene or output info string.
func (s *Scanner) FindBlocks() []Block {
	var blocks []Block
	var current *Block

	for i, line := range s.lines {
		trimmed := strings.TrimLeft(line, " \t")

		if current == nil {
			if !strings.HasPrefix(trimmed, "```") {
				continue
			}
			lang := strings.TrimSpace(strings.TrimPrefix(trimmed, "```"))
			b := Block{Lang: lang, StartLine: i, Indent: line[:len(line)-len(trimmed)]}
			if b.IsScene() || strings.EqualFold(lang, outputLang) {
				current = &b
			}
			continue
		}

		if strings.HasPrefix(trimmed, "```") {
			current.EndLine = i
			hash := sha256.Sum256([]byte(current.Content))
			current.ContentHash = hex.EncodeToString(hash[:])
			blocks = append(blocks, *current)
			current = nil
			continue
		}

		if i > current.StartLine+1 {
			current.Content += "\n"
		}
		current.Content += strings.TrimPrefix(line, current.Indent)
	}

	return blocks
}

// FindSceneBlocks returns the scene blocks only.
func (s *Scanner) FindSceneBlocks() []Block {
	var scenes []Block
	for _, b := range s.FindBlocks() {
		if b.IsScene() {
			scenes = append(scenes, b)
		}
	}
	return scenes
}

// ValidateBlockUnchanged checks if a block's content matches its original hash.
func (s *Scanner) ValidateBlockUnchanged(block Block) error {
	if block.StartLine < 0 || block.EndLine >= len(s.lines) || block.StartLine >= block.EndLine {
		return fmt.Errorf("invalid block boundaries")
	}

	var current strings.Builder
	for i := block.StartLine + 1; i < block.EndLine; i++ {
		if i > block.StartLine+1 {
			current.WriteString("\n")
		}
		current.WriteString(strings.TrimPrefix(s.lines[i], block.Indent))
	}

	hash := sha256.Sum256([]byte(current.String()))
	if hex.EncodeToString(hash[:]) != block.ContentHash {
		return fmt.Errorf("block content has been modified externally (hash mismatch)")
	}
	return nil
}

// ReplaceBlock replaces a block's content, keeping its fences.
// Returns the new markdown content and an error if validation fails.
func (s *Scanner) ReplaceBlock(block Block, newContent string) (string, error) {
	if err := s.ValidateBlockUnchanged(block); err != nil {
		return "", err
	}

	trimmedStart := strings.TrimLeft(s.lines[block.StartLine], " \t")
	if !strings.HasPrefix(trimmedStart, "```"+block.Lang) {
		return "", fmt.Errorf("block start marker has changed at line %d: expected '```%s', found '%s'",
			block.StartLine+1, block.Lang, trimmedStart)
	}
	trimmedEnd := strings.TrimLeft(s.lines[block.EndLine], " \t")
	if !strings.HasPrefix(trimmedEnd, "```") {
		return "", fmt.Errorf("block end marker has changed at line %d: expected '```', found '%s'",
			block.EndLine+1, trimmedEnd)
	}

	out := make([]string, 0, len(s.lines))
	out = append(out, s.lines[:block.StartLine+1]...)
	out = append(out, indentLines(newContent, block.Indent)...)
	out = append(out, s.lines[block.EndLine:]...)
	return strings.Join(out, "\n"), nil
}

// InsertBlock adds a new fenced block after line, returning the new content.
func (s *Scanner) InsertBlock(after int, lang, indent, content string) string {
	block := []string{indent + "```" + lang}
	block = append(block, indentLines(content, indent)...)
	block = append(block, indent+"```")

	out := make([]string, 0, len(s.lines)+len(block))
	out = append(out, s.lines[:after+1]...)
	out = append(out, block...)
	out = append(out, s.lines[after+1:]...)
	return strings.Join(out, "\n")
}

// GetContent returns the current markdown content.
func (s *Scanner) GetContent() string {
	return s.content
}

// outputAfter returns the output block that directly follows scene,
// allowing blank lines in between.
func (s *Scanner) outputAfter(scene Block, blocks []Block) (Block, bool) {
	for _, b := range blocks {
		if b.StartLine <= scene.EndLine || !strings.EqualFold(b.Lang, outputLang) {
			continue
		}
		for i := scene.EndLine + 1; i < b.StartLine; i++ {
			if strings.TrimSpace(s.lines[i]) != "" {
				return Block{}, false
			}
		}
		return b, true
	}
	return Block{}, false
}

// RenderScenes renders every scene block in content and returns the
// updated document. Blocks are processed from the end so earlier line
// numbers stay valid.
func RenderScenes(content string) (string, error) {
	s := NewScanner(content)
	blocks := s.FindBlocks()

	for i := len(blocks) - 1; i >= 0; i-- {
		b := blocks[i]
		if !b.IsScene() {
			continue
		}

		picture, err := renderBlock(b)
		if err != nil {
			return "", fmt.Errorf("scene block at line %d: %w", b.StartLine+1, err)
		}

		if out, ok := s.outputAfter(b, blocks); ok {
			updated, err := s.ReplaceBlock(out, picture)
			if err != nil {
				return "", err
			}
			s.UpdateContent(updated)
			continue
		}
		s.UpdateContent(s.InsertBlock(b.EndLine, outputLang, b.Indent, picture))
	}

	return s.GetContent(), nil
}

func renderBlock(b Block) (string, error) {
	sc, err := scene.Parse([]byte(b.Content), b.Format())
	if err != nil {
		return "", err
	}
	c, err := sc.Render()
	if err != nil {
		return "", err
	}
	defer c.Release()
	return trimRight(c.String()), nil
}

// trimRight drops trailing blanks from every line.
func trimRight(s string) string {
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " ")
	}
	return strings.Join(lines, "\n")
}

func indentLines(content, indent string) []string {
	lines := strings.Split(content, "\n")
	for i, line := range lines {
		lines[i] = indent + line
	}
	return lines
}

// FormatBlockInfo returns a human-readable description of a block.
func FormatBlockInfo(block Block, index int) string {
	preview := ""
	for _, line := range strings.Split(strings.TrimSpace(block.Content), "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed != "" && !strings.HasPrefix(trimmed, "#") {
			preview = trimmed
			if len(preview) > 50 {
				preview = preview[:47] + "..."
			}
			break
		}
	}

	return fmt.Sprintf("%d. %s (line %d): %s", index+1, block.Lang, block.StartLine+1, preview)
}
