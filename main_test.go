package main

import (
	"fmt"
	"strings"
	"testing"

	"textcanvas/canvas"
	"textcanvas/scene"
)

func TestExitCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"validation", fmt.Errorf("render: %w", errValidation), 2},
		{"canvas", fmt.Errorf("op 3: %w", canvas.ErrInvalidSize), 3},
		{"other", fmt.Errorf("no such file"), 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := exitCode(tt.err); got != tt.want {
				t.Errorf("exitCode(%v) = %d, want %d", tt.err, got, tt.want)
			}
		})
	}
}

func TestSizeScene(t *testing.T) {
	sc := &scene.Scene{Width: 10}
	sizeScene(sc, 0, 4)
	if sc.Width != 10 || sc.Height != 4 {
		t.Errorf("size = %dx%d, want 10x4", sc.Width, sc.Height)
	}

	sc = &scene.Scene{Width: 10, Height: 5}
	sizeScene(sc, 20, 0)
	if sc.Width != 20 || sc.Height != 5 {
		t.Errorf("size = %dx%d, want 20x5", sc.Width, sc.Height)
	}
}

func TestRenderScene(t *testing.T) {
	sc, err := scene.Parse([]byte(`
width = 5
height = 3

[[op]]
kind = "box"
w = 5
h = 3
`), "toml")
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	out, err := renderScene(sc, true, false)
	if err != nil {
		t.Fatalf("renderScene() error = %v", err)
	}
	want := "#####\n#   #\n#####"
	if out != want {
		t.Errorf("renderScene() =\n%s\nwant\n%s", out, want)
	}
}

func TestRenderScene_Validation(t *testing.T) {
	// The corner's right arm runs into a glyph with no left arm.
	sc := &scene.Scene{Width: 2, Height: 1, Ops: []scene.Op{{Kind: "text", Text: "┌│"}}}

	out, err := renderScene(sc, true, false)
	if exitCode(err) != 2 {
		t.Fatalf("renderScene() error = %v, want validation failure", err)
	}
	if !strings.Contains(out, "┌") {
		t.Errorf("output %q should still hold the canvas", out)
	}
}
