package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"golang.org/x/term"

	"textcanvas/canvas"
	"textcanvas/markdown"
	"textcanvas/scene"
	"textcanvas/validation"
)

// Fallback canvas size when neither the scene nor the flags give one and
// stdout is not a terminal.
const (
	defaultWidth  = 80
	defaultHeight = 24
)

func main() {
	var (
		width        = flag.Int("width", 0, "Canvas width (default: scene width, then terminal width)")
		height       = flag.Int("height", 0, "Canvas height (default: scene height, then terminal height)")
		format       = flag.String("format", "", "Scene format: toml or json (auto-detect if not specified)")
		demo         = flag.Bool("demo", false, "Render the built-in demo scene")
		markdownMode = flag.Bool("markdown", false, "Render scene blocks within a markdown file")
		outputFile   = flag.String("o", "", "Output file (default: stdout)")
		validate     = flag.Bool("validate", false, "Check the rendered canvas for broken lines and wide glyphs")
		debug        = flag.Bool("debug", false, "Log canvas diagnostics and dirty areas to stderr")
		version      = flag.Bool("version", false, "Print the library version")
		help         = flag.Bool("help", false, "Show help")
	)

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [options] [scene.toml]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Draws a scene of lines, boxes, shapes and text on a character canvas.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  %s -demo                        # Render the built-in demo\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s scene.toml                   # Render a scene to stdout\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s -format json < scene.json    # Read a scene from stdin\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s -width 40 -height 10 scene.toml\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s -markdown -o README.md README.md  # Refresh pictures in a document\n", os.Args[0])
	}

	flag.Parse()

	if *help {
		flag.Usage()
		os.Exit(0)
	}
	if *version {
		fmt.Println(canvas.Version())
		os.Exit(0)
	}

	if *debug {
		logger := log.New(os.Stderr, "", log.Ltime|log.Lmicroseconds)
		canvas.SetDefaultSink(canvas.LogSink(logger))
	}

	args := flag.Args()
	var filename string
	if len(args) > 0 {
		filename = args[0]
	}

	var output string
	var err error
	switch {
	case *markdownMode:
		if filename == "" {
			fmt.Fprintf(os.Stderr, "Error: -markdown needs a file\n\n")
			flag.Usage()
			os.Exit(1)
		}
		output, err = renderMarkdown(filename)
	default:
		var sc *scene.Scene
		sc, err = loadScene(filename, *format, *demo)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading scene: %v\n", err)
			os.Exit(1)
		}
		sizeScene(sc, *width, *height)
		output, err = renderScene(sc, *validate, *debug)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(exitCode(err))
	}

	if *outputFile != "" {
		if err := os.WriteFile(*outputFile, []byte(output), 0644); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing to file: %v\n", err)
			os.Exit(1)
		}
		fmt.Fprintf(os.Stderr, "Successfully wrote %s\n", *outputFile)
		return
	}
	fmt.Println(output)
}

// loadScene reads the scene named on the command line, stdin when no file
// is given, or the built-in demo.
func loadScene(filename, format string, demo bool) (*scene.Scene, error) {
	switch {
	case demo:
		return scene.Demo(), nil
	case filename == "" && term.IsTerminal(int(os.Stdin.Fd())):
		return nil, fmt.Errorf("no scene given; pass a file, pipe one on stdin or use -demo")
	case filename == "" && format != "":
		data, err := readAll(os.Stdin)
		if err != nil {
			return nil, err
		}
		return scene.Parse(data, format)
	case filename == "":
		return scene.LoadReader(os.Stdin)
	case format != "":
		data, err := os.ReadFile(filename)
		if err != nil {
			return nil, fmt.Errorf("reading scene file %s: %w", filename, err)
		}
		return scene.Parse(data, format)
	}
	return scene.Load(filename)
}

// sizeScene applies the size flags, then falls back to the terminal size.
func sizeScene(sc *scene.Scene, width, height int) {
	if width > 0 {
		sc.Width = width
	}
	if height > 0 {
		sc.Height = height
	}
	if sc.Width > 0 && sc.Height > 0 {
		return
	}

	tw, th := defaultWidth, defaultHeight
	if fd := int(os.Stdout.Fd()); term.IsTerminal(fd) {
		if w, h, err := term.GetSize(fd); err == nil && w > 0 && h > 0 {
			// Leave a line for the shell prompt.
			tw, th = w, h-1
		}
	}
	if sc.Width <= 0 {
		sc.Width = tw
	}
	if sc.Height <= 0 {
		sc.Height = th
	}
}

func renderScene(sc *scene.Scene, validate, debug bool) (string, error) {
	c, err := sc.Render()
	if err != nil {
		return "", err
	}
	defer c.Release()

	if debug {
		rects, err := c.FlushDirty()
		if err != nil {
			return "", fmt.Errorf("flushing dirty rectangles: %w", err)
		}
		for _, r := range rects {
			fmt.Fprintf(os.Stderr, "dirty: %v\n", r)
		}
	}

	if validate {
		issues := validation.NewChecker().Check(c)
		for _, issue := range issues {
			fmt.Fprintf(os.Stderr, "validation: %v\n", issue)
		}
		if len(issues) > 0 {
			return c.String(), errValidation
		}
	}
	return c.String(), nil
}

func renderMarkdown(filename string) (string, error) {
	content, err := os.ReadFile(filename)
	if err != nil {
		return "", fmt.Errorf("reading markdown file: %w", err)
	}

	s := markdown.NewScanner(string(content))
	blocks := s.FindSceneBlocks()
	if len(blocks) == 0 {
		return "", fmt.Errorf("no scene blocks found in %s", filename)
	}
	for i, b := range blocks {
		fmt.Fprintf(os.Stderr, "%s\n", markdown.FormatBlockInfo(b, i))
	}
	return markdown.RenderScenes(string(content))
}
