package scene

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// Format decodes one kind of scene document.
type Format interface {
	// Name is the format name accepted by Parse.
	Name() string

	// Extensions lists file extensions, with the dot, mapped to this format.
	Extensions() []string

	// Detect reports whether data looks like this format.
	Detect(data []byte) bool

	// Decode fills sc from data.
	Decode(data []byte, sc *Scene) error
}

type tomlFormat struct{}

func (tomlFormat) Name() string         { return "toml" }
func (tomlFormat) Extensions() []string { return []string{".toml"} }

// Any document that is not JSON is tried as TOML.
func (tomlFormat) Detect(data []byte) bool { return true }

func (tomlFormat) Decode(data []byte, sc *Scene) error {
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	return dec.Decode(sc)
}

type jsonFormat struct{}

func (jsonFormat) Name() string         { return "json" }
func (jsonFormat) Extensions() []string { return []string{".json"} }

func (jsonFormat) Detect(data []byte) bool {
	data = bytes.TrimSpace(data)
	return len(data) > 0 && data[0] == '{'
}

func (jsonFormat) Decode(data []byte, sc *Scene) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	return dec.Decode(sc)
}

// formats is ordered for detection: the catch-all comes last.
var formats = []Format{jsonFormat{}, tomlFormat{}}

// Formats returns the names of the supported formats.
func Formats() []string {
	names := make([]string, len(formats))
	for i, f := range formats {
		names[i] = f.Name()
	}
	return names
}

func lookupFormat(name string) (Format, error) {
	name = strings.ToLower(name)
	for _, f := range formats {
		if f.Name() == name {
			return f, nil
		}
	}
	return nil, fmt.Errorf("unknown scene format: %s", name)
}

func detectFormat(path string, data []byte) Format {
	ext := strings.ToLower(filepath.Ext(path))
	for _, f := range formats {
		for _, e := range f.Extensions() {
			if e == ext {
				return f
			}
		}
	}
	for _, f := range formats {
		if f.Detect(data) {
			return f
		}
	}
	return formats[len(formats)-1]
}

// Parse decodes a scene in the named format. An empty format is detected
// from the content.
func Parse(data []byte, format string) (*Scene, error) {
	var f Format
	if format == "" {
		f = detectFormat("", data)
	} else {
		var err error
		if f, err = lookupFormat(format); err != nil {
			return nil, err
		}
	}
	return decode(f, "<input>", data)
}

// Load reads and decodes the scene file at path. The format follows the
// file extension, falling back to content detection.
func Load(path string) (*Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading scene file %s: %w", path, err)
	}
	return decode(detectFormat(path, data), path, data)
}

// LoadFS is Load reading from fsys.
func LoadFS(fsys fs.FS, name string) (*Scene, error) {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return nil, fmt.Errorf("reading scene file %s: %w", name, err)
	}
	return decode(detectFormat(name, data), name, data)
}

// LoadReader decodes a scene from r, detecting the format.
func LoadReader(r io.Reader) (*Scene, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading scene: %w", err)
	}
	return decode(detectFormat("", data), "<reader>", data)
}

func decode(f Format, source string, data []byte) (*Scene, error) {
	sc := &Scene{}
	if err := f.Decode(data, sc); err != nil {
		return nil, newParseError(source, err)
	}
	if err := sc.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", source, err)
	}
	return sc, nil
}

// ParseError represents an error while decoding a scene document.
type ParseError struct {
	Path    string
	Line    int
	Column  int
	Message string
	Err     error
}

func newParseError(path string, err error) *ParseError {
	pe := &ParseError{Path: path, Message: err.Error(), Err: err}

	var decErr *toml.DecodeError
	var strictErr *toml.StrictMissingError
	var syntaxErr *json.SyntaxError
	switch {
	case errors.As(err, &decErr):
		pe.Line, pe.Column = decErr.Position()
	case errors.As(err, &strictErr) && len(strictErr.Errors) > 0:
		pe.Line, pe.Column = strictErr.Errors[0].Position()
		pe.Message = "unknown field " + strings.Join(strictErr.Errors[0].Key(), ".")
	case errors.As(err, &syntaxErr):
		pe.Message = fmt.Sprintf("%s (offset %d)", syntaxErr.Error(), syntaxErr.Offset)
	}
	return pe
}

func (e *ParseError) Error() string {
	if e.Line > 0 && e.Column > 0 {
		return fmt.Sprintf("parse error in %s at line %d, column %d: %s", e.Path, e.Line, e.Column, e.Message)
	}
	if e.Line > 0 {
		return fmt.Sprintf("parse error in %s at line %d: %s", e.Path, e.Line, e.Message)
	}
	return fmt.Sprintf("parse error in %s: %s", e.Path, e.Message)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
