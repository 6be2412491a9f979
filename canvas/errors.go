package canvas

import (
	"errors"

	"textcanvas/attr"
)

// Common errors
var (
	ErrInvalidSize   = errors.New("invalid canvas size")
	ErrInvalidHandle = errors.New("canvas has been released")
	ErrOutOfBounds   = errors.New("position out of bounds")
	ErrOutOfMemory   = errors.New("canvas too large")
)

// Code is a flat error classification for callers that cannot use
// errors.Is, such as foreign-function bindings.
type Code int

const (
	CodeOK Code = iota
	CodeInvalidSize
	CodeInvalidColorMode
	CodeInvalidHandle
	CodeOutOfBounds
	CodeOutOfMemory
	CodeUnknown
)

var codeNames = [...]string{
	CodeOK:               "ok",
	CodeInvalidSize:      "invalid size",
	CodeInvalidColorMode: "invalid color mode",
	CodeInvalidHandle:    "invalid handle",
	CodeOutOfBounds:      "out of bounds",
	CodeOutOfMemory:      "out of memory",
	CodeUnknown:          "unknown",
}

func (c Code) String() string {
	if c < 0 || int(c) >= len(codeNames) {
		return codeNames[CodeUnknown]
	}
	return codeNames[c]
}

// CodeOf classifies err. A nil error is CodeOK.
func CodeOf(err error) Code {
	switch {
	case err == nil:
		return CodeOK
	case errors.Is(err, ErrInvalidSize):
		return CodeInvalidSize
	case errors.Is(err, attr.ErrInvalidColorMode):
		return CodeInvalidColorMode
	case errors.Is(err, ErrInvalidHandle):
		return CodeInvalidHandle
	case errors.Is(err, ErrOutOfBounds):
		return CodeOutOfBounds
	case errors.Is(err, ErrOutOfMemory):
		return CodeOutOfMemory
	}
	return CodeUnknown
}
