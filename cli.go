package main

import (
	"errors"
	"fmt"
	"io"

	"textcanvas/canvas"
)

var errValidation = errors.New("validation failed")

// exitCode maps errors to process exit codes: 2 for validation issues,
// 3 for canvas errors and 1 for everything else.
func exitCode(err error) int {
	switch {
	case errors.Is(err, errValidation):
		return 2
	case canvas.CodeOf(err) != canvas.CodeUnknown:
		return 3
	}
	return 1
}

func readAll(r io.Reader) ([]byte, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading scene: %w", err)
	}
	return data, nil
}
