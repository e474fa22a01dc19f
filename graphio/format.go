// SPDX-License-Identifier: MIT

package graphio

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

// Sentinel errors.
var (
	// ErrUnknownFormat is returned for unsupported names or file extensions.
	ErrUnknownFormat = errors.New("graphio: unknown format")

	// ErrSyntax reports malformed input; the message carries the location.
	ErrSyntax = errors.New("graphio: syntax error")
)

// Format identifies an on-disk representation.
type Format int

// Supported formats.
const (
	FormatEdgeList Format = iota
	FormatJSON
	FormatYAML
	FormatMatrix
)

// String returns the canonical name.
func (f Format) String() string {
	switch f {
	case FormatEdgeList:
		return "edgelist"
	case FormatJSON:
		return "json"
	case FormatYAML:
		return "yaml"
	case FormatMatrix:
		return "matrix"
	default:
		return fmt.Sprintf("format(%d)", int(f))
	}
}

// ParseFormat maps a name ("edgelist", "txt", "json", "yaml", "yml",
// "matrix", "adj").
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(strings.TrimPrefix(strings.TrimSpace(name), ".")) {
	case "edgelist", "edges", "txt":
		return FormatEdgeList, nil
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	case "matrix", "adj":
		return FormatMatrix, nil
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownFormat, name)
}

// FormatFromPath picks the format from the file extension.
func FormatFromPath(path string) (Format, error) {
	ext := filepath.Ext(path)
	if ext == "" {
		return 0, fmt.Errorf("%w: %q has no extension", ErrUnknownFormat, path)
	}

	return ParseFormat(ext)
}
