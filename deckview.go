// Package deckview extracts slide content from OOXML presentation
// files and renders it as semantic HTML, plain text, or markdown.
//
// Usage follows a fluent pattern:
//
//	html, warnings, err := deckview.Decode(data).Slides(1, 3).HTML()
//
// Configuration methods return modified copies, so extractors are
// immutable and safe to share. Per-slide problems surface as Warnings
// rather than errors: a malformed slide keeps its position in the
// output with an empty block list.
package deckview

import (
	"encoding/base64"
	"fmt"
	"strings"
)

// Open prepares an extractor for a presentation file on disk. The file
// is read at the first terminal operation.
func Open(filename string) *Extractor {
	return &Extractor{filename: filename, opts: defaultOptions()}
}

// Decode prepares an extractor for an in-memory presentation.
func Decode(data []byte) *Extractor {
	return &Extractor{data: data, opts: defaultOptions()}
}

// DecodeDataURL prepares an extractor for a base64 data URL, the form
// presentations arrive in from browser uploads. Any URL failure is
// reported as invalid input by the terminal operation.
func DecodeDataURL(url string) *Extractor {
	e := &Extractor{opts: defaultOptions()}

	_, payload, found := strings.Cut(url, ",")
	if !found || !strings.HasPrefix(url, "data:") {
		e.err = fmt.Errorf("%w: not a data URL", ErrInvalidInput)
		return e
	}
	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		e.err = fmt.Errorf("%w: decoding data URL: %v", ErrInvalidInput, err)
		return e
	}
	e.data = data
	return e
}

// Must panics on error. It is intended for program initialization and
// examples, not request paths.
func Must[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}

// MustHTML renders a presentation file to HTML, panicking on error and
// discarding warnings.
func MustHTML(filename string) string {
	html, _, err := Open(filename).HTML()
	if err != nil {
		panic(err)
	}
	return html
}
