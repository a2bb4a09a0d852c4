package deckview

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for decode failures, matchable with errors.Is.
var (
	// ErrInvalidInput means the input could not be interpreted at all:
	// empty data, an undecodable data URL, or a missing file.
	ErrInvalidInput = errors.New("invalid input")

	// ErrCorruptArchive means the container is not a readable ZIP
	// archive. No slides are returned alongside it.
	ErrCorruptArchive = errors.New("corrupt archive")

	// ErrMalformedSlideXML marks a slide whose XML failed to parse. It
	// surfaces as a Warning, not a decode failure: the slide keeps its
	// place with an empty block list.
	ErrMalformedSlideXML = errors.New("malformed slide xml")
)

// Warning describes a non-fatal problem encountered during decoding.
type Warning struct {
	// Slide is the 1-indexed slide number, or 0 for document-level
	// warnings.
	Slide   int
	Message string
}

func (w Warning) String() string {
	if w.Slide > 0 {
		return fmt.Sprintf("slide %d: %s", w.Slide, w.Message)
	}
	return w.Message
}

// FormatWarnings joins warnings into a printable multi-line string.
func FormatWarnings(warnings []Warning) string {
	if len(warnings) == 0 {
		return ""
	}
	lines := make([]string, len(warnings))
	for i, w := range warnings {
		lines[i] = w.String()
	}
	return strings.Join(lines, "\n")
}
