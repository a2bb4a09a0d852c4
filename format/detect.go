// Package format provides container format detection for the deckview library.
package format

import (
	"archive/zip"
	"bytes"
	"path/filepath"
	"strings"
)

// Format represents a supported document format.
type Format int

const (
	// Unknown indicates an unrecognized format.
	Unknown Format = iota
	// Archive indicates a ZIP container of undetermined content.
	Archive
	// Presentation indicates an OOXML presentation (.pptx) container.
	Presentation
)

// String returns the string representation of the format.
func (f Format) String() string {
	switch f {
	case Archive:
		return "Archive"
	case Presentation:
		return "Presentation"
	default:
		return "Unknown"
	}
}

// Extension returns the typical file extension for the format.
func (f Format) Extension() string {
	switch f {
	case Archive:
		return ".zip"
	case Presentation:
		return ".pptx"
	default:
		return ""
	}
}

// Detect determines file format from filename extension.
func Detect(filename string) Format {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".pptx":
		return Presentation
	case ".zip":
		return Archive
	default:
		return Unknown
	}
}

// DetectFromMagic checks magic bytes to determine format.
// A ZIP local-file signature alone cannot distinguish a presentation
// from any other OOXML package, so this returns Archive for ZIP data;
// use Sniff to inspect the container contents.
func DetectFromMagic(data []byte) Format {
	if len(data) < 4 {
		return Unknown
	}

	// ZIP magic: PK\x03\x04 (also accept the empty-archive signature PK\x05\x06)
	if data[0] == 0x50 && data[1] == 0x4B {
		switch {
		case data[2] == 0x03 && data[3] == 0x04,
			data[2] == 0x05 && data[3] == 0x06:
			return Archive
		}
	}

	return Unknown
}

// Sniff inspects the content of a buffer to determine its format.
// This is more reliable than extension or magic detection and can
// recognize a presentation container by its part names.
func Sniff(data []byte) (Format, error) {
	if DetectFromMagic(data) != Archive {
		return Unknown, nil
	}

	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		// Has the signature but no readable central directory.
		return Unknown, err
	}

	for _, f := range zr.File {
		if strings.HasPrefix(f.Name, "ppt/") {
			return Presentation, nil
		}
	}

	return Archive, nil
}
