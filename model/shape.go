package model

// Shape is a filled drawing shape that carries text. Extraction
// classifies a shape this way only when it has both a solid fill and
// non-empty text; otherwise its paragraphs surface as plain text items.
type Shape struct {
	Text string

	// FillColor is "#RRGGBB" (uppercase hex).
	FillColor string

	// Rounded is set for rounded-rectangle geometry presets.
	Rounded bool
}
