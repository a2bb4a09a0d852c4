package model

import "strings"

// Alignment represents horizontal paragraph alignment.
type Alignment int

const (
	// AlignUnset means the source carried no alignment; renderers treat
	// it as left without emitting any style.
	AlignUnset Alignment = iota
	AlignLeft
	AlignCenter
	AlignRight
)

// String returns the CSS text-align keyword for the alignment, or an
// empty string when unset.
func (a Alignment) String() string {
	switch a {
	case AlignLeft:
		return "left"
	case AlignCenter:
		return "center"
	case AlignRight:
		return "right"
	default:
		return ""
	}
}

// Run is a contiguous span of text sharing one set of character
// properties.
type Run struct {
	Text string

	// Color is "#RRGGBB" (uppercase hex) or empty when the run carries
	// no resolvable color.
	Color  string
	Bold   bool
	Italic bool
}

// IsStyled reports whether the run carries any character styling.
func (r Run) IsStyled() bool {
	return r.Color != "" || r.Bold || r.Italic
}

// Paragraph is an ordered list of runs with paragraph-level properties.
type Paragraph struct {
	Runs      []Run
	Alignment Alignment
}

// Text returns the concatenated run text.
func (p Paragraph) Text() string {
	var sb strings.Builder
	for _, r := range p.Runs {
		sb.WriteString(r.Text)
	}
	return sb.String()
}

// IsEmpty reports whether the paragraph contains no text after trimming
// whitespace.
func (p Paragraph) IsEmpty() bool {
	return strings.TrimSpace(p.Text()) == ""
}
