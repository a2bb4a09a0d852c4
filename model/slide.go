package model

import (
	"fmt"
	"strings"
)

// Slide is one presentation slide: its 1-indexed display number, its
// reading-ordered blocks, and optional speaker notes.
type Slide struct {
	Index  int
	Blocks []Block
	Notes  string
}

// Title returns the title text, or an empty string when the slide has
// no title block.
func (s Slide) Title() string {
	for _, b := range s.Blocks {
		if tb, ok := b.(TitleBlock); ok {
			return tb.Para.Text()
		}
	}
	return ""
}

// Text returns the slide content as plain text, one line per block.
func (s Slide) Text() string {
	var sb strings.Builder
	for _, b := range s.Blocks {
		switch blk := b.(type) {
		case TitleBlock:
			sb.WriteString(blk.Para.Text())
			sb.WriteString("\n")
		case ParagraphBlock:
			sb.WriteString(blk.Para.Text())
			sb.WriteString("\n")
		case TableBlock:
			for _, row := range blk.Table.Rows {
				sb.WriteString(strings.Join(row, "\t"))
				sb.WriteString("\n")
			}
		case ShapeBlock:
			sb.WriteString(blk.Shape.Text)
			sb.WriteString("\n")
		}
	}
	if s.Notes != "" {
		sb.WriteString("\n")
		sb.WriteString(s.Notes)
		sb.WriteString("\n")
	}
	return sb.String()
}

// Markdown returns the slide content as markdown. The title becomes a
// level-2 heading and tables render as pipe tables.
func (s Slide) Markdown() string {
	var sb strings.Builder
	for _, b := range s.Blocks {
		switch blk := b.(type) {
		case TitleBlock:
			sb.WriteString("## ")
			sb.WriteString(blk.Para.Text())
			sb.WriteString("\n\n")
		case ParagraphBlock:
			sb.WriteString(blk.Para.Text())
			sb.WriteString("\n\n")
		case TableBlock:
			sb.WriteString(blk.Table.Markdown())
			sb.WriteString("\n")
		case ShapeBlock:
			sb.WriteString(blk.Shape.Text)
			sb.WriteString("\n\n")
		}
	}
	if s.Notes != "" {
		sb.WriteString(fmt.Sprintf("> %s\n\n", s.Notes))
	}
	return sb.String()
}

// Metadata holds the document properties from docProps/core.xml.
type Metadata struct {
	Title          string
	Subject        string
	Creator        string
	Keywords       string
	Description    string
	LastModifiedBy string
	Created        string
	Modified       string
}

// Presentation is the complete decoded document.
type Presentation struct {
	Metadata Metadata
	Slides   []Slide
}
