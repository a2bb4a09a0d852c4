package model

// BlockType identifies a block in the slide's ordered content list.
type BlockType int

const (
	BlockTitle BlockType = iota
	BlockParagraph
	BlockTable
	BlockShape
)

// String returns the block type name.
func (t BlockType) String() string {
	switch t {
	case BlockTitle:
		return "title"
	case BlockParagraph:
		return "paragraph"
	case BlockTable:
		return "table"
	case BlockShape:
		return "shape"
	default:
		return "unknown"
	}
}

// Block is one element of a slide's reading-ordered content.
type Block interface {
	BlockType() BlockType
}

// TitleBlock is the slide title: the first text item in reading order.
type TitleBlock struct {
	Para Paragraph
}

func (TitleBlock) BlockType() BlockType { return BlockTitle }

// ParagraphBlock is a body paragraph.
type ParagraphBlock struct {
	Para Paragraph
}

func (ParagraphBlock) BlockType() BlockType { return BlockParagraph }

// TableBlock is a table.
type TableBlock struct {
	Table Table
}

func (TableBlock) BlockType() BlockType { return BlockTable }

// ShapeBlock is a filled shape with text.
type ShapeBlock struct {
	Shape Shape
}

func (ShapeBlock) BlockType() BlockType { return BlockShape }
