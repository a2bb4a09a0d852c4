package model

// ItemKind identifies what a positioned item carries.
type ItemKind int

const (
	ItemText ItemKind = iota
	ItemTable
	ItemShape
)

// String returns the kind name.
func (k ItemKind) String() string {
	switch k {
	case ItemText:
		return "text"
	case ItemTable:
		return "table"
	case ItemShape:
		return "shape"
	default:
		return "unknown"
	}
}

// PositionedItem is one extracted piece of slide content together with
// the top-left offset of its frame in EMUs. Items missing a transform
// carry (0, 0) and therefore sort first.
type PositionedItem struct {
	X, Y int64
	Kind ItemKind

	// Exactly one of the following is meaningful, per Kind.
	Para  Paragraph
	Table Table
	Shape Shape
}
