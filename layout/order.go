// Package layout resolves the reading order of extracted slide content
// and builds the ordered block model that rendering consumes.
package layout

import (
	"sort"

	"github.com/tsawler/deckview/model"
)

// OrderItems returns the items sorted into reading order: top-to-bottom
// by y offset, left-to-right by x on ties. The sort is stable, so items
// at identical coordinates keep their document order.
func OrderItems(items []model.PositionedItem) []model.PositionedItem {
	ordered := make([]model.PositionedItem, len(items))
	copy(ordered, items)

	sort.SliceStable(ordered, func(i, j int) bool {
		if ordered[i].Y != ordered[j].Y {
			return ordered[i].Y < ordered[j].Y
		}
		return ordered[i].X < ordered[j].X
	})

	return ordered
}
