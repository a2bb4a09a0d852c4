package layout

import "github.com/tsawler/deckview/model"

// BuildBlocks converts reading-ordered items into the slide's block
// list. The first text item becomes the title; every later text item is
// a body paragraph. Tables and shapes never take the title slot, so a
// slide whose first item is a shape still titles the first text item
// that follows it.
func BuildBlocks(ordered []model.PositionedItem) []model.Block {
	var blocks []model.Block
	titleAssigned := false

	for _, item := range ordered {
		switch item.Kind {
		case model.ItemText:
			if !titleAssigned {
				blocks = append(blocks, model.TitleBlock{Para: item.Para})
				titleAssigned = true
			} else {
				blocks = append(blocks, model.ParagraphBlock{Para: item.Para})
			}
		case model.ItemTable:
			blocks = append(blocks, model.TableBlock{Table: item.Table})
		case model.ItemShape:
			blocks = append(blocks, model.ShapeBlock{Shape: item.Shape})
		}
	}

	return blocks
}
