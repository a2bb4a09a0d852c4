package layout

import (
	"testing"

	"github.com/tsawler/deckview/model"
)

func TestBuildBlocksFirstTextIsTitle(t *testing.T) {
	ordered := OrderItems([]model.PositionedItem{
		textItem("Heading", 0, 0),
		textItem("Body one", 0, 100),
		textItem("Body two", 0, 200),
	})

	blocks := BuildBlocks(ordered)
	if len(blocks) != 3 {
		t.Fatalf("got %d blocks, want 3", len(blocks))
	}
	title, ok := blocks[0].(model.TitleBlock)
	if !ok {
		t.Fatalf("first block is %T, want TitleBlock", blocks[0])
	}
	if title.Para.Text() != "Heading" {
		t.Errorf("title = %q, want %q", title.Para.Text(), "Heading")
	}
	for i := 1; i < 3; i++ {
		if _, ok := blocks[i].(model.ParagraphBlock); !ok {
			t.Errorf("block %d is %T, want ParagraphBlock", i, blocks[i])
		}
	}
}

func TestBuildBlocksShapeDoesNotTakeTitleSlot(t *testing.T) {
	items := []model.PositionedItem{
		{X: 0, Y: 0, Kind: model.ItemShape, Shape: model.Shape{Text: "Badge", FillColor: "#FF0000"}},
		textItem("B", 0, 10),
		textItem("C", 0, 20),
	}

	blocks := BuildBlocks(OrderItems(items))
	if len(blocks) != 3 {
		t.Fatalf("got %d blocks, want 3", len(blocks))
	}
	if _, ok := blocks[0].(model.ShapeBlock); !ok {
		t.Errorf("block 0 is %T, want ShapeBlock", blocks[0])
	}
	title, ok := blocks[1].(model.TitleBlock)
	if !ok {
		t.Fatalf("block 1 is %T, want TitleBlock", blocks[1])
	}
	if title.Para.Text() != "B" {
		t.Errorf("title = %q, want %q", title.Para.Text(), "B")
	}
	if _, ok := blocks[2].(model.ParagraphBlock); !ok {
		t.Errorf("block 2 is %T, want ParagraphBlock", blocks[2])
	}
}

func TestBuildBlocksTableDoesNotTakeTitleSlot(t *testing.T) {
	items := []model.PositionedItem{
		{X: 0, Y: 0, Kind: model.ItemTable, Table: model.Table{Rows: [][]string{{"a"}}}},
		textItem("After", 0, 10),
	}

	blocks := BuildBlocks(OrderItems(items))
	if _, ok := blocks[0].(model.TableBlock); !ok {
		t.Errorf("block 0 is %T, want TableBlock", blocks[0])
	}
	if _, ok := blocks[1].(model.TitleBlock); !ok {
		t.Errorf("block 1 is %T, want TitleBlock", blocks[1])
	}
}

func TestBuildBlocksEmpty(t *testing.T) {
	blocks := BuildBlocks(nil)
	if len(blocks) != 0 {
		t.Errorf("got %d blocks, want 0", len(blocks))
	}
}
