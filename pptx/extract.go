package pptx

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/tsawler/deckview/model"
	"github.com/tsawler/deckview/xmltree"
)

var hexColorRe = regexp.MustCompile(`^[0-9a-fA-F]{6}$`)

// roundedPresets are the preset geometries rendered with rounded
// corners.
var roundedPresets = map[string]bool{
	"roundRect":      true,
	"round1Rect":     true,
	"round2SameRect": true,
	"round2DiagRect": true,
}

// ExtractSlide parses one slide part and returns its positioned content
// items. A slide whose XML lacks a shape tree yields no items. Parse
// failures are returned to the caller, which degrades the slide rather
// than aborting the batch.
func ExtractSlide(data []byte, theme *Theme) ([]model.PositionedItem, error) {
	root, err := xmltree.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parsing slide: %w", err)
	}

	spTree := root.FindFirst(nsPresentationML, "spTree")
	if spTree == nil {
		return nil, nil
	}

	return walkShapeTree(spTree, theme), nil
}

// walkShapeTree collects items from a shape tree in document order.
// Group shapes flatten recursively; their children join the same flat
// item list.
func walkShapeTree(tree *xmltree.Node, theme *Theme) []model.PositionedItem {
	var items []model.PositionedItem

	for _, child := range tree.Children {
		switch child.Name.Local {
		case "sp":
			items = append(items, extractShape(child, theme)...)
		case "graphicFrame":
			items = append(items, extractFrame(child, theme)...)
		case "grpSp":
			items = append(items, walkShapeTree(child, theme)...)
		}
	}

	return items
}

// extractShape turns one p:sp into items. A shape with a solid fill and
// non-empty text becomes a single shape item; otherwise each non-empty
// paragraph becomes its own text item at the shape's offset.
func extractShape(sp *xmltree.Node, theme *Theme) []model.PositionedItem {
	x, y := shapeOffset(sp)

	var paras []model.Paragraph
	if body := sp.FindFirst(nsPresentationML, "txBody"); body != nil {
		for _, p := range body.FindChildren(nsDrawingML, "p") {
			para := extractParagraph(p, body, theme)
			if !para.IsEmpty() {
				paras = append(paras, para)
			}
		}
	}

	fill, rounded := shapeStyle(sp, theme)
	if fill != "" && len(paras) > 0 {
		texts := make([]string, len(paras))
		for i, p := range paras {
			texts[i] = p.Text()
		}
		return []model.PositionedItem{{
			X: x, Y: y, Kind: model.ItemShape,
			Shape: model.Shape{
				Text:      strings.Join(texts, " "),
				FillColor: fill,
				Rounded:   rounded,
			},
		}}
	}

	items := make([]model.PositionedItem, 0, len(paras))
	for _, p := range paras {
		items = append(items, model.PositionedItem{
			X: x, Y: y, Kind: model.ItemText, Para: p,
		})
	}
	return items
}

// extractFrame handles p:graphicFrame, which hosts tables. Frames with
// other graphic content (charts, diagrams) yield nothing.
func extractFrame(frame *xmltree.Node, theme *Theme) []model.PositionedItem {
	tbl := frame.FindFirst(nsDrawingML, "tbl")
	if tbl == nil {
		return nil
	}
	x, y := shapeOffset(frame)

	var rows [][]string
	for _, tr := range tbl.FindChildren(nsDrawingML, "tr") {
		var row []string
		for _, tc := range tr.FindChildren(nsDrawingML, "tc") {
			row = append(row, cellText(tc, theme))
		}
		rows = append(rows, row)
	}

	table := model.Table{Rows: rows}
	if table.IsEmpty() {
		return nil
	}
	return []model.PositionedItem{{X: x, Y: y, Kind: model.ItemTable, Table: table}}
}

// cellText joins the cell's paragraph texts with single spaces.
func cellText(tc *xmltree.Node, theme *Theme) string {
	var parts []string
	for _, p := range tc.FindAll(nsDrawingML, "p") {
		para := extractParagraph(p, nil, theme)
		if !para.IsEmpty() {
			parts = append(parts, para.Text())
		}
	}
	return strings.Join(parts, " ")
}

// shapeOffset reads the frame offset from the transform. Shapes
// without one sit at (0, 0).
func shapeOffset(n *xmltree.Node) (x, y int64) {
	off := n.FindFirst(nsDrawingML, "off")
	if off == nil {
		return 0, 0
	}
	x, _ = strconv.ParseInt(off.Attr("x"), 10, 64)
	y, _ = strconv.ParseInt(off.Attr("y"), 10, 64)
	return x, y
}

// shapeStyle reads the shape's solid fill and geometry preset from its
// shape properties.
func shapeStyle(sp *xmltree.Node, theme *Theme) (fill string, rounded bool) {
	spPr := sp.FindFirst(nsPresentationML, "spPr")
	if spPr == nil {
		return "", false
	}

	if geom := spPr.FindFirst(nsDrawingML, "prstGeom"); geom != nil {
		rounded = roundedPresets[geom.Attr("prst")]
	}

	// Only a fill declared directly on the shape properties counts;
	// fills nested under line or effect properties do not.
	if sf := spPr.FindChild(nsDrawingML, "solidFill"); sf != nil {
		fill = resolveColor(sf, theme)
	}
	return fill, rounded
}

// resolveColor reads a color from a solidFill element. Direct sRGB
// values win over scheme-color references.
func resolveColor(solidFill *xmltree.Node, theme *Theme) string {
	if srgb := solidFill.FindChild(nsDrawingML, "srgbClr"); srgb != nil {
		if c, ok := normalizeHex(srgb.Attr("val")); ok {
			return c
		}
	}
	if scheme := solidFill.FindChild(nsDrawingML, "schemeClr"); scheme != nil {
		return theme.Resolve(scheme.Attr("val"))
	}
	return ""
}

// normalizeHex validates a six-digit hex color and returns it as
// "#RRGGBB" uppercase.
func normalizeHex(v string) (string, bool) {
	if !hexColorRe.MatchString(v) {
		return "", false
	}
	return "#" + strings.ToUpper(v), true
}

// extractParagraph reads one a:p, resolving alignment from the direct
// paragraph properties first and the enclosing text body's list-style
// level defaults second. body may be nil when no list style applies,
// as in table cells.
func extractParagraph(p, body *xmltree.Node, theme *Theme) model.Paragraph {
	para := model.Paragraph{Alignment: paragraphAlignment(p, body)}

	for _, r := range p.FindChildren(nsDrawingML, "r") {
		run := extractRun(r, theme)
		if run.Text == "" {
			continue
		}
		para.Runs = append(para.Runs, run)
	}

	return para
}

func paragraphAlignment(p, body *xmltree.Node) model.Alignment {
	if pPr := p.FindChild(nsDrawingML, "pPr"); pPr != nil {
		if a := parseAlign(pPr.Attr("algn")); a != model.AlignUnset {
			return a
		}
	}
	return inheritedAlignment(p, body)
}

// inheritedAlignment looks up the paragraph's indent level in the text
// body's lstStyle. Level 0 maps to lvl1pPr.
func inheritedAlignment(p, body *xmltree.Node) model.Alignment {
	if body == nil {
		return model.AlignUnset
	}
	level := 0
	if pPr := p.FindChild(nsDrawingML, "pPr"); pPr != nil {
		if lvl := pPr.Attr("lvl"); lvl != "" {
			if n, err := strconv.Atoi(lvl); err == nil {
				level = n
			}
		}
	}

	style := body.FindChild(nsDrawingML, "lstStyle")
	if style == nil {
		return model.AlignUnset
	}
	lvlPr := style.FindChild(nsDrawingML, fmt.Sprintf("lvl%dpPr", level+1))
	if lvlPr == nil {
		return model.AlignUnset
	}
	return parseAlign(lvlPr.Attr("algn"))
}

func parseAlign(v string) model.Alignment {
	switch v {
	case "l":
		return model.AlignLeft
	case "ctr":
		return model.AlignCenter
	case "r":
		return model.AlignRight
	default:
		return model.AlignUnset
	}
}

// extractRun reads one a:r: its normalized text and character
// properties.
func extractRun(r *xmltree.Node, theme *Theme) model.Run {
	var sb strings.Builder
	for _, t := range r.FindChildren(nsDrawingML, "t") {
		sb.WriteString(t.InnerText())
	}

	run := model.Run{Text: norm.NFC.String(sb.String())}

	rPr := r.FindChild(nsDrawingML, "rPr")
	if rPr == nil {
		return run
	}
	run.Bold = boolAttr(rPr.Attr("b"))
	run.Italic = boolAttr(rPr.Attr("i"))
	if sf := rPr.FindChild(nsDrawingML, "solidFill"); sf != nil {
		run.Color = resolveColor(sf, theme)
	}
	return run
}

func boolAttr(v string) bool {
	return v == "1" || v == "true"
}
