// Package render emits semantic HTML fragments from the slide model.
// All document-originated text passes through HTML escaping before it
// reaches markup; style values are assembled only from validated model
// fields, never raw document strings.
package render

import (
	"fmt"
	"strings"

	"golang.org/x/net/html"

	"github.com/tsawler/deckview/model"
)

// SlideHTML renders one slide as a section fragment. An empty slide
// still yields its section with the slide-number label.
func SlideHTML(s model.Slide) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "<section class=\"slide\" data-slide=\"%d\">\n", s.Index)
	fmt.Fprintf(&sb, "<header class=\"slide-number\">Slide %d</header>\n", s.Index)

	for _, b := range s.Blocks {
		switch blk := b.(type) {
		case model.TitleBlock:
			writeParagraph(&sb, "h2", blk.Para)
		case model.ParagraphBlock:
			writeParagraph(&sb, "p", blk.Para)
		case model.TableBlock:
			writeTable(&sb, blk.Table)
		case model.ShapeBlock:
			writeShape(&sb, blk.Shape)
		}
	}

	sb.WriteString("</section>\n")
	return sb.String()
}

// PresentationHTML renders every slide, concatenated in order.
func PresentationHTML(p model.Presentation) string {
	var sb strings.Builder
	for _, s := range p.Slides {
		sb.WriteString(SlideHTML(s))
	}
	return sb.String()
}

func writeParagraph(sb *strings.Builder, tag string, p model.Paragraph) {
	sb.WriteString("<")
	sb.WriteString(tag)
	if align := p.Alignment.String(); align != "" && p.Alignment != model.AlignLeft {
		fmt.Fprintf(sb, " style=\"text-align:%s\"", align)
	}
	sb.WriteString(">")

	for _, r := range p.Runs {
		writeRun(sb, r)
	}

	sb.WriteString("</")
	sb.WriteString(tag)
	sb.WriteString(">\n")
}

// writeRun emits a styled span, or bare escaped text when the run
// carries no styling.
func writeRun(sb *strings.Builder, r model.Run) {
	if !r.IsStyled() {
		sb.WriteString(html.EscapeString(r.Text))
		return
	}

	var styles []string
	if r.Color != "" {
		styles = append(styles, "color:"+r.Color)
	}
	if r.Bold {
		styles = append(styles, "font-weight:bold")
	}
	if r.Italic {
		styles = append(styles, "font-style:italic")
	}

	fmt.Fprintf(sb, "<span style=\"%s\">%s</span>",
		strings.Join(styles, ";"), html.EscapeString(r.Text))
}

// writeTable renders row zero as the header and the rest as the body.
// A single-row table emits only the thead.
func writeTable(sb *strings.Builder, t model.Table) {
	if len(t.Rows) == 0 {
		return
	}

	sb.WriteString("<table>\n<thead>\n<tr>")
	for _, cell := range t.Rows[0] {
		sb.WriteString("<th>")
		sb.WriteString(html.EscapeString(cell))
		sb.WriteString("</th>")
	}
	sb.WriteString("</tr>\n</thead>\n")

	if len(t.Rows) > 1 {
		sb.WriteString("<tbody>\n")
		for _, row := range t.Rows[1:] {
			sb.WriteString("<tr>")
			for _, cell := range row {
				sb.WriteString("<td>")
				sb.WriteString(html.EscapeString(cell))
				sb.WriteString("</td>")
			}
			sb.WriteString("</tr>\n")
		}
		sb.WriteString("</tbody>\n")
	}

	sb.WriteString("</table>\n")
}

func writeShape(sb *strings.Builder, s model.Shape) {
	style := "background-color:" + s.FillColor
	if s.Rounded {
		style += ";border-radius:8px"
	}
	fmt.Fprintf(sb, "<div class=\"shape\" style=\"%s\">%s</div>\n",
		style, html.EscapeString(s.Text))
}
