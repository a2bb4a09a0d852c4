package model

import "strings"

// Table is a grid of plain-text cells. Row zero is treated as the
// header row when rendering.
type Table struct {
	Rows [][]string
}

// IsEmpty reports whether no cell in the table contains text.
func (t Table) IsEmpty() bool {
	for _, row := range t.Rows {
		for _, cell := range row {
			if strings.TrimSpace(cell) != "" {
				return false
			}
		}
	}
	return true
}

// Markdown renders the table as a GitHub-flavored markdown table. Pipe
// characters inside cells are escaped so they cannot break the grid.
func (t Table) Markdown() string {
	if len(t.Rows) == 0 {
		return ""
	}

	var sb strings.Builder
	for i, row := range t.Rows {
		sb.WriteString("|")
		for _, cell := range row {
			sb.WriteString(" ")
			sb.WriteString(escapePipes(cell))
			sb.WriteString(" |")
		}
		sb.WriteString("\n")

		if i == 0 {
			sb.WriteString("|")
			for range row {
				sb.WriteString(" --- |")
			}
			sb.WriteString("\n")
		}
	}
	return sb.String()
}

func escapePipes(s string) string {
	return strings.ReplaceAll(s, "|", "\\|")
}
