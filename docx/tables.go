package docx

import (
	"strings"

	"github.com/tsawler/docsv/model"
)

// buildTable converts a parsed w:tbl element into a model.Table. Rows keep
// their cells in column order; no rectangularity is imposed, so rows with
// differing cell counts come through as-is.
func buildTable(tbl tableXML) model.Table {
	rows := make([][]string, 0, len(tbl.Rows))
	for _, tr := range tbl.Rows {
		row := make([]string, 0, len(tr.Cells))
		for _, tc := range tr.Cells {
			row = append(row, cellText(tc))
		}
		rows = append(rows, row)
	}
	return model.NewTable(rows)
}

// cellText returns the raw text of a cell: its paragraphs joined with
// newlines. Normalization happens later in model.NewTable.
func cellText(tc tableCellXML) string {
	parts := make([]string, 0, len(tc.Paragraphs))
	for _, p := range tc.Paragraphs {
		parts = append(parts, paragraphText(p))
	}
	return strings.Join(parts, "\n")
}

// paragraphText concatenates the text of a paragraph's runs.
func paragraphText(p paragraphXML) string {
	var sb strings.Builder
	for _, run := range p.Runs {
		sb.WriteString(runText(run))
	}
	return sb.String()
}

// runText extracts text from a run element.
func runText(run runXML) string {
	var parts []string

	for _, t := range run.Text {
		parts = append(parts, t.Value)
	}

	// Handle tab characters
	for range run.Tabs {
		parts = append(parts, "\t")
	}

	// Handle breaks
	for range run.Breaks {
		parts = append(parts, "\n")
	}

	return strings.Join(parts, "")
}
