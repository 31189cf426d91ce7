package docx

import "testing"

func TestBuildTable(t *testing.T) {
	tbl := tableXML{
		Rows: []tableRowXML{
			{Cells: []tableCellXML{
				{Paragraphs: []paragraphXML{{Runs: []runXML{{Text: []textXML{{Value: "a"}}}}}}},
				{Paragraphs: []paragraphXML{{Runs: []runXML{{Text: []textXML{{Value: "b"}}}}}}},
			}},
			{Cells: []tableCellXML{
				{Paragraphs: []paragraphXML{{Runs: []runXML{{Text: []textXML{{Value: "c"}}}}}}},
			}},
		},
	}

	table := buildTable(tbl)

	if table.RowCount() != 2 {
		t.Fatalf("RowCount() = %d, want 2", table.RowCount())
	}
	if got := table.Rows[0][1]; got != "b" {
		t.Errorf("cell (0,1) = %q, want %q", got, "b")
	}
	if got := len(table.Rows[1]); got != 1 {
		t.Errorf("row 1 has %d cells, want 1", got)
	}
}

func TestCellText_EmptyCell(t *testing.T) {
	if got := cellText(tableCellXML{}); got != "" {
		t.Errorf("cellText(empty) = %q, want empty string", got)
	}
}

func TestCellText_JoinsParagraphs(t *testing.T) {
	tc := tableCellXML{
		Paragraphs: []paragraphXML{
			{Runs: []runXML{{Text: []textXML{{Value: "one"}}}}},
			{},
			{Runs: []runXML{{Text: []textXML{{Value: "two"}}}}},
		},
	}
	// Empty paragraphs still contribute a line, matching the container's
	// own cell text semantics.
	if got := cellText(tc); got != "one\n\ntwo" {
		t.Errorf("cellText() = %q, want %q", got, "one\n\ntwo")
	}
}

func TestRunText(t *testing.T) {
	tests := []struct {
		name string
		run  runXML
		want string
	}{
		{"plain text", runXML{Text: []textXML{{Value: "hello"}}}, "hello"},
		{"multiple text nodes", runXML{Text: []textXML{{Value: "a"}, {Value: "b"}}}, "ab"},
		{"tab", runXML{Text: []textXML{{Value: "x"}}, Tabs: []tabXML{{}}}, "x\t"},
		{"break", runXML{Text: []textXML{{Value: "x"}}, Breaks: []breakXML{{}}}, "x\n"},
		{"empty", runXML{}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := runText(tt.run); got != tt.want {
				t.Errorf("runText() = %q, want %q", got, tt.want)
			}
		})
	}
}
