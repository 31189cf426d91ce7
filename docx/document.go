package docx

import "encoding/xml"

// documentXML represents the structure of word/document.xml, trimmed to the
// elements needed for table extraction.
type documentXML struct {
	XMLName xml.Name `xml:"document"`
	Body    *bodyXML `xml:"body"`
}

// bodyXML represents the document body. Only direct children named w:tbl are
// collected, so nested tables stay inside their parent cell's markup.
type bodyXML struct {
	Tables []tableXML `xml:"tbl"`
}

// tableXML represents a table (<w:tbl>).
type tableXML struct {
	XMLName xml.Name      `xml:"tbl"`
	Rows    []tableRowXML `xml:"tr"`
}

// tableRowXML represents a table row (<w:tr>).
type tableRowXML struct {
	XMLName xml.Name       `xml:"tr"`
	Cells   []tableCellXML `xml:"tc"`
}

// tableCellXML represents a table cell (<w:tc>).
type tableCellXML struct {
	XMLName    xml.Name       `xml:"tc"`
	Paragraphs []paragraphXML `xml:"p"`
}

// paragraphXML represents a paragraph element (<w:p>).
type paragraphXML struct {
	XMLName xml.Name `xml:"p"`
	Runs    []runXML `xml:"r"`
}

// runXML represents a text run (<w:r>).
type runXML struct {
	XMLName xml.Name   `xml:"r"`
	Text    []textXML  `xml:"t"`
	Tabs    []tabXML   `xml:"tab"`
	Breaks  []breakXML `xml:"br"`
}

// textXML represents text content (<w:t>).
type textXML struct {
	XMLName xml.Name `xml:"t"`
	Space   string   `xml:"space,attr"` // preserve
	Value   string   `xml:",chardata"`
}

// tabXML represents a tab character.
type tabXML struct {
	XMLName xml.Name `xml:"tab"`
}

// breakXML represents a break (line or page).
type breakXML struct {
	XMLName xml.Name `xml:"br"`
	Type    string   `xml:"type,attr"` // page, column, textWrapping
}
