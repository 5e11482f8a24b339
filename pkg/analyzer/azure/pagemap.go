package azure

import (
	"html"
	"sort"
	"strconv"
	"strings"

	"github.com/clemensw/pagemap/pkg/analyzer"
)

// roleTags maps a paragraph role to its HTML wrapper tag. Roles mapping
// to the empty string (and roles missing from the map) emit no markup,
// their text passes through unwrapped.
var roleTags = map[string]string{
	"title":          "h1",
	"sectionHeading": "h2",
	"pageHeader":     "",
	"pageFooter":     "",
	"paragraph":      "p",
}

// reconstructPages linearizes an analysis result into one HTML-annotated
// text record per page. Three independently indexed layers are merged in a
// single pass over each page's characters: the raw content string, table
// cell spans, and paragraph role spans. Page numbers are 0-based in the
// output, offsets accumulate across pages.
func reconstructPages(result AnalyzeResult, layout bool) []analyzer.PageRecord {
	rolesStart := map[int]string{}
	rolesEnd := map[int]string{}

	if layout {
		for _, paragraph := range result.Paragraphs {
			role := paragraph.Role

			if role == "" {
				role = "paragraph"
			}

			// only the first span bounds the role. paragraphs sharing a
			// boundary offset overwrite earlier ones, last write wins
			span := paragraph.Spans[0]

			rolesStart[span.Offset] = role
			rolesEnd[span.Offset+span.Length] = role
		}
	}

	records := make([]analyzer.PageRecord, 0, len(result.Pages))

	offset := 0

	for index, page := range result.Pages {
		var tables []Table

		if layout {
			for _, table := range result.Tables {
				// a table belongs to the page of its first bounding region
				// only, even when later regions or spans reach other pages
				if table.BoundingRegions[0].PageNumber == index+1 {
					tables = append(tables, table)
				}
			}
		}

		pageOffset := page.Spans[0].Offset
		pageLength := page.Spans[0].Length

		// tableChars[i] holds the page-local table id covering character i,
		// or -1 when the character is plain content
		tableChars := make([]int, pageLength)

		for i := range tableChars {
			tableChars[i] = -1
		}

		for id, table := range tables {
			for _, span := range table.Spans {
				for i := 0; i < span.Length; i++ {
					if idx := span.Offset - pageOffset + i; idx >= 0 && idx < pageLength {
						tableChars[idx] = id
					}
				}
			}
		}

		var text strings.Builder

		added := map[int]bool{}

		for idx, id := range tableChars {
			if id == -1 {
				position := pageOffset + idx

				if role, ok := rolesStart[position]; ok {
					if tag := roleTags[role]; tag != "" {
						text.WriteString("<" + tag + ">")
					}
				}

				if role, ok := rolesEnd[position]; ok {
					if tag := roleTags[role]; tag != "" {
						text.WriteString("</" + tag + ">")
					}
				}

				text.WriteByte(result.Content[position])

				continue
			}

			if !added[id] {
				text.WriteString(tableHTML(tables[id]))
				added[id] = true
			}
		}

		text.WriteString(" ")

		record := analyzer.PageRecord{
			Number: index,
			Offset: offset,
			Text:   text.String(),
		}

		records = append(records, record)

		offset += len(record.Text)
	}

	return records
}

func tableHTML(table Table) string {
	var b strings.Builder

	b.WriteString("<table>")

	for row := 0; row < table.RowCount; row++ {
		var cells []Cell

		for _, cell := range table.Cells {
			if cell.RowIndex == row {
				cells = append(cells, cell)
			}
		}

		sort.SliceStable(cells, func(i, j int) bool {
			return cells[i].ColumnIndex < cells[j].ColumnIndex
		})

		b.WriteString("<tr>")

		for _, cell := range cells {
			tag := "td"

			if cell.Kind == "columnHeader" {
				tag = "th"
			}

			b.WriteString("<" + tag)

			if cell.ColumnSpan > 1 {
				b.WriteString(` colspan="` + strconv.Itoa(cell.ColumnSpan) + `"`)
			}

			if cell.RowSpan > 1 {
				b.WriteString(` rowspan="` + strconv.Itoa(cell.RowSpan) + `"`)
			}

			b.WriteString(">")
			b.WriteString(html.EscapeString(cell.Content))
			b.WriteString("</" + tag + ">")
		}

		b.WriteString("</tr>")
	}

	b.WriteString("</table>")

	return b.String()
}
