package tablekit

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// ValueConverter re-types a cell value for JSON export (for example
// string->int for an ID column). A nil converter keeps every value a string.
type ValueConverter func(col int, value string) interface{}

// Exporter serializes a model's current contents. The output shapes are
// deliberately fixed: HTML cells are inserted as-is (no escaping — callers
// feeding markup into cells see it pass through), and CSV quotes a value only
// when it contains a comma, with no escaping of embedded quotes or newlines.
type Exporter struct {
	model *Model
}

// NewExporter creates an exporter over model.
func NewExporter(model *Model) *Exporter {
	return &Exporter{model: model}
}

// headerLabel returns the display header for a column, falling back to the
// 1-based column number the way toolkit header data does.
func (e *Exporter) headerLabel(col int) string {
	headers := e.model.headers
	if col < len(headers) {
		return headers[col]
	}
	return strconv.Itoa(col + 1)
}

// HTML renders the model as an inline-styled HTML table.
func (e *Exporter) HTML() string {
	var html strings.Builder

	rowCount := e.model.RowCount()
	columnCount := e.model.ColumnCount()

	html.WriteString("<table style='border-collapse: collapse; width: 100%;'>")

	html.WriteString("<thead><tr>")
	for col := 0; col < columnCount; col++ {
		html.WriteString("<th style='border: 1px solid #ddd; padding: 8px; background-color: #f2f2f2;'>")
		html.WriteString(e.headerLabel(col))
		html.WriteString("</th>")
	}
	html.WriteString("</tr></thead>")

	html.WriteString("<tbody>")
	for row := 0; row < rowCount; row++ {
		html.WriteString("<tr>")
		for col := 0; col < columnCount; col++ {
			html.WriteString("<td style='border: 1px solid #ddd; padding: 8px;'>")
			html.WriteString(e.model.CellValue(row, col))
			html.WriteString("</td>")
		}
		html.WriteString("</tr>")
	}
	html.WriteString("</tbody>")

	html.WriteString("</table>")

	return html.String()
}

// CSV renders the model as comma-delimited text, one line per row. A header
// line of quoted field names is emitted only when the field-name invariant
// holds. Values are quoted iff they contain a comma.
func (e *Exporter) CSV() string {
	var csv strings.Builder

	rowCount := e.model.RowCount()
	columnCount := e.model.ColumnCount()

	if e.model.UseFields() {
		for col := 0; col < columnCount; col++ {
			if col > 0 {
				csv.WriteString(",")
			}
			csv.WriteString("\"" + e.model.fieldNames[col] + "\"")
		}
		csv.WriteString("\n")
	}

	for row := 0; row < rowCount; row++ {
		for col := 0; col < columnCount; col++ {
			if col > 0 {
				csv.WriteString(",")
			}
			value := e.model.CellValue(row, col)
			// Quote the value if it contains a comma
			if strings.Contains(value, ",") {
				value = "\"" + value + "\""
			}
			csv.WriteString(value)
		}
		csv.WriteString("\n")
	}

	return csv.String()
}

// JSON renders the model as an array of per-row objects. Keys are the field
// names when the invariant holds, display headers otherwise. convert, when
// non-nil, re-types values per column before serialization.
func (e *Exporter) JSON(convert ValueConverter) string {
	rowCount := e.model.RowCount()
	columnCount := e.model.ColumnCount()
	useFields := e.model.UseFields()

	rows := make([]map[string]interface{}, 0, rowCount)
	for row := 0; row < rowCount; row++ {
		obj := make(map[string]interface{}, columnCount)
		for col := 0; col < columnCount; col++ {
			key := e.headerLabel(col)
			if useFields {
				key = e.model.fieldNames[col]
			}
			var value interface{} = e.model.CellValue(row, col)
			if convert != nil {
				value = convert(col, e.model.CellValue(row, col))
			}
			obj[key] = value
		}
		rows = append(rows, obj)
	}

	data, err := json.Marshal(rows)
	if err != nil {
		e.model.logger.Error(CatExport, "json encoding failed: %v", err)
		return "[]"
	}
	return string(data)
}

// PrintDocument wraps the HTML table with a centered title/logo block for the
// print and preview paths. Empty title and logo produce just the block shell.
func (e *Exporter) PrintDocument(title, logoURL string) string {
	var html strings.Builder

	html.WriteString(`<div style="text-align: center; margin-bottom:16px;">`)
	if title != "" {
		html.WriteString(`<h1 style="font-size: 18px; margin-bottom: 4px;">` + title + `</h1>`)
	}
	if logoURL != "" {
		html.WriteString(fmt.Sprintf(`<div style="display: inline-block;"><img src="%s" width="64" height="64" /></div>`, logoURL))
	}
	html.WriteString("<br/> </div>")
	html.WriteString(e.HTML())

	return html.String()
}

// WriteFile writes exported content to path. Failures are logged and
// swallowed; export is best-effort by contract.
func (e *Exporter) WriteFile(path, content string) {
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		e.model.logger.Error(CatExport, "could not write %s: %v", path, err)
	}
}
