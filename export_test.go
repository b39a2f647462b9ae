package tablekit

import (
	"encoding/json"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func TestCSVWithFieldNames(t *testing.T) {
	m := sampleModel()
	got := NewExporter(m).CSV()

	want := "\"id\",\"name\"\n1,Abiira\n2,Dan\n"
	if got != want {
		t.Errorf("CSV() = %q, want %q", got, want)
	}
}

func TestCSVWithoutFieldNamesHasNoHeaderLine(t *testing.T) {
	m := sampleModel()
	m.SetFieldNames(nil)

	got := NewExporter(m).CSV()
	if got != "1,Abiira\n2,Dan\n" {
		t.Errorf("CSV() = %q", got)
	}
}

func TestCSVQuotesOnlyValuesWithCommas(t *testing.T) {
	m := NewModel(Options{})
	m.SetHorizontalHeaders([]string{"A", "B"})
	m.SetRows([][]string{
		{"plain", "has,comma"},
		{`has"quote`, "line"},
	})

	got := NewExporter(m).CSV()
	want := "plain,\"has,comma\"\nhas\"quote,line\n"
	if got != want {
		t.Errorf("CSV() = %q, want %q", got, want)
	}
}

func TestCSVRoundTripCommaFreeData(t *testing.T) {
	m := NewModel(Options{})
	m.SetHorizontalHeaders([]string{"A", "B"})
	rows := [][]string{{"1", "x"}, {"2", "y"}}
	m.SetRows(rows)

	csv := NewExporter(m).CSV()

	var back [][]string
	for _, line := range strings.Split(strings.TrimSuffix(csv, "\n"), "\n") {
		back = append(back, strings.Split(line, ","))
	}
	if !reflect.DeepEqual(back, rows) {
		t.Errorf("Round trip = %v, want %v", back, rows)
	}
}

func TestJSONUsesFieldNames(t *testing.T) {
	m := sampleModel()
	got := NewExporter(m).JSON(nil)

	want := `[{"id":"1","name":"Abiira"},{"id":"2","name":"Dan"}]`
	if got != want {
		t.Errorf("JSON() = %s, want %s", got, want)
	}
}

func TestJSONFallsBackToHeaders(t *testing.T) {
	m := sampleModel()
	m.SetFieldNames([]string{"only_one"})

	var rows []map[string]interface{}
	if err := json.Unmarshal([]byte(NewExporter(m).JSON(nil)), &rows); err != nil {
		t.Fatalf("Invalid JSON: %v", err)
	}
	if rows[0]["ID"] != "1" || rows[0]["Name"] != "Abiira" {
		t.Errorf("Expected header keys, got %v", rows[0])
	}
}

func TestJSONValueConverter(t *testing.T) {
	m := sampleModel()
	got := NewExporter(m).JSON(func(col int, value string) interface{} {
		if col == 0 {
			n := 0
			for _, c := range value {
				n = n*10 + int(c-'0')
			}
			return n
		}
		return value
	})

	want := `[{"id":1,"name":"Abiira"},{"id":2,"name":"Dan"}]`
	if got != want {
		t.Errorf("JSON() = %s, want %s", got, want)
	}
}

func TestHTMLShape(t *testing.T) {
	m := sampleModel()
	got := NewExporter(m).HTML()

	if !strings.HasPrefix(got, "<table style='border-collapse: collapse; width: 100%;'>") {
		t.Errorf("Unexpected table open: %s", got[:60])
	}
	if !strings.Contains(got, "<th style='border: 1px solid #ddd; padding: 8px; background-color: #f2f2f2;'>ID</th>") {
		t.Error("Missing styled header cell")
	}
	if !strings.Contains(got, "<td style='border: 1px solid #ddd; padding: 8px;'>Abiira</td>") {
		t.Error("Missing styled data cell")
	}
	if strings.Count(got, "<tr>") != 3 {
		t.Errorf("Expected 3 rows (1 header + 2 data), got %d", strings.Count(got, "<tr>"))
	}
}

func TestHTMLDoesNotEscapeCellContent(t *testing.T) {
	m := NewModel(Options{})
	m.SetHorizontalHeaders([]string{"A"})
	m.SetRows([][]string{{"<b>bold</b>"}})

	got := NewExporter(m).HTML()
	if !strings.Contains(got, "<b>bold</b>") {
		t.Error("Cell markup must pass through unescaped")
	}
}

func TestHTMLHeaderFallbackIsColumnNumber(t *testing.T) {
	m := NewModel(Options{})
	m.SetRows([][]string{{"a", "b"}})

	got := NewExporter(m).HTML()
	if !strings.Contains(got, ">1</th>") || !strings.Contains(got, ">2</th>") {
		t.Errorf("Expected numeric header fallback, got %s", got)
	}
}

func TestPrintDocument(t *testing.T) {
	m := sampleModel()
	e := NewExporter(m)

	doc := e.PrintDocument("Patients", "file:///logo.png")
	if !strings.Contains(doc, "<h1 style=\"font-size: 18px; margin-bottom: 4px;\">Patients</h1>") {
		t.Error("Missing title block")
	}
	if !strings.Contains(doc, `<img src="file:///logo.png" width="64" height="64" />`) {
		t.Error("Missing logo block")
	}
	if !strings.Contains(doc, e.HTML()) {
		t.Error("Print document must embed the HTML table")
	}

	bare := e.PrintDocument("", "")
	if strings.Contains(bare, "<h1") || strings.Contains(bare, "<img") {
		t.Error("Empty title/logo must omit their blocks")
	}
}

func TestWriteFile(t *testing.T) {
	m := sampleModel()
	e := NewExporter(m)

	path := filepath.Join(t.TempDir(), "data.csv")
	e.WriteFile(path, e.CSV())

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Reading back: %v", err)
	}
	if string(data) != e.CSV() {
		t.Error("File content mismatch")
	}

	// Failure path: unwritable target is logged, not returned.
	var log strings.Builder
	m.Logger().SetErrorOutput(&log)
	e.WriteFile(filepath.Join(path, "impossible", "x.csv"), "data")
	if !strings.Contains(log.String(), "could not write") {
		t.Errorf("Expected a diagnostic, got %q", log.String())
	}
}
