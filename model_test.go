package tablekit

import (
	"reflect"
	"testing"
)

func sampleModel() *Model {
	m := NewModel(Options{DisabledColumns: []int{0, 1}})
	m.SetHorizontalHeaders(
		[]string{"ID", "Name"},
		[]string{"id", "name"},
	)
	m.SetRows([][]string{
		{"1", "Abiira"},
		{"2", "Dan"},
	})
	return m
}

func TestSetRowsRoundTrip(t *testing.T) {
	m := sampleModel()

	want := [][]string{{"1", "Abiira"}, {"2", "Dan"}}
	got := m.Rows()

	if !reflect.DeepEqual(got, want) {
		t.Errorf("Rows() = %v, want %v", got, want)
	}
}

func TestSetRowsReplacesExistingData(t *testing.T) {
	m := sampleModel()
	m.SetRows([][]string{{"9", "Replaced"}})

	if m.RowCount() != 1 {
		t.Fatalf("Expected 1 row after replace, got %d", m.RowCount())
	}
	if m.CellValue(0, 1) != "Replaced" {
		t.Errorf("Expected replaced value, got %q", m.CellValue(0, 1))
	}
}

func TestAppendRowPadsShortRows(t *testing.T) {
	m := sampleModel()
	m.AppendRow([]string{"3"})

	row, ok := m.Row(2)
	if !ok {
		t.Fatal("Appended row not found")
	}
	if row[1] != "" {
		t.Errorf("Expected empty padding cell, got %q", row[1])
	}
}

func TestAppendRows(t *testing.T) {
	m := sampleModel()
	m.AppendRows([][]string{{"3", "C"}, {"4", "D"}})

	if m.RowCount() != 4 {
		t.Errorf("Expected 4 rows, got %d", m.RowCount())
	}
	if m.CellValue(3, 1) != "D" {
		t.Errorf("Expected D, got %q", m.CellValue(3, 1))
	}
}

func TestDeleteRowOutOfRangeIsNoOp(t *testing.T) {
	m := sampleModel()
	before := m.Rows()

	m.DeleteRow(-1)
	m.DeleteRow(2)
	m.DeleteRow(100)

	if !reflect.DeepEqual(m.Rows(), before) {
		t.Error("Out-of-range delete changed the model")
	}
}

func TestDeleteRow(t *testing.T) {
	m := sampleModel()
	m.DeleteRow(0)

	if m.RowCount() != 1 {
		t.Fatalf("Expected 1 row, got %d", m.RowCount())
	}
	if m.CellValue(0, 0) != "2" {
		t.Errorf("Expected remaining row to shift up, got %q", m.CellValue(0, 0))
	}
}

func TestClearKeepsHeaders(t *testing.T) {
	m := sampleModel()
	m.Clear()

	if m.RowCount() != 0 {
		t.Errorf("Expected 0 rows, got %d", m.RowCount())
	}
	if len(m.Headers()) != 2 {
		t.Errorf("Expected headers to survive Clear, got %v", m.Headers())
	}
}

func TestFlagsPolicy(t *testing.T) {
	m := NewModel(Options{
		EditableColumns: []int{1},
		DisabledColumns: []int{0},
	})
	m.SetRows([][]string{{"a", "b", "c"}})

	if got := m.Flags(5, 0); got != FlagNone {
		t.Errorf("Invalid index flags = %v, want FlagNone", got)
	}
	if got := m.Flags(0, 7); got != FlagNone {
		t.Errorf("Invalid column flags = %v, want FlagNone", got)
	}

	editable := m.Flags(0, 1)
	if !editable.Has(FlagSelectable | FlagEditable | FlagEnabled) {
		t.Errorf("Editable column flags = %v", editable)
	}

	disabled := m.Flags(0, 0)
	if !disabled.Has(FlagSelectable | FlagEnabled) {
		t.Errorf("Disabled column flags = %v", disabled)
	}
	if disabled.Has(FlagEditable) {
		t.Error("Disabled column must not be editable")
	}

	if got := m.Flags(0, 2); got != FlagDefault {
		t.Errorf("Unlisted column flags = %v, want FlagDefault", got)
	}
}

func TestUseFieldsInvariant(t *testing.T) {
	m := sampleModel()
	if !m.UseFields() {
		t.Error("Expected field names to be usable")
	}

	m.SetFieldNames([]string{"id"})
	if m.UseFields() {
		t.Error("Short field-name list must disable field keys")
	}
	if got := m.ExportKeys(); !reflect.DeepEqual(got, []string{"ID", "Name"}) {
		t.Errorf("ExportKeys fallback = %v, want display headers", got)
	}
}

func TestSetCellEmitsRowUpdated(t *testing.T) {
	m := sampleModel()

	var gotRow, gotCol int
	var gotData []string
	calls := 0
	m.Events().OnRowUpdated(func(row, col int, rowData []string) {
		calls++
		gotRow, gotCol, gotData = row, col, rowData
	})

	m.SetCell(1, 1, "Daniel")

	if calls != 1 {
		t.Fatalf("Expected 1 notification, got %d", calls)
	}
	if gotRow != 1 || gotCol != 1 {
		t.Errorf("Notification index = (%d,%d), want (1,1)", gotRow, gotCol)
	}
	if !reflect.DeepEqual(gotData, []string{"2", "Daniel"}) {
		t.Errorf("Notification row data = %v", gotData)
	}
}

func TestSetCellOutOfRangeIsNoOp(t *testing.T) {
	m := sampleModel()
	calls := 0
	m.Events().OnRowUpdated(func(int, int, []string) { calls++ })

	m.SetCell(9, 0, "x")
	m.SetCell(0, 9, "x")

	if calls != 0 {
		t.Errorf("Expected no notifications, got %d", calls)
	}
}

func TestCellAttributes(t *testing.T) {
	m := sampleModel()
	m.SetCellAttr(0, 0, RoleBackground, "#ff0000")

	cell, ok := m.CellAt(0, 0)
	if !ok {
		t.Fatal("Cell not found")
	}
	if v, ok := cell.Attr(RoleBackground); !ok || v != "#ff0000" {
		t.Errorf("Background attr = %q, %v", v, ok)
	}

	cell.ClearAttr(RoleBackground)
	if _, ok := cell.Attr(RoleBackground); ok {
		t.Error("Attribute survived ClearAttr")
	}
}

func TestCopyTabbed(t *testing.T) {
	m := sampleModel()

	text, ok := m.CopyTabbed(0)
	if !ok || text != "1\tAbiira" {
		t.Errorf("CopyTabbed = %q, %v", text, ok)
	}
	if _, ok := m.CopyTabbed(5); ok {
		t.Error("CopyTabbed accepted an invalid row")
	}
}

func TestPasteTabbed(t *testing.T) {
	m := sampleModel()

	if m.PasteTabbed("too\tmany\tcolumns") {
		t.Error("Paste with 3 values into 2 columns must be ignored")
	}
	if m.PasteTabbed("") {
		t.Error("Empty paste must be ignored")
	}
	if m.RowCount() != 2 {
		t.Fatalf("Ignored pastes changed row count: %d", m.RowCount())
	}

	if !m.PasteTabbed("3\tCharity") {
		t.Fatal("Exact-width paste was rejected")
	}
	row, _ := m.Row(2)
	if !reflect.DeepEqual(row, []string{"3", "Charity"}) {
		t.Errorf("Pasted row = %v", row)
	}
}

func TestVerticalHeaders(t *testing.T) {
	m := sampleModel()
	m.SetVerticalHeaders([]string{"first", "second"})

	if got := m.VerticalHeaders(); !reflect.DeepEqual(got, []string{"first", "second"}) {
		t.Errorf("VerticalHeaders = %v", got)
	}
}
