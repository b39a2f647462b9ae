package tablekit

import (
	"reflect"
	"testing"
)

func filterModel() *Model {
	m := NewModel(Options{})
	m.SetHorizontalHeaders([]string{"ID", "Name", "City"})
	m.SetRows([][]string{
		{"1", "Abiira Nathan", "Kampala"},
		{"2", "Kwikiriza Dan", "Mbarara"},
		{"3", "Jane Doe", "kampala"},
	})
	return m
}

func TestFilterEmptyPatternShowsEverything(t *testing.T) {
	p := NewFilterProxy(filterModel())
	if p.RowCount() != 3 {
		t.Errorf("RowCount = %d, want 3", p.RowCount())
	}
}

func TestFilterCaseInsensitiveByDefault(t *testing.T) {
	p := NewFilterProxy(filterModel())
	p.Filter("kampala", false)

	if p.RowCount() != 2 {
		t.Fatalf("RowCount = %d, want 2", p.RowCount())
	}
	if p.SourceRow(0) != 0 || p.SourceRow(1) != 2 {
		t.Errorf("Source mapping = %d, %d", p.SourceRow(0), p.SourceRow(1))
	}
}

func TestFilterCaseSensitive(t *testing.T) {
	p := NewFilterProxy(filterModel())
	p.Filter("kampala", true)

	if p.RowCount() != 1 {
		t.Fatalf("RowCount = %d, want 1", p.RowCount())
	}
	row, _ := p.Row(0)
	if row[0] != "3" {
		t.Errorf("Matched row = %v", row)
	}
}

func TestFilterKeyColumn(t *testing.T) {
	p := NewFilterProxy(filterModel())
	p.SetFilterKeyColumn(1)
	p.Filter("an", false)

	// "an" appears in "Abiira Nathan", "Kwikiriza Dan" and "Jane Doe" names.
	if p.RowCount() != 3 {
		t.Fatalf("RowCount = %d, want 3", p.RowCount())
	}

	p.Filter("Dan", false)
	if p.RowCount() != 1 || p.SourceRow(0) != 1 {
		t.Errorf("Column filter matched %d rows", p.RowCount())
	}

	// Out-of-range key column is ignored.
	p.SetFilterKeyColumn(12)
	if p.RowCount() != 1 {
		t.Error("Invalid key column changed the filter")
	}
}

func TestFilterRegexPattern(t *testing.T) {
	p := NewFilterProxy(filterModel())
	p.Filter("^[12]$", false)

	if p.RowCount() != 2 {
		t.Errorf("RowCount = %d, want 2", p.RowCount())
	}
}

func TestFilterInvalidPatternMatchesLiterally(t *testing.T) {
	m := filterModel()
	m.AppendRow([]string{"4", "a(b", "Gulu"})

	p := NewFilterProxy(m)
	p.Filter("a(b", false)

	if p.RowCount() != 1 {
		t.Fatalf("RowCount = %d, want 1", p.RowCount())
	}
	row, _ := p.Row(0)
	if row[1] != "a(b" {
		t.Errorf("Matched row = %v", row)
	}
}

func TestFilterTracksModelChanges(t *testing.T) {
	m := filterModel()
	p := NewFilterProxy(m)
	p.Filter("Mbarara", false)

	if p.RowCount() != 1 {
		t.Fatalf("RowCount = %d, want 1", p.RowCount())
	}

	m.AppendRow([]string{"4", "Okello", "Mbarara"})
	if p.RowCount() != 2 {
		t.Errorf("Proxy missed appended row: %d", p.RowCount())
	}

	m.Clear()
	if p.RowCount() != 0 {
		t.Errorf("Proxy missed clear: %d", p.RowCount())
	}
}

func TestFilterTracksCellEdits(t *testing.T) {
	m := filterModel()
	p := NewFilterProxy(m)
	p.Filter("Mbarara", false)

	if p.RowCount() != 1 {
		t.Fatalf("RowCount = %d, want 1", p.RowCount())
	}

	m.SetCell(1, 2, "Gulu")
	if p.RowCount() != 0 {
		t.Errorf("Proxy kept row after edit broke the match: %d", p.RowCount())
	}

	m.SetCell(0, 2, "Mbarara")
	if p.RowCount() != 1 {
		t.Errorf("Proxy missed row after edit made the match: %d", p.RowCount())
	}
}

func TestFilterRowsSnapshot(t *testing.T) {
	p := NewFilterProxy(filterModel())
	p.Filter("^2$", false)

	want := [][]string{{"2", "Kwikiriza Dan", "Mbarara"}}
	if got := p.Rows(); !reflect.DeepEqual(got, want) {
		t.Errorf("Rows = %v, want %v", got, want)
	}
}
