// Package tableviewfyne provides a Fyne table over a tablekit model.
package tableviewfyne

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/abiiranathan/tablekit"
)

// View is a Fyne table bound to a tablekit.Model. Row 0 renders the
// horizontal headers; data rows follow. Selecting a cell in an editable
// column opens an entry dialog whose result is normalized by the column's
// editor spec.
type View struct {
	table   *widget.Table
	model   *tablekit.Model
	editors *tablekit.Editors
	filter  *tablekit.FilterProxy
	logger  *tablekit.Logger
	window  fyne.Window
}

// NewView creates a table bound to model. The window is used as the parent
// for cell edit dialogs; pass nil to disable in-place editing.
func NewView(model *tablekit.Model, editors *tablekit.Editors, window fyne.Window) *View {
	if editors == nil {
		editors = tablekit.NewEditors()
	}
	v := &View{
		model:   model,
		editors: editors,
		logger:  model.Logger(),
		window:  window,
	}

	// Model events must reach handlers on the Fyne main thread.
	model.Events().SetDispatcher(func(fn func()) {
		fyne.Do(fn)
	})

	v.filter = tablekit.NewFilterProxy(model)

	v.table = widget.NewTable(
		func() (int, int) {
			return v.filter.RowCount() + 1, v.model.ColumnCount()
		},
		func() fyne.CanvasObject { return widget.NewLabel("") },
		func(cell widget.TableCellID, o fyne.CanvasObject) {
			lbl := o.(*widget.Label)
			if cell.Row == 0 {
				lbl.TextStyle = fyne.TextStyle{Bold: true}
				lbl.SetText(v.headerText(cell.Col))
				return
			}
			lbl.TextStyle = fyne.TextStyle{}
			rowData, ok := v.filter.Row(cell.Row - 1)
			if !ok || cell.Col >= len(rowData) {
				lbl.SetText("")
				return
			}
			lbl.SetText(rowData[cell.Col])
		},
	)

	v.table.OnSelected = func(id widget.TableCellID) {
		if id.Row == 0 {
			return
		}
		row := v.filter.SourceRow(id.Row - 1)
		if row < 0 {
			return
		}
		rowData, ok := v.model.Row(row)
		if !ok {
			return
		}
		v.model.Events().PostSelectionChanged(row, id.Col, rowData)
		v.maybeEdit(row, id.Col)
	}

	model.Events().OnRowsReset(func() {
		v.table.Refresh()
	})
	model.Events().OnHeadersReset(func() {
		v.table.Refresh()
	})
	model.Events().OnRowUpdated(func(row, col int, rowData []string) {
		v.table.Refresh()
	})

	return v
}

// Table returns the underlying Fyne table for embedding in containers.
func (v *View) Table() *widget.Table {
	return v.table
}

// Model returns the bound model.
func (v *View) Model() *tablekit.Model {
	return v.model
}

// Filter hides the rows whose cells do not match pattern. An empty pattern
// shows all rows again.
func (v *View) Filter(pattern string, caseSensitive bool) {
	v.filter.Filter(pattern, caseSensitive)
	v.table.Refresh()
}

// SetFilterKeyColumn restricts filtering to a single column. Pass -1 to
// match against every column.
func (v *View) SetFilterKeyColumn(col int) {
	v.filter.SetFilterKeyColumn(col)
	v.table.Refresh()
}

func (v *View) headerText(col int) string {
	headers := v.model.Headers()
	if col < len(headers) {
		return headers[col]
	}
	return ""
}

// maybeEdit opens an entry dialog for an editable cell.
func (v *View) maybeEdit(row, col int) {
	if v.window == nil {
		return
	}
	flags := v.model.Flags(row, col)
	if !flags.Has(tablekit.FlagEditable) && !flags.Has(tablekit.FlagDefault) {
		return
	}
	title := v.headerText(col)
	if title == "" {
		title = "Edit"
	}
	entry := widget.NewEntry()
	entry.SetText(v.model.CellValue(row, col))
	d := dialog.NewForm("Edit "+title, "Save", "Cancel",
		[]*widget.FormItem{widget.NewFormItem(title, entry)},
		func(ok bool) {
			if !ok {
				return
			}
			text := entry.Text
			if spec, found := v.editors.ColumnEditor(col); found {
				text = spec.Normalize(text)
			}
			v.model.SetCell(row, col, text)
		}, v.window)
	d.Show()
}
