// Package tableviewqt provides a Qt table view over a tablekit model,
// built on the miqt bindings.
package tableviewqt

import (
	"strconv"

	"github.com/mappu/miqt/qt"

	"github.com/abiiranathan/tablekit"
)

// View is a Qt table widget bound to a tablekit.Model. Edits made through
// the view flow back into the model, and model mutations made from Go code
// are mirrored into the view on the Qt main thread.
type View struct {
	table   *qt.QTableWidget
	model   *tablekit.Model
	editors *tablekit.Editors
	filter  *tablekit.FilterProxy
	logger  *tablekit.Logger

	contextMenu        *qt.QMenu
	contextMenuEnabled bool

	// Queued event delivery. Events.post schedules at most one drain at a
	// time, so a single persistent timer is enough.
	drainTimer *qt.QTimer
	drainFn    func()

	// Print header block
	title   string
	logoURL string

	// Delegates are kept alive for the lifetime of the view; Qt does not
	// own the Go side of a delegate override.
	delegates map[int]*columnDelegate

	// Guards against itemChanged feedback while we mirror model state
	// into the table.
	syncing bool
}

// NewView creates a table view bound to model. Column editors registered on
// editors drive the per-column edit widgets; pass nil for plain line edits
// everywhere.
func NewView(model *tablekit.Model, editors *tablekit.Editors) *View {
	if editors == nil {
		editors = tablekit.NewEditors()
	}
	v := &View{
		table:              qt.NewQTableWidget2(),
		model:              model,
		editors:            editors,
		logger:             model.Logger(),
		delegates:          make(map[int]*columnDelegate),
		contextMenuEnabled: true,
	}

	v.table.SetSelectionBehavior(qt.QAbstractItemView__SelectRows)
	v.table.SetSelectionMode(qt.QAbstractItemView__SingleSelection)

	// Model events must reach handlers on the Qt main thread, after the
	// current event completes. A zero-interval single-shot timer gives the
	// queued delivery.
	v.drainTimer = qt.NewQTimer2(v.table.QObject)
	v.drainTimer.SetSingleShot(true)
	v.drainTimer.OnTimeout(func() {
		fn := v.drainFn
		v.drainFn = nil
		if fn != nil {
			fn()
		}
	})
	model.Events().SetDispatcher(func(fn func()) {
		v.drainFn = fn
		v.drainTimer.Start(0)
	})

	// The filter proxy subscribes first so its row set is already
	// recomputed by the time our reload handlers run.
	v.filter = tablekit.NewFilterProxy(model)

	model.Events().OnRowsReset(func() {
		v.reload()
	})
	model.Events().OnHeadersReset(func() {
		v.reloadHeaders()
	})
	model.Events().OnRowUpdated(func(row, col int, rowData []string) {
		v.syncRow(row, rowData)
		// The filter proxy has already recomputed its row set, so an edit
		// that changes whether the row matches takes effect here.
		v.applyFilter()
	})

	v.table.OnItemChanged(func(item *qt.QTableWidgetItem) {
		v.itemChanged(item)
	})
	v.table.OnItemSelectionChanged(func() {
		row := v.table.CurrentRow()
		if row < 0 {
			return
		}
		rowData, ok := v.model.Row(row)
		if !ok {
			return
		}
		v.model.Events().PostSelectionChanged(row, v.table.CurrentColumn(), rowData)
	})
	v.table.OnCellDoubleClicked(func(row int, col int) {
		rowData, ok := v.model.Row(row)
		if !ok {
			return
		}
		v.model.Events().PostDoubleClicked(row, col, rowData)
	})

	v.table.OnKeyPressEvent(func(super func(event *qt.QKeyEvent), event *qt.QKeyEvent) {
		v.keyPressEvent(super, event)
	})

	v.contextMenu = qt.NewQMenu(v.table.QWidget)

	copyAction := v.contextMenu.AddAction("Copy")
	copyAction.OnTriggered(func() {
		v.CopyCurrentRow()
	})

	pasteAction := v.contextMenu.AddAction("Paste")
	pasteAction.OnTriggered(func() {
		v.PasteRow()
	})

	v.contextMenu.AddSeparator()

	removeAction := v.contextMenu.AddAction("Delete Row")
	removeAction.OnTriggered(func() {
		v.RemoveCurrentRow()
	})

	v.table.SetContextMenuPolicy(qt.CustomContextMenu)
	v.table.OnCustomContextMenuRequested(func(pos *qt.QPoint) {
		if !v.contextMenuEnabled {
			return
		}
		v.contextMenu.ExecWithPos(v.table.MapToGlobal(pos))
	})

	v.reloadHeaders()
	v.reload()

	return v
}

// Widget returns the underlying Qt widget for embedding in layouts.
func (v *View) Widget() *qt.QWidget {
	return v.table.QWidget
}

// Table returns the underlying QTableWidget for direct customization.
func (v *View) Table() *qt.QTableWidget {
	return v.table
}

// Model returns the bound model.
func (v *View) Model() *tablekit.Model {
	return v.model
}

// SetColumnEditor installs an edit widget for a column. The same spec is
// registered on the shared editor set so text normalization stays
// consistent across frontends.
func (v *View) SetColumnEditor(col int, spec tablekit.EditorSpec) {
	v.editors.SetColumnEditor(col, spec)
	d := newColumnDelegate(v, spec)
	v.delegates[col] = d
	v.table.SetItemDelegateForColumn(col, d.QStyledItemDelegate.QAbstractItemDelegate)
}

// SetPrintHeader sets the title and logo URL rendered above the table when
// printing.
func (v *View) SetPrintHeader(title, logoURL string) {
	v.title = title
	v.logoURL = logoURL
}

// FitHeaders sizes columns to their contents.
func (v *View) FitHeaders() {
	v.table.HorizontalHeader().SetSectionResizeMode(qt.QHeaderView__ResizeToContents)
}

// StretchHeaders stretches columns to fill the available width.
func (v *View) StretchHeaders() {
	v.table.HorizontalHeader().SetSectionResizeMode(qt.QHeaderView__Stretch)
}

// InteractiveHeaders lets the user resize columns by hand.
func (v *View) InteractiveHeaders() {
	v.table.HorizontalHeader().SetSectionResizeMode(qt.QHeaderView__Interactive)
}

// Filter hides the rows whose cells do not match pattern. An empty pattern
// shows all rows again. Pattern is a regular expression; an invalid pattern
// falls back to a literal substring match.
func (v *View) Filter(pattern string, caseSensitive bool) {
	v.filter.Filter(pattern, caseSensitive)
	v.applyFilter()
}

// SetFilterKeyColumn restricts filtering to a single column. Pass -1 to
// match against every column.
func (v *View) SetFilterKeyColumn(col int) {
	v.filter.SetFilterKeyColumn(col)
	v.applyFilter()
}

func (v *View) applyFilter() {
	visible := make(map[int]bool, v.filter.RowCount())
	for i := 0; i < v.filter.RowCount(); i++ {
		visible[v.filter.SourceRow(i)] = true
	}
	for r := 0; r < v.model.RowCount(); r++ {
		v.table.SetRowHidden(r, !visible[r])
	}
}

// SetContextMenuEnabled toggles the right-click menu. The menu starts
// enabled.
func (v *View) SetContextMenuEnabled(enabled bool) {
	v.contextMenuEnabled = enabled
}

// SelectRowRange replaces the current selection with every row from first to
// last inclusive.
func (v *View) SelectRowRange(first, last int) {
	first, last, ok := rowRangeBounds(first, last, v.model.RowCount())
	if !ok {
		return
	}
	cols := v.model.ColumnCount()
	if cols == 0 {
		return
	}
	v.table.ClearSelection()
	rng := qt.NewQTableWidgetSelectionRange2(first, 0, last, cols-1)
	v.table.SetRangeSelected(rng, true)
}

// rowRangeBounds orders and clamps a row range to [0, rows). ok is false
// when nothing of the range survives the clamp.
func rowRangeBounds(first, last, rows int) (int, int, bool) {
	if first > last {
		first, last = last, first
	}
	if first < 0 {
		first = 0
	}
	if last >= rows {
		last = rows - 1
	}
	return first, last, first <= last
}

// CurrentRow returns the selected row index, or false when nothing is
// selected.
func (v *View) CurrentRow() (int, bool) {
	row := v.table.CurrentRow()
	if row < 0 {
		return 0, false
	}
	return row, true
}

// SelectedRows returns the values of every selected row in row order.
func (v *View) SelectedRows() [][]string {
	selModel := v.table.SelectionModel()
	if selModel == nil {
		return nil
	}
	parent := qt.NewQModelIndex()
	var out [][]string
	for r := 0; r < v.model.RowCount(); r++ {
		if !selModel.IsRowSelected(r, parent) {
			continue
		}
		if rowData, ok := v.model.Row(r); ok {
			out = append(out, rowData)
		}
	}
	return out
}

// CopyCurrentRow copies the selected row to the clipboard, cells joined by
// tabs. Does nothing without a selection.
func (v *View) CopyCurrentRow() {
	row := v.table.CurrentRow()
	if row < 0 {
		return
	}
	text, ok := v.model.CopyTabbed(row)
	if !ok {
		return
	}
	clipboard := qt.QGuiApplication_Clipboard()
	clipboard.SetText(text)
}

// PasteRow appends the clipboard contents as a new row. The text is split
// on tabs and ignored unless the field count matches the column count.
func (v *View) PasteRow() {
	clipboard := qt.QGuiApplication_Clipboard()
	v.model.PasteTabbed(clipboard.Text())
}

// RemoveCurrentRow deletes the selected row. Does nothing without a
// selection.
func (v *View) RemoveCurrentRow() {
	row := v.table.CurrentRow()
	if row < 0 {
		return
	}
	v.model.DeleteRow(row)
}

func (v *View) keyPressEvent(super func(event *qt.QKeyEvent), event *qt.QKeyEvent) {
	if preview, ok := printShortcut(qt.Key(event.Key()), event.Modifiers()); ok {
		if preview {
			v.PrintPreview()
		} else {
			v.Print()
		}
		return
	}
	super(event)
}

// printShortcut matches Ctrl+P (print) and Ctrl+Shift+P (preview). The
// modifier set must match exactly, so Ctrl+Alt+P falls through to the
// default handling.
func printShortcut(key qt.Key, mods qt.KeyboardModifier) (preview, ok bool) {
	if key != qt.Key_P {
		return false, false
	}
	switch mods {
	case qt.ControlModifier:
		return false, true
	case qt.ControlModifier | qt.ShiftModifier:
		return true, true
	}
	return false, false
}

// itemChanged handles an edit committed through the table. The text is
// normalized by the column's editor spec before it reaches the model, so
// hand-typed garbage in a date or numeric column is cleared rather than
// stored.
func (v *View) itemChanged(item *qt.QTableWidgetItem) {
	if v.syncing {
		return
	}
	row, col := item.Row(), item.Column()
	text := item.Text()
	if spec, ok := v.editors.ColumnEditor(col); ok {
		norm := spec.Normalize(text)
		if norm != text {
			v.syncing = true
			item.SetText(norm)
			v.syncing = false
			text = norm
		}
	}
	v.model.SetCell(row, col, text)
}

func (v *View) reloadHeaders() {
	v.syncing = true
	defer func() { v.syncing = false }()

	v.table.SetColumnCount(v.model.ColumnCount())
	if headers := v.model.Headers(); len(headers) > 0 {
		v.table.SetHorizontalHeaderLabels(headers)
	}
	if vheaders := v.model.VerticalHeaders(); len(vheaders) > 0 {
		v.table.SetVerticalHeaderLabels(vheaders)
	}
}

func (v *View) reload() {
	v.syncing = true

	v.table.SetColumnCount(v.model.ColumnCount())
	v.table.SetRowCount(v.model.RowCount())
	for r := 0; r < v.model.RowCount(); r++ {
		for c := 0; c < v.model.ColumnCount(); c++ {
			item := qt.NewQTableWidgetItem3(v.model.CellValue(r, c))
			if flags := v.model.Flags(r, c); !flags.Has(tablekit.FlagDefault) {
				item.SetFlags(itemFlags(flags))
			}
			v.applyAttrs(item, r, c)
			v.table.SetItem(r, c, item)
		}
	}

	v.syncing = false
	v.applyFilter()
}

func (v *View) syncRow(row int, rowData []string) {
	if row < 0 || row >= v.table.RowCount() {
		return
	}
	v.syncing = true
	defer func() { v.syncing = false }()

	for c := 0; c < len(rowData) && c < v.table.ColumnCount(); c++ {
		item := v.table.Item(row, c)
		if item == nil {
			continue
		}
		item.SetText(rowData[c])
		v.applyAttrs(item, row, c)
	}
}

func (v *View) applyAttrs(item *qt.QTableWidgetItem, row, col int) {
	cell, ok := v.model.CellAt(row, col)
	if !ok {
		return
	}
	if tip, ok := cell.Attr(tablekit.RoleToolTip); ok {
		item.SetToolTip(tip)
	}
	if bg, ok := cell.Attr(tablekit.RoleBackground); ok {
		if color, ok := parseHexColor(bg); ok {
			item.SetBackground(qt.NewQBrush3(color))
		}
	}
	if fg, ok := cell.Attr(tablekit.RoleForeground); ok {
		if color, ok := parseHexColor(fg); ok {
			item.SetForeground(qt.NewQBrush3(color))
		}
	}
}

func itemFlags(f tablekit.CellFlags) qt.ItemFlag {
	var out qt.ItemFlag
	if f.Has(tablekit.FlagSelectable) {
		out |= qt.ItemIsSelectable
	}
	if f.Has(tablekit.FlagEditable) {
		out |= qt.ItemIsEditable
	}
	if f.Has(tablekit.FlagEnabled) {
		out |= qt.ItemIsEnabled
	}
	return out
}

// parseHexColor parses "#rgb" and "#rrggbb" color strings.
func parseHexColor(s string) (*qt.QColor, bool) {
	if len(s) == 0 || s[0] != '#' {
		return nil, false
	}
	hex := s[1:]
	var r, g, b int64
	var err error
	switch len(hex) {
	case 3:
		r, err = strconv.ParseInt(hex[0:1]+hex[0:1], 16, 32)
		if err == nil {
			g, err = strconv.ParseInt(hex[1:2]+hex[1:2], 16, 32)
		}
		if err == nil {
			b, err = strconv.ParseInt(hex[2:3]+hex[2:3], 16, 32)
		}
	case 6:
		r, err = strconv.ParseInt(hex[0:2], 16, 32)
		if err == nil {
			g, err = strconv.ParseInt(hex[2:4], 16, 32)
		}
		if err == nil {
			b, err = strconv.ParseInt(hex[4:6], 16, 32)
		}
	default:
		return nil, false
	}
	if err != nil {
		return nil, false
	}
	return qt.NewQColor3(int(r), int(g), int(b)), true
}
