// Package tableviewgtk provides a GTK3 tree view over a tablekit model,
// built on the gotk3 bindings.
package tableviewgtk

import (
	"fmt"
	"strconv"

	"github.com/gotk3/gotk3/gdk"
	"github.com/gotk3/gotk3/glib"
	"github.com/gotk3/gotk3/gtk"

	"github.com/abiiranathan/tablekit"
)

// View is a GTK tree view bound to a tablekit.Model. Cell edits flow back
// into the model, and model mutations are mirrored into the list store on
// the GTK main loop.
type View struct {
	box      *gtk.Box
	treeView *gtk.TreeView
	store    *gtk.ListStore
	model    *tablekit.Model
	editors  *tablekit.Editors
	filter   *tablekit.FilterProxy
	logger   *tablekit.Logger

	clipboard   *gtk.Clipboard
	contextMenu *gtk.Menu

	columns []*gtk.TreeViewColumn

	// viewRows maps visible store rows back to model rows once a filter
	// is active.
	viewRows []int

	syncing bool
}

// NewView creates a tree view bound to model. Column editors registered on
// editors normalize the text a user commits into typed columns.
func NewView(model *tablekit.Model, editors *tablekit.Editors) (*View, error) {
	if editors == nil {
		editors = tablekit.NewEditors()
	}
	v := &View{
		model:   model,
		editors: editors,
		logger:  model.Logger(),
	}

	var err error
	v.box, err = gtk.BoxNew(gtk.ORIENTATION_VERTICAL, 0)
	if err != nil {
		return nil, fmt.Errorf("failed to create box: %w", err)
	}

	v.treeView, err = gtk.TreeViewNew()
	if err != nil {
		return nil, fmt.Errorf("failed to create tree view: %w", err)
	}

	scroller, err := gtk.ScrolledWindowNew(nil, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create scrolled window: %w", err)
	}
	scroller.Add(v.treeView)
	v.box.PackStart(scroller, true, true, 0)

	v.clipboard, _ = gtk.ClipboardGet(gdk.SELECTION_CLIPBOARD)

	// Model events must reach handlers on the GTK main loop.
	model.Events().SetDispatcher(func(fn func()) {
		glib.IdleAdd(fn)
	})

	// The filter proxy subscribes first so its row set is current by the
	// time rebuild runs.
	v.filter = tablekit.NewFilterProxy(model)

	model.Events().OnRowsReset(func() {
		v.rebuildRows()
	})
	model.Events().OnHeadersReset(func() {
		if err := v.rebuildColumns(); err != nil {
			v.logger.Warn(tablekit.CatGtk, "column rebuild failed: %v", err)
			return
		}
		v.rebuildRows()
	})
	model.Events().OnRowUpdated(func(row, col int, rowData []string) {
		v.rebuildRows()
	})

	selection, err := v.treeView.GetSelection()
	if err != nil {
		return nil, fmt.Errorf("failed to get selection: %w", err)
	}
	selection.SetMode(gtk.SELECTION_SINGLE)
	selection.Connect("changed", func() {
		row, ok := v.selectedModelRow()
		if !ok {
			return
		}
		rowData, ok := v.model.Row(row)
		if !ok {
			return
		}
		v.model.Events().PostSelectionChanged(row, 0, rowData)
	})

	v.treeView.Connect("row-activated", func(tv *gtk.TreeView, path *gtk.TreePath, col *gtk.TreeViewColumn) {
		row, ok := v.modelRow(path.String())
		if !ok {
			return
		}
		rowData, ok := v.model.Row(row)
		if !ok {
			return
		}
		v.model.Events().PostDoubleClicked(row, 0, rowData)
	})

	if err := v.buildContextMenu(); err != nil {
		return nil, err
	}
	v.treeView.Connect("button-press-event", func(tv *gtk.TreeView, ev *gdk.Event) bool {
		btn := gdk.EventButtonNewFromEvent(ev)
		if btn.Button() == gdk.BUTTON_SECONDARY {
			v.contextMenu.PopupAtPointer(ev)
			return true
		}
		return false
	})

	if err := v.rebuildColumns(); err != nil {
		return nil, err
	}
	v.rebuildRows()

	return v, nil
}

// Box returns the container widget for embedding in layouts.
func (v *View) Box() *gtk.Box {
	return v.box
}

// TreeView returns the underlying tree view for direct customization.
func (v *View) TreeView() *gtk.TreeView {
	return v.treeView
}

// Model returns the bound model.
func (v *View) Model() *tablekit.Model {
	return v.model
}

// Filter hides the rows whose cells do not match pattern. An empty pattern
// shows all rows again.
func (v *View) Filter(pattern string, caseSensitive bool) {
	v.filter.Filter(pattern, caseSensitive)
	v.rebuildRows()
}

// SetFilterKeyColumn restricts filtering to a single column. Pass -1 to
// match against every column.
func (v *View) SetFilterKeyColumn(col int) {
	v.filter.SetFilterKeyColumn(col)
	v.rebuildRows()
}

// CurrentRow returns the selected model row index, or false when nothing
// is selected.
func (v *View) CurrentRow() (int, bool) {
	return v.selectedModelRow()
}

// CopyCurrentRow copies the selected row to the clipboard, cells joined by
// tabs. Does nothing without a selection.
func (v *View) CopyCurrentRow() {
	row, ok := v.selectedModelRow()
	if !ok {
		return
	}
	text, ok := v.model.CopyTabbed(row)
	if !ok {
		return
	}
	if v.clipboard != nil {
		v.clipboard.SetText(text)
	}
}

// PasteRow appends the clipboard contents as a new row. The text is split
// on tabs and ignored unless the field count matches the column count.
func (v *View) PasteRow() {
	if v.clipboard == nil {
		return
	}
	text, err := v.clipboard.WaitForText()
	if err != nil {
		v.logger.Debug(tablekit.CatGtk, "clipboard read failed: %v", err)
		return
	}
	v.model.PasteTabbed(text)
}

// RemoveCurrentRow deletes the selected row. Does nothing without a
// selection.
func (v *View) RemoveCurrentRow() {
	row, ok := v.selectedModelRow()
	if !ok {
		return
	}
	v.model.DeleteRow(row)
}

func (v *View) buildContextMenu() error {
	var err error
	v.contextMenu, err = gtk.MenuNew()
	if err != nil {
		return fmt.Errorf("failed to create menu: %w", err)
	}

	copyItem, err := gtk.MenuItemNewWithLabel("Copy")
	if err != nil {
		return fmt.Errorf("failed to create menu item: %w", err)
	}
	copyItem.Connect("activate", func() {
		v.CopyCurrentRow()
	})
	v.contextMenu.Append(copyItem)

	pasteItem, err := gtk.MenuItemNewWithLabel("Paste")
	if err != nil {
		return fmt.Errorf("failed to create menu item: %w", err)
	}
	pasteItem.Connect("activate", func() {
		v.PasteRow()
	})
	v.contextMenu.Append(pasteItem)

	sep, err := gtk.SeparatorMenuItemNew()
	if err != nil {
		return fmt.Errorf("failed to create separator: %w", err)
	}
	v.contextMenu.Append(sep)

	removeItem, err := gtk.MenuItemNewWithLabel("Delete Row")
	if err != nil {
		return fmt.Errorf("failed to create menu item: %w", err)
	}
	removeItem.Connect("activate", func() {
		v.RemoveCurrentRow()
	})
	v.contextMenu.Append(removeItem)

	v.contextMenu.ShowAll()
	return nil
}

// rebuildColumns recreates the list store and tree view columns to match
// the model's column layout.
func (v *View) rebuildColumns() error {
	for _, col := range v.columns {
		v.treeView.RemoveColumn(col)
	}
	v.columns = nil

	count := v.model.ColumnCount()
	if count == 0 {
		v.store = nil
		v.treeView.SetModel(nil)
		return nil
	}

	types := make([]glib.Type, count)
	for i := range types {
		types[i] = glib.TYPE_STRING
	}
	store, err := gtk.ListStoreNew(types...)
	if err != nil {
		return fmt.Errorf("failed to create list store: %w", err)
	}
	v.store = store

	headers := v.model.Headers()
	for i := 0; i < count; i++ {
		renderer, err := gtk.CellRendererTextNew()
		if err != nil {
			return fmt.Errorf("failed to create cell renderer: %w", err)
		}
		// Default-policy columns stay editable, same as default item
		// flags on the Qt side.
		editable := !v.model.ColumnDisabled(i)
		if editable {
			renderer.SetProperty("editable", true)
			col := i
			renderer.Connect("edited", func(r *gtk.CellRendererText, pathStr, newText string) {
				v.cellEdited(col, pathStr, newText)
			})
		}

		title := strconv.Itoa(i + 1)
		if i < len(headers) {
			title = headers[i]
		}
		column, err := gtk.TreeViewColumnNewWithAttribute(title, renderer, "text", i)
		if err != nil {
			return fmt.Errorf("failed to create column: %w", err)
		}
		column.SetResizable(true)
		v.treeView.AppendColumn(column)
		v.columns = append(v.columns, column)
	}

	v.treeView.SetModel(store)
	return nil
}

// rebuildRows refills the list store from the filtered row set.
func (v *View) rebuildRows() {
	if v.store == nil {
		if err := v.rebuildColumns(); err != nil {
			v.logger.Warn(tablekit.CatGtk, "column rebuild failed: %v", err)
			return
		}
		if v.store == nil {
			return
		}
	}

	v.syncing = true
	defer func() { v.syncing = false }()

	v.store.Clear()
	v.viewRows = v.viewRows[:0]

	count := v.model.ColumnCount()
	colIndices := make([]int, count)
	for i := range colIndices {
		colIndices[i] = i
	}

	for i := 0; i < v.filter.RowCount(); i++ {
		sourceRow := v.filter.SourceRow(i)
		rowData, ok := v.model.Row(sourceRow)
		if !ok {
			continue
		}
		values := make([]interface{}, len(rowData))
		for j, val := range rowData {
			values[j] = val
		}
		iter := v.store.Append()
		if err := v.store.Set(iter, colIndices, values); err != nil {
			v.logger.Debug(tablekit.CatGtk, "store set failed: %v", err)
		}
		v.viewRows = append(v.viewRows, sourceRow)
	}
}

// cellEdited handles an edit committed through a cell renderer. The text
// is normalized by the column's editor spec before it reaches the model.
func (v *View) cellEdited(col int, pathStr, newText string) {
	if v.syncing {
		return
	}
	row, ok := v.modelRow(pathStr)
	if !ok {
		return
	}
	if spec, ok := v.editors.ColumnEditor(col); ok {
		newText = spec.Normalize(newText)
	}
	v.model.SetCell(row, col, newText)
}

// modelRow maps a flat tree path string ("3") to a model row through the
// active filter.
func (v *View) modelRow(pathStr string) (int, bool) {
	idx, err := strconv.Atoi(pathStr)
	if err != nil {
		return 0, false
	}
	if idx < 0 || idx >= len(v.viewRows) {
		return 0, false
	}
	return v.viewRows[idx], true
}

func (v *View) selectedModelRow() (int, bool) {
	selection, err := v.treeView.GetSelection()
	if err != nil {
		return 0, false
	}
	_, iter, ok := selection.GetSelected()
	if !ok {
		return 0, false
	}
	path, err := v.store.GetPath(iter)
	if err != nil {
		return 0, false
	}
	return v.modelRow(path.String())
}
