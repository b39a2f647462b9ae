// tabledemo-gtk shows a tablekit model in a GTK tree view with editable
// columns, row filtering and clipboard actions.
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/gotk3/gotk3/gtk"

	"github.com/abiiranathan/tablekit"
	tableviewgtk "github.com/abiiranathan/tablekit/pkg/tableview-gtk"
)

func main() {
	gtk.Init(&os.Args)

	logger := tablekit.NewLogger(false)
	model := tablekit.NewModel(tablekit.Options{
		DisabledColumns: []int{0, 1},
		Logger:          logger,
	})

	model.SetHorizontalHeaders(
		[]string{"ID", "Name", "DOB", "Sex", "CreatedAt", "Time"},
		[]string{"id", "name", "dob", "sex", "created_at", "time"},
	)

	editors := tablekit.NewEditors()
	editors.SetColumnEditor(2, tablekit.DateEditor())
	editors.SetColumnEditor(3, tablekit.ComboEditor("Male", "Female"))
	editors.SetColumnEditor(4, tablekit.DateTimeEditor())
	editors.SetColumnEditor(5, tablekit.TimeEditor())

	view, err := tableviewgtk.NewView(model, editors)
	if err != nil {
		log.Fatalf("failed to create table view: %v", err)
	}

	model.SetRows([][]string{
		{"1", "Abiira Nathan", "1989-05-18", "Male", "2023-06-07T06:30:13.075Z", "16:30:34"},
		{"2", "Kwikiriza Dan", "2005-06-12", "Female", "null", "00:30:00"},
	})

	model.Events().OnSelectionChanged(func(row, col int, rowData []string) {
		fmt.Println("Selection changed")
	})
	model.Events().OnDoubleClicked(func(row, col int, rowData []string) {
		fmt.Println("doubleclick handler")
	})
	model.Events().OnRowUpdated(func(row, col int, rowData []string) {
		fmt.Println("rowUpdated")
	})

	// Filter entry above the table
	entry, err := gtk.EntryNew()
	if err != nil {
		log.Fatalf("failed to create entry: %v", err)
	}
	entry.SetPlaceholderText("Filter rows...")
	entry.Connect("changed", func() {
		text, err := entry.GetText()
		if err != nil {
			return
		}
		view.Filter(text, false)
	})

	vbox, err := gtk.BoxNew(gtk.ORIENTATION_VERTICAL, 4)
	if err != nil {
		log.Fatalf("failed to create box: %v", err)
	}
	vbox.PackStart(entry, false, false, 0)
	vbox.PackStart(view.Box(), true, true, 0)

	win, err := gtk.WindowNew(gtk.WINDOW_TOPLEVEL)
	if err != nil {
		log.Fatalf("failed to create window: %v", err)
	}
	win.SetTitle("tablekit demo")
	win.SetDefaultSize(800, 400)
	win.Connect("destroy", func() {
		gtk.MainQuit()
	})
	win.Add(vbox)
	win.ShowAll()

	gtk.Main()
}
