// tabledemo-fyne shows a tablekit model in a Fyne table with cell edit
// dialogs, row filtering and native save dialogs for the exporters.
package main

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
	"github.com/sqweek/dialog"

	"github.com/abiiranathan/tablekit"
	tableviewfyne "github.com/abiiranathan/tablekit/pkg/tableview-fyne"
)

func main() {
	fyneApp := app.New()
	window := fyneApp.NewWindow("tablekit demo")
	window.Resize(fyne.NewSize(800, 400))

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

	view := tableviewfyne.NewView(model, editors, window)

	model.SetRows([][]string{
		{"1", "Abiira Nathan", "1989-05-18", "Male", "2023-06-07T06:30:13.075Z", "16:30:34"},
		{"2", "Kwikiriza Dan", "2005-06-12", "Female", "null", "00:30:00"},
	})

	model.Events().OnSelectionChanged(func(row, col int, rowData []string) {
		fmt.Println("Selection changed")
	})
	model.Events().OnRowUpdated(func(row, col int, rowData []string) {
		fmt.Println("rowUpdated")
	})

	exporter := tablekit.NewExporter(model)

	saveAs := func(title, ext, content string) {
		filename, err := dialog.File().
			Filter(title, ext).
			Title(title).
			Save()
		if err != nil {
			if err != dialog.ErrCancelled {
				logger.Warn(tablekit.CatExport, "save dialog failed: %v", err)
			}
			return
		}
		exporter.WriteFile(filename, content)
	}

	filterEntry := widget.NewEntry()
	filterEntry.SetPlaceHolder("Filter rows...")
	filterEntry.OnChanged = func(text string) {
		view.Filter(text, false)
	}

	buttons := container.NewHBox(
		widget.NewButton("Export CSV", func() {
			saveAs("Export CSV", "csv", exporter.CSV())
		}),
		widget.NewButton("Export JSON", func() {
			saveAs("Export JSON", "json", exporter.JSON(nil))
		}),
		widget.NewButton("Export HTML", func() {
			saveAs("Export HTML", "html", exporter.HTML())
		}),
	)

	top := container.NewVBox(filterEntry, buttons)
	window.SetContent(container.NewBorder(top, nil, nil, nil, view.Table()))
	window.ShowAndRun()
}
