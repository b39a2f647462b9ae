// tabledemo-qt shows a tablekit model in a Qt table view with typed
// column editors, row filtering, clipboard actions and printing.
package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/mappu/miqt/qt"

	"github.com/abiiranathan/tablekit"
	_ "github.com/abiiranathan/tablekit/pkg/qtinit"
	tableviewqt "github.com/abiiranathan/tablekit/pkg/tableview-qt"
)

func main() {
	qt.NewQApplication(os.Args)

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
	view := tableviewqt.NewView(model, editors)
	view.SetColumnEditor(2, tablekit.DateEditor())
	view.SetColumnEditor(3, tablekit.ComboEditor("Male", "Female"))
	view.SetColumnEditor(4, tablekit.DateTimeEditor())
	view.SetColumnEditor(5, tablekit.TimeEditor())

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

	view.SetPrintHeader("Patient Registry", "")
	view.StretchHeaders()

	exporter := tablekit.NewExporter(model)
	exporter.WriteFile("data.csv", exporter.CSV())
	exporter.WriteFile("data.json", exporter.JSON(func(col int, value string) interface{} {
		if col == 0 {
			n, err := strconv.Atoi(value)
			if err != nil {
				return value
			}
			return n
		}
		return value
	}))

	window := qt.NewQMainWindow2()
	window.SetWindowTitle("tablekit demo")
	window.Resize(800, 400)
	window.SetCentralWidget(view.Widget())
	window.Show()

	qt.QApplication_Exec()
}
