package tableviewqt

import (
	"github.com/mappu/miqt/qt"
	"github.com/mappu/miqt/qt/printsupport"

	"github.com/abiiranathan/tablekit"
)

// Print opens the system print dialog and prints the table. The printed
// page carries the title and logo set with SetPrintHeader above the table
// body.
func (v *View) Print() {
	printer := printsupport.NewQPrinter2(printsupport.QPrinter__HighResolution)
	dialog := printsupport.NewQPrintDialog(printer)
	if dialog.Exec() != int(qt.QDialog__Accepted) {
		return
	}
	v.renderTo(printer)
}

// PrintPreview opens a print preview dialog for the table.
func (v *View) PrintPreview() {
	printer := printsupport.NewQPrinter2(printsupport.QPrinter__HighResolution)
	dialog := printsupport.NewQPrintPreviewDialog(printer)
	dialog.OnPaintRequested(func(printer *printsupport.QPrinter) {
		v.renderTo(printer)
	})
	dialog.Exec()
}

func (v *View) renderTo(printer *printsupport.QPrinter) {
	exporter := tablekit.NewExporter(v.model)
	doc := qt.NewQTextDocument()
	doc.SetHtml(exporter.PrintDocument(v.title, v.logoURL))
	doc.Print(printer.QPagedPaintDevice)
}
