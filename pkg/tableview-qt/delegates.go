package tableviewqt

import (
	"fmt"
	"strconv"
	"time"

	"github.com/mappu/miqt/qt"

	"github.com/abiiranathan/tablekit"
)

// columnDelegate maps a tablekit editor spec onto Qt edit widgets. Each
// editable column gets its own delegate so the spec can be captured without
// consulting the registry on every edit.
type columnDelegate struct {
	*qt.QStyledItemDelegate
	view *View
	spec tablekit.EditorSpec
}

func newColumnDelegate(v *View, spec tablekit.EditorSpec) *columnDelegate {
	d := &columnDelegate{
		QStyledItemDelegate: qt.NewQStyledItemDelegate(),
		view:                v,
		spec:                spec,
	}
	d.OnCreateEditor(d.createEditor)
	d.OnSetEditorData(d.setEditorData)
	d.OnSetModelData(d.setModelData)
	return d
}

func (d *columnDelegate) createEditor(super func(parent *qt.QWidget, option *qt.QStyleOptionViewItem, index *qt.QModelIndex) *qt.QWidget, parent *qt.QWidget, option *qt.QStyleOptionViewItem, index *qt.QModelIndex) *qt.QWidget {
	switch d.spec.Kind {
	case tablekit.KindDate:
		ed := qt.NewQDateEdit(parent)
		ed.SetCalendarPopup(true)
		ed.SetDisplayFormat("yyyy-MM-dd")
		if !d.spec.MinDate.IsZero() {
			ed.SetMinimumDate(qdate(d.spec.MinDate))
		}
		if !d.spec.MaxDate.IsZero() {
			ed.SetMaximumDate(qdate(d.spec.MaxDate))
		}
		return ed.QWidget
	case tablekit.KindDateTime:
		ed := qt.NewQDateTimeEdit(parent)
		ed.SetCalendarPopup(true)
		ed.SetDisplayFormat("yyyy-MM-ddTHH:mm:ss")
		return ed.QWidget
	case tablekit.KindTime:
		ed := qt.NewQTimeEdit(parent)
		ed.SetDisplayFormat("HH:mm:ss")
		return ed.QWidget
	case tablekit.KindInt:
		ed := qt.NewQSpinBox(parent)
		if d.spec.Min != 0 || d.spec.Max != 0 {
			ed.SetRange(int(d.spec.Min), int(d.spec.Max))
		}
		return ed.QWidget
	case tablekit.KindDecimal:
		ed := qt.NewQDoubleSpinBox(parent)
		ed.SetDecimals(d.spec.Decimals)
		if d.spec.Min != 0 || d.spec.Max != 0 {
			ed.SetRange(d.spec.Min, d.spec.Max)
		}
		return ed.QWidget
	case tablekit.KindCombo:
		ed := qt.NewQComboBox(parent)
		ed.AddItems(d.spec.Items)
		return ed.QWidget
	case tablekit.KindRadio:
		ed := qt.NewQRadioButton(parent)
		ed.SetAutoExclusive(false)
		return ed.QWidget
	case tablekit.KindCheck:
		ed := qt.NewQCheckBox(parent)
		return ed.QWidget
	case tablekit.KindText:
		ed := qt.NewQTextEdit(parent)
		ed.SetAcceptRichText(false)
		return ed.QWidget
	case tablekit.KindRichText:
		ed := qt.NewQTextEdit(parent)
		ed.SetAcceptRichText(true)
		return ed.QWidget
	}
	return super(parent, option, index)
}

func (d *columnDelegate) setEditorData(super func(editor *qt.QWidget, index *qt.QModelIndex), editor *qt.QWidget, index *qt.QModelIndex) {
	value := index.Data().ToString()
	switch d.spec.Kind {
	case tablekit.KindDate:
		ed := qt.UnsafeNewQDateEdit(editor.UnsafePointer())
		if t, ok := tablekit.ParseDate(value); ok {
			ed.SetDate(qdate(t))
		} else if !d.spec.DefaultDate.IsZero() {
			ed.SetDate(qdate(d.spec.DefaultDate))
		}
	case tablekit.KindDateTime:
		ed := qt.UnsafeNewQDateTimeEdit(editor.UnsafePointer())
		if t, ok := tablekit.ParseDateTime(value); ok {
			ed.SetDate(qdate(t))
			ed.SetTime(qtime(t))
		}
	case tablekit.KindTime:
		ed := qt.UnsafeNewQTimeEdit(editor.UnsafePointer())
		if t, ok := tablekit.ParseTimeOfDay(value); ok {
			ed.SetTime(qtime(t))
		}
	case tablekit.KindInt:
		ed := qt.UnsafeNewQSpinBox(editor.UnsafePointer())
		ed.SetValue(d.spec.ParseInt(value))
	case tablekit.KindDecimal:
		ed := qt.UnsafeNewQDoubleSpinBox(editor.UnsafePointer())
		ed.SetValue(d.spec.ParseDecimal(value))
	case tablekit.KindCombo:
		ed := qt.UnsafeNewQComboBox(editor.UnsafePointer())
		ed.SetCurrentText(value)
	case tablekit.KindRadio:
		ed := qt.UnsafeNewQRadioButton(editor.UnsafePointer())
		ed.SetChecked(tablekit.ParseBool(value))
	case tablekit.KindCheck:
		ed := qt.UnsafeNewQCheckBox(editor.UnsafePointer())
		ed.SetChecked(tablekit.ParseBool(value))
	case tablekit.KindText:
		ed := qt.UnsafeNewQTextEdit(editor.UnsafePointer())
		ed.SetPlainText(value)
	case tablekit.KindRichText:
		ed := qt.UnsafeNewQTextEdit(editor.UnsafePointer())
		ed.SetHtml(value)
	default:
		super(editor, index)
	}
}

func (d *columnDelegate) setModelData(super func(editor *qt.QWidget, model *qt.QAbstractItemModel, index *qt.QModelIndex), editor *qt.QWidget, model *qt.QAbstractItemModel, index *qt.QModelIndex) {
	var text string
	switch d.spec.Kind {
	case tablekit.KindDate:
		ed := qt.UnsafeNewQDateEdit(editor.UnsafePointer())
		date := ed.Date()
		text = fmt.Sprintf("%04d-%02d-%02d", date.Year(), date.Month(), date.Day())
	case tablekit.KindDateTime:
		ed := qt.UnsafeNewQDateTimeEdit(editor.UnsafePointer())
		date, tod := ed.Date(), ed.Time()
		text = fmt.Sprintf("%04d-%02d-%02dT%02d:%02d:%02d",
			date.Year(), date.Month(), date.Day(),
			tod.Hour(), tod.Minute(), tod.Second())
	case tablekit.KindTime:
		ed := qt.UnsafeNewQTimeEdit(editor.UnsafePointer())
		tod := ed.Time()
		text = fmt.Sprintf("%02d:%02d:%02d", tod.Hour(), tod.Minute(), tod.Second())
	case tablekit.KindInt:
		ed := qt.UnsafeNewQSpinBox(editor.UnsafePointer())
		text = strconv.Itoa(ed.Value())
	case tablekit.KindDecimal:
		ed := qt.UnsafeNewQDoubleSpinBox(editor.UnsafePointer())
		text = d.spec.FormatDecimal(ed.Value())
	case tablekit.KindCombo:
		ed := qt.UnsafeNewQComboBox(editor.UnsafePointer())
		text = ed.CurrentText()
	case tablekit.KindRadio:
		ed := qt.UnsafeNewQRadioButton(editor.UnsafePointer())
		text = strconv.FormatBool(ed.IsChecked())
	case tablekit.KindCheck:
		ed := qt.UnsafeNewQCheckBox(editor.UnsafePointer())
		text = strconv.FormatBool(ed.IsChecked())
	case tablekit.KindText:
		ed := qt.UnsafeNewQTextEdit(editor.UnsafePointer())
		text = ed.ToPlainText()
	case tablekit.KindRichText:
		ed := qt.UnsafeNewQTextEdit(editor.UnsafePointer())
		text = ed.ToHtml()
	default:
		super(editor, model, index)
		return
	}

	// Writing through the table item routes the edit into itemChanged,
	// which is the single path from the view into the model.
	if item := d.view.table.Item(index.Row(), index.Column()); item != nil {
		item.SetText(text)
	}
}

func qdate(t time.Time) *qt.QDate {
	return qt.NewQDate2(t.Year(), int(t.Month()), t.Day())
}

func qtime(t time.Time) *qt.QTime {
	return qt.NewQTime3(t.Hour(), t.Minute(), t.Second())
}
