package tableviewqt

import (
	"testing"

	"github.com/mappu/miqt/qt"
)

func TestPrintShortcut(t *testing.T) {
	tests := []struct {
		name    string
		key     qt.Key
		mods    qt.KeyboardModifier
		preview bool
		ok      bool
	}{
		{"ctrl+p prints", qt.Key_P, qt.ControlModifier, false, true},
		{"ctrl+shift+p previews", qt.Key_P, qt.ControlModifier | qt.ShiftModifier, true, true},
		{"plain p ignored", qt.Key_P, qt.NoModifier, false, false},
		{"shift+p ignored", qt.Key_P, qt.ShiftModifier, false, false},
		{"ctrl+alt+p ignored", qt.Key_P, qt.ControlModifier | qt.AltModifier, false, false},
		{"ctrl+meta+p ignored", qt.Key_P, qt.ControlModifier | qt.MetaModifier, false, false},
		{"ctrl+shift+alt+p ignored", qt.Key_P, qt.ControlModifier | qt.ShiftModifier | qt.AltModifier, false, false},
		{"ctrl+q ignored", qt.Key_Q, qt.ControlModifier, false, false},
	}
	for _, tt := range tests {
		preview, ok := printShortcut(tt.key, tt.mods)
		if preview != tt.preview || ok != tt.ok {
			t.Errorf("%s: printShortcut = (%v, %v), want (%v, %v)",
				tt.name, preview, ok, tt.preview, tt.ok)
		}
	}
}

func TestRowRangeBounds(t *testing.T) {
	tests := []struct {
		name         string
		first, last  int
		rows         int
		wantF, wantL int
		ok           bool
	}{
		{"in range", 1, 3, 5, 1, 3, true},
		{"reversed", 3, 1, 5, 1, 3, true},
		{"clamped low", -2, 2, 5, 0, 2, true},
		{"clamped high", 2, 10, 5, 2, 4, true},
		{"single row", 2, 2, 5, 2, 2, true},
		{"empty model", 0, 0, 0, 0, -1, false},
		{"past the end", 7, 9, 5, 7, 4, false},
	}
	for _, tt := range tests {
		f, l, ok := rowRangeBounds(tt.first, tt.last, tt.rows)
		if ok != tt.ok {
			t.Errorf("%s: ok = %v, want %v", tt.name, ok, tt.ok)
			continue
		}
		if ok && (f != tt.wantF || l != tt.wantL) {
			t.Errorf("%s: bounds = (%d, %d), want (%d, %d)", tt.name, f, l, tt.wantF, tt.wantL)
		}
	}
}
