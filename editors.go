package tablekit

import (
	"strconv"
	"strings"
	"time"
)

// EditorKind selects the in-place editing control a frontend builds for a
// column. The set is closed: every kind carries a parse/format pair over the
// string cell representation, and frontends dispatch on the tag instead of
// subclassing delegates.
type EditorKind int

const (
	KindLine     EditorKind = iota // single-line text entry
	KindText                       // multi-line plain text
	KindRichText                   // multi-line rich text (HTML stored as-is)
	KindDate                       // calendar date, stored "2006-01-02"
	KindDateTime                   // date+time, stored ISO 8601
	KindTime                       // time of day, stored "15:04:05"
	KindInt                        // integer spin box
	KindDecimal                    // decimal spin box
	KindCombo                      // dropdown over a fixed item list
	KindRadio                      // boolean radio button
	KindCheck                      // boolean check box
)

// Stored cell formats for the temporal kinds.
const (
	DateLayout     = "2006-01-02"
	DateTimeLayout = "2006-01-02T15:04:05"
	TimeLayout     = "15:04:05"
)

// dateTimeLayouts are accepted on input, most specific first. Mirrors the
// permissiveness of ISO-date parsing in the editing controls.
var dateTimeLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	DateLayout,
}

var timeLayouts = []string{
	TimeLayout,
	"15:04",
}

// EditorSpec describes one column's editor: the kind plus the options the
// editing control needs. Zero-valued fields mean "no constraint".
type EditorSpec struct {
	Kind EditorKind

	// Date and DateTime kinds.
	DefaultDate time.Time
	MinDate     time.Time
	MaxDate     time.Time

	// Int and Decimal kinds.
	Min      float64
	Max      float64
	Decimals int

	// Combo kind.
	Items []string
}

// LineEditor returns a single-line text editor spec.
func LineEditor() EditorSpec { return EditorSpec{Kind: KindLine} }

// TextEditor returns a multi-line plain text editor spec.
func TextEditor() EditorSpec { return EditorSpec{Kind: KindText} }

// RichTextEditor returns a rich text editor spec.
func RichTextEditor() EditorSpec { return EditorSpec{Kind: KindRichText} }

// DateEditor returns a date editor spec defaulting to today.
func DateEditor() EditorSpec {
	return EditorSpec{Kind: KindDate, DefaultDate: time.Now()}
}

// DateRangeEditor returns a date editor bounded to [min, max].
func DateRangeEditor(min, max time.Time) EditorSpec {
	return EditorSpec{Kind: KindDate, DefaultDate: time.Now(), MinDate: min, MaxDate: max}
}

// DateTimeEditor returns a date-time editor spec.
func DateTimeEditor() EditorSpec { return EditorSpec{Kind: KindDateTime} }

// TimeEditor returns a time-of-day editor spec.
func TimeEditor() EditorSpec { return EditorSpec{Kind: KindTime} }

// SpinEditor returns an integer editor clamped to [min, max].
func SpinEditor(min, max int) EditorSpec {
	return EditorSpec{Kind: KindInt, Min: float64(min), Max: float64(max)}
}

// DecimalEditor returns a decimal editor with the given precision and range.
func DecimalEditor(decimals, min, max int) EditorSpec {
	return EditorSpec{Kind: KindDecimal, Decimals: decimals, Min: float64(min), Max: float64(max)}
}

// ComboEditor returns a dropdown editor over items.
func ComboEditor(items ...string) EditorSpec {
	return EditorSpec{Kind: KindCombo, Items: items}
}

// RadioEditor returns a boolean radio-button editor.
func RadioEditor() EditorSpec { return EditorSpec{Kind: KindRadio} }

// CheckEditor returns a boolean check-box editor.
func CheckEditor() EditorSpec { return EditorSpec{Kind: KindCheck} }

// ParseDate parses a stored date cell. ok is false for empty or unparsable
// values; callers clear the editor in that case rather than reporting an error.
func ParseDate(s string) (time.Time, bool) {
	if s == "" || s == "null" {
		return time.Time{}, false
	}
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// ParseDateTime parses a stored date-time cell, accepting ISO 8601 with or
// without fractional seconds and zone.
func ParseDateTime(s string) (time.Time, bool) {
	if s == "" || s == "null" {
		return time.Time{}, false
	}
	for _, layout := range dateTimeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// ParseTimeOfDay parses a stored time cell.
func ParseTimeOfDay(s string) (time.Time, bool) {
	if s == "" || s == "null" {
		return time.Time{}, false
	}
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// ParseBool follows the toolkits' permissive truthiness: "true" and nonzero
// numbers are true, everything else is false.
func ParseBool(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "true", "yes", "on":
		return true
	}
	n, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	return err == nil && n != 0
}

// clamp bounds v to [min, max] when a range is set.
func (e EditorSpec) clamp(v float64) float64 {
	if e.Min == 0 && e.Max == 0 {
		return v
	}
	if v < e.Min {
		v = e.Min
	}
	if v > e.Max {
		v = e.Max
	}
	return v
}

// ParseInt parses an integer cell the way a spin box would: unparsable input
// becomes 0, then the editor range clamps the value.
func (e EditorSpec) ParseInt(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		n = 0
	}
	return int(e.clamp(float64(n)))
}

// ParseDecimal parses a decimal cell with the same silent fallback.
func (e EditorSpec) ParseDecimal(s string) float64 {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		f = 0
	}
	return e.clamp(f)
}

// FormatDecimal renders a decimal at the editor's precision.
func (e EditorSpec) FormatDecimal(f float64) string {
	return strconv.FormatFloat(f, 'f', e.Decimals, 64)
}

// Normalize round-trips a raw string through the editor's parse/format pair,
// producing the canonical stored form. Unparsable temporal values normalize to
// the empty string (the "cleared editor"); unparsable numerics to the clamped
// zero. Text-like kinds pass through unchanged.
func (e EditorSpec) Normalize(raw string) string {
	switch e.Kind {
	case KindDate:
		t, ok := ParseDate(raw)
		if !ok {
			return ""
		}
		return t.Format(DateLayout)
	case KindDateTime:
		t, ok := ParseDateTime(raw)
		if !ok {
			return ""
		}
		return t.Format(DateTimeLayout)
	case KindTime:
		t, ok := ParseTimeOfDay(raw)
		if !ok {
			return ""
		}
		return t.Format(TimeLayout)
	case KindInt:
		return strconv.Itoa(e.ParseInt(raw))
	case KindDecimal:
		return e.FormatDecimal(e.ParseDecimal(raw))
	case KindRadio, KindCheck:
		return strconv.FormatBool(ParseBool(raw))
	default:
		return raw
	}
}

// Editors maps columns to editor specs. Columns without an entry edit as
// plain text under the frontend's default control.
type Editors struct {
	byColumn map[int]EditorSpec
}

// NewEditors creates an empty editor registry.
func NewEditors() *Editors {
	return &Editors{byColumn: make(map[int]EditorSpec)}
}

// SetColumnEditor assigns an editor spec to a column.
func (e *Editors) SetColumnEditor(col int, spec EditorSpec) {
	e.byColumn[col] = spec
}

// ColumnEditor returns the spec assigned to col.
func (e *Editors) ColumnEditor(col int) (EditorSpec, bool) {
	spec, ok := e.byColumn[col]
	return spec, ok
}
