package tablekit

import "strings"

// Model is the in-memory store behind a table view: a dense, row-major grid of
// string cells with per-column edit policy, header labels and export field
// names. All access must happen on the UI thread; the model does no locking.
//
// The edit policy (which columns are editable, which are disabled) is fixed at
// construction for the lifetime of the model, matching the table's flags
// contract.
type Model struct {
	headers         []string
	fieldNames      []string
	verticalHeaders []string
	rows            [][]Cell
	columnCount     int

	editableColumns map[int]bool
	disabledColumns map[int]bool

	events Events
	logger *Logger
}

// Options configures a Model at construction time.
type Options struct {
	// EditableColumns lists column indices whose cells are
	// selectable+editable+enabled.
	EditableColumns []int
	// DisabledColumns lists column indices whose cells are selectable+enabled
	// but never editable.
	DisabledColumns []int
	// Logger receives diagnostics. Nil means a disabled logger.
	Logger *Logger
}

// NewModel creates an empty model with the given column policy.
func NewModel(opts Options) *Model {
	m := &Model{
		editableColumns: make(map[int]bool, len(opts.EditableColumns)),
		disabledColumns: make(map[int]bool, len(opts.DisabledColumns)),
		logger:          opts.Logger,
	}
	if m.logger == nil {
		m.logger = NewLogger(false)
	}
	for _, col := range opts.EditableColumns {
		m.editableColumns[col] = true
	}
	for _, col := range opts.DisabledColumns {
		m.disabledColumns[col] = true
	}
	m.events.dispatch = func(fn func()) { fn() }
	return m
}

// Events exposes the model's notification hub. Frontends register handlers
// here and install their event-loop dispatcher.
func (m *Model) Events() *Events {
	return &m.events
}

// Logger returns the model's logger.
func (m *Model) Logger() *Logger {
	return m.logger
}

// RowCount returns the number of rows.
func (m *Model) RowCount() int {
	return len(m.rows)
}

// ColumnCount returns the current uniform column count.
func (m *Model) ColumnCount() int {
	return m.columnCount
}

// SetHorizontalHeaders sets the display headers and, optionally, the
// machine-readable field names used by export. fieldNames must be equal in
// length to headers (and to the column count) to be used; otherwise export
// falls back to the display headers.
func (m *Model) SetHorizontalHeaders(headers []string, fieldNames ...[]string) {
	m.headers = append([]string(nil), headers...)
	if len(headers) > m.columnCount {
		m.columnCount = len(headers)
	}
	if len(fieldNames) > 0 {
		m.fieldNames = append([]string(nil), fieldNames[0]...)
	}
	m.events.postHeadersReset()
}

// SetFieldNames replaces the export field names.
func (m *Model) SetFieldNames(fieldNames []string) {
	m.fieldNames = append([]string(nil), fieldNames...)
}

// SetVerticalHeaders sets optional per-row header labels.
func (m *Model) SetVerticalHeaders(headers []string) {
	m.verticalHeaders = append([]string(nil), headers...)
	m.events.postHeadersReset()
}

// Headers returns the display headers.
func (m *Model) Headers() []string {
	return append([]string(nil), m.headers...)
}

// FieldNames returns the export field names.
func (m *Model) FieldNames() []string {
	return append([]string(nil), m.fieldNames...)
}

// VerticalHeaders returns the per-row header labels, if any.
func (m *Model) VerticalHeaders() []string {
	return append([]string(nil), m.verticalHeaders...)
}

// UseFields reports whether field names are usable for export: their length
// must equal both the header count and the column count.
func (m *Model) UseFields() bool {
	return len(m.headers) == len(m.fieldNames) && len(m.fieldNames) == m.columnCount
}

// ExportKeys returns the keys export should use for each column: the field
// names when UseFields holds, the display headers otherwise. Columns beyond
// the header list get empty keys.
func (m *Model) ExportKeys() []string {
	keys := make([]string, m.columnCount)
	src := m.headers
	if m.UseFields() {
		src = m.fieldNames
	}
	for col := 0; col < m.columnCount; col++ {
		if col < len(src) {
			keys[col] = src[col]
		}
	}
	return keys
}

// ResetHeaders re-posts the header notification so frontends re-apply the
// current horizontal and vertical labels, typically after a Clear.
func (m *Model) ResetHeaders() {
	m.events.postHeadersReset()
}

// SetRows replaces the whole grid. The column count follows the first row of
// data when data is non-empty, extended to cover the headers.
func (m *Model) SetRows(data [][]string) {
	m.rows = m.rows[:0]
	if len(data) > 0 {
		m.columnCount = len(data[0])
		if len(m.headers) > m.columnCount {
			m.columnCount = len(m.headers)
		}
	}
	for _, rowData := range data {
		m.rows = append(m.rows, m.makeRow(rowData))
	}
	m.logger.Debug(CatModel, "rows replaced: %d rows, %d columns", len(m.rows), m.columnCount)
	m.events.postRowsReset()
}

// AppendRow appends a single row. Missing trailing cells become empty.
func (m *Model) AppendRow(rowData []string) {
	if m.columnCount == 0 {
		m.columnCount = len(rowData)
	}
	m.rows = append(m.rows, m.makeRow(rowData))
	m.events.postRowsReset()
}

// AppendRows appends many rows at once.
func (m *Model) AppendRows(rowsData [][]string) {
	if len(rowsData) == 0 {
		return
	}
	if m.columnCount == 0 {
		m.columnCount = len(rowsData[0])
	}
	for _, rowData := range rowsData {
		m.rows = append(m.rows, m.makeRow(rowData))
	}
	m.events.postRowsReset()
}

// DeleteRow removes the row at index. Out-of-range indices are a no-op.
func (m *Model) DeleteRow(row int) {
	if row < 0 || row >= len(m.rows) {
		m.logger.Debug(CatModel, "delete ignored: row %d out of range", row)
		return
	}
	m.rows = append(m.rows[:row], m.rows[row+1:]...)
	m.events.postRowsReset()
}

// Clear removes every row. Headers, field names and the column policy are
// retained; frontends re-apply labels from the reset notification.
func (m *Model) Clear() {
	m.rows = m.rows[:0]
	m.events.postRowsReset()
}

// Rows returns a copy of all cell values in row order.
func (m *Model) Rows() [][]string {
	out := make([][]string, len(m.rows))
	for i := range m.rows {
		out[i] = m.rowValues(i)
	}
	return out
}

// Row returns the values of one row, or false if the index is out of range.
func (m *Model) Row(row int) ([]string, bool) {
	if row < 0 || row >= len(m.rows) {
		return nil, false
	}
	return m.rowValues(row), true
}

// CellValue returns the value at (row, col), or "" for invalid indices.
func (m *Model) CellValue(row, col int) string {
	if row < 0 || row >= len(m.rows) || col < 0 || col >= m.columnCount {
		return ""
	}
	return m.rows[row][col].Value
}

// CellAt returns a pointer to the cell at (row, col) for attribute access.
func (m *Model) CellAt(row, col int) (*Cell, bool) {
	if row < 0 || row >= len(m.rows) || col < 0 || col >= m.columnCount {
		return nil, false
	}
	return &m.rows[row][col], true
}

// SetCell writes a single cell value and posts a queued RowUpdated
// notification carrying the full row.
func (m *Model) SetCell(row, col int, value string) {
	if row < 0 || row >= len(m.rows) || col < 0 || col >= m.columnCount {
		return
	}
	m.rows[row][col].Value = value
	m.events.postRowUpdated(row, col, m.rowValues(row))
}

// SetCellAttr writes a display attribute without raising an edit notification.
func (m *Model) SetCellAttr(row, col int, role Role, value string) {
	if cell, ok := m.CellAt(row, col); ok {
		cell.SetAttr(role, value)
	}
}

// Flags returns the capability flags for (row, col) per the fixed column
// policy: none for invalid indices, selectable+editable+enabled for editable
// columns, selectable+enabled for disabled columns, and the toolkit default
// otherwise.
func (m *Model) Flags(row, col int) CellFlags {
	if row < 0 || row >= len(m.rows) || col < 0 || col >= m.columnCount {
		return FlagNone
	}
	if m.editableColumns[col] {
		return FlagSelectable | FlagEditable | FlagEnabled
	}
	if m.disabledColumns[col] {
		return FlagSelectable | FlagEnabled
	}
	return FlagDefault
}

// ColumnEditable reports whether the policy marks col editable.
func (m *Model) ColumnEditable(col int) bool {
	return m.editableColumns[col]
}

// ColumnDisabled reports whether the policy marks col read-only.
func (m *Model) ColumnDisabled(col int) bool {
	return m.disabledColumns[col]
}

// CopyTabbed returns the row's values joined with tabs, for clipboard copy.
func (m *Model) CopyTabbed(row int) (string, bool) {
	values, ok := m.Row(row)
	if !ok {
		return "", false
	}
	return strings.Join(values, "\t"), true
}

// PasteTabbed splits clipboard text on tabs and appends it as a new row, but
// only when the piece count matches the column count exactly. Mismatches are
// ignored and reported false.
func (m *Model) PasteTabbed(text string) bool {
	if text == "" {
		return false
	}
	items := strings.Split(text, "\t")
	if len(items) != m.columnCount {
		m.logger.Debug(CatModel, "paste ignored: %d values for %d columns", len(items), m.columnCount)
		return false
	}
	m.AppendRow(items)
	return true
}

func (m *Model) makeRow(rowData []string) []Cell {
	row := make([]Cell, m.columnCount)
	for col := 0; col < m.columnCount && col < len(rowData); col++ {
		row[col].Value = rowData[col]
	}
	return row
}

func (m *Model) rowValues(row int) []string {
	values := make([]string, m.columnCount)
	for col := range values {
		values[col] = m.rows[row][col].Value
	}
	return values
}
