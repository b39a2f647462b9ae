package tablekit

// Events fans model and view notifications out to registered handlers.
//
// Delivery is queued: posting an event appends it to a pending list and
// schedules a single drain through the dispatcher, so handlers never run
// inline with the mutation that produced the event. Frontends install their
// event-loop hook (glib.IdleAdd, fyne.Do, a zero-interval Qt timer) as the
// dispatcher; the default dispatcher runs the drain immediately after the
// mutating call returns, which keeps tests deterministic.
//
// Consecutive RowUpdated events for the same cell are coalesced so a burst of
// writes to one cell delivers one notification.
type Events struct {
	dispatch  func(func())
	scheduled bool
	pending   []event

	rowUpdated       []RowHandler
	selectionChanged []RowHandler
	doubleClicked    []RowHandler
	rowsReset        []func()
	headersReset     []func()
}

// RowHandler receives a row-shaped notification: the row index, the column
// index that triggered it, and the full row's string values.
type RowHandler func(row, col int, rowData []string)

type eventKind int

const (
	evRowUpdated eventKind = iota
	evSelectionChanged
	evDoubleClicked
	evRowsReset
	evHeadersReset
)

type event struct {
	kind    eventKind
	row     int
	col     int
	rowData []string
}

// SetDispatcher installs the function used to hop onto the UI thread's task
// queue. A nil dispatcher restores immediate (post-mutation) delivery.
func (e *Events) SetDispatcher(dispatch func(func())) {
	if dispatch == nil {
		dispatch = func(fn func()) { fn() }
	}
	e.dispatch = dispatch
}

// OnRowUpdated registers a handler for committed cell edits.
func (e *Events) OnRowUpdated(fn RowHandler) {
	e.rowUpdated = append(e.rowUpdated, fn)
}

// OnSelectionChanged registers a handler for row selection changes.
func (e *Events) OnSelectionChanged(fn RowHandler) {
	e.selectionChanged = append(e.selectionChanged, fn)
}

// OnDoubleClicked registers a handler for double clicks on a cell.
func (e *Events) OnDoubleClicked(fn RowHandler) {
	e.doubleClicked = append(e.doubleClicked, fn)
}

// OnRowsReset registers a handler for bulk row changes (replace, append,
// delete, clear).
func (e *Events) OnRowsReset(fn func()) {
	e.rowsReset = append(e.rowsReset, fn)
}

// OnHeadersReset registers a handler for header label changes.
func (e *Events) OnHeadersReset(fn func()) {
	e.headersReset = append(e.headersReset, fn)
}

// PostSelectionChanged queues a selection notification. Views call this from
// their selection signal.
func (e *Events) PostSelectionChanged(row, col int, rowData []string) {
	e.post(event{kind: evSelectionChanged, row: row, col: col, rowData: rowData})
}

// PostDoubleClicked queues a double-click notification.
func (e *Events) PostDoubleClicked(row, col int, rowData []string) {
	e.post(event{kind: evDoubleClicked, row: row, col: col, rowData: rowData})
}

func (e *Events) postRowUpdated(row, col int, rowData []string) {
	// Coalesce with a pending update of the same cell.
	for i := range e.pending {
		p := &e.pending[i]
		if p.kind == evRowUpdated && p.row == row && p.col == col {
			p.rowData = rowData
			return
		}
	}
	e.post(event{kind: evRowUpdated, row: row, col: col, rowData: rowData})
}

func (e *Events) postRowsReset() {
	for _, p := range e.pending {
		if p.kind == evRowsReset {
			return
		}
	}
	e.post(event{kind: evRowsReset})
}

func (e *Events) postHeadersReset() {
	for _, p := range e.pending {
		if p.kind == evHeadersReset {
			return
		}
	}
	e.post(event{kind: evHeadersReset})
}

func (e *Events) post(ev event) {
	e.pending = append(e.pending, ev)
	if e.scheduled {
		return
	}
	e.scheduled = true
	e.dispatch(e.drain)
}

func (e *Events) drain() {
	for len(e.pending) > 0 {
		batch := e.pending
		e.pending = nil
		for _, ev := range batch {
			e.deliver(ev)
		}
	}
	e.scheduled = false
}

func (e *Events) deliver(ev event) {
	switch ev.kind {
	case evRowUpdated:
		for _, fn := range e.rowUpdated {
			fn(ev.row, ev.col, ev.rowData)
		}
	case evSelectionChanged:
		for _, fn := range e.selectionChanged {
			fn(ev.row, ev.col, ev.rowData)
		}
	case evDoubleClicked:
		for _, fn := range e.doubleClicked {
			fn(ev.row, ev.col, ev.rowData)
		}
	case evRowsReset:
		for _, fn := range e.rowsReset {
			fn()
		}
	case evHeadersReset:
		for _, fn := range e.headersReset {
			fn()
		}
	}
}
