package tablekit

import "regexp"

// FilterProxy is a pass-through view over a Model that hides rows not
// matching a regular expression. The underlying data is never mutated; the
// proxy only maintains a proxy-row to source-row mapping, which frontends use
// to present a filtered table.
type FilterProxy struct {
	model *Model

	pattern       string
	re            *regexp.Regexp
	column        int // -1 filters on all columns
	caseSensitive bool

	rows []int // proxy index -> source row
}

// NewFilterProxy creates a proxy over model filtering on all columns. The
// proxy re-evaluates itself whenever the model's rows change.
func NewFilterProxy(model *Model) *FilterProxy {
	p := &FilterProxy{model: model, column: -1}
	p.invalidate()
	model.Events().OnRowsReset(p.invalidate)
	model.Events().OnRowUpdated(func(int, int, []string) { p.invalidate() })
	return p
}

// SetFilterKeyColumn sets the column the filter tests. -1 means all columns.
// Out-of-range values are ignored.
func (p *FilterProxy) SetFilterKeyColumn(column int) {
	if column < -1 || column >= p.model.ColumnCount() {
		return
	}
	p.column = column
	p.invalidate()
}

// Filter installs a regular expression filter. An empty pattern removes the
// filter. A pattern that fails to compile is matched literally instead; the
// permissive-UI contract never surfaces the error.
func (p *FilterProxy) Filter(pattern string, caseSensitive bool) {
	p.pattern = pattern
	p.caseSensitive = caseSensitive
	if pattern == "" {
		p.re = nil
		p.invalidate()
		return
	}
	expr := pattern
	if !caseSensitive {
		expr = "(?i)" + expr
	}
	re, err := regexp.Compile(expr)
	if err != nil {
		p.model.Logger().Debug(CatFilter, "invalid pattern %q, matching literally: %v", pattern, err)
		expr = regexp.QuoteMeta(pattern)
		if !caseSensitive {
			expr = "(?i)" + expr
		}
		re = regexp.MustCompile(expr)
	}
	p.re = re
	p.invalidate()
}

// RowCount returns the number of visible rows.
func (p *FilterProxy) RowCount() int {
	return len(p.rows)
}

// SourceRow maps a proxy row index to its row in the source model, or -1 for
// out-of-range indices.
func (p *FilterProxy) SourceRow(proxyRow int) int {
	if proxyRow < 0 || proxyRow >= len(p.rows) {
		return -1
	}
	return p.rows[proxyRow]
}

// Row returns the values of a visible row.
func (p *FilterProxy) Row(proxyRow int) ([]string, bool) {
	src := p.SourceRow(proxyRow)
	if src < 0 {
		return nil, false
	}
	return p.model.Row(src)
}

// Rows returns all visible rows in order.
func (p *FilterProxy) Rows() [][]string {
	out := make([][]string, 0, len(p.rows))
	for _, src := range p.rows {
		values, _ := p.model.Row(src)
		out = append(out, values)
	}
	return out
}

func (p *FilterProxy) invalidate() {
	p.rows = p.rows[:0]
	for row := 0; row < p.model.RowCount(); row++ {
		if p.accepts(row) {
			p.rows = append(p.rows, row)
		}
	}
}

func (p *FilterProxy) accepts(row int) bool {
	if p.re == nil {
		return true
	}
	values, ok := p.model.Row(row)
	if !ok {
		return false
	}
	if p.column >= 0 {
		return p.column < len(values) && p.re.MatchString(values[p.column])
	}
	for _, v := range values {
		if p.re.MatchString(v) {
			return true
		}
	}
	return false
}
