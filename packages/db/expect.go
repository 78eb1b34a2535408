package db

import "fmt"

// Reporter receives assertion failures. *testing.T satisfies it.
type Reporter interface {
	Errorf(format string, args ...any)
}

// Expectation verifies the rows a query produced.
type Expectation struct {
	r      Reporter
	query  string
	result *QueryResult
	failed bool
}

// Expect runs the query and starts an assertion chain on its result. A
// query error fails immediately; subsequent checks become no-ops.
func Expect(r Reporter, client *Client, query string, args ...any) *Expectation {
	e := &Expectation{r: r, query: query}

	result, err := client.Query(query, args...)
	if err != nil {
		e.failed = true
		r.Errorf("db %q: %v", query, err)
		return e
	}
	e.result = result
	return e
}

func (e *Expectation) fail(format string, args ...any) {
	e.r.Errorf("db %q: %s", e.query, fmt.Sprintf(format, args...))
}

// RowCount asserts the number of returned rows.
func (e *Expectation) RowCount(want int) *Expectation {
	if e.failed {
		return e
	}
	if got := len(e.result.Rows); got != want {
		e.fail("expected %d rows, got %d", want, got)
	}
	return e
}

// Empty asserts the query returned no rows.
func (e *Expectation) Empty() *Expectation {
	return e.RowCount(0)
}

// Value asserts a column value in a given row.
func (e *Expectation) Value(row int, column string, want any) *Expectation {
	if e.failed {
		return e
	}
	if row >= len(e.result.Rows) {
		e.fail("row %d out of range, query returned %d rows", row, len(e.result.Rows))
		return e
	}

	got, ok := e.result.Rows[row][column]
	if !ok {
		e.fail("no column %q in result (columns: %v)", column, e.result.Columns)
		return e
	}

	if fmt.Sprintf("%v", got) != fmt.Sprintf("%v", want) {
		e.fail("column %q row %d: expected %v, got %v", column, row, want, got)
	}
	return e
}
