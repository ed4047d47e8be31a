package record

import (
	"fmt"
	"io"

	"github.com/hyraxx/diwata/internal/value"
)

// Rows is a column-ordered result matrix: one shared column list and
// one value slice per row. It is what a result set materializes into
// before records or structs are built from it.
type Rows struct {
	columns []string
	data    [][]value.Value
	pos     int
}

func NewRows(columns ...string) *Rows {
	return &Rows{columns: columns}
}

// AddRow appends a row, which must have exactly one value per column.
func (r *Rows) AddRow(vals ...value.Value) error {
	if len(vals) != len(r.columns) {
		return fmt.Errorf("diwata: row has %d values for %d columns", len(vals), len(r.columns))
	}
	row := make([]value.Value, len(vals))
	copy(row, vals)
	r.data = append(r.data, row)
	return nil
}

func (r *Rows) Columns() []string {
	out := make([]string, len(r.columns))
	copy(out, r.columns)
	return out
}

func (r *Rows) Len() int { return len(r.data) }

// Record materializes row i.
func (r *Rows) Record(i int) *Record {
	rec := New()
	for j, c := range r.columns {
		rec.SetValue(c, r.data[i][j])
	}
	return rec
}

// Next copies the next row into dst and advances the cursor. It
// returns io.EOF once all rows have been read.
func (r *Rows) Next(dst []value.Value) error {
	if r.pos >= len(r.data) {
		return io.EOF
	}
	if len(dst) != len(r.columns) {
		return fmt.Errorf("diwata: destination has %d slots for %d columns", len(dst), len(r.columns))
	}
	copy(dst, r.data[r.pos])
	r.pos++
	return nil
}

// Reset rewinds the cursor to the first row.
func (r *Rows) Reset() { r.pos = 0 }
