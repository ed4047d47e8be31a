package table

import (
	"bytes"
	"io"
	"strconv"
)

// Declaration renders column declarations for diagnostics and schema
// dumps.
type Declaration struct {
	buf bytes.Buffer
}

func (d *Declaration) WriteTo(dest io.Writer) (int64, error) {
	return d.buf.WriteTo(dest)
}

func (d *Declaration) String() string {
	return d.buf.String()
}

func (d *Declaration) Declare(c Column) {
	d.buf.WriteString(c.Name)
	d.buf.WriteString(" ")
	d.buf.WriteString(c.Kind.String())
	if c.Capacity > 0 {
		d.buf.WriteString("(")
		d.buf.WriteString(strconv.Itoa(c.Capacity))
		d.buf.WriteString(")")
	}
	if c.NotNull {
		d.buf.WriteString(" NOT NULL")
	}
	if c.Default != nil {
		d.buf.WriteString(" DEFAULT ")
		d.buf.WriteString(c.Default.String())
	}
	d.buf.WriteString(";\n")
}

// DeclareTable declares every column of t.
func (d *Declaration) DeclareTable(t *Table) {
	for _, c := range t.Columns {
		d.Declare(c)
	}
}
