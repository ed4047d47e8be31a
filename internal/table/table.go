package table

import "github.com/hyraxx/diwata/internal/value"

// Name locates a table, optionally schema-qualified and aliased.
type Name struct {
	Schema string
	Name   string
	Alias  string
}

// Complete returns the schema-qualified name.
func (n Name) Complete() string {
	if n.Schema == "" {
		return n.Name
	}
	return n.Schema + "." + n.Name
}

func (n Name) String() string {
	s := n.Complete()
	if n.Alias != "" {
		s += " AS " + n.Alias
	}
	return s
}

// Column describes one column of a table.
type Column struct {
	Name     string
	Comment  string
	Kind     value.Kind
	Capacity int // 0 means unspecified
	NotNull  bool
	Default  *value.Value
}

// Table describes a table: its name and column set.
type Table struct {
	Name    Name
	Comment string
	Columns []Column
}

// Column returns the named column.
func (t *Table) Column(name string) (*Column, bool) {
	for i := range t.Columns {
		if t.Columns[i].Name == name {
			return &t.Columns[i], true
		}
	}
	return nil, false
}

// ColumnNames returns the column names in declaration order.
func (t *Table) ColumnNames() []string {
	names := make([]string, len(t.Columns))
	for i := range t.Columns {
		names[i] = t.Columns[i].Name
	}
	return names
}
