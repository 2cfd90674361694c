package domain

import "sort"

// Row is one record of a cleaned table: its canonical Region plus well-typed
// cells. Values holds the coerced numeric columns (always finite floats);
// Labels holds every other column as sourced, including the raw name column,
// which is retained for traceability.
type Row struct {
	Region Region            `json:"region"`
	Values map[string]float64 `json:"values,omitempty"`
	Labels map[string]string  `json:"labels,omitempty"`
}

// Table is an ordered sequence of rows sharing a column layout. Row order is
// source order and is never implicitly resorted: consumers may assume a
// stable baseline ordering before applying their own sort.
type Table struct {
	Name    string   `json:"name"`
	Columns []string `json:"columns"`
	Rows    []Row    `json:"rows"`
}

// NewTable creates an empty table with the given column layout.
func NewTable(name string, columns []string) *Table {
	return &Table{Name: name, Columns: append([]string(nil), columns...)}
}

// Append adds a row, preserving insertion order.
func (t *Table) Append(row Row) {
	t.Rows = append(t.Rows, row)
}

// Len returns the number of rows.
func (t *Table) Len() int {
	return len(t.Rows)
}

// HasColumn reports whether the table's layout declares the column.
func (t *Table) HasColumn(name string) bool {
	for _, c := range t.Columns {
		if c == name {
			return true
		}
	}
	return false
}

// Sum totals a numeric column across all rows. Rows without the column
// contribute zero.
func (t *Table) Sum(column string) float64 {
	var total float64
	for i := range t.Rows {
		total += t.Rows[i].Values[column]
	}
	return total
}

// FirstMatch returns the first row in source order with the given Region.
// This is the table's deterministic reduction rule: when a region appears
// more than once, joins and lookups use the earliest row.
func (t *Table) FirstMatch(region Region) (Row, bool) {
	for i := range t.Rows {
		if t.Rows[i].Region == region {
			return t.Rows[i], true
		}
	}
	return Row{}, false
}

// Regions returns the distinct Region set of the table, sorted.
func (t *Table) Regions() []Region {
	seen := make(map[Region]struct{}, len(t.Rows))
	for i := range t.Rows {
		seen[t.Rows[i].Region] = struct{}{}
	}
	regions := make([]Region, 0, len(seen))
	for r := range seen {
		regions = append(regions, r)
	}
	sort.Slice(regions, func(i, j int) bool { return regions[i] < regions[j] })
	return regions
}

// Clone deep-copies the table so derived views can add columns without
// touching the original.
func (t *Table) Clone() *Table {
	out := NewTable(t.Name, t.Columns)
	out.Rows = make([]Row, len(t.Rows))
	for i := range t.Rows {
		row := Row{Region: t.Rows[i].Region}
		if t.Rows[i].Values != nil {
			row.Values = make(map[string]float64, len(t.Rows[i].Values))
			for k, v := range t.Rows[i].Values {
				row.Values[k] = v
			}
		}
		if t.Rows[i].Labels != nil {
			row.Labels = make(map[string]string, len(t.Rows[i].Labels))
			for k, v := range t.Rows[i].Labels {
				row.Labels[k] = v
			}
		}
		out.Rows[i] = row
	}
	return out
}

// AppendColumn adds a numeric column populated from a Region-keyed map.
// Regions absent from values get 0.0, never a missing cell. Existing rows,
// their identity, and their order are unchanged; this is the only sanctioned
// way to extend a built table.
func (t *Table) AppendColumn(column string, values map[Region]float64) {
	t.Columns = append(t.Columns, column)
	for i := range t.Rows {
		if t.Rows[i].Values == nil {
			t.Rows[i].Values = make(map[string]float64, 1)
		}
		t.Rows[i].Values[column] = values[t.Rows[i].Region]
	}
}
