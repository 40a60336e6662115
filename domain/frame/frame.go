package frame

import (
	"fmt"
	"time"
)

// Kind classifies the scalar values a column may hold.
type Kind string

const (
	KindTime     Kind = "time"
	KindCategory Kind = "category"
	KindNumber   Kind = "number"
	KindInteger  Kind = "integer"
	KindBool     Kind = "bool"
)

// Column describes a single column of a frame.
type Column struct {
	Name string `json:"name"`
	Kind Kind   `json:"kind"`
}

// Frame is an ephemeral, request-scoped tabular dataset: ordered columns of
// scalar cells. Frames are built once per page render (from a warehouse query
// result or a sample generator) and discarded when the response is written.
type Frame struct {
	Columns []Column        `json:"columns"`
	Rows    [][]interface{} `json:"rows"`
}

// New creates an empty frame with the given column definitions.
func New(columns ...Column) *Frame {
	return &Frame{Columns: columns}
}

// AppendRow adds a row to the frame. The cell count must match the declared
// columns; a mismatched row corrupts every positional accessor downstream.
func (f *Frame) AppendRow(cells ...interface{}) error {
	if len(cells) != len(f.Columns) {
		return fmt.Errorf("row has %d cells, frame has %d columns", len(cells), len(f.Columns))
	}
	f.Rows = append(f.Rows, cells)
	return nil
}

// MustAppendRow adds a row and panics on arity mismatch. Generators use this
// because their row shapes are fixed at compile time.
func (f *Frame) MustAppendRow(cells ...interface{}) {
	if err := f.AppendRow(cells...); err != nil {
		panic(err)
	}
}

// RowCount returns the number of rows.
func (f *Frame) RowCount() int {
	return len(f.Rows)
}

// IsEmpty reports whether the frame has no rows.
func (f *Frame) IsEmpty() bool {
	return len(f.Rows) == 0
}

// ColumnNames returns the column names in declaration order.
func (f *Frame) ColumnNames() []string {
	names := make([]string, len(f.Columns))
	for i, c := range f.Columns {
		names[i] = c.Name
	}
	return names
}

// ColumnIndex returns the position of the named column, or -1 if absent.
func (f *Frame) ColumnIndex(name string) int {
	for i, c := range f.Columns {
		if c.Name == name {
			return i
		}
	}
	return -1
}

// Floats extracts the named column as float64 values. Integer cells are
// widened; nil cells are skipped.
func (f *Frame) Floats(name string) ([]float64, error) {
	idx := f.ColumnIndex(name)
	if idx < 0 {
		return nil, fmt.Errorf("column %q not found", name)
	}
	out := make([]float64, 0, len(f.Rows))
	for _, row := range f.Rows {
		switch v := row[idx].(type) {
		case nil:
			continue
		case float64:
			out = append(out, v)
		case int:
			out = append(out, float64(v))
		case int64:
			out = append(out, float64(v))
		default:
			return nil, fmt.Errorf("column %q: cell %T is not numeric", name, row[idx])
		}
	}
	return out, nil
}

// Strings extracts the named column as string values. Nil cells are skipped.
func (f *Frame) Strings(name string) ([]string, error) {
	idx := f.ColumnIndex(name)
	if idx < 0 {
		return nil, fmt.Errorf("column %q not found", name)
	}
	out := make([]string, 0, len(f.Rows))
	for _, row := range f.Rows {
		switch v := row[idx].(type) {
		case nil:
			continue
		case string:
			out = append(out, v)
		default:
			out = append(out, fmt.Sprintf("%v", v))
		}
	}
	return out, nil
}

// Times extracts the named column as time.Time values. Nil cells are skipped.
func (f *Frame) Times(name string) ([]time.Time, error) {
	idx := f.ColumnIndex(name)
	if idx < 0 {
		return nil, fmt.Errorf("column %q not found", name)
	}
	out := make([]time.Time, 0, len(f.Rows))
	for _, row := range f.Rows {
		switch v := row[idx].(type) {
		case nil:
			continue
		case time.Time:
			out = append(out, v)
		default:
			return nil, fmt.Errorf("column %q: cell %T is not a time", name, row[idx])
		}
	}
	return out, nil
}

// DistinctStrings returns the unique values of a category column in first-seen
// order, for populating filter dropdowns.
func (f *Frame) DistinctStrings(name string) []string {
	idx := f.ColumnIndex(name)
	if idx < 0 {
		return nil
	}
	seen := make(map[string]bool)
	var out []string
	for _, row := range f.Rows {
		s, ok := row[idx].(string)
		if !ok || seen[s] {
			continue
		}
		seen[s] = true
		out = append(out, s)
	}
	return out
}

// GroupSum aggregates a numeric column by a category column, preserving
// first-seen group order. Used for pie-style rollups like revenue by region.
func (f *Frame) GroupSum(keyCol, valueCol string) (*Frame, error) {
	keyIdx := f.ColumnIndex(keyCol)
	if keyIdx < 0 {
		return nil, fmt.Errorf("column %q not found", keyCol)
	}
	valIdx := f.ColumnIndex(valueCol)
	if valIdx < 0 {
		return nil, fmt.Errorf("column %q not found", valueCol)
	}

	sums := make(map[string]float64)
	var order []string
	for _, row := range f.Rows {
		key, ok := row[keyIdx].(string)
		if !ok {
			continue
		}
		var v float64
		switch c := row[valIdx].(type) {
		case float64:
			v = c
		case int:
			v = float64(c)
		case int64:
			v = float64(c)
		default:
			continue
		}
		if _, seen := sums[key]; !seen {
			order = append(order, key)
		}
		sums[key] += v
	}

	out := New(
		Column{Name: keyCol, Kind: KindCategory},
		Column{Name: valueCol, Kind: KindNumber},
	)
	for _, key := range order {
		out.MustAppendRow(key, sums[key])
	}
	return out, nil
}
