package frame

import (
	"fmt"
	"time"

	"lakedash/domain/core"
)

// ByDateRange returns a new frame containing only rows whose time cell in the
// named column falls inside the range. Rows with nil cells are dropped.
func (f *Frame) ByDateRange(column string, r core.DateRange) (*Frame, error) {
	idx := f.ColumnIndex(column)
	if idx < 0 {
		return nil, fmt.Errorf("column %q not found", column)
	}
	if r.IsZero() {
		return f, nil
	}

	out := New(f.Columns...)
	for _, row := range f.Rows {
		t, ok := row[idx].(time.Time)
		if !ok {
			continue
		}
		if r.Contains(t) {
			out.Rows = append(out.Rows, row)
		}
	}
	return out, nil
}

// ByCategories returns a new frame containing only rows whose category cell is
// in the allowed set. An empty allowed set keeps every row, matching the
// "all regions selected" default in the dashboard sidebar.
func (f *Frame) ByCategories(column string, allowed []string) (*Frame, error) {
	idx := f.ColumnIndex(column)
	if idx < 0 {
		return nil, fmt.Errorf("column %q not found", column)
	}
	if len(allowed) == 0 {
		return f, nil
	}

	set := make(map[string]bool, len(allowed))
	for _, a := range allowed {
		set[a] = true
	}

	out := New(f.Columns...)
	for _, row := range f.Rows {
		s, ok := row[idx].(string)
		if !ok {
			continue
		}
		if set[s] {
			out.Rows = append(out.Rows, row)
		}
	}
	return out, nil
}

// Slice returns rows [offset, offset+limit) as a new frame, clamping both
// bounds. Used by the raw-data table's progressive loading.
func (f *Frame) Slice(offset, limit int) *Frame {
	if offset < 0 {
		offset = 0
	}
	if offset > len(f.Rows) {
		offset = len(f.Rows)
	}
	end := offset + limit
	if limit <= 0 || end > len(f.Rows) {
		end = len(f.Rows)
	}

	out := New(f.Columns...)
	out.Rows = f.Rows[offset:end]
	return out
}
