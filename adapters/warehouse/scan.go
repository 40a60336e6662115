package warehouse

import (
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"lakedash/domain/frame"
)

// rowsToFrame converts a sqlx result set into a frame. Column kinds are
// sniffed from the first non-nil value per column; []byte cells become
// strings so drivers that return raw bytes still render as text.
func rowsToFrame(rows *sqlx.Rows) (*frame.Frame, error) {
	names, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("failed to read result columns: %w", err)
	}

	columns := make([]frame.Column, len(names))
	for i, name := range names {
		columns[i] = frame.Column{Name: name, Kind: frame.KindCategory}
	}
	kindSet := make([]bool, len(names))

	f := frame.New(columns...)
	for rows.Next() {
		raw, err := rows.SliceScan()
		if err != nil {
			return nil, fmt.Errorf("failed to scan result row: %w", err)
		}

		cells := make([]interface{}, len(raw))
		for i, v := range raw {
			cells[i] = normalizeCell(v)
			if !kindSet[i] && cells[i] != nil {
				f.Columns[i].Kind = kindOf(cells[i])
				kindSet[i] = true
			}
		}
		f.Rows = append(f.Rows, cells)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("result iteration failed: %w", err)
	}
	return f, nil
}

func normalizeCell(v interface{}) interface{} {
	switch c := v.(type) {
	case nil:
		return nil
	case []byte:
		return string(c)
	case int32:
		return int64(c)
	case int:
		return int64(c)
	case float32:
		return float64(c)
	default:
		return c
	}
}

func kindOf(v interface{}) frame.Kind {
	switch v.(type) {
	case time.Time:
		return frame.KindTime
	case float64:
		return frame.KindNumber
	case int64:
		return frame.KindInteger
	case bool:
		return frame.KindBool
	default:
		return frame.KindCategory
	}
}
