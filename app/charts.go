package app

import (
	"time"

	"lakedash/domain/frame"
)

// LineChart holds the daily sales trend: one x label per row with its value.
type LineChart struct {
	Title  string    `json:"title"`
	X      []string  `json:"x"`
	Y      []float64 `json:"y"`
	XLabel string    `json:"x_label"`
	YLabel string    `json:"y_label"`
}

// PieChart holds a category rollup such as revenue by region.
type PieChart struct {
	Title  string    `json:"title"`
	Labels []string  `json:"labels"`
	Values []float64 `json:"values"`
}

// ScatterPoint is one bubble: position, bubble size, and color group.
type ScatterPoint struct {
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
	Size  float64 `json:"size"`
	Group string  `json:"group"`
}

// ScatterChart holds the correlation view, one point per frame row.
type ScatterChart struct {
	Title  string         `json:"title"`
	Points []ScatterPoint `json:"points"`
	XLabel string         `json:"x_label"`
	YLabel string         `json:"y_label"`
}

// BuildLineChart projects a time column and a numeric column into a line
// payload. Rows with nil cells in either column are skipped.
func BuildLineChart(f *frame.Frame, timeCol, valueCol string) (LineChart, error) {
	chart := LineChart{
		Title:  "Daily Sales Trend",
		XLabel: "Date",
		YLabel: "Sales",
	}
	if f.IsEmpty() {
		return chart, nil
	}

	timeIdx := f.ColumnIndex(timeCol)
	valIdx := f.ColumnIndex(valueCol)
	if timeIdx < 0 || valIdx < 0 {
		return chart, nil
	}

	for _, row := range f.Rows {
		t, ok := row[timeIdx].(time.Time)
		if !ok {
			continue
		}
		v, ok := asFloat(row[valIdx])
		if !ok {
			continue
		}
		chart.X = append(chart.X, t.Format("2006-01-02"))
		chart.Y = append(chart.Y, v)
	}
	return chart, nil
}

// BuildPieChart aggregates a numeric column by category for the pie view.
func BuildPieChart(f *frame.Frame, keyCol, valueCol string) (PieChart, error) {
	chart := PieChart{Title: "Revenue Distribution by Region"}
	if f.IsEmpty() || f.ColumnIndex(keyCol) < 0 || f.ColumnIndex(valueCol) < 0 {
		return chart, nil
	}

	grouped, err := f.GroupSum(keyCol, valueCol)
	if err != nil {
		return chart, err
	}
	for _, row := range grouped.Rows {
		chart.Labels = append(chart.Labels, row[0].(string))
		chart.Values = append(chart.Values, row[1].(float64))
	}
	return chart, nil
}

// BuildScatterChart produces one point per row: x/y position, bubble size,
// and color group, for the revenue-vs-customers correlation view.
func BuildScatterChart(f *frame.Frame, xCol, yCol, sizeCol, groupCol string) (ScatterChart, error) {
	chart := ScatterChart{
		Title:  "Revenue vs Customer Count by Region",
		XLabel: "Number of Customers",
		YLabel: "Revenue ($)",
	}
	if f.IsEmpty() {
		return chart, nil
	}

	xIdx := f.ColumnIndex(xCol)
	yIdx := f.ColumnIndex(yCol)
	sizeIdx := f.ColumnIndex(sizeCol)
	groupIdx := f.ColumnIndex(groupCol)
	if xIdx < 0 || yIdx < 0 {
		return chart, nil
	}

	for _, row := range f.Rows {
		x, okX := asFloat(row[xIdx])
		y, okY := asFloat(row[yIdx])
		if !okX || !okY {
			continue
		}
		point := ScatterPoint{X: x, Y: y}
		if sizeIdx >= 0 {
			point.Size, _ = asFloat(row[sizeIdx])
		}
		if groupIdx >= 0 {
			point.Group, _ = row[groupIdx].(string)
		}
		chart.Points = append(chart.Points, point)
	}
	return chart, nil
}

func asFloat(v interface{}) (float64, bool) {
	switch c := v.(type) {
	case float64:
		return c, true
	case int:
		return float64(c), true
	case int64:
		return float64(c), true
	default:
		return 0, false
	}
}
