package frame

import (
	"strings"
	"testing"
	"time"

	"lakedash/domain/core"
)

func demoFrame(t *testing.T) *Frame {
	t.Helper()
	f := New(
		Column{Name: "date", Kind: KindTime},
		Column{Name: "sales", Kind: KindInteger},
		Column{Name: "revenue", Kind: KindNumber},
		Column{Name: "region", Kind: KindCategory},
	)
	base := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	rows := []struct {
		day     int
		sales   int
		revenue float64
		region  string
	}{
		{0, 100, 1000.0, "North"},
		{1, 200, 2000.0, "South"},
		{2, 300, 3000.0, "North"},
		{3, 400, 4000.0, "East"},
	}
	for _, r := range rows {
		if err := f.AppendRow(base.AddDate(0, 0, r.day), r.sales, r.revenue, r.region); err != nil {
			t.Fatalf("AppendRow failed: %v", err)
		}
	}
	return f
}

func TestAppendRowArityMismatch(t *testing.T) {
	f := New(Column{Name: "a", Kind: KindNumber}, Column{Name: "b", Kind: KindNumber})
	if err := f.AppendRow(1.0); err == nil {
		t.Error("Expected error for short row, got none")
	}
	if err := f.AppendRow(1.0, 2.0, 3.0); err == nil {
		t.Error("Expected error for long row, got none")
	}
	if f.RowCount() != 0 {
		t.Errorf("Expected no rows after failed appends, got %d", f.RowCount())
	}
}

func TestByDateRange(t *testing.T) {
	f := demoFrame(t)
	r := core.DateRange{
		From: time.Date(2026, 8, 2, 0, 0, 0, 0, time.UTC),
		To:   time.Date(2026, 8, 3, 0, 0, 0, 0, time.UTC),
	}

	filtered, err := f.ByDateRange("date", r)
	if err != nil {
		t.Fatalf("ByDateRange failed: %v", err)
	}
	if filtered.RowCount() != 2 {
		t.Errorf("Expected 2 rows in range, got %d", filtered.RowCount())
	}

	// Zero range keeps everything
	all, err := f.ByDateRange("date", core.DateRange{})
	if err != nil {
		t.Fatalf("ByDateRange with zero range failed: %v", err)
	}
	if all.RowCount() != f.RowCount() {
		t.Errorf("Expected zero range to keep all %d rows, got %d", f.RowCount(), all.RowCount())
	}
}

func TestByCategories(t *testing.T) {
	f := demoFrame(t)

	filtered, err := f.ByCategories("region", []string{"North"})
	if err != nil {
		t.Fatalf("ByCategories failed: %v", err)
	}
	if filtered.RowCount() != 2 {
		t.Errorf("Expected 2 North rows, got %d", filtered.RowCount())
	}

	// Empty selection keeps everything (the "all selected" default)
	all, err := f.ByCategories("region", nil)
	if err != nil {
		t.Fatalf("ByCategories with empty selection failed: %v", err)
	}
	if all.RowCount() != f.RowCount() {
		t.Errorf("Expected empty selection to keep all rows, got %d", all.RowCount())
	}

	if _, err := f.ByCategories("missing", []string{"x"}); err == nil {
		t.Error("Expected error for unknown column, got none")
	}
}

func TestGroupSum(t *testing.T) {
	f := demoFrame(t)

	grouped, err := f.GroupSum("region", "revenue")
	if err != nil {
		t.Fatalf("GroupSum failed: %v", err)
	}
	if grouped.RowCount() != 3 {
		t.Fatalf("Expected 3 groups, got %d", grouped.RowCount())
	}

	// First-seen order: North, South, East
	if grouped.Rows[0][0] != "North" {
		t.Errorf("Expected first group North, got %v", grouped.Rows[0][0])
	}
	if got := grouped.Rows[0][1].(float64); got != 4000.0 {
		t.Errorf("Expected North revenue 4000, got %v", got)
	}
}

func TestSliceClamping(t *testing.T) {
	f := demoFrame(t)

	page := f.Slice(1, 2)
	if page.RowCount() != 2 {
		t.Errorf("Expected 2 rows, got %d", page.RowCount())
	}

	past := f.Slice(10, 5)
	if past.RowCount() != 0 {
		t.Errorf("Expected 0 rows past the end, got %d", past.RowCount())
	}

	all := f.Slice(0, 0)
	if all.RowCount() != f.RowCount() {
		t.Errorf("Expected zero limit to return all rows, got %d", all.RowCount())
	}
}

func TestCSVEncoding(t *testing.T) {
	f := demoFrame(t)

	body, err := f.CSV()
	if err != nil {
		t.Fatalf("CSV failed: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(string(body)), "\n")
	if len(lines) != 5 {
		t.Fatalf("Expected header + 4 rows, got %d lines", len(lines))
	}
	if lines[0] != "date,sales,revenue,region" {
		t.Errorf("Unexpected header: %q", lines[0])
	}
	if !strings.HasPrefix(lines[1], "2026-08-01,100,1000,North") {
		t.Errorf("Unexpected first row: %q", lines[1])
	}
}

func TestFloatsWidensIntegers(t *testing.T) {
	f := demoFrame(t)
	sales, err := f.Floats("sales")
	if err != nil {
		t.Fatalf("Floats failed: %v", err)
	}
	if len(sales) != 4 || sales[0] != 100.0 {
		t.Errorf("Unexpected sales column: %v", sales)
	}
}

func TestDistinctStrings(t *testing.T) {
	f := demoFrame(t)
	regions := f.DistinctStrings("region")
	want := []string{"North", "South", "East"}
	if len(regions) != len(want) {
		t.Fatalf("Expected %d regions, got %v", len(want), regions)
	}
	for i, r := range want {
		if regions[i] != r {
			t.Errorf("Expected region %d to be %s, got %s", i, r, regions[i])
		}
	}
}
