package excel

import (
	"bytes"
	"testing"
	"time"

	"github.com/xuri/excelize/v2"

	"lakedash/domain/frame"
)

func sampleFrame() *frame.Frame {
	f := frame.New(
		frame.Column{Name: "date", Kind: frame.KindTime},
		frame.Column{Name: "sales", Kind: frame.KindInteger},
		frame.Column{Name: "region", Kind: frame.KindCategory},
	)
	f.MustAppendRow(time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC), 100, "North")
	f.MustAppendRow(time.Date(2026, 8, 2, 0, 0, 0, 0, time.UTC), 200, "South")
	return f
}

func TestWriteFrameRoundTrip(t *testing.T) {
	body, err := WriteFrame("Data", sampleFrame())
	if err != nil {
		t.Fatalf("WriteFrame failed: %v", err)
	}

	wb, err := excelize.OpenReader(bytes.NewReader(body))
	if err != nil {
		t.Fatalf("Failed to reopen workbook: %v", err)
	}
	defer wb.Close()

	sheets := wb.GetSheetList()
	if len(sheets) != 1 || sheets[0] != "Data" {
		t.Fatalf("Expected single sheet Data, got %v", sheets)
	}

	rows, err := wb.GetRows("Data")
	if err != nil {
		t.Fatalf("GetRows failed: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("Expected header + 2 rows, got %d", len(rows))
	}
	if rows[0][0] != "date" || rows[0][1] != "sales" || rows[0][2] != "region" {
		t.Errorf("Unexpected header row: %v", rows[0])
	}
	if rows[1][0] != "2026-08-01" {
		t.Errorf("Expected formatted date, got %q", rows[1][0])
	}
	if rows[2][2] != "South" {
		t.Errorf("Expected South in last row, got %q", rows[2][2])
	}
}

func TestAddSheetMultiple(t *testing.T) {
	w := NewFrameWriter()
	defer w.Close()

	if err := w.AddSheet("first", sampleFrame()); err != nil {
		t.Fatalf("AddSheet failed: %v", err)
	}
	if err := w.AddSheet("second", sampleFrame()); err != nil {
		t.Fatalf("AddSheet failed: %v", err)
	}

	body, err := w.Bytes()
	if err != nil {
		t.Fatalf("Bytes failed: %v", err)
	}

	wb, err := excelize.OpenReader(bytes.NewReader(body))
	if err != nil {
		t.Fatalf("Failed to reopen workbook: %v", err)
	}
	defer wb.Close()

	sheets := wb.GetSheetList()
	if len(sheets) != 2 {
		t.Fatalf("Expected 2 sheets, got %v", sheets)
	}
	if sheets[0] != "first" || sheets[1] != "second" {
		t.Errorf("Unexpected sheet order: %v", sheets)
	}
}
