package excel

import (
	"bytes"
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"

	"lakedash/domain/frame"
)

// FrameWriter writes frames into XLSX workbooks, one frame per sheet.
type FrameWriter struct {
	file *excelize.File
}

// NewFrameWriter creates an empty workbook writer.
func NewFrameWriter() *FrameWriter {
	return &FrameWriter{file: excelize.NewFile()}
}

// AddSheet writes a frame to a named sheet: header row first, then data rows
// in declared column order. The first sheet replaces the workbook default.
func (w *FrameWriter) AddSheet(name string, f *frame.Frame) error {
	index, err := w.file.GetSheetIndex(name)
	if err != nil {
		return fmt.Errorf("failed to look up sheet %q: %w", name, err)
	}
	if index < 0 {
		sheets := w.file.GetSheetList()
		if len(sheets) == 1 && sheets[0] == "Sheet1" {
			if err := w.file.SetSheetName("Sheet1", name); err != nil {
				return fmt.Errorf("failed to rename default sheet: %w", err)
			}
		} else {
			if _, err := w.file.NewSheet(name); err != nil {
				return fmt.Errorf("failed to create sheet %q: %w", name, err)
			}
		}
	}

	for col, header := range f.ColumnNames() {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return fmt.Errorf("failed to address header cell: %w", err)
		}
		if err := w.file.SetCellValue(name, cell, header); err != nil {
			return fmt.Errorf("failed to write header %q: %w", header, err)
		}
	}

	for r, row := range f.Rows {
		for c, value := range row {
			cell, err := excelize.CoordinatesToCellName(c+1, r+2)
			if err != nil {
				return fmt.Errorf("failed to address cell: %w", err)
			}
			if t, ok := value.(time.Time); ok {
				value = t.Format("2006-01-02")
			}
			if err := w.file.SetCellValue(name, cell, value); err != nil {
				return fmt.Errorf("failed to write cell %s: %w", cell, err)
			}
		}
	}
	return nil
}

// Bytes serializes the workbook.
func (w *FrameWriter) Bytes() ([]byte, error) {
	var buf bytes.Buffer
	if err := w.file.Write(&buf); err != nil {
		return nil, fmt.Errorf("failed to serialize workbook: %w", err)
	}
	return buf.Bytes(), nil
}

// SaveAs writes the workbook to disk.
func (w *FrameWriter) SaveAs(path string) error {
	if err := w.file.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save workbook: %w", err)
	}
	return nil
}

// Close releases workbook resources.
func (w *FrameWriter) Close() error {
	return w.file.Close()
}

// WriteFrame is a convenience wrapper serializing a single frame to XLSX
// bytes, used by the dashboard's download button.
func WriteFrame(sheet string, f *frame.Frame) ([]byte, error) {
	w := NewFrameWriter()
	defer w.Close()
	if err := w.AddSheet(sheet, f); err != nil {
		return nil, err
	}
	return w.Bytes()
}
