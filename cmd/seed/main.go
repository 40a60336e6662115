// Command seed writes the sample datasets to CSV and XLSX files so demos and
// tests can run without the server.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"lakedash/adapters/excel"
	"lakedash/domain/frame"
	"lakedash/internal/sampledata"
)

func main() {
	outDir := flag.String("out", "./seed_data", "output directory")
	seed := flag.Int64("seed", 42, "generator seed")
	days := flag.Int("days", 30, "dashboard window in days")
	flag.Parse()

	if err := os.MkdirAll(*outDir, 0755); err != nil {
		log.Fatalf("Failed to create output directory: %v", err)
	}

	g := sampledata.New(sampledata.Config{Seed: *seed, Days: *days})

	datasets := map[string]*frame.Frame{
		"dashboard":  g.Dashboard(*days),
		"timeseries": g.TimeSeries(sampledata.DefaultTimeSeriesConfig()),
		"sales":      g.Sales(sampledata.DefaultSalesConfig()),
		"customers":  g.Customers(500),
		"metrics":    g.Metrics(*days, true),
		"cohorts":    g.Cohorts(12),
	}

	// One CSV per dataset plus a single workbook with one sheet each
	writer := excel.NewFrameWriter()
	defer writer.Close()

	for name, f := range datasets {
		body, err := f.CSV()
		if err != nil {
			log.Fatalf("Failed to encode %s: %v", name, err)
		}
		path := filepath.Join(*outDir, name+".csv")
		if err := os.WriteFile(path, body, 0644); err != nil {
			log.Fatalf("Failed to write %s: %v", path, err)
		}
		fmt.Printf("wrote %s (%d rows)\n", path, f.RowCount())

		if err := writer.AddSheet(name, f); err != nil {
			log.Fatalf("Failed to add sheet %s: %v", name, err)
		}
	}

	workbook := filepath.Join(*outDir, "sample_data.xlsx")
	if err := writer.SaveAs(workbook); err != nil {
		log.Fatalf("Failed to write %s: %v", workbook, err)
	}
	fmt.Printf("wrote %s\n", workbook)
}
