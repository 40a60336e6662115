package summary

import (
	"github.com/montanaflynn/stats"

	"lakedash/domain/frame"
)

// MetricCard is one of the dashboard's headline numbers with its delta
// annotation.
type MetricCard struct {
	Label string  `json:"label"`
	Value float64 `json:"value"`
	Delta float64 `json:"delta"`
	Unit  string  `json:"unit,omitempty"`
}

// KeyMetrics holds the four cards shown above the charts.
type KeyMetrics struct {
	TotalSales    MetricCard `json:"total_sales"`
	TotalRevenue  MetricCard `json:"total_revenue"`
	AvgCustomers  MetricCard `json:"avg_customers"`
	AvgOrderValue MetricCard `json:"avg_order_value"`
}

// Compute derives the key metrics from a dashboard frame. An empty frame
// yields zero-valued cards rather than an error so the page still renders
// with its "no data" placeholder.
func Compute(f *frame.Frame) (KeyMetrics, error) {
	m := KeyMetrics{
		TotalSales:    MetricCard{Label: "Total Sales"},
		TotalRevenue:  MetricCard{Label: "Total Revenue", Unit: "$"},
		AvgCustomers:  MetricCard{Label: "Avg Daily Customers"},
		AvgOrderValue: MetricCard{Label: "Avg Order Value", Unit: "$"},
	}
	if f == nil || f.IsEmpty() {
		return m, nil
	}

	sales, err := f.Floats("sales")
	if err != nil {
		return m, err
	}
	revenue, err := f.Floats("revenue")
	if err != nil {
		return m, err
	}
	customers, err := f.Floats("customers")
	if err != nil {
		return m, err
	}

	totalSales, err := stats.Sum(sales)
	if err != nil {
		return m, err
	}
	totalRevenue, err := stats.Sum(revenue)
	if err != nil {
		return m, err
	}
	avgCustomers, err := stats.Mean(customers)
	if err != nil {
		return m, err
	}

	m.TotalSales.Value = totalSales
	m.TotalRevenue.Value = totalRevenue
	m.AvgCustomers.Value = avgCustomers
	if totalSales > 0 {
		m.AvgOrderValue.Value = totalRevenue / totalSales
	}

	// Delta annotations are fixed fractions of the base value, matching the
	// demo's display conventions rather than a real period-over-period diff.
	m.TotalSales.Delta = totalSales * 0.1
	m.TotalRevenue.Delta = totalRevenue * 0.15
	m.AvgCustomers.Delta = avgCustomers * 0.05
	m.AvgOrderValue.Delta = m.AvgOrderValue.Value * 0.08

	return m, nil
}
