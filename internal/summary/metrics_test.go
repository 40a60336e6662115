package summary

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lakedash/domain/frame"
)

func dashboardFrame() *frame.Frame {
	f := frame.New(
		frame.Column{Name: "date", Kind: frame.KindTime},
		frame.Column{Name: "sales", Kind: frame.KindInteger},
		frame.Column{Name: "revenue", Kind: frame.KindNumber},
		frame.Column{Name: "customers", Kind: frame.KindInteger},
	)
	base := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	f.MustAppendRow(base, 100, 1000.0, 10)
	f.MustAppendRow(base.AddDate(0, 0, 1), 200, 3000.0, 30)
	return f
}

func TestComputeKeyMetrics(t *testing.T) {
	m, err := Compute(dashboardFrame())
	require.NoError(t, err)

	assert.Equal(t, 300.0, m.TotalSales.Value)
	assert.Equal(t, 4000.0, m.TotalRevenue.Value)
	assert.Equal(t, 20.0, m.AvgCustomers.Value)
	assert.InDelta(t, 4000.0/300.0, m.AvgOrderValue.Value, 1e-9)

	assert.Equal(t, "$", m.TotalRevenue.Unit)
	assert.InDelta(t, 30.0, m.TotalSales.Delta, 1e-9)
	assert.InDelta(t, 600.0, m.TotalRevenue.Delta, 1e-9)
}

func TestComputeEmptyFrame(t *testing.T) {
	f := frame.New(
		frame.Column{Name: "date", Kind: frame.KindTime},
		frame.Column{Name: "sales", Kind: frame.KindInteger},
		frame.Column{Name: "revenue", Kind: frame.KindNumber},
		frame.Column{Name: "customers", Kind: frame.KindInteger},
	)

	m, err := Compute(f)
	require.NoError(t, err)
	assert.Zero(t, m.TotalSales.Value)
	assert.Zero(t, m.TotalRevenue.Value)
	assert.Zero(t, m.AvgOrderValue.Value)
	assert.Equal(t, "Total Sales", m.TotalSales.Label)
}

func TestComputeNilFrame(t *testing.T) {
	m, err := Compute(nil)
	require.NoError(t, err)
	assert.Zero(t, m.TotalRevenue.Value)
}

func TestComputeMissingColumn(t *testing.T) {
	f := frame.New(frame.Column{Name: "date", Kind: frame.KindTime})
	f.MustAppendRow(time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC))

	_, err := Compute(f)
	assert.Error(t, err)
}
