package sampledata

import (
	"fmt"
	"math"
	"time"

	"gonum.org/v1/gonum/stat/distuv"

	"lakedash/domain/frame"
)

// TimeSeriesConfig configures the multi-category time series generator
type TimeSeriesConfig struct {
	Days       int `json:"days"`
	Categories int `json:"categories"`
}

// DefaultTimeSeriesConfig returns defaults matching a quarterly demo window
func DefaultTimeSeriesConfig() TimeSeriesConfig {
	return TimeSeriesConfig{
		Days:       90,
		Categories: 4,
	}
}

// TimeSeries generates daily values per category with a linear trend, annual
// seasonality, and gaussian noise, plus transaction and user counts.
func (g *Generator) TimeSeries(cfg TimeSeriesConfig) *frame.Frame {
	if cfg.Days <= 0 {
		cfg.Days = 90
	}
	if cfg.Categories <= 0 {
		cfg.Categories = 4
	}

	rng := g.stream("timeseries")
	noise := distuv.Normal{Mu: 0, Sigma: 50, Src: rng}

	categories := make([]string, cfg.Categories)
	for i := range categories {
		categories[i] = fmt.Sprintf("Category_%d", i+1)
	}

	f := frame.New(
		frame.Column{Name: "date", Kind: frame.KindTime},
		frame.Column{Name: "category", Kind: frame.KindCategory},
		frame.Column{Name: "value", Kind: frame.KindNumber},
		frame.Column{Name: "transactions", Kind: frame.KindInteger},
		frame.Column{Name: "users", Kind: frame.KindInteger},
	)

	start := midnight(time.Now()).AddDate(0, 0, -cfg.Days)
	row := 0
	for i := 0; i <= cfg.Days; i++ {
		date := start.AddDate(0, 0, i)
		seasonal := 100 * math.Sin(2*math.Pi*float64(date.YearDay())/365)
		for _, category := range categories {
			trend := float64(row) * 0.5
			value := 1000 + trend + seasonal + noise.Rand()
			f.MustAppendRow(
				date,
				category,
				math.Max(0, value),
				50+rng.Intn(450),
				10+rng.Intn(190),
			)
			row++
		}
	}
	return f
}
