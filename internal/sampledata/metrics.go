package sampledata

import (
	"math"
	"time"

	"gonum.org/v1/gonum/stat/distuv"

	"lakedash/domain/frame"
)

// Metrics generates a daily KPI series: revenue with trend and weekly
// seasonality, derived order and customer counts, and a conversion rate.
// With anomalies enabled, roughly 5% of days spike to double or halve.
func (g *Generator) Metrics(days int, withAnomalies bool) *frame.Frame {
	if days <= 0 {
		days = 30
	}

	rng := g.stream("metrics")
	revenueNoise := distuv.Normal{Mu: 0, Sigma: 50, Src: rng}
	orderNoise := distuv.Normal{Mu: 0, Sigma: 10, Src: rng}
	newCustNoise := distuv.Normal{Mu: 0, Sigma: 5, Src: rng}
	returningNoise := distuv.Normal{Mu: 0, Sigma: 10, Src: rng}
	conversionNoise := distuv.Normal{Mu: 0, Sigma: 0.005, Src: rng}

	f := frame.New(
		frame.Column{Name: "date", Kind: frame.KindTime},
		frame.Column{Name: "revenue", Kind: frame.KindNumber},
		frame.Column{Name: "orders", Kind: frame.KindInteger},
		frame.Column{Name: "new_customers", Kind: frame.KindInteger},
		frame.Column{Name: "returning_customers", Kind: frame.KindInteger},
		frame.Column{Name: "conversion_rate", Kind: frame.KindNumber},
	)

	start := midnight(time.Now()).AddDate(0, 0, -days)
	for i := 0; i <= days; i++ {
		date := start.AddDate(0, 0, i)

		trend := float64(i) * 5
		seasonal := 100 * math.Sin(2*math.Pi*float64(i)/7) // weekly seasonality
		value := 1000 + trend + seasonal + revenueNoise.Rand()

		if withAnomalies && rng.Float64() < 0.05 {
			// 50% drop or 200% spike
			if rng.Float64() < 0.5 {
				value *= 0.5
			} else {
				value *= 2.0
			}
		}

		f.MustAppendRow(
			date,
			math.Max(0, value),
			int(math.Max(0, value/50+orderNoise.Rand())),
			int(math.Max(0, 20+newCustNoise.Rand())),
			int(math.Max(0, 50+returningNoise.Rand())),
			clamp(0.03+conversionNoise.Rand(), 0, 1),
		)
	}
	return f
}
