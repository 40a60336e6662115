package sampledata

import (
	"time"

	"lakedash/domain/frame"
)

// Cohorts generates monthly cohort retention data: for each cohort, twelve
// months of retention decaying as 1/(1+0.3*month) with ±20% jitter.
func (g *Generator) Cohorts(numCohorts int) *frame.Frame {
	if numCohorts <= 0 {
		numCohorts = 12
	}

	rng := g.stream("cohorts")

	f := frame.New(
		frame.Column{Name: "cohort", Kind: frame.KindTime},
		frame.Column{Name: "month", Kind: frame.KindInteger},
		frame.Column{Name: "cohort_size", Kind: frame.KindInteger},
		frame.Column{Name: "retained_users", Kind: frame.KindInteger},
		frame.Column{Name: "retention_rate", Kind: frame.KindNumber},
	)

	now := time.Now()
	firstMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location()).AddDate(0, -numCohorts, 0)

	for c := 0; c < numCohorts; c++ {
		cohortDate := firstMonth.AddDate(0, c, 0)
		cohortSize := 100 + rng.Intn(900)

		for month := 0; month < 12; month++ {
			base := 1.0 / (1 + float64(month)*0.3)
			retention := clamp(base*(0.8+rng.Float64()*0.4), 0, 1)
			f.MustAppendRow(
				cohortDate,
				month,
				cohortSize,
				int(float64(cohortSize)*retention),
				retention,
			)
		}
	}
	return f
}
