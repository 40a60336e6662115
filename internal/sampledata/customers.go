package sampledata

import (
	"fmt"
	"time"

	"gonum.org/v1/gonum/stat/distuv"

	"lakedash/domain/frame"
)

var (
	customerSegments       = []string{"Premium", "Standard", "Basic"}
	customerSegmentWeights = []float64{0.2, 0.5, 0.3}

	customerStatuses      = []string{"Active", "Inactive", "Churned"}
	customerStatusWeights = []float64{0.7, 0.2, 0.1}

	customerCountries = []string{"USA", "UK", "Germany", "France", "Canada", "Australia", "Japan"}
)

// Customers generates demographic and behavior records for n customers.
func (g *Generator) Customers(n int) *frame.Frame {
	if n <= 0 {
		n = 500
	}

	rng := g.stream("customers")
	lifetimeValue := distuv.Uniform{Min: 100, Max: 10000, Src: rng}
	orderValue := distuv.Uniform{Min: 20, Max: 500, Src: rng}

	f := frame.New(
		frame.Column{Name: "customer_id", Kind: frame.KindCategory},
		frame.Column{Name: "signup_date", Kind: frame.KindTime},
		frame.Column{Name: "segment", Kind: frame.KindCategory},
		frame.Column{Name: "status", Kind: frame.KindCategory},
		frame.Column{Name: "country", Kind: frame.KindCategory},
		frame.Column{Name: "total_purchases", Kind: frame.KindInteger},
		frame.Column{Name: "lifetime_value", Kind: frame.KindNumber},
		frame.Column{Name: "average_order_value", Kind: frame.KindNumber},
	)

	now := time.Now()
	for i := 0; i < n; i++ {
		f.MustAppendRow(
			fmt.Sprintf("CUST_%05d", i),
			now.AddDate(0, 0, -rng.Intn(730)),
			weightedChoice(rng, customerSegments, customerSegmentWeights),
			weightedChoice(rng, customerStatuses, customerStatusWeights),
			customerCountries[rng.Intn(len(customerCountries))],
			1+rng.Intn(99),
			lifetimeValue.Rand(),
			orderValue.Rand(),
		)
	}
	return f
}
