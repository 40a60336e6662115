package sampledata

import (
	"fmt"
	"sort"
	"time"

	"gonum.org/v1/gonum/stat/distuv"

	"lakedash/domain/frame"
)

// SalesConfig configures the sales transaction generator
type SalesConfig struct {
	Records  int `json:"records"`
	Products int `json:"products"`
	Regions  int `json:"regions"`
}

// DefaultSalesConfig returns defaults for a year of demo transactions
func DefaultSalesConfig() SalesConfig {
	return SalesConfig{
		Records:  1000,
		Products: 20,
		Regions:  5,
	}
}

var paymentMethods = []string{"Credit Card", "Debit Card", "PayPal", "Bank Transfer"}

// discountLevels and their draw probabilities: half the transactions carry no
// discount, deeper cuts get progressively rarer.
var (
	discountLevels  = []float64{0, 0.05, 0.10, 0.15, 0.20}
	discountWeights = []float64{0.5, 0.2, 0.15, 0.1, 0.05}
)

// Sales generates transaction records spread over the trailing year, sorted
// newest-first the way the raw-data table displays them.
func (g *Generator) Sales(cfg SalesConfig) *frame.Frame {
	if cfg.Records <= 0 {
		cfg.Records = 1000
	}
	if cfg.Products <= 0 {
		cfg.Products = 20
	}
	if cfg.Regions <= 0 {
		cfg.Regions = 5
	}

	rng := g.stream("sales")
	unitPrice := distuv.Uniform{Min: 10, Max: 500, Src: rng}

	type record struct {
		id            string
		date          time.Time
		product       string
		region        string
		quantity      int
		unitPrice     float64
		paymentMethod string
		discount      float64
	}

	now := time.Now()
	records := make([]record, cfg.Records)
	for i := range records {
		records[i] = record{
			id:            fmt.Sprintf("TXN_%06d", i),
			date:          now.AddDate(0, 0, -rng.Intn(365)),
			product:       fmt.Sprintf("Product_%d", rng.Intn(cfg.Products)+1),
			region:        fmt.Sprintf("Region_%d", rng.Intn(cfg.Regions)+1),
			quantity:      1 + rng.Intn(9),
			unitPrice:     unitPrice.Rand(),
			paymentMethod: paymentMethods[rng.Intn(len(paymentMethods))],
			discount:      pickDiscount(rng.Float64()),
		}
	}

	sort.SliceStable(records, func(i, j int) bool {
		return records[i].date.After(records[j].date)
	})

	f := frame.New(
		frame.Column{Name: "transaction_id", Kind: frame.KindCategory},
		frame.Column{Name: "date", Kind: frame.KindTime},
		frame.Column{Name: "product", Kind: frame.KindCategory},
		frame.Column{Name: "region", Kind: frame.KindCategory},
		frame.Column{Name: "quantity", Kind: frame.KindInteger},
		frame.Column{Name: "unit_price", Kind: frame.KindNumber},
		frame.Column{Name: "payment_method", Kind: frame.KindCategory},
		frame.Column{Name: "total_amount", Kind: frame.KindNumber},
		frame.Column{Name: "discount", Kind: frame.KindNumber},
		frame.Column{Name: "final_amount", Kind: frame.KindNumber},
	)
	for _, r := range records {
		total := float64(r.quantity) * r.unitPrice
		f.MustAppendRow(
			r.id,
			r.date,
			r.product,
			r.region,
			r.quantity,
			r.unitPrice,
			r.paymentMethod,
			total,
			r.discount,
			total*(1-r.discount),
		)
	}
	return f
}

func pickDiscount(r float64) float64 {
	cumulative := 0.0
	for i, weight := range discountWeights {
		cumulative += weight
		if r <= cumulative {
			return discountLevels[i]
		}
	}
	return discountLevels[0]
}
