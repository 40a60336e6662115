package sampledata

import (
	"hash/fnv"
	"math/rand"
	"time"

	"gonum.org/v1/gonum/stat/distuv"

	"lakedash/domain/frame"
)

// Config configures the sample data generators
type Config struct {
	Seed int64 `json:"seed"`
	Days int   `json:"days"`
}

// DefaultConfig returns sensible defaults for demo data generation
func DefaultConfig() Config {
	return Config{
		Seed: 42,
		Days: 30,
	}
}

// Generator produces deterministic synthetic frames for offline demos.
// Each dataset draws from its own named stream so adding a generator never
// shifts the sequences of the existing ones.
type Generator struct {
	config Config
}

// New creates a new sample data generator
func New(config Config) *Generator {
	return &Generator{config: config}
}

// SeededStream creates a deterministic RNG for a named operation.
func (g *Generator) SeededStream(name string, seed int64) *rand.Rand {
	h := fnv.New64a()
	h.Write([]byte(name))
	return rand.New(rand.NewSource(seed ^ int64(h.Sum64())))
}

func (g *Generator) stream(name string) *rand.Rand {
	return g.SeededStream(name, g.config.Seed)
}

// dashboardRegions are the category values the demo dashboard filters on.
var dashboardRegions = []string{"North", "South", "East", "West"}

// Regions lists the category values Dashboard draws regions from.
func (g *Generator) Regions() []string {
	out := make([]string, len(dashboardRegions))
	copy(out, dashboardRegions)
	return out
}

// Dashboard generates the demo dataset backing the main page: one row per day
// over the trailing window with sales, revenue, customers, and region.
func (g *Generator) Dashboard(days int) *frame.Frame {
	if days <= 0 {
		days = g.config.Days
	}
	rng := g.stream("dashboard")
	revenue := distuv.Uniform{Min: 1000, Max: 10000, Src: rng}

	f := frame.New(
		frame.Column{Name: "date", Kind: frame.KindTime},
		frame.Column{Name: "sales", Kind: frame.KindInteger},
		frame.Column{Name: "revenue", Kind: frame.KindNumber},
		frame.Column{Name: "customers", Kind: frame.KindInteger},
		frame.Column{Name: "region", Kind: frame.KindCategory},
	)

	start := midnight(time.Now()).AddDate(0, 0, -days)
	for i := 0; i <= days; i++ {
		date := start.AddDate(0, 0, i)
		f.MustAppendRow(
			date,
			100+rng.Intn(900),
			revenue.Rand(),
			10+rng.Intn(90),
			dashboardRegions[rng.Intn(len(dashboardRegions))],
		)
	}
	return f
}

// weightedChoice picks a value using cumulative weights. Weights should sum
// to 1; the first value is the fallback for rounding drift.
func weightedChoice(rng *rand.Rand, values []string, weights []float64) string {
	r := rng.Float64()
	cumulative := 0.0
	for i, weight := range weights {
		cumulative += weight
		if r <= cumulative {
			return values[i]
		}
	}
	return values[0]
}

func midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
