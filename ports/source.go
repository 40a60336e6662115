package ports

import (
	"lakedash/domain/frame"
)

// SampleSourcePort produces synthetic frames for offline demos. Every method
// is deterministic for a fixed generator seed.
type SampleSourcePort interface {
	// Dashboard returns the demo dataset backing the main page:
	// date, sales, revenue, customers, region over the trailing day count.
	Dashboard(days int) *frame.Frame

	// Regions lists the category values Dashboard draws regions from.
	Regions() []string
}
