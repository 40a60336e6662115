package app

import (
	"context"

	"golang.org/x/sync/errgroup"

	"lakedash/domain/core"
	"lakedash/domain/frame"
	"lakedash/internal/config"
	"lakedash/internal/errors"
	"lakedash/internal/summary"
	"lakedash/ports"
)

// Source names for the dashboard's data source selector.
const (
	SourceSample    = "sample"
	SourceWarehouse = "warehouse"
)

// DataRequest captures the sidebar state for one page load: data source,
// date window, region selection, and the optional warehouse filter/limit.
type DataRequest struct {
	Source  string         `json:"source"`
	Range   core.DateRange `json:"range"`
	Regions []string       `json:"regions"`
	Filter  string         `json:"filter,omitempty"`
	Limit   int            `json:"limit,omitempty"`
}

// DashboardData is the single response backing one dashboard render: the
// metric cards, the three chart payloads, and the filtered frame's shape.
type DashboardData struct {
	Source   string             `json:"source"`
	Metrics  summary.KeyMetrics `json:"metrics"`
	Line     LineChart          `json:"line"`
	Pie      PieChart           `json:"pie"`
	Scatter  ScatterChart       `json:"scatter"`
	Columns  []frame.Column     `json:"columns"`
	RowCount int                `json:"row_count"`
	Empty    bool               `json:"empty"`

	GeneratedAt core.Timestamp `json:"generated_at"`
}

// HealthStatus reports source availability for the health endpoint.
type HealthStatus struct {
	Status        string `json:"status"`
	DefaultSource string `json:"default_source"`
	Warehouse     string `json:"warehouse"`
}

// DashboardService selects a data source, applies the sidebar filters, and
// shapes the result for rendering. It holds no per-request state.
type DashboardService struct {
	config    *config.Config
	sample    ports.SampleSourcePort
	warehouse ports.WarehousePort // nil when unconfigured
}

// NewDashboardService creates the dashboard service. The warehouse port may
// be nil, in which case warehouse requests return a displayed error.
func NewDashboardService(cfg *config.Config, sample ports.SampleSourcePort, wh ports.WarehousePort) *DashboardService {
	return &DashboardService{config: cfg, sample: sample, warehouse: wh}
}

// Regions lists the filterable region values.
func (s *DashboardService) Regions() []string {
	return s.sample.Regions()
}

// DefaultSource returns the configured default data source.
func (s *DashboardService) DefaultSource() string {
	return s.config.Data.DefaultSource
}

// WarehouseAvailable reports whether a warehouse connection exists.
func (s *DashboardService) WarehouseAvailable() bool {
	return s.warehouse != nil
}

// Frame fetches the dataset for a request and applies the in-memory filters.
// This is the shared path behind the dashboard, the raw table, and downloads.
func (s *DashboardService) Frame(ctx context.Context, req DataRequest) (*frame.Frame, error) {
	f, err := s.fetch(ctx, req)
	if err != nil {
		return nil, err
	}

	if f.ColumnIndex("date") >= 0 {
		f, err = f.ByDateRange("date", req.Range)
		if err != nil {
			return nil, errors.Wrap(err, "date filter failed")
		}
	}
	if f.ColumnIndex("region") >= 0 {
		f, err = f.ByCategories("region", req.Regions)
		if err != nil {
			return nil, errors.Wrap(err, "region filter failed")
		}
	}
	return f, nil
}

// Load produces the full dashboard payload. The three chart payloads are
// independent projections of the same frame, so they are built concurrently.
func (s *DashboardService) Load(ctx context.Context, req DataRequest) (*DashboardData, error) {
	f, err := s.Frame(ctx, req)
	if err != nil {
		return nil, err
	}

	data := &DashboardData{
		Source:      s.resolveSource(req.Source),
		Columns:     f.Columns,
		RowCount:    f.RowCount(),
		Empty:       f.IsEmpty(),
		GeneratedAt: core.Now(),
	}

	metrics, err := summary.Compute(f)
	if err != nil {
		return nil, errors.Wrap(err, "metric computation failed")
	}
	data.Metrics = metrics

	g, _ := errgroup.WithContext(ctx)
	g.Go(func() error {
		line, err := BuildLineChart(f, "date", "sales")
		if err == nil {
			data.Line = line
		}
		return err
	})
	g.Go(func() error {
		pie, err := BuildPieChart(f, "region", "revenue")
		if err == nil {
			data.Pie = pie
		}
		return err
	})
	g.Go(func() error {
		scatter, err := BuildScatterChart(f, "customers", "revenue", "sales", "region")
		if err == nil {
			data.Scatter = scatter
		}
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, errors.Wrap(err, "chart assembly failed")
	}

	return data, nil
}

// Health reports reachability of the configured sources.
func (s *DashboardService) Health(ctx context.Context) HealthStatus {
	status := HealthStatus{
		Status:        "ok",
		DefaultSource: s.config.Data.DefaultSource,
		Warehouse:     "not configured",
	}
	if s.warehouse != nil {
		if err := s.warehouse.Ping(ctx); err != nil {
			status.Warehouse = "unreachable"
		} else {
			status.Warehouse = "ok"
		}
	}
	return status
}

func (s *DashboardService) resolveSource(source string) string {
	if source == "" {
		return s.config.Data.DefaultSource
	}
	return source
}

func (s *DashboardService) fetch(ctx context.Context, req DataRequest) (*frame.Frame, error) {
	switch s.resolveSource(req.Source) {
	case SourceSample:
		return s.sample.Dashboard(s.config.Data.SampleDays), nil
	case SourceWarehouse:
		if s.warehouse == nil {
			return nil, errors.New(errors.CodeConfigInvalid, "warehouse is not configured")
		}
		ref := ports.TableRef{
			Catalog: s.config.Warehouse.Catalog,
			Schema:  s.config.Warehouse.Schema,
			Table:   s.config.Warehouse.Table,
		}
		return s.warehouse.QueryTable(ctx, ref, ports.QueryOptions{
			Filter: req.Filter,
			Limit:  req.Limit,
		})
	default:
		return nil, errors.InvalidInput("unknown data source: " + req.Source)
	}
}
