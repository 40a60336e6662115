package warehouse

import (
	"context"
	"fmt"
	"strings"
	"time"

	_ "github.com/databricks/databricks-sql-go"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"

	"lakedash/domain/core"
	"lakedash/domain/frame"
	"lakedash/internal"
	"lakedash/internal/config"
	"lakedash/internal/errors"
	"lakedash/ports"
)

// queryer is the slice of *sqlx.DB the connector needs. Keeping it narrow lets
// tests exercise the error paths without a live warehouse.
type queryer interface {
	QueryxContext(ctx context.Context, query string, args ...interface{}) (*sqlx.Rows, error)
	PingContext(ctx context.Context) error
	Close() error
}

// Connector wraps a SQL warehouse connection behind the WarehousePort. It
// performs parameterized statement assembly and delegates execution to the
// underlying driver; there is no retry or backoff on failure.
type Connector struct {
	db      queryer
	driver  string
	maxRows int
}

var _ ports.WarehousePort = (*Connector)(nil)

// Open creates a warehouse connector from configuration. The connection is
// verified with a ping before the connector is returned.
func Open(ctx context.Context, cfg config.WarehouseConfig) (*Connector, error) {
	dsn, err := buildDSN(cfg)
	if err != nil {
		return nil, err
	}

	db, err := sqlx.Open(cfg.Driver, dsn)
	if err != nil {
		return nil, errors.ExternalServiceError("warehouse", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, 15*time.Second)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		db.Close()
		return nil, errors.ExternalServiceError("warehouse", err)
	}

	return &Connector{db: db, driver: cfg.Driver, maxRows: cfg.MaxRows}, nil
}

// buildDSN assembles the driver connection string. Databricks warehouses are
// addressed by hostname + HTTP path + personal access token.
func buildDSN(cfg config.WarehouseConfig) (string, error) {
	switch cfg.Driver {
	case "databricks":
		if cfg.Hostname == "" || cfg.HTTPPath == "" || cfg.Token == "" {
			return "", errors.ConfigInvalid("databricks warehouse requires hostname, HTTP path, and token")
		}
		httpPath := cfg.HTTPPath
		if !strings.HasPrefix(httpPath, "/") {
			httpPath = "/" + httpPath
		}
		return fmt.Sprintf("token:%s@%s:443%s", cfg.Token, cfg.Hostname, httpPath), nil
	case "postgres":
		if cfg.PostgresDSN == "" {
			return "", errors.ConfigInvalid("postgres warehouse requires WAREHOUSE_POSTGRES_DSN")
		}
		return cfg.PostgresDSN, nil
	default:
		return "", errors.ConfigInvalid(fmt.Sprintf("unsupported warehouse driver %q", cfg.Driver))
	}
}

// QueryTable runs SELECT * against a three-level table address with optional
// filter and limit, returning the result as a frame.
func (c *Connector) QueryTable(ctx context.Context, ref ports.TableRef, opts ports.QueryOptions) (*frame.Frame, error) {
	query, err := BuildTableQuery(ref, opts, c.maxRows)
	if err != nil {
		return nil, err
	}
	return c.run(ctx, query)
}

// ExecuteSQL runs a custom read-only statement and returns the result as a
// frame. Only single SELECT statements are accepted.
func (c *Connector) ExecuteSQL(ctx context.Context, query string) (*frame.Frame, error) {
	trimmed := strings.TrimSpace(query)
	if trimmed == "" {
		return nil, errors.InvalidInput("query is empty")
	}
	if !strings.HasPrefix(strings.ToUpper(trimmed), "SELECT") {
		return nil, errors.InvalidInput("only SELECT statements are allowed")
	}
	if strings.Contains(strings.TrimRight(trimmed, ";"), ";") {
		return nil, errors.InvalidInput("multiple statements are not allowed")
	}
	return c.run(ctx, strings.TrimRight(trimmed, ";"))
}

func (c *Connector) run(ctx context.Context, query string) (*frame.Frame, error) {
	qid := core.NewQueryID()
	internal.DefaultLogger.Debug("[warehouse] query %s: %s", qid.Short(), query)

	start := time.Now()
	rows, err := c.db.QueryxContext(ctx, query)
	if err != nil {
		internal.DefaultLogger.Warn("[warehouse] query %s failed after %v: %v", qid.Short(), time.Since(start), err)
		return nil, errors.ExternalServiceError("warehouse", err)
	}
	defer rows.Close()

	f, err := rowsToFrame(rows)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read query result")
	}
	internal.DefaultLogger.Debug("[warehouse] query %s: %d rows in %v", qid.Short(), f.RowCount(), time.Since(start))
	return f, nil
}

// Ping checks warehouse reachability for the health endpoint.
func (c *Connector) Ping(ctx context.Context) error {
	if err := c.db.PingContext(ctx); err != nil {
		return errors.ExternalServiceError("warehouse", err)
	}
	return nil
}

// Close releases the underlying connection pool.
func (c *Connector) Close() error {
	return c.db.Close()
}
