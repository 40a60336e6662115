package warehouse

import (
	"context"
	stderrors "errors"
	"testing"

	"github.com/jmoiron/sqlx"

	"lakedash/internal/config"
	"lakedash/internal/errors"
	"lakedash/ports"
)

func databricksConfig() config.WarehouseConfig {
	return config.WarehouseConfig{
		Driver:   "databricks",
		Hostname: "workspace.cloud.databricks.com",
		HTTPPath: "/sql/1.0/warehouses/abc",
		Token:    "dapi123",
		Catalog:  "main",
		Schema:   "sales",
		Table:    "transactions",
		MaxRows:  10000,
	}
}

// failingDB satisfies queryer and fails every call, standing in for an
// unreachable warehouse.
type failingDB struct {
	err error
}

func (f *failingDB) QueryxContext(ctx context.Context, query string, args ...interface{}) (*sqlx.Rows, error) {
	return nil, f.err
}

func (f *failingDB) PingContext(ctx context.Context) error {
	return f.err
}

func (f *failingDB) Close() error {
	return nil
}

func TestQueryTableUnreachableWarehouse(t *testing.T) {
	cause := stderrors.New("connection refused")
	c := &Connector{db: &failingDB{err: cause}, driver: "databricks", maxRows: 100}

	ref := ports.TableRef{Catalog: "main", Schema: "sales", Table: "transactions"}
	_, err := c.QueryTable(context.Background(), ref, ports.QueryOptions{})
	if err == nil {
		t.Fatal("Expected error from unreachable warehouse")
	}
	if errors.GetCode(err) != errors.CodeExternalService {
		t.Errorf("Expected EXTERNAL_SERVICE_ERROR, got %s", errors.GetCode(err))
	}
	if !stderrors.Is(err, cause) {
		t.Error("Expected wrapped error to preserve the driver cause")
	}
}

func TestQueryTableRejectsBadInputBeforeDriver(t *testing.T) {
	// The stub would return EXTERNAL_SERVICE_ERROR, so INVALID_INPUT proves
	// validation ran before any driver call.
	c := &Connector{db: &failingDB{err: stderrors.New("unreachable")}, driver: "databricks", maxRows: 100}

	ref := ports.TableRef{Catalog: "main", Schema: "sales", Table: "transactions"}
	_, err := c.QueryTable(context.Background(), ref, ports.QueryOptions{Filter: "1=1; DROP TABLE x"})
	if errors.GetCode(err) != errors.CodeInvalidInput {
		t.Errorf("Expected INVALID_INPUT, got %s", errors.GetCode(err))
	}
}

func TestExecuteSQLValidation(t *testing.T) {
	c := &Connector{db: &failingDB{err: stderrors.New("unreachable")}, driver: "databricks", maxRows: 100}
	ctx := context.Background()

	tests := []struct {
		name  string
		query string
		code  string
	}{
		{"empty query", "   ", errors.CodeInvalidInput},
		{"non-select statement", "DELETE FROM t", errors.CodeInvalidInput},
		{"multiple statements", "SELECT 1; SELECT 2", errors.CodeInvalidInput},
		{"valid select reaches driver", "SELECT * FROM t", errors.CodeExternalService},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := c.ExecuteSQL(ctx, test.query)
			if err == nil {
				t.Fatal("Expected error")
			}
			if errors.GetCode(err) != test.code {
				t.Errorf("Expected %s, got %s", test.code, errors.GetCode(err))
			}
		})
	}
}

func TestPingUnreachable(t *testing.T) {
	c := &Connector{db: &failingDB{err: stderrors.New("timeout")}, driver: "postgres", maxRows: 100}
	err := c.Ping(context.Background())
	if errors.GetCode(err) != errors.CodeExternalService {
		t.Errorf("Expected EXTERNAL_SERVICE_ERROR, got %s", errors.GetCode(err))
	}
}
