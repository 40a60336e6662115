package warehouse

import (
	"strings"
	"testing"

	"lakedash/internal/errors"
	"lakedash/ports"
)

func TestValidateIdent(t *testing.T) {
	valid := []string{"main", "sales_2024", "_staging", "Transactions"}
	for _, name := range valid {
		if err := ValidateIdent(name); err != nil {
			t.Errorf("Expected %q to validate, got %v", name, err)
		}
	}

	invalid := []string{"", "1table", "sales-2024", "main.sales", "t;drop", "a b"}
	for _, name := range invalid {
		err := ValidateIdent(name)
		if err == nil {
			t.Errorf("Expected %q to be rejected", name)
			continue
		}
		if errors.GetCode(err) != errors.CodeInvalidInput {
			t.Errorf("Expected INVALID_INPUT for %q, got %s", name, errors.GetCode(err))
		}
	}
}

func TestValidateFilter(t *testing.T) {
	valid := []string{
		"region = 'North'",
		"sales > 100 AND region IN ('North', 'South')",
		"date >= '2026-01-01'",
	}
	for _, f := range valid {
		if err := ValidateFilter(f); err != nil {
			t.Errorf("Expected filter %q to validate, got %v", f, err)
		}
	}

	invalid := []string{
		"1=1; DROP TABLE transactions",
		"region = 'North' -- comment",
		"sales > 0 /* inline */",
		"region = 'North",
	}
	for _, f := range invalid {
		if err := ValidateFilter(f); err == nil {
			t.Errorf("Expected filter %q to be rejected", f)
		}
	}
}

func TestBuildTableQuery(t *testing.T) {
	ref := ports.TableRef{Catalog: "main", Schema: "sales", Table: "transactions"}

	tests := []struct {
		name     string
		opts     ports.QueryOptions
		maxRows  int
		expected string
		hasError bool
	}{
		{
			name:     "no filter uses max rows",
			opts:     ports.QueryOptions{},
			maxRows:  10000,
			expected: "SELECT * FROM main.sales.transactions LIMIT 10000",
		},
		{
			name:     "filter appended as WHERE",
			opts:     ports.QueryOptions{Filter: "region = 'North'", Limit: 50},
			maxRows:  10000,
			expected: "SELECT * FROM main.sales.transactions WHERE region = 'North' LIMIT 50",
		},
		{
			name:     "limit clamped to max rows",
			opts:     ports.QueryOptions{Limit: 99999},
			maxRows:  10000,
			expected: "SELECT * FROM main.sales.transactions LIMIT 10000",
		},
		{
			name:     "injection in filter rejected",
			opts:     ports.QueryOptions{Filter: "1=1; DELETE FROM transactions"},
			maxRows:  10000,
			hasError: true,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			query, err := BuildTableQuery(ref, test.opts, test.maxRows)
			if test.hasError {
				if err == nil {
					t.Fatalf("Expected error, got query %q", query)
				}
				return
			}
			if err != nil {
				t.Fatalf("BuildTableQuery failed: %v", err)
			}
			if query != test.expected {
				t.Errorf("Expected %q, got %q", test.expected, query)
			}
		})
	}
}

func TestBuildTableQueryRejectsBadRef(t *testing.T) {
	ref := ports.TableRef{Catalog: "main", Schema: "sales", Table: "transactions; DROP TABLE x"}
	if _, err := BuildTableQuery(ref, ports.QueryOptions{}, 100); err == nil {
		t.Error("Expected error for malformed table identifier")
	}
}

func TestBuildDSN(t *testing.T) {
	dsn, err := buildDSN(databricksConfig())
	if err != nil {
		t.Fatalf("buildDSN failed: %v", err)
	}
	expected := "token:dapi123@workspace.cloud.databricks.com:443/sql/1.0/warehouses/abc"
	if dsn != expected {
		t.Errorf("Expected %q, got %q", expected, dsn)
	}

	// Missing leading slash on the HTTP path gets normalized
	cfg := databricksConfig()
	cfg.HTTPPath = "sql/1.0/warehouses/abc"
	dsn, err = buildDSN(cfg)
	if err != nil {
		t.Fatalf("buildDSN failed: %v", err)
	}
	if !strings.Contains(dsn, ":443/sql/") {
		t.Errorf("Expected normalized HTTP path in %q", dsn)
	}

	cfg = databricksConfig()
	cfg.Token = ""
	if _, err := buildDSN(cfg); err == nil {
		t.Error("Expected error for missing token")
	}

	cfg = databricksConfig()
	cfg.Driver = "mysql"
	if _, err := buildDSN(cfg); err == nil {
		t.Error("Expected error for unsupported driver")
	}
}
