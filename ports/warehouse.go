package ports

import (
	"context"

	"lakedash/domain/frame"
)

// TableRef addresses a dataset in the warehouse's three-level namespace.
type TableRef struct {
	Catalog string `json:"catalog"`
	Schema  string `json:"schema"`
	Table   string `json:"table"`
}

// QueryOptions narrows a table query. Filter is a WHERE clause body without
// the WHERE keyword; Limit of zero means the connector's configured maximum.
type QueryOptions struct {
	Filter string `json:"filter,omitempty"`
	Limit  int    `json:"limit,omitempty"`
}

// WarehousePort runs read queries against the SQL warehouse and returns
// request-scoped frames.
type WarehousePort interface {
	QueryTable(ctx context.Context, ref TableRef, opts QueryOptions) (*frame.Frame, error)
	ExecuteSQL(ctx context.Context, query string) (*frame.Frame, error)
	Ping(ctx context.Context) error
	Close() error
}
