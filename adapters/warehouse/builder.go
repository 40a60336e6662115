package warehouse

import (
	"fmt"
	"regexp"
	"strings"

	"lakedash/internal/errors"
	"lakedash/ports"
)

// identPattern matches the identifiers the warehouse namespace allows. Keeping
// this strict is what lets the builder interpolate them directly.
var identPattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// ValidateIdent checks that a catalog/schema/table name is a plain identifier.
func ValidateIdent(name string) error {
	if !identPattern.MatchString(name) {
		return errors.InvalidInput(fmt.Sprintf("invalid identifier %q", name))
	}
	return nil
}

// ValidateFilter screens a WHERE clause body. Filters are user-supplied
// expressions, so statement separators, comment tokens, and unbalanced quotes
// are rejected before the string ever reaches the warehouse.
func ValidateFilter(filter string) error {
	if strings.ContainsRune(filter, ';') {
		return errors.InvalidInput("filter must not contain statement separators")
	}
	if strings.Contains(filter, "--") || strings.Contains(filter, "/*") || strings.Contains(filter, "*/") {
		return errors.InvalidInput("filter must not contain comment tokens")
	}
	if strings.Count(filter, "'")%2 != 0 {
		return errors.InvalidInput("filter has unbalanced quotes")
	}
	return nil
}

// BuildTableQuery assembles the SELECT statement for a table query:
// SELECT * FROM catalog.schema.table [WHERE filter] [LIMIT n].
// The limit is clamped to maxRows; a zero limit means maxRows.
func BuildTableQuery(ref ports.TableRef, opts ports.QueryOptions, maxRows int) (string, error) {
	for _, ident := range []string{ref.Catalog, ref.Schema, ref.Table} {
		if err := ValidateIdent(ident); err != nil {
			return "", err
		}
	}

	var b strings.Builder
	fmt.Fprintf(&b, "SELECT * FROM %s.%s.%s", ref.Catalog, ref.Schema, ref.Table)

	if filter := strings.TrimSpace(opts.Filter); filter != "" {
		if err := ValidateFilter(filter); err != nil {
			return "", err
		}
		fmt.Fprintf(&b, " WHERE %s", filter)
	}

	limit := opts.Limit
	if limit <= 0 || limit > maxRows {
		limit = maxRows
	}
	fmt.Fprintf(&b, " LIMIT %d", limit)

	return b.String(), nil
}
