package core

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// ID represents a domain identifier
type ID string

// NewID creates a new unique identifier using UUID v7 for time-ordered generation
func NewID() ID {
	// Use UUID v7 for time-ordered, sortable IDs
	// Falls back to v4 if v7 is not available (for compatibility)
	id, err := uuid.NewV7()
	if err != nil {
		id = uuid.New()
	}
	return ID(id.String())
}

// String returns the string representation
func (id ID) String() string {
	return string(id)
}

// Short returns the first eight characters, used to disambiguate export
// filenames without making them unwieldy.
func (id ID) Short() string {
	if len(id) < 8 {
		return string(id)
	}
	return string(id)[:8]
}

// IsEmpty checks if the ID is empty
func (id ID) IsEmpty() bool {
	return id == ""
}

// Domain-specific ID types
type (
	QueryID  ID
	ExportID ID
)

// NewQueryID creates a unique identifier for one warehouse query execution
func NewQueryID() QueryID {
	return QueryID(NewID())
}

// NewExportID creates a unique identifier for one download
func NewExportID() ExportID {
	return ExportID(NewID())
}

// String conversions for domain IDs
func (id QueryID) String() string  { return ID(id).String() }
func (id ExportID) String() string { return ID(id).String() }

// Short conversions for domain IDs
func (id QueryID) Short() string  { return ID(id).Short() }
func (id ExportID) Short() string { return ID(id).Short() }

// ParseQueryID parses a string into QueryID
func ParseQueryID(s string) (QueryID, error) {
	if strings.TrimSpace(s) == "" {
		return "", fmt.Errorf("query ID cannot be empty")
	}
	return QueryID(s), nil
}

// ParseExportID parses a string into ExportID
func ParseExportID(s string) (ExportID, error) {
	if strings.TrimSpace(s) == "" {
		return "", fmt.Errorf("export ID cannot be empty")
	}
	return ExportID(s), nil
}
