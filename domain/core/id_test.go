package core

import (
	"testing"
)

// TestNewIDUniqueness tests that NewID generates unique identifiers
func TestNewIDUniqueness(t *testing.T) {
	const numIDs = 10000

	// Generate many IDs
	ids := make(map[ID]bool, numIDs)
	for i := 0; i < numIDs; i++ {
		id := NewID()
		if id.IsEmpty() {
			t.Errorf("Generated empty ID at iteration %d", i)
		}
		if ids[id] {
			t.Errorf("Generated duplicate ID: %s", id)
		}
		ids[id] = true
	}

	if len(ids) != numIDs {
		t.Errorf("Expected %d unique IDs, got %d", numIDs, len(ids))
	}
}

// TestIDString tests ID string conversion
func TestIDString(t *testing.T) {
	id := ID("test-123")
	if id.String() != "test-123" {
		t.Errorf("Expected String() to return 'test-123', got '%s'", id.String())
	}
}

// TestIDIsEmpty tests ID emptiness check
func TestIDIsEmpty(t *testing.T) {
	emptyID := ID("")
	if !emptyID.IsEmpty() {
		t.Error("Expected empty ID to be empty")
	}

	nonEmptyID := ID("not-empty")
	if nonEmptyID.IsEmpty() {
		t.Error("Expected non-empty ID to not be empty")
	}
}

// TestIDShort tests that export suffixes are eight characters
func TestIDShort(t *testing.T) {
	if s := NewID().Short(); len(s) != 8 {
		t.Errorf("Expected 8-character short ID, got %q", s)
	}
	if s := ID("abc").Short(); s != "abc" {
		t.Errorf("Expected short IDs to pass through, got %q", s)
	}
	if s := NewExportID().Short(); len(s) != 8 {
		t.Errorf("Expected 8-character export suffix, got %q", s)
	}
}

// TestParseQueryID tests query ID parsing
func TestParseQueryID(t *testing.T) {
	tests := []struct {
		input    string
		expected QueryID
		hasError bool
	}{
		{"valid-id", QueryID("valid-id"), false},
		{"", "", true},
		{"   ", "", true},
	}

	for _, test := range tests {
		result, err := ParseQueryID(test.input)
		if test.hasError && err == nil {
			t.Errorf("Expected error for input '%s', but got none", test.input)
		}
		if !test.hasError && err != nil {
			t.Errorf("Unexpected error for input '%s': %v", test.input, err)
		}
		if result != test.expected {
			t.Errorf("Expected %s, got %s", test.expected, result)
		}
	}
}

// TestParseExportID tests export ID parsing
func TestParseExportID(t *testing.T) {
	tests := []struct {
		input    string
		expected ExportID
		hasError bool
	}{
		{"export-123", ExportID("export-123"), false},
		{"", "", true},
	}

	for _, test := range tests {
		result, err := ParseExportID(test.input)
		if test.hasError && err == nil {
			t.Errorf("Expected error for input '%s', but got none", test.input)
		}
		if !test.hasError && err != nil {
			t.Errorf("Unexpected error for input '%s': %v", test.input, err)
		}
		if result != test.expected {
			t.Errorf("Expected %s, got %s", test.expected, result)
		}
	}
}
