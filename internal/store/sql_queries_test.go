package store

import (
	"strings"
	"testing"
)

func TestBuildGetAllContactsQuery(t *testing.T) {
	query, args, err := buildGetAllContactsQuery(42)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !strings.Contains(query, "FROM contacts") {
		t.Errorf("expected query to target contacts table, got %q", query)
	}
	if !strings.Contains(query, "user_id = $1") {
		t.Errorf("expected owner-scoped WHERE clause with $1 placeholder, got %q", query)
	}
	if !strings.Contains(query, "ORDER BY created_at DESC") {
		t.Errorf("expected newest-first ordering, got %q", query)
	}
	if len(args) != 1 || args[0] != int64(42) {
		t.Errorf("expected args [42], got %v", args)
	}
}

func TestBuildDeleteContactQuery(t *testing.T) {
	query, args, err := buildDeleteContactQuery(3, 42)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !strings.Contains(query, "DELETE FROM contacts") {
		t.Errorf("expected DELETE on contacts table, got %q", query)
	}
	if !strings.Contains(query, "RETURNING id") {
		t.Errorf("expected RETURNING clause, got %q", query)
	}
	// both the contact id and the owner id must be bound
	if len(args) != 2 {
		t.Fatalf("expected 2 args, got %v", args)
	}
}
