package utils

import (
	"testing"

	"github.com/google/uuid"
)

func TestNewRequestID(t *testing.T) {
	first := NewRequestID()
	second := NewRequestID()

	if first == second {
		t.Fatal("expected distinct request ids")
	}

	parsed, err := uuid.Parse(first)
	if err != nil {
		t.Fatalf("expected a valid uuid, got %q: %v", first, err)
	}
	if parsed.Version() != 7 {
		t.Errorf("expected version 7, got %d", parsed.Version())
	}
}
