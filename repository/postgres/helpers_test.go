package postgres

import (
	"testing"

	"github.com/healthcare24/backend/repository"
)

func TestClampLimit(t *testing.T) {
	if got := clampLimit(0); got != 200 {
		t.Fatalf("zero limit = %v, want default page 200", got)
	}
	if got := clampLimit(500); got != 200 {
		t.Fatalf("oversized limit = %v, want 200", got)
	}
	if got := clampLimit(50); got != 50 {
		t.Fatalf("in-range limit = %v, want 50", got)
	}
	// NoLimit maps to SQL LIMIT NULL, an unbounded scan.
	if got := clampLimit(repository.NoLimit); got != nil {
		t.Fatalf("NoLimit = %v, want nil", got)
	}
}
