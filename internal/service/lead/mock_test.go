package lead

import (
	"context"
	"errors"
	"testing"
)

func TestMockInsertAssignsDistinctIDs(t *testing.T) {
	repo := NewMockRepository()
	ctx := context.Background()

	l := &Lead{Name: "Jane Doe", Email: "jane@example.com"}

	seen := make(map[string]struct{})
	for i := 0; i < 25; i++ {
		id, err := repo.Insert(ctx, l)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if id == "" {
			t.Fatal("expected a non-empty identifier")
		}
		if _, dup := seen[id]; dup {
			t.Fatalf("identifier %q returned twice", id)
		}
		seen[id] = struct{}{}
	}

	// Duplicates are permitted: the same payload produced 25 distinct records.
	if repo.Len() != 25 {
		t.Fatalf("expected 25 stored leads, got %d", repo.Len())
	}
}

func TestMockInsertFailureInjection(t *testing.T) {
	repo := NewMockRepository()
	want := &PersistenceError{Op: "insert", Category: "unavailable", Err: errors.New("store down")}
	repo.FailInsertsWith(want)

	_, err := repo.Insert(context.Background(), &Lead{Name: "Jane", Email: "jane@example.com"})
	var pe *PersistenceError
	if !errors.As(err, &pe) {
		t.Fatalf("expected *PersistenceError, got %v", err)
	}
	if repo.Len() != 0 {
		t.Fatalf("expected nothing persisted, got %d", repo.Len())
	}

	repo.FailInsertsWith(nil)
	if _, err := repo.Insert(context.Background(), &Lead{Name: "Jane", Email: "jane@example.com"}); err != nil {
		t.Fatalf("expected insert to recover, got %v", err)
	}
}

func TestMockListPagination(t *testing.T) {
	repo := NewMockRepository()
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		if _, err := repo.Insert(ctx, &Lead{Name: "Jane Doe", Email: "jane@example.com"}); err != nil {
			t.Fatalf("insert failed: %v", err)
		}
	}

	first, hasMore, err := repo.List(ctx, "", 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(first) != 3 || !hasMore {
		t.Fatalf("expected 3 leads and more remaining, got %d (more=%v)", len(first), hasMore)
	}

	rest, hasMore, err := repo.List(ctx, first[len(first)-1].ID, 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(rest) != 2 || hasMore {
		t.Fatalf("expected 2 leads and no more remaining, got %d (more=%v)", len(rest), hasMore)
	}

	// Pages must not overlap.
	seen := make(map[string]struct{})
	for _, sl := range append(first, rest...) {
		if _, dup := seen[sl.ID]; dup {
			t.Fatalf("lead %q appeared on two pages", sl.ID)
		}
		seen[sl.ID] = struct{}{}
	}
}

func TestMockCollections(t *testing.T) {
	repo := NewMockRepository()
	ctx := context.Background()

	names, err := repo.Collections(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(names) != 0 {
		t.Fatalf("expected no collections before first insert, got %v", names)
	}

	if _, err := repo.Insert(ctx, &Lead{Name: "Jane", Email: "jane@example.com"}); err != nil {
		t.Fatalf("insert failed: %v", err)
	}

	names, err = repo.Collections(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(names) != 1 || names[0] != "lead" {
		t.Fatalf("expected [lead], got %v", names)
	}
}

func TestPersistenceErrorUnwrap(t *testing.T) {
	cause := errors.New("connection refused")
	pe := &PersistenceError{Op: "insert", Category: "unavailable", Err: cause}

	if !errors.Is(pe, cause) {
		t.Error("expected PersistenceError to unwrap to its cause")
	}
	if pe.Error() == "" {
		t.Error("expected a non-empty error string")
	}
}
