package memory

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/sns-consultancy/Travel-Planner-Backend/internal/model"
	"github.com/sns-consultancy/Travel-Planner-Backend/internal/repository"
)

func TestUserStoreCreateAndGet(t *testing.T) {
	store := NewUserStore()
	ctx := context.Background()

	user := &model.User{ID: "u1", FullName: "alice", Country: "USA"}
	if err := store.Create(ctx, user); err != nil {
		t.Fatalf("Create() unexpected error: %v", err)
	}

	got, err := store.GetByName(ctx, "alice")
	if err != nil {
		t.Fatalf("GetByName() unexpected error: %v", err)
	}
	if got.ID != "u1" || got.Country != "USA" {
		t.Errorf("GetByName() = %+v, want stored user", got)
	}
}

func TestUserStoreDuplicate(t *testing.T) {
	store := NewUserStore()
	ctx := context.Background()

	if err := store.Create(ctx, &model.User{ID: "u1", FullName: "alice"}); err != nil {
		t.Fatalf("Create() unexpected error: %v", err)
	}

	err := store.Create(ctx, &model.User{ID: "u2", FullName: "alice"})
	if !errors.Is(err, repository.ErrDuplicateUser) {
		t.Fatalf("Create() error = %v, want ErrDuplicateUser", err)
	}

	// The first record must survive the rejected duplicate.
	got, err := store.GetByName(ctx, "alice")
	if err != nil {
		t.Fatalf("GetByName() unexpected error: %v", err)
	}
	if got.ID != "u1" {
		t.Errorf("GetByName() ID = %q, want %q", got.ID, "u1")
	}
}

func TestUserStoreGetMissing(t *testing.T) {
	store := NewUserStore()

	_, err := store.GetByName(context.Background(), "nobody")
	if !errors.Is(err, repository.ErrUserNotFound) {
		t.Errorf("GetByName() error = %v, want ErrUserNotFound", err)
	}
}

func TestTripStoreListByOwnerInsertionOrder(t *testing.T) {
	store := NewTripStore()
	ctx := context.Background()

	// Interleave owners to prove listing filters and preserves order.
	for i := 0; i < 6; i++ {
		owner := "alice"
		if i%2 == 1 {
			owner = "bob"
		}
		trip := &model.Trip{ID: fmt.Sprintf("t%d", i), Destination: "Paris", Owner: owner}
		if err := store.Create(ctx, trip); err != nil {
			t.Fatalf("Create() unexpected error: %v", err)
		}
	}

	trips, err := store.ListByOwner(ctx, "alice")
	if err != nil {
		t.Fatalf("ListByOwner() unexpected error: %v", err)
	}
	if len(trips) != 3 {
		t.Fatalf("ListByOwner() returned %d trips, want 3", len(trips))
	}
	for i, want := range []string{"t0", "t2", "t4"} {
		if trips[i].ID != want {
			t.Errorf("ListByOwner()[%d].ID = %q, want %q", i, trips[i].ID, want)
		}
	}
}

func TestTripStoreListByOwnerEmpty(t *testing.T) {
	store := NewTripStore()

	trips, err := store.ListByOwner(context.Background(), "alice")
	if err != nil {
		t.Fatalf("ListByOwner() unexpected error: %v", err)
	}
	if trips == nil {
		t.Fatal("ListByOwner() returned nil, want empty slice")
	}
	if len(trips) != 0 {
		t.Errorf("ListByOwner() returned %d trips, want 0", len(trips))
	}
}

func TestTripStoreGetMissing(t *testing.T) {
	store := NewTripStore()

	_, err := store.GetByID(context.Background(), "no-such-id")
	if !errors.Is(err, repository.ErrTripNotFound) {
		t.Errorf("GetByID() error = %v, want ErrTripNotFound", err)
	}
}

func TestTripStoreDuplicateID(t *testing.T) {
	store := NewTripStore()
	ctx := context.Background()

	if err := store.Create(ctx, &model.Trip{ID: "t1", Owner: "alice"}); err != nil {
		t.Fatalf("Create() unexpected error: %v", err)
	}

	err := store.Create(ctx, &model.Trip{ID: "t1", Owner: "bob"})
	if !errors.Is(err, repository.ErrDuplicateTrip) {
		t.Errorf("Create() error = %v, want ErrDuplicateTrip", err)
	}
}

func TestLeadStoreAppendOnly(t *testing.T) {
	store := NewLeadStore()
	ctx := context.Background()

	for _, vendor := range []string{"Acme Tours", "City Guides"} {
		if err := store.Add(ctx, &model.Lead{Vendor: vendor, Details: "callback requested"}); err != nil {
			t.Fatalf("Add() unexpected error: %v", err)
		}
	}

	leads, err := store.List(ctx)
	if err != nil {
		t.Fatalf("List() unexpected error: %v", err)
	}
	if len(leads) != 2 {
		t.Fatalf("List() returned %d leads, want 2", len(leads))
	}
	if leads[0].Vendor != "Acme Tours" || leads[1].Vendor != "City Guides" {
		t.Errorf("List() order = [%q, %q], want append order", leads[0].Vendor, leads[1].Vendor)
	}
}
