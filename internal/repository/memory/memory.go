// Package memory provides in-memory implementations of the repository
// interfaces. All stores are safe for concurrent use; create is a
// check-then-insert under a single lock so concurrent registration of the
// same identifier cannot corrupt state.
package memory

import (
	"context"
	"sync"

	"github.com/sns-consultancy/Travel-Planner-Backend/internal/model"
	"github.com/sns-consultancy/Travel-Planner-Backend/internal/repository"
)

// UserStore is an in-memory repository.UserRepository.
type UserStore struct {
	mu     sync.RWMutex
	byName map[string]model.User
}

func NewUserStore() *UserStore {
	return &UserStore{byName: make(map[string]model.User)}
}

func (s *UserStore) Create(ctx context.Context, user *model.User) error {
	_ = ctx
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.byName[user.FullName]; ok {
		return repository.ErrDuplicateUser
	}
	s.byName[user.FullName] = *user
	return nil
}

func (s *UserStore) GetByName(ctx context.Context, fullName string) (*model.User, error) {
	_ = ctx
	s.mu.RLock()
	defer s.mu.RUnlock()
	u, ok := s.byName[fullName]
	if !ok {
		return nil, repository.ErrUserNotFound
	}
	return &u, nil
}

// TripStore is an in-memory repository.TripRepository. It keeps a separate
// insertion-order index so listings are stable.
type TripStore struct {
	mu    sync.RWMutex
	byID  map[string]model.Trip
	order []string
}

func NewTripStore() *TripStore {
	return &TripStore{byID: make(map[string]model.Trip)}
}

func (s *TripStore) Create(ctx context.Context, trip *model.Trip) error {
	_ = ctx
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.byID[trip.ID]; ok {
		return repository.ErrDuplicateTrip
	}
	s.byID[trip.ID] = *trip
	s.order = append(s.order, trip.ID)
	return nil
}

func (s *TripStore) GetByID(ctx context.Context, id string) (*model.Trip, error) {
	_ = ctx
	s.mu.RLock()
	defer s.mu.RUnlock()
	t, ok := s.byID[id]
	if !ok {
		return nil, repository.ErrTripNotFound
	}
	return &t, nil
}

func (s *TripStore) ListByOwner(ctx context.Context, owner string) ([]model.Trip, error) {
	_ = ctx
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.Trip, 0)
	for _, id := range s.order {
		if t := s.byID[id]; t.Owner == owner {
			out = append(out, t)
		}
	}
	return out, nil
}

// LeadStore is an in-memory repository.LeadRepository.
type LeadStore struct {
	mu    sync.RWMutex
	leads []model.Lead
}

func NewLeadStore() *LeadStore {
	return &LeadStore{}
}

func (s *LeadStore) Add(ctx context.Context, lead *model.Lead) error {
	_ = ctx
	s.mu.Lock()
	defer s.mu.Unlock()
	s.leads = append(s.leads, *lead)
	return nil
}

func (s *LeadStore) List(ctx context.Context) ([]model.Lead, error) {
	_ = ctx
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]model.Lead(nil), s.leads...), nil
}
