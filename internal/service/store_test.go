package service

import (
	"context"
	"sync"
	"time"

	"github.com/203225014/WB-calc/internal/model"
	"github.com/203225014/WB-calc/internal/repository"
)

// memUserStore is an in-memory UserStore for tests.
type memUserStore struct {
	mu     sync.Mutex
	nextID int64
	users  map[string]*model.User
}

func newMemUserStore() *memUserStore {
	return &memUserStore{users: make(map[string]*model.User)}
}

func (s *memUserStore) Create(_ context.Context, user *model.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.users[user.Email]; ok {
		return repository.ErrDuplicateEmail
	}
	s.nextID++
	user.ID = s.nextID
	cp := *user
	s.users[user.Email] = &cp
	return nil
}

func (s *memUserStore) GetByEmail(_ context.Context, email string) (*model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[email]
	if !ok {
		return nil, repository.ErrUserNotFound
	}
	cp := *u
	return &cp, nil
}

func (s *memUserStore) GetByID(_ context.Context, id int64) (*model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.ID == id {
			cp := *u
			return &cp, nil
		}
	}
	return nil, repository.ErrUserNotFound
}

// memCalcStore is an in-memory CalculationStore for tests.
type memCalcStore struct {
	mu     sync.Mutex
	nextID int64
	calcs  []model.Calculation
	err    error
}

func (s *memCalcStore) Create(_ context.Context, calc *model.Calculation) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return s.err
	}
	s.nextID++
	calc.ID = s.nextID
	calc.CreatedAt = time.Now().UTC()
	// Prepend so the slice is already newest-first like the repository.
	s.calcs = append([]model.Calculation{*calc}, s.calcs...)
	return nil
}

func (s *memCalcStore) ListByOwner(_ context.Context, ownerID int64, offset, limit int) ([]model.Calculation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return nil, s.err
	}
	var owned []model.Calculation
	for _, c := range s.calcs {
		if c.UserID == ownerID {
			owned = append(owned, c)
		}
	}
	return page(owned, offset, limit), nil
}

func (s *memCalcStore) ListAll(_ context.Context, offset, limit int) ([]model.Calculation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return nil, s.err
	}
	return page(s.calcs, offset, limit), nil
}

func page(calcs []model.Calculation, offset, limit int) []model.Calculation {
	if offset >= len(calcs) {
		return nil
	}
	end := offset + limit
	if end > len(calcs) {
		end = len(calcs)
	}
	return calcs[offset:end]
}
