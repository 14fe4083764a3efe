package store

import (
	"context"
	"sort"
	"sync"
	"time"

	"user-management-api/internal/constants"
	"user-management-api/internal/models"
)

// memoryStore keeps accounts in a mutex-guarded map. It backs tests and
// local runs without a database. IDs are allocated from a monotonically
// increasing counter and never reused.
type memoryStore struct {
	mu     sync.Mutex
	users  map[uint]models.User
	nextID uint
}

// NewMemoryStore returns an empty in-memory UserStore.
func NewMemoryStore() UserStore {
	return &memoryStore{
		users:  make(map[uint]models.User),
		nextID: 1,
	}
}

func (s *memoryStore) Create(_ context.Context, user *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.users {
		if u.Email == user.Email {
			return ErrDuplicateEmail
		}
	}

	user.ID = s.nextID
	s.nextID++
	if user.Status == "" {
		user.Status = constants.StatusActive
	}
	if user.RegistrationTime.IsZero() {
		user.RegistrationTime = time.Now()
	}
	s.users[user.ID] = *user
	return nil
}

func (s *memoryStore) GetByEmail(_ context.Context, email string) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.users {
		if u.Email == email {
			out := u
			return &out, nil
		}
	}
	return nil, ErrNotFound
}

func (s *memoryStore) GetByID(_ context.Context, id uint) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.users[id]
	if !ok {
		return nil, ErrNotFound
	}
	out := u
	return &out, nil
}

func (s *memoryStore) List(_ context.Context) ([]models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	users := make([]models.User, 0, len(s.users))
	for _, u := range s.users {
		users = append(users, u)
	}
	sort.Slice(users, func(i, j int) bool { return users[i].ID < users[j].ID })
	return users, nil
}

func (s *memoryStore) UpdateStatusByEmail(_ context.Context, email string, status constants.UserStatus) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for id, u := range s.users {
		if u.Email == email {
			u.Status = status
			s.users[id] = u
			return nil
		}
	}
	return ErrNotFound
}

func (s *memoryStore) UpdateStatusByIDs(_ context.Context, ids []uint, status constants.UserStatus) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, id := range ids {
		if u, ok := s.users[id]; ok {
			u.Status = status
			s.users[id] = u
		}
	}
	return nil
}

func (s *memoryStore) TouchLastLogin(_ context.Context, id uint) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.users[id]
	if !ok {
		return ErrNotFound
	}
	now := time.Now()
	u.LastLogin = &now
	s.users[id] = u
	return nil
}

func (s *memoryStore) DeleteByIDs(_ context.Context, ids []uint) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, id := range ids {
		delete(s.users, id)
	}
	return nil
}
