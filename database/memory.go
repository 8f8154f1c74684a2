package database

import (
	"context"
	"slices"
	"sync"
	"time"

	"fintrack/models"
)

// MemoryStore 进程内存储，生命周期与进程一致
type MemoryStore struct {
	mu           sync.RWMutex
	users        []models.User
	categories   []models.Category
	transactions []models.Transaction
	goals        []models.Goal
}

// NewMemoryStore 创建内存存储并写入内置类别
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		categories: models.DefaultCategories(time.Now()),
	}
}

func (s *MemoryStore) CreateUser(_ context.Context, user *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.Email == user.Email {
			return ErrDuplicate
		}
	}
	s.users = append(s.users, *user)
	return nil
}

func (s *MemoryStore) FindUserByID(_ context.Context, id string) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, u := range s.users {
		if u.ID == id {
			return &u, nil
		}
	}
	return nil, ErrNotFound
}

func (s *MemoryStore) FindUserByEmail(_ context.Context, email string) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, u := range s.users {
		if u.Email == email {
			return &u, nil
		}
	}
	return nil, ErrNotFound
}

func (s *MemoryStore) CreateCategory(_ context.Context, category *models.Category) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.categories = append(s.categories, *category)
	return nil
}

func (s *MemoryStore) ListCategories(_ context.Context, userID string) ([]models.Category, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	list := make([]models.Category, 0, len(s.categories))
	for _, c := range s.categories {
		if c.UserID == userID || c.IsDefault() {
			list = append(list, c)
		}
	}
	return list, nil
}

func (s *MemoryStore) DeleteCategory(_ context.Context, id, userID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := slices.IndexFunc(s.categories, func(c models.Category) bool {
		return c.ID == id && c.UserID == userID
	})
	if i < 0 {
		return ErrNotFound
	}
	s.categories = slices.Delete(s.categories, i, i+1)
	return nil
}

func (s *MemoryStore) CreateTransaction(_ context.Context, tx *models.Transaction) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	stored := *tx
	stored.Category = nil
	s.transactions = append(s.transactions, stored)
	return nil
}

func (s *MemoryStore) ListTransactions(_ context.Context, userID string) ([]models.Transaction, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	list := make([]models.Transaction, 0)
	for _, t := range s.transactions {
		if t.UserID == userID {
			list = append(list, t)
		}
	}
	return list, nil
}

func (s *MemoryStore) FindTransaction(_ context.Context, id, userID string) (*models.Transaction, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, t := range s.transactions {
		if t.ID == id && t.UserID == userID {
			return &t, nil
		}
	}
	return nil, ErrNotFound
}

func (s *MemoryStore) DeleteTransaction(_ context.Context, id, userID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := slices.IndexFunc(s.transactions, func(t models.Transaction) bool {
		return t.ID == id && t.UserID == userID
	})
	if i < 0 {
		return ErrNotFound
	}
	s.transactions = slices.Delete(s.transactions, i, i+1)
	return nil
}

func (s *MemoryStore) CreateGoal(_ context.Context, goal *models.Goal) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.goals = append(s.goals, *goal)
	return nil
}

func (s *MemoryStore) ListGoals(_ context.Context, userID string) ([]models.Goal, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	list := make([]models.Goal, 0)
	for _, g := range s.goals {
		if g.UserID == userID {
			list = append(list, g)
		}
	}
	return list, nil
}

func (s *MemoryStore) UpdateGoal(_ context.Context, id, userID string, mutate func(*models.Goal)) (*models.Goal, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.goals {
		if s.goals[i].ID == id && s.goals[i].UserID == userID {
			mutate(&s.goals[i])
			updated := s.goals[i]
			return &updated, nil
		}
	}
	return nil, ErrNotFound
}

func (s *MemoryStore) Close() error {
	return nil
}
