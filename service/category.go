package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"fintrack/database"
	"fintrack/models"

	"github.com/google/uuid"
)

const defaultCategoryColor = "#64748b"

// CategoryService 类别管理，按用户隔离
type CategoryService struct {
	store database.Store
	now   func() time.Time
}

func NewCategoryService(store database.Store) *CategoryService {
	return &CategoryService{store: store, now: time.Now}
}

// Create 为当前用户创建类别
func (s *CategoryService) Create(ctx context.Context, name string, kind models.Kind, color string) (*models.Category, error) {
	user, err := requireUser(ctx, s.store)
	if err != nil {
		return nil, err
	}
	if !kind.Valid() {
		return nil, invalidInput("Tipo de categoria inválido")
	}
	if color == "" {
		color = defaultCategoryColor
	}

	now := s.now()
	category := &models.Category{
		ID:        uuid.NewString(),
		Name:      strings.TrimSpace(name),
		Type:      kind,
		Color:     color,
		UserID:    user.ID,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.store.CreateCategory(ctx, category); err != nil {
		return nil, internal("创建类别", err)
	}
	return category, nil
}

// List 当前用户可见的类别（自有 + 内置），kind 为空时不过滤；未登录返回空列表
func (s *CategoryService) List(ctx context.Context, kind models.Kind) ([]models.Category, error) {
	user, err := currentUser(ctx, s.store)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return []models.Category{}, nil
	}

	all, err := s.store.ListCategories(ctx, user.ID)
	if err != nil {
		return nil, internal("查询类别", err)
	}
	if kind == "" {
		return all, nil
	}
	filtered := make([]models.Category, 0, len(all))
	for _, c := range all {
		if c.Type == kind {
			filtered = append(filtered, c)
		}
	}
	return filtered, nil
}

// Delete 仅能删除自己创建的类别，内置类别始终返回未找到
func (s *CategoryService) Delete(ctx context.Context, id string) error {
	user, err := requireUser(ctx, s.store)
	if err != nil {
		return err
	}
	if err := s.store.DeleteCategory(ctx, id, user.ID); err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return ErrCategoryNotFound
		}
		return internal("删除类别", err)
	}
	return nil
}
