package service

import (
	"context"
	"errors"
	"sort"
	"strings"
	"time"

	"fintrack/database"
	"fintrack/models"

	"github.com/google/uuid"
)

// CreateTransactionInput 创建交易参数
type CreateTransactionInput struct {
	Description   string
	Amount        float64
	Type          models.Kind
	CategoryID    string
	Date          time.Time
	IsRecurring   bool
	RecurringType models.RecurrencePeriod
}

// TransactionService 交易记录与月度汇总
type TransactionService struct {
	store      database.Store
	categories *CategoryService
	// strict 为 true 时 category_id 必须指向当前用户可见的类别
	strict bool
	now    func() time.Time
}

func NewTransactionService(store database.Store, categories *CategoryService, strictCategory bool) *TransactionService {
	return &TransactionService{store: store, categories: categories, strict: strictCategory, now: time.Now}
}

// Create 为当前用户记一笔交易
func (s *TransactionService) Create(ctx context.Context, in CreateTransactionInput) (*models.Transaction, error) {
	user, err := requireUser(ctx, s.store)
	if err != nil {
		return nil, err
	}
	if !in.Type.Valid() {
		return nil, invalidInput("Tipo de transação inválido")
	}
	if !in.RecurringType.Valid() {
		return nil, invalidInput("Período de recorrência inválido")
	}

	if s.strict {
		visible, err := s.categories.List(ctx, "")
		if err != nil {
			return nil, err
		}
		if findCategory(visible, in.CategoryID) == nil {
			return nil, ErrCategoryNotFound
		}
	}

	now := s.now()
	tx := &models.Transaction{
		ID:            uuid.NewString(),
		Description:   strings.TrimSpace(in.Description),
		Amount:        in.Amount,
		Type:          in.Type,
		CategoryID:    in.CategoryID,
		UserID:        user.ID,
		Date:          in.Date,
		IsRecurring:   in.IsRecurring,
		RecurringType: in.RecurringType,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := s.store.CreateTransaction(ctx, tx); err != nil {
		return nil, internal("创建交易", err)
	}
	return tx, nil
}

// List 当前用户的交易，附带类别信息，按日期倒序；未登录返回空列表
func (s *TransactionService) List(ctx context.Context, kind models.Kind) ([]models.Transaction, error) {
	user, err := currentUser(ctx, s.store)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return []models.Transaction{}, nil
	}

	categories, err := s.categories.List(ctx, "")
	if err != nil {
		return nil, err
	}
	stored, err := s.store.ListTransactions(ctx, user.ID)
	if err != nil {
		return nil, internal("查询交易", err)
	}

	list := JoinCategories(stored, categories)
	if kind != "" {
		filtered := list[:0]
		for _, t := range list {
			if t.Type == kind {
				filtered = append(filtered, t)
			}
		}
		list = filtered
	}

	sort.SliceStable(list, func(i, j int) bool {
		return list[i].Date.After(list[j].Date)
	})
	return list, nil
}

// Delete 仅能删除自己的交易
func (s *TransactionService) Delete(ctx context.Context, id string) error {
	user, err := requireUser(ctx, s.store)
	if err != nil {
		return err
	}
	if err := s.store.DeleteTransaction(ctx, id, user.ID); err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return ErrTransactionNotFound
		}
		return internal("删除交易", err)
	}
	return nil
}

// Occurrences 预测周期交易在 after 之后的 count 次发生日期，不会生成新交易
func (s *TransactionService) Occurrences(ctx context.Context, id string, after time.Time, count int) ([]time.Time, error) {
	user, err := requireUser(ctx, s.store)
	if err != nil {
		return nil, err
	}
	tx, err := s.store.FindTransaction(ctx, id, user.ID)
	if errors.Is(err, database.ErrNotFound) {
		return nil, ErrTransactionNotFound
	}
	if err != nil {
		return nil, internal("查询交易", err)
	}
	dates, err := NextOccurrences(*tx, after, count)
	if err != nil {
		return nil, internal("计算周期", err)
	}
	return dates, nil
}

// JoinCategories 返回附带类别的新切片，不修改入参
func JoinCategories(transactions []models.Transaction, categories []models.Category) []models.Transaction {
	joined := make([]models.Transaction, len(transactions))
	for i, t := range transactions {
		t.Category = findCategory(categories, t.CategoryID)
		joined[i] = t
	}
	return joined
}

func findCategory(categories []models.Category, id string) *models.Category {
	for i := range categories {
		if categories[i].ID == id {
			c := categories[i]
			return &c
		}
	}
	return nil
}
