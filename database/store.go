package database

import (
	"context"
	"errors"
	"fmt"
	"log"

	"fintrack/config"
	"fintrack/models"
)

var (
	// ErrNotFound 记录不存在，或不属于指定用户
	ErrNotFound = errors.New("record not found")
	// ErrDuplicate 违反唯一约束（目前仅用户邮箱）
	ErrDuplicate = errors.New("duplicate record")
)

// Store 实体存储
// 所有按用户读取的方法都只返回该用户拥有的记录，删除与更新同样按拥有者过滤
type Store interface {
	CreateUser(ctx context.Context, user *models.User) error
	FindUserByID(ctx context.Context, id string) (*models.User, error)
	FindUserByEmail(ctx context.Context, email string) (*models.User, error)

	CreateCategory(ctx context.Context, category *models.Category) error
	// ListCategories 返回用户自有类别与内置类别，按插入顺序
	ListCategories(ctx context.Context, userID string) ([]models.Category, error)
	DeleteCategory(ctx context.Context, id, userID string) error

	CreateTransaction(ctx context.Context, tx *models.Transaction) error
	// ListTransactions 按插入顺序返回，不做类别关联
	ListTransactions(ctx context.Context, userID string) ([]models.Transaction, error)
	FindTransaction(ctx context.Context, id, userID string) (*models.Transaction, error)
	DeleteTransaction(ctx context.Context, id, userID string) error

	CreateGoal(ctx context.Context, goal *models.Goal) error
	ListGoals(ctx context.Context, userID string) ([]models.Goal, error)
	// UpdateGoal 在同一临界区内读取、修改并写回目标，避免并发累加丢失
	UpdateGoal(ctx context.Context, id, userID string, mutate func(*models.Goal)) (*models.Goal, error)

	Close() error
}

// Open 根据配置打开存储
func Open(cfg *config.Config) (Store, error) {
	switch cfg.Database.Driver {
	case "", "memory":
		log.Println("使用内存存储")
		return NewMemoryStore(), nil
	case "mysql", "postgres":
		db, err := openGorm(cfg)
		if err != nil {
			return nil, err
		}
		store := NewGormStore(db)
		if err := store.Migrate(context.Background()); err != nil {
			return nil, fmt.Errorf("数据库迁移失败: %w", err)
		}
		log.Printf("数据库初始化成功 (%s)", cfg.Database.Driver)
		return store, nil
	default:
		return nil, fmt.Errorf("不支持的存储驱动: %s", cfg.Database.Driver)
	}
}
