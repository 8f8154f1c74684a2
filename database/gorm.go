package database

import (
	"context"
	"errors"
	"fmt"
	"time"

	"fintrack/config"
	"fintrack/models"

	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"
)

// GormStore 基于 gorm 的存储，支持 MySQL 与 PostgreSQL
type GormStore struct {
	db *gorm.DB
}

// NewGormStore 包装已打开的连接
func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

// openGorm 根据驱动构建 DSN 并建立连接池
func openGorm(cfg *config.Config) (*gorm.DB, error) {
	var dialector gorm.Dialector
	dbc := cfg.Database
	switch dbc.Driver {
	case "mysql":
		dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=%s&parseTime=True&loc=Local",
			dbc.Username, dbc.Password, dbc.Host, dbc.Port, dbc.DBName, dbc.Charset)
		dialector = mysql.Open(dsn)
	case "postgres":
		dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
			dbc.Host, dbc.Port, dbc.Username, dbc.Password, dbc.DBName, dbc.SSLMode)
		dialector = postgres.Open(dsn)
	default:
		return nil, fmt.Errorf("不支持的数据库驱动: %s", dbc.Driver)
	}

	logLevel := logger.Warn
	if cfg.Server.Mode == "debug" {
		logLevel = logger.Info
	}
	db, err := gorm.Open(dialector, &gorm.Config{
		Logger:         logger.Default.LogMode(logLevel),
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("连接数据库失败: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)

	return db, nil
}

// Migrate 自动迁移表结构，并在内置类别缺失时补齐
func (s *GormStore) Migrate(ctx context.Context) error {
	db := s.db.WithContext(ctx)
	if err := db.AutoMigrate(
		&models.User{},
		&models.Category{},
		&models.Transaction{},
		&models.Goal{},
	); err != nil {
		return err
	}

	var count int64
	if err := db.Model(&models.Category{}).Where("user_id = ?", models.DefaultOwnerID).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		seeds := models.DefaultCategories(time.Now())
		if err := db.Create(&seeds).Error; err != nil {
			return fmt.Errorf("写入内置类别失败: %w", err)
		}
	}
	return nil
}

func translate(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return ErrNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return ErrDuplicate
	}
	return err
}

func (s *GormStore) CreateUser(ctx context.Context, user *models.User) error {
	return translate(s.db.WithContext(ctx).Create(user).Error)
}

func (s *GormStore) FindUserByID(ctx context.Context, id string) (*models.User, error) {
	var user models.User
	if err := s.db.WithContext(ctx).Where("id = ?", id).First(&user).Error; err != nil {
		return nil, translate(err)
	}
	return &user, nil
}

func (s *GormStore) FindUserByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	if err := s.db.WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		return nil, translate(err)
	}
	return &user, nil
}

func (s *GormStore) CreateCategory(ctx context.Context, category *models.Category) error {
	return translate(s.db.WithContext(ctx).Create(category).Error)
}

func (s *GormStore) ListCategories(ctx context.Context, userID string) ([]models.Category, error) {
	list := make([]models.Category, 0)
	err := s.db.WithContext(ctx).
		Where("user_id = ? OR user_id = ?", userID, models.DefaultOwnerID).
		Order("created_at ASC, id ASC").
		Find(&list).Error
	return list, translate(err)
}

func (s *GormStore) DeleteCategory(ctx context.Context, id, userID string) error {
	return s.deleteOwned(ctx, &models.Category{}, id, userID)
}

func (s *GormStore) CreateTransaction(ctx context.Context, tx *models.Transaction) error {
	return translate(s.db.WithContext(ctx).Create(tx).Error)
}

func (s *GormStore) ListTransactions(ctx context.Context, userID string) ([]models.Transaction, error) {
	list := make([]models.Transaction, 0)
	err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at ASC, id ASC").
		Find(&list).Error
	return list, translate(err)
}

func (s *GormStore) FindTransaction(ctx context.Context, id, userID string) (*models.Transaction, error) {
	var tx models.Transaction
	if err := s.db.WithContext(ctx).Where("id = ? AND user_id = ?", id, userID).First(&tx).Error; err != nil {
		return nil, translate(err)
	}
	return &tx, nil
}

func (s *GormStore) DeleteTransaction(ctx context.Context, id, userID string) error {
	return s.deleteOwned(ctx, &models.Transaction{}, id, userID)
}

func (s *GormStore) CreateGoal(ctx context.Context, goal *models.Goal) error {
	return translate(s.db.WithContext(ctx).Create(goal).Error)
}

func (s *GormStore) ListGoals(ctx context.Context, userID string) ([]models.Goal, error) {
	list := make([]models.Goal, 0)
	err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at ASC, id ASC").
		Find(&list).Error
	return list, translate(err)
}

func (s *GormStore) UpdateGoal(ctx context.Context, id, userID string, mutate func(*models.Goal)) (*models.Goal, error) {
	var goal models.Goal
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("id = ? AND user_id = ?", id, userID).
			First(&goal).Error; err != nil {
			return err
		}
		mutate(&goal)
		return tx.Save(&goal).Error
	})
	if err != nil {
		return nil, translate(err)
	}
	return &goal, nil
}

// deleteOwned 仅删除属于 userID 的记录，未命中返回 ErrNotFound
func (s *GormStore) deleteOwned(ctx context.Context, model interface{}, id, userID string) error {
	result := s.db.WithContext(ctx).Where("id = ? AND user_id = ?", id, userID).Delete(model)
	if result.Error != nil {
		return translate(result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *GormStore) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
