package models

import "time"

// DefaultOwnerID 内置类别的拥有者，所有用户可见且不可删除
const DefaultOwnerID = "default"

// Category 收支类别
type Category struct {
	ID        string    `json:"id" gorm:"primaryKey;size:36"`
	Name      string    `json:"name" gorm:"size:50;not null"`
	Type      Kind      `json:"type" gorm:"size:10;not null;index"`
	Color     string    `json:"color" gorm:"size:20;default:#64748b"` // 颜色代码，如 #10B981
	UserID    string    `json:"user_id" gorm:"size:36;not null;index"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Category) TableName() string {
	return "categories"
}

// IsDefault 是否为内置类别
func (c Category) IsDefault() bool {
	return c.UserID == DefaultOwnerID
}

// DefaultCategories 启动时预置的类别
func DefaultCategories(now time.Time) []Category {
	return []Category{
		{ID: "1", Name: "Salário", Type: KindIncome, Color: "#10B981", UserID: DefaultOwnerID, CreatedAt: now, UpdatedAt: now},
		{ID: "2", Name: "Alimentação", Type: KindExpense, Color: "#EF4444", UserID: DefaultOwnerID, CreatedAt: now, UpdatedAt: now},
	}
}
