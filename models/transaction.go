package models

import "time"

// RecurrencePeriod 周期交易的重复频率
type RecurrencePeriod string

const (
	RecurrenceWeekly  RecurrencePeriod = "weekly"
	RecurrenceMonthly RecurrencePeriod = "monthly"
	RecurrenceYearly  RecurrencePeriod = "yearly"
)

// Valid 空值表示未设置
func (p RecurrencePeriod) Valid() bool {
	switch p {
	case "", RecurrenceWeekly, RecurrenceMonthly, RecurrenceYearly:
		return true
	}
	return false
}

// Transaction 收支记录
// Amount 始终为正数，方向由 Type 决定
type Transaction struct {
	ID            string           `json:"id" gorm:"primaryKey;size:36"`
	Description   string           `json:"description" gorm:"size:255"`
	Amount        float64          `json:"amount" gorm:"type:decimal(12,2);not null"`
	Type          Kind             `json:"type" gorm:"size:10;not null;index"`
	CategoryID    string           `json:"category_id" gorm:"size:36;index"`
	Category      *Category        `json:"category,omitempty" gorm:"-"` // 读取时关联，不落库
	UserID        string           `json:"user_id" gorm:"size:36;not null;index"`
	Date          time.Time        `json:"date" gorm:"not null;index"`
	IsRecurring   bool             `json:"is_recurring" gorm:"default:false"`
	RecurringType RecurrencePeriod `json:"recurring_type,omitempty" gorm:"size:10"`
	CreatedAt     time.Time        `json:"created_at"`
	UpdatedAt     time.Time        `json:"updated_at"`
}

func (Transaction) TableName() string {
	return "transactions"
}
