package models

import "time"

// User 用户
type User struct {
	ID        string    `json:"id" gorm:"primaryKey;size:36"`
	Email     string    `json:"email" gorm:"uniqueIndex;size:100;not null"`
	Name      string    `json:"name" gorm:"size:100;not null"`
	Password  string    `json:"-" gorm:"size:255"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (User) TableName() string {
	return "users"
}
