package models

import "time"

// GoalStatus 储蓄目标状态
type GoalStatus string

const (
	GoalStatusActive    GoalStatus = "active"
	GoalStatusCompleted GoalStatus = "completed"
	// GoalStatusPaused 目前没有任何流程会设置该状态
	GoalStatusPaused GoalStatus = "paused"
)

// Goal 储蓄目标
type Goal struct {
	ID            string     `json:"id" gorm:"primaryKey;size:36"`
	Title         string     `json:"title" gorm:"size:100;not null"`
	Description   string     `json:"description,omitempty" gorm:"size:255"`
	TargetAmount  float64    `json:"target_amount" gorm:"type:decimal(12,2);not null"`
	CurrentAmount float64    `json:"current_amount" gorm:"type:decimal(12,2);default:0"`
	TargetDate    time.Time  `json:"target_date" gorm:"not null"`
	UserID        string     `json:"user_id" gorm:"size:36;not null;index"`
	Status        GoalStatus `json:"status" gorm:"size:20;default:active;index"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

func (Goal) TableName() string {
	return "goals"
}

// AddProgress 累加进度，达到目标后置为 completed，之后不会回退
func (g *Goal) AddProgress(amount float64, at time.Time) {
	g.CurrentAmount += amount
	g.UpdatedAt = at
	if g.CurrentAmount >= g.TargetAmount {
		g.Status = GoalStatusCompleted
	}
}
