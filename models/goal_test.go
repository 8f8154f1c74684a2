package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGoalAddProgress(t *testing.T) {
	at := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	g := Goal{TargetAmount: 1000, Status: GoalStatusActive}

	g.AddProgress(400, at)
	assert.Equal(t, 400.0, g.CurrentAmount)
	assert.Equal(t, GoalStatusActive, g.Status)
	assert.Equal(t, at, g.UpdatedAt)

	// 恰好达到目标即完成
	g.AddProgress(600, at)
	assert.Equal(t, GoalStatusCompleted, g.Status)

	// 完成后负向调整也不会回退状态
	g.AddProgress(-500, at)
	assert.Equal(t, 500.0, g.CurrentAmount)
	assert.Equal(t, GoalStatusCompleted, g.Status)
}

func TestKind(t *testing.T) {
	assert.True(t, KindIncome.Valid())
	assert.True(t, KindExpense.Valid())
	assert.False(t, Kind("transfer").Valid())
	assert.Equal(t, "Receita", KindIncome.Label())
	assert.Equal(t, "Despesa", KindExpense.Label())
}

func TestRecurrencePeriodValid(t *testing.T) {
	assert.True(t, RecurrencePeriod("").Valid())
	assert.True(t, RecurrenceMonthly.Valid())
	assert.False(t, RecurrencePeriod("daily").Valid())
}

func TestDefaultCategories(t *testing.T) {
	cats := DefaultCategories(time.Now())
	assert.Len(t, cats, 2)
	for _, c := range cats {
		assert.True(t, c.IsDefault())
	}
	assert.Equal(t, KindIncome, cats[0].Type)
	assert.Equal(t, KindExpense, cats[1].Type)
}
