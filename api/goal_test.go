package api

import (
	"net/http"
	"testing"
	"time"

	"fintrack/models"
	"fintrack/service"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGoalHandler_CreateAndList(t *testing.T) {
	s := newTestServer(t)
	target := time.Now().AddDate(0, 0, 30).Format("2006-01-02")
	body := gin.H{"title": "Viagem", "target_amount": 1000, "target_date": target}

	assert.Equal(t, http.StatusUnauthorized, s.do(http.MethodPost, "/goals", "", body).Code)

	var list []service.GoalProgress
	decode(t, s.do(http.MethodGet, "/goals", "", nil), &list)
	assert.Empty(t, list)

	token := s.register(t, "ana@example.com")
	w := s.do(http.MethodPost, "/goals", token, body)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var goal service.GoalProgress
	env := decode(t, w, &goal)
	assert.Equal(t, service.MsgGoalCreated, env.Message)
	assert.Equal(t, models.GoalStatusActive, goal.Status)
	assert.Zero(t, goal.CurrentAmount)
	assert.Zero(t, goal.ProgressPercent)
	assert.InDelta(t, 30, goal.DaysRemaining, 1)

	decode(t, s.do(http.MethodGet, "/goals", token, nil), &list)
	require.Len(t, list, 1)
	assert.Equal(t, goal.ID, list[0].ID)

	assert.Equal(t, http.StatusBadRequest, s.do(http.MethodPost, "/goals", token, gin.H{"title": "x", "target_amount": 0, "target_date": target}).Code)
	assert.Equal(t, http.StatusBadRequest, s.do(http.MethodPost, "/goals", token, gin.H{"title": "x", "target_amount": 10, "target_date": "amanhã"}).Code)
}

func TestGoalHandler_Progress(t *testing.T) {
	s := newTestServer(t)
	ana := s.register(t, "ana@example.com")
	bia := s.register(t, "bia@example.com")

	var goal service.GoalProgress
	decode(t, s.do(http.MethodPost, "/goals", ana, gin.H{"title": "Reserva", "target_amount": 1000, "target_date": "2030-01-01"}), &goal)
	path := "/goals/" + goal.ID + "/progress"

	w := s.do(http.MethodPost, path, ana, gin.H{"amount": 400})
	require.Equal(t, http.StatusOK, w.Code)
	var updated service.GoalProgress
	env := decode(t, w, &updated)
	assert.Equal(t, service.MsgProgressUpdated, env.Message)
	assert.Equal(t, 400.0, updated.CurrentAmount)
	assert.Equal(t, 40.0, updated.ProgressPercent)
	assert.Equal(t, models.GoalStatusActive, updated.Status)

	decode(t, s.do(http.MethodPost, path, ana, gin.H{"amount": 700}), &updated)
	assert.Equal(t, models.GoalStatusCompleted, updated.Status)
	assert.Equal(t, 100.0, updated.ProgressPercent)

	// 撤回不会恢复为 active
	decode(t, s.do(http.MethodPost, path, ana, gin.H{"amount": -500}), &updated)
	assert.Equal(t, 600.0, updated.CurrentAmount)
	assert.Equal(t, models.GoalStatusCompleted, updated.Status)

	assert.Equal(t, http.StatusBadRequest, s.do(http.MethodPost, path, ana, gin.H{}).Code)
	assert.Equal(t, http.StatusNotFound, s.do(http.MethodPost, path, bia, gin.H{"amount": 1}).Code)
	assert.Equal(t, http.StatusUnauthorized, s.do(http.MethodPost, path, "", gin.H{"amount": 1}).Code)
}
