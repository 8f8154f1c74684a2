package service

import (
	"context"
	"errors"
	"math"
	"strings"
	"time"

	"fintrack/database"
	"fintrack/models"

	"github.com/google/uuid"
)

// CreateGoalInput 创建储蓄目标参数
type CreateGoalInput struct {
	Title        string
	Description  string
	TargetAmount float64
	TargetDate   time.Time
}

// GoalProgress 目标及其派生进度，不落库
type GoalProgress struct {
	models.Goal
	ProgressPercent float64 `json:"progress_percent"`
	DaysRemaining   int     `json:"days_remaining"` // 负数表示已逾期
}

// GoalService 储蓄目标
type GoalService struct {
	store database.Store
	now   func() time.Time
}

func NewGoalService(store database.Store) *GoalService {
	return &GoalService{store: store, now: time.Now}
}

// Create 新目标从 0 开始，状态为 active
func (s *GoalService) Create(ctx context.Context, in CreateGoalInput) (*models.Goal, error) {
	user, err := requireUser(ctx, s.store)
	if err != nil {
		return nil, err
	}
	if in.TargetAmount <= 0 {
		return nil, invalidInput("Valor alvo deve ser positivo")
	}

	now := s.now()
	goal := &models.Goal{
		ID:            uuid.NewString(),
		Title:         strings.TrimSpace(in.Title),
		Description:   strings.TrimSpace(in.Description),
		TargetAmount:  in.TargetAmount,
		CurrentAmount: 0,
		TargetDate:    in.TargetDate,
		UserID:        user.ID,
		Status:        models.GoalStatusActive,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := s.store.CreateGoal(ctx, goal); err != nil {
		return nil, internal("创建目标", err)
	}
	return goal, nil
}

// List 当前用户的目标，按创建顺序；未登录返回空列表
func (s *GoalService) List(ctx context.Context) ([]models.Goal, error) {
	user, err := currentUser(ctx, s.store)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return []models.Goal{}, nil
	}
	goals, err := s.store.ListGoals(ctx, user.ID)
	if err != nil {
		return nil, internal("查询目标", err)
	}
	return goals, nil
}

// RecordProgress 累加进度（允许负数），达到目标后标记完成
func (s *GoalService) RecordProgress(ctx context.Context, id string, amount float64) (*models.Goal, error) {
	user, err := requireUser(ctx, s.store)
	if err != nil {
		return nil, err
	}
	now := s.now()
	goal, err := s.store.UpdateGoal(ctx, id, user.ID, func(g *models.Goal) {
		g.AddProgress(amount, now)
	})
	if errors.Is(err, database.ErrNotFound) {
		return nil, ErrGoalNotFound
	}
	if err != nil {
		return nil, internal("更新目标进度", err)
	}
	return goal, nil
}

// Progress 计算展示用的完成百分比（上限 100）与剩余天数
func (s *GoalService) Progress(g models.Goal) GoalProgress {
	return ComputeProgress(g, s.now())
}

func ComputeProgress(g models.Goal, now time.Time) GoalProgress {
	p := GoalProgress{Goal: g}
	if g.TargetAmount > 0 {
		p.ProgressPercent = math.Min(g.CurrentAmount/g.TargetAmount*100, 100)
	}
	p.DaysRemaining = int(math.Ceil(g.TargetDate.Sub(now).Hours() / 24))
	return p
}
