package api

import (
	"fintrack/config"
	"fintrack/service"

	"github.com/gin-gonic/gin"
)

// GoalHandler 储蓄目标
type GoalHandler struct {
	goals *service.GoalService
}

func NewGoalHandler(goals *service.GoalService) *GoalHandler {
	return &GoalHandler{goals: goals}
}

type CreateGoalRequest struct {
	Title        string  `json:"title" binding:"required,max=100" example:"Viagem"`
	Description  string  `json:"description" binding:"max=255" example:"Férias em julho"`
	TargetAmount float64 `json:"target_amount" binding:"required,gt=0" example:"5000"`
	TargetDate   string  `json:"target_date" binding:"required" example:"2025-07-01"`
}

// ProgressRequest amount 可为负数，用于撤回
type ProgressRequest struct {
	Amount *float64 `json:"amount" binding:"required" example:"250"`
}

// List 目标列表
// @Summary 获取目标列表
// @Description 附带完成百分比与剩余天数。未登录返回空列表。
// @Tags 目标
// @Produce json
// @Security BearerAuth
// @Success 200 {object} Response{data=[]service.GoalProgress} "获取成功"
// @Router /api/v1/goals [get]
func (h *GoalHandler) List(c *gin.Context) {
	goals, err := h.goals.List(c.Request.Context())
	if err != nil {
		Fail(c, err)
		return
	}
	list := make([]service.GoalProgress, 0, len(goals))
	for _, g := range goals {
		list = append(list, h.goals.Progress(g))
	}
	Success(c, "success", list)
}

// Create 创建目标
// @Summary 创建目标
// @Tags 目标
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateGoalRequest true "目标信息"
// @Success 200 {object} Response{data=service.GoalProgress} "创建成功"
// @Failure 400 {object} Response "参数错误"
// @Failure 401 {object} Response "未登录"
// @Router /api/v1/goals [post]
func (h *GoalHandler) Create(c *gin.Context) {
	var req CreateGoalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, config.SafeErrorMessage(err, "Dados inválidos"))
		return
	}
	target, err := parseDate(req.TargetDate)
	if err != nil {
		BadRequest(c, "Data inválida, use 2006-01-02")
		return
	}

	goal, err := h.goals.Create(c.Request.Context(), service.CreateGoalInput{
		Title:        req.Title,
		Description:  req.Description,
		TargetAmount: req.TargetAmount,
		TargetDate:   target,
	})
	if err != nil {
		Fail(c, err)
		return
	}
	Success(c, service.MsgGoalCreated, h.goals.Progress(*goal))
}

// Progress 记录目标进度
// @Summary 记录进度
// @Tags 目标
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "目标ID"
// @Param request body ProgressRequest true "进度金额"
// @Success 200 {object} Response{data=service.GoalProgress} "更新成功"
// @Failure 404 {object} Response "目标不存在"
// @Router /api/v1/goals/{id}/progress [post]
func (h *GoalHandler) Progress(c *gin.Context) {
	var req ProgressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, config.SafeErrorMessage(err, "Dados inválidos"))
		return
	}
	goal, err := h.goals.RecordProgress(c.Request.Context(), c.Param("id"), *req.Amount)
	if err != nil {
		Fail(c, err)
		return
	}
	Success(c, service.MsgProgressUpdated, h.goals.Progress(*goal))
}
