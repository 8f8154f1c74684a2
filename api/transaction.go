package api

import (
	"strconv"
	"time"

	"fintrack/config"
	"fintrack/models"
	"fintrack/service"

	"github.com/gin-gonic/gin"
)

// TransactionHandler 收支记录
type TransactionHandler struct {
	transactions *service.TransactionService
}

func NewTransactionHandler(transactions *service.TransactionService) *TransactionHandler {
	return &TransactionHandler{transactions: transactions}
}

// CreateTransactionRequest 创建交易请求
type CreateTransactionRequest struct {
	Description   string  `json:"description" binding:"max=255" example:"Mercado"`
	Amount        float64 `json:"amount" binding:"required,gt=0" example:"120.50"`
	Type          string  `json:"type" binding:"required,oneof=income expense" example:"expense"`
	CategoryID    string  `json:"category_id" binding:"required" example:"2"`
	Date          string  `json:"date" binding:"required" example:"2024-03-05"`
	IsRecurring   bool    `json:"is_recurring" example:"false"`
	RecurringType string  `json:"recurring_type" binding:"omitempty,oneof=weekly monthly yearly" example:"monthly"`
}

// List 获取交易列表
// @Summary 获取交易列表
// @Description 当前用户的交易，附带类别，按日期倒序。未登录时返回空列表。
// @Tags 交易
// @Produce json
// @Security BearerAuth
// @Param type query string false "income 或 expense"
// @Success 200 {object} Response{data=[]models.Transaction} "获取成功"
// @Router /api/v1/transactions [get]
func (h *TransactionHandler) List(c *gin.Context) {
	kind, ok := kindQuery(c)
	if !ok {
		return
	}
	list, err := h.transactions.List(c.Request.Context(), kind)
	if err != nil {
		Fail(c, err)
		return
	}
	Success(c, "success", list)
}

// Create 创建交易
// @Summary 创建交易
// @Tags 交易
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateTransactionRequest true "交易信息"
// @Success 200 {object} Response{data=models.Transaction} "创建成功"
// @Failure 400 {object} Response "参数错误"
// @Failure 401 {object} Response "未登录"
// @Failure 404 {object} Response "类别不存在"
// @Router /api/v1/transactions [post]
func (h *TransactionHandler) Create(c *gin.Context) {
	var req CreateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, config.SafeErrorMessage(err, "Dados inválidos"))
		return
	}
	date, err := parseDate(req.Date)
	if err != nil {
		BadRequest(c, "Data inválida, use 2006-01-02")
		return
	}

	tx, err := h.transactions.Create(c.Request.Context(), service.CreateTransactionInput{
		Description:   req.Description,
		Amount:        req.Amount,
		Type:          models.Kind(req.Type),
		CategoryID:    req.CategoryID,
		Date:          date,
		IsRecurring:   req.IsRecurring,
		RecurringType: models.RecurrencePeriod(req.RecurringType),
	})
	if err != nil {
		Fail(c, err)
		return
	}
	Success(c, service.MsgTransactionCreated, tx)
}

// Delete 删除交易
// @Summary 删除交易
// @Tags 交易
// @Produce json
// @Security BearerAuth
// @Param id path string true "交易ID"
// @Success 200 {object} Response "删除成功"
// @Failure 404 {object} Response "交易不存在"
// @Router /api/v1/transactions/{id} [delete]
func (h *TransactionHandler) Delete(c *gin.Context) {
	if err := h.transactions.Delete(c.Request.Context(), c.Param("id")); err != nil {
		Fail(c, err)
		return
	}
	Success(c, service.MsgTransactionDeleted, nil)
}

// Occurrences 预测周期交易的后续日期
// @Summary 周期交易后续日期
// @Description 仅做预测，不会生成新交易。非周期交易返回空列表。
// @Tags 交易
// @Produce json
// @Security BearerAuth
// @Param id path string true "交易ID"
// @Param count query int false "数量 (1-24)" default(6)
// @Success 200 {object} Response{data=[]string} "获取成功"
// @Failure 404 {object} Response "交易不存在"
// @Router /api/v1/transactions/{id}/occurrences [get]
func (h *TransactionHandler) Occurrences(c *gin.Context) {
	count := service.DefaultOccurrences
	if raw := c.Query("count"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 || n > service.MaxOccurrences {
			BadRequest(c, "count deve estar entre 1 e 24")
			return
		}
		count = n
	}

	dates, err := h.transactions.Occurrences(c.Request.Context(), c.Param("id"), time.Now(), count)
	if err != nil {
		Fail(c, err)
		return
	}
	Success(c, "success", dates)
}
