package api

import (
	"fintrack/config"
	"fintrack/models"
	"fintrack/service"

	"github.com/gin-gonic/gin"
)

// CategoryHandler 类别管理
type CategoryHandler struct {
	categories *service.CategoryService
}

func NewCategoryHandler(categories *service.CategoryService) *CategoryHandler {
	return &CategoryHandler{categories: categories}
}

type CategoryCreateRequest struct {
	Name  string `json:"name" binding:"required,min=1,max=50" example:"Lazer"`
	Type  string `json:"type" binding:"required,oneof=income expense" example:"expense"`
	Color string `json:"color" binding:"omitempty,max=20" example:"#EF4444"`
}

// kindQuery 读取 ?type=，非法取值返回 false
func kindQuery(c *gin.Context) (models.Kind, bool) {
	kind := models.Kind(c.Query("type"))
	if kind != "" && !kind.Valid() {
		BadRequest(c, "Tipo inválido, use income ou expense")
		return "", false
	}
	return kind, true
}

// List 列出当前用户可见的类别
// @Summary 获取类别列表
// @Description 返回自有类别与内置类别，按创建顺序。未登录时返回空列表。
// @Tags 类别
// @Produce json
// @Security BearerAuth
// @Param type query string false "income 或 expense"
// @Success 200 {object} Response{data=[]models.Category} "获取成功"
// @Router /api/v1/categories [get]
func (h *CategoryHandler) List(c *gin.Context) {
	kind, ok := kindQuery(c)
	if !ok {
		return
	}
	list, err := h.categories.List(c.Request.Context(), kind)
	if err != nil {
		Fail(c, err)
		return
	}
	Success(c, "success", list)
}

// Create 创建类别
// @Summary 创建类别
// @Tags 类别
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CategoryCreateRequest true "类别信息"
// @Success 200 {object} Response{data=models.Category} "创建成功"
// @Failure 400 {object} Response "参数错误"
// @Failure 401 {object} Response "未登录"
// @Router /api/v1/categories [post]
func (h *CategoryHandler) Create(c *gin.Context) {
	var req CategoryCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, config.SafeErrorMessage(err, "Dados inválidos"))
		return
	}
	cat, err := h.categories.Create(c.Request.Context(), req.Name, models.Kind(req.Type), req.Color)
	if err != nil {
		Fail(c, err)
		return
	}
	Success(c, service.MsgCategoryCreated, cat)
}

// Delete 删除类别
// @Summary 删除类别
// @Description 只能删除自己创建的类别，内置类别不可删除
// @Tags 类别
// @Produce json
// @Security BearerAuth
// @Param id path string true "类别ID"
// @Success 200 {object} Response "删除成功"
// @Failure 404 {object} Response "类别不存在"
// @Router /api/v1/categories/{id} [delete]
func (h *CategoryHandler) Delete(c *gin.Context) {
	if err := h.categories.Delete(c.Request.Context(), c.Param("id")); err != nil {
		Fail(c, err)
		return
	}
	Success(c, service.MsgCategoryDeleted, nil)
}
