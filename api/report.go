package api

import (
	"bytes"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"fintrack/models"
	"fintrack/service"

	"github.com/gin-gonic/gin"
)

// ReportHandler 月度报表、预算提醒与导出
type ReportHandler struct {
	transactions *service.TransactionService
	auth         *service.AuthService
	mail         *service.EmailService
}

func NewReportHandler(transactions *service.TransactionService, auth *service.AuthService, mail *service.EmailService) *ReportHandler {
	return &ReportHandler{transactions: transactions, auth: auth, mail: mail}
}

// ReportWithAlert 报表及至多一条预算提醒
type ReportWithAlert struct {
	Report *models.MonthlyReport `json:"report"`
	Alert  *service.BudgetAlert  `json:"alert"`
}

// monthQuery 解析 month/year，缺省为当前月份，month 从 0 开始
func monthQuery(c *gin.Context) (int, int, bool) {
	now := time.Now()
	month, year := int(now.Month())-1, now.Year()

	if raw := c.Query("month"); raw != "" {
		m, err := strconv.Atoi(raw)
		if err != nil || m < 0 || m > 11 {
			BadRequest(c, "Mês inválido")
			return 0, 0, false
		}
		month = m
	}
	if raw := c.Query("year"); raw != "" {
		y, err := strconv.Atoi(raw)
		if err != nil {
			BadRequest(c, "Ano inválido")
			return 0, 0, false
		}
		year = y
	}
	return month, year, true
}

func (h *ReportHandler) load(c *gin.Context) (*models.MonthlyReport, bool) {
	month, year, ok := monthQuery(c)
	if !ok {
		return nil, false
	}
	report, err := h.transactions.MonthlyReport(c.Request.Context(), month, year)
	if err != nil {
		Fail(c, err)
		return nil, false
	}
	return report, true
}

// Monthly 月度汇总
// @Summary 月度报表
// @Tags 报表
// @Produce json
// @Security BearerAuth
// @Param month query int false "月份，0 表示一月"
// @Param year query int false "年份"
// @Success 200 {object} Response{data=models.MonthlyReport} "获取成功"
// @Failure 401 {object} Response "未登录"
// @Router /api/v1/reports/monthly [get]
func (h *ReportHandler) Monthly(c *gin.Context) {
	report, ok := h.load(c)
	if !ok {
		return
	}
	Success(c, "success", report)
}

// Alert 月度报表与预算提醒
// @Summary 预算提醒
// @Description 支出大于收入、超过收入 80% 或有结余时给出一条提醒
// @Tags 报表
// @Produce json
// @Security BearerAuth
// @Param month query int false "月份，0 表示一月"
// @Param year query int false "年份"
// @Success 200 {object} Response{data=ReportWithAlert} "获取成功"
// @Failure 401 {object} Response "未登录"
// @Router /api/v1/reports/monthly/alert [get]
func (h *ReportHandler) Alert(c *gin.Context) {
	report, ok := h.load(c)
	if !ok {
		return
	}
	Success(c, "success", ReportWithAlert{Report: report, Alert: service.EvaluateBudget(*report)})
}

// CSV 导出月度报表 CSV
// @Summary 导出 CSV
// @Tags 报表
// @Produce text/csv
// @Security BearerAuth
// @Param month query int false "月份，0 表示一月"
// @Param year query int false "年份"
// @Success 200 {file} file "CSV 文件"
// @Failure 401 {object} Response "未登录"
// @Router /api/v1/reports/monthly/csv [get]
func (h *ReportHandler) CSV(c *gin.Context) {
	report, ok := h.load(c)
	if !ok {
		return
	}
	content, err := service.FormatReportCSV(*report)
	if err != nil {
		Fail(c, err)
		return
	}
	c.Header("Content-Disposition", attachment(service.ReportFilename(*report, "csv")))
	c.Data(http.StatusOK, "text/csv; charset=utf-8", content)
}

// Excel 导出月度报表 Excel
// @Summary 导出 Excel
// @Tags 报表
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Security BearerAuth
// @Param month query int false "月份，0 表示一月"
// @Param year query int false "年份"
// @Success 200 {file} file "Excel 文件"
// @Failure 401 {object} Response "未登录"
// @Router /api/v1/reports/monthly/excel [get]
func (h *ReportHandler) Excel(c *gin.Context) {
	report, ok := h.load(c)
	if !ok {
		return
	}
	var buf bytes.Buffer
	if err := service.WriteReportExcel(&buf, *report); err != nil {
		Fail(c, err)
		return
	}
	c.Header("Content-Disposition", attachment(service.ReportFilename(*report, "xlsx")))
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", buf.Bytes())
}

// Email 把月度报表发到当前用户邮箱
// @Summary 邮件发送月度报表
// @Tags 报表
// @Produce json
// @Security BearerAuth
// @Param month query int false "月份，0 表示一月"
// @Param year query int false "年份"
// @Success 200 {object} Response "发送成功"
// @Failure 401 {object} Response "未登录"
// @Failure 503 {object} Response "邮件服务未开启"
// @Router /api/v1/reports/monthly/email [post]
func (h *ReportHandler) Email(c *gin.Context) {
	report, ok := h.load(c)
	if !ok {
		return
	}
	user, err := h.auth.CurrentUser(c.Request.Context())
	if err != nil {
		Fail(c, err)
		return
	}
	if user == nil {
		Fail(c, service.ErrNotAuthenticated)
		return
	}
	if err := h.mail.SendMonthlyReport(user, *report); err != nil {
		Fail(c, err)
		return
	}
	Success(c, service.MsgReportSent, nil)
}

func attachment(filename string) string {
	return fmt.Sprintf(`attachment; filename="%s"`, filename)
}
