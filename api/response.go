package api

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"fintrack/config"
	"fintrack/service"

	"github.com/gin-gonic/gin"
)

// Response 通用响应结构
type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

// Success 成功响应
func Success(c *gin.Context, message string, data interface{}) {
	c.JSON(http.StatusOK, Response{
		Success: true,
		Message: message,
		Data:    data,
	})
}

// Error 错误响应
func Error(c *gin.Context, code int, message string) {
	c.JSON(code, Response{
		Success: false,
		Message: message,
	})
}

// BadRequest 400 错误响应
func BadRequest(c *gin.Context, message string) {
	Error(c, http.StatusBadRequest, message)
}

// Unauthorized 401 错误响应
func Unauthorized(c *gin.Context, message string) {
	Error(c, http.StatusUnauthorized, message)
}

// Fail 按业务错误码映射 HTTP 状态
func Fail(c *gin.Context, err error) {
	var e *service.Error
	if !errors.As(err, &e) {
		Error(c, http.StatusInternalServerError, config.SafeErrorMessage(err, service.MsgInternal))
		return
	}

	status := http.StatusInternalServerError
	switch e.Code {
	case service.CodeNotAuthenticated, service.CodeInvalidCredentials:
		status = http.StatusUnauthorized
	case service.CodeDuplicateEmail:
		status = http.StatusConflict
	case service.CodeNotFound:
		status = http.StatusNotFound
	case service.CodeInvalidInput:
		status = http.StatusBadRequest
	case service.CodeUnavailable:
		status = http.StatusServiceUnavailable
	}
	Error(c, status, e.Message)
}

// parseDate 支持 2006-01-02（本地时区）与 RFC 3339
func parseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if t, err := time.ParseInLocation("2006-01-02", s, time.Local); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, s)
}
