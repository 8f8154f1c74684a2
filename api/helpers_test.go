package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"fintrack/config"
	"fintrack/database"
	"fintrack/middleware"
	"fintrack/service"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

type testServer struct {
	router *gin.Engine
	store  *database.MemoryStore
}

// newTestServer 使用内存存储与真实 JWT 中间件组装处理器
func newTestServer(t *testing.T) *testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := &config.Config{
		Server:      config.ServerConfig{Mode: "debug"},
		JWT:         config.JWTConfig{Secret: "test-secret", ExpireTime: time.Hour},
		Transaction: config.TransactionConfig{StrictCategory: true},
	}
	config.GlobalConfig = cfg
	middleware.InitJWT(cfg)
	t.Cleanup(func() { config.GlobalConfig = nil })

	store := database.NewMemoryStore()
	auth := service.NewAuthService(store, middleware.TokenIssuer{Expire: time.Hour}, cfg.Auth)
	categories := service.NewCategoryService(store)
	transactions := service.NewTransactionService(store, categories, true)
	goals := service.NewGoalService(store)
	mail := service.NewEmailService(&cfg.Email)

	authH := NewAuthHandler(auth)
	categoryH := NewCategoryHandler(categories)
	transactionH := NewTransactionHandler(transactions)
	reportH := NewReportHandler(transactions, auth, mail)
	goalH := NewGoalHandler(goals)

	r := gin.New()
	r.POST("/auth/register", authH.Register)
	r.POST("/auth/login", authH.Login)
	r.POST("/auth/logout", authH.Logout)

	s := r.Group("", middleware.JWTAuth())
	s.GET("/auth/me", authH.Me)
	s.GET("/categories", categoryH.List)
	s.POST("/categories", categoryH.Create)
	s.DELETE("/categories/:id", categoryH.Delete)
	s.GET("/transactions", transactionH.List)
	s.POST("/transactions", transactionH.Create)
	s.DELETE("/transactions/:id", transactionH.Delete)
	s.GET("/transactions/:id/occurrences", transactionH.Occurrences)
	s.GET("/reports/monthly", reportH.Monthly)
	s.GET("/reports/monthly/alert", reportH.Alert)
	s.GET("/reports/monthly/csv", reportH.CSV)
	s.GET("/reports/monthly/excel", reportH.Excel)
	s.POST("/reports/monthly/email", reportH.Email)
	s.GET("/goals", goalH.List)
	s.POST("/goals", goalH.Create)
	s.POST("/goals/:id/progress", goalH.Progress)

	return &testServer{router: r, store: store}
}

func (s *testServer) do(method, path, token string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func decode(t *testing.T, w *httptest.ResponseRecorder, data interface{}) envelope {
	t.Helper()
	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env), w.Body.String())
	if data != nil {
		require.NoError(t, json.Unmarshal(env.Data, data))
	}
	return env
}

// register 注册并返回 token
func (s *testServer) register(t *testing.T, email string) string {
	t.Helper()
	w := s.do(http.MethodPost, "/auth/register", "", gin.H{"email": email, "name": "Ana", "password": "secret123"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var sess service.Session
	decode(t, w, &sess)
	require.NotEmpty(t, sess.Token)
	return sess.Token
}
