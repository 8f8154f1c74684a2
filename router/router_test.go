package router

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"fintrack/config"
	"fintrack/database"
	"fintrack/middleware"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestRouter(t *testing.T, rateLimit int) *gin.Engine {
	t.Helper()
	cfg, err := config.LoadConfig("")
	require.NoError(t, err)
	cfg.Server.Mode = gin.TestMode
	if rateLimit > 0 {
		cfg.Auth.RateLimit = rateLimit
	}
	t.Cleanup(func() { config.GlobalConfig = nil })

	middleware.InitJWT(cfg)
	return SetupRouter(cfg, database.NewMemoryStore())
}

func request(r *gin.Engine, method, path, token, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestHealth(t *testing.T) {
	r := setupTestRouter(t, 0)
	w := request(r, http.MethodGet, "/health", "", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}

func TestCORSPreflight(t *testing.T) {
	r := setupTestRouter(t, 0)
	w := request(r, http.MethodOptions, "/api/v1/transactions", "", "")
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestEndToEnd(t *testing.T) {
	r := setupTestRouter(t, 0)

	w := request(r, http.MethodPost, "/api/v1/auth/register", "", `{"email":"ana@example.com","name":"Ana","password":"secret123"}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var resp struct {
		Data struct {
			Token string `json:"token"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	token := resp.Data.Token
	require.NotEmpty(t, token)

	w = request(r, http.MethodPost, "/api/v1/transactions", token, `{"description":"Salário","amount":5000,"type":"income","category_id":"1","date":"2024-03-01"}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	w = request(r, http.MethodPost, "/api/v1/transactions", token, `{"description":"Mercado","amount":4500,"type":"expense","category_id":"2","date":"2024-03-02"}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = request(r, http.MethodGet, "/api/v1/reports/monthly/alert?month=2&year=2024", token, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"level":"caution"`)

	// 未登录：列表为空，写操作 401，无效 token 401
	w = request(r, http.MethodGet, "/api/v1/transactions", "", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"success":true,"message":"success","data":[]}`, w.Body.String())
	assert.Equal(t, http.StatusUnauthorized, request(r, http.MethodPost, "/api/v1/goals", "", `{"title":"Viagem","target_amount":100,"target_date":"2030-01-01"}`).Code)
	assert.Equal(t, http.StatusUnauthorized, request(r, http.MethodGet, "/api/v1/transactions", "garbage", "").Code)

	assert.Equal(t, http.StatusOK, request(r, http.MethodPost, "/api/v1/auth/logout", token, "").Code)
	assert.Equal(t, http.StatusUnauthorized, request(r, http.MethodGet, "/api/v1/auth/me", token, "").Code)
}

func TestLoginRateLimit(t *testing.T) {
	r := setupTestRouter(t, 2)
	body := `{"email":"ghost@example.com"}`

	assert.Equal(t, http.StatusUnauthorized, request(r, http.MethodPost, "/api/v1/auth/login", "", body).Code)
	assert.Equal(t, http.StatusUnauthorized, request(r, http.MethodPost, "/api/v1/auth/login", "", body).Code)
	assert.Equal(t, http.StatusTooManyRequests, request(r, http.MethodPost, "/api/v1/auth/login", "", body).Code)
}

func TestSwaggerDoc(t *testing.T) {
	r := setupTestRouter(t, 0)
	w := request(r, http.MethodGet, "/swagger/doc.json", "", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "/api/v1/transactions")
}
