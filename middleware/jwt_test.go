package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"fintrack/config"
	"fintrack/models"
	"fintrack/service"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func initJWTTestConfig() {
	InitJWT(&config.Config{JWT: config.JWTConfig{Secret: "test-jwt-secret-key"}})
}

func TestGenerateToken(t *testing.T) {
	initJWTTestConfig()

	token, err := GenerateToken("u1", "ana@example.com", 24*time.Hour)
	require.NoError(t, err)
	assert.Greater(t, len(token), 20)

	claims, err := ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, "u1", claims.UserID)
	assert.Equal(t, "ana@example.com", claims.Email)
	assert.NotEmpty(t, claims.ID)
}

func TestParseToken(t *testing.T) {
	initJWTTestConfig()

	_, err := ParseToken("")
	assert.Error(t, err)
	_, err = ParseToken("not.a.valid.jwt")
	assert.Error(t, err)

	// 过期 token
	expired, _ := GenerateToken("u1", "ana@example.com", -time.Minute)
	_, err = ParseToken(expired)
	assert.Error(t, err)

	// 其他密钥签发
	token, _ := GenerateToken("u1", "ana@example.com", time.Hour)
	InitJWT(&config.Config{JWT: config.JWTConfig{Secret: "another"}})
	_, err = ParseToken(token)
	assert.Error(t, err)
}

func TestRevokeToken(t *testing.T) {
	initJWTTestConfig()

	token, _ := GenerateToken("u1", "ana@example.com", time.Hour)
	other, _ := GenerateToken("u1", "ana@example.com", time.Hour)

	RevokeToken(token)
	_, err := ParseToken(token)
	assert.Error(t, err)

	// 同一用户的其他会话不受影响
	_, err = ParseToken(other)
	assert.NoError(t, err)

	// 无效 token 直接忽略
	RevokeToken("garbage")
}

func TestJWTAuth(t *testing.T) {
	initJWTTestConfig()
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.Use(JWTAuth())
	router.GET("/me", func(c *gin.Context) {
		c.String(200, "id:%s ctx:%s", GetCurrentUserID(c), service.UserIDFromContext(c.Request.Context()))
	})

	do := func(header string) *httptest.ResponseRecorder {
		req := httptest.NewRequest("GET", "/me", nil)
		if header != "" {
			req.Header.Set("Authorization", header)
		}
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		return w
	}

	// 匿名访问由业务层处理
	w := do("")
	assert.Equal(t, 200, w.Code)
	assert.Equal(t, "id: ctx:", w.Body.String())

	assert.Equal(t, http.StatusUnauthorized, do("Basic xyz").Code)
	assert.Equal(t, http.StatusUnauthorized, do("Bearer ").Code)
	assert.Equal(t, http.StatusUnauthorized, do("Bearer not.a.token").Code)

	token, _ := GenerateToken("u42", "u42@example.com", time.Hour)
	w = do("Bearer " + token)
	assert.Equal(t, 200, w.Code)
	assert.Equal(t, "id:u42 ctx:u42", w.Body.String())

	RevokeToken(token)
	assert.Equal(t, http.StatusUnauthorized, do("Bearer "+token).Code)
}

func TestTokenIssuer(t *testing.T) {
	initJWTTestConfig()
	issuer := TokenIssuer{Expire: time.Hour}

	token, err := issuer.Issue(&models.User{ID: "u7", Email: "u7@example.com"})
	require.NoError(t, err)
	claims, err := ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, "u7", claims.UserID)

	issuer.Revoke(token)
	_, err = ParseToken(token)
	assert.Error(t, err)
}

func TestGetCurrentUserID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	assert.Equal(t, "", GetCurrentUserID(c))

	c.Set("userID", "u99")
	assert.Equal(t, "u99", GetCurrentUserID(c))
}
