package middleware

import (
	"errors"
	"net/http"
	"strings"
	"sync"
	"time"

	"fintrack/config"
	"fintrack/models"
	"fintrack/service"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var (
	jwtSecret []byte
	revoked   = newRevocationList()
)

// Claims 会话 token 载荷
type Claims struct {
	UserID string `json:"user_id"`
	Email  string `json:"email"`
	jwt.RegisteredClaims
}

// InitJWT 初始化签名密钥
func InitJWT(cfg *config.Config) {
	jwtSecret = []byte(cfg.JWT.Secret)
}

// GenerateToken 签发 token，jti 用于登出吊销
func GenerateToken(userID, email string, expire time.Duration) (string, error) {
	now := time.Now()
	claims := Claims{
		UserID: userID,
		Email:  email,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(expire)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(jwtSecret)
}

// ParseToken 校验签名与有效期，已吊销的 token 同样视为无效
func ParseToken(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return jwtSecret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, errors.New("invalid token")
	}
	if revoked.contains(claims.ID) {
		return nil, errors.New("token revoked")
	}
	return claims, nil
}

// RevokeToken 吊销 token 直到其过期，无效 token 直接忽略
func RevokeToken(tokenString string) {
	claims, err := ParseToken(tokenString)
	if err != nil || claims.ExpiresAt == nil {
		return
	}
	revoked.add(claims.ID, claims.ExpiresAt.Time)
}

// BearerToken 从 Authorization 头读取 token
func BearerToken(c *gin.Context) string {
	parts := strings.SplitN(c.GetHeader("Authorization"), " ", 2)
	if len(parts) != 2 || parts[0] != "Bearer" {
		return ""
	}
	return strings.TrimSpace(parts[1])
}

// JWTAuth 解析会话并写入请求上下文
// 未携带 Authorization 时以匿名身份继续，由业务层返回未登录结果；携带但无效时返回 401
func JWTAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.Next()
			return
		}

		token := BearerToken(c)
		if token == "" {
			abortUnauthorized(c, "Formato de autorização inválido")
			return
		}
		claims, err := ParseToken(token)
		if err != nil {
			abortUnauthorized(c, "Token inválido ou expirado")
			return
		}

		c.Set("userID", claims.UserID)
		c.Request = c.Request.WithContext(service.WithUserID(c.Request.Context(), claims.UserID))
		c.Next()
	}
}

func abortUnauthorized(c *gin.Context, message string) {
	c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": message})
	c.Abort()
}

// GetCurrentUserID 获取当前用户ID，未登录返回空串
func GetCurrentUserID(c *gin.Context) string {
	return c.GetString("userID")
}

// TokenIssuer 以 JWT 实现会话签发
type TokenIssuer struct {
	Expire time.Duration
}

func (i TokenIssuer) Issue(user *models.User) (string, error) {
	return GenerateToken(user.ID, user.Email, i.Expire)
}

func (i TokenIssuer) Revoke(token string) {
	RevokeToken(token)
}

// revocationList 已吊销 token 的 jti，过期后清理
type revocationList struct {
	mu      sync.Mutex
	entries map[string]time.Time
}

func newRevocationList() *revocationList {
	return &revocationList{entries: make(map[string]time.Time)}
}

func (r *revocationList) add(id string, expiresAt time.Time) {
	r.mu.Lock()
	defer r.mu.Unlock()
	now := time.Now()
	for k, exp := range r.entries {
		if exp.Before(now) {
			delete(r.entries, k)
		}
	}
	r.entries[id] = expiresAt
}

func (r *revocationList) contains(id string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.entries[id]
	return ok
}
