package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"fintrack/config"
	"fintrack/database"
	"fintrack/models"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// SessionIssuer 签发与吊销会话凭证
type SessionIssuer interface {
	Issue(user *models.User) (string, error)
	Revoke(token string)
}

// Session 登录或注册成功后的会话
type Session struct {
	Token string       `json:"token"`
	User  *models.User `json:"user"`
}

// RegisterInput 注册参数
type RegisterInput struct {
	Email    string
	Name     string
	Password string
}

// AuthService 注册、登录与当前用户解析
type AuthService struct {
	store  database.Store
	issuer SessionIssuer
	cfg    config.AuthConfig
	now    func() time.Time
}

// NewAuthService 创建认证服务
func NewAuthService(store database.Store, issuer SessionIssuer, cfg config.AuthConfig) *AuthService {
	return &AuthService{store: store, issuer: issuer, cfg: cfg, now: time.Now}
}

// Register 注册新用户并签发会话，邮箱在所有用户中唯一
func (s *AuthService) Register(ctx context.Context, in RegisterInput) (*Session, error) {
	email := strings.TrimSpace(in.Email)
	if email == "" {
		return nil, invalidInput("Email é obrigatório")
	}

	if _, err := s.store.FindUserByEmail(ctx, email); err == nil {
		return nil, ErrDuplicateEmail
	} else if !errors.Is(err, database.ErrNotFound) {
		return nil, internal("查询用户", err)
	}

	var hashed string
	if in.Password != "" {
		h, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, internal("密码加密", err)
		}
		hashed = string(h)
	}

	now := s.now()
	user := &models.User{
		ID:        uuid.NewString(),
		Email:     email,
		Name:      strings.TrimSpace(in.Name),
		Password:  hashed,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.store.CreateUser(ctx, user); err != nil {
		if errors.Is(err, database.ErrDuplicate) {
			return nil, ErrDuplicateEmail
		}
		return nil, internal("创建用户", err)
	}

	return s.open(user)
}

// Login 按邮箱登录；仅在开启 verify_password 时校验密码
func (s *AuthService) Login(ctx context.Context, email, password string) (*Session, error) {
	user, err := s.store.FindUserByEmail(ctx, strings.TrimSpace(email))
	if errors.Is(err, database.ErrNotFound) {
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, internal("查询用户", err)
	}

	if s.cfg.VerifyPassword {
		if user.Password == "" || bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)) != nil {
			return nil, ErrInvalidCredentials
		}
	}

	return s.open(user)
}

// CurrentUser 返回当前会话用户，未登录返回 nil
func (s *AuthService) CurrentUser(ctx context.Context) (*models.User, error) {
	return currentUser(ctx, s.store)
}

// Logout 吊销凭证，无论凭证是否有效都视为成功
func (s *AuthService) Logout(token string) {
	if token != "" {
		s.issuer.Revoke(token)
	}
}

func (s *AuthService) open(user *models.User) (*Session, error) {
	token, err := s.issuer.Issue(user)
	if err != nil {
		return nil, internal("签发会话", err)
	}
	return &Session{Token: token, User: user}, nil
}
