package service

import (
	"context"
	"errors"

	"fintrack/database"
	"fintrack/models"
)

type sessionKey struct{}

// WithUserID 把当前用户写入请求上下文
func WithUserID(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, sessionKey{}, userID)
}

// UserIDFromContext 读取当前用户ID，未登录返回空串
func UserIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(sessionKey{}).(string)
	return id
}

// currentUser 解析当前用户；未登录或用户已不存在时返回 nil, nil
func currentUser(ctx context.Context, store database.Store) (*models.User, error) {
	id := UserIDFromContext(ctx)
	if id == "" {
		return nil, nil
	}
	user, err := store.FindUserByID(ctx, id)
	if errors.Is(err, database.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, internal("查询当前用户", err)
	}
	return user, nil
}

// requireUser 同 currentUser，但未登录时返回 ErrNotAuthenticated
func requireUser(ctx context.Context, store database.Store) (*models.User, error) {
	user, err := currentUser(ctx, store)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrNotAuthenticated
	}
	return user, nil
}
