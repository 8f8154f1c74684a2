package service

import (
	"context"
	"testing"
	"time"

	"fintrack/config"
	"fintrack/database"
	"fintrack/models"

	"github.com/stretchr/testify/require"
)

type fakeIssuer struct {
	revoked []string
}

func (f *fakeIssuer) Issue(u *models.User) (string, error) {
	return "token-" + u.ID, nil
}

func (f *fakeIssuer) Revoke(token string) {
	f.revoked = append(f.revoked, token)
}

type testEnv struct {
	store        *database.MemoryStore
	issuer       *fakeIssuer
	auth         *AuthService
	categories   *CategoryService
	transactions *TransactionService
	goals        *GoalService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	store := database.NewMemoryStore()
	issuer := &fakeIssuer{}
	categories := NewCategoryService(store)
	return &testEnv{
		store:        store,
		issuer:       issuer,
		auth:         NewAuthService(store, issuer, config.AuthConfig{}),
		categories:   categories,
		transactions: NewTransactionService(store, categories, true),
		goals:        NewGoalService(store),
	}
}

// signIn 注册用户并返回携带其会话的上下文
func (e *testEnv) signIn(t *testing.T, email string) context.Context {
	t.Helper()
	sess, err := e.auth.Register(context.Background(), RegisterInput{Email: email, Name: "Teste", Password: "secret123"})
	require.NoError(t, err)
	return WithUserID(context.Background(), sess.User.ID)
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 12, 0, 0, 0, time.UTC)
}

// addTx 使用内置类别记一笔交易
func (e *testEnv) addTx(t *testing.T, ctx context.Context, kind models.Kind, amount float64, date time.Time) *models.Transaction {
	t.Helper()
	categoryID := "2"
	if kind == models.KindIncome {
		categoryID = "1"
	}
	tx, err := e.transactions.Create(ctx, CreateTransactionInput{
		Description: "tx",
		Amount:      amount,
		Type:        kind,
		CategoryID:  categoryID,
		Date:        date,
	})
	require.NoError(t, err)
	return tx
}
