package api

import (
	"net/http"
	"testing"
	"time"

	"fintrack/models"
	"fintrack/service"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func expenseBody(date string, amount float64) gin.H {
	return gin.H{"description": "Mercado", "amount": amount, "type": "expense", "category_id": "2", "date": date}
}

func TestTransactionHandler_Create(t *testing.T) {
	s := newTestServer(t)

	w := s.do(http.MethodPost, "/transactions", "", expenseBody("2024-03-05", 120.5))
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	token := s.register(t, "ana@example.com")
	w = s.do(http.MethodPost, "/transactions", token, expenseBody("2024-03-05", 120.5))
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var tx models.Transaction
	env := decode(t, w, &tx)
	assert.Equal(t, service.MsgTransactionCreated, env.Message)
	assert.Equal(t, 120.5, tx.Amount)
	assert.Equal(t, "2", tx.CategoryID)
	assert.Equal(t, 5, tx.Date.Day())
}

func TestTransactionHandler_Create_Invalid(t *testing.T) {
	s := newTestServer(t)
	token := s.register(t, "ana@example.com")

	cases := map[string]gin.H{
		"zero amount": expenseBody("2024-03-05", 0),
		"bad date":    expenseBody("05/03/2024", 10),
		"bad type":    {"amount": 10, "type": "gift", "category_id": "2", "date": "2024-03-05"},
		"bad period":  {"amount": 10, "type": "expense", "category_id": "2", "date": "2024-03-05", "is_recurring": true, "recurring_type": "daily"},
		"no category": {"amount": 10, "type": "expense", "date": "2024-03-05"},
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, http.StatusBadRequest, s.do(http.MethodPost, "/transactions", token, body).Code)
		})
	}

	// 未知类别
	body := expenseBody("2024-03-05", 10)
	body["category_id"] = "missing"
	assert.Equal(t, http.StatusNotFound, s.do(http.MethodPost, "/transactions", token, body).Code)
}

func TestTransactionHandler_List(t *testing.T) {
	s := newTestServer(t)

	w := s.do(http.MethodGet, "/transactions", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	var list []models.Transaction
	decode(t, w, &list)
	assert.Empty(t, list)

	ana := s.register(t, "ana@example.com")
	bia := s.register(t, "bia@example.com")
	s.do(http.MethodPost, "/transactions", ana, expenseBody("2024-03-01", 10))
	s.do(http.MethodPost, "/transactions", ana, expenseBody("2024-03-20", 20))
	s.do(http.MethodPost, "/transactions", ana, gin.H{"amount": 3000, "type": "income", "category_id": "1", "date": "2024-03-10"})
	s.do(http.MethodPost, "/transactions", bia, expenseBody("2024-03-15", 99))

	decode(t, s.do(http.MethodGet, "/transactions", ana, nil), &list)
	require.Len(t, list, 3)
	// 按日期倒序，并附带类别
	assert.Equal(t, 20.0, list[0].Amount)
	assert.Equal(t, 3000.0, list[1].Amount)
	assert.Equal(t, 10.0, list[2].Amount)
	require.NotNil(t, list[0].Category)
	assert.Equal(t, "Alimentação", list[0].Category.Name)

	decode(t, s.do(http.MethodGet, "/transactions?type=income", ana, nil), &list)
	require.Len(t, list, 1)
	assert.Equal(t, models.KindIncome, list[0].Type)
}

func TestTransactionHandler_Delete(t *testing.T) {
	s := newTestServer(t)
	ana := s.register(t, "ana@example.com")
	bia := s.register(t, "bia@example.com")

	var tx models.Transaction
	decode(t, s.do(http.MethodPost, "/transactions", ana, expenseBody("2024-03-05", 10)), &tx)

	assert.Equal(t, http.StatusNotFound, s.do(http.MethodDelete, "/transactions/"+tx.ID, bia, nil).Code)
	w := s.do(http.MethodDelete, "/transactions/"+tx.ID, ana, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, service.MsgTransactionDeleted, decode(t, w, nil).Message)
	assert.Equal(t, http.StatusNotFound, s.do(http.MethodDelete, "/transactions/"+tx.ID, ana, nil).Code)
}

func TestTransactionHandler_Occurrences(t *testing.T) {
	s := newTestServer(t)
	token := s.register(t, "ana@example.com")

	body := expenseBody("2024-01-15", 50)
	body["is_recurring"] = true
	body["recurring_type"] = "monthly"
	var tx models.Transaction
	decode(t, s.do(http.MethodPost, "/transactions", token, body), &tx)

	w := s.do(http.MethodGet, "/transactions/"+tx.ID+"/occurrences?count=3", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var dates []time.Time
	decode(t, w, &dates)
	require.Len(t, dates, 3)
	now := time.Now()
	for _, d := range dates {
		assert.True(t, d.After(now))
		assert.Equal(t, 15, d.Day())
	}

	decode(t, s.do(http.MethodGet, "/transactions/"+tx.ID+"/occurrences", token, nil), &dates)
	assert.Len(t, dates, service.DefaultOccurrences)

	assert.Equal(t, http.StatusBadRequest, s.do(http.MethodGet, "/transactions/"+tx.ID+"/occurrences?count=99", token, nil).Code)
	assert.Equal(t, http.StatusNotFound, s.do(http.MethodGet, "/transactions/missing/occurrences", token, nil).Code)

	// 非周期交易没有后续日期
	var once models.Transaction
	decode(t, s.do(http.MethodPost, "/transactions", token, expenseBody("2024-01-15", 50)), &once)
	decode(t, s.do(http.MethodGet, "/transactions/"+once.ID+"/occurrences", token, nil), &dates)
	assert.Empty(t, dates)
}
