package backend

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/FACorreiaa/finchat/internal/assistant"
	"github.com/FACorreiaa/finchat/internal/model"
)

func testClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return New(srv.URL, 5*time.Second, slog.New(slog.DiscardHandler))
}

func TestCreateTransaction(t *testing.T) {
	var got transactionPayload
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v1/transactions", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusCreated)
	})

	date := time.Date(2025, 6, 15, 12, 30, 0, 0, time.UTC)
	err := c.CreateTransaction(context.Background(), model.DraftTransaction{
		Type:         model.TypeExpense,
		Amount:       50_000,
		Note:         "ăn trưa",
		CategoryName: "Ăn uống",
		Date:         date,
	})
	require.NoError(t, err)

	assert.Equal(t, "expense", got.Type)
	assert.Equal(t, int64(50_000), got.Amount)
	assert.Equal(t, "ăn trưa", got.Note)
	assert.Equal(t, "Ăn uống", got.CategoryName)
	assert.Equal(t, "2025-06-15T12:30:00Z", got.Date)
}

func TestCreateCategory(t *testing.T) {
	var got categoryPayload
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/categories", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusCreated)
	})

	err := c.CreateCategory(context.Background(), model.DraftCategory{
		Name: "Du lịch",
		Type: model.TypeExpense,
	})
	require.NoError(t, err)
	assert.Equal(t, "Du lịch", got.Name)
	assert.Equal(t, "expense", got.Type)
}

func TestSetBudgetSplit(t *testing.T) {
	var got assistant.BudgetSplit
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/v1/budget/split", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
	})

	err := c.SetBudgetSplit(context.Background(), assistant.BudgetSplit{Needs: 50, Wants: 30, Savings: 20})
	require.NoError(t, err)
	assert.Equal(t, 50, got.Needs)
}

func TestErrorSurfacing(t *testing.T) {
	t.Run("service message is returned verbatim", func(t *testing.T) {
		c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusUnprocessableEntity)
			_ = json.NewEncoder(w).Encode(map[string]string{"message": "Số tiền không hợp lệ"})
		})

		err := c.CreateTransaction(context.Background(), model.DraftTransaction{Type: model.TypeExpense, Amount: 1, Date: time.Now()})
		require.Error(t, err)
		assert.Equal(t, "Số tiền không hợp lệ", err.Error())
	})

	t.Run("opaque failure reports the status code", func(t *testing.T) {
		c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "boom", http.StatusInternalServerError)
		})

		err := c.CreateCategory(context.Background(), model.DraftCategory{Name: "x", Type: model.TypeExpense})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "500")
	})
}
