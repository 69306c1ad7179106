package backend

import (
	"context"
	"net/http"
	"time"

	"github.com/FACorreiaa/finchat/internal/assistant"
	"github.com/FACorreiaa/finchat/internal/model"
)

// transactionPayload is the transaction service's create contract. Date is
// serialized to ISO-8601 before handoff.
type transactionPayload struct {
	Type         string `json:"type"`
	Amount       int64  `json:"amount"`
	Note         string `json:"note"`
	CategoryName string `json:"category_name,omitempty"`
	Date         string `json:"date"`
}

// CreateTransaction posts a confirmed transaction draft.
func (c *Client) CreateTransaction(ctx context.Context, draft model.DraftTransaction) error {
	return c.postJSON(ctx, http.MethodPost, "/v1/transactions", transactionPayload{
		Type:         string(draft.Type),
		Amount:       draft.Amount,
		Note:         draft.Note,
		CategoryName: draft.CategoryName,
		Date:         draft.Date.UTC().Format(time.RFC3339),
	})
}

// categoryPayload is the category service's create contract.
type categoryPayload struct {
	Name string `json:"name"`
	Type string `json:"type"`
}

// CreateCategory posts a confirmed category draft.
func (c *Client) CreateCategory(ctx context.Context, draft model.DraftCategory) error {
	return c.postJSON(ctx, http.MethodPost, "/v1/categories", categoryPayload{
		Name: draft.Name,
		Type: string(draft.Type),
	})
}

// SetBudgetSplit applies a needs/wants/savings split via the budget
// service.
func (c *Client) SetBudgetSplit(ctx context.Context, split assistant.BudgetSplit) error {
	return c.postJSON(ctx, http.MethodPut, "/v1/budget/split", split)
}
