// Package model holds the draft value types exchanged between the parsing
// pipeline, the dialog state machine and the assistant service.
package model

import "time"

// TxType is the direction of a transaction draft.
type TxType string

const (
	TypeExpense TxType = "expense"
	TypeIncome  TxType = "income"
)

// DefaultNote is the placeholder stored when the user never supplied a note.
const DefaultNote = "Không có ghi chú"

// DraftTransaction is a provisional transaction awaiting user confirmation.
// It is never persisted by the core; once surfaced for confirmation it is
// treated as immutable.
type DraftTransaction struct {
	Type         TxType    `json:"type"`
	Amount       int64     `json:"amount"` // base currency units, always > 0
	Note         string    `json:"note"`
	Date         time.Time `json:"date"`
	CategoryName string    `json:"category_name,omitempty"`
	OriginalText string    `json:"original_text"`
}

// DraftCategory is a provisional category awaiting user confirmation.
type DraftCategory struct {
	Name         string `json:"name"` // non-empty
	Type         TxType `json:"type"`
	OriginalText string `json:"original_text"`
}
