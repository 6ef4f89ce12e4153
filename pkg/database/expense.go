package database

import (
	"time"

	"github.com/shopspring/decimal"
)

// Expense is a single expense or income record. Amount is always stored as a
// non-negative magnitude, IsIncome carries the sign.
type Expense struct {
	ID           string          `json:"id"`
	Amount       decimal.Decimal `json:"amount"`
	Description  string          `json:"description"`
	Category     string          `json:"category"`
	WalletID     string          `json:"walletId"`
	Date         time.Time       `json:"date"`
	CreatedAt    time.Time       `json:"createdAt"`
	LastModified *time.Time      `json:"lastModified,omitempty"`
	IsIncome     bool            `json:"isIncome"`
	Tags         []string        `json:"tags"`
	Notes        string          `json:"notes"`
	PhotoURL     string          `json:"photoUrl,omitempty"`
	Lifecycle    Lifecycle       `json:"deletedAt"`
}

func (e Expense) RecordID() string {
	return e.ID
}

func (e Expense) GetLifecycle() Lifecycle {
	return e.Lifecycle
}

func (e *Expense) SetLifecycle(l Lifecycle) {
	e.Lifecycle = l
}

// RecencyTime is the timestamp used to pick the most recent copy of a record.
func (e Expense) RecencyTime() time.Time {
	if e.LastModified != nil && !e.LastModified.IsZero() {
		return *e.LastModified
	}

	if !e.CreatedAt.IsZero() {
		return e.CreatedAt
	}

	return e.Date
}

func (e Expense) TypeLabel() string {
	if e.IsIncome {
		return "income"
	}

	return "expense"
}
