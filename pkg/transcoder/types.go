package transcoder

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/skynet2/expense-tracker-sync/pkg/database"
)

// Remote shapes follow the snake_case column convention of the cloud backend. UserID is
// stamped by remote stores and never set by the transcoder.

type RemoteExpense struct {
	ID          string          `json:"id"`
	UserID      string          `json:"user_id,omitempty"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description"`
	Category    string          `json:"category"`
	WalletID    string          `json:"wallet_id"`
	Date        time.Time       `json:"date"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   *time.Time      `json:"updated_at"`
	IsIncome    bool            `json:"is_income"`
	Tags        []string        `json:"tags"`
	Notes       string          `json:"notes"`
	PhotoURL    string          `json:"photo_url"`
	DeletedAt   *time.Time      `json:"deleted_at"`
}

type RemoteCategory struct {
	ID     string `json:"id"`
	UserID string `json:"user_id,omitempty"`
	Name   string `json:"name"`
	Color  string `json:"color"`
}

type RemoteTag struct {
	ID     string `json:"id"`
	UserID string `json:"user_id,omitempty"`
	Name   string `json:"name"`
	Color  string `json:"color"`
}

type RemoteWallet struct {
	ID      string          `json:"id"`
	UserID  string          `json:"user_id,omitempty"`
	Name    string          `json:"name"`
	Color   string          `json:"color"`
	Balance decimal.Decimal `json:"balance"`
	Type    string          `json:"type"`
}

type RemoteBudget struct {
	ID         string          `json:"id"`
	UserID     string          `json:"user_id,omitempty"`
	Name       string          `json:"name"`
	CategoryID string          `json:"category_id"`
	Amount     decimal.Decimal `json:"amount"`
	Period     string          `json:"period"`
	StartDate  time.Time       `json:"start_date"`
	Color      string          `json:"color"`
}

type RemoteTransfer struct {
	ID             string          `json:"id"`
	UserID         string          `json:"user_id,omitempty"`
	FromWalletID   string          `json:"from_wallet_id"`
	ToWalletID     string          `json:"to_wallet_id"`
	FromWalletName string          `json:"from_wallet_name"`
	ToWalletName   string          `json:"to_wallet_name"`
	Amount         decimal.Decimal `json:"amount"`
	Date           time.Time       `json:"date"`
	Notes          string          `json:"notes"`
	PhotoURL       string          `json:"photo_url"`
	CreatedAt      time.Time       `json:"created_at"`
}

type RemoteRecurring struct {
	ID               string          `json:"id"`
	UserID           string          `json:"user_id,omitempty"`
	Amount           decimal.Decimal `json:"amount"`
	Description      string          `json:"description"`
	Category         string          `json:"category"`
	WalletID         string          `json:"wallet_id"`
	IsIncome         bool            `json:"is_income"`
	Tags             []string        `json:"tags"`
	Notes            string          `json:"notes"`
	Frequency        string          `json:"frequency"`
	StartDate        time.Time       `json:"start_date"`
	EndDate          *time.Time      `json:"end_date"`
	NextDate         time.Time       `json:"next_date"`
	LastMaterialized *time.Time      `json:"last_materialized"`
	CreatedAt        time.Time       `json:"created_at"`
}

func (r RemoteExpense) RecordID() string   { return r.ID }
func (r RemoteCategory) RecordID() string  { return r.ID }
func (r RemoteTag) RecordID() string       { return r.ID }
func (r RemoteWallet) RecordID() string    { return r.ID }
func (r RemoteBudget) RecordID() string    { return r.ID }
func (r RemoteTransfer) RecordID() string  { return r.ID }
func (r RemoteRecurring) RecordID() string { return r.ID }

func (r RemoteExpense) WithScope(scopeID string) RemoteExpense {
	r.UserID = scopeID
	return r
}

func (r RemoteCategory) WithScope(scopeID string) RemoteCategory {
	r.UserID = scopeID
	return r
}

func (r RemoteTag) WithScope(scopeID string) RemoteTag {
	r.UserID = scopeID
	return r
}

func (r RemoteWallet) WithScope(scopeID string) RemoteWallet {
	r.UserID = scopeID
	return r
}

func (r RemoteBudget) WithScope(scopeID string) RemoteBudget {
	r.UserID = scopeID
	return r
}

func (r RemoteTransfer) WithScope(scopeID string) RemoteTransfer {
	r.UserID = scopeID
	return r
}

func (r RemoteRecurring) WithScope(scopeID string) RemoteRecurring {
	r.UserID = scopeID
	return r
}

func (r RemoteExpense) GetLifecycle() database.Lifecycle {
	return database.LifecycleFromNullable(r.DeletedAt)
}

func (r *RemoteExpense) SetLifecycle(l database.Lifecycle) {
	r.DeletedAt = l.Nullable()
}

// Codec pairs the two directions of one entity type.
type Codec[L any, R any] struct {
	Entity   database.EntityType
	ToRemote func(L) R
	ToLocal  func(R) L
}
