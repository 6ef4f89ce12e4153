package manualsync

import (
	"context"

	"github.com/skynet2/expense-tracker-sync/pkg/database"
	"github.com/skynet2/expense-tracker-sync/pkg/transcoder"
)

// Store is the record store contract shared by local and remote backends. GetByID
// returns nil when the record is absent, Add fails with common.ErrConflict on an
// existing id and Update with common.ErrNotFound on a missing one. Local stores ignore
// scopeID.
type Store[T any] interface {
	GetAll(ctx context.Context, scopeID string) ([]T, error)
	GetByID(ctx context.Context, id string, scopeID string) (*T, error)
	Add(ctx context.Context, record T, scopeID string) (T, error)
	Update(ctx context.Context, record T, scopeID string) (T, error)
	Delete(ctx context.Context, id string, scopeID string) (string, error)
}

type LocalStore[T any] interface {
	Store[T]
	Purge(ctx context.Context, scopeID string) error
}

// ExpenseStore soft deletes; deleted expenses stay readable for sync.
type ExpenseStore interface {
	LocalStore[database.Expense]
	GetAllIncludingDeleted(ctx context.Context, scopeID string) ([]database.Expense, error)
}

type LocalStores struct {
	Expenses   ExpenseStore
	Categories LocalStore[database.Category]
	Tags       LocalStore[database.Tag]
	Wallets    LocalStore[database.Wallet]
	Budgets    LocalStore[database.Budget]
	Transfers  LocalStore[database.Transfer]
	Recurring  LocalStore[database.RecurringRule]
}

type RemoteStores struct {
	Expenses   Store[transcoder.RemoteExpense]
	Categories Store[transcoder.RemoteCategory]
	Tags       Store[transcoder.RemoteTag]
	Wallets    Store[transcoder.RemoteWallet]
	Budgets    Store[transcoder.RemoteBudget]
	Transfers  Store[transcoder.RemoteTransfer]
	Recurring  Store[transcoder.RemoteRecurring]
}
