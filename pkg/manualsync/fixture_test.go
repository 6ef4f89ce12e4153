package manualsync_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/skynet2/expense-tracker-sync/pkg/database"
	"github.com/skynet2/expense-tracker-sync/pkg/manualsync"
	"github.com/skynet2/expense-tracker-sync/pkg/repo"
	"github.com/skynet2/expense-tracker-sync/pkg/transcoder"
)

type fakeClock struct {
	now time.Time
}

func (f *fakeClock) Now() time.Time {
	return f.now
}

type localFixture struct {
	expenses   *repo.Memory[database.Expense]
	categories *repo.Memory[database.Category]
	tags       *repo.Memory[database.Tag]
	wallets    *repo.Memory[database.Wallet]
	budgets    *repo.Memory[database.Budget]
	transfers  *repo.Memory[database.Transfer]
	recurring  *repo.Memory[database.RecurringRule]
}

func newLocalFixture() *localFixture {
	return &localFixture{
		expenses:   repo.NewMemory[database.Expense](repo.SoftDelete),
		categories: repo.NewMemory[database.Category](repo.HardDelete),
		tags:       repo.NewMemory[database.Tag](repo.HardDelete),
		wallets:    repo.NewMemory[database.Wallet](repo.HardDelete),
		budgets:    repo.NewMemory[database.Budget](repo.HardDelete),
		transfers:  repo.NewMemory[database.Transfer](repo.HardDelete),
		recurring:  repo.NewMemory[database.RecurringRule](repo.HardDelete),
	}
}

func (l *localFixture) stores() manualsync.LocalStores {
	return manualsync.LocalStores{
		Expenses:   l.expenses,
		Categories: l.categories,
		Tags:       l.tags,
		Wallets:    l.wallets,
		Budgets:    l.budgets,
		Transfers:  l.transfers,
		Recurring:  l.recurring,
	}
}

type remoteFixture struct {
	expenses   *repo.Memory[transcoder.RemoteExpense]
	categories *repo.Memory[transcoder.RemoteCategory]
	tags       *repo.Memory[transcoder.RemoteTag]
	wallets    *repo.Memory[transcoder.RemoteWallet]
	budgets    *repo.Memory[transcoder.RemoteBudget]
	transfers  *repo.Memory[transcoder.RemoteTransfer]
	recurring  *repo.Memory[transcoder.RemoteRecurring]
}

func newRemoteFixture() *remoteFixture {
	return &remoteFixture{
		expenses:   repo.NewMemory[transcoder.RemoteExpense](repo.HardDelete),
		categories: repo.NewMemory[transcoder.RemoteCategory](repo.HardDelete),
		tags:       repo.NewMemory[transcoder.RemoteTag](repo.HardDelete),
		wallets:    repo.NewMemory[transcoder.RemoteWallet](repo.HardDelete),
		budgets:    repo.NewMemory[transcoder.RemoteBudget](repo.HardDelete),
		transfers:  repo.NewMemory[transcoder.RemoteTransfer](repo.HardDelete),
		recurring:  repo.NewMemory[transcoder.RemoteRecurring](repo.HardDelete),
	}
}

func (r *remoteFixture) stores() manualsync.RemoteStores {
	return manualsync.RemoteStores{
		Expenses:   r.expenses,
		Categories: r.categories,
		Tags:       r.tags,
		Wallets:    r.wallets,
		Budgets:    r.budgets,
		Transfers:  r.transfers,
		Recurring:  r.recurring,
	}
}

type fixture struct {
	ctrl     *gomock.Controller
	conn     *MockConnectivity
	local    *localFixture
	remote   *remoteFixture
	settings *repo.MemorySettings
	clock    *fakeClock
	mgr      *manualsync.Manager
}

type fixtureOption func(cfg *manualsync.Config)

func newFixture(t *testing.T, online bool, opts ...fixtureOption) *fixture {
	t.Helper()

	ctrl := gomock.NewController(t)
	conn := NewMockConnectivity(ctrl)
	conn.EXPECT().IsOnline().Return(online).AnyTimes()

	f := &fixture{
		ctrl:     ctrl,
		conn:     conn,
		local:    newLocalFixture(),
		remote:   newRemoteFixture(),
		settings: repo.NewMemorySettings(),
		clock:    &fakeClock{now: time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)},
	}

	ids := 0

	cfg := manualsync.Config{
		Session:      manualsync.Session{UserID: "user-1"},
		Local:        f.local.stores(),
		Remote:       f.remote.stores(),
		Connectivity: conn,
		Settings:     f.settings,
		Clock:        f.clock.Now,
		NewID: func() string {
			ids++
			return fmt.Sprintf("gen-%d", ids)
		},
	}

	for _, opt := range opts {
		opt(&cfg)
	}

	mgr, err := manualsync.NewManager(context.Background(), cfg)
	assert.NoError(t, err)

	f.mgr = mgr

	t.Cleanup(mgr.Close)

	return f
}

func expense(id string, amount int64, description string) database.Expense {
	return database.Expense{
		ID:          id,
		Amount:      decimal.NewFromInt(amount),
		Description: description,
		Category:    "food",
		WalletID:    "w1",
		Date:        time.Date(2024, 2, 10, 0, 0, 0, 0, time.UTC),
		CreatedAt:   time.Date(2024, 2, 10, 9, 0, 0, 0, time.UTC),
		Tags:        []string{},
	}
}

func seedLocal(t *testing.T, f *fixture) {
	t.Helper()

	ctx := context.Background()

	_, err := f.local.categories.Add(ctx, database.Category{ID: "food", Name: "Food", Color: "#ff0000"}, "")
	assert.NoError(t, err)
	_, err = f.local.wallets.Add(ctx, database.Wallet{ID: "w1", Name: "Cash", Balance: decimal.NewFromInt(100), Type: database.WalletTypeCash}, "")
	assert.NoError(t, err)
	_, err = f.local.tags.Add(ctx, database.Tag{ID: "t1", Name: "work"}, "")
	assert.NoError(t, err)
	_, err = f.local.expenses.Add(ctx, expense("e1", 10, "Coffee"), "")
	assert.NoError(t, err)
	_, err = f.local.expenses.Add(ctx, expense("e2", 25, "Taxi"), "")
	assert.NoError(t, err)

	deleted := expense("e3", 7, "Snack")
	deleted.Lifecycle = database.DeletedAt(time.Date(2024, 2, 11, 0, 0, 0, 0, time.UTC))
	_, err = f.local.expenses.Add(ctx, deleted, "")
	assert.NoError(t, err)
}
