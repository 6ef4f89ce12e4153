package manualsync_test

import (
	"context"

	"github.com/cockroachdb/errors"

	"github.com/skynet2/expense-tracker-sync/pkg/manualsync"
	"github.com/skynet2/expense-tracker-sync/pkg/transcoder"
)

type failingStore struct {
	manualsync.Store[transcoder.RemoteExpense]
	failID string
	err    error
}

func (f *failingStore) Add(ctx context.Context, record transcoder.RemoteExpense, scopeID string) (transcoder.RemoteExpense, error) {
	if record.ID == f.failID {
		if f.err != nil {
			return record, f.err
		}

		return record, errors.New("remote rejected record")
	}

	return f.Store.Add(ctx, record, scopeID)
}

func withExpenses(stores manualsync.RemoteStores, expenses manualsync.Store[transcoder.RemoteExpense]) manualsync.RemoteStores {
	stores.Expenses = expenses
	return stores
}
