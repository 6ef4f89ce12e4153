package manualsync

import (
	"context"

	"github.com/skynet2/expense-tracker-sync/pkg/database"
)

type trackedStore[T any] struct {
	LocalStore[T]
	onChange func(ctx context.Context)
}

func (t *trackedStore[T]) Add(ctx context.Context, record T, scopeID string) (T, error) {
	rec, err := t.LocalStore.Add(ctx, record, scopeID)
	if err == nil {
		t.onChange(ctx)
	}

	return rec, err
}

func (t *trackedStore[T]) Update(ctx context.Context, record T, scopeID string) (T, error) {
	rec, err := t.LocalStore.Update(ctx, record, scopeID)
	if err == nil {
		t.onChange(ctx)
	}

	return rec, err
}

func (t *trackedStore[T]) Delete(ctx context.Context, id string, scopeID string) (string, error) {
	deletedID, err := t.LocalStore.Delete(ctx, id, scopeID)
	if err == nil {
		t.onChange(ctx)
	}

	return deletedID, err
}

func (t *trackedStore[T]) Purge(ctx context.Context, scopeID string) error {
	err := t.LocalStore.Purge(ctx, scopeID)
	if err == nil {
		t.onChange(ctx)
	}

	return err
}

type trackedExpenses struct {
	*trackedStore[database.Expense]
	source ExpenseStore
}

func (t *trackedExpenses) GetAllIncludingDeleted(ctx context.Context, scopeID string) ([]database.Expense, error) {
	return t.source.GetAllIncludingDeleted(ctx, scopeID)
}

func track[T any](store LocalStore[T], onChange func(ctx context.Context)) LocalStore[T] {
	return &trackedStore[T]{
		LocalStore: store,
		onChange:   onChange,
	}
}

func (m *Manager) trackLocal() LocalStores {
	local := m.cfg.Local

	return LocalStores{
		Expenses: &trackedExpenses{
			trackedStore: &trackedStore[database.Expense]{
				LocalStore: local.Expenses,
				onChange:   m.markLocalChange,
			},
			source: local.Expenses,
		},
		Categories: track(local.Categories, m.markLocalChange),
		Tags:       track(local.Tags, m.markLocalChange),
		Wallets:    track(local.Wallets, m.markLocalChange),
		Budgets:    track(local.Budgets, m.markLocalChange),
		Transfers:  track(local.Transfers, m.markLocalChange),
		Recurring:  track(local.Recurring, m.markLocalChange),
	}
}
