package manualsync

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/davecgh/go-spew/spew"
	"github.com/rs/zerolog"

	"github.com/skynet2/expense-tracker-sync/pkg/common"
	"github.com/skynet2/expense-tracker-sync/pkg/database"
)

// ExportLocalData snapshots every local entity type. A failing store exports as empty
// and is recorded in the status errors.
func (m *Manager) ExportLocalData(ctx context.Context) *Snapshot {
	local := m.cfg.Local

	data := &SnapshotData{
		Expenses:   readOrEmpty(ctx, m, database.EntityExpenses, local.Expenses.GetAllIncludingDeleted),
		Categories: readOrEmpty(ctx, m, database.EntityCategories, local.Categories.GetAll),
		Wallets:    readOrEmpty(ctx, m, database.EntityWallets, local.Wallets.GetAll),
		Transfers:  readOrEmpty(ctx, m, database.EntityTransfers, local.Transfers.GetAll),
		Tags:       readOrEmpty(ctx, m, database.EntityTags, local.Tags.GetAll),
		Budgets:    readOrEmpty(ctx, m, database.EntityBudgets, local.Budgets.GetAll),
		Recurring:  readOrEmpty(ctx, m, database.EntityRecurring, local.Recurring.GetAll),
	}

	status := m.Status()

	return &Snapshot{
		Version:    SnapshotVersion,
		ExportType: SnapshotExportType,
		ExportDate: m.now(),
		UserID:     m.cfg.Session.UserID,
		Data:       data,
		Metadata: SnapshotMetadata{
			TotalExpenses:   len(data.Expenses),
			TotalCategories: len(data.Categories),
			TotalWallets:    len(data.Wallets),
			TotalTransfers:  len(data.Transfers),
			TotalTags:       len(data.Tags),
			TotalBudgets:    len(data.Budgets),
			TotalRecurring:  len(data.Recurring),
			HasLocalChanges: status.HasLocalChanges,
			LastManualSync:  status.LastManualSync,
		},
	}
}

func readOrEmpty[T any](
	ctx context.Context,
	m *Manager,
	entity database.EntityType,
	read func(ctx context.Context, scopeID string) ([]T, error),
) []T {
	items, err := read(ctx, "")
	if err != nil {
		zerolog.Ctx(ctx).Err(err).Str("entity", entity.String()).Msg("failed to export entity")
		m.recordError(ctx, operationExport, errors.Wrapf(err, "export %s", entity))

		return []T{}
	}

	if items == nil {
		return []T{}
	}

	return items
}

// ParseSnapshot decodes an export file and validates its envelope.
func ParseSnapshot(raw []byte) (*Snapshot, error) {
	var snap Snapshot
	if err := json.Unmarshal(raw, &snap); err != nil {
		return nil, errors.Wrap(common.ErrValidation, err.Error())
	}

	if err := ValidateSnapshot(&snap); err != nil {
		return nil, err
	}

	return &snap, nil
}

func ValidateSnapshot(snap *Snapshot) error {
	if snap == nil {
		return errors.Wrap(common.ErrValidation, "snapshot is empty")
	}

	if strings.TrimSpace(snap.Version) == "" {
		return errors.Wrap(common.ErrValidation, "snapshot version is missing")
	}

	if snap.Data == nil {
		return errors.Wrapf(common.ErrValidation, "snapshot data is missing: %s", spew.Sdump(snap.Metadata))
	}

	for _, e := range snap.Data.Expenses {
		if e.ID == "" {
			return errors.Wrapf(common.ErrValidation, "expense without id: %s", spew.Sdump(e))
		}
	}

	return nil
}

// ImportLocalData writes a snapshot into the local store. Each record is inserted, or
// updated when its id exists; failures are counted per type and do not stop the import.
func (m *Manager) ImportLocalData(ctx context.Context, snap *Snapshot, opts ImportOptions) (*Result, error) {
	if err := m.begin(); err != nil {
		return nil, err
	}
	defer m.end()

	if err := ValidateSnapshot(snap); err != nil {
		m.recordError(ctx, operationImport, err)
		return nil, err
	}

	res := newResult(operationImport)

	if opts.ReplaceExisting {
		if err := m.purgeLocal(ctx); err != nil {
			return m.abort(ctx, res, err)
		}
	}

	skip := m.skipper(ctx, opts.OverrideLedger)
	local := m.cfg.Local
	data := snap.Data

	importItems(ctx, res, skip, database.EntityCategories, local.Categories, data.Categories)
	importItems(ctx, res, skip, database.EntityTags, local.Tags, data.Tags)
	importItems(ctx, res, skip, database.EntityWallets, local.Wallets, data.Wallets)
	importItems(ctx, res, skip, database.EntityBudgets, local.Budgets, data.Budgets)
	importItems(ctx, res, skip, database.EntityRecurring, LocalStore[database.RecurringRule](local.Recurring), data.Recurring)
	importItems(ctx, res, skip, database.EntityTransfers, local.Transfers, data.Transfers)
	importItems(ctx, res, skip, database.EntityExpenses, LocalStore[database.Expense](local.Expenses), data.Expenses)

	written := 0
	for _, st := range res.Stats {
		written += st.Inserted + st.Updated
	}

	if written > 0 || opts.ReplaceExisting {
		m.markLocalChange(ctx)
	}

	if opts.OverrideLedger {
		m.releaseRestored(ctx)
	}

	m.finish(ctx, res, nil)

	return res, nil
}

func importItems[T record](
	ctx context.Context,
	res *Result,
	skip skipFunc,
	entity database.EntityType,
	store LocalStore[T],
	items []T,
) {
	st := res.stats(entity)

	for _, item := range items {
		st.Processed++

		if skip(entity, item.RecordID(), isDeleted(item)) {
			st.Skipped++
			continue
		}

		inserted, err := upsert[T](ctx, store, item, "")
		if err != nil {
			res.addItemError(entity, item.RecordID(), err)
			continue
		}

		if inserted {
			st.Inserted++
		} else {
			st.Updated++
		}
	}
}
