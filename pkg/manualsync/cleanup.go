package manualsync

import (
	"context"
	"fmt"

	"github.com/cockroachdb/errors"
	"github.com/rs/zerolog"

	"github.com/skynet2/expense-tracker-sync/pkg/common"
	"github.com/skynet2/expense-tracker-sync/pkg/database"
	"github.com/skynet2/expense-tracker-sync/pkg/duplicatecleaner"
)

// ScanDuplicates groups the active local expenses that look like duplicates.
func (m *Manager) ScanDuplicates(ctx context.Context) ([]duplicatecleaner.Group, error) {
	expenses, err := m.cfg.Local.Expenses.GetAll(ctx, "")
	if err != nil {
		return nil, errors.Wrap(err, "read local expenses")
	}

	return duplicatecleaner.FindDuplicates(expenses), nil
}

// CleanupDuplicates removes duplicates from the local store and, with IncludeCloud,
// from the remote store as well.
func (m *Manager) CleanupDuplicates(ctx context.Context, opts CleanupOptions) (*Result, error) {
	if err := m.begin(); err != nil {
		return nil, err
	}
	defer m.end()

	lg := zerolog.Ctx(ctx)

	groups, err := m.ScanDuplicates(ctx)
	if err != nil {
		m.recordError(ctx, operationCleanup, err)
		return nil, err
	}

	for idx, keepID := range opts.Keep {
		if idx < 0 || idx >= len(groups) {
			return nil, errors.Wrapf(common.ErrValidation, "duplicate group %d does not exist", idx)
		}

		if err = groups[idx].Keep(keepID); err != nil {
			return nil, err
		}
	}

	report := m.cleaner.RemoveDuplicates(ctx, groups, duplicatecleaner.RemoveOptions{
		DryRun:      opts.DryRun,
		MaxToDelete: opts.MaxToDelete,
		Manual:      opts.Manual,
	})

	res := newResult(operationCleanup)
	res.Cleanup = report

	st := res.stats(database.EntityExpenses)
	st.Processed = len(groups)
	st.Deleted = len(report.Deleted)
	st.Skipped = report.Skipped

	for _, failed := range report.Failed {
		res.addItemError(failed.Entity, failed.ID, failed.Err)
	}

	for _, failed := range report.LedgerFailures {
		res.addItemError(failed.Entity, failed.ID, errors.Wrap(failed.Err, "track cleaned duplicate"))
	}

	if !opts.DryRun && len(report.Deleted) > 0 {
		m.markLocalChange(ctx)

		if opts.IncludeCloud {
			m.mirrorCleanup(ctx, report, res)
		}
	}

	m.finish(ctx, res, nil)

	if opts.DryRun {
		res.Message = fmt.Sprintf("dry run: %d duplicates in %d groups would be removed", len(report.Deleted), len(groups))
	}

	lg.Info().
		Bool("dry_run", opts.DryRun).
		Int("groups", len(groups)).
		Int("deleted", len(report.Deleted)).
		Msg("duplicates cleaned")

	return res, nil
}

// mirrorCleanup hard deletes cleaned expenses from the cloud. A missing remote record
// counts as deleted.
func (m *Manager) mirrorCleanup(ctx context.Context, report *duplicatecleaner.Report, res *Result) {
	st := res.stats(database.EntityExpenses)

	if err := m.requireCloud(); err != nil {
		st.Error = errors.Wrap(err, "cloud cleanup skipped").Error()
		report.Recommendations = append(report.Recommendations,
			duplicatecleaner.Recommendations([]error{err})...)

		return
	}

	if m.cfg.Remote.Expenses == nil {
		st.Error = "remote store is not configured"
		return
	}

	var failures []error

	for _, id := range report.Deleted {
		if _, err := m.cfg.Remote.Expenses.Delete(ctx, id, m.cfg.Session.UserID); err != nil {
			if errors.Is(err, common.ErrNotFound) {
				continue
			}

			res.addItemError(database.EntityExpenses, id, errors.Wrap(err, "cloud delete"))
			failures = append(failures, err)
		}
	}

	if len(failures) > 0 {
		report.Recommendations = append(report.Recommendations,
			duplicatecleaner.Recommendations(failures)...)
	}
}

// CheckBeforeAdd runs the pre-insertion duplicate guard against local data and the
// cleaned duplicate ledger.
func (m *Manager) CheckBeforeAdd(ctx context.Context, expense database.Expense) (*duplicatecleaner.CheckResult, error) {
	all, err := m.cfg.Local.Expenses.GetAllIncludingDeleted(ctx, "")
	if err != nil {
		return nil, errors.Wrap(err, "read local expenses")
	}

	var existing, deleted []database.Expense

	for _, item := range all {
		if item.Lifecycle.IsDeleted() {
			deleted = append(deleted, item)
		} else {
			existing = append(existing, item)
		}
	}

	return m.cleaner.CheckBeforeAdd(ctx, expense, existing, deleted)
}
