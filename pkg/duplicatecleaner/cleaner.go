package duplicatecleaner

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/skynet2/expense-tracker-sync/pkg/common"
	"github.com/skynet2/expense-tracker-sync/pkg/database"
)

type Cleaner struct {
	store  Deleter
	ledger *Ledger
	clock  func() time.Time
}

func NewCleaner(
	store Deleter,
	ledger *Ledger,
) *Cleaner {
	return &Cleaner{
		store:  store,
		ledger: ledger,
		clock:  ledger.clock,
	}
}

// RemoveDuplicates deletes the ToDelete members of every group, at most MaxToDelete of
// them. A failed deletion is reported and the batch goes on. Dry runs only enumerate.
func (c *Cleaner) RemoveDuplicates(
	ctx context.Context,
	groups []Group,
	opts RemoveOptions,
) *Report {
	lg := zerolog.Ctx(ctx)

	maxToDelete := opts.MaxToDelete
	if maxToDelete <= 0 {
		maxToDelete = DefaultMaxToDelete
	}

	reason := ReasonAutomatic
	if opts.Manual {
		reason = ReasonManual
	}

	report := &Report{
		DryRun:  opts.DryRun,
		Deleted: []string{},
		Kept:    []string{},
	}

	attempted := 0
	var failures []error

	for _, group := range groups {
		report.GroupsProcessed++
		report.Kept = append(report.Kept, group.ToKeep.ID)

		for _, item := range group.ToDelete {
			if attempted >= maxToDelete {
				report.Skipped++
				continue
			}

			attempted++

			if opts.DryRun {
				report.Deleted = append(report.Deleted, item.ID)
				continue
			}

			if _, err := c.store.Delete(ctx, item.ID, opts.ScopeID); err != nil {
				lg.Warn().Err(err).Str("id", item.ID).Msg("failed to delete duplicate")

				report.Failed = append(report.Failed, common.ItemError{
					Entity: database.EntityExpenses,
					ID:     item.ID,
					Err:    err,
				})
				failures = append(failures, err)

				continue
			}

			report.Deleted = append(report.Deleted, item.ID)

			if err := c.ledger.Track(ctx, item.ID, Fingerprint(item), reason); err != nil {
				lg.Err(err).Str("id", item.ID).Msg("failed to track cleaned duplicate")

				report.LedgerFailures = append(report.LedgerFailures, common.ItemError{
					Entity: database.EntityExpenses,
					ID:     item.ID,
					Err:    err,
				})
				failures = append(failures, err)
			}
		}
	}

	report.Recommendations = Recommendations(failures)

	lg.Info().
		Bool("dry_run", opts.DryRun).
		Int("groups", report.GroupsProcessed).
		Int("deleted", len(report.Deleted)).
		Int("failed", len(report.Failed)).
		Int("ledger_failed", len(report.LedgerFailures)).
		Int("skipped", report.Skipped).
		Msg("duplicate cleanup finished")

	return report
}

// CheckBeforeAdd compares a new expense against existing ones, recently soft-deleted
// ones and the ledger.
func (c *Cleaner) CheckBeforeAdd(
	ctx context.Context,
	newExpense database.Expense,
	existing []database.Expense,
	recentlyDeleted []database.Expense,
) (*CheckResult, error) {
	result := &CheckResult{}

	for i := range existing {
		item := existing[i]
		if item.Lifecycle.IsDeleted() {
			continue
		}

		res := Score(newExpense, item)

		switch {
		case res.IsDuplicate:
			result.Duplicates = append(result.Duplicates, toCandidate(item, res))
		case res.Confidence > SuggestionThreshold:
			result.Suggestions = append(result.Suggestions, toCandidate(item, res))
		}
	}

	now := c.clock()

	for i := range recentlyDeleted {
		item := recentlyDeleted[i]

		at, ok := item.Lifecycle.DeletedTime()
		if !ok || now.Sub(at) >= RetentionWindow {
			continue
		}

		if res := Score(newExpense, item); res.IsDuplicate {
			result.RecentlyDeleted = append(result.RecentlyDeleted, toCandidate(item, res))
		}
	}

	entries, err := c.ledger.Entries(ctx)
	if err != nil {
		return nil, err
	}

	fingerprint := Fingerprint(newExpense)

	for id, entry := range entries {
		if entry.Fingerprint != fingerprint {
			continue
		}

		result.RecentlyDeleted = append(result.RecentlyDeleted, Candidate{
			ID:         id,
			Confidence: 100,
			Reasons:    []string{string(entry.Reason)},
		})
	}

	return result, nil
}

func toCandidate(item database.Expense, res Result) Candidate {
	return Candidate{
		ID:         item.ID,
		Expense:    &item,
		Confidence: res.Confidence,
		Reasons:    res.Reasons,
	}
}
