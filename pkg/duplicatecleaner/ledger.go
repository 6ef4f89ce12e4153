package duplicatecleaner

import (
	"context"
	"encoding/json"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/samber/lo"
)

const ledgerKeyPrefix = "cleaned_duplicates:"

// Ledger remembers expenses removed as duplicates so sync and import do not bring them
// back. Entries expire after RetentionWindow.
type Ledger struct {
	repo  Repo
	key   string
	clock func() time.Time
}

func NewLedger(
	repo Repo,
	userID string,
	clock func() time.Time,
) *Ledger {
	if clock == nil {
		clock = time.Now
	}

	return &Ledger{
		repo:  repo,
		key:   ledgerKeyPrefix + userID,
		clock: clock,
	}
}

func (l *Ledger) Track(
	ctx context.Context,
	id string,
	fingerprint string,
	reason CleanupReason,
) error {
	entries, err := l.load(ctx)
	if err != nil {
		return err
	}

	entries[id] = LedgerEntry{
		CleanedAt:   l.clock().UTC(),
		Reason:      reason,
		Fingerprint: fingerprint,
	}

	return l.save(ctx, entries)
}

func (l *Ledger) IsRecentlyCleaned(ctx context.Context, id string) (bool, error) {
	entries, err := l.Entries(ctx)
	if err != nil {
		return false, err
	}

	_, ok := entries[id]

	return ok, nil
}

// Entries returns the entries still inside the retention window.
func (l *Ledger) Entries(ctx context.Context) (map[string]LedgerEntry, error) {
	entries, err := l.load(ctx)
	if err != nil {
		return nil, err
	}

	return l.prune(entries), nil
}

// Suppressed is the set of ids that must not be re-inserted.
func (l *Ledger) Suppressed(ctx context.Context) (map[string]struct{}, error) {
	entries, err := l.Entries(ctx)
	if err != nil {
		return nil, err
	}

	return lo.MapValues(entries, func(_ LedgerEntry, _ string) struct{} {
		return struct{}{}
	}), nil
}

// Forget drops an entry when the user explicitly restores the expense.
func (l *Ledger) Forget(ctx context.Context, id string) error {
	entries, err := l.load(ctx)
	if err != nil {
		return err
	}

	if _, ok := entries[id]; !ok {
		return nil
	}

	delete(entries, id)

	return l.save(ctx, entries)
}

func (l *Ledger) load(ctx context.Context) (map[string]LedgerEntry, error) {
	raw, err := l.repo.Load(ctx, l.key)
	if err != nil {
		return nil, errors.Wrap(err, "load ledger")
	}

	entries := map[string]LedgerEntry{}
	if len(raw) == 0 {
		return entries, nil
	}

	if err = json.Unmarshal(raw, &entries); err != nil {
		return nil, errors.Wrap(err, "decode ledger")
	}

	return entries, nil
}

func (l *Ledger) save(ctx context.Context, entries map[string]LedgerEntry) error {
	raw, err := json.Marshal(l.prune(entries))
	if err != nil {
		return errors.WithStack(err)
	}

	if err = l.repo.Save(ctx, l.key, raw); err != nil {
		return errors.Wrap(err, "save ledger")
	}

	return nil
}

func (l *Ledger) prune(entries map[string]LedgerEntry) map[string]LedgerEntry {
	now := l.clock()

	return lo.PickBy(entries, func(_ string, entry LedgerEntry) bool {
		return now.Sub(entry.CleanedAt) < RetentionWindow
	})
}
