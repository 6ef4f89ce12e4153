package duplicatecleaner_test

import (
	"context"
	"testing"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/skynet2/expense-tracker-sync/pkg/database"
	"github.com/skynet2/expense-tracker-sync/pkg/duplicatecleaner"
	"github.com/skynet2/expense-tracker-sync/pkg/repo"
)

func seed(t *testing.T, store *repo.Memory[database.Expense], items ...database.Expense) {
	t.Helper()

	for _, item := range items {
		_, err := store.Add(context.Background(), item, "")
		assert.NoError(t, err)
	}
}

func TestRemoveDuplicates_ExactDuplicateScenario(t *testing.T) {
	ctx := context.Background()
	created := time.Date(2024, 1, 10, 12, 0, 0, 0, time.UTC)
	clock := &fakeClock{now: created.Add(time.Hour)}

	store := repo.NewMemory[database.Expense](repo.SoftDelete)
	seed(t, store, lunch("older", created), lunch("newer", created.Add(2*time.Minute)))

	ledger := duplicatecleaner.NewLedger(repo.NewMemorySettings(), "user-1", clock.Now)
	cleaner := duplicatecleaner.NewCleaner(store, ledger)

	all, err := store.GetAll(ctx, "")
	assert.NoError(t, err)

	groups := duplicatecleaner.FindDuplicates(all)
	assert.Len(t, groups, 1)

	report := cleaner.RemoveDuplicates(ctx, groups, duplicatecleaner.RemoveOptions{MaxToDelete: 10})

	assert.False(t, report.DryRun)
	assert.Equal(t, 1, report.GroupsProcessed)
	assert.Equal(t, []string{"older"}, report.Deleted)
	assert.Equal(t, []string{"newer"}, report.Kept)
	assert.Empty(t, report.Failed)

	left, err := store.GetAll(ctx, "")
	assert.NoError(t, err)
	assert.Len(t, left, 1)
	assert.Equal(t, "newer", left[0].ID)

	entries, err := ledger.Entries(ctx)
	assert.NoError(t, err)
	assert.Len(t, entries, 1)
	assert.Equal(t, duplicatecleaner.ReasonAutomatic, entries["older"].Reason)
	assert.Equal(t, duplicatecleaner.Fingerprint(lunch("older", created)), entries["older"].Fingerprint)
}

func TestRemoveDuplicates_DryRunIsPure(t *testing.T) {
	ctx := context.Background()
	created := time.Date(2024, 1, 10, 12, 0, 0, 0, time.UTC)

	store := repo.NewMemory[database.Expense](repo.HardDelete)
	seed(t, store, lunch("a", created), lunch("b", created.Add(time.Minute)), lunch("c", created.Add(2*time.Minute)))

	ledger := duplicatecleaner.NewLedger(repo.NewMemorySettings(), "user-1", nil)
	cleaner := duplicatecleaner.NewCleaner(store, ledger)

	all, _ := store.GetAll(ctx, "")
	report := cleaner.RemoveDuplicates(ctx, duplicatecleaner.FindDuplicates(all), duplicatecleaner.RemoveOptions{
		DryRun: true,
		Manual: true,
	})

	assert.True(t, report.DryRun)
	assert.Len(t, report.Deleted, 2)
	assert.Equal(t, 3, store.Len())

	entries, err := ledger.Entries(ctx)
	assert.NoError(t, err)
	assert.Empty(t, entries)
}

func TestRemoveDuplicates_Cap(t *testing.T) {
	ctx := context.Background()

	var groups []duplicatecleaner.Group
	store := repo.NewMemory[database.Expense](repo.HardDelete)

	for _, id := range []string{"a", "b", "c"} {
		keep := database.Expense{ID: id + "-keep"}
		drop := database.Expense{ID: id + "-drop"}
		seed(t, store, keep, drop)

		groups = append(groups, duplicatecleaner.Group{
			Transactions: []database.Expense{keep, drop},
			ToKeep:       keep,
			ToDelete:     []database.Expense{drop},
		})
	}

	cleaner := duplicatecleaner.NewCleaner(store, duplicatecleaner.NewLedger(repo.NewMemorySettings(), "u", nil))

	report := cleaner.RemoveDuplicates(ctx, groups, duplicatecleaner.RemoveOptions{MaxToDelete: 2})
	assert.Len(t, report.Deleted, 2)
	assert.Equal(t, 1, report.Skipped)
	assert.Equal(t, 3, report.GroupsProcessed)
	assert.Equal(t, 4, store.Len())
}

func TestRemoveDuplicates_ContinueOnError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	mockDeleter := NewMockDeleter(ctrl)

	settings := repo.NewMemorySettings()
	cleaner := duplicatecleaner.NewCleaner(mockDeleter, duplicatecleaner.NewLedger(settings, "u", nil))

	keep := database.Expense{ID: "keep"}
	first := database.Expense{ID: "first"}
	second := database.Expense{ID: "second"}

	gomock.InOrder(
		mockDeleter.EXPECT().Delete(gomock.Any(), "first", "scope").Return("", errors.New("network timeout")),
		mockDeleter.EXPECT().Delete(gomock.Any(), "second", "scope").Return("second", nil),
	)

	report := cleaner.RemoveDuplicates(ctx, []duplicatecleaner.Group{{
		Transactions: []database.Expense{keep, first, second},
		ToKeep:       keep,
		ToDelete:     []database.Expense{first, second},
	}}, duplicatecleaner.RemoveOptions{Manual: true, ScopeID: "scope"})

	assert.Equal(t, []string{"second"}, report.Deleted)
	assert.Len(t, report.Failed, 1)
	assert.Equal(t, "first", report.Failed[0].ID)
	assert.Contains(t, report.Recommendations, duplicatecleaner.RecommendNetwork)
	assert.Contains(t, report.Recommendations, duplicatecleaner.RecommendRetry)

	raw, err := settings.Load(ctx, "cleaned_duplicates:u")
	assert.NoError(t, err)
	assert.Contains(t, string(raw), "manual_duplicate_cleanup")
}

func TestRemoveDuplicates_LedgerFailureReportedSeparately(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	mockDeleter := NewMockDeleter(ctrl)
	mockRepo := NewMockRepo(ctrl)

	cleaner := duplicatecleaner.NewCleaner(mockDeleter, duplicatecleaner.NewLedger(mockRepo, "u", nil))

	keep := database.Expense{ID: "keep"}
	drop := database.Expense{ID: "drop"}

	mockDeleter.EXPECT().Delete(gomock.Any(), "drop", "").Return("drop", nil)
	mockRepo.EXPECT().Load(gomock.Any(), "cleaned_duplicates:u").Return(nil, nil)
	mockRepo.EXPECT().Save(gomock.Any(), "cleaned_duplicates:u", gomock.Any()).Return(errors.New("disk full"))

	report := cleaner.RemoveDuplicates(ctx, []duplicatecleaner.Group{{
		Transactions: []database.Expense{keep, drop},
		ToKeep:       keep,
		ToDelete:     []database.Expense{drop},
	}}, duplicatecleaner.RemoveOptions{})

	assert.Equal(t, []string{"drop"}, report.Deleted)
	assert.Empty(t, report.Failed)
	assert.Len(t, report.LedgerFailures, 1)
	assert.Equal(t, "drop", report.LedgerFailures[0].ID)
	assert.ErrorContains(t, report.LedgerFailures[0].Err, "disk full")
	assert.Contains(t, report.Recommendations, duplicatecleaner.RecommendRetry)
}

func TestCheckBeforeAdd(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, 1, 12, 12, 0, 0, 0, time.UTC)
	clock := &fakeClock{now: now}

	ledger := duplicatecleaner.NewLedger(repo.NewMemorySettings(), "u", clock.Now)
	cleaner := duplicatecleaner.NewCleaner(repo.NewMemory[database.Expense](repo.SoftDelete), ledger)

	newExpense := database.Expense{
		ID:          "new",
		Amount:      decimal.NewFromInt(20),
		Description: "Taxi",
		Date:        time.Date(2024, 1, 12, 0, 0, 0, 0, time.UTC),
	}

	duplicate := newExpense
	duplicate.ID = "dup"

	suggestion := database.Expense{
		ID:     "sug",
		Amount: decimal.NewFromInt(20),
		Date:   time.Date(2024, 1, 11, 10, 0, 0, 0, time.UTC),
	}

	unrelated := database.Expense{ID: "other", Amount: decimal.NewFromInt(999), Description: "Rent"}

	recentlyDeleted := newExpense
	recentlyDeleted.ID = "recent"
	recentlyDeleted.Lifecycle = database.DeletedAt(now.Add(-24 * time.Hour))

	longDeleted := newExpense
	longDeleted.ID = "long-ago"
	longDeleted.Lifecycle = database.DeletedAt(now.Add(-10 * 24 * time.Hour))

	cleaned := newExpense
	cleaned.ID = "cleaned"
	assert.NoError(t, ledger.Track(ctx, "cleaned", duplicatecleaner.Fingerprint(cleaned), duplicatecleaner.ReasonManual))

	res, err := cleaner.CheckBeforeAdd(ctx, newExpense,
		[]database.Expense{duplicate, suggestion, unrelated, recentlyDeleted},
		[]database.Expense{recentlyDeleted, longDeleted},
	)
	assert.NoError(t, err)
	assert.True(t, res.HasDuplicates())

	assert.Len(t, res.Duplicates, 1)
	assert.Equal(t, "dup", res.Duplicates[0].ID)

	assert.Len(t, res.Suggestions, 1)
	assert.Equal(t, "sug", res.Suggestions[0].ID)
	assert.Equal(t, 55, res.Suggestions[0].Confidence)

	var recentIDs []string
	for _, c := range res.RecentlyDeleted {
		recentIDs = append(recentIDs, c.ID)
	}

	assert.ElementsMatch(t, []string{"recent", "cleaned"}, recentIDs)
}
