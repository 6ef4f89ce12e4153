package printer_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/skynet2/expense-tracker-sync/pkg/common"
	"github.com/skynet2/expense-tracker-sync/pkg/database"
	"github.com/skynet2/expense-tracker-sync/pkg/duplicatecleaner"
	"github.com/skynet2/expense-tracker-sync/pkg/manualsync"
	"github.com/skynet2/expense-tracker-sync/pkg/printer"
)

func TestPrinter_ResultOk(t *testing.T) {
	p := printer.NewPrinter()

	res := &manualsync.Result{
		Operation: "upload",
		Success:   true,
		Message:   "Uploaded 2 records",
		Stats: map[database.EntityType]*manualsync.TypeStats{
			database.EntityExpenses:   {Processed: 2, Inserted: 1, Updated: 1},
			database.EntityCategories: {Processed: 1, Skipped: 1},
		},
	}

	out := p.Result(context.TODO(), res)

	assert.Contains(t, out, "Operation: upload")
	assert.Contains(t, out, "Success: ✅")
	assert.Contains(t, out, "Inserted: 1 🔥")
	assert.Contains(t, out, "Skipped: 1 ✨")
	assert.Contains(t, out, "All records are ok! 🎉")
	assert.NotContains(t, out, "Error:")
}

func TestPrinter_ResultWithErrors(t *testing.T) {
	p := printer.NewPrinter()

	var errs []string
	for i := 0; i < 12; i++ {
		errs = append(errs, "expenses/e: boom")
	}

	res := &manualsync.Result{
		Operation: "download",
		Success:   false,
		Stats: map[database.EntityType]*manualsync.TypeStats{
			database.EntityExpenses: {Processed: 12, Errors: 12},
			database.EntityTags:     {Error: "read failed"},
		},
		Errors: errs,
	}

	out := p.Result(context.TODO(), res)

	assert.Contains(t, out, "Success: ❌")
	assert.Contains(t, out, "Errors: 12 🚒")
	assert.Contains(t, out, "ERROR: read failed")
	assert.Contains(t, out, "... and 2 more")
	assert.NotContains(t, out, "All records are ok")
}

func TestPrinter_Errors(t *testing.T) {
	assert.Equal(t, "No errors.", printer.NewPrinter().Errors(context.TODO(), nil))
}

func TestPrinter_Cleanup(t *testing.T) {
	p := printer.NewPrinter()

	report := &duplicatecleaner.Report{
		GroupsProcessed: 2,
		Deleted:         []string{"a", "b"},
		Kept:            []string{"c", "d"},
		Failed: []common.ItemError{
			{Entity: database.EntityExpenses, ID: "x", Err: errors.New("offline")},
		},
		LedgerFailures: []common.ItemError{
			{Entity: database.EntityExpenses, ID: "b", Err: errors.New("disk full")},
		},
		Recommendations: []string{"Check connectivity"},
	}

	out := p.Cleanup(context.TODO(), report)

	assert.Contains(t, out, "Groups processed: 2")
	assert.Contains(t, out, "Deleted: 2 🚯")
	assert.Contains(t, out, "Failed: 1 🚒")
	assert.Contains(t, out, "ERROR: expenses/x: offline")
	assert.Contains(t, out, "Not tracked in ledger: 1")
	assert.Contains(t, out, "ERROR: expenses/b: disk full")
	assert.Contains(t, out, "💡 Check connectivity")
}

func TestPrinter_CleanupDryRun(t *testing.T) {
	out := printer.NewPrinter().Cleanup(context.TODO(), &duplicatecleaner.Report{DryRun: true})

	assert.Contains(t, out, "Dry run")
	assert.NotContains(t, out, "No duplicates found")
}

func TestPrinter_Groups(t *testing.T) {
	p := printer.NewPrinter()

	assert.Equal(t, "No duplicates found", p.Groups(context.TODO(), nil))

	date := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	keep := database.Expense{ID: "keep", Amount: decimal.NewFromInt(10), Description: "Lunch", Date: date}
	drop := database.Expense{ID: "drop", Amount: decimal.NewFromInt(10), Description: "Lunch", Date: date}

	out := p.Groups(context.TODO(), []duplicatecleaner.Group{
		{
			Transactions: []database.Expense{keep, drop},
			ToKeep:       keep,
			ToDelete:     []database.Expense{drop},
			Confidence:   85,
			Reasons:      []string{"same amount", "same date"},
		},
	})

	assert.Contains(t, out, "Group #0 (confidence 85%)")
	assert.Contains(t, out, "Keep: ✅\nID: keep")
	assert.Contains(t, out, "Delete: ✨\nID: drop")
	assert.Contains(t, out, "Amount: 10.00")
}

func TestPrinter_Status(t *testing.T) {
	p := printer.NewPrinter()
	last := time.Date(2024, 3, 1, 12, 30, 0, 0, time.UTC)

	out := p.Status(context.TODO(), &manualsync.DetailedStatus{
		Status: manualsync.Status{
			LastManualSync:  &last,
			HasLocalChanges: true,
			LocalDataCount: map[database.EntityType]int{
				database.EntityExpenses: 3,
			},
		},
		Storage:         &common.StorageEstimate{UsageBytes: 50, QuotaBytes: 100},
		Recommendations: []string{"Upload your changes"},
	})

	assert.Contains(t, out, "Online: ❌")
	assert.Contains(t, out, "Last sync: 2024-03-01 12:30")
	assert.Contains(t, out, "Local changes: pending upload")
	assert.Contains(t, out, "expenses: 3")
	assert.Contains(t, out, "Storage: 50 / 100 bytes (50.0%)")
	assert.Contains(t, out, "💡 Upload your changes")
}

func TestPrinter_StatusNeverSynced(t *testing.T) {
	out := printer.NewPrinter().Status(context.TODO(), &manualsync.DetailedStatus{
		Status: manualsync.Status{IsOnline: true},
	})

	assert.Contains(t, out, "Online: ✅")
	assert.Contains(t, out, "Last sync: never")
}
