package printer

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/samber/lo"

	"github.com/skynet2/expense-tracker-sync/pkg/database"
	"github.com/skynet2/expense-tracker-sync/pkg/duplicatecleaner"
	"github.com/skynet2/expense-tracker-sync/pkg/manualsync"
)

const maxPrintedErrors = 10

type Printer struct {
}

func NewPrinter() *Printer {
	return &Printer{}
}

func (p *Printer) Result(
	ctx context.Context,
	res *manualsync.Result,
) string {
	var sb strings.Builder

	sb.WriteString(p.Stat(ctx, res))

	if res.Cleanup != nil {
		sb.WriteString("\n\n")
		sb.WriteString(p.Cleanup(ctx, res.Cleanup))
	}

	if len(res.Errors) > 0 {
		sb.WriteString("\n\n")
		sb.WriteString(p.Errors(ctx, res.Errors))
	}

	return sb.String()
}

func (p *Printer) Stat(
	_ context.Context,
	res *manualsync.Result,
) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Operation: %v", res.Operation))

	if res.Success {
		sb.WriteString("\nSuccess: ✅")
	} else {
		sb.WriteString("\nSuccess: ❌")
	}

	if res.Message != "" {
		sb.WriteString(fmt.Sprintf("\n%s", res.Message))
	}

	for _, entity := range sortedEntities(res.Stats) {
		st := res.Stats[entity]

		sb.WriteString(fmt.Sprintf("\n\n%v", entity))
		sb.WriteString(fmt.Sprintf("\nProcessed: %v", st.Processed))
		sb.WriteString(fmt.Sprintf("\nInserted: %v 🔥", st.Inserted))
		sb.WriteString(fmt.Sprintf("\nUpdated: %v", st.Updated))

		if st.Deleted > 0 {
			sb.WriteString(fmt.Sprintf("\nDeleted: %v 🚯", st.Deleted))
		}
		if st.Skipped > 0 {
			sb.WriteString(fmt.Sprintf("\nSkipped: %v ✨", st.Skipped))
		}
		if st.Errors > 0 {
			sb.WriteString(fmt.Sprintf("\nErrors: %v 🚒", st.Errors))
		}
		if st.Error != "" {
			sb.WriteString(fmt.Sprintf("\nERROR: %s", st.Error))
		}
	}

	if res.Success && res.TotalErrors() == 0 {
		sb.WriteString("\n\nAll records are ok! 🎉")
	}

	return sb.String()
}

func (p *Printer) Errors(
	_ context.Context,
	errs []string,
) string {
	if len(errs) == 0 {
		return "No errors."
	}

	var sb strings.Builder

	for _, err := range lo.Slice(errs, 0, maxPrintedErrors) {
		sb.WriteString(fmt.Sprintf("Error: %s\n", err))
	}

	if len(errs) > maxPrintedErrors {
		sb.WriteString(fmt.Sprintf("... and %v more\n", len(errs)-maxPrintedErrors))
	}

	return sb.String()
}

func (p *Printer) Cleanup(
	_ context.Context,
	report *duplicatecleaner.Report,
) string {
	var sb strings.Builder

	if report.DryRun {
		sb.WriteString("Dry run: nothing was deleted\n")
	}

	sb.WriteString(fmt.Sprintf("Groups processed: %v", report.GroupsProcessed))
	sb.WriteString(fmt.Sprintf("\nDeleted: %v 🚯", len(report.Deleted)))
	sb.WriteString(fmt.Sprintf("\nKept: %v", len(report.Kept)))
	sb.WriteString(fmt.Sprintf("\nSkipped: %v", report.Skipped))
	sb.WriteString(fmt.Sprintf("\nFailed: %v 🚒", len(report.Failed)))

	for _, failed := range report.Failed {
		sb.WriteString(fmt.Sprintf("\nERROR: %s", failed.Error()))
	}

	if len(report.LedgerFailures) > 0 {
		sb.WriteString(fmt.Sprintf("\nNot tracked in ledger: %v", len(report.LedgerFailures)))

		for _, failed := range report.LedgerFailures {
			sb.WriteString(fmt.Sprintf("\nERROR: %s", failed.Error()))
		}
	}

	for _, rec := range report.Recommendations {
		sb.WriteString(fmt.Sprintf("\n💡 %s", rec))
	}

	if len(report.Failed) == 0 && len(report.Deleted) == 0 && !report.DryRun {
		sb.WriteString("\n\nNo duplicates found")
	}

	return sb.String()
}

func (p *Printer) Groups(
	_ context.Context,
	groups []duplicatecleaner.Group,
) string {
	if len(groups) == 0 {
		return "No duplicates found"
	}

	var sb strings.Builder

	for i, group := range groups {
		sb.WriteString(fmt.Sprintf("Group #%v (confidence %v%%)\n", i, group.Confidence))
		sb.WriteString(fmt.Sprintf("Reasons: %s\n", strings.Join(group.Reasons, ", ")))

		p.FancyPrintExpense(group.ToKeep, "Keep: ✅", &sb)

		for _, exp := range group.ToDelete {
			p.FancyPrintExpense(exp, "Delete: ✨", &sb)
		}
	}

	return sb.String()
}

func (p *Printer) Status(
	_ context.Context,
	status *manualsync.DetailedStatus,
) string {
	var sb strings.Builder

	if status.IsOnline {
		sb.WriteString("Online: ✅")
	} else {
		sb.WriteString("Online: ❌")
	}

	if status.LastManualSync != nil {
		sb.WriteString(fmt.Sprintf("\nLast sync: %s", status.LastManualSync.Format("2006-01-02 15:04")))
	} else {
		sb.WriteString("\nLast sync: never")
	}

	if status.HasLocalChanges {
		sb.WriteString("\nLocal changes: pending upload")
	}
	if status.SyncInProgress {
		sb.WriteString("\nSync in progress ⏳")
	}

	for _, entity := range sortedEntities(status.LocalDataCount) {
		sb.WriteString(fmt.Sprintf("\n%v: %v", entity, status.LocalDataCount[entity]))
	}

	if status.Storage != nil && status.Storage.QuotaBytes > 0 {
		sb.WriteString(fmt.Sprintf("\nStorage: %v / %v bytes (%.1f%%)", status.Storage.UsageBytes, status.Storage.QuotaBytes, status.Storage.UsedPercent()))
	}

	for _, rec := range status.Recommendations {
		sb.WriteString(fmt.Sprintf("\n💡 %s", rec))
	}

	return sb.String()
}

func (p *Printer) FancyPrintExpense(exp database.Expense, header string, sb *strings.Builder) {
	sb.WriteString(header)
	sb.WriteString(fmt.Sprintf("\nID: %s", exp.ID))
	sb.WriteString(fmt.Sprintf("\nDate: %s", exp.Date.Format("2006-01-02 15:04")))
	sb.WriteString(fmt.Sprintf("\nAmount: %v", exp.Amount.StringFixed(2)))

	if exp.Description != "" {
		sb.WriteString(fmt.Sprintf("\nDescription: %s", exp.Description))
	}
	if exp.Category != "" {
		sb.WriteString(fmt.Sprintf("\nCategory: %s", exp.Category))
	}
	if exp.WalletID != "" {
		sb.WriteString(fmt.Sprintf("\nWallet: %s", exp.WalletID))
	}

	sb.WriteString("\n====================\n")
}

func sortedEntities[V any](m map[database.EntityType]V) []database.EntityType {
	keys := lo.Keys(m)
	sort.Slice(keys, func(i, j int) bool {
		return keys[i] < keys[j]
	})

	return keys
}
