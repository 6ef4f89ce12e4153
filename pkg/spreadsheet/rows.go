package spreadsheet

import (
	"github.com/samber/lo"

	"github.com/skynet2/expense-tracker-sync/pkg/database"
	"github.com/skynet2/expense-tracker-sync/pkg/manualsync"
)

func expenseRows(data *manualsync.SnapshotData) [][]interface{} {
	return lo.Map(data.Expenses, func(e database.Expense, _ int) []interface{} {
		kind := "expense"
		if e.IsIncome {
			kind = "income"
		}

		var deletedAt interface{} = ""
		if at, ok := e.Lifecycle.DeletedTime(); ok {
			deletedAt = at
		}

		return []interface{}{
			e.ID, e.Date, e.Amount, kind, e.Description, e.Category, e.WalletID, e.Tags, e.Notes, deletedAt,
		}
	})
}

func categoryRows(data *manualsync.SnapshotData) [][]interface{} {
	return lo.Map(data.Categories, func(c database.Category, _ int) []interface{} {
		return []interface{}{c.ID, c.Name, c.Color}
	})
}

func walletRows(data *manualsync.SnapshotData) [][]interface{} {
	return lo.Map(data.Wallets, func(w database.Wallet, _ int) []interface{} {
		return []interface{}{w.ID, w.Name, string(w.Type), w.Balance, w.Color}
	})
}

func tagRows(data *manualsync.SnapshotData) [][]interface{} {
	return lo.Map(data.Tags, func(t database.Tag, _ int) []interface{} {
		return []interface{}{t.ID, t.Name, t.Color}
	})
}

func budgetRows(data *manualsync.SnapshotData) [][]interface{} {
	return lo.Map(data.Budgets, func(b database.Budget, _ int) []interface{} {
		return []interface{}{b.ID, b.Name, b.CategoryID, b.Amount, string(b.Period), b.StartDate}
	})
}

func transferRows(data *manualsync.SnapshotData) [][]interface{} {
	return lo.Map(data.Transfers, func(t database.Transfer, _ int) []interface{} {
		from := lo.Ternary(t.FromWalletName != "", t.FromWalletName, t.FromWalletID)
		to := lo.Ternary(t.ToWalletName != "", t.ToWalletName, t.ToWalletID)

		return []interface{}{t.ID, t.Date, t.Amount, from, to, t.Notes}
	})
}

func recurringRows(data *manualsync.SnapshotData) [][]interface{} {
	return lo.Map(data.Recurring, func(r database.RecurringRule, _ int) []interface{} {
		return []interface{}{
			r.ID, r.Description, r.Amount, string(r.Frequency), r.StartDate, r.NextDate, r.EndDate,
		}
	})
}
