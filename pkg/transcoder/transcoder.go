package transcoder

import (
	"time"

	"github.com/cockroachdb/errors"

	"github.com/skynet2/expense-tracker-sync/pkg/database"
)

var (
	Expenses   = Codec[database.Expense, RemoteExpense]{database.EntityExpenses, ExpenseToRemote, ExpenseToLocal}
	Categories = Codec[database.Category, RemoteCategory]{database.EntityCategories, CategoryToRemote, CategoryToLocal}
	Tags       = Codec[database.Tag, RemoteTag]{database.EntityTags, TagToRemote, TagToLocal}
	Wallets    = Codec[database.Wallet, RemoteWallet]{database.EntityWallets, WalletToRemote, WalletToLocal}
	Budgets    = Codec[database.Budget, RemoteBudget]{database.EntityBudgets, BudgetToRemote, BudgetToLocal}
	Transfers  = Codec[database.Transfer, RemoteTransfer]{database.EntityTransfers, TransferToRemote, TransferToLocal}
	Recurring  = Codec[database.RecurringRule, RemoteRecurring]{database.EntityRecurring, RecurringToRemote, RecurringToLocal}
)

// ToRemote converts a local record of the given entity type into its remote shape.
func ToRemote(entity database.EntityType, record any) (any, error) {
	switch entity {
	case database.EntityExpenses:
		return convert(entity, record, ExpenseToRemote)
	case database.EntityCategories:
		return convert(entity, record, CategoryToRemote)
	case database.EntityTags:
		return convert(entity, record, TagToRemote)
	case database.EntityWallets:
		return convert(entity, record, WalletToRemote)
	case database.EntityBudgets:
		return convert(entity, record, BudgetToRemote)
	case database.EntityTransfers:
		return convert(entity, record, TransferToRemote)
	case database.EntityRecurring:
		return convert(entity, record, RecurringToRemote)
	default:
		return nil, errors.Newf("unknown entity type %q", entity)
	}
}

// ToLocal converts a remote record of the given entity type into its local shape.
func ToLocal(entity database.EntityType, record any) (any, error) {
	switch entity {
	case database.EntityExpenses:
		return convert(entity, record, ExpenseToLocal)
	case database.EntityCategories:
		return convert(entity, record, CategoryToLocal)
	case database.EntityTags:
		return convert(entity, record, TagToLocal)
	case database.EntityWallets:
		return convert(entity, record, WalletToLocal)
	case database.EntityBudgets:
		return convert(entity, record, BudgetToLocal)
	case database.EntityTransfers:
		return convert(entity, record, TransferToLocal)
	case database.EntityRecurring:
		return convert(entity, record, RecurringToLocal)
	default:
		return nil, errors.Newf("unknown entity type %q", entity)
	}
}

func convert[From any, To any](entity database.EntityType, record any, fn func(From) To) (any, error) {
	typed, ok := record.(From)
	if !ok {
		return nil, errors.Newf("unexpected record type %T for %s", record, entity)
	}

	return fn(typed), nil
}

func ExpenseToRemote(e database.Expense) RemoteExpense {
	return RemoteExpense{
		ID:          e.ID,
		Amount:      e.Amount,
		Description: e.Description,
		Category:    e.Category,
		WalletID:    e.WalletID,
		Date:        e.Date,
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   copyTime(e.LastModified),
		IsIncome:    e.IsIncome,
		Tags:        copyTags(e.Tags),
		Notes:       e.Notes,
		PhotoURL:    e.PhotoURL,
		DeletedAt:   e.Lifecycle.Nullable(),
	}
}

func ExpenseToLocal(r RemoteExpense) database.Expense {
	return database.Expense{
		ID:           r.ID,
		Amount:       r.Amount,
		Description:  r.Description,
		Category:     r.Category,
		WalletID:     r.WalletID,
		Date:         r.Date,
		CreatedAt:    r.CreatedAt,
		LastModified: copyTime(r.UpdatedAt),
		IsIncome:     r.IsIncome,
		Tags:         copyTags(r.Tags),
		Notes:        r.Notes,
		PhotoURL:     r.PhotoURL,
		Lifecycle:    database.LifecycleFromNullable(r.DeletedAt),
	}
}

func CategoryToRemote(c database.Category) RemoteCategory {
	return RemoteCategory{ID: c.ID, Name: c.Name, Color: c.Color}
}

func CategoryToLocal(r RemoteCategory) database.Category {
	return database.Category{ID: r.ID, Name: r.Name, Color: r.Color}
}

func TagToRemote(t database.Tag) RemoteTag {
	return RemoteTag{ID: t.ID, Name: t.Name, Color: t.Color}
}

func TagToLocal(r RemoteTag) database.Tag {
	return database.Tag{ID: r.ID, Name: r.Name, Color: r.Color}
}

func WalletToRemote(w database.Wallet) RemoteWallet {
	return RemoteWallet{
		ID:      w.ID,
		Name:    w.Name,
		Color:   w.Color,
		Balance: w.Balance,
		Type:    string(w.Type),
	}
}

func WalletToLocal(r RemoteWallet) database.Wallet {
	return database.Wallet{
		ID:      r.ID,
		Name:    r.Name,
		Color:   r.Color,
		Balance: r.Balance,
		Type:    database.WalletType(r.Type),
	}
}

func BudgetToRemote(b database.Budget) RemoteBudget {
	return RemoteBudget{
		ID:         b.ID,
		Name:       b.Name,
		CategoryID: b.CategoryID,
		Amount:     b.Amount,
		Period:     string(b.Period),
		StartDate:  b.StartDate,
		Color:      b.Color,
	}
}

func BudgetToLocal(r RemoteBudget) database.Budget {
	return database.Budget{
		ID:         r.ID,
		Name:       r.Name,
		CategoryID: r.CategoryID,
		Amount:     r.Amount,
		Period:     database.BudgetPeriod(r.Period),
		StartDate:  r.StartDate,
		Color:      r.Color,
	}
}

func TransferToRemote(t database.Transfer) RemoteTransfer {
	return RemoteTransfer{
		ID:             t.ID,
		FromWalletID:   t.FromWalletID,
		ToWalletID:     t.ToWalletID,
		FromWalletName: t.FromWalletName,
		ToWalletName:   t.ToWalletName,
		Amount:         t.Amount,
		Date:           t.Date,
		Notes:          t.Notes,
		PhotoURL:       t.PhotoURL,
		CreatedAt:      t.CreatedAt,
	}
}

func TransferToLocal(r RemoteTransfer) database.Transfer {
	return database.Transfer{
		ID:             r.ID,
		FromWalletID:   r.FromWalletID,
		ToWalletID:     r.ToWalletID,
		FromWalletName: r.FromWalletName,
		ToWalletName:   r.ToWalletName,
		Amount:         r.Amount,
		Date:           r.Date,
		Notes:          r.Notes,
		PhotoURL:       r.PhotoURL,
		CreatedAt:      r.CreatedAt,
	}
}

func RecurringToRemote(r database.RecurringRule) RemoteRecurring {
	return RemoteRecurring{
		ID:               r.ID,
		Amount:           r.Amount,
		Description:      r.Description,
		Category:         r.Category,
		WalletID:         r.WalletID,
		IsIncome:         r.IsIncome,
		Tags:             copyTags(r.Tags),
		Notes:            r.Notes,
		Frequency:        string(r.Frequency),
		StartDate:        r.StartDate,
		EndDate:          copyTime(r.EndDate),
		NextDate:         r.NextDate,
		LastMaterialized: copyTime(r.LastMaterialized),
		CreatedAt:        r.CreatedAt,
	}
}

func RecurringToLocal(r RemoteRecurring) database.RecurringRule {
	return database.RecurringRule{
		ID:               r.ID,
		Amount:           r.Amount,
		Description:      r.Description,
		Category:         r.Category,
		WalletID:         r.WalletID,
		IsIncome:         r.IsIncome,
		Tags:             copyTags(r.Tags),
		Notes:            r.Notes,
		Frequency:        database.Frequency(r.Frequency),
		StartDate:        r.StartDate,
		EndDate:          copyTime(r.EndDate),
		NextDate:         r.NextDate,
		LastMaterialized: copyTime(r.LastMaterialized),
		CreatedAt:        r.CreatedAt,
	}
}

// absent tags are an empty set, never null
func copyTags(tags []string) []string {
	return append([]string{}, tags...)
}

func copyTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}

	cp := *t

	return &cp
}
