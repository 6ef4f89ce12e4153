package bootstrap

import (
	"github.com/cockroachdb/errors"
	"gorm.io/gorm"

	"github.com/skynet2/expense-tracker-sync/pkg/cloudapi"
	"github.com/skynet2/expense-tracker-sync/pkg/database"
	"github.com/skynet2/expense-tracker-sync/pkg/manualsync"
	"github.com/skynet2/expense-tracker-sync/pkg/repo"
	"github.com/skynet2/expense-tracker-sync/pkg/transcoder"
)

// LocalStores keeps every entity type in the local sqlite database. Expenses are soft
// deleted so that deletions can be uploaded.
func LocalStores(db *gorm.DB) manualsync.LocalStores {
	soft := repo.DocumentOptions{Mode: repo.SoftDelete, Name: "sqlite"}
	hard := repo.DocumentOptions{Mode: repo.HardDelete, Name: "sqlite"}

	return manualsync.LocalStores{
		Expenses:   repo.NewDocuments[database.Expense](db, database.EntityExpenses, soft),
		Categories: repo.NewDocuments[database.Category](db, database.EntityCategories, hard),
		Tags:       repo.NewDocuments[database.Tag](db, database.EntityTags, hard),
		Wallets:    repo.NewDocuments[database.Wallet](db, database.EntityWallets, hard),
		Budgets:    repo.NewDocuments[database.Budget](db, database.EntityBudgets, hard),
		Transfers:  repo.NewDocuments[database.Transfer](db, database.EntityTransfers, hard),
		Recurring:  repo.NewDocuments[database.RecurringRule](db, database.EntityRecurring, hard),
	}
}

func RestStores(client *cloudapi.Client, token func() string) manualsync.RemoteStores {
	return manualsync.RemoteStores{
		Expenses:   cloudapi.NewTable[transcoder.RemoteExpense](client, database.EntityExpenses, token),
		Categories: cloudapi.NewTable[transcoder.RemoteCategory](client, database.EntityCategories, token),
		Tags:       cloudapi.NewTable[transcoder.RemoteTag](client, database.EntityTags, token),
		Wallets:    cloudapi.NewTable[transcoder.RemoteWallet](client, database.EntityWallets, token),
		Budgets:    cloudapi.NewTable[transcoder.RemoteBudget](client, database.EntityBudgets, token),
		Transfers:  cloudapi.NewTable[transcoder.RemoteTransfer](client, database.EntityTransfers, token),
		Recurring:  cloudapi.NewTable[transcoder.RemoteRecurring](client, database.EntityRecurring, token),
	}
}

// PostgresStores shares one documents table between users, so every call is scoped.
func PostgresStores(db *gorm.DB) manualsync.RemoteStores {
	opts := repo.DocumentOptions{Mode: repo.HardDelete, RequireScope: true, Name: "postgres"}

	return manualsync.RemoteStores{
		Expenses:   repo.NewDocuments[transcoder.RemoteExpense](db, database.EntityExpenses, opts),
		Categories: repo.NewDocuments[transcoder.RemoteCategory](db, database.EntityCategories, opts),
		Tags:       repo.NewDocuments[transcoder.RemoteTag](db, database.EntityTags, opts),
		Wallets:    repo.NewDocuments[transcoder.RemoteWallet](db, database.EntityWallets, opts),
		Budgets:    repo.NewDocuments[transcoder.RemoteBudget](db, database.EntityBudgets, opts),
		Transfers:  repo.NewDocuments[transcoder.RemoteTransfer](db, database.EntityTransfers, opts),
		Recurring:  repo.NewDocuments[transcoder.RemoteRecurring](db, database.EntityRecurring, opts),
	}
}

func CosmosStores(c *repo.Cosmo) (manualsync.RemoteStores, error) {
	var err error

	stores := manualsync.RemoteStores{
		Expenses:   cosmosTable[transcoder.RemoteExpense](c, database.EntityExpenses, &err),
		Categories: cosmosTable[transcoder.RemoteCategory](c, database.EntityCategories, &err),
		Tags:       cosmosTable[transcoder.RemoteTag](c, database.EntityTags, &err),
		Wallets:    cosmosTable[transcoder.RemoteWallet](c, database.EntityWallets, &err),
		Budgets:    cosmosTable[transcoder.RemoteBudget](c, database.EntityBudgets, &err),
		Transfers:  cosmosTable[transcoder.RemoteTransfer](c, database.EntityTransfers, &err),
		Recurring:  cosmosTable[transcoder.RemoteRecurring](c, database.EntityRecurring, &err),
	}

	if err != nil {
		return manualsync.RemoteStores{}, err
	}

	return stores, nil
}

func cosmosTable[T repo.ScopedRecord[T]](c *repo.Cosmo, entity database.EntityType, combined *error) *repo.CosmosTable[T] {
	table, err := repo.NewCosmosTable[T](c, entity)
	if err != nil {
		*combined = errors.CombineErrors(*combined, errors.Wrapf(err, "cosmos container %s", entity))
	}

	return table
}
