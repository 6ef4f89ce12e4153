package database

type EntityType string

const (
	EntityExpenses   = EntityType("expenses")
	EntityCategories = EntityType("categories")
	EntityTags       = EntityType("tags")
	EntityWallets    = EntityType("wallets")
	EntityBudgets    = EntityType("budgets")
	EntityTransfers  = EntityType("transfers")
	EntityRecurring  = EntityType("recurring")
)

// DependencyOrder lists entity types parents first, so referenced records exist
// before the records pointing at them.
var DependencyOrder = []EntityType{
	EntityCategories,
	EntityTags,
	EntityWallets,
	EntityBudgets,
	EntityRecurring,
	EntityTransfers,
	EntityExpenses,
}

func (e EntityType) String() string {
	return string(e)
}
