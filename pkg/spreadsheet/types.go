package spreadsheet

const (
	SheetExpenses   = "Expenses"
	SheetCategories = "Categories"
	SheetWallets    = "Wallets"
	SheetTags       = "Tags"
	SheetBudgets    = "Budgets"
	SheetTransfers  = "Transfers"
	SheetRecurring  = "Recurring"
	SheetSummary    = "Summary"

	dateLayout     = "2006-01-02"
	dateTimeLayout = "2006-01-02 15:04"
)

var (
	expenseHeader   = []string{"ID", "Date", "Amount", "Type", "Description", "Category", "Wallet", "Tags", "Notes", "Deleted At"}
	categoryHeader  = []string{"ID", "Name", "Color"}
	walletHeader    = []string{"ID", "Name", "Type", "Balance", "Color"}
	tagHeader       = []string{"ID", "Name", "Color"}
	budgetHeader    = []string{"ID", "Name", "Category", "Amount", "Period", "Start Date"}
	transferHeader  = []string{"ID", "Date", "Amount", "From", "To", "Notes"}
	recurringHeader = []string{"ID", "Description", "Amount", "Frequency", "Start Date", "Next Date", "End Date"}
)
