package duplicatecleaner

import (
	"time"

	"github.com/skynet2/expense-tracker-sync/pkg/common"
	"github.com/skynet2/expense-tracker-sync/pkg/database"
)

const (
	DuplicateThreshold  = 65
	SuggestionThreshold = 40
	DefaultMaxToDelete  = 100
	RetentionWindow     = 7 * 24 * time.Hour
)

type Result struct {
	IsDuplicate bool
	Confidence  int
	Reasons     []string
}

type Group struct {
	Transactions []database.Expense `json:"transactions"`
	ToKeep       database.Expense   `json:"toKeep"`
	ToDelete     []database.Expense `json:"toDelete"`
	Confidence   int                `json:"confidence"`
	Reasons      []string           `json:"reasons"`
}

type RemoveOptions struct {
	DryRun      bool
	MaxToDelete int
	Manual      bool
	ScopeID     string
}

// Report describes a cleanup run. Failed lists deletes that did not happen. LedgerFailures
// lists deleted records whose ledger entry could not be written; those ids are in Deleted.
type Report struct {
	DryRun          bool               `json:"dryRun"`
	GroupsProcessed int                `json:"groupsProcessed"`
	Deleted         []string           `json:"deleted"`
	Failed          []common.ItemError `json:"failed"`
	LedgerFailures  []common.ItemError `json:"ledgerFailures"`
	Skipped         int                `json:"skipped"`
	Kept            []string           `json:"kept"`
	Recommendations []string           `json:"recommendations"`
}

type Candidate struct {
	ID         string
	Expense    *database.Expense
	Confidence int
	Reasons    []string
}

type CheckResult struct {
	Duplicates      []Candidate
	Suggestions     []Candidate
	RecentlyDeleted []Candidate
}

func (c CheckResult) HasDuplicates() bool {
	return len(c.Duplicates) > 0 || len(c.RecentlyDeleted) > 0
}

type CleanupReason string

const (
	ReasonAutomatic = CleanupReason("automatic_duplicate_cleanup")
	ReasonManual    = CleanupReason("manual_duplicate_cleanup")
)

type LedgerEntry struct {
	CleanedAt   time.Time     `json:"cleanedAt"`
	Reason      CleanupReason `json:"reason"`
	Fingerprint string        `json:"fingerprint"`
}
