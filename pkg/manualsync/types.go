package manualsync

import (
	"time"

	"github.com/skynet2/expense-tracker-sync/pkg/common"
	"github.com/skynet2/expense-tracker-sync/pkg/database"
	"github.com/skynet2/expense-tracker-sync/pkg/duplicatecleaner"
)

const (
	SnapshotVersion    = "1.0"
	SnapshotExportType = "manual_backup"

	maxStatusErrors      = 20
	staleSyncAge         = 7 * 24 * time.Hour
	largeDatasetRecords  = 1000
	storageWarnPercent   = 80
	statusKeyPrefix      = "sync_status:"
	operationUpload      = "upload"
	operationDownload    = "download"
	operationImport      = "import"
	operationExport      = "export"
	operationCleanup     = "cleanup"
	operationRecurring   = "recurring"
	operationStatus      = "status"
	operationLocalChange = "local_change"
)

// Session identifies the signed-in user. An empty UserID means local-only use.
type Session struct {
	UserID      string
	AccessToken string
}

type Config struct {
	Session      Session
	Local        LocalStores
	Remote       RemoteStores
	Connectivity Connectivity
	ExitHook     ExitHook
	Quota        QuotaEstimator
	Settings     KeyValue
	Ledger       *duplicatecleaner.Ledger
	Clock        func() time.Time
	NewID        func() string
}

type TypeStats struct {
	Processed int    `json:"processed"`
	Inserted  int    `json:"inserted"`
	Updated   int    `json:"updated"`
	Deleted   int    `json:"deleted"`
	Skipped   int    `json:"skipped"`
	Errors    int    `json:"errors"`
	Error     string `json:"error,omitempty"`
}

type Result struct {
	Operation string                             `json:"operation"`
	Success   bool                               `json:"success"`
	Stats     map[database.EntityType]*TypeStats `json:"stats"`
	Errors    []string                           `json:"errors,omitempty"`
	Message   string                             `json:"message"`
	Cleanup   *duplicatecleaner.Report           `json:"cleanup,omitempty"`
}

func (r *Result) stats(entity database.EntityType) *TypeStats {
	st, ok := r.Stats[entity]
	if !ok {
		st = &TypeStats{}
		r.Stats[entity] = st
	}

	return st
}

func (r *Result) addItemError(entity database.EntityType, id string, err error) {
	r.stats(entity).Errors++
	r.Errors = append(r.Errors, (&common.ItemError{Entity: entity, ID: id, Err: err}).Error())
}

// TotalErrors sums item errors over every entity type.
func (r *Result) TotalErrors() int {
	total := 0
	for _, st := range r.Stats {
		total += st.Errors
		if st.Error != "" {
			total++
		}
	}

	return total
}

type StatusError struct {
	At        time.Time `json:"at"`
	Operation string    `json:"operation"`
	Message   string    `json:"message"`
}

type Status struct {
	LastManualSync  *time.Time                  `json:"lastManualSync"`
	HasLocalChanges bool                        `json:"hasLocalChanges"`
	IsOnline        bool                        `json:"isOnline"`
	SyncInProgress  bool                        `json:"syncInProgress"`
	LocalDataCount  map[database.EntityType]int `json:"localDataCount"`
	Errors          []StatusError               `json:"errors"`
}

type DetailedStatus struct {
	Status
	Storage         *common.StorageEstimate `json:"storage,omitempty"`
	Recommendations []string                `json:"recommendations"`
}

type DownloadOptions struct {
	// ReplaceLocal purges every local record before writing. It wins over MergeWithLocal.
	ReplaceLocal   bool
	MergeWithLocal bool
	OverrideLedger bool
}

type ImportOptions struct {
	ReplaceExisting bool
	OverrideLedger  bool
}

type CleanupOptions struct {
	DryRun      bool
	MaxToDelete int
	Manual      bool
	// IncludeCloud mirrors deletions to the remote store when online.
	IncludeCloud bool
	// Keep maps a group index from ScanDuplicates to the expense id that survives.
	Keep map[int]string
}

type Snapshot struct {
	Version    string           `json:"version"`
	ExportType string           `json:"exportType"`
	ExportDate time.Time        `json:"exportDate"`
	UserID     string           `json:"userId"`
	Data       *SnapshotData    `json:"data"`
	Metadata   SnapshotMetadata `json:"metadata"`
}

type SnapshotData struct {
	Expenses   []database.Expense       `json:"expenses"`
	Categories []database.Category      `json:"categories"`
	Wallets    []database.Wallet        `json:"wallets"`
	Transfers  []database.Transfer      `json:"transfers"`
	Tags       []database.Tag           `json:"tags"`
	Budgets    []database.Budget        `json:"budgets"`
	Recurring  []database.RecurringRule `json:"recurring"`
}

type SnapshotMetadata struct {
	TotalExpenses   int        `json:"totalExpenses"`
	TotalCategories int        `json:"totalCategories"`
	TotalWallets    int        `json:"totalWallets"`
	TotalTransfers  int        `json:"totalTransfers"`
	TotalTags       int        `json:"totalTags"`
	TotalBudgets    int        `json:"totalBudgets"`
	TotalRecurring  int        `json:"totalRecurring"`
	HasLocalChanges bool       `json:"hasLocalChanges"`
	LastManualSync  *time.Time `json:"lastManualSync"`
}
