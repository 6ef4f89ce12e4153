package main

import (
	"context"

	"github.com/skynet2/expense-tracker-sync/pkg/duplicatecleaner"
	"github.com/skynet2/expense-tracker-sync/pkg/manualsync"
)

//go:generate mockgen -destination interfaces_mocks_test.go -package main -source=interfaces.go

type SyncService interface {
	UploadToCloud(ctx context.Context) (*manualsync.Result, error)
	DownloadFromCloud(ctx context.Context, opts manualsync.DownloadOptions) (*manualsync.Result, error)
	GetDetailedStatus(ctx context.Context) (*manualsync.DetailedStatus, error)
	ExportLocalData(ctx context.Context) *manualsync.Snapshot
	ImportLocalData(ctx context.Context, snap *manualsync.Snapshot, opts manualsync.ImportOptions) (*manualsync.Result, error)
	ScanDuplicates(ctx context.Context) ([]duplicatecleaner.Group, error)
	CleanupDuplicates(ctx context.Context, opts manualsync.CleanupOptions) (*manualsync.Result, error)
	MaterializeRecurring(ctx context.Context) (*manualsync.Result, error)
}

type Notifier interface {
	Notify(ctx context.Context, text string) error
}

type Exporter interface {
	ExportBytes(snapshot *manualsync.Snapshot) ([]byte, error)
}
