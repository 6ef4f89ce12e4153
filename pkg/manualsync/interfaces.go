package manualsync

import (
	"context"

	"github.com/skynet2/expense-tracker-sync/pkg/common"
)

//go:generate mockgen -destination interfaces_mocks_test.go -package manualsync_test -source=interfaces.go

type Connectivity interface {
	IsOnline() bool
}

// ExitHook lets the manager warn the host before it shuts down mid-sync. The guard
// returns true while leaving would interrupt an operation. The returned func
// unregisters the guard.
type ExitHook interface {
	OnExitAttempt(guard func() bool) func()
}

type QuotaEstimator interface {
	EstimateQuota(ctx context.Context) (common.StorageEstimate, error)
}

type KeyValue interface {
	Load(ctx context.Context, key string) ([]byte, error)
	Save(ctx context.Context, key string, value []byte) error
}
