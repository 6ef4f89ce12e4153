package duplicatecleaner

import (
	"context"
)

//go:generate mockgen -destination interfaces_mocks_test.go -package duplicatecleaner_test -source=interfaces.go

// Repo is the key-value blob store holding the cleaned duplicate ledger.
type Repo interface {
	Load(ctx context.Context, key string) ([]byte, error)
	Save(ctx context.Context, key string, value []byte) error
}

type Deleter interface {
	Delete(ctx context.Context, id string, scopeID string) (string, error)
}
