package common

import "github.com/cockroachdb/errors"

var (
	ErrOffline         = errors.New("operation requires network connectivity")
	ErrUnauthenticated = errors.New("operation requires a signed-in user")
	ErrValidation      = errors.New("validation failed")
	ErrSyncInProgress  = errors.New("another sync operation is in progress")
	ErrConflict        = errors.New("record already exists")
	ErrNotFound        = errors.New("record not found")
)
