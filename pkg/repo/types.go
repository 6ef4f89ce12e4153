package repo

import (
	"github.com/skynet2/expense-tracker-sync/pkg/database"
)

type Record interface {
	RecordID() string
}

// ScopedRecord is a remote record that carries its owner scope inside the document.
type ScopedRecord[T any] interface {
	Record
	WithScope(scopeID string) T
}

type DeleteMode int

const (
	// SoftDelete keeps deleted records readable through GetAllIncludingDeleted.
	SoftDelete = DeleteMode(0)
	HardDelete = DeleteMode(1)
)

type lifecycleHolder interface {
	GetLifecycle() database.Lifecycle
}

type lifecycleSetter interface {
	SetLifecycle(l database.Lifecycle)
}

func lifecycleOf[T any](rec T) database.Lifecycle {
	if h, ok := any(rec).(lifecycleHolder); ok {
		return h.GetLifecycle()
	}

	return database.Active()
}

func withLifecycle[T any](rec T, l database.Lifecycle) T {
	if s, ok := any(&rec).(lifecycleSetter); ok {
		s.SetLifecycle(l)
	}

	return rec
}
