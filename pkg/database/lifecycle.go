package database

import (
	"encoding/json"
	"time"
)

// Lifecycle is either active or deleted at a point in time. The zero value is active.
type Lifecycle struct {
	deletedAt *time.Time
}

func Active() Lifecycle {
	return Lifecycle{}
}

func DeletedAt(at time.Time) Lifecycle {
	at = at.UTC()

	return Lifecycle{deletedAt: &at}
}

// LifecycleFromNullable converts the nullable column representation used by stores.
func LifecycleFromNullable(at *time.Time) Lifecycle {
	if at == nil {
		return Active()
	}

	return DeletedAt(*at)
}

func (l Lifecycle) IsDeleted() bool {
	return l.deletedAt != nil
}

func (l Lifecycle) DeletedTime() (time.Time, bool) {
	if l.deletedAt == nil {
		return time.Time{}, false
	}

	return *l.deletedAt, true
}

// Nullable returns the store boundary representation.
func (l Lifecycle) Nullable() *time.Time {
	if l.deletedAt == nil {
		return nil
	}

	at := *l.deletedAt

	return &at
}

func (l Lifecycle) Equal(other Lifecycle) bool {
	if l.deletedAt == nil || other.deletedAt == nil {
		return l.deletedAt == nil && other.deletedAt == nil
	}

	return l.deletedAt.Equal(*other.deletedAt)
}

func (l Lifecycle) MarshalJSON() ([]byte, error) {
	return json.Marshal(l.deletedAt)
}

func (l *Lifecycle) UnmarshalJSON(data []byte) error {
	var at *time.Time
	if err := json.Unmarshal(data, &at); err != nil {
		return err
	}

	*l = LifecycleFromNullable(at)

	return nil
}
