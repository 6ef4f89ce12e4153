package common

import (
	"encoding/json"
	"fmt"

	"github.com/cockroachdb/errors"

	"github.com/skynet2/expense-tracker-sync/pkg/database"
)

// StoreError is an underlying read or write failure of a record store.
type StoreError struct {
	Store string
	Op    string
	Err   error
}

func NewStoreError(store string, op string, err error) *StoreError {
	return &StoreError{
		Store: store,
		Op:    op,
		Err:   err,
	}
}

func (s *StoreError) Error() string {
	return fmt.Sprintf("%s store %s: %v", s.Store, s.Op, s.Err)
}

func (s *StoreError) Unwrap() error {
	return s.Err
}

// ItemError is a single record failure inside a batch. It is collected, never returned
// as the operation error.
type ItemError struct {
	Entity database.EntityType
	ID     string
	Err    error
}

type itemErrorJSON struct {
	Entity  database.EntityType `json:"entity"`
	ID      string              `json:"id"`
	Message string              `json:"message"`
}

func (i ItemError) MarshalJSON() ([]byte, error) {
	out := itemErrorJSON{
		Entity: i.Entity,
		ID:     i.ID,
	}

	if i.Err != nil {
		out.Message = i.Err.Error()
	}

	return json.Marshal(out)
}

// UnmarshalJSON restores the message as a plain error; the original chain is not kept.
func (i *ItemError) UnmarshalJSON(data []byte) error {
	var in itemErrorJSON
	if err := json.Unmarshal(data, &in); err != nil {
		return errors.WithStack(err)
	}

	i.Entity = in.Entity
	i.ID = in.ID
	i.Err = nil

	if in.Message != "" {
		i.Err = errors.New(in.Message)
	}

	return nil
}

func (i *ItemError) Error() string {
	return fmt.Sprintf("%s/%s: %v", i.Entity, i.ID, i.Err)
}

func (i *ItemError) Unwrap() error {
	return i.Err
}

// StorageEstimate is the storage backend's view of used and available space.
type StorageEstimate struct {
	UsageBytes int64 `json:"usageBytes"`
	QuotaBytes int64 `json:"quotaBytes"`
}

func (s StorageEstimate) UsedPercent() float64 {
	if s.QuotaBytes <= 0 {
		return 0
	}

	return float64(s.UsageBytes) / float64(s.QuotaBytes) * 100
}
