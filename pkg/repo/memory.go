package repo

import (
	"context"
	"sync"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/samber/lo"

	"github.com/skynet2/expense-tracker-sync/pkg/common"
	"github.com/skynet2/expense-tracker-sync/pkg/database"
)

// Memory is an in-process record store. It ignores scope ids and keeps insertion order.
type Memory[T Record] struct {
	mu      sync.RWMutex
	mode    DeleteMode
	items   map[string]T
	order   []string
	deleted map[string]time.Time
	clock   func() time.Time
}

func NewMemory[T Record](mode DeleteMode) *Memory[T] {
	return &Memory[T]{
		mode:    mode,
		items:   map[string]T{},
		deleted: map[string]time.Time{},
		clock:   time.Now,
	}
}

func (m *Memory[T]) GetAll(_ context.Context, _ string) ([]T, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return lo.FilterMap(m.order, func(id string, _ int) (T, bool) {
		if _, isDeleted := m.deleted[id]; isDeleted {
			var empty T
			return empty, false
		}

		return m.read(id), true
	}), nil
}

func (m *Memory[T]) GetAllIncludingDeleted(_ context.Context, _ string) ([]T, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return lo.Map(m.order, func(id string, _ int) T {
		return m.read(id)
	}), nil
}

func (m *Memory[T]) GetByID(_ context.Context, id string, _ string) (*T, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if _, ok := m.items[id]; !ok {
		return nil, nil
	}

	rec := m.read(id)

	return &rec, nil
}

func (m *Memory[T]) Add(_ context.Context, record T, _ string) (T, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	id := record.RecordID()
	if id == "" {
		return record, errors.New("record id is required")
	}

	if _, ok := m.items[id]; ok {
		return record, errors.Wrapf(common.ErrConflict, "id %s", id)
	}

	m.items[id] = record
	m.order = append(m.order, id)
	m.syncLifecycle(id, record)

	return m.read(id), nil
}

func (m *Memory[T]) Update(_ context.Context, record T, _ string) (T, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	id := record.RecordID()
	if _, ok := m.items[id]; !ok {
		return record, errors.Wrapf(common.ErrNotFound, "id %s", id)
	}

	m.items[id] = record
	m.syncLifecycle(id, record)

	return m.read(id), nil
}

func (m *Memory[T]) Delete(_ context.Context, id string, _ string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.items[id]; !ok {
		return id, errors.Wrapf(common.ErrNotFound, "id %s", id)
	}

	if m.mode == SoftDelete {
		if _, already := m.deleted[id]; !already {
			m.deleted[id] = m.clock().UTC()
		}

		return id, nil
	}

	delete(m.items, id)
	m.order = lo.Without(m.order, id)

	return id, nil
}

func (m *Memory[T]) Purge(_ context.Context, _ string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.items = map[string]T{}
	m.deleted = map[string]time.Time{}
	m.order = nil

	return nil
}

// Len counts every stored record, deleted ones included.
func (m *Memory[T]) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return len(m.items)
}

func (m *Memory[T]) syncLifecycle(id string, record T) {
	if m.mode != SoftDelete {
		return
	}

	if at, ok := lifecycleOf(record).DeletedTime(); ok {
		m.deleted[id] = at
		return
	}

	delete(m.deleted, id)
}

func (m *Memory[T]) read(id string) T {
	rec := m.items[id]

	if m.mode != SoftDelete {
		return rec
	}

	if at, ok := m.deleted[id]; ok {
		return withLifecycle(rec, database.DeletedAt(at))
	}

	return withLifecycle(rec, database.Active())
}
