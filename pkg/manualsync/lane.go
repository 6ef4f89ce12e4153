package manualsync

import (
	"context"

	"github.com/cockroachdb/errors"
	"github.com/rs/zerolog"

	"github.com/skynet2/expense-tracker-sync/pkg/common"
	"github.com/skynet2/expense-tracker-sync/pkg/database"
	"github.com/skynet2/expense-tracker-sync/pkg/transcoder"
)

type record interface {
	RecordID() string
}

type lifecycleHolder interface {
	GetLifecycle() database.Lifecycle
}

func isDeleted(rec any) bool {
	if h, ok := rec.(lifecycleHolder); ok {
		return h.GetLifecycle().IsDeleted()
	}

	return false
}

// skipFunc reports records that must not be written as active, see the duplicate ledger.
type skipFunc func(entity database.EntityType, id string, deleted bool) bool

// lane moves one entity type between the local and the remote store.
type lane interface {
	entity() database.EntityType
	upload(ctx context.Context, scopeID string, skip skipFunc, res *Result) error
	download(ctx context.Context, scopeID string, skip skipFunc, res *Result) error
	purgeLocal(ctx context.Context) error
	countLocal(ctx context.Context) (int, error)
}

type entityLane[L record, R record] struct {
	codec   transcoder.Codec[L, R]
	local   LocalStore[L]
	readAll func(ctx context.Context) ([]L, error)
	remote  Store[R]
}

func newLane[L record, R record](
	codec transcoder.Codec[L, R],
	local LocalStore[L],
	remote Store[R],
) *entityLane[L, R] {
	return &entityLane[L, R]{
		codec:  codec,
		local:  local,
		remote: remote,
		readAll: func(ctx context.Context) ([]L, error) {
			return local.GetAll(ctx, "")
		},
	}
}

func (l *entityLane[L, R]) entity() database.EntityType {
	return l.codec.Entity
}

func (l *entityLane[L, R]) upload(ctx context.Context, scopeID string, skip skipFunc, res *Result) error {
	st := res.stats(l.entity())

	if l.remote == nil {
		st.Error = "remote store is not configured"
		return nil
	}

	items, err := l.readAll(ctx)
	if err != nil {
		return l.typeFailure(ctx, st, "read local", err)
	}

	for _, item := range items {
		st.Processed++

		if skip(l.entity(), item.RecordID(), isDeleted(item)) {
			st.Skipped++
			continue
		}

		inserted, itemErr := upsert(ctx, l.remote, l.codec.ToRemote(item), scopeID)
		if itemErr != nil {
			res.addItemError(l.entity(), item.RecordID(), itemErr)

			if fatal(itemErr) {
				return itemErr
			}

			continue
		}

		if inserted {
			st.Inserted++
		} else {
			st.Updated++
		}
	}

	return nil
}

func (l *entityLane[L, R]) download(ctx context.Context, scopeID string, skip skipFunc, res *Result) error {
	st := res.stats(l.entity())

	if l.remote == nil {
		st.Error = "remote store is not configured"
		return nil
	}

	items, err := l.remote.GetAll(ctx, scopeID)
	if err != nil {
		return l.typeFailure(ctx, st, "read remote", err)
	}

	for _, remoteItem := range items {
		st.Processed++

		item := l.codec.ToLocal(remoteItem)

		if skip(l.entity(), item.RecordID(), isDeleted(item)) {
			st.Skipped++
			continue
		}

		inserted, itemErr := merge(ctx, l.local, item)
		if itemErr != nil {
			res.addItemError(l.entity(), item.RecordID(), itemErr)
			continue
		}

		if inserted {
			st.Inserted++
		} else {
			st.Updated++
		}
	}

	return nil
}

func (l *entityLane[L, R]) purgeLocal(ctx context.Context) error {
	return l.local.Purge(ctx, "")
}

func (l *entityLane[L, R]) countLocal(ctx context.Context) (int, error) {
	items, err := l.local.GetAll(ctx, "")
	if err != nil {
		return 0, err
	}

	return len(items), nil
}

// typeFailure aborts the current type. Offline and auth failures abort the operation.
func (l *entityLane[L, R]) typeFailure(ctx context.Context, st *TypeStats, op string, err error) error {
	zerolog.Ctx(ctx).Err(err).Str("entity", l.entity().String()).Msgf("failed to %s", op)

	st.Error = errors.Wrap(err, op).Error()

	if fatal(err) {
		return err
	}

	return nil
}

// upsert adds the record and falls back to an update when the id already exists.
func upsert[T record](ctx context.Context, store Store[T], item T, scopeID string) (bool, error) {
	_, err := store.Add(ctx, item, scopeID)
	if err == nil {
		return true, nil
	}

	if !errors.Is(err, common.ErrConflict) {
		return false, err
	}

	if _, err = store.Update(ctx, item, scopeID); err != nil {
		return false, err
	}

	return false, nil
}

// merge updates the local record when the id exists and inserts it otherwise.
func merge[T record](ctx context.Context, store LocalStore[T], item T) (bool, error) {
	existing, err := store.GetByID(ctx, item.RecordID(), "")
	if err != nil {
		return false, err
	}

	if existing == nil {
		return upsert[T](ctx, store, item, "")
	}

	if _, err = store.Update(ctx, item, ""); err != nil {
		return false, err
	}

	return false, nil
}

func fatal(err error) bool {
	return errors.Is(err, common.ErrOffline) || errors.Is(err, common.ErrUnauthenticated)
}
