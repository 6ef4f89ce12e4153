package manualsync

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
)

// UploadToCloud pushes every local record to the remote store, parents first. Expenses
// are read including soft-deleted ones so deletions reach the cloud.
func (m *Manager) UploadToCloud(ctx context.Context) (*Result, error) {
	if err := m.begin(); err != nil {
		return nil, err
	}
	defer m.end()

	lg := zerolog.Ctx(ctx)

	if err := m.requireCloud(); err != nil {
		m.recordError(ctx, operationUpload, err)
		return nil, err
	}

	res := newResult(operationUpload)

	// The ledger guards the local store only. Whatever is active locally was kept or
	// restored by the user and must reach the cloud.
	for _, ln := range m.lanes {
		if err := ln.upload(ctx, m.cfg.Session.UserID, skipNone, res); err != nil {
			return m.abort(ctx, res, err)
		}

		st := res.stats(ln.entity())
		lg.Info().
			Str("entity", ln.entity().String()).
			Int("inserted", st.Inserted).
			Int("updated", st.Updated).
			Int("errors", st.Errors).
			Msg("uploaded")
	}

	m.finish(ctx, res, func() {
		m.updateStatus(ctx, func(s *Status) {
			now := m.now()
			s.LastManualSync = &now
			s.HasLocalChanges = false
		})
	})

	return res, nil
}

// abort ends an operation interrupted by a connectivity or auth failure. Types already
// written stay written.
func (m *Manager) abort(ctx context.Context, res *Result, err error) (*Result, error) {
	zerolog.Ctx(ctx).Err(err).Str("operation", res.Operation).Msg("operation aborted")

	res.Success = false
	res.Message = fmt.Sprintf("%s aborted: %s", res.Operation, err)

	m.recordResultErrors(ctx, res)
	m.recordError(ctx, res.Operation, err)

	return res, err
}

// finish marks the result and runs onSuccess only when no item failed.
func (m *Manager) finish(ctx context.Context, res *Result, onSuccess func()) {
	processed := 0
	for _, st := range res.Stats {
		processed += st.Processed
	}

	if errCount := res.TotalErrors(); errCount > 0 {
		res.Success = false
		res.Message = fmt.Sprintf("%s finished with %d errors out of %d records", res.Operation, errCount, processed)

		m.recordResultErrors(ctx, res)

		return
	}

	res.Success = true
	res.Message = fmt.Sprintf("%s finished: %d records", res.Operation, processed)

	if onSuccess != nil {
		onSuccess()
	}
}
