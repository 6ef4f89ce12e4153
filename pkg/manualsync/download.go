package manualsync

import (
	"context"

	"github.com/rs/zerolog"
)

// DownloadFromCloud pulls remote records into the local store. Without ReplaceLocal
// existing ids are updated and missing ones inserted.
func (m *Manager) DownloadFromCloud(ctx context.Context, opts DownloadOptions) (*Result, error) {
	if err := m.begin(); err != nil {
		return nil, err
	}
	defer m.end()

	lg := zerolog.Ctx(ctx)

	if err := m.requireCloud(); err != nil {
		m.recordError(ctx, operationDownload, err)
		return nil, err
	}

	res := newResult(operationDownload)

	if opts.ReplaceLocal {
		if err := m.purgeLocal(ctx); err != nil {
			return m.abort(ctx, res, err)
		}
	}

	skip := m.skipper(ctx, opts.OverrideLedger)

	for _, ln := range m.lanes {
		if err := ln.download(ctx, m.cfg.Session.UserID, skip, res); err != nil {
			return m.abort(ctx, res, err)
		}

		st := res.stats(ln.entity())
		lg.Info().
			Str("entity", ln.entity().String()).
			Int("inserted", st.Inserted).
			Int("updated", st.Updated).
			Int("skipped", st.Skipped).
			Msg("downloaded")
	}

	if opts.OverrideLedger {
		m.releaseRestored(ctx)
	}

	m.finish(ctx, res, func() {
		m.updateStatus(ctx, func(s *Status) {
			now := m.now()
			s.LastManualSync = &now

			if opts.ReplaceLocal {
				s.HasLocalChanges = false
			}
		})
	})

	return res, nil
}

// purgeLocal removes every local record, children first.
func (m *Manager) purgeLocal(ctx context.Context) error {
	for i := len(m.lanes) - 1; i >= 0; i-- {
		if err := m.lanes[i].purgeLocal(ctx); err != nil {
			return err
		}
	}

	return nil
}
