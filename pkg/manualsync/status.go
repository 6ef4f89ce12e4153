package manualsync

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/skynet2/expense-tracker-sync/pkg/database"
)

const (
	RecommendUpload      = "You have local changes that are not in the cloud yet, upload them"
	RecommendNeverSynced = "Your data has never been synced with the cloud"
	RecommendStaleSync   = "Last sync was more than 7 days ago, consider syncing"
	RecommendStorage     = "Local storage is almost full, export a backup and clean up old records"
)

// GetDetailedStatus recounts local records, asks the storage backend for a quota
// estimate and derives recommendations.
func (m *Manager) GetDetailedStatus(ctx context.Context) (*DetailedStatus, error) {
	counts := map[database.EntityType]int{}
	total := 0

	for _, ln := range m.lanes {
		count, err := ln.countLocal(ctx)
		if err != nil {
			zerolog.Ctx(ctx).Err(err).Str("entity", ln.entity().String()).Msg("failed to count local records")
			m.recordError(ctx, operationStatus, err)

			continue
		}

		counts[ln.entity()] = count
		total += count
	}

	online := m.cfg.Connectivity != nil && m.cfg.Connectivity.IsOnline()

	m.updateStatus(ctx, func(s *Status) {
		s.LocalDataCount = counts
		s.IsOnline = online
	})

	detailed := &DetailedStatus{
		Status:          m.Status(),
		Recommendations: []string{},
	}

	if m.cfg.Quota != nil {
		estimate, err := m.cfg.Quota.EstimateQuota(ctx)
		if err != nil {
			zerolog.Ctx(ctx).Err(err).Msg("failed to estimate storage quota")
			m.recordError(ctx, operationStatus, err)
		} else {
			detailed.Storage = &estimate
		}
	}

	status := detailed.Status

	if status.HasLocalChanges {
		detailed.Recommendations = append(detailed.Recommendations, RecommendUpload)
	}

	switch {
	case status.LastManualSync == nil:
		detailed.Recommendations = append(detailed.Recommendations, RecommendNeverSynced)
	case m.now().Sub(*status.LastManualSync) > staleSyncAge:
		detailed.Recommendations = append(detailed.Recommendations, RecommendStaleSync)
	}

	if total > largeDatasetRecords {
		detailed.Recommendations = append(detailed.Recommendations,
			fmt.Sprintf("Large local dataset (%d records), regular exports are recommended", total))
	}

	if detailed.Storage != nil && detailed.Storage.UsedPercent() > storageWarnPercent {
		detailed.Recommendations = append(detailed.Recommendations, RecommendStorage)
	}

	return detailed, nil
}
