package repo

import (
	"context"

	"gorm.io/gorm"

	"github.com/skynet2/expense-tracker-sync/pkg/common"
)

// SQLiteQuota estimates local storage usage from sqlite page accounting.
type SQLiteQuota struct {
	db         *gorm.DB
	quotaBytes int64
}

func NewSQLiteQuota(db *gorm.DB, quotaBytes int64) *SQLiteQuota {
	return &SQLiteQuota{
		db:         db,
		quotaBytes: quotaBytes,
	}
}

func (s *SQLiteQuota) EstimateQuota(ctx context.Context) (common.StorageEstimate, error) {
	var pageCount, pageSize int64

	if err := s.db.WithContext(ctx).Raw("PRAGMA page_count").Scan(&pageCount).Error; err != nil {
		return common.StorageEstimate{}, common.NewStoreError("sqlite", "page_count", err)
	}

	if err := s.db.WithContext(ctx).Raw("PRAGMA page_size").Scan(&pageSize).Error; err != nil {
		return common.StorageEstimate{}, common.NewStoreError("sqlite", "page_size", err)
	}

	return common.StorageEstimate{
		UsageBytes: pageCount * pageSize,
		QuotaBytes: s.quotaBytes,
	}, nil
}
