package repo

import (
	"context"
	"sync"
	"time"

	"github.com/cockroachdb/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/skynet2/expense-tracker-sync/pkg/common"
)

type settingRow struct {
	Key       string `gorm:"primaryKey;size:191"`
	Value     string `gorm:"type:text"`
	UpdatedAt time.Time
}

func (settingRow) TableName() string {
	return "sync_settings"
}

// Settings is a key-value blob store next to the local documents. It holds the
// cleaned-duplicate ledger and the cached sync status.
type Settings struct {
	db *gorm.DB
}

func NewSettings(db *gorm.DB) *Settings {
	return &Settings{db: db}
}

func (s *Settings) Load(ctx context.Context, key string) ([]byte, error) {
	var row settingRow

	err := s.db.WithContext(ctx).Where("key = ?", key).First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}

	if err != nil {
		return nil, common.NewStoreError("settings", "load", err)
	}

	return []byte(row.Value), nil
}

func (s *Settings) Save(ctx context.Context, key string, value []byte) error {
	row := settingRow{
		Key:       key,
		Value:     string(value),
		UpdatedAt: time.Now().UTC(),
	}

	if err := s.db.WithContext(ctx).Clauses(clause.OnConflict{UpdateAll: true}).Create(&row).Error; err != nil {
		return common.NewStoreError("settings", "save", err)
	}

	return nil
}

type MemorySettings struct {
	mu     sync.RWMutex
	values map[string][]byte
}

func NewMemorySettings() *MemorySettings {
	return &MemorySettings{values: map[string][]byte{}}
}

func (m *MemorySettings) Load(_ context.Context, key string) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	value, ok := m.values[key]
	if !ok {
		return nil, nil
	}

	return append([]byte{}, value...), nil
}

func (m *MemorySettings) Save(_ context.Context, key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.values[key] = append([]byte{}, value...)

	return nil
}
