package repo

import (
	"context"
	"encoding/json"
	"time"

	"github.com/cockroachdb/errors"
	"gorm.io/gorm"

	"github.com/skynet2/expense-tracker-sync/pkg/common"
	"github.com/skynet2/expense-tracker-sync/pkg/database"
)

type documentRow struct {
	Entity    string `gorm:"primaryKey;size:32"`
	ID        string `gorm:"primaryKey;size:128"`
	ScopeID   string `gorm:"index;size:128"`
	Payload   string `gorm:"type:text"`
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

func (documentRow) TableName() string {
	return "sync_documents"
}

type DocumentOptions struct {
	Mode DeleteMode
	// RequireScope makes every call filter by scope id, used when the table is shared
	// between users.
	RequireScope bool
	Name         string
}

// Documents stores records of one entity type as JSON payloads in a shared gorm table.
// Sqlite backs the local store, postgres the remote one.
type Documents[T Record] struct {
	db     *gorm.DB
	entity database.EntityType
	opts   DocumentOptions
}

func NewDocuments[T Record](
	db *gorm.DB,
	entity database.EntityType,
	opts DocumentOptions,
) *Documents[T] {
	if opts.Name == "" {
		opts.Name = "documents"
	}

	return &Documents[T]{
		db:     db,
		entity: entity,
		opts:   opts,
	}
}

func (d *Documents[T]) GetAll(ctx context.Context, scopeID string) ([]T, error) {
	q, err := d.query(ctx, scopeID)
	if err != nil {
		return nil, err
	}

	return d.find(q, "get_all")
}

func (d *Documents[T]) GetAllIncludingDeleted(ctx context.Context, scopeID string) ([]T, error) {
	q, err := d.query(ctx, scopeID)
	if err != nil {
		return nil, err
	}

	return d.find(q.Unscoped(), "get_all_including_deleted")
}

func (d *Documents[T]) GetByID(ctx context.Context, id string, scopeID string) (*T, error) {
	q, err := d.query(ctx, scopeID)
	if err != nil {
		return nil, err
	}

	records, err := d.find(q.Unscoped().Where("id = ?", id).Limit(1), "get_by_id")
	if err != nil {
		return nil, err
	}

	if len(records) == 0 {
		return nil, nil
	}

	return &records[0], nil
}

func (d *Documents[T]) Add(ctx context.Context, record T, scopeID string) (T, error) {
	row, err := d.toRow(record, scopeID)
	if err != nil {
		return record, err
	}

	err = d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing int64
		if err := tx.Unscoped().Model(&documentRow{}).
			Where("entity = ? AND id = ?", row.Entity, row.ID).
			Count(&existing).Error; err != nil {
			return err
		}

		if existing > 0 {
			return errors.Wrapf(common.ErrConflict, "id %s", row.ID)
		}

		return tx.Create(row).Error
	})
	if err != nil {
		if errors.Is(err, common.ErrConflict) {
			return record, err
		}

		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return record, errors.Wrapf(common.ErrConflict, "id %s", row.ID)
		}

		return record, common.NewStoreError(d.opts.Name, "add", err)
	}

	return record, nil
}

func (d *Documents[T]) Update(ctx context.Context, record T, scopeID string) (T, error) {
	row, err := d.toRow(record, scopeID)
	if err != nil {
		return record, err
	}

	q, err := d.query(ctx, scopeID)
	if err != nil {
		return record, err
	}

	values := map[string]interface{}{
		"payload":    row.Payload,
		"updated_at": time.Now().UTC(),
	}
	if d.opts.Mode == SoftDelete {
		values["deleted_at"] = row.DeletedAt
	}

	res := q.Unscoped().Model(&documentRow{}).Where("id = ?", row.ID).Updates(values)
	if res.Error != nil {
		return record, common.NewStoreError(d.opts.Name, "update", res.Error)
	}

	if res.RowsAffected == 0 {
		return record, errors.Wrapf(common.ErrNotFound, "id %s", row.ID)
	}

	return record, nil
}

func (d *Documents[T]) Delete(ctx context.Context, id string, scopeID string) (string, error) {
	q, err := d.query(ctx, scopeID)
	if err != nil {
		return id, err
	}

	if d.opts.Mode == HardDelete {
		q = q.Unscoped()
	}

	res := q.Where("id = ?", id).Delete(&documentRow{})
	if res.Error != nil {
		return id, common.NewStoreError(d.opts.Name, "delete", res.Error)
	}

	if res.RowsAffected > 0 {
		return id, nil
	}

	// soft deleting an already deleted record is a no-op
	existing, err := d.GetByID(ctx, id, scopeID)
	if err != nil {
		return id, err
	}

	if existing == nil {
		return id, errors.Wrapf(common.ErrNotFound, "id %s", id)
	}

	return id, nil
}

// Purge hard deletes every record of the entity type, soft-deleted ones included.
func (d *Documents[T]) Purge(ctx context.Context, scopeID string) error {
	q, err := d.query(ctx, scopeID)
	if err != nil {
		return err
	}

	if err = q.Unscoped().Delete(&documentRow{}).Error; err != nil {
		return common.NewStoreError(d.opts.Name, "purge", err)
	}

	return nil
}

func (d *Documents[T]) query(ctx context.Context, scopeID string) (*gorm.DB, error) {
	q := d.db.WithContext(ctx).Model(&documentRow{}).Where("entity = ?", string(d.entity))

	if d.opts.RequireScope {
		if scopeID == "" {
			return nil, errors.Wrap(common.ErrUnauthenticated, "scope id is required")
		}

		q = q.Where("scope_id = ?", scopeID)
	}

	return q, nil
}

func (d *Documents[T]) find(q *gorm.DB, op string) ([]T, error) {
	var rows []documentRow
	if err := q.Order("created_at asc").Order("id asc").Find(&rows).Error; err != nil {
		return nil, common.NewStoreError(d.opts.Name, op, err)
	}

	records := make([]T, 0, len(rows))
	for _, row := range rows {
		var rec T
		if err := json.Unmarshal([]byte(row.Payload), &rec); err != nil {
			return nil, common.NewStoreError(d.opts.Name, op,
				errors.Wrapf(err, "decode %s/%s", row.Entity, row.ID))
		}

		if d.opts.Mode == SoftDelete {
			if row.DeletedAt.Valid {
				rec = withLifecycle(rec, database.DeletedAt(row.DeletedAt.Time))
			} else {
				rec = withLifecycle(rec, database.Active())
			}
		}

		records = append(records, rec)
	}

	return records, nil
}

func (d *Documents[T]) toRow(record T, scopeID string) (*documentRow, error) {
	if record.RecordID() == "" {
		return nil, errors.New("record id is required")
	}

	if d.opts.RequireScope && scopeID == "" {
		return nil, errors.Wrap(common.ErrUnauthenticated, "scope id is required")
	}

	payload, err := json.Marshal(record)
	if err != nil {
		return nil, errors.Wrapf(err, "encode %s/%s", d.entity, record.RecordID())
	}

	row := &documentRow{
		Entity:  string(d.entity),
		ID:      record.RecordID(),
		ScopeID: scopeID,
		Payload: string(payload),
	}

	if d.opts.Mode == SoftDelete {
		if at, ok := lifecycleOf(record).DeletedTime(); ok {
			row.DeletedAt = gorm.DeletedAt{Time: at, Valid: true}
		}
	}

	return row, nil
}
