package database

import (
	"context"
	"time"

	"gorm.io/gorm"

	"ludoadmin/models"
)

type SnapshotRepository struct {
	db *gorm.DB
}

func NewSnapshotRepository(db *gorm.DB) *SnapshotRepository {
	return &SnapshotRepository{db: db}
}

func (r *SnapshotRepository) Save(ctx context.Context, snap *models.DashboardSnapshot) error {
	return r.db.WithContext(ctx).Create(snap).Error
}

// Recent returns the newest snapshots first.
func (r *SnapshotRepository) Recent(ctx context.Context, limit int) ([]models.DashboardSnapshot, error) {
	if limit <= 0 {
		limit = 50
	}
	var snaps []models.DashboardSnapshot
	err := r.db.WithContext(ctx).
		Order("taken_at DESC").
		Limit(limit).
		Find(&snaps).Error
	return snaps, err
}

// DeleteOlderThan hard-deletes snapshots taken before cutoff.
func (r *SnapshotRepository) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	result := r.db.WithContext(ctx).Unscoped().
		Where("taken_at < ?", cutoff).
		Delete(&models.DashboardSnapshot{})
	return result.RowsAffected, result.Error
}
