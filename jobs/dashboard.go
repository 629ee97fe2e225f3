package jobs

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"gorm.io/datatypes"

	"ludoadmin/models"
	"ludoadmin/stores"
)

const DefaultRefreshInterval = 30 * time.Second

// SnapshotSaver records one computed dashboard snapshot.
type SnapshotSaver interface {
	Save(ctx context.Context, snap *models.DashboardSnapshot) error
}

// StartDashboardRefresher reloads the dashboard on every tick until ctx is
// cancelled. When saver is non-nil each successful refresh is recorded.
func StartDashboardRefresher(ctx context.Context, admin *stores.AdminStore, saver SnapshotSaver, interval time.Duration) <-chan struct{} {
	if interval <= 0 {
		interval = DefaultRefreshInterval
	}
	done := make(chan struct{})
	ticker := time.NewTicker(interval)
	go func() {
		defer close(done)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				log.Println("🟡 [Refresher] stopped")
				return
			case <-ticker.C:
				if err := RefreshDashboard(ctx, admin, saver); err != nil {
					log.Printf("❌ [Refresher] %v", err)
				}
			}
		}
	}()
	return done
}

// RefreshDashboard runs one refresh and stores the resulting stats.
func RefreshDashboard(ctx context.Context, admin *stores.AdminStore, saver SnapshotSaver) error {
	if err := admin.Initialize(ctx); err != nil {
		return err
	}
	if saver == nil {
		return nil
	}
	stats, ok := admin.Stats()
	if !ok {
		return nil
	}
	raw, err := json.Marshal(stats)
	if err != nil {
		return err
	}
	snap := &models.DashboardSnapshot{
		TakenAt: admin.LastUpdated(),
		Stats:   datatypes.JSON(raw),
	}
	if err := saver.Save(ctx, snap); err != nil {
		return err
	}
	log.Printf("✅ [Refresher] snapshot %s saved", snap.BatchID)
	return nil
}
