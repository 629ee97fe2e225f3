package tasks

import (
	"context"
	"log"
	"time"
)

type SnapshotPruner interface {
	DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error)
}

// CleanupOldSnapshots drops dashboard snapshots older than retention.
func CleanupOldSnapshots(ctx context.Context, repo SnapshotPruner, retention time.Duration) {
	cutoff := time.Now().Add(-retention)
	deleted, err := repo.DeleteOlderThan(ctx, cutoff)
	if err != nil {
		log.Println("❌ Failed to delete old snapshots:", err)
		return
	}
	log.Printf("✅ Deleted %d snapshots older than %s\n", deleted, retention)
}

// StartSnapshotCleanup runs CleanupOldSnapshots hourly until ctx is cancelled.
func StartSnapshotCleanup(ctx context.Context, repo SnapshotPruner, retention time.Duration) {
	ticker := time.NewTicker(time.Hour)
	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				CleanupOldSnapshots(ctx, repo, retention)
			}
		}
	}()
}
