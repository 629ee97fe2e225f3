package tasks

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type fakePruner struct {
	cutoff time.Time
	err    error
}

func (f *fakePruner) DeleteOlderThan(_ context.Context, cutoff time.Time) (int64, error) {
	f.cutoff = cutoff
	return 3, f.err
}

func TestCleanupUsesRetention(t *testing.T) {
	p := &fakePruner{}
	before := time.Now()

	CleanupOldSnapshots(context.Background(), p, 24*time.Hour)

	assert.WithinDuration(t, before.Add(-24*time.Hour), p.cutoff, time.Second)
}

func TestCleanupSurvivesErrors(t *testing.T) {
	p := &fakePruner{err: errors.New("locked")}

	assert.NotPanics(t, func() {
		CleanupOldSnapshots(context.Background(), p, time.Hour)
	})
}
