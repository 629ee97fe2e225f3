package notify

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBacklogIsBounded(t *testing.T) {
	n := New(2)
	n.Success("Banks", "one")
	n.Success("Banks", "two")
	n.Error("Banks", "banks", "http", errors.New("three"))

	all := n.Since(0)

	require.Len(t, all, 2)
	assert.Equal(t, "two", all[0].Message)
	assert.Equal(t, LevelError, all[1].Level)
	assert.Equal(t, "banks", all[1].Key)
	assert.Equal(t, uint64(3), all[1].ID)
	assert.Len(t, n.Since(2), 1)
}

func TestNilErrorIsIgnored(t *testing.T) {
	n := New(0)
	n.Error("Users", "users", "unknown", nil)

	assert.Empty(t, n.Since(0))
}

func TestSinceReturnsNewerEntriesInOrder(t *testing.T) {
	n := New(10)
	n.Success("Ads", "Images uploaded successfully!")
	first := n.Since(0)
	n.Success("Banks", "Bank details updated successfully")

	next := n.Since(first[len(first)-1].ID)

	require.Len(t, next, 1)
	assert.Equal(t, "Banks", next[0].Source)
	assert.Equal(t, LevelSuccess, next[0].Level)
	assert.False(t, next[0].CreatedAt.IsZero())
}
