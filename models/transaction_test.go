package models

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestClientKindIsTotal(t *testing.T) {
	cases := map[string]string{
		"DEPOSIT":       KindDeposit,
		"WITHDRAW":      KindWithdrawal,
		"GAME_STAKE":    KindWithdrawal,
		"GAME_WINNINGS": KindDeposit,
		"withdrawal":    KindWithdrawal,
		"BONUS":         KindDeposit,
		"":              KindDeposit,
	}
	for in, want := range cases {
		got := ClientKind(in)
		assert.Equal(t, want, got, in)
		assert.Contains(t, []string{KindDeposit, KindWithdrawal}, got)
	}
}

func TestNormalizeFillsDefaults(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	tx := Transaction{ID: "t1", Type: "GAME_STAKE", Amount: decimal.NewFromInt(20), User: UserRef{ID: "u1"}}

	n := tx.Normalize(now)

	assert.Equal(t, "GAME_STAKE", n.OriginalType)
	assert.Equal(t, KindWithdrawal, n.Type)
	assert.Equal(t, "pending", n.Status)
	assert.Equal(t, "Unknown User", n.Username)
	assert.Equal(t, "u1", n.UserID)
	assert.Equal(t, "t1", n.Reference)
	assert.Equal(t, "N/A", n.Method)
	assert.Equal(t, now, n.CreatedAt)
	assert.Equal(t, now, n.UpdatedAt)
}

func TestNormalizeKeepsBackendValues(t *testing.T) {
	created := time.Date(2026, 2, 1, 8, 0, 0, 0, time.UTC)
	tx := Transaction{
		ID:          "t2",
		Type:        "DEPOSIT",
		Status:      "COMPLETED",
		User:        UserRef{ID: "u1", Username: "kebede"},
		Description: "telebirr top up",
		Method:      "telebirr",
		Reference:   "REF-9",
		CreatedAt:   created,
	}

	n := tx.Normalize(time.Now())

	assert.Equal(t, "completed", n.Status)
	assert.Equal(t, "kebede", n.Username)
	assert.Equal(t, "telebirr top up", n.Notes)
	assert.Equal(t, "telebirr", n.Method)
	assert.Equal(t, "REF-9", n.Reference)
	assert.Equal(t, created, n.CreatedAt)
}

func TestNormalizeWithdrawal(t *testing.T) {
	tx := Transaction{ID: "w1", Type: "WITHDRAW", Status: "PENDING", WithdrawalMethod: "CBE", AccountDetails: "1000123"}

	n := tx.NormalizeWithdrawal(time.Now())

	assert.Equal(t, KindWithdrawal, n.Type)
	assert.Equal(t, "pending", n.Status)
	assert.Equal(t, "CBE", n.Method)
	assert.Equal(t, "1000123", n.AccountDetails)
}

func TestGameWithDefaults(t *testing.T) {
	now := time.Now()
	g := Game{ID: "g1"}.WithDefaults(now)

	assert.Equal(t, 1, g.RequiredPieces)
	assert.Equal(t, GameWaiting, g.Status)
	assert.NotNil(t, g.Players)
	assert.True(t, g.Stake.IsZero())
	assert.Equal(t, now, g.CreatedAt)
}
