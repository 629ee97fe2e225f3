package metrics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"ludoadmin/models"
)

func TestFilterPendingWithdrawals(t *testing.T) {
	txs := []models.Transaction{
		{ID: "a", Type: "WITHDRAW", Status: "PENDING"},
		{ID: "b", Type: "withdraw", Status: "Pending"},
		{ID: "c", Type: "WITHDRAW", Status: "COMPLETED"},
		{ID: "d", Type: "DEPOSIT", Status: "PENDING"},
		{ID: "e", Type: "GAME_STAKE", Status: "PENDING"},
	}

	got := FilterPendingWithdrawals(txs)

	ids := make([]string, 0, len(got))
	for _, tx := range got {
		ids = append(ids, tx.ID)
	}
	assert.Equal(t, []string{"a", "b"}, ids)
	for _, tx := range txs {
		assert.Equal(t, tx.IsPendingWithdrawal(), contains(ids, tx.ID), tx.ID)
	}
}

func contains(ids []string, id string) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}

func TestSummarizeTransactions(t *testing.T) {
	now := time.Now()
	raw := []models.Transaction{
		{ID: "1", Type: "DEPOSIT", Status: "COMPLETED", Amount: d(100), TransactionFee: d(2)},
		{ID: "2", Type: "GAME_STAKE", Status: "COMPLETED", Amount: d(20)},
		{ID: "3", Type: "WITHDRAW", Status: "FAILED", Amount: d(5), TransactionFee: d(1)},
		{ID: "4", Type: "GAME_WINNINGS", Amount: d(40)},
	}

	s := SummarizeTransactions(NormalizeAll(raw, now))

	assert.Equal(t, 4, s.Total)
	assert.Equal(t, 2, s.Completed)
	assert.Equal(t, 1, s.Failed)
	assert.Equal(t, 1, s.Pending)
	assert.Equal(t, 2, s.Deposits)
	assert.Equal(t, 2, s.Withdrawals)
	assert.True(t, s.TotalAmount.Equal(d(165)))
	assert.True(t, s.TotalFees.Equal(d(3)))
}

func TestFilterTransactionsByOriginalTypeAndDate(t *testing.T) {
	jan := time.Date(2026, 1, 10, 0, 0, 0, 0, time.UTC)
	feb := time.Date(2026, 2, 10, 0, 0, 0, 0, time.UTC)
	txs := NormalizeAll([]models.Transaction{
		{ID: "1", Type: "DEPOSIT", CreatedAt: jan},
		{ID: "2", Type: "GAME_WINNINGS", CreatedAt: feb},
		{ID: "3", Type: "DEPOSIT", CreatedAt: feb},
	}, time.Now())

	deposits := FilterTransactions(txs, TransactionFilter{Type: models.KindDeposit})
	assert.Len(t, deposits, 3)

	pure := FilterTransactions(txs, TransactionFilter{OriginalType: "DEPOSIT", From: feb.Add(-time.Hour)})
	assert.Len(t, pure, 1)
	assert.Equal(t, "3", pure[0].ID)
}

func TestSummarizeUsers(t *testing.T) {
	now := time.Date(2026, 2, 15, 0, 0, 0, 0, time.UTC)
	users := []models.User{
		{IsActive: true, CreatedAt: now.Add(-24 * time.Hour)},
		{IsActive: true, CreatedAt: now.Add(-30 * 24 * time.Hour)},
		{IsActive: false, CreatedAt: now.Add(-2 * 24 * time.Hour)},
	}

	s := SummarizeUsers(users, now)

	assert.Equal(t, models.UserStats{TotalUsers: 3, ActiveUsers: 2, NewUsers: 2, BannedUsers: 1}, s)
}

func TestSummarizeGames(t *testing.T) {
	two := []models.Player{{ID: "a"}, {ID: "b"}}
	games := []models.Game{
		{Status: models.GamePlaying, Stake: d(10), Players: two},
		{Status: models.GameFinished, Stake: d(20), Players: two},
		{Status: models.GameWaiting, Stake: d(5), Players: []models.Player{{ID: "a"}}},
	}

	s := SummarizeGames(games)

	assert.Equal(t, 3, s.Total)
	assert.Equal(t, 1, s.Active)
	assert.Equal(t, 1, s.Completed)
	assert.Equal(t, 1, s.Waiting)
	assert.True(t, s.TotalStakes.Equal(d(35)))
	assert.True(t, s.TotalPrizePools.Equal(d(65)))
}
