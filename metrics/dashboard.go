// Package metrics derives the console's aggregate figures from the raw
// users, games and transactions the backend hands out. Every function is
// pure; stores call them on each read instead of caching the result.
package metrics

import (
	"math"

	"github.com/shopspring/decimal"

	"ludoadmin/models"
)

const (
	DefaultCutPercentage = 10.0

	// Placeholder ratios; the backend has no presence or activity metric yet.
	activeUserRatio = 0.3
	onlineUserRatio = 0.15

	// Seats assumed when a game record does not list its players.
	defaultSeats = 2
)

type DashboardStats struct {
	TotalUsers         int             `json:"totalUsers"`
	TotalGames         int             `json:"totalGames"`
	TotalRevenue       decimal.Decimal `json:"totalRevenue"`
	ActiveUsers        int             `json:"activeUsers"`
	ActiveEstimated    bool            `json:"activeUsersEstimated"`
	PendingWithdrawals decimal.Decimal `json:"pendingWithdrawals"`
	TotalDeposits      decimal.Decimal `json:"totalDeposits"`
	TotalWithdrawals   decimal.Decimal `json:"totalWithdrawals"`
	PlatformCutRevenue decimal.Decimal `json:"platformCutRevenue"`
	TotalStakes        decimal.Decimal `json:"totalStakes"`
	TotalGamePot       decimal.Decimal `json:"totalGamePot"`
	CutPercentage      decimal.Decimal `json:"cutPercentage"`
}

// ComputeDashboardStats folds the /admin/dashboard payload into one snapshot.
//
//	totalRevenue = pot × cut% / 100 + completed deposits − completed withdrawals
//
// where pot sums stake × seats over finished games.
func ComputeDashboardStats(resp models.DashboardResponse) DashboardStats {
	cut := decimal.NewFromFloat(DefaultCutPercentage)
	if resp.CutPercentage != nil && *resp.CutPercentage != 0 {
		cut = decimal.NewFromFloat(*resp.CutPercentage)
	}

	stats := DashboardStats{
		TotalUsers:      len(resp.Users),
		TotalGames:      len(resp.Games),
		CutPercentage:   cut,
		ActiveUsers:     EstimateActiveUsers(len(resp.Users)),
		ActiveEstimated: true,
	}

	for _, t := range resp.Transactions {
		switch {
		case t.Is(models.TxDeposit, models.TxCompleted):
			stats.TotalDeposits = stats.TotalDeposits.Add(t.Amount)
		case t.Is(models.TxWithdraw, models.TxCompleted):
			stats.TotalWithdrawals = stats.TotalWithdrawals.Add(t.Amount)
		case t.IsPendingWithdrawal():
			stats.PendingWithdrawals = stats.PendingWithdrawals.Add(t.Amount)
		}
	}

	for _, g := range resp.Games {
		if g.Status != models.GameFinished {
			continue
		}
		stats.TotalStakes = stats.TotalStakes.Add(g.Stake)
		stats.TotalGamePot = stats.TotalGamePot.Add(GamePot(g))
	}

	stats.PlatformCutRevenue = stats.TotalGamePot.Mul(cut).Div(decimal.NewFromInt(100))
	stats.TotalRevenue = stats.PlatformCutRevenue.Add(stats.TotalDeposits).Sub(stats.TotalWithdrawals)
	return stats
}

// GamePot is stake times the number of seated players, never fewer than
// two seats.
func GamePot(g models.Game) decimal.Decimal {
	seats := max(len(g.Players), defaultSeats)
	return g.Stake.Mul(decimal.NewFromInt(int64(seats)))
}

func EstimateActiveUsers(totalUsers int) int {
	return int(math.Floor(float64(totalUsers) * activeUserRatio))
}

func EstimateOnlineUsers(totalUsers int) int {
	return int(math.Floor(float64(totalUsers) * onlineUserRatio))
}
