package metrics

import (
	"time"

	"ludoadmin/models"
)

const (
	recentTransactionLimit = 10
	recentGameLimit        = 5
)

type Activity struct {
	User   string `json:"user"`
	Action string `json:"action"`
	Amount string `json:"amount"`
	Time   string `json:"time"`
	Type   string `json:"type"`
	Status string `json:"status"`
}

type RecentGame struct {
	ID        string    `json:"id"`
	Status    string    `json:"type"`
	Players   []string  `json:"players"`
	Stake     string    `json:"stake"`
	Winner    string    `json:"winner,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

type RealTimeData struct {
	OnlineUsers        int          `json:"onlineUsers"`
	OnlineEstimated    bool         `json:"onlineUsersEstimated"`
	ActiveGames        int          `json:"activeGames"`
	RecentTransactions []Activity   `json:"recentTransactions"`
	RecentGames        []RecentGame `json:"recentGames"`
}

// BuildRealTime shapes the live panel. The lists keep the backend's order,
// which is newest first. OnlineUsers is filled in by the caller from the
// current user total.
func BuildRealTime(txs []models.Transaction, games []models.Game, now time.Time) RealTimeData {
	data := RealTimeData{
		RecentTransactions: make([]Activity, 0, recentTransactionLimit),
		RecentGames:        make([]RecentGame, 0, recentGameLimit),
		OnlineEstimated:    true,
	}

	for i, t := range txs {
		if i == recentTransactionLimit {
			break
		}
		n := t.Normalize(now)
		action := t.Description
		if action == "" {
			action = t.Type + " transaction"
		}
		data.RecentTransactions = append(data.RecentTransactions, Activity{
			User:   n.Username,
			Action: action,
			Amount: t.Amount.String() + " ብር",
			Time:   n.CreatedAt.Format("15:04:05"),
			Type:   n.Type,
			Status: n.Status,
		})
	}

	for i, g := range games {
		if g.Status == models.GamePlaying {
			data.ActiveGames++
		}
		if i >= recentGameLimit {
			continue
		}
		players := make([]string, 0, len(g.Players))
		for _, p := range g.Players {
			players = append(players, p.DisplayName())
		}
		data.RecentGames = append(data.RecentGames, RecentGame{
			ID:        g.ID,
			Status:    g.Status,
			Players:   players,
			Stake:     g.Stake.String(),
			Winner:    g.WinnerID,
			CreatedAt: g.CreatedAt,
		})
	}

	return data
}
