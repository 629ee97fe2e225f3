package metrics

import (
	"github.com/shopspring/decimal"

	"ludoadmin/models"
)

type GameStats struct {
	Total           int             `json:"total"`
	Active          int             `json:"active"`
	Completed       int             `json:"completed"`
	Waiting         int             `json:"waiting"`
	Cancelled       int             `json:"cancelled"`
	TotalStakes     decimal.Decimal `json:"totalStakes"`
	TotalPrizePools decimal.Decimal `json:"totalPrizePools"`
}

func SummarizeGames(games []models.Game) GameStats {
	s := GameStats{Total: len(games)}
	for _, g := range games {
		switch g.Status {
		case models.GamePlaying:
			s.Active++
		case models.GameFinished:
			s.Completed++
		case models.GameWaiting:
			s.Waiting++
		case models.GameCancelled:
			s.Cancelled++
		}
		s.TotalStakes = s.TotalStakes.Add(g.Stake)
		s.TotalPrizePools = s.TotalPrizePools.Add(g.Stake.Mul(decimal.NewFromInt(int64(len(g.Players)))))
	}
	return s
}

// FilterGamesByStatus returns every game when status is empty.
func FilterGamesByStatus(games []models.Game, status string) []models.Game {
	if status == "" {
		return games
	}
	out := make([]models.Game, 0)
	for _, g := range games {
		if g.Status == status {
			out = append(out, g)
		}
	}
	return out
}
