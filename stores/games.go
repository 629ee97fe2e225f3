package stores

import (
	"context"
	"errors"
	"net/http"
	"time"

	"ludoadmin/metrics"
	"ludoadmin/models"
	"ludoadmin/notify"
	"ludoadmin/services"
)

const (
	KeyGames      = "games"
	KeyGameAction = "gameAction"
)

var ErrGameNotFound = errors.New("game not found")

var gameStatuses = map[string]bool{
	models.GameWaiting:   true,
	models.GamePlaying:   true,
	models.GameFinished:  true,
	models.GameCancelled: true,
}

type GameStore struct {
	*base

	games []models.Game
}

func NewGameStore(api *services.Client, notifier *notify.Notifier, now func() time.Time) *GameStore {
	return &GameStore{
		base: newBase("Games", api, notifier, now, KeyGames, KeyGameAction),
	}
}

// FetchGames accepts either response shape and fills the defaults the
// backend may leave out.
func (s *GameStore) FetchGames(ctx context.Context) error {
	var list models.GameList
	return s.run(ctx, KeyGames, func(ctx context.Context) error {
		return s.api.Get(ctx, "/admin/games", &list)
	}, func() {
		now := s.now()
		games := make([]models.Game, 0, len(list))
		for _, g := range list {
			games = append(games, g.WithDefaults(now))
		}
		s.games = games
	})
}

func (s *GameStore) UpdateGameStatus(ctx context.Context, id, status string) error {
	if !gameStatuses[status] {
		return s.reject(KeyGameAction, services.Validationf("status", "unknown game status %q", status))
	}
	err := s.mutate(ctx, KeyGameAction, func(ctx context.Context) error {
		return s.api.Send(ctx, http.MethodPatch, "/admin/games/"+id+"/status", models.GameStatusRequest{Status: status}, nil)
	}, nil)
	if err != nil {
		return err
	}
	s.success("Game status updated")
	return s.FetchGames(ctx)
}

func (s *GameStore) DeleteGame(ctx context.Context, id string) error {
	err := s.mutate(ctx, KeyGameAction, func(ctx context.Context) error {
		return s.api.Send(ctx, http.MethodDelete, "/admin/games/"+id, nil, nil)
	}, nil)
	if err != nil {
		return err
	}
	s.success("Game deleted")
	return s.FetchGames(ctx)
}

func (s *GameStore) Games() []models.Game {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.Game(nil), s.games...)
}

func (s *GameStore) GameByID(id string) (models.Game, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, g := range s.games {
		if g.ID == id {
			return g, nil
		}
	}
	return models.Game{}, ErrGameNotFound
}

func (s *GameStore) GamesByStatus(status string) []models.Game {
	return metrics.FilterGamesByStatus(s.Games(), status)
}

func (s *GameStore) GameStats() metrics.GameStats {
	return metrics.SummarizeGames(s.Games())
}

func (s *GameStore) BotGames() []models.Game {
	return metrics.BotGames(s.Games())
}

func (s *GameStore) BotAnalysis() metrics.BotAnalysis {
	return metrics.AnalyzeBots(s.Games())
}
