package models

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	GameWaiting   = "waiting"
	GamePlaying   = "playing"
	GameFinished  = "finished"
	GameCancelled = "cancelled"
)

type Player struct {
	ID       string `json:"id,omitempty"`
	UserID   string `json:"userId,omitempty"`
	Username string `json:"username,omitempty"`
	Name     string `json:"name,omitempty"`
	Avatar   string `json:"avatar,omitempty"`
	Position int    `json:"position,omitempty"`
	Score    int    `json:"score,omitempty"`
	// IsBot is nil when the backend did not send the flag at all.
	IsBot *bool `json:"isBot,omitempty"`
}

// Matches reports whether the player is the one identified by id.
func (p Player) Matches(id string) bool {
	if id == "" {
		return false
	}
	return p.UserID == id || p.ID == id
}

// DisplayName falls back from name to username.
func (p Player) DisplayName() string {
	if p.Name != "" {
		return p.Name
	}
	if p.Username != "" {
		return p.Username
	}
	return "Unknown"
}

type Game struct {
	ID             string          `json:"_id"`
	Status         string          `json:"status"`
	RequiredPieces int             `json:"requiredPieces"`
	Stake          decimal.Decimal `json:"stake"`
	Players        []Player        `json:"players"`
	WinnerID       string          `json:"winnerId,omitempty"`
	CreatedAt      time.Time       `json:"createdAt"`
	UpdatedAt      time.Time       `json:"updatedAt"`
}

// Winner returns the player whose id matches WinnerID.
func (g Game) Winner() (Player, bool) {
	for _, p := range g.Players {
		if p.Matches(g.WinnerID) {
			return p, true
		}
	}
	return Player{}, false
}

// WithDefaults fills the fields the backend may omit.
func (g Game) WithDefaults(now time.Time) Game {
	if g.RequiredPieces == 0 {
		g.RequiredPieces = 1
	}
	if g.Status == "" {
		g.Status = GameWaiting
	}
	if g.Players == nil {
		g.Players = []Player{}
	}
	if g.CreatedAt.IsZero() {
		g.CreatedAt = now
	}
	if g.UpdatedAt.IsZero() {
		g.UpdatedAt = now
	}
	return g
}

type GameStatusRequest struct {
	Status string `json:"status"`
}
