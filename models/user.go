package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// User is the admin projection of a player account. IsActive is the only
// field the console ever writes back; the stats block is computed server side.
type User struct {
	ID        string    `json:"_id"`
	Username  string    `json:"username"`
	Phone     string    `json:"phone"`
	Role      string    `json:"role,omitempty"`
	IsActive  bool      `json:"isActive"`
	Balance   float64   `json:"balance,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	TotalGames     int             `json:"totalGames"`
	GamesWon       int             `json:"gamesWon"`
	WinRate        FlexibleString  `json:"winRate"`
	TotalWinnings  decimal.Decimal `json:"totalWinnings"`
	TotalStakes    decimal.Decimal `json:"totalStakes"`
	NetProfit      decimal.Decimal `json:"netProfit"`
	GamesByType    map[string]int  `json:"gamesByType,omitempty"`
	LastGamePlayed *time.Time      `json:"lastGamePlayed,omitempty"`
}

type UserListResponse struct {
	Users []User `json:"users"`
	Total int    `json:"total"`
}

type UserStatusRequest struct {
	IsActive bool `json:"isActive"`
}

// UserStats is the summary shown above the users table.
type UserStats struct {
	TotalUsers  int `json:"totalUsers"`
	ActiveUsers int `json:"activeUsers"`
	NewUsers    int `json:"newUsers"`
	BannedUsers int `json:"bannedUsers"`
}
