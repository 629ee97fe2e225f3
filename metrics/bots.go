package metrics

import (
	"strings"

	"github.com/shopspring/decimal"

	"ludoadmin/models"
)

// BotSource says which rule identified a player as a bot.
type BotSource int

const (
	BotSourceNone BotSource = iota
	BotSourceFlag
	BotSourceIDPrefix
	BotSourceUsername
)

func (s BotSource) String() string {
	switch s {
	case BotSourceFlag:
		return "flag"
	case BotSourceIDPrefix:
		return "id_prefix"
	case BotSourceUsername:
		return "username"
	default:
		return "none"
	}
}

const botIDPrefix = "bot_"

var botNameHints = []string{"bot", "ai", "computer", "auto"}

// DetectBot classifies a player. The isBot flag wins whenever the backend
// sent it; the id prefix and username hints only apply when it is missing.
func DetectBot(p models.Player) (bool, BotSource) {
	if p.IsBot != nil {
		return *p.IsBot, BotSourceFlag
	}
	if strings.HasPrefix(p.UserID, botIDPrefix) || strings.HasPrefix(p.ID, botIDPrefix) {
		return true, BotSourceIDPrefix
	}
	name := strings.ToLower(p.Username + " " + p.Name)
	for _, hint := range botNameHints {
		if strings.Contains(name, hint) {
			return true, BotSourceUsername
		}
	}
	return false, BotSourceNone
}

func IsBot(p models.Player) bool {
	bot, _ := DetectBot(p)
	return bot
}

// IsFlaggedBot reports a player the backend explicitly marked as a bot.
func IsFlaggedBot(p models.Player) bool {
	return p.IsBot != nil && *p.IsBot
}

// BotGames keeps the games with at least one flagged bot seated. The id and
// username hints are only used to classify winners, never to pick games.
func BotGames(games []models.Game) []models.Game {
	out := make([]models.Game, 0)
	for _, g := range games {
		for _, p := range g.Players {
			if IsFlaggedBot(p) {
				out = append(out, g)
				break
			}
		}
	}
	return out
}

type BotAnalysis struct {
	TotalGames int             `json:"totalGames"`
	GamesWon   int             `json:"gamesWon"`
	GamesLost  int             `json:"gamesLost"`
	MoneyWon   decimal.Decimal `json:"moneyWon"`
	MoneyLost  decimal.Decimal `json:"moneyLost"`
	TotalStake decimal.Decimal `json:"totalStake"`
	NetProfit  decimal.Decimal `json:"netProfit"`
	Accuracy   float64         `json:"accuracy"`
	Profitable bool            `json:"profitable"`
}

// AnalyzeBots folds the bot games into win/loss totals. Only finished games
// with a winner count towards wins and losses; accuracy is over every bot game.
func AnalyzeBots(games []models.Game) BotAnalysis {
	botGames := BotGames(games)
	a := BotAnalysis{TotalGames: len(botGames)}

	for _, g := range botGames {
		if g.Status != models.GameFinished || g.WinnerID == "" {
			continue
		}
		a.TotalStake = a.TotalStake.Add(g.Stake)
		if winnerIsBot(g) {
			a.GamesWon++
			a.MoneyWon = a.MoneyWon.Add(g.Stake)
		} else {
			a.GamesLost++
			a.MoneyLost = a.MoneyLost.Add(g.Stake)
		}
	}

	a.NetProfit = a.MoneyWon.Sub(a.MoneyLost)
	a.Profitable = a.NetProfit.IsPositive()
	if a.TotalGames > 0 {
		a.Accuracy = FormatFloat(float64(a.GamesWon)/float64(a.TotalGames)*100, 1)
	}
	return a
}

func winnerIsBot(g models.Game) bool {
	if winner, ok := g.Winner(); ok {
		return IsBot(winner)
	}
	return strings.HasPrefix(g.WinnerID, botIDPrefix)
}

// WinnerLabel is the winner column of the bot games table.
func WinnerLabel(g models.Game) string {
	if g.WinnerID == "" {
		return "No Winner"
	}
	if winnerIsBot(g) {
		return "Bot (" + g.WinnerID + ")"
	}
	return "Human"
}

// SearchGames matches the query against game id, status and player names.
func SearchGames(games []models.Game, query string) []models.Game {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return games
	}
	out := make([]models.Game, 0)
	for _, g := range games {
		if gameMatches(g, query) {
			out = append(out, g)
		}
	}
	return out
}

func gameMatches(g models.Game, query string) bool {
	if strings.Contains(strings.ToLower(g.ID), query) || strings.Contains(strings.ToLower(g.Status), query) {
		return true
	}
	for _, p := range g.Players {
		if strings.Contains(strings.ToLower(p.Username), query) || strings.Contains(strings.ToLower(p.Name), query) {
			return true
		}
	}
	return false
}

// Page describes one slice of a paginated listing.
type Page struct {
	Page       int `json:"page"`
	PageSize   int `json:"pageSize"`
	Total      int `json:"total"`
	TotalPages int `json:"totalPages"`
}

// NewPage clamps page into range; page numbers start at 1.
func NewPage(page, pageSize, total int) Page {
	if pageSize <= 0 {
		pageSize = 10
	}
	pages := (total + pageSize - 1) / pageSize
	if pages == 0 {
		pages = 1
	}
	if page < 1 {
		page = 1
	}
	if page > pages {
		page = pages
	}
	return Page{Page: page, PageSize: pageSize, Total: total, TotalPages: pages}
}

// Bounds returns the half-open index range of the page.
func (p Page) Bounds() (int, int) {
	start := (p.Page - 1) * p.PageSize
	end := start + p.PageSize
	if start > p.Total {
		start = p.Total
	}
	if end > p.Total {
		end = p.Total
	}
	return start, end
}

// Paginate slices items to the requested page.
func Paginate[T any](items []T, page, pageSize int) ([]T, Page) {
	p := NewPage(page, pageSize, len(items))
	start, end := p.Bounds()
	return items[start:end], p
}
