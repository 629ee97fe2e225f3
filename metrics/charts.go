package metrics

import (
	"fmt"
	"math/rand"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"ludoadmin/models"
)

const (
	DefaultChartMonths = 6
	topPlayerLimit     = 5
)

var gameTypeColors = map[string]string{
	"Kings 1": "#FF6B6B",
	"Kings 2": "#4ECDC4",
	"Kings 3": "#45B7D1",
	"Kings 4": "#96CEB4",
}

type RevenuePoint struct {
	Month   string          `json:"month"`
	Year    int             `json:"year"`
	Revenue decimal.Decimal `json:"revenue"`
}

type UserGrowthPoint struct {
	Month string `json:"month"`
	Year  int    `json:"year"`
	Users int    `json:"users"`
}

type GameTypeCount struct {
	GameType string `json:"gameType"`
	Games    int    `json:"games"`
	Color    string `json:"color"`
}

type TopPlayer struct {
	Name string `json:"name"`
	Wins int    `json:"wins"`
}

type ChartData struct {
	RevenueData    []RevenuePoint    `json:"revenueData"`
	UserGrowthData []UserGrowthPoint `json:"userGrowthData"`
	GameStatsData  []GameTypeCount   `json:"gameStatsData"`
	TopPlayers     []TopPlayer       `json:"topPlayers"`
}

// MonthWindow returns the first instant of each of the n calendar months
// ending with the month containing now, oldest first.
func MonthWindow(now time.Time, n int) []time.Time {
	if n <= 0 {
		n = DefaultChartMonths
	}
	first := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	out := make([]time.Time, n)
	for i := 0; i < n; i++ {
		out[i] = first.AddDate(0, i-(n-1), 0)
	}
	return out
}

func monthIndex(window []time.Time, t time.Time) int {
	if t.IsZero() {
		return -1
	}
	t = t.In(window[0].Location())
	for i, start := range window {
		if t.Year() == start.Year() && t.Month() == start.Month() {
			return i
		}
	}
	return -1
}

// RevenueSeries sums completed deposits per month over the rolling window.
func RevenueSeries(txs []models.Transaction, now time.Time, months int) []RevenuePoint {
	window := MonthWindow(now, months)
	out := make([]RevenuePoint, len(window))
	for i, start := range window {
		out[i] = RevenuePoint{Month: start.Month().String()[:3], Year: start.Year(), Revenue: decimal.Zero}
	}
	for _, t := range txs {
		if !t.Is(models.TxDeposit, models.TxCompleted) {
			continue
		}
		if i := monthIndex(window, t.CreatedAt); i >= 0 {
			out[i].Revenue = out[i].Revenue.Add(t.Amount)
		}
	}
	return out
}

// UserGrowth counts sign-ups per month over the rolling window.
func UserGrowth(users []models.User, now time.Time, months int) []UserGrowthPoint {
	window := MonthWindow(now, months)
	out := make([]UserGrowthPoint, len(window))
	for i, start := range window {
		out[i] = UserGrowthPoint{Month: start.Month().String()[:3], Year: start.Year()}
	}
	for _, u := range users {
		if i := monthIndex(window, u.CreatedAt); i >= 0 {
			out[i].Users++
		}
	}
	return out
}

// GameTypeLabel names a game type after its piece count.
func GameTypeLabel(requiredPieces int) string {
	if requiredPieces == 0 {
		requiredPieces = 1
	}
	return fmt.Sprintf("Kings %d", requiredPieces)
}

// GameTypeColor is fixed for the four known types and random otherwise.
func GameTypeColor(label string) string {
	if c, ok := gameTypeColors[label]; ok {
		return c
	}
	return fmt.Sprintf("#%06x", rand.Intn(0xFFFFFF))
}

// GameTypeDistribution counts games per type in order of first appearance.
func GameTypeDistribution(games []models.Game) []GameTypeCount {
	out := make([]GameTypeCount, 0, 4)
	index := make(map[string]int)
	for _, g := range games {
		label := GameTypeLabel(g.RequiredPieces)
		i, ok := index[label]
		if !ok {
			i = len(out)
			index[label] = i
			out = append(out, GameTypeCount{GameType: label, Color: GameTypeColor(label)})
		}
		out[i].Games++
	}
	return out
}

// TopPlayers ranks winners of finished games by win count.
func TopPlayers(games []models.Game, limit int) []TopPlayer {
	if limit <= 0 {
		limit = topPlayerLimit
	}
	wins := make(map[string]int)
	order := make([]string, 0)
	for _, g := range games {
		if g.Status != models.GameFinished || g.WinnerID == "" {
			continue
		}
		winner, ok := g.Winner()
		if !ok {
			continue
		}
		name := winner.DisplayName()
		if _, seen := wins[name]; !seen {
			order = append(order, name)
		}
		wins[name]++
	}

	out := make([]TopPlayer, 0, len(order))
	for _, name := range order {
		out = append(out, TopPlayer{Name: name, Wins: wins[name]})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Wins > out[j].Wins })
	if len(out) > limit {
		out = out[:limit]
	}
	return out
}

// BuildCharts assembles every chart series except user growth, which the
// dashboard store derives from its own user list.
func BuildCharts(txs []models.Transaction, games []models.Game, now time.Time, months int) ChartData {
	return ChartData{
		RevenueData:    RevenueSeries(txs, now, months),
		UserGrowthData: []UserGrowthPoint{},
		GameStatsData:  GameTypeDistribution(games),
		TopPlayers:     TopPlayers(games, topPlayerLimit),
	}
}
