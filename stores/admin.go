package stores

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"ludoadmin/metrics"
	"ludoadmin/models"
	"ludoadmin/notify"
	"ludoadmin/services"
)

const (
	KeyDashboard = "dashboard"
	KeyRealTime  = "realTime"
	KeyCharts    = "charts"
)

// AdminStore backs the dashboard page. The backend has no aggregate
// endpoint, so it keeps the raw collections and derives everything on read.
type AdminStore struct {
	*base

	chartMonths int

	dashboard    models.DashboardResponse
	stats        metrics.DashboardStats
	realTime     metrics.RealTimeData
	chartTxs     []models.Transaction
	chartGames   []models.Game
	lastUpdated  time.Time
	hasDashboard bool
}

func NewAdminStore(api *services.Client, notifier *notify.Notifier, now func() time.Time, chartMonths int) *AdminStore {
	if chartMonths <= 0 {
		chartMonths = metrics.DefaultChartMonths
	}
	return &AdminStore{
		base:        newBase("Admin", api, notifier, now, KeyDashboard, KeyRealTime, KeyCharts),
		chartMonths: chartMonths,
	}
}

// FetchDashboardData loads users, games and transactions from /admin/dashboard
// and recomputes the stats snapshot.
func (s *AdminStore) FetchDashboardData(ctx context.Context) error {
	var resp models.DashboardResponse
	return s.run(ctx, KeyDashboard, func(ctx context.Context) error {
		return s.api.Get(ctx, "/admin/dashboard", &resp)
	}, func() {
		s.dashboard = resp
		s.stats = metrics.ComputeDashboardStats(resp)
		s.lastUpdated = s.now()
		s.hasDashboard = true
	})
}

func (s *AdminStore) fetchActivity(ctx context.Context) ([]models.Transaction, []models.Game, error) {
	var txs models.TransactionListResponse
	if err := s.api.Get(ctx, "/admin/transactions", &txs); err != nil {
		return nil, nil, err
	}
	var games models.GameList
	if err := s.api.Get(ctx, "/admin/games", &games); err != nil {
		return nil, nil, err
	}
	now := s.now()
	out := make([]models.Game, 0, len(games))
	for _, g := range games {
		out = append(out, g.WithDefaults(now))
	}
	return txs.Transactions, out, nil
}

// FetchRealTimeData refreshes the live panel from the transaction and game listings.
func (s *AdminStore) FetchRealTimeData(ctx context.Context) error {
	var txs []models.Transaction
	var games []models.Game
	return s.run(ctx, KeyRealTime, func(ctx context.Context) error {
		var err error
		txs, games, err = s.fetchActivity(ctx)
		return err
	}, func() {
		s.realTime = metrics.BuildRealTime(txs, games, s.now())
	})
}

func (s *AdminStore) FetchChartData(ctx context.Context) error {
	var txs []models.Transaction
	var games []models.Game
	return s.run(ctx, KeyCharts, func(ctx context.Context) error {
		var err error
		txs, games, err = s.fetchActivity(ctx)
		return err
	}, func() {
		s.chartTxs = txs
		s.chartGames = games
	})
}

// Initialize runs the three dashboard fetches concurrently and waits for all
// of them. Each failure only marks its own key; the first one is returned.
func (s *AdminStore) Initialize(ctx context.Context) error {
	var g errgroup.Group
	g.Go(func() error { return s.FetchDashboardData(ctx) })
	g.Go(func() error { return s.FetchRealTimeData(ctx) })
	g.Go(func() error { return s.FetchChartData(ctx) })
	return g.Wait()
}

// Stats returns the last computed snapshot and whether one exists yet.
func (s *AdminStore) Stats() (metrics.DashboardStats, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.stats, s.hasDashboard
}

// RealTime returns the live panel with the online estimate taken from the
// current user total.
func (s *AdminStore) RealTime() metrics.RealTimeData {
	s.mu.RLock()
	defer s.mu.RUnlock()
	data := s.realTime
	data.RecentTransactions = append([]metrics.Activity(nil), s.realTime.RecentTransactions...)
	data.RecentGames = append([]metrics.RecentGame(nil), s.realTime.RecentGames...)
	data.OnlineUsers = metrics.EstimateOnlineUsers(s.stats.TotalUsers)
	data.OnlineEstimated = true
	return data
}

// Charts derives every chart series from the last fetched collections.
func (s *AdminStore) Charts() metrics.ChartData {
	s.mu.RLock()
	defer s.mu.RUnlock()
	now := s.now()
	charts := metrics.BuildCharts(s.chartTxs, s.chartGames, now, s.chartMonths)
	charts.UserGrowthData = metrics.UserGrowth(s.dashboard.Users, now, s.chartMonths)
	return charts
}

func (s *AdminStore) LastUpdated() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lastUpdated
}

// Users returns the user list from the last dashboard fetch.
func (s *AdminStore) Users() []models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.User(nil), s.dashboard.Users...)
}
