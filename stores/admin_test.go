package stores

import (
	"context"
	"net/http"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdminInitializeIsolatesFailures(t *testing.T) {
	be := newFakeBackend(t)
	be.json(http.MethodGet, "/admin/dashboard", http.StatusOK, obj{
		"users": []obj{{"_id": "u1", "username": "abebe", "isActive": true, "createdAt": "2026-01-10T00:00:00Z"}},
		"games": []obj{{"_id": "g1", "status": "finished", "stake": 100, "players": []obj{{"userId": "u1"}, {"userId": "u2"}}}},
		"transactions": []obj{
			{"_id": "t1", "type": "DEPOSIT", "status": "COMPLETED", "amount": 500},
			{"_id": "t2", "type": "WITHDRAW", "status": "COMPLETED", "amount": 50},
		},
	})
	be.json(http.MethodGet, "/admin/transactions", http.StatusInternalServerError, obj{"message": "boom"})
	store := be.registry("tok").Admin

	err := store.Initialize(context.Background())

	require.Error(t, err)
	stats, ok := store.Stats()
	require.True(t, ok)
	assert.Equal(t, 1, stats.TotalUsers)
	assert.Equal(t, 1, stats.TotalGames)
	// 200 pot at 10% plus 500 in minus 50 out
	assert.True(t, decimal.NewFromInt(470).Equal(stats.TotalRevenue), stats.TotalRevenue.String())
	assert.Nil(t, store.Error(KeyDashboard))
	assert.NotNil(t, store.Error(KeyRealTime))
	assert.NotNil(t, store.Error(KeyCharts))
	assert.Equal(t, fixedNow, store.LastUpdated())
}

func TestAdminChartsUseRollingWindow(t *testing.T) {
	be := newFakeBackend(t)
	be.json(http.MethodGet, "/admin/dashboard", http.StatusOK, obj{
		"users": []obj{
			{"_id": "u1", "username": "abebe", "createdAt": "2026-01-10T00:00:00Z"},
			{"_id": "u2", "username": "kebede", "createdAt": "2026-02-01T00:00:00Z"},
		},
	})
	be.json(http.MethodGet, "/admin/transactions", http.StatusOK, obj{"transactions": []obj{
		{"_id": "t1", "type": "DEPOSIT", "status": "COMPLETED", "amount": 300, "createdAt": "2026-02-03T00:00:00Z"},
	}})
	be.json(http.MethodGet, "/admin/games", http.StatusOK, []obj{
		{"_id": "g1", "status": "finished", "requiredPieces": 2, "stake": 10},
	})
	store := be.registry("tok").Admin

	require.NoError(t, store.Initialize(context.Background()))

	charts := store.Charts()
	require.Len(t, charts.RevenueData, 6)
	last := charts.RevenueData[5]
	assert.Equal(t, 2026, last.Year)
	assert.True(t, decimal.NewFromInt(300).Equal(last.Revenue))
	require.Len(t, charts.UserGrowthData, 6)
	require.Len(t, charts.GameStatsData, 1)
	assert.Equal(t, "Kings 2", charts.GameStatsData[0].GameType)

	rt := store.RealTime()
	assert.True(t, rt.OnlineEstimated)
}
