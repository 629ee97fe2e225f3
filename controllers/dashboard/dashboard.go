package dashboard

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"ludoadmin/helpers"
	"ludoadmin/models"
	"ludoadmin/stores"
)

type SnapshotLister interface {
	Recent(ctx context.Context, limit int) ([]models.DashboardSnapshot, error)
}

// Dashboard loads the three dashboard panels and renders whatever arrived.
// A failed panel shows up in errors; the others still render.
func Dashboard(reg *stores.Registry) fiber.Handler {
	return func(c *fiber.Ctx) error {
		admin := reg.Admin
		_ = admin.Initialize(c.UserContext())

		stats, loaded := admin.Stats()
		data := fiber.Map{
			"stats":       nil,
			"realTime":    admin.RealTime(),
			"charts":      admin.Charts(),
			"loading":     admin.LoadingAll(),
			"errors":      admin.Errors(),
			"lastUpdated": admin.LastUpdated(),
		}
		if loaded {
			data["stats"] = stats
			data["display"] = fiber.Map{
				"totalUsers":         helpers.Count(stats.TotalUsers),
				"totalGames":         helpers.Count(stats.TotalGames),
				"totalRevenue":       helpers.Birr(stats.TotalRevenue),
				"totalDeposits":      helpers.Birr(stats.TotalDeposits),
				"totalWithdrawals":   helpers.Birr(stats.TotalWithdrawals),
				"pendingWithdrawals": helpers.Birr(stats.PendingWithdrawals),
				"platformCutRevenue": helpers.Birr(stats.PlatformCutRevenue),
			}
		}
		return helpers.JSONSuccess(c, "Dashboard retrieved successfully", data)
	}
}

// History lists recorded dashboard snapshots, newest first.
func History(snapshots SnapshotLister) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if snapshots == nil {
			return helpers.JSONSuccess(c, "Snapshot history disabled", []models.DashboardSnapshot{})
		}
		snaps, err := snapshots.Recent(c.UserContext(), c.QueryInt("limit", 50))
		if err != nil {
			return helpers.JSONErrorStatus(c, fiber.StatusInternalServerError, "FAILED_TO_LOAD_HISTORY")
		}
		return helpers.JSONSuccess(c, "Snapshot history retrieved successfully", snaps)
	}
}
