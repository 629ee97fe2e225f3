package routes

import (
	"github.com/gofiber/fiber/v2"

	"ludoadmin/controllers/ads"
	"ludoadmin/controllers/auth"
	"ludoadmin/controllers/banks"
	"ludoadmin/controllers/bots"
	"ludoadmin/controllers/dashboard"
	"ludoadmin/controllers/games"
	"ludoadmin/controllers/notifications"
	"ludoadmin/controllers/settings"
	"ludoadmin/controllers/transactions"
	"ludoadmin/controllers/users"
	"ludoadmin/controllers/withdrawals"
	"ludoadmin/helpers"
	"ludoadmin/middlewares"
	"ludoadmin/services"
	"ludoadmin/stores"
)

type MenuItem struct {
	Title string `json:"title"`
	Path  string `json:"path"`
	Icon  string `json:"icon"`
}

// Menu is the sidebar, in display order.
var Menu = []MenuItem{
	{Title: "Dashboard", Path: "/", Icon: "dashboard"},
	{Title: "Games", Path: "/games", Icon: "games"},
	{Title: "Transactions", Path: "/transactions", Icon: "transactions"},
	{Title: "Pending Withdrawals", Path: "/pending-withdrawals", Icon: "withdrawals"},
	{Title: "Users", Path: "/users", Icon: "users"},
	{Title: "Bots", Path: "/bots", Icon: "bots"},
	{Title: "Game Settings", Path: "/game-settings", Icon: "settings"},
	{Title: "Banks", Path: "/banks", Icon: "banks"},
	{Title: "Ads & Social", Path: "/ads", Icon: "ads"},
	{Title: "Notifications", Path: "/notifications", Icon: "notifications"},
}

func Setup(app *fiber.App, reg *stores.Registry, creds services.CredentialStore, snapshots dashboard.SnapshotLister) {
	app.Get("/auth", auth.Page())
	app.Post("/auth", auth.Login(creds))
	app.Post("/auth/logout", auth.Logout(creds))

	api := app.Group("/api", middlewares.RequireCredential(creds))
	api.Get("/nav", func(c *fiber.Ctx) error {
		return helpers.JSONSuccess(c, "Navigation retrieved successfully", fiber.Map{
			"menu":     Menu,
			"identity": c.Locals("identity"),
		})
	})

	api.Get("/dashboard", dashboard.Dashboard(reg))
	api.Get("/dashboard/history", dashboard.History(snapshots))

	//users
	api.Get("/users", users.List(reg))
	api.Post("/users/recalculate-stats", users.RecalculateStats(reg))
	api.Get("/users/:id", users.Get(reg))
	api.Patch("/users/:id/status", users.SetStatus(reg))
	api.Delete("/users/:id", users.Delete(reg))

	//games
	api.Get("/games", games.List(reg))
	api.Patch("/games/:id/status", games.SetStatus(reg))
	api.Delete("/games/:id", games.Delete(reg))

	//transactions
	api.Get("/transactions", transactions.List(reg))
	api.Patch("/transactions/:id/status", transactions.SetStatus(reg))
	api.Get("/withdrawals/pending", withdrawals.Pending(reg))
	api.Put("/withdrawals/:id/approve", withdrawals.Approve(reg))
	api.Put("/withdrawals/:id/reject", withdrawals.Reject(reg))

	//banks
	api.Get("/banks", banks.List(reg))
	api.Put("/banks/form", banks.SetForm(reg))
	api.Post("/banks/save", banks.Save(reg))
	api.Post("/banks/cancel", banks.Cancel(reg))
	api.Post("/banks/:id/edit", banks.Edit(reg))

	//bots and settings
	api.Get("/bots", bots.List(reg))
	api.Put("/bots/enabled", bots.SetEnabled(reg))
	api.Get("/settings", settings.Get(reg))
	api.Patch("/settings", settings.Patch(reg))
	api.Put("/settings", settings.Save(reg))
	api.Post("/settings/reset", settings.Reset(reg))
	api.Post("/settings/bot-names", settings.AddBotName(reg))
	api.Delete("/settings/bot-names/:index", settings.RemoveBotName(reg))
	api.Put("/settings/cut-percentage", settings.SaveCutPercentage(reg))

	//ads
	api.Get("/ads", ads.Get(reg))
	api.Put("/ads/social-links", ads.SaveSocialLinks(reg))
	api.Post("/ads/save", ads.SaveAll(reg))
	api.Post("/ads/:slot", ads.Upload(reg))
	api.Delete("/ads/:slot", ads.DeleteImage(reg))

	//messaging
	api.Post("/notifications/broadcast", notifications.Broadcast(reg))
	api.Get("/notifications", notifications.List(reg))
	api.Delete("/errors", notifications.DismissErrors(reg))
	api.Get("/bot-usage", notifications.BotUsage(reg))

	// every other page route needs a credential too; unknown paths 404
	app.Use(middlewares.RequireCredential(creds), func(c *fiber.Ctx) error {
		return helpers.JSONErrorStatus(c, fiber.StatusNotFound, "NOT_FOUND")
	})
}
