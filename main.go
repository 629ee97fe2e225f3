package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"
	"golang.org/x/time/rate"

	"ludoadmin/controllers/dashboard"
	"ludoadmin/database"
	"ludoadmin/jobs"
	"ludoadmin/middlewares"
	"ludoadmin/notify"
	"ludoadmin/routes"
	"ludoadmin/services"
	"ludoadmin/stores"
	tasks "ludoadmin/task"
)

func envInt(key string, def int) int {
	v, err := strconv.Atoi(os.Getenv(key))
	if err != nil || v <= 0 {
		return def
	}
	return v
}

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️  No .env file loaded, using process environment")
	}

	apiURL := os.Getenv("API_URL")
	if apiURL == "" {
		log.Fatal("❌ API_URL is required")
	}

	var creds services.CredentialStore = services.NewMemoryCredentials("")
	var snapshots *database.SnapshotRepository
	if os.Getenv("DB_HOST") != "" {
		db := database.Connect()
		creds = database.NewCredentialRepository(db)
		snapshots = database.NewSnapshotRepository(db)
	} else {
		log.Println("⚠️  DB_HOST not set, credential kept in memory and history disabled")
	}

	var botStats *services.Client
	if u := os.Getenv("BOT_STATS_URL"); u != "" {
		botStats = services.NewClient(u, creds, nil)
	}

	client := services.NewClient(apiURL, creds, nil)
	notifier := notify.New(200)
	reg := stores.NewRegistry(client, notifier, stores.Options{
		ChartMonths:    envInt("CHART_MONTHS", 6),
		BotStatsClient: botStats,
	})

	host := os.Getenv("HOST")
	port := os.Getenv("PORT")

	if host == "" {
		host = "127.0.0.1"
	}
	if port == "" {
		port = "3000"
	}

	app := fiber.New()
	app.Use(recover.New())
	app.Use(logger.New())
	limit := envInt("RATE_LIMIT_PER_SECOND", 10)
	app.Use(middlewares.RateLimit(middlewares.NewIPRateLimiter(rate.Limit(limit), limit*2)))

	var history dashboard.SnapshotLister
	var saver jobs.SnapshotSaver
	if snapshots != nil {
		history = snapshots
		saver = snapshots
	}
	routes.Setup(app, reg, creds, history)

	ctx, stop := context.WithCancel(context.Background())
	refresh := time.Duration(envInt("DASHBOARD_REFRESH_SECONDS", 30)) * time.Second
	refresherDone := jobs.StartDashboardRefresher(ctx, reg.Admin, saver, refresh)
	if snapshots != nil {
		retention := time.Duration(envInt("SNAPSHOT_RETENTION_HOURS", 168)) * time.Hour
		tasks.StartSnapshotCleanup(ctx, snapshots, retention)
	}

	addr := fmt.Sprintf("%s:%s", host, port)
	log.Println("Server running at", addr)

	go func() {
		if err := app.Listen(addr); err != nil {
			log.Panicf("Failed to start server: %v", err)
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)
	<-c

	log.Println("Gracefully shutting down...")
	stop()
	<-refresherDone
	reg.Dispose()
	if err := app.Shutdown(); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}
	log.Println("Server exited cleanly")
}
