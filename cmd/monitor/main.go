package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/robfig/cron/v3"

	"github.com/kitnetmanager/kitnet-client/internal/api"
	"github.com/kitnetmanager/kitnet-client/internal/cache"
	"github.com/kitnetmanager/kitnet-client/internal/config"
	"github.com/kitnetmanager/kitnet-client/internal/service"
	"github.com/kitnetmanager/kitnet-client/internal/session"
)

func main() {
	log.Println("Starting payment monitor...")

	// Optional .env for local runs
	_ = godotenv.Load()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Hydrate the session from its persisted store
	sess := session.New(session.NewFileStore(cfg.Session.FilePath))
	if err := sess.Hydrate(); err != nil {
		log.Fatalf("Failed to hydrate session: %v", err)
	}
	if !sess.Authenticated() {
		log.Fatalf("No session found at %s; log in first", cfg.Session.FilePath)
	}

	// Initialize backend client
	client := api.New(cfg.API.BaseURL, cfg.GetAPITimeout(), sess,
		api.WithOnUnauthorized(func() {
			log.Println("Session rejected by backend; monitor needs a fresh login")
		}),
	)

	// Initialize snapshot cache
	cacheStore := initCache(cfg)

	billing := service.NewBillingService(client, client, cacheStore, cfg)

	// Initialize cron scheduler
	c := cron.New(cron.WithSeconds())
	setupCronJobs(c, cfg, billing)

	c.Start()
	log.Println("Monitor started successfully")

	// Wait for interrupt signal to gracefully shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down monitor...")
	<-c.Stop().Done()
	log.Println("Monitor stopped")
}

func initCache(cfg *config.Config) cache.Store {
	if cfg.Cache.Backend == "redis" {
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Host + ":" + cfg.Redis.Port,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		return cache.NewRedisStore(client)
	}
	return cache.NewMemoryStore()
}

func setupCronJobs(c *cron.Cron, cfg *config.Config, billing *service.BillingService) {
	// Daily overdue sweep
	_, err := c.AddFunc(cfg.Monitor.OverdueSchedule, func() {
		reportOverduePayments(billing)
	})
	if err != nil {
		log.Printf("Error scheduling overdue report job: %v", err)
	}

	// Upcoming payment reminders
	_, err = c.AddFunc(cfg.Monitor.UpcomingSchedule, func() {
		reportUpcomingPayments(billing, cfg.Monitor.UpcomingDays)
	})
	if err != nil {
		log.Printf("Error scheduling upcoming report job: %v", err)
	}

	log.Println("Cron jobs scheduled successfully")
}

func reportOverduePayments(billing *service.BillingService) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	views, err := billing.OverduePayments(ctx)
	if err != nil {
		log.Printf("Overdue sweep failed: %v", err)
		return
	}

	if len(views) == 0 {
		log.Println("Overdue sweep: nothing overdue")
		return
	}

	for _, v := range views {
		log.Printf("OVERDUE payment=%s lease=%s amount=%s days=%d total_due=%s",
			v.Payment.ID, v.Payment.LeaseID, v.Payment.Amount, v.DaysOverdue, v.Fee.Total)
	}
	log.Printf("Overdue sweep: %d payment(s) overdue", len(views))

	dashboard, err := billing.DashboardSnapshot(ctx)
	if err != nil {
		log.Printf("Dashboard fetch failed: %v", err)
		return
	}
	log.Printf("Dashboard: occupancy=%.1f%% overdue_amount=%s default_rate=%.1f%%",
		dashboard.Occupancy.OccupancyRate,
		dashboard.Financial.OverdueAmount,
		dashboard.Financial.DefaultRate)
}

func reportUpcomingPayments(billing *service.BillingService, days int) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	views, err := billing.UpcomingPayments(ctx, days)
	if err != nil {
		log.Printf("Upcoming sweep failed: %v", err)
		return
	}

	for _, v := range views {
		log.Printf("UPCOMING payment=%s lease=%s amount=%s due=%s",
			v.Payment.ID, v.Payment.LeaseID, v.Payment.Amount, v.Payment.DueDate)
	}
	log.Printf("Upcoming sweep: %d payment(s) due in the next %d day(s)", len(views), days)
}
