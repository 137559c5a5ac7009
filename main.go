package main

import (
	"log"

	"lms/config"
	"lms/flagstore"
	"lms/seed"
	"lms/services"
	"lms/store"
	"lms/utils"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Error loading config: %v", err)
	}

	// Initialize logger
	logger, err := utils.InitLogger(cfg.LogMode)
	if err != nil {
		log.Fatalf("Error initializing logger: %v", err)
	}
	defer logger.Sync()

	// The flag store opens first: it holds the seed marker and the session
	// flag and must outlive any table reset.
	flags, err := flagstore.Open(cfg.DataDir)
	if err != nil {
		logger.Fatalw("open flag store", "err", err)
	}

	st, err := store.Open(cfg)
	if err != nil {
		logger.Fatalw("open record store", "err", err)
	}
	defer st.Close()

	if err := seed.NewSeeder(st, flags, logger).EnsureSeeded(); err != nil {
		logger.Fatalw("seed default data", "err", err)
	}

	overview := services.NewOverviewService(st, logger)
	summary, err := overview.DashboardSummary()
	if err != nil {
		logger.Fatalw("dashboard summary", "err", err)
	}
	totals, err := overview.WeeklyTotals()
	if err != nil {
		logger.Fatalw("weekly totals", "err", err)
	}

	logger.Infow("store ready",
		"user", summary.User.Name,
		"streak", summary.User.Streak,
		"points", summary.User.TotalPoints,
		"unread", summary.UnreadMessages,
		"weekLessons", totals.LessonsCompleted,
		"weekHours", totals.HoursStudied,
	)
	for _, c := range summary.Courses {
		logger.Infow("course",
			"title", c.Title,
			"category", c.Category,
			"progress", c.Progress,
			"lessons", c.TotalLessons,
			"completed", c.CompletedLessons,
		)
	}
}
