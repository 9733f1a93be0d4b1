package main

import (
	"context"
	"fmt"
	"log"
	"net/http"

	"github.com/joho/godotenv"
	slackapi "github.com/slack-go/slack"

	"github.com/teamtrack/attendance-bot/internal/config"
	"github.com/teamtrack/attendance-bot/internal/database"
	"github.com/teamtrack/attendance-bot/internal/domain/contract"
	"github.com/teamtrack/attendance-bot/internal/domain/service"
	"github.com/teamtrack/attendance-bot/internal/handlers"
	"github.com/teamtrack/attendance-bot/internal/scheduler"
	"github.com/teamtrack/attendance-bot/internal/sheets"
	"github.com/teamtrack/attendance-bot/migrator/sqlite"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}

	cfg := config.Load()

	db, err := database.New(cfg.DatabasePath)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	log.Println("Running migrations...")
	if err := sqlite.Migrate(db.DB()); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Println("Migrations completed successfully")

	dm := database.NewInstance(db)

	slackClient := slackapi.New(cfg.SlackBotToken)

	// The spreadsheet is optional: without credentials the bot still records
	// attendance and sends daily reports, only the sync cycle is disabled.
	var sheetAPI contract.SheetAPI
	if cfg.GoogleCredentialsFile != "" && cfg.SpreadsheetID != "" {
		client, err := sheets.New(context.Background(), cfg.GoogleCredentialsFile, cfg.SpreadsheetID)
		if err != nil {
			log.Printf("Warning: spreadsheet client unavailable: %v", err)
		} else {
			sheetAPI = client
		}
	} else {
		log.Println("Warning: spreadsheet not configured, sync disabled")
	}

	services := service.New(dm, slackClient, sheetAPI, cfg)

	sched := scheduler.New(services.Closure, services.Sync, cfg)
	if err := sched.Start(); err != nil {
		log.Fatalf("Failed to start scheduler: %v", err)
	}
	defer sched.Stop()

	handler := handlers.New(services.Attendance, services.Sync, cfg)

	http.HandleFunc("/slack/commands", handler.HandleSlashCommand)
	http.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		fmt.Fprintf(w, "OK")
	})

	log.Printf("Server starting on port %s", cfg.Port)
	if err := http.ListenAndServe(":"+cfg.Port, nil); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
