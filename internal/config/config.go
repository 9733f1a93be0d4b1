package config

import (
	"log"
	"os"
	"strconv"
	"time"
)

type Config struct {
	SlackBotToken      string
	SlackSigningSecret string
	DatabasePath       string
	Port               string

	// Channel that receives the automatic daily closure report.
	ReportChannelID string

	// Google Sheets access.
	GoogleCredentialsFile string
	SpreadsheetID         string
	RosterSheet           string

	// Closure evaluation: local timezone, earliest report hour and the tick
	// intervals of the two background jobs.
	Timezone               string
	ReportHour             int
	ClosureIntervalMinutes int
	SyncIntervalMinutes    int

	// Attendance rules.
	LateAfter       string // HH:MM:SS, entries after this count as Tardanza
	MaxSessionHours int    // sessions longer than this are capped
}

func Load() *Config {
	return &Config{
		SlackBotToken:      getEnv("SLACK_BOT_TOKEN", ""),
		SlackSigningSecret: getEnv("SLACK_SIGNING_SECRET", ""),
		DatabasePath:       getEnv("DATABASE_PATH", "./attendance.db"),
		Port:               getEnv("PORT", "3000"),

		ReportChannelID: getEnv("REPORT_CHANNEL_ID", ""),

		GoogleCredentialsFile: getEnv("GOOGLE_CREDENTIALS_FILE", "./credentials.json"),
		SpreadsheetID:         getEnv("GOOGLE_SPREADSHEET_ID", ""),
		RosterSheet:           getEnv("ROSTER_SHEET", "Registro"),

		Timezone:               getEnv("TIMEZONE", "America/Lima"),
		ReportHour:             getEnvInt("REPORT_HOUR", 14),
		ClosureIntervalMinutes: getEnvInt("CLOSURE_INTERVAL_MINUTES", 15),
		SyncIntervalMinutes:    getEnvInt("SYNC_INTERVAL_MINUTES", 10),

		LateAfter:       getEnv("LATE_AFTER", "08:10:00"),
		MaxSessionHours: getEnvInt("MAX_SESSION_HOURS", 8),
	}
}

// Location resolves the configured timezone, falling back to UTC.
func (c *Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		log.Printf("Invalid TIMEZONE %q, falling back to UTC: %v", c.Timezone, err)
		return time.UTC
	}
	return loc
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	i, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}
	return i
}
