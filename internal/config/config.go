package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	App       AppConfig
	Server    ServerConfig
	Sheets    SheetsConfig
	Static    StaticConfig
	Scheduler SchedulerConfig
}

type AppConfig struct {
	Name        string
	Environment string
}

type ServerConfig struct {
	Port string
}

type SheetsConfig struct {
	SpreadsheetID string
	CellRange     string
	PastTab       string
	CurrentTab    string
	NextTab       string
	PromosTab     string
}

type StaticConfig struct {
	Dir string
}

type SchedulerConfig struct {
	Enabled      bool
	PollInterval time.Duration
}

func Load() (Config, error) {
	// Load .env file if it exists (ignore error for production where env vars are set directly)
	_ = godotenv.Load()

	cfg := Config{
		App: AppConfig{
			Name:        getEnv("APP_NAME", "mysched"),
			Environment: getEnv("APP_ENV", "development"),
		},
		Server: ServerConfig{
			Port: getEnv("APP_PORT", "3000"),
		},
		Sheets: SheetsConfig{
			SpreadsheetID: strings.TrimSpace(os.Getenv("SHEET_ID")),
			CellRange:     getEnv("SHEET_RANGE", "A1:H200"),
			PastTab:       getEnv("SHEET_TAB_PAST", "past"),
			CurrentTab:    getEnv("SHEET_TAB_CURRENT", "current"),
			NextTab:       getEnv("SHEET_TAB_NEXT", "next week"),
			PromosTab:     getEnv("SHEET_TAB_PROMOS", "promos"),
		},
		Static: StaticConfig{
			Dir: getEnv("STATIC_DIR", "web"),
		},
		Scheduler: SchedulerConfig{
			Enabled:      getBool("REFRESH_ENABLED", true),
			PollInterval: getDuration("REFRESH_POLL_INTERVAL", 15*time.Minute),
		},
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	val := strings.TrimSpace(os.Getenv(key))
	if val == "" {
		return fallback
	}
	return val
}

func getBool(key string, fallback bool) bool {
	val := strings.TrimSpace(os.Getenv(key))
	if val == "" {
		return fallback
	}

	parsed, err := strconv.ParseBool(val)
	if err != nil {
		return fallback
	}
	return parsed
}

func getDuration(key string, fallback time.Duration) time.Duration {
	val := strings.TrimSpace(os.Getenv(key))
	if val == "" {
		return fallback
	}

	parsed, err := time.ParseDuration(val)
	if err != nil {
		return fallback
	}
	return parsed
}
