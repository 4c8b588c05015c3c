// Package config loads runtime configuration from a .env file or the
// environment.
package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	// Where the reference-data blob lives: a local path, or a GCS
	// bucket/object pair when the path is empty.
	RefDataPath string
	GCSBucket   string
	GCSObject   string

	// Which fetcher to use: "scrape" (headless browser) or "node" (the
	// legacy scraper script).
	Fetcher    string
	NodeScript string
	ChromeBin  string

	ScrapeTimeoutMs int
	ListenAddr      string
}

// Load reads .env (if present) and the environment.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("[config] No .env file found, falling back to system env vars")
	}

	return &Config{
		RefDataPath: getEnv("REF_DATA_PATH", "./refdata.gob"),
		GCSBucket:   getEnv("GCS_BUCKET", ""),
		GCSObject:   getEnv("GCS_OBJECT", "refdata.gob"),

		Fetcher:    getEnv("FETCHER", "scrape"),
		NodeScript: getEnv("NODE_SCRIPT", "fr_scraper.js"),
		ChromeBin:  getEnv("CHROME_BIN", ""),

		ScrapeTimeoutMs: getEnvInt("SCRAPE_TIMEOUT_MS", 60000),
		ListenAddr:      getEnv("LISTEN_ADDR", ":8080"),
	}
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if val := os.Getenv(key); val != "" {
		if n, err := strconv.Atoi(val); err == nil {
			return n
		}
	}
	return fallback
}
