package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
)

// Config holds application configuration loaded from environment variables.
type Config struct {
	Addr      string // LISTD_ADDR, default ":8080"
	DBPath    string // LISTD_DB, default "listd.db"
	AuthToken string // LISTD_AUTH_TOKEN, optional agent bearer token
	TZ        string // LISTD_TZ, optional IANA zone for calendar dates
}

// Load reads configuration from the environment with sensible defaults. A
// .env file in the working directory is applied first if present.
func Load() Config {
	_ = godotenv.Load()

	return Config{
		Addr:      envOr("LISTD_ADDR", ":8080"),
		DBPath:    envOr("LISTD_DB", "listd.db"),
		AuthToken: os.Getenv("LISTD_AUTH_TOKEN"),
		TZ:        os.Getenv("LISTD_TZ"),
	}
}

// Location returns the server reference zone used to interpret calendar
// dates. An unset or invalid LISTD_TZ falls back to the system local zone.
func (c Config) Location() *time.Location {
	if c.TZ == "" {
		return time.Local
	}
	loc, err := time.LoadLocation(c.TZ)
	if err != nil {
		return time.Local
	}
	return loc
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
