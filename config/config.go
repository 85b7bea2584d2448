package config

import (
	"os"
	"time"
)

// Config dibaca dari environment (.env dimuat di main lewat godotenv).
type Config struct {
	Port     string
	GinMode  string
	DBDriver string // mysql | sqlite
	DBDSN    string

	JWTSecret string

	// AutoComplete mengaktifkan sweep penyelesaian otomatis reservasi.
	AutoComplete  bool
	SweepInterval time.Duration
}

func Load() Config {
	cfg := Config{
		Port:          getenv("PORT", "8080"),
		GinMode:       os.Getenv("GIN_MODE"),
		DBDriver:      getenv("DB_DRIVER", "sqlite"),
		DBDSN:         getenv("DB_DSN", "restaurant.db"),
		JWTSecret:     getenv("JWT_SECRET", "TestSecretKeyAUTH1945"),
		AutoComplete:  getenv("AUTO_COMPLETE", "true") == "true",
		SweepInterval: time.Minute,
	}
	if raw := os.Getenv("SWEEP_INTERVAL"); raw != "" {
		if d, err := time.ParseDuration(raw); err == nil && d > 0 {
			cfg.SweepInterval = d
		}
	}
	return cfg
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
