package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Port            string
	GinMode         string
	LogLevel        string
	JWTSecret       string
	AdminEmail      string
	AdminPassword   string
	DBDSN           string
	FirebaseCreds   string
	FirestoreProjID string
	MapLocationsURL string
	CORSOrigins     []string
	NotifyCron      string
}

// Load reads .env when present, then the environment.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	cfg := &Config{
		Port:            getenv("PORT", "8080"),
		GinMode:         getenv("GIN_MODE", "release"),
		LogLevel:        getenv("LOG_LEVEL", "info"),
		JWTSecret:       os.Getenv("JWT_SECRET_KEY"),
		AdminEmail:      getenv("ADMIN_EMAIL", "admin@signalalert.bj"),
		AdminPassword:   os.Getenv("ADMIN_PASSWORD"),
		DBDSN:           os.Getenv("DB_DSN"),
		FirebaseCreds:   os.Getenv("GOOGLE_APPLICATION_CREDENTIALS_1"),
		FirestoreProjID: os.Getenv("FIRESTORE_PROJECT_ID"),
		NotifyCron:      getenv("NOTIFY_CRON", "0 * * * * *"),
	}
	cfg.MapLocationsURL = getenv("MAP_LOCATIONS_URL", "http://localhost:"+cfg.Port+"/api/signalements/locations")
	if origins := os.Getenv("CORS_ORIGINS"); origins != "" {
		for _, o := range strings.Split(origins, ",") {
			if o = strings.TrimSpace(o); o != "" {
				cfg.CORSOrigins = append(cfg.CORSOrigins, o)
			}
		}
	}

	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET_KEY is required")
	}
	return cfg, nil
}

// FirebaseEnabled reports whether Firestore and FCM should be wired.
func (c *Config) FirebaseEnabled() bool {
	return c.FirebaseCreds != ""
}

func getenv(k, def string) string {
	if v := strings.TrimSpace(os.Getenv(k)); v != "" {
		return v
	}
	return def
}
