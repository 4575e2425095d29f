package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type AppConfig struct {
	Port           string
	Timezone       string
	DBPath         string
	EnableSnapshot bool
	SnapshotCron   string
	SnapshotDir    string
}

func Load() AppConfig {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Printf("[cfg] No .env file found or error loading: %v", err)
	}

	get := func(k, def string) string {
		if v := os.Getenv(k); v != "" {
			return v
		}
		return def
	}
	cfg := AppConfig{
		Port:           get("PORT", "8080"),
		Timezone:       get("TZ", "America/Sao_Paulo"),
		DBPath:         get("DB_PATH", "brushfuel.db"),
		EnableSnapshot: get("ENABLE_SNAPSHOT", "false") == "true",
		SnapshotCron:   get("SNAPSHOT_CRON", "0 2 * * *"),
		SnapshotDir:    get("SNAPSHOT_DIR", "snapshots"),
	}
	log.Printf("[cfg] %+v", cfg)
	return cfg
}
