package config

import (
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

type AppConfig struct {
	Port        string
	StoreDriver string // file|memory|sqlite|s3
	GardenFile  string
	DocName     string
	DBPath      string
	S3Bucket    string
	S3Region    string
	S3Endpoint  string
	S3PathStyle bool
}

func Load() AppConfig {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Printf("[cfg] No .env file found or error loading: %v", err)
	}
	return FromEnv()
}

// FromEnv reads the process environment only.
func FromEnv() AppConfig {
	get := func(k, def string) string {
		if v := strings.TrimSpace(os.Getenv(k)); v != "" {
			return v
		}
		return def
	}
	cfg := AppConfig{
		Port:        get("PORT", "8080"),
		StoreDriver: strings.ToLower(get("GARDEN_STORE_DRIVER", "file")),
		GardenFile:  get("GARDEN_FILE", "garden.txt"),
		DocName:     get("GARDEN_DOC_NAME", "garden"),
		DBPath:      get("DB_PATH", "garden.db"),
		S3Bucket:    get("GARDEN_S3_BUCKET", ""),
		S3Region:    get("GARDEN_S3_REGION", "us-east-1"),
		S3Endpoint:  get("GARDEN_S3_ENDPOINT", ""),
		S3PathStyle: strings.EqualFold(get("GARDEN_S3_PATH_STYLE", "false"), "true"),
	}
	log.Printf("[cfg] %+v", cfg)
	return cfg
}
