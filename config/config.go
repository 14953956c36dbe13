package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
)

// Store drivers supported by STORE_DRIVER
const (
	StoreMongo    = "mongo"
	StorePostgres = "postgres"
	StoreBolt     = "bolt"
)

// Config holds application configuration loaded from environment variables
type Config struct {
	Port                      string
	StoreDriver               string
	MongoURL                  string
	MongoDatabase             string
	PGURL                     string
	BoltPath                  string
	APIKey                    string
	APIURL                    string
	DocumentRenderServiceHost string
	KeyIDSalt                 string
	LogLevel                  string
}

// Load reads configuration from environment variables, after loading a .env
// file from the working directory if one exists
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Warnf("Failed to read .env file: %v", err)
	}

	cfg := &Config{
		Port:                      getEnv("PORT", "8080"),
		StoreDriver:               getEnv("STORE_DRIVER", StoreMongo),
		MongoURL:                  os.Getenv("MONGODB_URL"),
		MongoDatabase:             getEnv("MONGODB_DATABASE", "company_accounts"),
		PGURL:                     os.Getenv("PG_URL"),
		BoltPath:                  getEnv("BOLT_PATH", "company_accounts.db"),
		APIKey:                    os.Getenv("CHS_API_KEY"),
		APIURL:                    os.Getenv("API_URL"),
		DocumentRenderServiceHost: os.Getenv("DOCUMENT_RENDER_SERVICE_HOST"),
		KeyIDSalt:                 os.Getenv("KEY_ID_SALT"),
		LogLevel:                  getEnv("LOG_LEVEL", "info"),
	}

	switch cfg.StoreDriver {
	case StoreMongo:
		if cfg.MongoURL == "" {
			return nil, fmt.Errorf("MONGODB_URL environment variable is required")
		}
	case StorePostgres:
		if cfg.PGURL == "" {
			return nil, fmt.Errorf("PG_URL environment variable is required")
		}
	case StoreBolt:
	default:
		return nil, fmt.Errorf("unsupported STORE_DRIVER %q", cfg.StoreDriver)
	}

	if cfg.APIKey == "" {
		return nil, fmt.Errorf("CHS_API_KEY environment variable is required")
	}
	if cfg.APIURL == "" {
		return nil, fmt.Errorf("API_URL environment variable is required")
	}
	if cfg.DocumentRenderServiceHost == "" {
		return nil, fmt.Errorf("DOCUMENT_RENDER_SERVICE_HOST environment variable is required")
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
