package config

import (
	"os"
	"strconv"
)

// Config holds application configuration
type Config struct {
	Port          string
	DatasetPath   string
	DatasetSource string // "geojson" (default) or "sqlite"
	DBPath        string
	JWTSecret     string
	MaxCards      int // recommendation cards per selection panel
}

// Load reads configuration from environment variables with defaults
func Load() *Config {
	port := os.Getenv("PORT")
	if port == "" {
		port = ":8080"
	}

	datasetPath := os.Getenv("DATASET_PATH")
	if datasetPath == "" {
		datasetPath = "./static/datasets/vacant_lots_scored.geojson"
	}

	datasetSource := os.Getenv("DATASET_SOURCE")
	if datasetSource == "" {
		datasetSource = "geojson"
	}

	dbPath := os.Getenv("DB_PATH")
	if dbPath == "" {
		dbPath = "./data/openlot.db"
	}

	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		jwtSecret = "your-secret-key-change-in-production"
	}

	maxCards := 0
	if v := os.Getenv("MAX_CARDS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			maxCards = n
		}
	}

	return &Config{
		Port:          port,
		DatasetPath:   datasetPath,
		DatasetSource: datasetSource,
		DBPath:        dbPath,
		JWTSecret:     jwtSecret,
		MaxCards:      maxCards,
	}
}
