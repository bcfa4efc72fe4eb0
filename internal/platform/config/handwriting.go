package config

import "time"

// Handwriting holds the handwriting recognition service configuration.
type Handwriting struct {
	Port          string
	DatabaseURL   string
	RedisHost     string
	RedisPort     string
	RedisPassword string
	UploadDir     string
	OutputDir     string
	PendingTTL    time.Duration
	CORSOrigins   []string
	RunMigrations bool
}

// LoadHandwriting loads the handwriting service configuration from the
// environment. Pending OCR results live in Redis under PendingTTL; confirmed
// documents are persisted to the relational store.
func LoadHandwriting() (*Handwriting, error) {
	loadDotenv()

	var missing []string
	cfg := &Handwriting{
		Port:          getEnv("PORT", "8083"),
		DatabaseURL:   requireEnv("DATABASE_URL", &missing),
		RedisHost:     requireEnv("REDIS_HOST", &missing),
		RedisPort:     requireEnv("REDIS_PORT", &missing),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),
		UploadDir:     getEnv("UPLOAD_DIR", "./data/uploads"),
		OutputDir:     getEnv("OUTPUT_DIR", "./data/output"),
		CORSOrigins:   splitCSV(getEnv("CORS_ORIGINS", "")),
		RunMigrations: getEnv("RUN_MIGRATIONS", "") == "true",
	}

	ttlHours, err := getInt("PENDING_TTL_HOURS", 24)
	if err != nil {
		return nil, err
	}
	cfg.PendingTTL = time.Duration(ttlHours) * time.Hour

	if len(missing) > 0 {
		return nil, missingError(missing)
	}
	return cfg, nil
}
