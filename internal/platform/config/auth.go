package config

import "time"

// Auth holds the credential service configuration.
type Auth struct {
	Port           string
	DatabaseURL    string
	JWTSecret      string
	JWTAlgorithm   string
	AccessTokenTTL time.Duration
	CORSOrigins    []string
	RunMigrations  bool
}

// LoadAuth loads the credential service configuration from the environment.
// It returns an error listing every missing required variable so the process
// can refuse to start with a single actionable message.
func LoadAuth() (*Auth, error) {
	loadDotenv()

	var missing []string
	cfg := &Auth{
		Port:          getEnv("PORT", "8081"),
		DatabaseURL:   requireEnv("DATABASE_URL", &missing),
		JWTSecret:     requireEnv("JWT_SECRET_KEY", &missing),
		JWTAlgorithm:  requireEnv("ALGORITHM", &missing),
		CORSOrigins:   splitCSV(getEnv("CORS_ORIGINS", "")),
		RunMigrations: getEnv("RUN_MIGRATIONS", "") == "true",
	}

	ttl, err := minutesEnv("ACCESS_TOKEN_EXPIRE_MINUTES", &missing)
	if err != nil {
		return nil, err
	}
	cfg.AccessTokenTTL = ttl

	if len(missing) > 0 {
		return nil, missingError(missing)
	}
	return cfg, nil
}
