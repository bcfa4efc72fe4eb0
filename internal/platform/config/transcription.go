package config

import "time"

// Transcription holds the audio transcription service configuration.
type Transcription struct {
	Port               string
	JWTSecret          string
	JWTAlgorithm       string
	GeminiAPIKey       string
	S3Bucket           string
	S3Endpoint         string
	AWSRegion          string
	AWSAccessKeyID     string
	AWSSecretAccessKey string
	HTTPTimeout        time.Duration
	CORSOrigins        []string
}

// LoadTranscription loads the transcription service configuration from the
// environment. Token verification shares the signing secret and algorithm
// with the credential service.
func LoadTranscription() (*Transcription, error) {
	loadDotenv()

	var missing []string
	cfg := &Transcription{
		Port:               getEnv("PORT", "8082"),
		JWTSecret:          requireEnv("JWT_SECRET_KEY", &missing),
		JWTAlgorithm:       requireEnv("ALGORITHM", &missing),
		GeminiAPIKey:       requireEnv("GEMINI_API_KEY", &missing),
		S3Bucket:           requireEnv("S3_BUCKET_NAME", &missing),
		S3Endpoint:         getEnv("S3_ENDPOINT", ""),
		AWSRegion:          getEnv("AWS_REGION", "us-east-1"),
		AWSAccessKeyID:     requireEnv("AWS_ACCESS_KEY_ID", &missing),
		AWSSecretAccessKey: requireEnv("AWS_SECRET_ACCESS_KEY", &missing),
		CORSOrigins:        splitCSV(getEnv("CORS_ORIGINS", "")),
	}

	timeout, err := getInt("HTTP_TIMEOUT_SECONDS", 60)
	if err != nil {
		return nil, err
	}
	cfg.HTTPTimeout = time.Duration(timeout) * time.Second

	if len(missing) > 0 {
		return nil, missingError(missing)
	}
	return cfg, nil
}
