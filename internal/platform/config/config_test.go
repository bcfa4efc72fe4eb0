package config

import (
	"strings"
	"testing"
	"time"
)

// clearServiceEnv blanks every variable the loaders read so a developer's
// shell or .env cannot leak into the assertions.
func clearServiceEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"PORT", "DATABASE_URL", "JWT_SECRET_KEY", "ALGORITHM",
		"ACCESS_TOKEN_EXPIRE_MINUTES", "CORS_ORIGINS", "RUN_MIGRATIONS",
		"GEMINI_API_KEY", "S3_BUCKET_NAME", "S3_ENDPOINT", "AWS_REGION",
		"AWS_ACCESS_KEY_ID", "AWS_SECRET_ACCESS_KEY", "HTTP_TIMEOUT_SECONDS",
		"REDIS_HOST", "REDIS_PORT", "REDIS_PASSWORD",
		"UPLOAD_DIR", "OUTPUT_DIR", "PENDING_TTL_HOURS",
	} {
		t.Setenv(key, "")
	}
}

func TestLoadAuth(t *testing.T) {
	t.Run("loads a complete configuration", func(t *testing.T) {
		clearServiceEnv(t)
		t.Setenv("DATABASE_URL", "postgres://localhost/auth")
		t.Setenv("JWT_SECRET_KEY", "secret")
		t.Setenv("ALGORITHM", "HS256")
		t.Setenv("ACCESS_TOKEN_EXPIRE_MINUTES", "30")
		t.Setenv("CORS_ORIGINS", "http://localhost:3000, http://localhost:5173")

		cfg, err := LoadAuth()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cfg.Port != "8081" {
			t.Errorf("expected default port 8081, got %q", cfg.Port)
		}
		if cfg.AccessTokenTTL != 30*time.Minute {
			t.Errorf("expected 30m token ttl, got %v", cfg.AccessTokenTTL)
		}
		if len(cfg.CORSOrigins) != 2 || cfg.CORSOrigins[1] != "http://localhost:5173" {
			t.Errorf("unexpected CORS origins: %v", cfg.CORSOrigins)
		}
		if cfg.RunMigrations {
			t.Error("migrations must be off by default")
		}
	})

	t.Run("lists every missing variable", func(t *testing.T) {
		clearServiceEnv(t)

		_, err := LoadAuth()
		if err == nil {
			t.Fatal("expected error but got nil")
		}
		for _, key := range []string{"DATABASE_URL", "JWT_SECRET_KEY", "ALGORITHM", "ACCESS_TOKEN_EXPIRE_MINUTES"} {
			if !strings.Contains(err.Error(), key) {
				t.Errorf("error must name %s, got: %v", key, err)
			}
		}
	})

	t.Run("rejects a non-positive token lifetime", func(t *testing.T) {
		clearServiceEnv(t)
		t.Setenv("DATABASE_URL", "postgres://localhost/auth")
		t.Setenv("JWT_SECRET_KEY", "secret")
		t.Setenv("ALGORITHM", "HS256")
		t.Setenv("ACCESS_TOKEN_EXPIRE_MINUTES", "-5")

		if _, err := LoadAuth(); err == nil {
			t.Fatal("expected error but got nil")
		}
	})
}

func TestLoadTranscription(t *testing.T) {
	t.Run("loads a complete configuration", func(t *testing.T) {
		clearServiceEnv(t)
		t.Setenv("JWT_SECRET_KEY", "secret")
		t.Setenv("ALGORITHM", "HS256")
		t.Setenv("GEMINI_API_KEY", "gm-key")
		t.Setenv("S3_BUCKET_NAME", "audio-bucket")
		t.Setenv("S3_ENDPOINT", "http://localhost:9000")
		t.Setenv("AWS_ACCESS_KEY_ID", "minio")
		t.Setenv("AWS_SECRET_ACCESS_KEY", "minio123")

		cfg, err := LoadTranscription()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cfg.Port != "8082" {
			t.Errorf("expected default port 8082, got %q", cfg.Port)
		}
		if cfg.AWSRegion != "us-east-1" {
			t.Errorf("expected default region us-east-1, got %q", cfg.AWSRegion)
		}
		if cfg.HTTPTimeout != 60*time.Second {
			t.Errorf("expected default 60s timeout, got %v", cfg.HTTPTimeout)
		}
	})

	t.Run("lists every missing variable", func(t *testing.T) {
		clearServiceEnv(t)

		_, err := LoadTranscription()
		if err == nil {
			t.Fatal("expected error but got nil")
		}
		for _, key := range []string{"JWT_SECRET_KEY", "GEMINI_API_KEY", "S3_BUCKET_NAME", "AWS_ACCESS_KEY_ID", "AWS_SECRET_ACCESS_KEY"} {
			if !strings.Contains(err.Error(), key) {
				t.Errorf("error must name %s, got: %v", key, err)
			}
		}
	})

	t.Run("rejects a malformed timeout instead of defaulting", func(t *testing.T) {
		clearServiceEnv(t)
		t.Setenv("JWT_SECRET_KEY", "secret")
		t.Setenv("ALGORITHM", "HS256")
		t.Setenv("GEMINI_API_KEY", "gm-key")
		t.Setenv("S3_BUCKET_NAME", "audio-bucket")
		t.Setenv("AWS_ACCESS_KEY_ID", "minio")
		t.Setenv("AWS_SECRET_ACCESS_KEY", "minio123")
		t.Setenv("HTTP_TIMEOUT_SECONDS", "sixty")

		_, err := LoadTranscription()
		if err == nil {
			t.Fatal("expected error but got nil")
		}
		if !strings.Contains(err.Error(), "HTTP_TIMEOUT_SECONDS") {
			t.Errorf("error must name the variable, got: %v", err)
		}
	})
}

func TestLoadHandwriting(t *testing.T) {
	t.Run("loads a complete configuration", func(t *testing.T) {
		clearServiceEnv(t)
		t.Setenv("DATABASE_URL", "postgres://localhost/handwriting")
		t.Setenv("REDIS_HOST", "localhost")
		t.Setenv("REDIS_PORT", "6379")
		t.Setenv("PENDING_TTL_HOURS", "12")

		cfg, err := LoadHandwriting()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cfg.Port != "8083" {
			t.Errorf("expected default port 8083, got %q", cfg.Port)
		}
		if cfg.UploadDir != "./data/uploads" || cfg.OutputDir != "./data/output" {
			t.Errorf("unexpected default dirs: %q %q", cfg.UploadDir, cfg.OutputDir)
		}
		if cfg.PendingTTL != 12*time.Hour {
			t.Errorf("expected 12h pending ttl, got %v", cfg.PendingTTL)
		}
	})

	t.Run("lists every missing variable", func(t *testing.T) {
		clearServiceEnv(t)

		_, err := LoadHandwriting()
		if err == nil {
			t.Fatal("expected error but got nil")
		}
		for _, key := range []string{"DATABASE_URL", "REDIS_HOST", "REDIS_PORT"} {
			if !strings.Contains(err.Error(), key) {
				t.Errorf("error must name %s, got: %v", key, err)
			}
		}
	})

	t.Run("rejects a malformed pending ttl instead of defaulting", func(t *testing.T) {
		clearServiceEnv(t)
		t.Setenv("DATABASE_URL", "postgres://localhost/handwriting")
		t.Setenv("REDIS_HOST", "localhost")
		t.Setenv("REDIS_PORT", "6379")
		t.Setenv("PENDING_TTL_HOURS", "soon")

		_, err := LoadHandwriting()
		if err == nil {
			t.Fatal("expected error but got nil")
		}
		if !strings.Contains(err.Error(), "PENDING_TTL_HOURS") {
			t.Errorf("error must name the variable, got: %v", err)
		}
	})
}
