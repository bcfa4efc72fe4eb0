package main

import (
	"context"
	"log"

	"github.com/harikrishnanks99/Ethnoverse/internal/app/router"
	"github.com/harikrishnanks99/Ethnoverse/internal/feature/transcription/adapters/gemini"
	"github.com/harikrishnanks99/Ethnoverse/internal/feature/transcription/adapters/s3store"
	transcriptionhandler "github.com/harikrishnanks99/Ethnoverse/internal/feature/transcription/transport/handler"
	transcriptionusecase "github.com/harikrishnanks99/Ethnoverse/internal/feature/transcription/usecase"
	"github.com/harikrishnanks99/Ethnoverse/internal/platform/config"
	infrahttp "github.com/harikrishnanks99/Ethnoverse/internal/platform/http"
	jwtmw "github.com/harikrishnanks99/Ethnoverse/internal/platform/jwt"
)

func main() {
	cfg, err := config.LoadTranscription()
	if err != nil {
		log.Fatal(err)
	}

	ctx := context.Background()
	httpClient := infrahttp.NewHTTPClient(cfg.HTTPTimeout)

	store, err := s3store.NewS3ObjectStore(ctx, s3store.Config{
		Bucket:          cfg.S3Bucket,
		Region:          cfg.AWSRegion,
		Endpoint:        cfg.S3Endpoint,
		AccessKeyID:     cfg.AWSAccessKeyID,
		SecretAccessKey: cfg.AWSSecretAccessKey,
	}, httpClient)
	if err != nil {
		log.Fatal(err)
	}

	transcriber, err := gemini.NewGeminiTranscriber(ctx, cfg.GeminiAPIKey, httpClient)
	if err != nil {
		log.Fatal(err)
	}

	verifier, err := jwtmw.NewVerifier(cfg.JWTSecret, cfg.JWTAlgorithm)
	if err != nil {
		log.Fatal(err)
	}

	uc := transcriptionusecase.NewTranscriptionUsecase(store, transcriber)
	h := transcriptionhandler.NewTranscriptionHandler(uc)

	r := router.NewTranscriptionRouter(h, verifier, cfg.CORSOrigins)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
