package main

import (
	"context"
	"log"

	"github.com/harikrishnanks99/Ethnoverse/internal/app/router"
	handwritingadapters "github.com/harikrishnanks99/Ethnoverse/internal/feature/handwriting/adapters"
	"github.com/harikrishnanks99/Ethnoverse/internal/feature/handwriting/adapters/vision"
	handwritingentity "github.com/harikrishnanks99/Ethnoverse/internal/feature/handwriting/domain/entity"
	handwritinghandler "github.com/harikrishnanks99/Ethnoverse/internal/feature/handwriting/transport/handler"
	handwritingusecase "github.com/harikrishnanks99/Ethnoverse/internal/feature/handwriting/usecase"
	"github.com/harikrishnanks99/Ethnoverse/internal/platform/config"
	"github.com/harikrishnanks99/Ethnoverse/internal/platform/db"
	infraredis "github.com/harikrishnanks99/Ethnoverse/internal/platform/redis"
)

func main() {
	cfg, err := config.LoadHandwriting()
	if err != nil {
		log.Fatal(err)
	}

	ctx := context.Background()

	gormDB, err := db.Open(cfg.DatabaseURL)
	if err != nil {
		log.Fatal(err)
	}
	if cfg.RunMigrations {
		if err := db.Migrate(gormDB, &handwritingentity.Document{}); err != nil {
			log.Fatal(err)
		}
	}

	rdb, err := infraredis.NewClient(cfg.RedisHost, cfg.RedisPort, cfg.RedisPassword)
	if err != nil {
		log.Fatal(err)
	}
	defer func() {
		if err := rdb.Close(); err != nil {
			log.Println("failed to close redis client:", err)
		}
	}()

	recognizer, err := vision.NewVisionTextRecognizer(ctx)
	if err != nil {
		log.Fatal(err)
	}
	defer func() {
		if err := recognizer.Close(); err != nil {
			log.Println("failed to close vision client:", err)
		}
	}()

	pending := handwritingadapters.NewPendingRedis(rdb, "ocr:pending", cfg.PendingTTL)
	documents := handwritingadapters.NewDocumentGorm(gormDB)

	uc := handwritingusecase.NewHandwritingUsecase(recognizer, pending, documents, cfg.UploadDir, cfg.OutputDir)
	h := handwritinghandler.NewHandwritingHandler(uc)

	r := router.NewHandwritingRouter(h, cfg.CORSOrigins)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
