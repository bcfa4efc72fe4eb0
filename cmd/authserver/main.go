package main

import (
	"log"

	"github.com/harikrishnanks99/Ethnoverse/internal/app/router"
	authadapters "github.com/harikrishnanks99/Ethnoverse/internal/feature/auth/adapters"
	authentity "github.com/harikrishnanks99/Ethnoverse/internal/feature/auth/domain/entity"
	authhandler "github.com/harikrishnanks99/Ethnoverse/internal/feature/auth/transport/handler"
	authusecase "github.com/harikrishnanks99/Ethnoverse/internal/feature/auth/usecase"
	"github.com/harikrishnanks99/Ethnoverse/internal/platform/config"
	"github.com/harikrishnanks99/Ethnoverse/internal/platform/db"
	jwtmw "github.com/harikrishnanks99/Ethnoverse/internal/platform/jwt"
)

func main() {
	cfg, err := config.LoadAuth()
	if err != nil {
		log.Fatal(err)
	}

	gormDB, err := db.Open(cfg.DatabaseURL)
	if err != nil {
		log.Fatal(err)
	}
	if cfg.RunMigrations {
		if err := db.Migrate(gormDB, &authentity.User{}); err != nil {
			log.Fatal(err)
		}
	}

	issuer, err := jwtmw.NewIssuer(cfg.JWTSecret, cfg.JWTAlgorithm, cfg.AccessTokenTTL)
	if err != nil {
		log.Fatal(err)
	}

	userRepo := authadapters.NewUserGorm(gormDB)
	authUC := authusecase.NewAuthUsecase(userRepo, issuer)
	authH := authhandler.NewAuthHandler(authUC)

	r := router.NewAuthRouter(authH, cfg.CORSOrigins)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
