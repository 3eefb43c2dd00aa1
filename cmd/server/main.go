package main

import (
	"context"
	"log"

	"github.com/gin-gonic/gin"

	"huffcodec/internal/config"
	"huffcodec/internal/handler"
	"huffcodec/internal/repo"
	"huffcodec/internal/router"
	"huffcodec/internal/service"
	"huffcodec/pkg/logger"
)

func main() {
	cfg := config.Load()
	logg := logger.New()

	var artifactRepo repo.ArtifactRepo
	if cfg.DatabaseURL != "" {
		pool, err := repo.Open(context.Background(), cfg.DatabaseURL)
		if err != nil {
			log.Fatal(err)
		}
		defer pool.Close()
		if err := repo.Migrate(context.Background(), pool); err != nil {
			log.Fatal(err)
		}
		artifactRepo = repo.NewArtifactRepoPostgres(pool)
	} else {
		artifactRepo = repo.NewArtifactRepoInMemory()
	}

	codecSvc := service.NewCodecService(artifactRepo, logg)
	codecH := handler.NewCodecHandler(codecSvc)

	gin.SetMode(cfg.GinMode)
	r := gin.Default()
	router.Register(r, router.Dependencies{
		CodecHandler: codecH,
	})

	addr := ":" + cfg.Port
	log.Printf("starting server at %s\n", addr)
	if err := r.Run(addr); err != nil {
		log.Fatal(err)
	}
}
