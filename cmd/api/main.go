package main

import (
	"log"

	"github.com/gin-gonic/gin"

	"ranking/internal/application"
	"ranking/internal/config"
	"ranking/internal/infrastructure/persistence"
	"ranking/internal/interfaces/http"
)

func main() {
	log.Println("Starting application...")
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	// 初始化存储库
	repo, err := persistence.NewRankingRepository(cfg.RankingFile)
	if err != nil {
		log.Fatalf("failed to create repository: %v", err)
	}
	log.Printf("Repository created for %s.", cfg.RankingFile)

	// 初始化应用服务
	rankService, err := application.NewRankService(repo)
	if err != nil {
		log.Fatalf("failed to create rank service: %v", err)
	}

	// 初始化 HTTP 处理器
	handler := http.NewHandler(rankService)

	router := gin.Default()
	handler.RegisterRoutes(router)

	log.Printf("Starting server on %s...", cfg.HTTPAddr)
	if err := router.Run(cfg.HTTPAddr); err != nil {
		log.Fatalf("failed to run server: %v", err)
	}
	log.Println("Server stopped.")
}
