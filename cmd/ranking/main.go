package main

import (
	"log"
	"os"

	"ranking/internal/application"
	"ranking/internal/config"
	"ranking/internal/infrastructure/persistence"
	"ranking/internal/interfaces/cli"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	repo, err := persistence.NewRankingRepository(cfg.RankingFile)
	if err != nil {
		log.Fatalf("failed to create repository: %v", err)
	}

	rankService, err := application.NewRankService(repo)
	if err != nil {
		log.Fatalf("failed to create rank service: %v", err)
	}

	menu := cli.NewMenu(rankService, os.Stdin, os.Stdout, cfg.TopN)
	if err := menu.Run(); err != nil {
		log.Fatalf("ranking: %v", err)
	}
}
