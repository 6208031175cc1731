package config

import (
	"github.com/caarlos0/env/v11"
	"github.com/pkg/errors"
)

const (
	// EnvRankingFile 是排行榜文件路径的环境变量键。
	EnvRankingFile = "RANKING_FILE"
	// EnvTopN 是显示排行榜条数的环境变量键。
	EnvTopN = "RANKING_TOP_N"
	// EnvHTTPAddr 是 HTTP 服务监听地址的环境变量键。
	EnvHTTPAddr = "RANKING_HTTP_ADDR"
)

// Config 是应用配置，全部来自环境变量。
type Config struct {
	RankingFile string `env:"RANKING_FILE" envDefault:"ranking.json"`
	TopN        int    `env:"RANKING_TOP_N" envDefault:"10"`
	HTTPAddr    string `env:"RANKING_HTTP_ADDR" envDefault:":8080"`
}

// Load 从环境变量加载配置。
func Load() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, errors.Wrap(err, "parse env")
	}
	if cfg.RankingFile == "" {
		return nil, errors.Errorf("%s must not be empty", EnvRankingFile)
	}
	if cfg.TopN <= 0 {
		return nil, errors.Errorf("%s must be positive, got %d", EnvTopN, cfg.TopN)
	}
	return &cfg, nil
}
