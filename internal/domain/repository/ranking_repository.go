package repository

import (
	"ranking/internal/domain/model"
)

//go:generate mockgen -source=ranking_repository.go -destination=mock/ranking_repository_mock.go -package=mock

// RankingRepository 定义了排行榜的持久化接口。
type RankingRepository interface {
	// Load 读取排行榜。文件不存在或内容损坏时返回空排行榜。
	Load() (model.Ranking, error)
	// Save 用 r 整体覆盖已保存的排行榜。
	Save(r model.Ranking) error
}
