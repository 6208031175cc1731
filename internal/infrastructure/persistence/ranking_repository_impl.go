package persistence

import (
	"log"
	"os"
	"path/filepath"

	"github.com/pkg/errors"

	"ranking/internal/domain/model"
	"ranking/internal/domain/repository"
)

// rankingRepositoryImpl 是 RankingRepository 的实现。
type rankingRepositoryImpl struct {
	snapshotter *Snapshotter
}

// NewRankingRepository 创建一个基于 JSON 文件的 RankingRepository。
func NewRankingRepository(filePath string) (repository.RankingRepository, error) {
	if dir := filepath.Dir(filePath); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, errors.Wrapf(err, "create ranking dir %s", dir)
		}
	}

	return &rankingRepositoryImpl{
		snapshotter: NewSnapshotter(filePath),
	}, nil
}

// Save 保存排行榜快照。
func (r *rankingRepositoryImpl) Save(ranking model.Ranking) error {
	return r.snapshotter.Save(ranking)
}

// Load 加载排行榜。
func (r *rankingRepositoryImpl) Load() (model.Ranking, error) {
	ranking, err := r.snapshotter.Load()
	switch {
	case err == nil:
		return ranking, nil
	case os.IsNotExist(err):
		// 文件不存在，从空排行榜开始
		return model.Ranking{}, nil
	case errors.Is(err, ErrCorruptSnapshot):
		log.Printf("ignoring unreadable ranking file: %v", err)
		return model.Ranking{}, nil
	default:
		return nil, errors.Wrapf(err, "load ranking from %s", r.snapshotter.Path())
	}
}
