package application

import (
	"time"

	"github.com/pkg/errors"

	"ranking/internal/domain/model"
	"ranking/internal/domain/repository"
)

// SeedResult 是写入样例数据后的统计。
type SeedResult struct {
	Added int
	Total int
}

// RankService 定义了排行榜应用服务。
type RankService interface {
	GetRanking() (model.Ranking, error)
	GetTopN(n int) (model.Ranking, int, error)
	Merge(incoming model.Ranking) (model.Ranking, error)
	SeedSamples() (*SeedResult, error)
	Clear() error
}

// Option 用于配置 RankService。
type Option func(*rankServiceImpl)

// WithClock 替换生成样例数据时使用的时钟。
func WithClock(now func() time.Time) Option {
	return func(s *rankServiceImpl) {
		s.now = now
	}
}

// rankServiceImpl 是 RankService 的实现。
type rankServiceImpl struct {
	rankingRepo repository.RankingRepository
	now         func() time.Time
}

// NewRankService 创建一个新的 RankService。
func NewRankService(repo repository.RankingRepository, opts ...Option) (RankService, error) {
	if repo == nil {
		return nil, errors.New("nil ranking repository")
	}
	s := &rankServiceImpl{
		rankingRepo: repo,
		now:         time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// GetRanking 获取完整排行榜。
func (s *rankServiceImpl) GetRanking() (model.Ranking, error) {
	return s.rankingRepo.Load()
}

// GetTopN 获取前 N 条记录，同时返回记录总数。
func (s *rankServiceImpl) GetTopN(n int) (model.Ranking, int, error) {
	ranking, err := s.rankingRepo.Load()
	if err != nil {
		return nil, 0, err
	}
	top, _ := ranking.Top(n)
	return top, len(ranking), nil
}

// Merge 把新记录合并进已保存的排行榜并保存。
func (s *rankServiceImpl) Merge(incoming model.Ranking) (model.Ranking, error) {
	current, err := s.rankingRepo.Load()
	if err != nil {
		return nil, err
	}

	merged := model.Merge(current, incoming)
	if err := s.rankingRepo.Save(merged); err != nil {
		return nil, errors.Wrap(err, "save merged ranking")
	}
	return merged, nil
}

// SeedSamples 写入样例数据。
func (s *rankServiceImpl) SeedSamples() (*SeedResult, error) {
	samples := model.SampleEntries(s.now())
	merged, err := s.Merge(samples)
	if err != nil {
		return nil, err
	}
	return &SeedResult{Added: len(samples), Total: len(merged)}, nil
}

// Clear 清空排行榜。
func (s *rankServiceImpl) Clear() error {
	if err := s.rankingRepo.Save(model.Ranking{}); err != nil {
		return errors.Wrap(err, "clear ranking")
	}
	return nil
}
