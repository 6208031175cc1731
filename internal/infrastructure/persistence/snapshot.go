package persistence

import (
	"bytes"
	"os"
	"path/filepath"

	"github.com/pkg/errors"

	"ranking/internal/domain/model"
)

// ErrCorruptSnapshot 表示排行榜文件存在但无法解析。
var ErrCorruptSnapshot = errors.New("corrupt ranking snapshot")

// Snapshotter 负责读写排行榜 JSON 文件。
type Snapshotter struct {
	filePath string
}

// NewSnapshotter 创建一个新的 Snapshotter。
func NewSnapshotter(filePath string) *Snapshotter {
	return &Snapshotter{filePath: filePath}
}

// Path 返回快照文件路径。
func (s *Snapshotter) Path() string {
	return s.filePath
}

// Save 用排行榜整体覆盖快照文件。
// 先写临时文件再重命名，避免写到一半时留下残缺的文件。
func (s *Snapshotter) Save(r model.Ranking) error {
	var buf bytes.Buffer
	if err := model.EncodeRanking(&buf, r); err != nil {
		return errors.Wrap(err, "encode ranking")
	}

	tmp := s.filePath + ".tmp"
	if err := os.WriteFile(tmp, buf.Bytes(), 0o644); err != nil {
		return errors.Wrapf(err, "write %s", tmp)
	}
	if err := os.Rename(tmp, s.filePath); err != nil {
		return errors.Wrapf(err, "rename %s", tmp)
	}
	return nil
}

// Load 从快照文件中加载排行榜。
// 文件不存在时返回 os.ErrNotExist，内容无法解析时返回 ErrCorruptSnapshot。
func (s *Snapshotter) Load() (model.Ranking, error) {
	data, err := os.ReadFile(s.filePath)
	if err != nil {
		return nil, err
	}

	r, err := model.DecodeRanking(data)
	if err != nil {
		return nil, errors.Wrapf(ErrCorruptSnapshot, "%s: %v", filepath.Base(s.filePath), err)
	}
	return r, nil
}
