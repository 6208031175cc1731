package persistence

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"ranking/internal/domain/model"
)

func newTestRepository(t *testing.T) (string, *rankingRepositoryImpl) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "ranking.json")
	repo, err := NewRankingRepository(path)
	if err != nil {
		t.Fatalf("NewRankingRepository error: %v", err)
	}
	return path, repo.(*rankingRepositoryImpl)
}

func TestLoadMissingFileReturnsEmpty(t *testing.T) {
	_, repo := newTestRepository(t)

	r, err := repo.Load()
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if r == nil || len(r) != 0 {
		t.Fatalf("expected empty ranking, got=%#v", r)
	}
}

func TestLoadCorruptFileReturnsEmpty(t *testing.T) {
	cases := []string{"", "{not json", `{"name":"a"}`, "[1, 2"}

	for _, content := range cases {
		path, repo := newTestRepository(t)
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatalf("write fixture: %v", err)
		}

		r, err := repo.Load()
		if err != nil {
			t.Fatalf("Load(%q) error: %v", content, err)
		}
		if len(r) != 0 {
			t.Fatalf("Load(%q): expected empty ranking, got=%+v", content, r)
		}
	}
}

// 读取失败但不是文件不存在或内容损坏时返回错误
func TestLoadUnreadablePathReturnsError(t *testing.T) {
	path, repo := newTestRepository(t)
	if err := os.Mkdir(path, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}

	if _, err := repo.Load(); err == nil {
		t.Fatalf("expected error when ranking path is a directory")
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	_, repo := newTestRepository(t)
	want := model.Merge(nil, model.Ranking{
		{Name: "Ninja456", Score: 12350, Level: 6, Date: "2025-06-01T12:34:56.000000"},
		{Name: "Mestre789", Score: 18900, Level: 10, Date: "2025-06-01T12:34:56.000000"},
		{Name: "Zoë", Score: 1, Level: 1, Date: "2025-06-02T00:00:00Z"},
	})

	if err := repo.Save(want); err != nil {
		t.Fatalf("Save error: %v", err)
	}
	got, err := repo.Load()
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("round trip mismatch: got=%+v want=%+v", got, want)
	}
}

// 保存是整体覆盖，不是追加
func TestSaveReplacesFile(t *testing.T) {
	path, repo := newTestRepository(t)

	if err := repo.Save(model.Ranking{{Name: "old", Score: 1, Date: "d"}}); err != nil {
		t.Fatalf("Save error: %v", err)
	}
	if err := repo.Save(model.Ranking{}); err != nil {
		t.Fatalf("Save error: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if got := strings.TrimSpace(string(data)); got != "[]" {
		t.Fatalf("file content: got=%q want=%q", got, "[]")
	}
	if _, err := os.Stat(path + ".tmp"); !os.IsNotExist(err) {
		t.Fatalf("temporary file left behind: %v", err)
	}

	r, err := repo.Load()
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if len(r) != 0 {
		t.Fatalf("expected empty ranking after clear, got=%+v", r)
	}
}

func TestNewRankingRepositoryCreatesParentDir(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data", "nested", "ranking.json")
	repo, err := NewRankingRepository(path)
	if err != nil {
		t.Fatalf("NewRankingRepository error: %v", err)
	}
	if err := repo.Save(nil); err != nil {
		t.Fatalf("Save error: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("ranking file not created: %v", err)
	}
}
