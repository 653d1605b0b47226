package passage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/hctsai/dazi/internal/model"
)

func TestLoadDailyFileAppliesMatchingDate(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "daily_news.json")
	payload := `{
		"date": "2025-03-01",
		"zh": ["中央銀行宣布維持利率不變以穩定經濟"],
		"en": ["Central bank holds interest rates steady amid uncertainty"],
		"articles_zh": [{"title": "標題", "content": "這是一篇完整的文章內容，用於文章模式的打字練習。"}],
		"articles_en": [{"title": "Title", "content": "A full article body used for article practice."}]
	}`
	if err := os.WriteFile(path, []byte(payload), 0o644); err != nil {
		t.Fatalf("failed to write fixture: %v", err)
	}

	lib := NewLibrary()
	applied, err := LoadDailyFile(path, "2025-03-01", lib)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !applied {
		t.Fatalf("expected file to apply")
	}
	if got := lib.Sentences(model.LangZH); len(got) != 1 {
		t.Fatalf("expected 1 zh sentence, got %d", len(got))
	}
	if got := lib.Articles(model.LangEN); len(got) != 1 || got[0].Title != "Title" {
		t.Fatalf("unexpected en articles: %v", got)
	}
}

func TestLoadDailyFileStaleDateIgnored(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "daily_news.json")
	if err := os.WriteFile(path, []byte(`{"date": "2020-01-01", "zh": ["舊的句子不應該被載入進來"], "en": []}`), 0o644); err != nil {
		t.Fatalf("failed to write fixture: %v", err)
	}
	lib := NewLibrary()
	applied, err := LoadDailyFile(path, "2025-03-01", lib)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if applied {
		t.Fatalf("stale file must not apply")
	}
}

func TestLoadDailyFileMissingIsNotAnError(t *testing.T) {
	lib := NewLibrary()
	applied, err := LoadDailyFile(filepath.Join(t.TempDir(), "absent.json"), "2025-03-01", lib)
	if err != nil || applied {
		t.Fatalf("missing file: applied=%v err=%v", applied, err)
	}
}
