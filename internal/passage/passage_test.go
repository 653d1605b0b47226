package passage

import (
	"math/rand"
	"testing"

	"github.com/hctsai/dazi/internal/model"
)

func TestPickEmptyPool(t *testing.T) {
	picker := NewPicker()
	if _, err := picker.Pick(nil); err != ErrNoPassage {
		t.Fatalf("expected ErrNoPassage, got %v", err)
	}
}

func TestPickSingleEntryAlwaysRepeats(t *testing.T) {
	picker := NewPicker()
	pool := []string{"only one"}
	for i := 0; i < 10; i++ {
		got, err := picker.Pick(pool)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != "only one" {
			t.Fatalf("expected the single entry, got %q", got)
		}
	}
}

func TestPickAvoidsImmediateRepeat(t *testing.T) {
	picker := &Picker{rnd: rand.New(rand.NewSource(1))}
	pool := []string{"alpha", "beta"}
	prev, err := picker.Pick(pool)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// With two entries the retry loop should flip the draw every time.
	for i := 0; i < 50; i++ {
		got, err := picker.Pick(pool)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got == prev {
			t.Fatalf("iteration %d: immediate repeat %q", i, got)
		}
		prev = got
	}
}

func TestLibraryStartsWithFallbacks(t *testing.T) {
	lib := NewLibrary()
	for _, lang := range []model.Lang{model.LangZH, model.LangEN} {
		if len(lib.Sentences(lang)) == 0 {
			t.Fatalf("expected fallback sentences for %s", lang)
		}
		if len(lib.Articles(lang)) == 0 {
			t.Fatalf("expected fallback articles for %s", lang)
		}
	}
}

func TestLibraryIgnoresEmptyReplacement(t *testing.T) {
	lib := NewLibrary()
	before := len(lib.Sentences(model.LangEN))
	lib.SetSentences(model.LangEN, nil)
	if got := len(lib.Sentences(model.LangEN)); got != before {
		t.Fatalf("empty replacement must be ignored, pool went %d -> %d", before, got)
	}
	lib.SetSentences(model.LangEN, []string{"fresh headline about technology"})
	if got := len(lib.Sentences(model.LangEN)); got != 1 {
		t.Fatalf("expected replaced pool of 1, got %d", got)
	}
}

func TestCleanTitle(t *testing.T) {
	cases := []struct {
		in   string
		want string
		ok   bool
	}{
		{"Global markets rally on rate cut hopes - Reuters", "Global markets rally on rate cut hopes", true},
		{"  short - CNN", "", false},
		{"科技公司發表全新人工智慧模型 - 中央社", "科技公司發表全新人工智慧模型", true},
		{"tiny", "", false},
	}
	for _, tc := range cases {
		got, ok := CleanTitle(tc.in)
		if ok != tc.ok || got != tc.want {
			t.Fatalf("CleanTitle(%q) = %q, %v; want %q, %v", tc.in, got, ok, tc.want, tc.ok)
		}
	}
}
