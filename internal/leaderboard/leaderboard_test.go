package leaderboard

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/hctsai/dazi/internal/model"
)

type fakePersister struct {
	entries    map[model.Lang][]model.Entry
	loadErr    error
	replaceErr error
	replaced   int
}

func newFakePersister() *fakePersister {
	return &fakePersister{entries: map[model.Lang][]model.Entry{}}
}

func (f *fakePersister) Load(_ context.Context, lang model.Lang) ([]model.Entry, error) {
	if f.loadErr != nil {
		return nil, f.loadErr
	}
	out := make([]model.Entry, len(f.entries[lang]))
	copy(out, f.entries[lang])
	return out, nil
}

func (f *fakePersister) Replace(_ context.Context, lang model.Lang, entries []model.Entry) error {
	f.replaced++
	if f.replaceErr != nil {
		return f.replaceErr
	}
	out := make([]model.Entry, len(entries))
	copy(out, entries)
	f.entries[lang] = out
	return nil
}

func entryWithScore(score int, at time.Time) model.Entry {
	return model.Entry{WPM: score / 100, Accuracy: 100, Score: score, Timestamp: at}
}

func TestSubmitFirstEntryIsNewRecord(t *testing.T) {
	board := New(newFakePersister())
	res := board.Submit(context.Background(), model.LangZH, entryWithScore(500, time.Now()))
	if !res.IsNewRecord {
		t.Fatalf("first submission must be a new record")
	}
	if !res.IsTopFive || res.CurrentRank != 1 {
		t.Fatalf("unexpected result: %+v", res)
	}
}

func TestSubmitOrderingAndTruncation(t *testing.T) {
	persist := newFakePersister()
	board := New(persist)
	ctx := context.Background()
	base := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

	scores := []int{500, 800, 300, 200, 100}
	for i, s := range scores {
		board.Submit(ctx, model.LangEN, entryWithScore(s, base.Add(time.Duration(i)*time.Minute)))
	}

	res := board.Submit(ctx, model.LangEN, entryWithScore(800, base.Add(time.Hour)))
	if res.CurrentRank != 2 {
		t.Fatalf("tied entry must rank below the earlier 800: got rank %d", res.CurrentRank)
	}
	if res.IsNewRecord {
		t.Fatalf("a tie with the top score is not a new record")
	}

	stored := persist.entries[model.LangEN]
	if len(stored) != Size {
		t.Fatalf("expected %d entries after truncation, got %d", Size, len(stored))
	}
	wantScores := []int{800, 800, 500, 300, 200}
	for i, want := range wantScores {
		if stored[i].Score != want {
			t.Fatalf("position %d: expected score %d, got %d", i, want, stored[i].Score)
		}
	}
	if !stored[0].Timestamp.Before(stored[1].Timestamp) {
		t.Fatalf("stable sort must keep the earlier 800 first")
	}
}

func TestSubmitIdenticalEntryRanksAfterExisting(t *testing.T) {
	persist := newFakePersister()
	board := New(persist)
	ctx := context.Background()
	at := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

	entry := entryWithScore(600, at)
	board.Submit(ctx, model.LangZH, entry)
	res := board.Submit(ctx, model.LangZH, entry)
	if res.CurrentRank != 2 {
		t.Fatalf("resubmitting an identical entry must rank after it, got %d", res.CurrentRank)
	}
}

func TestSubmitNewRecordRequiresStrictlyGreater(t *testing.T) {
	persist := newFakePersister()
	board := New(persist)
	ctx := context.Background()

	board.Submit(ctx, model.LangZH, entryWithScore(1000, time.Now()))
	tie := board.Submit(ctx, model.LangZH, entryWithScore(1000, time.Now().Add(time.Second)))
	if tie.IsNewRecord {
		t.Fatalf("tie must not be a new record")
	}
	beat := board.Submit(ctx, model.LangZH, entryWithScore(1001, time.Now().Add(2*time.Second)))
	if !beat.IsNewRecord {
		t.Fatalf("strictly greater score must be a new record")
	}
}

func TestSubmitBoundedSizeForAnySequence(t *testing.T) {
	persist := newFakePersister()
	board := New(persist)
	ctx := context.Background()
	for i := 0; i < 20; i++ {
		board.Submit(ctx, model.LangEN, entryWithScore(i*37%900, time.Now().Add(time.Duration(i)*time.Second)))
		if got := len(persist.entries[model.LangEN]); got > Size {
			t.Fatalf("board exceeded %d entries: %d", Size, got)
		}
		stored := persist.entries[model.LangEN]
		for j := 1; j < len(stored); j++ {
			if stored[j-1].Score < stored[j].Score {
				t.Fatalf("board not sorted descending at %d: %v", j, stored)
			}
		}
	}
}

func TestSubmitSwallowsPersistenceFailure(t *testing.T) {
	persist := newFakePersister()
	persist.replaceErr = errors.New("disk full")
	board := New(persist)
	res := board.Submit(context.Background(), model.LangZH, entryWithScore(700, time.Now()))
	if res.CurrentRank != 1 || !res.IsNewRecord {
		t.Fatalf("ranking must survive a persistence failure: %+v", res)
	}
	if persist.replaced != 1 {
		t.Fatalf("expected one replace attempt, got %d", persist.replaced)
	}
}

func TestSubmitLoadFailureDegradesToEmpty(t *testing.T) {
	persist := newFakePersister()
	persist.loadErr = errors.New("corrupt db")
	board := New(persist)
	res := board.Submit(context.Background(), model.LangEN, entryWithScore(400, time.Now()))
	if !res.IsNewRecord || res.CurrentRank != 1 {
		t.Fatalf("load failure must degrade to an empty board: %+v", res)
	}
}
