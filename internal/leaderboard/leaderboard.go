// Package leaderboard maintains ranked best-session lists per language.
package leaderboard

import (
	"context"
	"fmt"
	"os"
	"sort"

	"github.com/hctsai/dazi/internal/model"
)

// Size is the number of entries kept per language board.
const Size = 5

// Persister stores a language's board as a whole. The list is always
// replaced atomically, never mutated entry by entry.
type Persister interface {
	Load(ctx context.Context, lang model.Lang) ([]model.Entry, error)
	Replace(ctx context.Context, lang model.Lang, entries []model.Entry) error
}

// Board ranks submitted sessions against the persisted top list.
type Board struct {
	persist Persister
}

// New returns a Board backed by the given persister.
func New(p Persister) *Board {
	return &Board{persist: p}
}

// Submit ranks the entry against the stored list, truncates to Size, and
// persists the result. Persistence failures are logged and swallowed:
// the returned ranking is authoritative for the current session either way.
func (b *Board) Submit(ctx context.Context, lang model.Lang, entry model.Entry) model.SubmitResult {
	entries, err := b.persist.Load(ctx, lang)
	if err != nil {
		logErrf("failed to load leaderboard: %v\n", err)
		entries = nil
	}

	isNewRecord := len(entries) == 0 || entry.Score > entries[0].Score

	entries = append(entries, entry)
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Score > entries[j].Score
	})

	currentRank := 0
	for i := len(entries) - 1; i >= 0; i-- {
		if entries[i] == entry {
			currentRank = i + 1
			break
		}
	}

	if len(entries) > Size {
		entries = entries[:Size]
	}

	if err := b.persist.Replace(ctx, lang, entries); err != nil {
		logErrf("failed to save leaderboard: %v\n", err)
	}

	return model.SubmitResult{
		IsNewRecord: isNewRecord,
		IsTopFive:   currentRank <= Size,
		CurrentRank: currentRank,
	}
}

// Top returns the stored board for display. A load failure degrades to
// an empty board.
func (b *Board) Top(ctx context.Context, lang model.Lang) []model.Entry {
	entries, err := b.persist.Load(ctx, lang)
	if err != nil {
		logErrf("failed to load leaderboard: %v\n", err)
		return nil
	}
	return entries
}

func logErrf(format string, args ...any) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		// Best-effort logging to stderr.
		_ = err
	}
}
