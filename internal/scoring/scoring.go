// Package scoring derives speed and accuracy metrics from match results.
package scoring

import (
	"math"

	"github.com/hctsai/dazi/internal/model"
)

// wordLength is the classic "5 characters = 1 word" convention for
// word-delimited text.
const wordLength = 5

// WPM computes words per minute. Ideographic text counts each correct
// character as one word; word-delimited text divides by wordLength.
// Zero elapsed time yields zero, not an error.
func WPM(correctChars int, elapsedMs int64, lang model.Lang) int {
	if elapsedMs == 0 {
		return 0
	}
	minutes := float64(elapsedMs) / 60000.0
	chars := float64(correctChars)
	if lang == model.LangZH {
		return int(math.Round(chars / minutes))
	}
	return int(math.Round(chars / wordLength / minutes))
}

// Accuracy computes the percentage of the full target that was typed
// correctly. An untyped tail counts against the player. An empty target
// is vacuously 100% accurate.
func Accuracy(targetLength, correctChars int) int {
	if targetLength == 0 {
		return 100
	}
	return int(math.Round(float64(correctChars) / float64(targetLength) * 100))
}

// Score is the composite ranking metric. The product rewards speed and
// precision together, so neither axis alone can game the leaderboard.
func Score(wpm, accuracy int) int {
	return wpm * accuracy
}

// Compute bundles the three metrics for a finished session.
func Compute(correctChars, targetLength int, elapsedMs int64, lang model.Lang) model.ScoreResult {
	wpm := WPM(correctChars, elapsedMs, lang)
	acc := Accuracy(targetLength, correctChars)
	return model.ScoreResult{WPM: wpm, Accuracy: acc, Score: Score(wpm, acc)}
}
