package scoring

import (
	"testing"

	"github.com/hctsai/dazi/internal/model"
)

func TestWPMIdeographic(t *testing.T) {
	if got := WPM(30, 60000, model.LangZH); got != 30 {
		t.Fatalf("expected 30 WPM, got %d", got)
	}
}

func TestWPMWordBased(t *testing.T) {
	if got := WPM(50, 60000, model.LangEN); got != 10 {
		t.Fatalf("expected 10 WPM, got %d", got)
	}
	// Half a minute doubles the rate.
	if got := WPM(50, 30000, model.LangEN); got != 20 {
		t.Fatalf("expected 20 WPM, got %d", got)
	}
}

func TestWPMZeroElapsed(t *testing.T) {
	for _, chars := range []int{0, 1, 500} {
		if got := WPM(chars, 0, model.LangZH); got != 0 {
			t.Fatalf("zero elapsed must yield 0, got %d for %d chars", got, chars)
		}
	}
}

func TestAccuracyAgainstFullTarget(t *testing.T) {
	if got := Accuracy(30, 30); got != 100 {
		t.Fatalf("expected 100, got %d", got)
	}
	if got := Accuracy(30, 15); got != 50 {
		t.Fatalf("expected 50, got %d", got)
	}
	// Unfinished sessions are penalized against the whole passage.
	if got := Accuracy(100, 3); got != 3 {
		t.Fatalf("expected 3, got %d", got)
	}
}

func TestAccuracyEmptyTarget(t *testing.T) {
	if got := Accuracy(0, 0); got != 100 {
		t.Fatalf("empty target is vacuously accurate, got %d", got)
	}
}

func TestComputeCompositeScore(t *testing.T) {
	res := Compute(30, 30, 60000, model.LangZH)
	if res.WPM != 30 || res.Accuracy != 100 || res.Score != 3000 {
		t.Fatalf("unexpected result: %+v", res)
	}
}
