package tui

import (
	"strings"
	"testing"
)

func TestBuildStyledRunesCursor(t *testing.T) {
	target := []rune("ab")
	input := []rune("a")
	cursorIndex := len(input)

	runes := buildStyledRunes(target, input, cursorIndex, -1)
	if len(runes) != 2 {
		t.Fatalf("expected 2 runes, got %d", len(runes))
	}
	if runes[0].s != correctStyle.Render("a") {
		t.Fatalf("expected correct style for first rune")
	}
	if runes[1].s != pendingStyle.Underline(true).Render("b") {
		t.Fatalf("expected underlined cursor for second rune")
	}
}

func TestBuildStyledRunesNoCursorWhenComplete(t *testing.T) {
	target := []rune("a")
	input := []rune("a")

	runes := buildStyledRunes(target, input, -1, -1)
	if len(runes) != 1 {
		t.Fatalf("expected 1 rune, got %d", len(runes))
	}
	if runes[0].s != correctStyle.Render("a") {
		t.Fatalf("expected correct style for completed rune")
	}
}

func TestBuildStyledRunesKeepsTargetOnMistype(t *testing.T) {
	target := []rune("ab")
	input := []rune("ax")

	runes := buildStyledRunes(target, input, -1, -1)
	if runes[1].s != incorrectStyle.Render("b") {
		t.Fatalf("expected incorrect style showing the target rune")
	}
}

func TestBuildStyledRunesWrongSpaceDot(t *testing.T) {
	target := []rune("a b")
	input := []rune("ax")

	runes := buildStyledRunes(target, input, 2, -1)
	if len(runes) != 3 {
		t.Fatalf("expected 3 runes, got %d", len(runes))
	}
	if runes[1].s != incorrectStyle.Render("•") {
		t.Fatalf("expected red dot for wrong space")
	}
}

func TestBuildStyledRunesFlash(t *testing.T) {
	target := []rune("日月")
	input := []rune("日")

	runes := buildStyledRunes(target, input, -1, 1)
	if runes[1].s != flashStyle.Render("月") {
		t.Fatalf("expected flash style at the flashed position")
	}
}

func TestWrapStyledRunesBreaksAtSpace(t *testing.T) {
	runes := buildStyledRunes([]rune("one two three"), nil, -1, -1)
	wrapped := wrapStyledRunes(runes, 9)
	lines := strings.Split(wrapped, "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d: %q", len(lines), wrapped)
	}
}

func TestWrapStyledRunesCJKBreaksAtWidth(t *testing.T) {
	// Double-width runes with no spaces must break at the boundary.
	runes := buildStyledRunes([]rune("一二三四"), nil, -1, -1)
	wrapped := wrapStyledRunes(runes, 4)
	lines := strings.Split(wrapped, "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d: %q", len(lines), wrapped)
	}
}

func TestWrapStyledRunesZeroWidth(t *testing.T) {
	runes := buildStyledRunes([]rune("abc"), nil, -1, -1)
	if wrapped := wrapStyledRunes(runes, 0); strings.Contains(wrapped, "\n") {
		t.Fatalf("non-positive width must not wrap")
	}
}
