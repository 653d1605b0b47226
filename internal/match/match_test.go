package match

import "testing"

func TestMatchMarksAndErrors(t *testing.T) {
	res := Match([]rune("abc"), []rune("abd"), CountInPlace)
	if res.Marks[0] != Correct || res.Marks[1] != Correct {
		t.Fatalf("expected first two positions correct, got %v", res.Marks)
	}
	if res.Marks[2] != Incorrect {
		t.Fatalf("expected third position incorrect, got %v", res.Marks[2])
	}
	if res.Errors != 1 {
		t.Fatalf("expected 1 error, got %d", res.Errors)
	}
	if res.Correct != 2 {
		t.Fatalf("expected 2 correct, got %d", res.Correct)
	}
}

func TestMatchEmptyInputAllPending(t *testing.T) {
	res := Match([]rune("xyz"), nil, CountInPlace)
	for i, m := range res.Marks {
		if m != Pending {
			t.Fatalf("position %d should be pending, got %v", i, m)
		}
	}
	if res.Correct != 0 || res.Errors != 0 {
		t.Fatalf("expected zero counts, got %d/%d", res.Correct, res.Errors)
	}
}

func TestMatchInputLongerThanTarget(t *testing.T) {
	res := Match([]rune("ab"), []rune("abcd"), CountInPlace)
	if len(res.Marks) != 2 {
		t.Fatalf("expected 2 marks, got %d", len(res.Marks))
	}
	if res.Correct != 2 || res.Errors != 0 {
		t.Fatalf("trailing input must be ignored, got %d/%d", res.Correct, res.Errors)
	}
}

func TestMatchCountsPartitionTypedLength(t *testing.T) {
	cases := []struct {
		target string
		input  string
	}{
		{"hello world", "hello"},
		{"hello", "hxllo"},
		{"中文輸入測試", "中文輸"},
		{"abc", ""},
		{"abc", "xyz"},
	}
	for _, tc := range cases {
		res := Match([]rune(tc.target), []rune(tc.input), CountInPlace)
		if res.Correct+res.Errors != len([]rune(tc.input)) {
			t.Fatalf("target %q input %q: correct %d + errors %d != typed %d",
				tc.target, tc.input, res.Correct, res.Errors, len([]rune(tc.input)))
		}
	}
}

func TestLeadingRunStopsAtFirstMismatch(t *testing.T) {
	target := []rune("abcdef")
	input := []rune("abXdef")
	if got := LeadingRun(target, input); got != 2 {
		t.Fatalf("expected leading run 2, got %d", got)
	}
	res := Match(target, input, CountInPlace)
	if res.Correct != 5 {
		t.Fatalf("in-place count should include self-corrected tail, got %d", res.Correct)
	}
	run := Match(target, input, CountLeadingRun)
	if run.Correct != 2 {
		t.Fatalf("leading-run count should stop at mismatch, got %d", run.Correct)
	}
	if run.Errors != 1 {
		t.Fatalf("errors are rule-independent, got %d", run.Errors)
	}
}

func TestLeadingRunFullMatch(t *testing.T) {
	if got := LeadingRun([]rune("注音"), []rune("注音")); got != 2 {
		t.Fatalf("expected 2, got %d", got)
	}
	if got := LeadingRun([]rune("注音"), []rune("注音符號")); got != 2 {
		t.Fatalf("input past target must be ignored, got %d", got)
	}
}
