// Package session orchestrates one typing session from first keystroke
// to leaderboard submission.
package session

import (
	"context"
	"time"

	"github.com/hctsai/dazi/internal/codegen"
	"github.com/hctsai/dazi/internal/match"
	"github.com/hctsai/dazi/internal/model"
	"github.com/hctsai/dazi/internal/scoring"
)

// State tracks the session lifecycle.
type State int

// Session states.
const (
	Idle State = iota
	Active
	Complete
)

// Submitter ranks a finished session, normally the leaderboard.
type Submitter interface {
	Submit(ctx context.Context, lang model.Lang, entry model.Entry) model.SubmitResult
}

// KeyOutcome reports what a code-drill keystroke did.
type KeyOutcome struct {
	Advanced bool
	Rejected bool
	Finished bool
}

// Controller owns all mutable session state. The clock starts lazily on
// the first keystroke so staring at the passage costs nothing.
type Controller struct {
	now   func() time.Time
	board Submitter
	mode  model.Mode

	state     State
	passage   []rune
	input     []rune
	started   bool
	startedAt time.Time
	errors    int
}

// New returns an idle Controller for the given mode.
func New(board Submitter, mode model.Mode) *Controller {
	return &Controller{now: time.Now, board: board, mode: mode}
}

// Mode returns the active practice mode.
func (c *Controller) Mode() model.Mode { return c.mode }

// SetMode switches the practice mode. The current session is discarded;
// callers start a new one with a freshly selected passage.
func (c *Controller) SetMode(mode model.Mode) {
	c.mode = mode
	c.state = Idle
}

// State returns the lifecycle state.
func (c *Controller) State() State { return c.state }

// Passage returns the session's target text.
func (c *Controller) Passage() []rune { return c.passage }

// Input returns the characters typed so far.
func (c *Controller) Input() []rune { return c.input }

// Errors returns the live error count.
func (c *Controller) Errors() int { return c.errors }

// Start begins a session over the passage. Valid from Idle or Complete.
func (c *Controller) Start(passage string) {
	c.passage = []rune(passage)
	c.input = nil
	c.started = false
	c.startedAt = time.Time{}
	c.errors = 0
	c.state = Active
}

// SetInput replaces the input buffer with the raw field contents, as
// free-text modes do, and reclassifies the passage. Ignored unless Active.
func (c *Controller) SetInput(text string) match.Result {
	if c.state != Active {
		return match.Result{}
	}
	c.input = []rune(text)
	if !c.started && len(c.input) > 0 {
		c.started = true
		c.startedAt = c.now()
	}
	res := match.Match(c.passage, c.input, match.CountInPlace)
	c.errors = res.Errors
	return res
}

// LeadingRun returns the leading-correct-run count used to decide when
// the encoding hint advances.
func (c *Controller) LeadingRun() int {
	return match.LeadingRun(c.passage, c.input)
}

// CodeKey handles one drill keystroke. A correct key appends the target
// symbol and advances; a wrong mapped key counts an error without
// advancing; unmapped keys do nothing.
func (c *Controller) CodeKey(key rune, alphabet codegen.Alphabet) KeyOutcome {
	if c.state != Active {
		return KeyOutcome{}
	}
	c.startClock()
	cursor := len(c.input)
	if cursor >= len(c.passage) {
		return KeyOutcome{Finished: true}
	}
	symbol, ok := alphabet.SymbolForKey(key)
	if !ok {
		return KeyOutcome{}
	}
	expected := c.passage[cursor]
	if symbol != expected {
		c.errors++
		return KeyOutcome{Rejected: true}
	}
	c.input = append(c.input, expected)
	return KeyOutcome{Advanced: true, Finished: len(c.input) >= len(c.passage)}
}

// Backspace retracts the drill cursor by one position. Free-text modes
// never call this; their input field handles deletion itself.
func (c *Controller) Backspace() {
	if c.state != Active || len(c.input) == 0 {
		return
	}
	c.startClock()
	c.input = c.input[:len(c.input)-1]
}

// InputFull reports whether the input has reached the passage length.
func (c *Controller) InputFull() bool {
	return len(c.passage) > 0 && len(c.input) >= len(c.passage)
}

// CanFinishWithEnter reports whether Enter may end the session: the
// input is full and its final character is correct.
func (c *Controller) CanFinishWithEnter() bool {
	if !c.InputFull() {
		return false
	}
	last := len(c.passage) - 1
	return c.input[last] == c.passage[last]
}

// Complete ends the session, computes the score over the final input,
// and submits it to the leaderboard. Valid only while Active.
func (c *Controller) Complete(ctx context.Context) (model.Outcome, bool) {
	if c.state != Active {
		return model.Outcome{}, false
	}
	c.state = Complete

	var elapsed int64
	if c.started {
		elapsed = c.now().Sub(c.startedAt).Milliseconds()
	}
	final := match.Match(c.passage, c.input, match.CountInPlace)
	score := scoring.Compute(final.Correct, len(c.passage), elapsed, c.mode.Lang)

	entry := model.Entry{
		WPM:       score.WPM,
		Accuracy:  score.Accuracy,
		Score:     score.Score,
		Timestamp: c.now(),
	}
	submit := c.board.Submit(ctx, c.mode.Lang, entry)
	return model.Outcome{ScoreResult: score, SubmitResult: submit}, true
}

func (c *Controller) startClock() {
	if !c.started {
		c.started = true
		c.startedAt = c.now()
	}
}
