// Package model defines shared data structures.
package model

import "time"

// Lang selects the language axis of a practice mode.
type Lang string

// Supported languages.
const (
	LangZH Lang = "zh"
	LangEN Lang = "en"
)

// Content selects the presentation axis of a practice mode.
type Content string

// Supported content kinds.
const (
	ContentSentence Content = "sentence"
	ContentArticle  Content = "article"
	ContentCode     Content = "code"
)

// Mode combines language and content kind for one practice session.
type Mode struct {
	Lang    Lang
	Content Content
}

// Config defines practice settings.
type Config struct {
	Lang        Lang
	Content     Content
	CodeType    string
	DrillLength int
	AutoHints   bool
}

// Article is a passage with a display title.
type Article struct {
	Title   string
	Content string
}

// ScoreResult captures the metrics of a completed session.
type ScoreResult struct {
	WPM      int
	Accuracy int
	Score    int
}

// Entry is one persisted leaderboard record.
type Entry struct {
	WPM       int
	Accuracy  int
	Score     int
	Timestamp time.Time
}

// SubmitResult describes how a submitted entry ranked.
type SubmitResult struct {
	IsNewRecord bool
	IsTopFive   bool
	CurrentRank int
}

// Outcome is the full session result handed to the presentation layer.
type Outcome struct {
	ScoreResult
	SubmitResult
}

// EncodingRecord holds input-method encodings for one character.
type EncodingRecord struct {
	Zhuyin   string
	Cangjie  string
	Boshiamy string
	Pinyin   string
}
