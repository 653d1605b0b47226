// Package passage supplies and selects target texts for sessions.
package passage

import (
	"github.com/hctsai/dazi/internal/model"
)

// Library holds the passage pools for both languages. It starts with the
// bundled fallback pools so a session can begin before any news arrives.
type Library struct {
	sentences map[model.Lang][]string
	articles  map[model.Lang][]model.Article
}

// NewLibrary returns a Library seeded with the fallback pools.
func NewLibrary() *Library {
	lib := &Library{
		sentences: map[model.Lang][]string{},
		articles:  map[model.Lang][]model.Article{},
	}
	for lang, list := range fallbackSentences {
		lib.sentences[lang] = append([]string(nil), list...)
	}
	for lang, list := range fallbackArticles {
		lib.articles[lang] = append([]model.Article(nil), list...)
	}
	return lib
}

// SetSentences replaces a language's sentence pool. Empty input keeps
// the current pool so fetched-but-empty news never degrades the game.
func (l *Library) SetSentences(lang model.Lang, sentences []string) {
	if len(sentences) == 0 {
		return
	}
	l.sentences[lang] = append([]string(nil), sentences...)
}

// SetArticles replaces a language's article pool.
func (l *Library) SetArticles(lang model.Lang, articles []model.Article) {
	if len(articles) == 0 {
		return
	}
	l.articles[lang] = append([]model.Article(nil), articles...)
}

// Sentences returns the sentence pool for a language.
func (l *Library) Sentences(lang model.Lang) []string {
	return l.sentences[lang]
}

// Articles returns the article pool for a language.
func (l *Library) Articles(lang model.Lang) []model.Article {
	return l.articles[lang]
}

// PoolSize reports how many passages the given mode can draw from.
func (l *Library) PoolSize(mode model.Mode) int {
	switch mode.Content {
	case model.ContentArticle:
		return len(l.articles[mode.Lang])
	case model.ContentSentence:
		return len(l.sentences[mode.Lang])
	}
	return 0
}
