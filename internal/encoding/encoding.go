// Package encoding resolves input-method hints for Chinese characters.
package encoding

import (
	"context"
	"fmt"
	"os"
	"unicode"

	"github.com/hctsai/dazi/internal/model"
)

// NoData marks an encoding field the dictionary does not know.
const NoData = "無資料"

// Provider answers hint lookups for a single character. Providers are
// queried in priority order; the first hit wins.
type Provider interface {
	Lookup(ctx context.Context, char rune) (model.EncodingRecord, bool)
}

// Chain queries an ordered list of providers.
type Chain struct {
	providers []Provider
}

// NewChain builds a lookup chain. Typical order: bundled table, persisted
// cache, remote dictionary.
func NewChain(providers ...Provider) *Chain {
	return &Chain{providers: providers}
}

// Lookup returns the first provider's answer for the character. Hints
// are advisory: a miss is reported, never an error.
func (c *Chain) Lookup(ctx context.Context, char rune) (model.EncodingRecord, bool) {
	for _, p := range c.providers {
		if rec, ok := p.Lookup(ctx, char); ok {
			return rec, true
		}
	}
	return model.EncodingRecord{}, false
}

// Table serves the bundled static dictionary.
type Table struct{}

// Lookup implements Provider.
func (Table) Lookup(_ context.Context, char rune) (model.EncodingRecord, bool) {
	rec, ok := staticTable[char]
	return rec, ok
}

// Cache persists remote lookups between runs.
type Cache interface {
	GetEncoding(ctx context.Context, char rune) (model.EncodingRecord, bool, error)
	PutEncoding(ctx context.Context, char rune, rec model.EncodingRecord) error
}

// CacheProvider adapts a Cache to the Provider interface. Read failures
// degrade to a miss.
type CacheProvider struct {
	Cache Cache
}

// Lookup implements Provider.
func (p CacheProvider) Lookup(ctx context.Context, char rune) (model.EncodingRecord, bool) {
	rec, ok, err := p.Cache.GetEncoding(ctx, char)
	if err != nil {
		logErrf("failed to read encoding cache: %v\n", err)
		return model.EncodingRecord{}, false
	}
	return rec, ok
}

// IsChinese reports whether the rune is a CJK ideograph.
func IsChinese(r rune) bool {
	return unicode.Is(unicode.Han, r)
}

func logErrf(format string, args ...any) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		// Best-effort logging to stderr.
		_ = err
	}
}
