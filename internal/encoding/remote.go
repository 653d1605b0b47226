package encoding

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/hctsai/dazi/internal/model"
)

// moedict serves phonetic readings for traditional Chinese characters.
const moedictURL = "https://www.moedict.tw/uni/%s.json"

type moedictResponse struct {
	Heteronyms []struct {
		Bopomofo string `json:"bopomofo"`
		Pinyin   string `json:"pinyin"`
	} `json:"heteronyms"`
}

// Remote looks characters up in the moedict online dictionary. It only
// knows phonetic forms; shape-based codes come back as NoData. Successful
// answers are written through to the cache when one is configured.
type Remote struct {
	Client *http.Client
	Cache  Cache
}

// Lookup implements Provider. Network failures degrade to a miss so a
// hint can never block typing.
func (r Remote) Lookup(ctx context.Context, char rune) (model.EncodingRecord, bool) {
	client := r.Client
	if client == nil {
		client = http.DefaultClient
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fmt.Sprintf(moedictURL, string(char)), http.NoBody)
	if err != nil {
		return model.EncodingRecord{}, false
	}
	resp, err := client.Do(req)
	if err != nil {
		logErrf("encoding lookup failed (%c): %v\n", char, err)
		return model.EncodingRecord{}, false
	}
	defer func() {
		_ = resp.Body.Close()
	}()
	if resp.StatusCode != http.StatusOK {
		return model.EncodingRecord{}, false
	}

	var payload moedictResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		logErrf("encoding lookup failed (%c): %v\n", char, err)
		return model.EncodingRecord{}, false
	}
	rec := model.EncodingRecord{Zhuyin: NoData, Pinyin: NoData, Cangjie: NoData, Boshiamy: NoData}
	if len(payload.Heteronyms) > 0 {
		if v := payload.Heteronyms[0].Bopomofo; v != "" {
			rec.Zhuyin = v
		}
		if v := payload.Heteronyms[0].Pinyin; v != "" {
			rec.Pinyin = v
		}
	}

	if r.Cache != nil {
		if err := r.Cache.PutEncoding(ctx, char, rec); err != nil {
			logErrf("failed to cache encoding (%c): %v\n", char, err)
		}
	}
	return rec, true
}
