package passage

import (
	"context"
	"encoding/json"
	"encoding/xml"
	"fmt"
	"net/http"
	"os"
	"strings"

	"github.com/hctsai/dazi/internal/model"
)

// Google News RSS feeds per language.
var rssURLs = map[model.Lang]string{
	model.LangZH: "https://news.google.com/rss?hl=zh-TW&gl=TW&ceid=TW:zh-Hant",
	model.LangEN: "https://news.google.com/rss?hl=en&gl=US&ceid=US:en",
}

const (
	// DataVersion invalidates cached headlines when the cleanup rules change.
	DataVersion = "3.0"
	// newsCount caps how many headlines are kept per language.
	newsCount = 20
	// minTitleRunes drops headlines too short to be worth typing.
	minTitleRunes = 10
)

type rssFeed struct {
	Channel struct {
		Items []struct {
			Title string `xml:"title"`
		} `xml:"item"`
	} `xml:"channel"`
}

// Fetcher downloads news headlines to use as typing passages.
type Fetcher struct {
	client *http.Client
}

// NewFetcher returns a Fetcher using the given client, or the default
// client when nil.
func NewFetcher(client *http.Client) *Fetcher {
	if client == nil {
		client = http.DefaultClient
	}
	return &Fetcher{client: client}
}

// FetchTitles downloads and cleans up to newsCount headlines for a language.
func (f *Fetcher) FetchTitles(ctx context.Context, lang model.Lang) ([]string, error) {
	url, ok := rssURLs[lang]
	if !ok {
		return nil, fmt.Errorf("no feed for language %q", lang)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch feed: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected feed status: %s", resp.Status)
	}

	var feed rssFeed
	if err := xml.NewDecoder(resp.Body).Decode(&feed); err != nil {
		return nil, fmt.Errorf("failed to decode feed: %w", err)
	}

	titles := make([]string, 0, newsCount)
	for _, item := range feed.Channel.Items {
		if len(titles) >= newsCount {
			break
		}
		if title, ok := CleanTitle(item.Title); ok {
			titles = append(titles, title)
		}
	}
	return titles, nil
}

// CleanTitle strips the trailing " - Source" suffix and rejects titles
// shorter than minTitleRunes.
func CleanTitle(title string) (string, bool) {
	cleaned := strings.TrimSpace(strings.SplitN(title, " - ", 2)[0])
	if len([]rune(cleaned)) < minTitleRunes {
		return "", false
	}
	return cleaned, true
}

// DailyNews mirrors the optional daily_news.json file produced by the
// companion fetch tooling.
type DailyNews struct {
	Date       string      `json:"date"`
	ZH         []string    `json:"zh"`
	EN         []string    `json:"en"`
	ArticlesZH []dailyItem `json:"articles_zh"`
	ArticlesEN []dailyItem `json:"articles_en"`
}

type dailyItem struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// LoadDailyFile reads daily_news.json and applies it to the library when
// the file's date matches today. A missing file is not an error.
func LoadDailyFile(path, today string, lib *Library) (bool, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, fmt.Errorf("failed to read daily news: %w", err)
	}
	var daily DailyNews
	if err := json.Unmarshal(data, &daily); err != nil {
		return false, fmt.Errorf("failed to decode daily news: %w", err)
	}
	if daily.Date != today {
		return false, nil
	}
	lib.SetSentences(model.LangZH, daily.ZH)
	lib.SetSentences(model.LangEN, daily.EN)
	lib.SetArticles(model.LangZH, toArticles(daily.ArticlesZH))
	lib.SetArticles(model.LangEN, toArticles(daily.ArticlesEN))
	return true, nil
}

func toArticles(items []dailyItem) []model.Article {
	out := make([]model.Article, 0, len(items))
	for _, item := range items {
		if item.Content == "" {
			continue
		}
		out = append(out, model.Article{Title: item.Title, Content: item.Content})
	}
	return out
}
