// Package store handles SQLite persistence.
package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	"github.com/hctsai/dazi/internal/model"

	_ "modernc.org/sqlite" // SQLite driver.
)

// Store wraps SQLite access for leaderboards and caches.
type Store struct {
	db *sql.DB
}

// Open opens or creates the SQLite database and applies migrations.
func Open(path string) (*Store, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		if cerr := db.Close(); cerr != nil {
			// Best-effort close on migration failure.
			_ = cerr
		}
		return nil, err
	}
	return store, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS leaderboard (
			id INTEGER PRIMARY KEY,
			lang TEXT NOT NULL,
			wpm INTEGER NOT NULL,
			accuracy INTEGER NOT NULL,
			score INTEGER NOT NULL,
			created_at TEXT NOT NULL
		);`,
		`CREATE INDEX IF NOT EXISTS idx_leaderboard_lang ON leaderboard(lang);`,
		`CREATE TABLE IF NOT EXISTS encoding_cache (
			char TEXT PRIMARY KEY,
			zhuyin TEXT NOT NULL,
			cangjie TEXT NOT NULL,
			boshiamy TEXT NOT NULL,
			pinyin TEXT NOT NULL
		);`,
		`CREATE TABLE IF NOT EXISTS news_cache (
			lang TEXT PRIMARY KEY,
			fetched_on TEXT NOT NULL,
			version TEXT NOT NULL,
			titles TEXT NOT NULL
		);`,
	}
	for _, stmt := range stmts {
		if _, err := s.db.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}

// Load returns a language's leaderboard in rank order. Ties keep their
// stored order because rank order is re-inserted with ascending ids.
func (s *Store) Load(ctx context.Context, lang model.Lang) ([]model.Entry, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT wpm, accuracy, score, created_at FROM leaderboard
		 WHERE lang = ? ORDER BY score DESC, id ASC`, string(lang))
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil {
			// Best-effort rows close.
			_ = cerr
		}
	}()

	var entries []model.Entry
	for rows.Next() {
		var entry model.Entry
		var createdAt string
		if err := rows.Scan(&entry.WPM, &entry.Accuracy, &entry.Score, &createdAt); err != nil {
			return nil, err
		}
		parsed, err := time.Parse(time.RFC3339Nano, createdAt)
		if err != nil {
			return nil, err
		}
		entry.Timestamp = parsed
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return entries, nil
}

// Replace swaps a language's leaderboard for the given ranked list in a
// single transaction.
func (s *Store) Replace(ctx context.Context, lang model.Lang, entries []model.Entry) (err error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			if rerr := tx.Rollback(); rerr != nil {
				// Best-effort rollback.
				_ = rerr
			}
		}
	}()

	if _, err = tx.ExecContext(ctx, `DELETE FROM leaderboard WHERE lang = ?`, string(lang)); err != nil {
		return err
	}
	for _, entry := range entries {
		if _, err = tx.ExecContext(ctx,
			`INSERT INTO leaderboard (lang, wpm, accuracy, score, created_at) VALUES (?, ?, ?, ?, ?)`,
			string(lang), entry.WPM, entry.Accuracy, entry.Score,
			entry.Timestamp.Format(time.RFC3339Nano),
		); err != nil {
			return err
		}
	}
	return tx.Commit()
}

// GetEncoding returns a cached encoding record for the character.
func (s *Store) GetEncoding(ctx context.Context, char rune) (model.EncodingRecord, bool, error) {
	var rec model.EncodingRecord
	err := s.db.QueryRowContext(ctx,
		`SELECT zhuyin, cangjie, boshiamy, pinyin FROM encoding_cache WHERE char = ?`,
		string(char)).Scan(&rec.Zhuyin, &rec.Cangjie, &rec.Boshiamy, &rec.Pinyin)
	if err == sql.ErrNoRows {
		return model.EncodingRecord{}, false, nil
	}
	if err != nil {
		return model.EncodingRecord{}, false, err
	}
	return rec, true, nil
}

// PutEncoding stores an encoding record for the character.
func (s *Store) PutEncoding(ctx context.Context, char rune, rec model.EncodingRecord) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT OR REPLACE INTO encoding_cache (char, zhuyin, cangjie, boshiamy, pinyin)
		 VALUES (?, ?, ?, ?, ?)`,
		string(char), rec.Zhuyin, rec.Cangjie, rec.Boshiamy, rec.Pinyin)
	return err
}

// SaveNews caches the day's headlines for a language.
func (s *Store) SaveNews(ctx context.Context, lang model.Lang, fetchedOn, version string, titles []string) error {
	payload, err := json.Marshal(titles)
	if err != nil {
		return err
	}
	_, err = s.db.ExecContext(ctx,
		`INSERT OR REPLACE INTO news_cache (lang, fetched_on, version, titles) VALUES (?, ?, ?, ?)`,
		string(lang), fetchedOn, version, string(payload))
	return err
}

// LoadNews returns cached headlines if they match the date and data
// version; a mismatch or absence yields nil without error.
func (s *Store) LoadNews(ctx context.Context, lang model.Lang, fetchedOn, version string) ([]string, error) {
	var gotDate, gotVersion, payload string
	err := s.db.QueryRowContext(ctx,
		`SELECT fetched_on, version, titles FROM news_cache WHERE lang = ?`,
		string(lang)).Scan(&gotDate, &gotVersion, &payload)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if gotDate != fetchedOn || gotVersion != version {
		return nil, nil
	}
	var titles []string
	if err := json.Unmarshal([]byte(payload), &titles); err != nil {
		return nil, err
	}
	return titles, nil
}
