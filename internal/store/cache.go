package store

import (
	"context"
	"database/sql"
	"time"

	"github.com/rotisserie/eris"
	_ "modernc.org/sqlite"
)

// PageCache caches scraped page markdown by URL with a TTL, so re-runs
// against the same leads don't re-fetch unchanged sites.
type PageCache struct {
	db  *sql.DB
	ttl time.Duration
}

const cacheMigration = `
CREATE TABLE IF NOT EXISTS page_cache (
	url        TEXT PRIMARY KEY,
	markdown   TEXT NOT NULL,
	fetched_at DATETIME NOT NULL DEFAULT (datetime('now')),
	expires_at DATETIME NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_page_cache_expires_at ON page_cache(expires_at);
`

// OpenPageCache opens (and migrates) a SQLite page cache at the given path.
func OpenPageCache(path string, ttl time.Duration) (*PageCache, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, eris.Wrap(err, "cache: open")
	}
	for _, pragma := range []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA busy_timeout=5000",
		"PRAGMA synchronous=NORMAL",
	} {
		if _, err := db.Exec(pragma); err != nil {
			db.Close() //nolint:errcheck
			return nil, eris.Wrapf(err, "cache: exec %s", pragma)
		}
	}
	if _, err := db.Exec(cacheMigration); err != nil {
		db.Close() //nolint:errcheck
		return nil, eris.Wrap(err, "cache: migrate")
	}
	return &PageCache{db: db, ttl: ttl}, nil
}

// Get returns the cached markdown for a URL. Misses, expired entries, and
// lookup errors all report !ok.
func (c *PageCache) Get(ctx context.Context, url string) (markdown string, ok bool) {
	err := c.db.QueryRowContext(ctx,
		`SELECT markdown FROM page_cache WHERE url = ? AND expires_at > datetime('now')`,
		url,
	).Scan(&markdown)
	if err != nil {
		return "", false
	}
	return markdown, true
}

// Set stores markdown for a URL, replacing any previous entry.
func (c *PageCache) Set(ctx context.Context, url, markdown string) error {
	expires := time.Now().UTC().Add(c.ttl)
	_, err := c.db.ExecContext(ctx,
		`INSERT INTO page_cache (url, markdown, fetched_at, expires_at)
		 VALUES (?, ?, datetime('now'), ?)
		 ON CONFLICT(url) DO UPDATE SET
			markdown = excluded.markdown,
			fetched_at = excluded.fetched_at,
			expires_at = excluded.expires_at`,
		url, markdown, expires.Format("2006-01-02 15:04:05"),
	)
	return eris.Wrap(err, "cache: set")
}

// DeleteExpired removes expired entries and returns how many were deleted.
func (c *PageCache) DeleteExpired(ctx context.Context) (int, error) {
	res, err := c.db.ExecContext(ctx, `DELETE FROM page_cache WHERE expires_at <= datetime('now')`)
	if err != nil {
		return 0, eris.Wrap(err, "cache: delete expired")
	}
	n, err := res.RowsAffected()
	return int(n), eris.Wrap(err, "cache: rows affected")
}

// Close closes the underlying database.
func (c *PageCache) Close() error {
	return c.db.Close()
}
