package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
	_ "modernc.org/sqlite"
)

// ReadCache caches fetched RDF descriptions between requests. It must be
// safe for concurrent use.
type ReadCache interface {
	Get(ctx context.Context, uri string) (body []byte, contentType string, found bool)
	Put(ctx context.Context, uri string, body []byte, contentType string)
}

// SQLiteCache is a ReadCache backed by a local SQLite database with a
// fixed expiry per entry.
type SQLiteCache struct {
	db  *sql.DB
	ttl time.Duration
}

const cacheSchema = `
CREATE TABLE IF NOT EXISTS responses (
	uri TEXT PRIMARY KEY,
	content_type TEXT NOT NULL,
	body BLOB NOT NULL,
	expires_at INTEGER NOT NULL
);`

// NewSQLiteCache opens (creating if needed) the cache database at path.
// Entries expire ttl after they are stored.
func NewSQLiteCache(path string, ttl time.Duration) (*SQLiteCache, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}

	if _, err := db.Exec(cacheSchema); err != nil {
		db.Close()
		return nil, err
	}

	return &SQLiteCache{db: db, ttl: ttl}, nil
}

// Close closes the underlying database.
func (c *SQLiteCache) Close() error {
	return c.db.Close()
}

// Get returns the cached response for uri if it exists and has not
// expired.
func (c *SQLiteCache) Get(ctx context.Context, uri string) ([]byte, string, bool) {
	var body []byte
	var contentType string
	var expiresAt int64

	row := c.db.QueryRowContext(ctx,
		`SELECT body, content_type, expires_at FROM responses WHERE uri = ?`, uri,
	)
	if err := row.Scan(&body, &contentType, &expiresAt); err != nil {
		return nil, "", false
	}

	if time.Now().Unix() >= expiresAt {
		c.db.ExecContext(ctx, `DELETE FROM responses WHERE uri = ?`, uri)
		return nil, "", false
	}

	return body, contentType, true
}

// Put stores the response for uri, replacing any previous entry.
func (c *SQLiteCache) Put(ctx context.Context, uri string, body []byte, contentType string) {
	_, err := c.db.ExecContext(ctx,
		`INSERT OR REPLACE INTO responses (uri, content_type, body, expires_at) VALUES (?, ?, ?, ?)`,
		uri, contentType, body, time.Now().Add(c.ttl).Unix(),
	)
	if err != nil {
		logging.GetFromContext(ctx).Warn("failed to store response in cache", "uri", uri, "err", err.Error())
	}
}
