package repository

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/matryer/is"
)

func TestSQLiteCacheRoundtrip(t *testing.T) {
	is := is.New(t)

	cache, err := NewSQLiteCache(filepath.Join(t.TempDir(), "cache.db"), time.Hour)
	is.NoErr(err)
	defer cache.Close()

	ctx := context.Background()

	_, _, found := cache.Get(ctx, "http://repo.example.com/items/1")
	is.True(!found)

	cache.Put(ctx, "http://repo.example.com/items/1", []byte("some triples"), "application/n-triples")

	body, contentType, found := cache.Get(ctx, "http://repo.example.com/items/1")
	is.True(found)
	is.Equal(string(body), "some triples")
	is.Equal(contentType, "application/n-triples")
}

func TestSQLiteCacheExpiry(t *testing.T) {
	is := is.New(t)

	cache, err := NewSQLiteCache(filepath.Join(t.TempDir(), "cache.db"), -time.Second)
	is.NoErr(err)
	defer cache.Close()

	ctx := context.Background()
	cache.Put(ctx, "http://repo.example.com/items/1", []byte("some triples"), "application/n-triples")

	_, _, found := cache.Get(ctx, "http://repo.example.com/items/1")
	is.True(!found)
}
