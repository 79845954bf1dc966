package main

import (
	"context"
	"strconv"
	"time"

	"github.com/diwise/service-chassis/pkg/infrastructure/env"
)

type Config struct {
	RepoEndpoint  string
	RepoAuthToken string

	SolrQueryEndpoint string

	PipelinesFile string
	OpaFilePath   string

	CacheEnabled bool
	CacheFile    string
	CacheTTL     time.Duration

	VocabCacheSize int

	ServicePort string
}

func LoadConfiguration(ctx context.Context) Config {
	return Config{
		RepoEndpoint:      env.GetVariableOrDefault(ctx, "SOLRIZER_REPO_ENDPOINT", ""),
		RepoAuthToken:     env.GetVariableOrDefault(ctx, "SOLRIZER_REPO_AUTH_TOKEN", ""),
		SolrQueryEndpoint: env.GetVariableOrDefault(ctx, "SOLRIZER_SOLR_QUERY_ENDPOINT", ""),
		PipelinesFile:     env.GetVariableOrDefault(ctx, "SOLRIZER_PIPELINES_FILE", ""),
		OpaFilePath:       env.GetVariableOrDefault(ctx, "SOLRIZER_OPA_FILE", ""),
		CacheEnabled:      envBool(ctx, "SOLRIZER_CACHE_ENABLED", false),
		CacheFile:         env.GetVariableOrDefault(ctx, "SOLRIZER_CACHE_FILE", "solrizer-cache.db"),
		CacheTTL:          envDuration(ctx, "SOLRIZER_CACHE_EXPIRE_AFTER", time.Hour),
		VocabCacheSize:    envInt(ctx, "SOLRIZER_VOCAB_CACHE_SIZE", 32),
		ServicePort:       env.GetVariableOrDefault(ctx, "SERVICE_PORT", "8080"),
	}
}

func envBool(ctx context.Context, name string, def bool) bool {
	v, err := strconv.ParseBool(env.GetVariableOrDefault(ctx, name, strconv.FormatBool(def)))
	if err != nil {
		return def
	}
	return v
}

func envInt(ctx context.Context, name string, def int) int {
	v, err := strconv.Atoi(env.GetVariableOrDefault(ctx, name, strconv.Itoa(def)))
	if err != nil {
		return def
	}
	return v
}

func envDuration(ctx context.Context, name string, def time.Duration) time.Duration {
	v, err := time.ParseDuration(env.GetVariableOrDefault(ctx, name, def.String()))
	if err != nil {
		return def
	}
	return v
}
