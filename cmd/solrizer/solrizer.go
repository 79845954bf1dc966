package main

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"os"
	"strings"

	solrizerapp "github.com/digilib/solrizer/internal/pkg/application/solrizer"
	"github.com/digilib/solrizer/internal/pkg/infrastructure/router"
	"github.com/digilib/solrizer/internal/pkg/presentation/api"
	"github.com/digilib/solrizer/pkg/repository"
	"github.com/digilib/solrizer/pkg/solr"
	"github.com/digilib/solrizer/pkg/vocab"
	"github.com/diwise/service-chassis/pkg/infrastructure/buildinfo"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y"
)

const appName string = "solrizer"

// defaultPolicy allows all requests; deployments that need
// authorization mount their own policy file.
const defaultPolicy string = `package solrizer.authz

default allow := true
`

func main() {
	appVersion := buildinfo.SourceVersion()

	ctx, log, cleanup := o11y.Init(context.Background(), appName, appVersion, "json")
	defer cleanup()

	cfg := LoadConfiguration(ctx)

	if cfg.RepoEndpoint == "" {
		log.Error("no repository endpoint configured")
		os.Exit(1)
	}

	repoOptions := []repository.ClientOption{}
	if cfg.RepoAuthToken != "" {
		repoOptions = append(repoOptions, repository.WithAuthToken(cfg.RepoAuthToken))
	}
	if cfg.CacheEnabled {
		cache, err := repository.NewSQLiteCache(cfg.CacheFile, cfg.CacheTTL)
		if err != nil {
			log.Error("failed to open read cache", "err", err.Error())
			os.Exit(1)
		}
		defer cache.Close()
		repoOptions = append(repoOptions, repository.WithCache(cache))
	}

	repo := repository.NewClient(cfg.RepoEndpoint, repoOptions...)

	vocabs, err := vocab.NewService(cfg.VocabCacheSize)
	if err != nil {
		log.Error("failed to create vocabulary service", "err", err.Error())
		os.Exit(1)
	}

	var solrClient *solr.Client
	if cfg.SolrQueryEndpoint != "" {
		solrClient = solr.NewClient(cfg.SolrQueryEndpoint)
	} else {
		log.Info("no solr query endpoint configured, atomic updates are disabled")
	}

	pipelines, err := loadPipelines(cfg.PipelinesFile)
	if err != nil {
		log.Error("failed to load pipeline configuration", "file", cfg.PipelinesFile, "err", err.Error())
		os.Exit(1)
	}

	svc := solrizerapp.New(repo, vocabs, solrClient, *pipelines)

	policies, err := openPolicies(cfg.OpaFilePath)
	if err != nil {
		log.Error("failed to open authz policies", "file", cfg.OpaFilePath, "err", err.Error())
		os.Exit(1)
	}

	r := router.New(appName)
	if err := api.RegisterHandlers(ctx, r, policies, svc); err != nil {
		log.Error("failed to register handlers", "err", err.Error())
		os.Exit(1)
	}

	log.Info("starting to listen for connections", "port", cfg.ServicePort)

	if err := http.ListenAndServe(":"+cfg.ServicePort, r); err != nil {
		log.Error("failed to listen for connections", "err", err.Error())
		os.Exit(1)
	}
}

func loadPipelines(path string) (*solrizerapp.Config, error) {
	if path == "" {
		return &solrizerapp.Config{}, nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return solrizerapp.LoadConfiguration(f)
}

func openPolicies(path string) (io.Reader, error) {
	if path == "" {
		return strings.NewReader(defaultPolicy), nil
	}

	module, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return bytes.NewReader(module), nil
}
