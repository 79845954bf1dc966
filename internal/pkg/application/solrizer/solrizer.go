// Package solrizer wires the indexing pipeline together: it reads a
// resource from the repository, picks the pipeline configured for its
// content model and runs the indexers to produce the index document.
package solrizer

import (
	"context"
	"errors"

	"github.com/digilib/solrizer/internal/pkg/application/faceters"
	"github.com/digilib/solrizer/internal/pkg/application/indexers"
	"github.com/digilib/solrizer/pkg/datamodels/dlib"
	"github.com/digilib/solrizer/pkg/repository"
	"github.com/digilib/solrizer/pkg/solr"
	"github.com/digilib/solrizer/pkg/vocab"
)

// ErrUpdatesNotConfigured is returned when an atomic update is
// requested but no Solr query endpoint has been configured.
var ErrUpdatesNotConfigured = errors.New("no solr query endpoint configured")

// DocumentService creates index documents and update instruction sets
// from repository resources.
type DocumentService interface {
	CreateDocument(ctx context.Context, uri string) (solr.Document, error)
	CreateAtomicUpdate(ctx context.Context, doc solr.Document) ([]solr.Document, error)
}

type app struct {
	repo     *repository.Client
	vocabs   *vocab.Service
	registry *indexers.Registry
	solr     *solr.Client
	cfg      Config
}

// New creates a DocumentService using the given collaborators. The Solr
// client may be nil, in which case atomic updates are unavailable.
func New(repo *repository.Client, vocabs *vocab.Service, solrClient *solr.Client, cfg Config) DocumentService {
	return &app{
		repo:     repo,
		vocabs:   vocabs,
		registry: indexers.NewRegistry(faceters.All()),
		solr:     solrClient,
		cfg:      cfg,
	}
}

func (a *app) CreateDocument(ctx context.Context, uri string) (solr.Document, error) {
	resource, err := a.repo.Read(ctx, uri)
	if err != nil {
		return nil, err
	}

	model, err := dlib.GuessModel(resource.Graph(), uri)
	if err != nil {
		return nil, &indexers.DataError{URI: uri, Reason: err.Error()}
	}

	ic := indexers.NewContext(a.repo, resource, model, a.vocabs, a.cfg.IndexerSettings)
	return a.registry.Run(ctx, ic, a.cfg.PipelineFor(model.Name))
}

func (a *app) CreateAtomicUpdate(ctx context.Context, doc solr.Document) ([]solr.Document, error) {
	if a.solr == nil {
		return nil, ErrUpdatesNotConfigured
	}

	update, err := a.solr.CreateAtomicUpdate(ctx, doc)
	if err != nil {
		return nil, err
	}

	return []solr.Document{update}, nil
}
