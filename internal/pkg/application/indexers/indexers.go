// Package indexers contains the indexing pipeline: a registry of named
// indexer functions that are run in a configured order against a shared
// accumulator document. Each indexer receives the accumulated document
// so far and returns a patch of fields to merge, so later stages see
// earlier stages' output without sharing mutable state.
package indexers

import (
	"context"
	"time"

	"github.com/digilib/solrizer/pkg/rdf"
	"github.com/digilib/solrizer/pkg/repository"
	"github.com/digilib/solrizer/pkg/solr"
	"github.com/digilib/solrizer/pkg/vocab"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/tracing"
	"go.opentelemetry.io/otel"
)

var tracer = otel.Tracer("solrizer/indexers")

// Context holds everything needed to index a single resource.
type Context struct {
	// Repo is the repository the resource was read from.
	Repo *repository.Client
	// Resource is the resource being indexed.
	Resource *repository.Resource
	// Model is the content model of the resource.
	Model *rdf.Model
	// Obj is the resource described using its content model.
	Obj *rdf.TypedResource
	// Vocabs resolves controlled vocabulary terms.
	Vocabs *vocab.Service
	// Doc is the accumulated state of the index document.
	Doc solr.Document

	settings map[string]map[string]any
}

// NewContext creates an indexing context for the given resource. The
// initial document carries only the resource URI as its id.
func NewContext(repo *repository.Client, resource *repository.Resource, model *rdf.Model, vocabs *vocab.Service, settings map[string]map[string]any) *Context {
	return &Context{
		Repo:     repo,
		Resource: resource,
		Model:    model,
		Obj:      resource.Describe(model),
		Vocabs:   vocabs,
		Doc:      solr.Document{"id": resource.URI},
		settings: settings,
	}
}

// Settings returns the configured settings for the named indexer. An
// unconfigured indexer gets an empty map.
func (ic *Context) Settings(indexer string) map[string]any {
	if s, ok := ic.settings[indexer]; ok {
		return s
	}
	return map[string]any{}
}

// Func is one indexer: it inspects the context and returns the fields
// it contributes to the document.
type Func func(ctx context.Context, ic *Context) (solr.Document, error)

// Faceter derives one normalized facet value list from the indexing
// context. A nil value list (with a nil error) means the facet is not
// applicable to this resource and its field is omitted entirely.
type Faceter interface {
	Name() string
	Values(ctx context.Context, ic *Context) ([]string, error)
}

// Registry maps indexer names to their implementations. It is
// constructed once at startup; lookups of unregistered names fail with
// an UnknownIndexerError.
type Registry struct {
	byName map[string]Func
}

// NewRegistry creates a registry containing all built in indexers. The
// facets indexer runs the given faceters.
func NewRegistry(faceters []Faceter) *Registry {
	r := &Registry{byName: map[string]Func{}}

	r.Register("content_model", ContentModelFields)
	r.Register("page_sequence", PageSequenceFields)
	r.Register("dates", DateFields)
	r.Register("facets", FacetFields(faceters))
	r.Register("discoverability", DiscoverabilityFields)
	r.Register("described_by", DescribedByField)
	r.Register("root", RootField)
	r.Register("aggregate_fields", AggregateFields)
	r.Register("handles", HandleFields)
	r.Register("iiif_links", IIIFLinksFields)
	r.Register("extracted_text", ExtractedTextFields)

	return r
}

// Register adds an indexer under the given name, replacing any previous
// registration.
func (r *Registry) Register(name string, fn Func) {
	r.byName[name] = fn
}

// Run executes the named indexers in order, merging each indexer's
// fields into the context document, and returns the final document.
func (r *Registry) Run(ctx context.Context, ic *Context, names []string) (solr.Document, error) {
	var err error

	ctx, span := tracer.Start(ctx, "run-indexers")
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	log := logging.GetFromContext(ctx)

	for _, name := range names {
		indexer, registered := r.byName[name]
		if !registered {
			err = &UnknownIndexerError{Name: name}
			return nil, err
		}

		started := time.Now()

		var fields solr.Document
		fields, err = indexer(ctx, ic)
		if err != nil {
			log.Error("indexer failed", "indexer", name, "err", err.Error())
			return nil, err
		}

		for key, value := range fields {
			ic.Doc[key] = value
		}

		log.Debug("indexer done", "indexer", name, "duration", time.Since(started).String())
	}

	return ic.Doc, nil
}
