// Package vocab resolves terms from controlled vocabularies published
// as RDF documents.
package vocab

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/digilib/solrizer/pkg/rdf"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/tracing"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel"
)

var tracer = otel.Tracer("solrizer/vocab")

// ErrTermNotFound is returned when a vocabulary does not define the
// requested term.
var ErrTermNotFound = errors.New("term not found in vocabulary")

// Term is a resolved vocabulary term.
type Term struct {
	URI    string
	Labels []string
	SameAs []string
}

// Label returns the first label of the term, or its URI when the
// vocabulary does not label it.
func (t Term) Label() string {
	if len(t.Labels) > 0 {
		return t.Labels[0]
	}
	return t.URI
}

// Service fetches and caches vocabulary documents. Safe for concurrent
// use; the LRU cache serializes access internally.
type Service struct {
	cache      *lru.Cache[string, *rdf.Graph]
	httpClient http.Client
}

// NewService creates a vocabulary service caching up to size parsed
// vocabularies.
func NewService(size int) (*Service, error) {
	cache, err := lru.New[string, *rdf.Graph](size)
	if err != nil {
		return nil, err
	}

	return &Service{
		cache: cache,
		httpClient: http.Client{
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
	}, nil
}

// Resolve looks up the term with the given URI in its vocabulary. The
// vocabulary URI is the term URI up to and including its fragment
// separator.
func (s *Service) Resolve(ctx context.Context, termURI string) (Term, error) {
	vocabURI := vocabularyOf(termURI)

	graph, err := s.vocabulary(ctx, vocabURI)
	if err != nil {
		return Term{}, err
	}

	return termFromGraph(graph, termURI)
}

// FindBySameAs searches the given vocabulary for a term declared
// owl:sameAs the given URI.
func (s *Service) FindBySameAs(ctx context.Context, vocabURI, sameAs string) (Term, error) {
	graph, err := s.vocabulary(ctx, vocabURI)
	if err != nil {
		return Term{}, err
	}

	for _, subject := range graph.Subjects() {
		for _, object := range graph.Objects(subject, rdf.PredicateOwlSameAs) {
			if object.IsURI() && object.URI == sameAs {
				return termFromGraph(graph, subject)
			}
		}
	}

	return Term{}, fmt.Errorf("no term sameAs %s: %w", sameAs, ErrTermNotFound)
}

func (s *Service) vocabulary(ctx context.Context, vocabURI string) (*rdf.Graph, error) {
	if graph, found := s.cache.Get(vocabURI); found {
		return graph, nil
	}

	var err error
	ctx, span := tracer.Start(ctx, "fetch-vocabulary")
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, strings.TrimSuffix(vocabURI, "#"), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/n-triples")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch vocabulary %s: %w", vocabURI, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		err = fmt.Errorf("unexpected response code %d fetching vocabulary %s", resp.StatusCode, vocabURI)
		return nil, err
	}

	graph, err := rdf.ParseNTriples(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to parse vocabulary %s: %w", vocabURI, err)
	}

	s.cache.Add(vocabURI, graph)
	return graph, nil
}

// DescribeTerm returns the term with the given URI described against
// its vocabulary graph using the supplied model, so that its fields can
// be projected like any other typed resource.
func (s *Service) DescribeTerm(ctx context.Context, termURI string, model *rdf.Model) (*rdf.TypedResource, error) {
	graph, err := s.vocabulary(ctx, vocabularyOf(termURI))
	if err != nil {
		return nil, err
	}

	if !graph.Has(termURI) {
		return nil, fmt.Errorf("%s: %w", termURI, ErrTermNotFound)
	}

	return rdf.Describe(graph, termURI, model), nil
}

func termFromGraph(graph *rdf.Graph, termURI string) (Term, error) {
	labels := graph.Objects(termURI, rdf.PredicateRdfsLabel)
	sameAs := graph.Objects(termURI, rdf.PredicateOwlSameAs)

	if len(labels) == 0 && len(sameAs) == 0 {
		return Term{}, fmt.Errorf("%s: %w", termURI, ErrTermNotFound)
	}

	term := Term{URI: termURI}
	for _, l := range labels {
		if l.Literal != nil {
			term.Labels = append(term.Labels, l.Literal.Value)
		}
	}
	for _, s := range sameAs {
		if s.IsURI() {
			term.SameAs = append(term.SameAs, s.URI)
		}
	}

	return term, nil
}

func vocabularyOf(termURI string) string {
	if idx := strings.IndexByte(termURI, '#'); idx >= 0 {
		return termURI[:idx+1]
	}
	if idx := strings.LastIndexByte(termURI, '/'); idx >= 0 {
		return termURI[:idx+1]
	}
	return termURI
}
