// Package repository implements the client for the object store that
// holds the RDF descriptions and binary files of the digital library
// resources being indexed.
package repository

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/digilib/solrizer/pkg/rdf"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/tracing"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel"
)

var tracer = otel.Tracer("solrizer/repository")

// ErrNotFound is returned when the repository has no resource at the
// requested URI.
var ErrNotFound = errors.New("resource not found in repository")

const contentTypeNTriples = "application/n-triples"

// Client reads resources from the repository over HTTP.
type Client struct {
	endpoint   string
	authToken  string
	cache      ReadCache
	httpClient http.Client
}

// ClientOption configures a Client.
type ClientOption func(*Client)

// WithAuthToken adds a bearer token to all repository requests.
func WithAuthToken(token string) ClientOption {
	return func(c *Client) {
		c.authToken = token
	}
}

// WithCache adds a read-through cache for RDF descriptions.
func WithCache(cache ReadCache) ClientOption {
	return func(c *Client) {
		c.cache = cache
	}
}

// NewClient creates a repository client rooted at the given endpoint URL.
func NewClient(endpoint string, options ...ClientOption) *Client {
	c := &Client{
		endpoint: strings.TrimSuffix(endpoint, "/"),
		httpClient: http.Client{
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
	}

	for _, option := range options {
		option(c)
	}

	return c
}

// Contains reports whether uri is managed by this repository.
func (c *Client) Contains(uri string) bool {
	return uri == c.endpoint || strings.HasPrefix(uri, c.endpoint+"/")
}

// RepoPath translates a repository URI into its path relative to the
// repository root, with a leading slash.
func (c *Client) RepoPath(uri string) string {
	path := strings.TrimPrefix(uri, c.endpoint)
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return path
}

// Resource is one resource read from the repository: its RDF
// description, plus the URL that description was served from when the
// resource itself is a binary.
type Resource struct {
	URI            string
	DescriptionURL string

	graph  *rdf.Graph
	client *Client
}

// Read fetches the resource at uri and parses its RDF description.
// Binary resources are described by their companion metadata document.
func (c *Client) Read(ctx context.Context, uri string) (*Resource, error) {
	var err error

	ctx, span := tracer.Start(ctx, "read-resource")
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	body, contentType, err := c.fetchDescription(ctx, uri)
	if err != nil {
		return nil, err
	}

	resource := &Resource{URI: uri, client: c}

	if !strings.HasPrefix(contentType, contentTypeNTriples) {
		// non-RDF source: the description lives in the companion
		// metadata document
		resource.DescriptionURL = uri + "/fcr:metadata"
		if body, _, err = c.fetchDescription(ctx, resource.DescriptionURL); err != nil {
			return nil, err
		}
	}

	resource.graph, err = rdf.ParseNTriples(bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to parse description of %s: %w", uri, err)
	}

	return resource, nil
}

func (c *Client) fetchDescription(ctx context.Context, uri string) ([]byte, string, error) {
	if c.cache != nil {
		if body, contentType, found := c.cache.Get(ctx, uri); found {
			logging.GetFromContext(ctx).Debug("cache hit", "uri", uri)
			return body, contentType, nil
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, uri, nil)
	if err != nil {
		return nil, "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", contentTypeNTriples)
	c.authorize(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, "", fmt.Errorf("failed to read %s: %w", uri, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound || resp.StatusCode == http.StatusGone {
		return nil, "", fmt.Errorf("%s: %w", uri, ErrNotFound)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, "", fmt.Errorf("unexpected response code %d reading %s", resp.StatusCode, uri)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, "", fmt.Errorf("failed to read response body: %w", err)
	}

	contentType := resp.Header.Get("Content-Type")

	if c.cache != nil {
		c.cache.Put(ctx, uri, body, contentType)
	}

	return body, contentType, nil
}

// OpenFile opens the binary content of the resource at uri.
func (c *Client) OpenFile(ctx context.Context, uri string) (io.ReadCloser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, uri, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	c.authorize(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", uri, err)
	}

	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		if resp.StatusCode == http.StatusNotFound {
			return nil, fmt.Errorf("%s: %w", uri, ErrNotFound)
		}
		return nil, fmt.Errorf("unexpected response code %d opening %s", resp.StatusCode, uri)
	}

	return resp.Body, nil
}

func (c *Client) authorize(req *http.Request) {
	if c.authToken != "" {
		req.Header.Set("Authorization", "Bearer "+c.authToken)
	}
}

// Describe binds the resource to the given content model.
func (r *Resource) Describe(model *rdf.Model) *rdf.TypedResource {
	return rdf.Describe(r.graph, r.URI, model)
}

// Graph returns the parsed RDF description.
func (r *Resource) Graph() *rdf.Graph {
	return r.graph
}

// DescribedBy returns the URL the description of this resource is
// served from. RDF sources are self describing.
func (r *Resource) DescribedBy() string {
	if r.DescriptionURL != "" {
		return r.DescriptionURL
	}
	return r.URI
}
