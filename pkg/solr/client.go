package solr

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/tracing"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel"
)

var tracer = otel.Tracer("solrizer/solr-client")

// Client fetches current index documents from a Solr query endpoint.
type Client struct {
	queryEndpoint string
	httpClient    http.Client
}

// NewClient creates a Client against the given query endpoint URL.
func NewClient(queryEndpoint string) *Client {
	return &Client{
		queryEndpoint: queryEndpoint,
		httpClient: http.Client{
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
	}
}

// CurrentDocument retrieves the currently indexed document with the
// given id. A missing document is not an error; it yields an empty
// document, so a diff against it sets every field.
func (c *Client) CurrentDocument(ctx context.Context, id string) (Document, error) {
	var err error

	ctx, span := tracer.Start(ctx, "get-current-document")
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	query := url.Values{"ids": []string{id}}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.queryEndpoint+"?"+query.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create solr request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to query solr: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read solr response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		err = fmt.Errorf("unexpected response code %d from solr query endpoint", resp.StatusCode)
		return nil, err
	}

	result := struct {
		Response struct {
			Docs []Document `json:"docs"`
		} `json:"response"`
	}{}

	if err = json.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("failed to unmarshal solr response: %w", err)
	}

	if len(result.Response.Docs) == 0 {
		logging.GetFromContext(ctx).Debug("no existing document in index", "id", id)
		return Document{}, nil
	}

	return result.Response.Docs[0], nil
}

// CreateAtomicUpdate builds the atomic update instruction set that will
// bring the currently indexed version of doc in line with doc.
func (c *Client) CreateAtomicUpdate(ctx context.Context, doc Document) (Document, error) {
	id, _ := doc["id"].(string)

	oldDoc, err := c.CurrentDocument(ctx, id)
	if err != nil {
		return nil, err
	}

	return AtomicDiff(oldDoc, doc)
}
