package solrizer

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/digilib/solrizer/pkg/repository"
	"github.com/digilib/solrizer/pkg/solr"
	"github.com/digilib/solrizer/pkg/vocab"
	"github.com/matryer/is"
)

func newService(t *testing.T, bodies map[string]string, solrClient *solr.Client, cfg Config) (DocumentService, string) {
	t.Helper()

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, found := bodies[r.URL.Path]
		if !found {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		w.Header().Set("Content-Type", "application/n-triples")
		fmt.Fprint(w, strings.ReplaceAll(body, "{base}", "http://"+r.Host))
	}))
	t.Cleanup(ts.Close)

	vocabs, err := vocab.NewService(4)
	if err != nil {
		t.Fatalf("failed to create vocabulary service: %v", err)
	}

	return New(repository.NewClient(ts.URL), vocabs, solrClient, cfg), ts.URL
}

func TestCreateDocumentRunsConfiguredPipeline(t *testing.T) {
	is := is.New(t)

	item := "{base}/items/1"
	body := fmt.Sprintf("<%s> <http://www.w3.org/1999/02/22-rdf-syntax-ns#type> <http://purl.org/digilib/model#Item> .\n", item) +
		fmt.Sprintf("<%s> <http://purl.org/dc/terms/title> \"A Day at the Fair\" .\n", item) +
		fmt.Sprintf("<%s> <http://purl.org/dc/elements/1.1/date> \"1984\" .\n", item)

	cfg := Config{Pipelines: map[string][]string{"Item": {"content_model", "dates"}}}
	svc, base := newService(t, map[string]string{"/items/1": body}, nil, cfg)

	doc, err := svc.CreateDocument(context.Background(), base+"/items/1")
	is.NoErr(err)

	is.Equal(doc["id"], base+"/items/1")
	is.Equal(doc["content_model_name__str"], "Item")
	is.Equal(doc["item__title__txt"], "A Day at the Fair")
	is.Equal(doc["item__date__dt"], "1984")
}

func TestCreateDocumentForUnknownModel(t *testing.T) {
	is := is.New(t)

	body := "<{base}/things/1> <http://purl.org/dc/terms/title> \"Untyped\" .\n"

	svc, base := newService(t, map[string]string{"/things/1": body}, nil, Config{})

	_, err := svc.CreateDocument(context.Background(), base+"/things/1")
	is.True(err != nil)
}

func TestCreateDocumentMissingResource(t *testing.T) {
	is := is.New(t)

	svc, base := newService(t, nil, nil, Config{})

	_, err := svc.CreateDocument(context.Background(), base+"/items/nope")
	is.True(errors.Is(err, repository.ErrNotFound))
}

func TestCreateAtomicUpdateRequiresQueryEndpoint(t *testing.T) {
	is := is.New(t)

	svc, _ := newService(t, nil, nil, Config{})

	_, err := svc.CreateAtomicUpdate(context.Background(), solr.Document{"id": "x"})
	is.True(errors.Is(err, ErrUpdatesNotConfigured))
}

func TestCreateAtomicUpdateDiffsAgainstIndex(t *testing.T) {
	is := is.New(t)

	solrServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"response": {"docs": [{"id": "x", "item__title__txt": "Old Title", "_version_": 17}]}}`)
	}))
	defer solrServer.Close()

	svc, _ := newService(t, nil, solr.NewClient(solrServer.URL), Config{})

	updates, err := svc.CreateAtomicUpdate(context.Background(),
		solr.Document{"id": "x", "item__title__txt": "New Title"})
	is.NoErr(err)

	is.Equal(len(updates), 1)
	is.Equal(updates[0]["id"], "x")
	is.Equal(updates[0]["item__title__txt"], map[string]any{"set": "New Title"})
	_, present := updates[0]["_version_"]
	is.True(!present)
}
