package indexers

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/digilib/solrizer/pkg/datamodels/dlib"
	"github.com/digilib/solrizer/pkg/repository"
	"github.com/digilib/solrizer/pkg/vocab"
)

// testResource is one mock repository response. An empty content type
// defaults to n-triples.
type testResource struct {
	body        string
	contentType string
}

// newTestContext serves the given n-triples bodies (with {base} expanded
// to the server URL) and builds an indexing context for the resource at
// path, guessing its content model from its types.
func newTestContext(t *testing.T, bodies map[string]string, path string, settings map[string]map[string]any) *Context {
	t.Helper()

	resources := map[string]testResource{}
	for p, body := range bodies {
		resources[p] = testResource{body: body}
	}
	return newTestContextWith(t, resources, path, settings)
}

// newTestContextWith is newTestContext for repositories that also serve
// binary content such as OCR files.
func newTestContextWith(t *testing.T, resources map[string]testResource, path string, settings map[string]map[string]any) *Context {
	t.Helper()

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		res, found := resources[r.URL.Path]
		if !found {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		contentType := res.contentType
		if contentType == "" {
			contentType = "application/n-triples"
		}
		w.Header().Set("Content-Type", contentType)
		fmt.Fprint(w, strings.ReplaceAll(res.body, "{base}", "http://"+r.Host))
	}))
	t.Cleanup(ts.Close)

	repo := repository.NewClient(ts.URL)

	resource, err := repo.Read(context.Background(), ts.URL+path)
	if err != nil {
		t.Fatalf("failed to read %s: %v", path, err)
	}

	model, err := dlib.GuessModel(resource.Graph(), resource.URI)
	if err != nil {
		t.Fatalf("failed to guess model of %s: %v", path, err)
	}

	vocabs, err := vocab.NewService(4)
	if err != nil {
		t.Fatalf("failed to create vocabulary service: %v", err)
	}

	return NewContext(repo, resource, model, vocabs, settings)
}

func triple(subject, predicate, object string) string {
	return fmt.Sprintf("<%s> <%s> %s .\n", subject, predicate, object)
}

func uriRef(uri string) string {
	return "<" + uri + ">"
}

func literal(value string) string {
	return fmt.Sprintf("%q", value)
}

func langLiteral(value, lang string) string {
	return fmt.Sprintf("%q@%s", value, lang)
}

func typedLiteral(value, datatype string) string {
	return fmt.Sprintf("%q^^<%s>", value, datatype)
}
