package vocab

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/matryer/is"
)

func TestResolveTerm(t *testing.T) {
	is := is.New(t)

	ts, base := newVocabServer(t)
	defer ts.Close()

	svc, err := NewService(4)
	is.NoErr(err)

	term, err := svc.Resolve(context.Background(), base+"/rights#InC")
	is.NoErr(err)
	is.Equal(term.Label(), "In Copyright")
	is.Equal(term.SameAs, []string{"http://rightsstatements.org/vocab/InC/1.0/"})
}

func TestResolveUnknownTerm(t *testing.T) {
	is := is.New(t)

	ts, base := newVocabServer(t)
	defer ts.Close()

	svc, err := NewService(4)
	is.NoErr(err)

	_, err = svc.Resolve(context.Background(), base+"/rights#NoSuchTerm")
	is.True(errors.Is(err, ErrTermNotFound))
}

func TestFindBySameAs(t *testing.T) {
	is := is.New(t)

	ts, base := newVocabServer(t)
	defer ts.Close()

	svc, err := NewService(4)
	is.NoErr(err)

	term, err := svc.FindBySameAs(context.Background(),
		base+"/rights#", "http://rightsstatements.org/vocab/InC/1.0/")
	is.NoErr(err)
	is.Equal(term.URI, base+"/rights#InC")
	is.Equal(term.Label(), "In Copyright")

	_, err = svc.FindBySameAs(context.Background(), base+"/rights#", "http://example.com/unrelated")
	is.True(errors.Is(err, ErrTermNotFound))
}

func TestVocabularyIsCached(t *testing.T) {
	is := is.New(t)

	fetches := 0
	var base string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fetches++
		w.Header().Set("Content-Type", "application/n-triples")
		fmt.Fprint(w, rightsVocab(base))
	}))
	defer ts.Close()
	base = ts.URL

	svc, err := NewService(4)
	is.NoErr(err)

	_, err = svc.Resolve(context.Background(), base+"/rights#InC")
	is.NoErr(err)
	_, err = svc.Resolve(context.Background(), base+"/rights#NoC")
	is.NoErr(err)

	is.Equal(fetches, 1)
}

func TestTermWithoutLabelFallsBackToURI(t *testing.T) {
	is := is.New(t)

	term := Term{URI: "http://example.com/vocab#bare"}
	is.Equal(term.Label(), "http://example.com/vocab#bare")
}

func rightsVocab(base string) string {
	lines := []string{
		fmt.Sprintf(`<%s/rights#InC> <http://www.w3.org/2000/01/rdf-schema#label> "In Copyright" .`, base),
		fmt.Sprintf(`<%s/rights#InC> <http://www.w3.org/2002/07/owl#sameAs> <http://rightsstatements.org/vocab/InC/1.0/> .`, base),
		fmt.Sprintf(`<%s/rights#NoC> <http://www.w3.org/2000/01/rdf-schema#label> "No Copyright" .`, base),
	}
	return strings.Join(lines, "\n") + "\n"
}

func newVocabServer(t *testing.T) (*httptest.Server, string) {
	t.Helper()

	var base string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/rights" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		w.Header().Set("Content-Type", "application/n-triples")
		fmt.Fprint(w, rightsVocab(base))
	}))
	base = ts.URL

	return ts, base
}
