package indexers

import (
	"context"
	"testing"

	"github.com/digilib/solrizer/pkg/rdf"
	"github.com/matryer/is"
)

func TestDiscoverabilityFlags(t *testing.T) {
	is := is.New(t)

	item := "{base}/items/1"
	body := triple(item, rdf.PredicateRdfType, uriRef(rdf.NSModel+"Item")) +
		triple(item, rdf.PredicateRdfType, uriRef(rdf.TypePublished))

	ic := newTestContext(t, map[string]string{"/items/1": body}, "/items/1", nil)

	doc, err := DiscoverabilityFields(context.Background(), ic)
	is.NoErr(err)

	is.Equal(doc["is_published__bool"], true)
	is.Equal(doc["is_hidden__bool"], false)
	is.Equal(doc["is_top_level__bool"], true)
	is.Equal(doc["is_discoverable__bool"], true)
}

func TestHiddenResourceIsNotDiscoverable(t *testing.T) {
	is := is.New(t)

	item := "{base}/items/1"
	body := triple(item, rdf.PredicateRdfType, uriRef(rdf.NSModel+"Item")) +
		triple(item, rdf.PredicateRdfType, uriRef(rdf.TypePublished)) +
		triple(item, rdf.PredicateRdfType, uriRef(rdf.TypeHidden))

	ic := newTestContext(t, map[string]string{"/items/1": body}, "/items/1", nil)

	doc, err := DiscoverabilityFields(context.Background(), ic)
	is.NoErr(err)

	is.Equal(doc["is_hidden__bool"], true)
	is.Equal(doc["is_discoverable__bool"], false)
}

func TestComponentResourceIsNotDiscoverable(t *testing.T) {
	is := is.New(t)

	page := "{base}/pages/1"
	body := triple(page, rdf.PredicateRdfType, uriRef(rdf.NSPcdm+"Object")) +
		triple(page, rdf.PredicateRdfType, uriRef(rdf.TypePublished))

	ic := newTestContext(t, map[string]string{"/pages/1": body}, "/pages/1", nil)

	doc, err := DiscoverabilityFields(context.Background(), ic)
	is.NoErr(err)

	is.Equal(doc["is_published__bool"], true)
	is.Equal(doc["is_top_level__bool"], false)
	is.Equal(doc["is_discoverable__bool"], false)
}
