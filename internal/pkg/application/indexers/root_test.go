package indexers

import (
	"context"
	"errors"
	"testing"

	"github.com/digilib/solrizer/pkg/rdf"
	"github.com/matryer/is"
)

func TestRootFieldWalksToTopLevel(t *testing.T) {
	is := is.New(t)

	file := "{base}/files/1"
	page := "{base}/pages/1"
	item := "{base}/items/1"

	ic := newTestContext(t, map[string]string{
		"/files/1": triple(file, rdf.PredicateRdfType, uriRef(rdf.NSPcdm+"File")) +
			triple(file, rdf.NSPcdm+"fileOf", uriRef(page)),
		"/pages/1": triple(page, rdf.PredicateRdfType, uriRef(rdf.NSPcdm+"Object")) +
			triple(page, rdf.NSPcdm+"memberOf", uriRef(item)),
		"/items/1": triple(item, rdf.PredicateRdfType, uriRef(rdf.NSModel+"Item")),
	}, "/files/1", nil)

	doc, err := RootField(context.Background(), ic)
	is.NoErr(err)

	base := ic.Resource.URI[:len(ic.Resource.URI)-len("/files/1")]
	is.Equal(doc["_root_"], base+"/items/1")
}

func TestRootFieldOnTopLevelResource(t *testing.T) {
	is := is.New(t)

	item := "{base}/items/1"
	ic := newTestContext(t, map[string]string{
		"/items/1": triple(item, rdf.PredicateRdfType, uriRef(rdf.NSModel+"Item")),
	}, "/items/1", nil)

	doc, err := RootField(context.Background(), ic)
	is.NoErr(err)
	is.Equal(len(doc), 0)
}

func TestRootFieldWithoutParent(t *testing.T) {
	is := is.New(t)

	page := "{base}/pages/1"
	ic := newTestContext(t, map[string]string{
		"/pages/1": triple(page, rdf.PredicateRdfType, uriRef(rdf.NSPcdm+"Object")),
	}, "/pages/1", nil)

	_, err := RootField(context.Background(), ic)

	var dataErr *DataError
	is.True(errors.As(err, &dataErr))
}
