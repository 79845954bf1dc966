package indexers

import (
	"context"
	"errors"
	"testing"

	"github.com/digilib/solrizer/pkg/rdf"
	"github.com/matryer/is"
)

func iiifSettings() map[string]map[string]any {
	return map[string]map[string]any{
		"iiif_links": {
			"identifier_prefix":     "dlib:",
			"manifests_url_pattern": "https://iiif.example.edu/manifests/{+id}",
			"thumbnail_url_pattern": "https://iiif.example.edu/thumbs/{+id}/square/75,/0/default.jpg",
		},
	}
}

func TestIIIFLinks(t *testing.T) {
	is := is.New(t)

	issue := "{base}/issues/1"
	page1 := "{base}/pages/1"
	proxy1 := "{base}/proxies/1"
	file1 := "{base}/files/11"

	ic := newTestContext(t, map[string]string{
		"/issues/1": triple(issue, rdf.PredicateRdfType, uriRef(rdf.NSModel+"Issue")) +
			triple(issue, rdf.NSPcdm+"hasMember", uriRef(page1)) +
			triple(issue, rdf.NSIana+"first", uriRef(proxy1)),
		"/pages/1": triple(page1, rdf.PredicateRdfType, uriRef(rdf.NSPcdm+"Object")) +
			triple(page1, rdf.NSPcdm+"hasFile", uriRef(file1)),
		"/files/11": triple(file1, rdf.PredicateRdfType, uriRef(rdf.NSPcdm+"File")),
		"/proxies/1": triple(proxy1, rdf.PredicateRdfType, uriRef(rdf.NSOre+"Proxy")) +
			triple(proxy1, rdf.NSOre+"proxyFor", uriRef(page1)),
	}, "/issues/1", iiifSettings())

	ctx := context.Background()

	fields, err := ContentModelFields(ctx, ic)
	is.NoErr(err)
	for key, value := range fields {
		ic.Doc[key] = value
	}

	doc, err := IIIFLinksFields(ctx, ic)
	is.NoErr(err)

	is.Equal(doc["iiif_manifest__id"], "dlib:issues:1")
	is.Equal(doc["iiif_manifest__uri"], "https://iiif.example.edu/manifests/dlib:issues:1")
	is.Equal(doc["iiif_thumbnail_identifier__sequence"], []string{"dlib:files:11"})
	is.Equal(doc["iiif_thumbnail_uri__sequence"], []string{
		"https://iiif.example.edu/thumbs/dlib:files:11/square/75,/0/default.jpg",
	})
}

func TestIIIFLinksWithoutPages(t *testing.T) {
	is := is.New(t)

	item := "{base}/items/1"
	ic := newTestContext(t, map[string]string{
		"/items/1": triple(item, rdf.PredicateRdfType, uriRef(rdf.NSModel+"Item")),
	}, "/items/1", iiifSettings())

	doc, err := IIIFLinksFields(context.Background(), ic)
	is.NoErr(err)

	is.Equal(doc["iiif_manifest__id"], "dlib:items:1")
	is.Equal(doc["iiif_manifest__uri"], "https://iiif.example.edu/manifests/dlib:items:1")
	is.Equal(doc["iiif_thumbnail_identifier__sequence"], []string{})
	is.Equal(doc["iiif_thumbnail_uri__sequence"], []string{})
}

func TestIIIFLinksRequireSettings(t *testing.T) {
	is := is.New(t)

	item := "{base}/items/1"
	ic := newTestContext(t, map[string]string{
		"/items/1": triple(item, rdf.PredicateRdfType, uriRef(rdf.NSModel+"Item")),
	}, "/items/1", nil)

	_, err := IIIFLinksFields(context.Background(), ic)

	var confErr *ConfigurationError
	is.True(errors.As(err, &confErr))
}
