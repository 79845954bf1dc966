package indexers

import (
	"context"
	"strings"

	"github.com/digilib/solrizer/pkg/rdf"
	"github.com/digilib/solrizer/pkg/solr"
)

// DiscoverabilityFields derives the visibility flags of a resource from
// its type markers. A resource is discoverable when it is published,
// not hidden and described by a top level content model.
func DiscoverabilityFields(_ context.Context, ic *Context) (solr.Document, error) {
	published := ic.Obj.HasType(rdf.TypePublished)
	hidden := ic.Obj.HasType(rdf.TypeHidden)

	topLevel := false
	for _, typeURI := range ic.Obj.TypeURIs() {
		if strings.HasPrefix(typeURI, rdf.NSModel) {
			topLevel = true
			break
		}
	}

	return solr.Document{
		"is_published__bool":    published,
		"is_hidden__bool":       hidden,
		"is_top_level__bool":    topLevel,
		"is_discoverable__bool": published && !hidden && topLevel,
	}, nil
}
