package indexers

import (
	"context"

	"github.com/digilib/solrizer/pkg/solr"
)

// DescribedByField records where the canonical RDF description of the
// resource lives. For binary resources this differs from the resource
// URI itself.
func DescribedByField(_ context.Context, ic *Context) (solr.Document, error) {
	return solr.Document{
		"described_by__uri": ic.Resource.DescribedBy(),
	}, nil
}
