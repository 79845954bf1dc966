package indexers

import (
	"context"

	"github.com/digilib/solrizer/pkg/solr"
)

// FacetFields builds the facets indexer from a list of faceters. Each
// faceter contributes one field named after it with a __facet suffix.
// A faceter returning a nil value list is not applicable to the
// resource and leaves no field at all, which is distinct from an empty
// list meaning the facet is known to have no values.
func FacetFields(faceters []Faceter) Func {
	return func(ctx context.Context, ic *Context) (solr.Document, error) {
		fields := solr.Document{}

		for _, f := range faceters {
			values, err := f.Values(ctx, ic)
			if err != nil {
				return nil, err
			}
			if values == nil {
				continue
			}
			fields[f.Name()+"__facet"] = values
		}

		return fields, nil
	}
}
