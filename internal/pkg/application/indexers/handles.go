package indexers

import (
	"context"

	"github.com/digilib/solrizer/pkg/handle"
	"github.com/digilib/solrizer/pkg/rdf"
	"github.com/digilib/solrizer/pkg/solr"
)

// HandleFields indexes the persistent identifier of a resource in its
// canonical forms. The proxy URL base is configurable per deployment;
// resources without a handle valued property contribute nothing.
func HandleFields(_ context.Context, ic *Context) (solr.Document, error) {
	proxyBase := handle.DefaultProxyBase
	if configured, ok := ic.Settings("handles")["proxy_prefix"].(string); ok && configured != "" {
		proxyBase = configured
	}

	raw := handleValue(ic.Obj)
	if raw == "" {
		return solr.Document{}, nil
	}

	h, err := handle.Parse(raw, proxyBase)
	if err != nil {
		return nil, &DataError{URI: ic.Resource.URI, Reason: err.Error()}
	}

	return solr.Document{
		"handle__id":          h.String(),
		"handle__uri":         h.InfoURI(),
		"handle_proxied__uri": h.ProxyURL(proxyBase),
	}, nil
}

// handleValue returns the first literal value typed as a handle, across
// all of the resource's data properties.
func handleValue(obj *rdf.TypedResource) string {
	for _, prop := range obj.Properties() {
		if prop.Def.Object {
			continue
		}
		if prop.Datatype() == rdf.DTHandle {
			return prop.FirstString()
		}
	}
	return ""
}
