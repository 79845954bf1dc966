package indexers

import (
	"context"
	"fmt"

	"github.com/digilib/solrizer/pkg/datamodels/dlib"
	"github.com/digilib/solrizer/pkg/solr"
)

// PageSequence is the ordered page structure of a paged resource,
// reconstructed from its proxy chain.
type PageSequence struct {
	// URIs holds the member URIs in reading order.
	URIs []string
	// Labels holds one display label per member, parallel to URIs.
	Labels []string
	// Pages holds the projected member documents in reading order.
	// Members without a projected document are skipped here.
	Pages []solr.Document
}

// PageSequenceFields records the reading order of a paged resource as
// parallel label and URI sequence fields. Resources without a sequence
// head contribute nothing.
func PageSequenceFields(ctx context.Context, ic *Context) (solr.Document, error) {
	seq, err := NewPageSequence(ctx, ic)
	if err != nil {
		return nil, err
	}
	if seq == nil {
		return solr.Document{}, nil
	}

	return solr.Document{
		"page_label_sequence__txts": seq.Labels,
		"page_uri_sequence__uris":   seq.URIs,
	}, nil
}

// NewPageSequence follows the resource's proxy chain and matches each
// proxied URI against the projected member documents. It returns nil
// when the resource has no sequence head.
func NewPageSequence(ctx context.Context, ic *Context) (*PageSequence, error) {
	first, declared := ic.Obj.Property("first")
	if !declared || first.Len() == 0 {
		return nil, nil
	}

	membersByURI := map[string]solr.Document{}
	if members, ok := ic.Doc[ic.Model.Prefix()+"has_member"].([]any); ok {
		for _, member := range members {
			if doc, isDoc := member.(solr.Document); isDoc {
				if id, hasID := doc["id"].(string); hasID {
					membersByURI[id] = doc
				}
			}
		}
	}

	seq := &PageSequence{}

	proxyURI := first.FirstURI()
	visited := map[string]bool{}

	for proxyURI != "" {
		if visited[proxyURI] {
			return nil, &DataError{URI: ic.Resource.URI, Reason: fmt.Sprintf("cycle in proxy sequence at %s", proxyURI)}
		}
		visited[proxyURI] = true

		resource, err := ic.Repo.Read(ctx, proxyURI)
		if err != nil {
			return nil, err
		}
		proxy := resource.Describe(dlib.ModelByName(dlib.ModelProxy))

		proxyFor, _ := proxy.Property("proxy_for")
		memberURI := proxyFor.FirstURI()
		if memberURI == "" {
			return nil, &DataError{URI: proxyURI, Reason: "proxy does not reference a member resource"}
		}

		seq.URIs = append(seq.URIs, memberURI)
		if doc, found := membersByURI[memberURI]; found {
			seq.Pages = append(seq.Pages, doc)
			seq.Labels = append(seq.Labels, pageLabel(doc, len(seq.URIs)))
		} else {
			seq.Labels = append(seq.Labels, fmt.Sprintf("[Page %d]", len(seq.URIs)))
		}

		next, _ := proxy.Property("next")
		proxyURI = next.FirstURI()
	}

	return seq, nil
}

func pageLabel(doc solr.Document, position int) string {
	if title, ok := doc["page__title__txt"].(string); ok && title != "" {
		return title
	}
	return fmt.Sprintf("[Page %d]", position)
}
