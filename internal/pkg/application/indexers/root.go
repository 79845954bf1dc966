package indexers

import (
	"context"

	"github.com/digilib/solrizer/pkg/datamodels/dlib"
	"github.com/digilib/solrizer/pkg/rdf"
	"github.com/digilib/solrizer/pkg/solr"
)

// RootField links component resources such as pages and files to the
// top level resource they belong to, so that nested documents can be
// grouped under it. It walks the membership chain upward until a
// resource with a top level content model is reached. Top level
// resources get no field.
func RootField(ctx context.Context, ic *Context) (solr.Document, error) {
	if ic.Model.IsTopLevel {
		return solr.Document{}, nil
	}

	obj := ic.Obj
	visited := map[string]bool{ic.Resource.URI: true}

	for {
		parentURI := parentOf(obj)
		if parentURI == "" || visited[parentURI] {
			return nil, &DataError{URI: ic.Resource.URI, Reason: "unable to determine the top level resource"}
		}
		visited[parentURI] = true

		resource, err := ic.Repo.Read(ctx, parentURI)
		if err != nil {
			return nil, err
		}

		model, err := dlib.GuessModel(resource.Graph(), parentURI)
		if err != nil {
			return nil, &DataError{URI: parentURI, Reason: err.Error()}
		}

		if model.IsTopLevel {
			return solr.Document{"_root_": parentURI}, nil
		}

		obj = resource.Describe(model)
	}
}

func parentOf(obj *rdf.TypedResource) string {
	for _, name := range []string{"member_of", "file_of"} {
		if prop, declared := obj.Property(name); declared {
			if uri := prop.FirstURI(); uri != "" {
				return uri
			}
		}
	}
	return ""
}
