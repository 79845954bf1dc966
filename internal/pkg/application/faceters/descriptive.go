package faceters

import (
	"context"
	"strings"

	"github.com/digilib/solrizer/internal/pkg/application/indexers"
	"github.com/digilib/solrizer/pkg/datamodels/dlib"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
	"golang.org/x/text/language"
	"golang.org/x/text/language/display"
)

// Creator facets the primary agents responsible for a resource.
type Creator struct{}

func (Creator) Name() string { return "creator" }

func (Creator) Values(_ context.Context, ic *indexers.Context) ([]string, error) {
	switch ic.Model.Name {
	case dlib.ModelItem:
		return embeddedLabels(ic.Obj, "creator"), nil
	case dlib.ModelLetter:
		return embeddedLabels(ic.Obj, "author"), nil
	default:
		return nil, nil
	}
}

// Contributor facets secondary agents. Only items record contributors;
// letter recipients are not contributors.
type Contributor struct{}

func (Contributor) Name() string { return "contributor" }

func (Contributor) Values(_ context.Context, ic *indexers.Context) ([]string, error) {
	if ic.Model.Name != dlib.ModelItem {
		return nil, nil
	}
	return embeddedLabels(ic.Obj, "contributor"), nil
}

// Publisher facets publishing agents, which posters record as plain
// literals rather than embedded agents.
type Publisher struct{}

func (Publisher) Name() string { return "publisher" }

func (Publisher) Values(_ context.Context, ic *indexers.Context) ([]string, error) {
	switch ic.Model.Name {
	case dlib.ModelItem:
		return embeddedLabels(ic.Obj, "publisher"), nil
	case dlib.ModelPoster:
		return dataStrings(ic.Obj, "publisher"), nil
	default:
		return nil, nil
	}
}

// Subject facets topical subjects.
type Subject struct{}

func (Subject) Name() string { return "subject" }

func (Subject) Values(_ context.Context, ic *indexers.Context) ([]string, error) {
	switch ic.Model.Name {
	case dlib.ModelItem, dlib.ModelLetter:
		return embeddedLabels(ic.Obj, "subject"), nil
	case dlib.ModelPoster:
		return dataStrings(ic.Obj, "subject"), nil
	default:
		return nil, nil
	}
}

// Location facets geographic coverage.
type Location struct{}

func (Location) Name() string { return "location" }

func (Location) Values(_ context.Context, ic *indexers.Context) ([]string, error) {
	switch ic.Model.Name {
	case dlib.ModelItem:
		return embeddedLabels(ic.Obj, "location"), nil
	case dlib.ModelLetter:
		return embeddedLabels(ic.Obj, "place"), nil
	case dlib.ModelPoster:
		return dataStrings(ic.Obj, "location"), nil
	default:
		return nil, nil
	}
}

// Language facets resource languages by their English display name.
// Poster descriptions already contain full language names and pass
// through untranslated; elsewhere, codes that fail to parse are logged
// and passed through unchanged.
type Language struct{}

func (Language) Name() string { return "language" }

func (Language) Values(ctx context.Context, ic *indexers.Context) ([]string, error) {
	codes := dataStrings(ic.Obj, "language")
	if codes == nil {
		return nil, nil
	}

	if ic.Model.Name == dlib.ModelPoster {
		return codes, nil
	}

	namer := display.English.Languages()

	names := make([]string, 0, len(codes))
	for _, code := range codes {
		tag, err := language.Parse(code)
		if err != nil {
			logging.GetFromContext(ctx).Warn("unmatched language code", "code", code)
			names = append(names, code)
			continue
		}
		names = append(names, namer.Name(tag))
	}
	return names, nil
}

// ResourceType facets the kind of thing a resource is. Items reference
// form vocabulary terms, faceted by their labels; posters record a
// comma separated format where only the leading segment matters.
type ResourceType struct{}

func (ResourceType) Name() string { return "resource_type" }

func (ResourceType) Values(ctx context.Context, ic *indexers.Context) ([]string, error) {
	switch ic.Model.Name {
	case dlib.ModelItem:
		prop, _ := ic.Obj.Property("format")
		if prop.Len() == 0 {
			return nil, nil
		}
		labels := make([]string, 0, prop.Len())
		for _, uri := range prop.URIs() {
			term, err := ic.Vocabs.Resolve(ctx, uri)
			if err != nil {
				logging.GetFromContext(ctx).Warn("unresolvable form term", "uri", uri, "err", err.Error())
				labels = append(labels, uri)
				continue
			}
			labels = append(labels, term.Label())
		}
		return labels, nil

	case dlib.ModelLetter:
		return dataStrings(ic.Obj, "type"), nil

	case dlib.ModelPoster:
		format, _ := ic.Obj.Property("format")
		if format.Len() == 0 {
			return nil, nil
		}
		leading, _, _ := strings.Cut(format.FirstString(), ",")
		return []string{strings.TrimSpace(leading)}, nil

	default:
		return nil, nil
	}
}

// RDFType facets the shortened RDF types the projection recorded.
type RDFType struct{}

func (RDFType) Name() string { return "rdf_type" }

func (RDFType) Values(_ context.Context, ic *indexers.Context) ([]string, error) {
	curies, ok := ic.Doc[ic.Model.Prefix()+"rdf_type__curies"].([]any)
	if !ok {
		return nil, nil
	}

	values := make([]string, 0, len(curies))
	for _, c := range curies {
		if s, isString := c.(string); isString {
			values = append(values, s)
		}
	}
	return values, nil
}
