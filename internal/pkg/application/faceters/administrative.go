package faceters

import (
	"context"

	"github.com/digilib/solrizer/internal/pkg/application/indexers"
	"github.com/digilib/solrizer/pkg/datamodels/dlib"
	"github.com/digilib/solrizer/pkg/rdf"
	"github.com/digilib/solrizer/pkg/repository"
	"github.com/digilib/solrizer/pkg/vocab"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
)

// AdminSet facets the title of the administrative collection a resource
// is a direct member of.
type AdminSet struct{}

func (AdminSet) Name() string { return "admin_set" }

func (AdminSet) Values(ctx context.Context, ic *indexers.Context) ([]string, error) {
	prop, declared := ic.Obj.Property("member_of")
	if !declared || prop.Len() == 0 {
		return nil, nil
	}

	return collectionTitles(ctx, ic, prop.URIs()), nil
}

// ArchivalCollection facets the physical collection a resource came
// from. Posters record it as a plain literal.
type ArchivalCollection struct{}

func (ArchivalCollection) Name() string { return "archival_collection" }

func (ArchivalCollection) Values(ctx context.Context, ic *indexers.Context) ([]string, error) {
	switch ic.Model.Name {
	case dlib.ModelItem:
		prop, _ := ic.Obj.Property("archival_collection")
		if prop.Len() == 0 {
			return nil, nil
		}
		return collectionTitles(ctx, ic, prop.URIs()), nil

	case dlib.ModelLetter:
		prop, _ := ic.Obj.Property("part_of")
		if prop.Len() == 0 {
			return nil, nil
		}
		return collectionTitles(ctx, ic, prop.URIs()), nil

	case dlib.ModelPoster:
		return dataStrings(ic.Obj, "part_of"), nil

	default:
		return nil, nil
	}
}

// collectionTitles reads the referenced collections and returns their
// titles. Unreadable references are logged and skipped.
func collectionTitles(ctx context.Context, ic *indexers.Context, uris []string) []string {
	titles := []string{}
	for _, uri := range uris {
		if !ic.Repo.Contains(uri) {
			continue
		}

		resource, err := ic.Repo.Read(ctx, uri)
		if err != nil {
			logging.GetFromContext(ctx).Warn("could not read collection", "uri", uri, "err", err.Error())
			continue
		}

		collection := resource.Describe(dlib.ModelByName(dlib.ModelCollection))
		if title, ok := collection.Property("title"); ok && title.Len() > 0 {
			titles = append(titles, title.FirstString())
		}
	}
	return titles
}

// PresentationSet facets the curated sets a resource is presented in,
// by their vocabulary labels.
type PresentationSet struct{}

func (PresentationSet) Name() string { return "presentation_set" }

func (PresentationSet) Values(ctx context.Context, ic *indexers.Context) ([]string, error) {
	prop, declared := ic.Obj.Property("presentation_set")
	if !declared || prop.Len() == 0 {
		return nil, nil
	}

	labels := make([]string, 0, prop.Len())
	for _, uri := range prop.URIs() {
		term, err := ic.Vocabs.Resolve(ctx, uri)
		if err != nil {
			logging.GetFromContext(ctx).Warn("unresolvable presentation set", "uri", uri, "err", err.Error())
			labels = append(labels, uri)
			continue
		}
		labels = append(labels, term.Label())
	}
	return labels, nil
}

// Rights facets the rights statement of a resource. Items reference
// rights vocabulary terms directly; other models carry external rights
// statement URIs that are matched against the vocabulary's sameAs
// declarations. Unresolvable URIs are logged and passed through raw.
type Rights struct{}

func (Rights) Name() string { return "rights" }

func (Rights) Values(ctx context.Context, ic *indexers.Context) ([]string, error) {
	prop, declared := ic.Obj.Property("rights")
	if !declared || prop.Len() == 0 {
		return nil, nil
	}

	log := logging.GetFromContext(ctx)

	labels := make([]string, 0, prop.Len())
	for _, uri := range prop.URIs() {
		var (
			term vocab.Term
			err  error
		)

		if ic.Model.Name == dlib.ModelItem {
			term, err = ic.Vocabs.Resolve(ctx, uri)
		} else {
			term, err = ic.Vocabs.FindBySameAs(ctx, dlib.VocabRights, uri)
		}

		if err != nil {
			log.Warn("unresolvable rights statement", "uri", uri, "err", err.Error())
			labels = append(labels, uri)
			continue
		}
		labels = append(labels, term.Label())
	}
	return labels, nil
}

// PublicationStatus is the binary published / unpublished facet.
type PublicationStatus struct{}

func (PublicationStatus) Name() string { return "publication_status" }

func (PublicationStatus) Values(_ context.Context, ic *indexers.Context) ([]string, error) {
	if ic.Obj.HasType(rdf.TypePublished) {
		return []string{"Published"}, nil
	}
	return []string{"Unpublished"}, nil
}

// Visibility is the binary visible / hidden facet.
type Visibility struct{}

func (Visibility) Name() string { return "visibility" }

func (Visibility) Values(_ context.Context, ic *indexers.Context) ([]string, error) {
	if ic.Obj.HasType(rdf.TypeHidden) {
		return []string{"Hidden"}, nil
	}
	return []string{"Visible"}, nil
}

// OCR reports the presence of extracted text anywhere on the resource
// or its members.
type OCR struct{}

func (OCR) Name() string { return "has_ocr" }

func (OCR) Values(ctx context.Context, ic *indexers.Context) ([]string, error) {
	found, err := hasExtractedText(ctx, ic.Resource)
	if err != nil {
		return nil, err
	}
	if found {
		return []string{"Has OCR"}, nil
	}

	members, err := ic.Resource.Members(ctx)
	if err != nil {
		return nil, err
	}

	for _, member := range members {
		found, err = hasExtractedText(ctx, member)
		if err != nil {
			return nil, err
		}
		if found {
			return []string{"Has OCR"}, nil
		}
	}

	return nil, nil
}

func hasExtractedText(ctx context.Context, resource *repository.Resource) (bool, error) {
	file, err := resource.GetFile(ctx, repository.FileMatch{RDFType: rdf.TypeExtractedText})
	if err != nil {
		return false, err
	}
	return file != nil, nil
}
