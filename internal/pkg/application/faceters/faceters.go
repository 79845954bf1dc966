// Package faceters derives normalized facet values from projected
// documents. Each faceter dispatches on the resource's content model,
// since conceptually identical facts live under different property
// names across models.
package faceters

import (
	"github.com/digilib/solrizer/internal/pkg/application/indexers"
	"github.com/digilib/solrizer/pkg/datamodels/dlib"
	"github.com/digilib/solrizer/pkg/rdf"
)

// All returns every faceter, in the order their fields are generated.
func All() []indexers.Faceter {
	return []indexers.Faceter{
		AdminSet{},
		ArchivalCollection{},
		Contributor{},
		Creator{},
		Language{},
		Location{},
		OCR{},
		PresentationSet{},
		PublicationStatus{},
		Publisher{},
		RDFType{},
		ResourceType{},
		Rights{},
		Subject{},
		Visibility{},
	}
}

// embeddedLabels collects the labels of the embedded objects of the
// named property, in value order.
func embeddedLabels(obj *rdf.TypedResource, propName string) []string {
	prop, declared := obj.Property(propName)
	if !declared || prop.Len() == 0 {
		return nil
	}

	model := dlib.ModelByName(prop.Def.ObjectModel)
	if model == nil {
		return nil
	}

	labels := []string{}
	for _, uri := range prop.URIs() {
		child := rdf.Describe(obj.Graph(), uri, model)
		if label, ok := child.Property("label"); ok {
			labels = append(labels, label.Strings()...)
		}
	}
	return labels
}

// dataStrings returns the literal values of the named property, or nil
// when the property is undeclared or empty.
func dataStrings(obj *rdf.TypedResource, propName string) []string {
	prop, declared := obj.Property(propName)
	if !declared || prop.Len() == 0 {
		return nil
	}
	return prop.Strings()
}
