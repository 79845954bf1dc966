// Package dlib declares the digital library content models: the closed
// set of resource shapes the indexing pipelines know how to convert.
package dlib

import (
	"fmt"

	"github.com/digilib/solrizer/pkg/rdf"
)

// Additional namespaces used only by the content model declarations.
const (
	NSExif = "http://www.w3.org/2003/12/exif/ns#"

	VocabRights          = "http://purl.org/digilib/vocab/rightsStatement#"
	VocabForm            = "http://purl.org/digilib/vocab/form#"
	VocabPresentationSet = "http://purl.org/digilib/vocab/set#"
)

// Model names, used for variant dispatch in the faceters.
const (
	ModelItem       = "Item"
	ModelLetter     = "Letter"
	ModelPoster     = "Poster"
	ModelIssue      = "Issue"
	ModelPage       = "Page"
	ModelFile       = "File"
	ModelProxy      = "Proxy"
	ModelCollection = "Collection"
	ModelAgent      = "Agent"
	ModelConcept    = "Concept"
	ModelPlace      = "Place"
	ModelVocabTerm  = "VocabularyTerm"
)

func rdfTypeProperty() rdf.PropertyDef {
	return rdf.PropertyDef{Name: "rdf_type", Predicate: rdf.PredicateRdfType, Object: true, Repeatable: true}
}

// Agent is an embedded hash URI resource carrying a label, used for
// creators, contributors and publishers.
var Agent = &rdf.Model{
	Name: ModelAgent,
	Properties: []rdf.PropertyDef{
		{Name: "label", Predicate: rdf.PredicateRdfsLabel, Repeatable: true},
		{Name: "same_as", Predicate: rdf.PredicateOwlSameAs, Object: true, Repeatable: true},
		rdfTypeProperty(),
	},
}

// Concept is an embedded labeled subject term.
var Concept = &rdf.Model{
	Name: ModelConcept,
	Properties: []rdf.PropertyDef{
		{Name: "label", Predicate: rdf.PredicateRdfsLabel, Repeatable: true},
		{Name: "same_as", Predicate: rdf.PredicateOwlSameAs, Object: true, Repeatable: true},
		rdfTypeProperty(),
	},
}

// Place is an embedded labeled location.
var Place = &rdf.Model{
	Name: ModelPlace,
	Properties: []rdf.PropertyDef{
		{Name: "label", Predicate: rdf.PredicateRdfsLabel, Repeatable: true},
		{Name: "same_as", Predicate: rdf.PredicateOwlSameAs, Object: true, Repeatable: true},
		rdfTypeProperty(),
	},
}

// VocabularyTerm is the shape of terms resolved from controlled
// vocabularies.
var VocabularyTerm = &rdf.Model{
	Name: ModelVocabTerm,
	Properties: []rdf.PropertyDef{
		{Name: "label", Predicate: rdf.PredicateRdfsLabel, Repeatable: true},
		{Name: "same_as", Predicate: rdf.PredicateOwlSameAs, Object: true, Repeatable: true},
	},
}

var Item = &rdf.Model{
	Name:       ModelItem,
	TypeURI:    rdf.NSModel + "Item",
	IsTopLevel: true,
	Properties: []rdf.PropertyDef{
		{Name: "title", Predicate: rdf.NSDcterms + "title"},
		{Name: "identifier", Predicate: rdf.NSDcterms + "identifier", Repeatable: true},
		{Name: "accession_number", Predicate: rdf.NSBibo + "locator"},
		{Name: "handle", Predicate: rdf.NSDcterms + "hasVersion"},
		{Name: "date", Predicate: rdf.NSDce + "date"},
		{Name: "description", Predicate: rdf.NSDcterms + "description"},
		{Name: "alternate_title", Predicate: rdf.NSDcterms + "alternative", Repeatable: true},
		{Name: "creator", Predicate: rdf.NSDcterms + "creator", Object: true, Repeatable: true, Embedded: true, ObjectModel: ModelAgent},
		{Name: "contributor", Predicate: rdf.NSDcterms + "contributor", Object: true, Repeatable: true, Embedded: true, ObjectModel: ModelAgent},
		{Name: "publisher", Predicate: rdf.NSDcterms + "publisher", Object: true, Repeatable: true, Embedded: true, ObjectModel: ModelAgent},
		{Name: "subject", Predicate: rdf.NSDcterms + "subject", Object: true, Repeatable: true, Embedded: true, ObjectModel: ModelConcept},
		{Name: "location", Predicate: rdf.NSDcterms + "spatial", Object: true, Repeatable: true, Embedded: true, ObjectModel: ModelPlace},
		{Name: "rights", Predicate: rdf.NSDcterms + "rights", Object: true, Repeatable: true, Vocabulary: VocabRights, ObjectModel: ModelVocabTerm},
		{Name: "format", Predicate: rdf.NSDce + "format", Object: true, Repeatable: true, Vocabulary: VocabForm, ObjectModel: ModelVocabTerm},
		{Name: "presentation_set", Predicate: rdf.NSOre + "isAggregatedBy", Object: true, Repeatable: true, Vocabulary: VocabPresentationSet, ObjectModel: ModelVocabTerm},
		{Name: "archival_collection", Predicate: rdf.NSDcterms + "isPartOf", Object: true, Repeatable: true, ObjectModel: ModelCollection},
		{Name: "language", Predicate: rdf.NSDce + "language", Repeatable: true},
		{Name: "object_type", Predicate: rdf.NSDcterms + "type", Object: true, Repeatable: true},
		{Name: "member_of", Predicate: rdf.NSPcdm + "memberOf", Object: true},
		{Name: "has_member", Predicate: rdf.NSPcdm + "hasMember", Object: true, Repeatable: true, ObjectModel: ModelPage},
		{Name: "has_file", Predicate: rdf.NSPcdm + "hasFile", Object: true, Repeatable: true, ObjectModel: ModelFile},
		{Name: "first", Predicate: rdf.NSIana + "first", Object: true, ObjectModel: ModelProxy},
		{Name: "last", Predicate: rdf.NSIana + "last", Object: true},
		rdfTypeProperty(),
	},
}

var Letter = &rdf.Model{
	Name:       ModelLetter,
	TypeURI:    rdf.NSModel + "Letter",
	IsTopLevel: true,
	Properties: []rdf.PropertyDef{
		{Name: "title", Predicate: rdf.NSDcterms + "title"},
		{Name: "identifier", Predicate: rdf.NSDcterms + "identifier", Repeatable: true},
		{Name: "handle", Predicate: rdf.NSDcterms + "hasVersion"},
		{Name: "date", Predicate: rdf.NSDce + "date"},
		{Name: "description", Predicate: rdf.NSDcterms + "description"},
		{Name: "author", Predicate: rdf.NSDcterms + "creator", Object: true, Repeatable: true, Embedded: true, ObjectModel: ModelAgent},
		{Name: "recipient", Predicate: rdf.NSBibo + "recipient", Object: true, Repeatable: true, Embedded: true, ObjectModel: ModelAgent},
		{Name: "place", Predicate: rdf.NSDcterms + "spatial", Object: true, Repeatable: true, Embedded: true, ObjectModel: ModelPlace},
		{Name: "subject", Predicate: rdf.NSDcterms + "subject", Object: true, Repeatable: true, Embedded: true, ObjectModel: ModelConcept},
		{Name: "part_of", Predicate: rdf.NSDcterms + "isPartOf", Object: true, Repeatable: true, ObjectModel: ModelCollection},
		{Name: "rights", Predicate: rdf.NSDcterms + "rights", Object: true, Repeatable: true},
		{Name: "type", Predicate: rdf.NSDcterms + "type", Repeatable: true},
		{Name: "language", Predicate: rdf.NSDce + "language", Repeatable: true},
		{Name: "extent", Predicate: rdf.NSDcterms + "extent", Repeatable: true},
		{Name: "presentation_set", Predicate: rdf.NSOre + "isAggregatedBy", Object: true, Repeatable: true, Vocabulary: VocabPresentationSet, ObjectModel: ModelVocabTerm},
		{Name: "member_of", Predicate: rdf.NSPcdm + "memberOf", Object: true},
		{Name: "has_member", Predicate: rdf.NSPcdm + "hasMember", Object: true, Repeatable: true, ObjectModel: ModelPage},
		{Name: "has_file", Predicate: rdf.NSPcdm + "hasFile", Object: true, Repeatable: true, ObjectModel: ModelFile},
		{Name: "first", Predicate: rdf.NSIana + "first", Object: true, ObjectModel: ModelProxy},
		{Name: "last", Predicate: rdf.NSIana + "last", Object: true},
		rdfTypeProperty(),
	},
}

var Poster = &rdf.Model{
	Name:       ModelPoster,
	TypeURI:    rdf.NSModel + "Poster",
	IsTopLevel: true,
	Properties: []rdf.PropertyDef{
		{Name: "title", Predicate: rdf.NSDcterms + "title"},
		{Name: "identifier", Predicate: rdf.NSDcterms + "identifier", Repeatable: true},
		{Name: "handle", Predicate: rdf.NSDcterms + "hasVersion"},
		{Name: "date", Predicate: rdf.NSDce + "date"},
		{Name: "description", Predicate: rdf.NSDcterms + "description"},
		{Name: "part_of", Predicate: rdf.NSDcterms + "isPartOf"},
		{Name: "location", Predicate: rdf.NSDcterms + "spatial", Repeatable: true},
		{Name: "publisher", Predicate: rdf.NSDcterms + "publisher", Repeatable: true},
		{Name: "language", Predicate: rdf.NSDce + "language", Repeatable: true},
		{Name: "format", Predicate: rdf.NSDce + "format"},
		{Name: "subject", Predicate: rdf.NSDcterms + "subject", Repeatable: true},
		{Name: "rights", Predicate: rdf.NSDcterms + "rights", Object: true, Repeatable: true},
		{Name: "extent", Predicate: rdf.NSDcterms + "extent"},
		{Name: "presentation_set", Predicate: rdf.NSOre + "isAggregatedBy", Object: true, Repeatable: true, Vocabulary: VocabPresentationSet, ObjectModel: ModelVocabTerm},
		{Name: "member_of", Predicate: rdf.NSPcdm + "memberOf", Object: true},
		{Name: "has_member", Predicate: rdf.NSPcdm + "hasMember", Object: true, Repeatable: true, ObjectModel: ModelPage},
		{Name: "has_file", Predicate: rdf.NSPcdm + "hasFile", Object: true, Repeatable: true, ObjectModel: ModelFile},
		{Name: "first", Predicate: rdf.NSIana + "first", Object: true, ObjectModel: ModelProxy},
		{Name: "last", Predicate: rdf.NSIana + "last", Object: true},
		rdfTypeProperty(),
	},
}

var Issue = &rdf.Model{
	Name:       ModelIssue,
	TypeURI:    rdf.NSModel + "Issue",
	IsTopLevel: true,
	Properties: []rdf.PropertyDef{
		{Name: "title", Predicate: rdf.NSDcterms + "title"},
		{Name: "date", Predicate: rdf.NSDce + "date"},
		{Name: "volume", Predicate: rdf.NSBibo + "volume"},
		{Name: "issue", Predicate: rdf.NSBibo + "issue"},
		{Name: "edition", Predicate: rdf.NSBibo + "edition"},
		{Name: "presentation_set", Predicate: rdf.NSOre + "isAggregatedBy", Object: true, Repeatable: true, Vocabulary: VocabPresentationSet, ObjectModel: ModelVocabTerm},
		{Name: "member_of", Predicate: rdf.NSPcdm + "memberOf", Object: true},
		{Name: "has_member", Predicate: rdf.NSPcdm + "hasMember", Object: true, Repeatable: true, ObjectModel: ModelPage},
		{Name: "has_file", Predicate: rdf.NSPcdm + "hasFile", Object: true, Repeatable: true, ObjectModel: ModelFile},
		{Name: "first", Predicate: rdf.NSIana + "first", Object: true, ObjectModel: ModelProxy},
		{Name: "last", Predicate: rdf.NSIana + "last", Object: true},
		rdfTypeProperty(),
	},
}

var Page = &rdf.Model{
	Name:    ModelPage,
	TypeURI: rdf.NSPcdm + "Object",
	Properties: []rdf.PropertyDef{
		{Name: "title", Predicate: rdf.NSDcterms + "title"},
		{Name: "number", Predicate: rdf.NSBibo + "number"},
		{Name: "member_of", Predicate: rdf.NSPcdm + "memberOf", Object: true},
		{Name: "has_file", Predicate: rdf.NSPcdm + "hasFile", Object: true, Repeatable: true, ObjectModel: ModelFile},
		rdfTypeProperty(),
	},
}

var File = &rdf.Model{
	Name:    ModelFile,
	TypeURI: rdf.NSPcdm + "File",
	Properties: []rdf.PropertyDef{
		{Name: "title", Predicate: rdf.NSDcterms + "title"},
		{Name: "filename", Predicate: rdf.NSEbucore + "filename"},
		{Name: "mime_type", Predicate: rdf.NSEbucore + "hasMimeType"},
		{Name: "size", Predicate: rdf.NSPremis + "hasSize"},
		{Name: "created_by", Predicate: rdf.NSFedora + "createdBy"},
		{Name: "last_modified_by", Predicate: rdf.NSFedora + "lastModifiedBy"},
		{Name: "x_resolution", Predicate: NSExif + "xResolution"},
		{Name: "y_resolution", Predicate: NSExif + "yResolution"},
		{Name: "file_of", Predicate: rdf.NSPcdm + "fileOf", Object: true},
		rdfTypeProperty(),
	},
}

var Proxy = &rdf.Model{
	Name:    ModelProxy,
	TypeURI: rdf.NSOre + "Proxy",
	Properties: []rdf.PropertyDef{
		{Name: "title", Predicate: rdf.NSDcterms + "title"},
		{Name: "proxy_for", Predicate: rdf.NSOre + "proxyFor", Object: true},
		{Name: "proxy_in", Predicate: rdf.NSOre + "proxyIn", Object: true},
		{Name: "next", Predicate: rdf.NSIana + "next", Object: true, ObjectModel: ModelProxy},
		{Name: "prev", Predicate: rdf.NSIana + "prev", Object: true},
		rdfTypeProperty(),
	},
}

var Collection = &rdf.Model{
	Name:       ModelCollection,
	TypeURI:    rdf.NSModel + "Collection",
	IsTopLevel: true,
	Properties: []rdf.PropertyDef{
		{Name: "title", Predicate: rdf.NSDcterms + "title"},
		{Name: "label", Predicate: rdf.PredicateRdfsLabel, Repeatable: true},
		rdfTypeProperty(),
	},
}

// all models, in guessing order: the explicitly typed content models
// first, then the structural shapes.
var models = []*rdf.Model{
	Item, Letter, Poster, Issue, Collection,
	Proxy, File, Page,
}

var modelsByName = func() map[string]*rdf.Model {
	byName := map[string]*rdf.Model{
		ModelAgent:     Agent,
		ModelConcept:   Concept,
		ModelPlace:     Place,
		ModelVocabTerm: VocabularyTerm,
	}
	for _, m := range models {
		byName[m.Name] = m
	}
	return byName
}()

// ModelByName returns the model with the given name, or nil.
func ModelByName(name string) *rdf.Model {
	return modelsByName[name]
}

// GuessModel determines the content model of the subject uri from its
// rdf:type values.
func GuessModel(graph *rdf.Graph, uri string) (*rdf.Model, error) {
	for _, m := range models {
		if graph.HasType(uri, m.TypeURI) {
			return m, nil
		}
	}
	return nil, fmt.Errorf("unable to determine content model of %s", uri)
}
