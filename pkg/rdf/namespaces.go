package rdf

import "strings"

// Well known namespaces used by the digital library content models.
const (
	NSRdf      = "http://www.w3.org/1999/02/22-rdf-syntax-ns#"
	NSRdfs     = "http://www.w3.org/2000/01/rdf-schema#"
	NSOwl      = "http://www.w3.org/2002/07/owl#"
	NSXsd      = "http://www.w3.org/2001/XMLSchema#"
	NSDcterms  = "http://purl.org/dc/terms/"
	NSDce      = "http://purl.org/dc/elements/1.1/"
	NSBibo     = "http://purl.org/ontology/bibo/"
	NSEbucore  = "http://www.ebu.ch/metadata/ontologies/ebucore/ebucore#"
	NSFedora   = "http://fedora.info/definitions/v4/repository#"
	NSGeo      = "http://www.opengis.net/ont/geosparql#"
	NSIana     = "http://www.iana.org/assignments/relation/"
	NSOre      = "http://www.openarchives.org/ore/terms/"
	NSPcdm     = "http://pcdm.org/models#"
	NSPcdmUse  = "http://pcdm.org/use#"
	NSPremis   = "http://www.loc.gov/premis/rdf/v1#"
	NSSkos     = "http://www.w3.org/2004/02/skos/core#"
	NSAccess   = "http://purl.org/digilib/access#"
	NSModel    = "http://purl.org/digilib/model#"
	NSDatatype = "http://purl.org/digilib/datatype#"
)

// RDF types with special meaning for discoverability and OCR handling.
const (
	TypePublished              = NSAccess + "Published"
	TypeHidden                 = NSAccess + "Hidden"
	TypeExtractedText          = NSPcdmUse + "ExtractedText"
	TypePreservationMasterFile = NSPcdmUse + "PreservationMasterFile"
)

// Literal datatypes with dedicated index field mappings.
const (
	XsdInt             = NSXsd + "int"
	XsdInteger         = NSXsd + "integer"
	XsdLong            = NSXsd + "long"
	XsdDateTime        = NSXsd + "dateTime"
	DTAccessionNumber  = NSDatatype + "accessionNumber"
	DTHandle           = NSDatatype + "handle"
	PredicateRdfType   = NSRdf + "type"
	PredicateRdfsLabel = NSRdfs + "label"
	PredicateOwlSameAs = NSOwl + "sameAs"
)

// prefixes maps namespace URIs to the short names used when shortening
// URIs into CURIEs.
var prefixes = map[string]string{
	NSRdf:      "rdf",
	NSRdfs:     "rdfs",
	NSOwl:      "owl",
	NSXsd:      "xsd",
	NSDcterms:  "dcterms",
	NSDce:      "dc",
	NSBibo:     "bibo",
	NSEbucore:  "ebucore",
	NSFedora:   "fedora",
	NSIana:     "iana",
	NSOre:      "ore",
	NSPcdm:     "pcdm",
	NSPcdmUse:  "pcdmuse",
	NSPremis:   "premis",
	NSSkos:     "skos",
	NSAccess:   "access",
	NSModel:    "model",
	NSDatatype: "datatype",
}

// Shorten attempts to shorten uri into a CURIE with a known namespace
// prefix. If no prefix matches, the full uri string is returned instead.
func Shorten(uri string) string {
	for ns, prefix := range prefixes {
		if local, found := strings.CutPrefix(uri, ns); found && local != "" {
			return prefix + ":" + local
		}
	}
	return uri
}
