package rdf

// Literal is an RDF literal value with an optional language tag and
// an optional datatype URI. A literal never has both.
type Literal struct {
	Value    string
	Language string
	Datatype string
}

func (l Literal) String() string {
	return l.Value
}

// Term is a single object value in a triple: either a URI reference
// or a literal.
type Term struct {
	URI     string
	Literal *Literal
}

// NewURIRef creates a Term referencing another resource.
func NewURIRef(uri string) Term {
	return Term{URI: uri}
}

// NewLiteral creates a plain literal Term.
func NewLiteral(value string) Term {
	return Term{Literal: &Literal{Value: value}}
}

// NewLangLiteral creates a language tagged literal Term.
func NewLangLiteral(value, language string) Term {
	return Term{Literal: &Literal{Value: value, Language: language}}
}

// NewTypedLiteral creates a datatyped literal Term.
func NewTypedLiteral(value, datatype string) Term {
	return Term{Literal: &Literal{Value: value, Datatype: datatype}}
}

// IsURI reports whether the term is a URI reference.
func (t Term) IsURI() bool {
	return t.Literal == nil
}

func (t Term) String() string {
	if t.Literal != nil {
		return t.Literal.Value
	}
	return t.URI
}
