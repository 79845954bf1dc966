package rdf

// PropertyDef declares one named, typed property of a content model.
// Multiplicity and the data/object distinction are fixed here; they are
// never inferred from the values present at runtime.
type PropertyDef struct {
	// Name is the attribute name used when generating index fields.
	// Unique within a model.
	Name string

	// Predicate is the RDF predicate the values are read from.
	Predicate string

	// Object marks this as an object property whose values are URI
	// references. When false, values are literals.
	Object bool

	// Repeatable marks the property as multivalued.
	Repeatable bool

	// Embedded marks an object property whose values are hash URI
	// sub-resources described in the same graph as their parent.
	Embedded bool

	// Vocabulary is the URI of the controlled vocabulary the values of
	// this object property are drawn from, if any.
	Vocabulary string

	// ObjectModel names the content model used to describe linked or
	// embedded objects. Empty when referenced URIs are passed through
	// without description.
	ObjectModel string
}

// Model is one content model: a fixed, ordered set of property
// definitions bound to a model name.
type Model struct {
	Name       string
	TypeURI    string
	IsTopLevel bool
	Properties []PropertyDef
}

// Prefix returns the field name prefix used for documents of this model.
func (m *Model) Prefix() string {
	return lower(m.Name) + "__"
}

func lower(s string) string {
	b := []byte(s)
	for i, c := range b {
		if c >= 'A' && c <= 'Z' {
			b[i] = c + ('a' - 'A')
		}
	}
	return string(b)
}

// TypedResource is a single resource from a graph, described using a
// content model. All property access goes through the model's property
// definitions.
type TypedResource struct {
	URI   string
	Model *Model
	graph *Graph
}

// Describe binds the subject uri in graph to the given model.
func Describe(graph *Graph, uri string, model *Model) *TypedResource {
	return &TypedResource{URI: uri, Model: model, graph: graph}
}

// Graph exposes the backing graph, so embedded hash URI children can be
// described against it.
func (r *TypedResource) Graph() *Graph {
	return r.graph
}

// Properties returns all declared properties bound to their values, in
// declaration order.
func (r *TypedResource) Properties() []Property {
	props := make([]Property, 0, len(r.Model.Properties))
	for i := range r.Model.Properties {
		props = append(props, r.bind(&r.Model.Properties[i]))
	}
	return props
}

// Property returns the named property bound to its values. The second
// return value is false if the model does not declare the name.
func (r *TypedResource) Property(name string) (Property, bool) {
	for i := range r.Model.Properties {
		if r.Model.Properties[i].Name == name {
			return r.bind(&r.Model.Properties[i]), true
		}
	}
	return Property{}, false
}

// TypeURIs returns the rdf:type URIs of the resource.
func (r *TypedResource) TypeURIs() []string {
	return r.graph.Types(r.URI)
}

// HasType reports whether the resource has the given rdf:type.
func (r *TypedResource) HasType(typeURI string) bool {
	return r.graph.HasType(r.URI, typeURI)
}

func (r *TypedResource) bind(def *PropertyDef) Property {
	return Property{Def: def, values: r.graph.Objects(r.URI, def.Predicate), resource: r}
}

// Property is a model property bound to its values on one resource.
type Property struct {
	Def      *PropertyDef
	values   []Term
	resource *TypedResource
}

// Len returns the number of values the property has.
func (p Property) Len() int {
	return len(p.values)
}

// Values returns the raw terms.
func (p Property) Values() []Term {
	return p.values
}

// Literals returns the literal values of a data property.
func (p Property) Literals() []Literal {
	literals := make([]Literal, 0, len(p.values))
	for _, v := range p.values {
		if v.Literal != nil {
			literals = append(literals, *v.Literal)
		}
	}
	return literals
}

// Strings returns all values rendered as plain strings.
func (p Property) Strings() []string {
	strs := make([]string, 0, len(p.values))
	for _, v := range p.values {
		strs = append(strs, v.String())
	}
	return strs
}

// URIs returns the URI references of an object property.
func (p Property) URIs() []string {
	uris := make([]string, 0, len(p.values))
	for _, v := range p.values {
		if v.IsURI() {
			uris = append(uris, v.URI)
		}
	}
	return uris
}

// FirstURI returns the first URI value, or "" if the property is empty.
func (p Property) FirstURI() string {
	uris := p.URIs()
	if len(uris) == 0 {
		return ""
	}
	return uris[0]
}

// FirstString returns the first value as a string, or "" when empty.
func (p Property) FirstString() string {
	if len(p.values) == 0 {
		return ""
	}
	return p.values[0].String()
}

// Datatype returns the datatype shared by the property's literal values,
// or "" when untyped. Datatypes are declared per value in RDF but a
// property definition only ever carries one in practice, so the first
// typed literal wins.
func (p Property) Datatype() string {
	for _, v := range p.values {
		if v.Literal != nil && v.Literal.Datatype != "" {
			return v.Literal.Datatype
		}
	}
	return ""
}

// Languages returns the distinct language tags across the property's
// literal values. Untagged literals contribute the empty string as its
// own partition.
func (p Property) Languages() []string {
	seen := map[string]bool{}
	langs := []string{}
	for _, v := range p.values {
		if v.Literal == nil {
			continue
		}
		if !seen[v.Literal.Language] {
			seen[v.Literal.Language] = true
			langs = append(langs, v.Literal.Language)
		}
	}
	return langs
}
