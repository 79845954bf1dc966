package rdf

import "sort"

// Graph holds the triples describing one repository resource, indexed by
// subject and predicate. A graph typically contains the resource itself
// plus any hash URI subjects that are structurally part of it.
type Graph struct {
	triples map[string]map[string][]Term
}

func NewGraph() *Graph {
	return &Graph{triples: map[string]map[string][]Term{}}
}

// Add appends a triple to the graph.
func (g *Graph) Add(subject, predicate string, object Term) {
	preds, ok := g.triples[subject]
	if !ok {
		preds = map[string][]Term{}
		g.triples[subject] = preds
	}
	preds[predicate] = append(preds[predicate], object)
}

// Objects returns all object terms for the given subject and predicate.
func (g *Graph) Objects(subject, predicate string) []Term {
	return g.triples[subject][predicate]
}

// Subjects returns the distinct subject URIs in the graph, sorted.
func (g *Graph) Subjects() []string {
	subjects := make([]string, 0, len(g.triples))
	for s := range g.triples {
		subjects = append(subjects, s)
	}
	sort.Strings(subjects)
	return subjects
}

// Has reports whether the graph contains any triples about subject.
func (g *Graph) Has(subject string) bool {
	return len(g.triples[subject]) > 0
}

// Types returns the rdf:type URIs of the given subject.
func (g *Graph) Types(subject string) []string {
	objects := g.Objects(subject, PredicateRdfType)
	types := make([]string, 0, len(objects))
	for _, o := range objects {
		if o.IsURI() {
			types = append(types, o.URI)
		}
	}
	return types
}

// HasType reports whether subject has the given rdf:type.
func (g *Graph) HasType(subject, typeURI string) bool {
	for _, t := range g.Types(subject) {
		if t == typeURI {
			return true
		}
	}
	return false
}
