package rdf

import (
	"strings"
	"testing"

	"github.com/matryer/is"
)

func TestParseNTriples(t *testing.T) {
	is := is.New(t)

	doc := `# a comment
<http://example.com/obj1> <http://purl.org/dc/terms/title> "Foo" .
<http://example.com/obj1> <http://purl.org/dc/terms/alternative> "Der Foo"@de .
<http://example.com/obj1> <http://purl.org/ontology/bibo/number> "17"^^<http://www.w3.org/2001/XMLSchema#int> .

<http://example.com/obj1> <http://www.w3.org/1999/02/22-rdf-syntax-ns#type> <http://purl.org/digilib/model#Item> .
`

	g, err := ParseNTriples(strings.NewReader(doc))
	is.NoErr(err)

	title := g.Objects("http://example.com/obj1", "http://purl.org/dc/terms/title")
	is.Equal(len(title), 1)
	is.Equal(title[0].String(), "Foo")

	alt := g.Objects("http://example.com/obj1", "http://purl.org/dc/terms/alternative")
	is.Equal(alt[0].Literal.Language, "de")

	number := g.Objects("http://example.com/obj1", "http://purl.org/ontology/bibo/number")
	is.Equal(number[0].Literal.Datatype, XsdInt)

	is.True(g.HasType("http://example.com/obj1", NSModel+"Item"))
}

func TestParseNTriplesEscapeSequences(t *testing.T) {
	is := is.New(t)

	doc := `<http://example.com/obj1> <http://purl.org/dc/terms/title> "line\none\ttab \"quoted\" é \U0001F409" .
`

	g, err := ParseNTriples(strings.NewReader(doc))
	is.NoErr(err)

	title := g.Objects("http://example.com/obj1", "http://purl.org/dc/terms/title")
	is.Equal(title[0].String(), "line\none\ttab \"quoted\" é \U0001F409")
}

func TestParseNTriplesRejectsMissingTerminator(t *testing.T) {
	is := is.New(t)

	doc := `<http://example.com/obj1> <http://purl.org/dc/terms/title> "Foo"`

	_, err := ParseNTriples(strings.NewReader(doc))
	is.True(err != nil)
}

func TestParseNTriplesRejectsUnterminatedLiteral(t *testing.T) {
	is := is.New(t)

	doc := `<http://example.com/obj1> <http://purl.org/dc/terms/title> "Foo .`

	_, err := ParseNTriples(strings.NewReader(doc))
	is.True(err != nil)
}

func TestGraphSubjectsAreSorted(t *testing.T) {
	is := is.New(t)

	g := NewGraph()
	g.Add("http://example.com/b", PredicateRdfsLabel, NewLiteral("b"))
	g.Add("http://example.com/a", PredicateRdfsLabel, NewLiteral("a"))

	is.Equal(g.Subjects(), []string{"http://example.com/a", "http://example.com/b"})
}

func TestShorten(t *testing.T) {
	is := is.New(t)

	is.Equal(Shorten(NSPcdm+"Object"), "pcdm:Object")
	is.Equal(Shorten(NSDcterms+"title"), "dcterms:title")
	is.Equal(Shorten("http://example.com/no-prefix"), "http://example.com/no-prefix")
}
