package solr

import (
	"encoding/json"
	"testing"

	"github.com/matryer/is"
)

func TestDiffOfIdenticalDocumentsOnlyCopiesIdentityFields(t *testing.T) {
	is := is.New(t)

	doc := Document{
		"id":          "foo",
		"_root_":      "bar",
		"title__txt":  "Foo",
		"number__int": 7,
	}

	diff, err := AtomicDiff(doc, doc)
	is.NoErr(err)

	is.Equal(len(diff), 2)
	is.Equal(diff["id"], "foo")
	is.Equal(diff["_root_"], "bar")
}

func TestDiffSetsChangedField(t *testing.T) {
	is := is.New(t)

	diff, err := AtomicDiff(
		Document{"id": "foo", "title": "Foo"},
		Document{"id": "foo", "title": "Bar"},
	)
	is.NoErr(err)

	is.Equal(diff["id"], "foo")
	is.Equal(diff["title"], map[string]any{"set": "Bar"})
}

func TestDiffClearsRemovedField(t *testing.T) {
	is := is.New(t)

	diff, err := AtomicDiff(
		Document{"id": "foo", "title": "Foo"},
		Document{"id": "foo"},
	)
	is.NoErr(err)

	is.Equal(diff["title"], map[string]any{"set": nil})
}

func TestDiffSetsAddedField(t *testing.T) {
	is := is.New(t)

	diff, err := AtomicDiff(
		Document{"id": "foo"},
		Document{"id": "foo", "title": "Foo"},
	)
	is.NoErr(err)

	is.Equal(diff["title"], map[string]any{"set": "Foo"})
}

func TestDiffIgnoresVersionField(t *testing.T) {
	is := is.New(t)

	diff, err := AtomicDiff(
		Document{"id": "foo", "_version_": int64(17)},
		Document{"id": "foo"},
	)
	is.NoErr(err)

	_, present := diff["_version_"]
	is.True(!present)
}

func TestDiffListComparisonIsOrderSensitive(t *testing.T) {
	is := is.New(t)

	diff, err := AtomicDiff(
		Document{"id": "foo", "subject__txts": []any{"a", "b"}},
		Document{"id": "foo", "subject__txts": []any{"b", "a"}},
	)
	is.NoErr(err)

	is.Equal(diff["subject__txts"], map[string]any{"set": []any{"b", "a"}})
}

func TestDiffCopiesIdentityFieldsMissingFromOld(t *testing.T) {
	is := is.New(t)

	diff, err := AtomicDiff(
		Document{},
		Document{"id": "foo", "title": "Foo"},
	)
	is.NoErr(err)

	is.Equal(diff["id"], "foo")
	is.Equal(diff["title"], map[string]any{"set": "Foo"})
}

func TestDiffIgnoresValueRepresentation(t *testing.T) {
	is := is.New(t)

	// an unchanged document fetched back from the index arrives JSON
	// decoded, with float64 numbers and plain maps for children
	newDoc := Document{
		"id":          "foo",
		"number__int": 7,
		"item__has_member": []any{
			Document{"id": "bar", "page__title__txt": "Page 1"},
		},
	}

	data, err := json.Marshal(newDoc)
	is.NoErr(err)
	oldDoc := Document{}
	is.NoErr(json.Unmarshal(data, &oldDoc))

	diff, err := AtomicDiff(oldDoc, newDoc)
	is.NoErr(err)

	is.Equal(len(diff), 1)
	is.Equal(diff["id"], "foo")
}
