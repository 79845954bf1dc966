package solr

import (
	"encoding/json"
	"reflect"
)

// copyKeys are identity fields copied verbatim into an atomic update,
// never wrapped in a set operation.
var copyKeys = map[string]bool{
	"id":     true,
	"_root_": true,
}

// skipKeys are engine internal bookkeeping fields that never appear in
// atomic updates.
var skipKeys = map[string]bool{
	"_version_": true,
}

// AtomicDiff creates a Solr atomic update instruction set describing the
// changes from oldDoc to newDoc. Unchanged fields are omitted, changed
// or added fields become {"set": value}, and fields present only in
// oldDoc become {"set": nil}.
//
// Both documents are normalized through a JSON round trip before
// comparison, so a freshly built document carrying native Go values can
// be diffed against one decoded from an index query response.
//
// Comparison of list valued fields is order sensitive; callers that need
// order insensitive behavior must sort multivalued fields first.
func AtomicDiff(oldDoc, newDoc Document) (Document, error) {
	oldDoc, err := normalize(oldDoc)
	if err != nil {
		return nil, err
	}
	newDoc, err = normalize(newDoc)
	if err != nil {
		return nil, err
	}

	diff := Document{}

	for key, oldValue := range oldDoc {
		switch {
		case copyKeys[key]:
			diff[key] = oldValue
		case skipKeys[key]:
			continue
		default:
			newValue, present := newDoc[key]
			if !present {
				diff[key] = map[string]any{"set": nil}
				continue
			}
			if !reflect.DeepEqual(oldValue, newValue) {
				diff[key] = map[string]any{"set": newValue}
			}
		}
	}

	for key, newValue := range newDoc {
		if _, present := oldDoc[key]; present {
			continue
		}
		switch {
		case copyKeys[key]:
			diff[key] = newValue
		case skipKeys[key]:
			continue
		default:
			diff[key] = map[string]any{"set": newValue}
		}
	}

	return diff, nil
}

// normalize round trips a document through JSON. Documents fetched from
// the index arrive decoded (float64 numbers, map[string]any children)
// while projected documents carry ints and nested Documents; comparing
// mixed representations would flag every such field as changed.
func normalize(doc Document) (Document, error) {
	data, err := json.Marshal(doc)
	if err != nil {
		return nil, err
	}

	normalized := Document{}
	if err := json.Unmarshal(data, &normalized); err != nil {
		return nil, err
	}
	return normalized, nil
}
