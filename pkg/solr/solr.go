// Package solr holds the index document type, the atomic update diff,
// and a small client for fetching the current version of a document
// from a Solr query endpoint.
package solr

import (
	"fmt"
	"time"
)

// Document is a flat mapping of index field names to values. Values are
// scalars, lists of scalars, or lists of nested Documents.
type Document map[string]any

// Add wraps a document in the insert command structure Solr expects.
func Add(doc Document) map[string]any {
	return map[string]any{"add": map[string]any{"doc": doc}}
}

// Datetime parses s as an ISO 8601 timestamp, converts it to UTC and
// formats it with the trailing "Z" zone marker that Solr expects. The
// string must carry at least a fully qualified YYYY-MM-DD date; a time
// without a zone is taken to be UTC.
func Datetime(s string) (string, error) {
	layouts := []string{
		time.RFC3339,
		"2006-01-02T15:04:05",
		"2006-01-02",
	}

	for _, layout := range layouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC().Format(time.RFC3339), nil
		}
	}

	return "", fmt.Errorf("cannot parse %q as a timestamp", s)
}
