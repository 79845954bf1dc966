package indexers

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/digilib/solrizer/pkg/solr"
	"github.com/itchyny/gojq"
)

// AggregateFields builds new fields by running configured jq queries
// over the document accumulated so far. Settings map each target field
// name to a list of query strings; the field value is the concatenation
// of all non null results across its queries.
func AggregateFields(ctx context.Context, ic *Context) (solr.Document, error) {
	settings := ic.Settings("aggregate_fields")
	if len(settings) == 0 {
		return solr.Document{}, nil
	}

	// gojq only accepts plain JSON types, so the document is
	// round-tripped to strip the named map and slice types.
	input, err := jsonClone(ic.Doc)
	if err != nil {
		return nil, err
	}

	fields := solr.Document{}

	for name, value := range settings {
		queries, err := stringList(value)
		if err != nil {
			return nil, &ConfigurationError{Indexer: "aggregate_fields", Setting: name, Detail: err.Error()}
		}

		values := []any{}
		for _, queryString := range queries {
			query, err := gojq.Parse(queryString)
			if err != nil {
				return nil, &ConfigurationError{
					Indexer: "aggregate_fields",
					Setting: name,
					Detail:  fmt.Sprintf("invalid query %q: %s", queryString, err.Error()),
				}
			}

			iter := query.RunWithContext(ctx, input)
			for {
				v, ok := iter.Next()
				if !ok {
					break
				}
				if err, isErr := v.(error); isErr {
					return nil, &ConfigurationError{
						Indexer: "aggregate_fields",
						Setting: name,
						Detail:  fmt.Sprintf("query %q failed: %s", queryString, err.Error()),
					}
				}
				if v == nil {
					continue
				}
				values = append(values, v)
			}
		}

		fields[name] = values
	}

	return fields, nil
}

func jsonClone(doc solr.Document) (map[string]any, error) {
	data, err := json.Marshal(doc)
	if err != nil {
		return nil, err
	}

	clone := map[string]any{}
	if err := json.Unmarshal(data, &clone); err != nil {
		return nil, err
	}
	return clone, nil
}

func stringList(value any) ([]string, error) {
	switch list := value.(type) {
	case []string:
		return list, nil
	case []any:
		strs := make([]string, 0, len(list))
		for _, item := range list {
			s, isString := item.(string)
			if !isString {
				return nil, fmt.Errorf("expected a list of strings, got %T", item)
			}
			strs = append(strs, s)
		}
		return strs, nil
	default:
		return nil, fmt.Errorf("expected a list of strings, got %T", value)
	}
}
