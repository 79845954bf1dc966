package indexers

import "fmt"

// UnknownIndexerError is returned when the pipeline configuration names
// an indexer that is not registered.
type UnknownIndexerError struct {
	Name string
}

func (e *UnknownIndexerError) Error() string {
	return fmt.Sprintf("no indexer registered under the name %q", e.Name)
}

// ConfigurationError is returned when an indexer is missing or has been
// given an unusable setting. It signals an operator problem rather than
// a problem with the resource being indexed.
type ConfigurationError struct {
	Indexer string
	Setting string
	Detail  string
}

func (e *ConfigurationError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("indexer %s: setting %s: %s", e.Indexer, e.Setting, e.Detail)
	}
	return fmt.Sprintf("indexer %s: setting %s is missing or invalid", e.Indexer, e.Setting)
}

// DataError is returned when the repository data for a resource does
// not satisfy an indexer's structural requirements.
type DataError struct {
	URI    string
	Reason string
}

func (e *DataError) Error() string {
	if e.URI == "" {
		return e.Reason
	}
	return fmt.Sprintf("%s: %s", e.URI, e.Reason)
}
