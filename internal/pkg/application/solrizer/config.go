package solrizer

import (
	"io"

	yaml "gopkg.in/yaml.v2"
)

// DefaultPipeline is the pipeline used for content models without an
// explicit configuration and without a configured default.
var DefaultPipeline = []string{"content_model"}

// Config maps content model names to indexer pipelines and carries the
// per indexer settings. The special pipeline name __default__ applies
// to any model without its own entry.
type Config struct {
	Pipelines       map[string][]string       `yaml:"pipelines"`
	IndexerSettings map[string]map[string]any `yaml:"indexerSettings"`
}

// PipelineFor returns the pipeline configured for the named content
// model.
func (cfg Config) PipelineFor(model string) []string {
	if pipeline, configured := cfg.Pipelines[model]; configured {
		return pipeline
	}
	if pipeline, configured := cfg.Pipelines["__default__"]; configured {
		return pipeline
	}
	return DefaultPipeline
}

// LoadConfiguration reads a YAML pipeline configuration.
func LoadConfiguration(data io.Reader) (*Config, error) {

	buf, err := io.ReadAll(data)
	if err != nil {
		return nil, err
	}

	cfg := &Config{}
	if err = yaml.Unmarshal(buf, cfg); err != nil {
		return nil, err
	}

	for name, settings := range cfg.IndexerSettings {
		cfg.IndexerSettings[name] = normalizeMap(settings)
	}

	return cfg, nil
}

// normalizeMap recursively converts the interface keyed maps the YAML
// decoder produces into string keyed maps, so settings can be handed to
// JSON based tooling.
func normalizeMap(m map[string]any) map[string]any {
	for key, value := range m {
		m[key] = normalizeValue(value)
	}
	return m
}

func normalizeValue(value any) any {
	switch v := value.(type) {
	case map[any]any:
		normalized := make(map[string]any, len(v))
		for key, item := range v {
			if s, isString := key.(string); isString {
				normalized[s] = normalizeValue(item)
			}
		}
		return normalized
	case []any:
		for i, item := range v {
			v[i] = normalizeValue(item)
		}
		return v
	default:
		return value
	}
}
