package indexers

import (
	"context"
	"strings"

	"github.com/digilib/solrizer/pkg/solr"
	"github.com/yosida95/uritemplate/v3"
)

// IIIFLinksFields records the IIIF presentation endpoints of a paged
// resource: its manifest identifier and URL, and one thumbnail
// identifier and URL per page, in reading order. URL patterns are URI
// templates taking a single id variable.
func IIIFLinksFields(ctx context.Context, ic *Context) (solr.Document, error) {
	settings := ic.Settings("iiif_links")

	identifierPrefix, err := requiredSetting(settings, "identifier_prefix")
	if err != nil {
		return nil, err
	}
	manifestTemplate, err := requiredTemplate(settings, "manifests_url_pattern")
	if err != nil {
		return nil, err
	}
	thumbnailTemplate, err := requiredTemplate(settings, "thumbnail_url_pattern")
	if err != nil {
		return nil, err
	}

	identifier := identifierPrefix + iiifIdentifier(ic, ic.Resource.URI)
	manifestURL, err := expandIdentifier(manifestTemplate, identifier)
	if err != nil {
		return nil, &ConfigurationError{Indexer: "iiif_links", Setting: "manifests_url_pattern", Detail: err.Error()}
	}

	seq, err := NewPageSequence(ctx, ic)
	if err != nil {
		return nil, err
	}

	thumbnailIdentifiers := []string{}
	thumbnailURLs := []string{}
	if seq != nil {
		for _, page := range seq.Pages {
			fileURI := firstFileURI(page)
			if fileURI == "" {
				continue
			}

			thumbnailIdentifier := identifierPrefix + iiifIdentifier(ic, fileURI)
			thumbnailURL, err := expandIdentifier(thumbnailTemplate, thumbnailIdentifier)
			if err != nil {
				return nil, &ConfigurationError{Indexer: "iiif_links", Setting: "thumbnail_url_pattern", Detail: err.Error()}
			}
			thumbnailIdentifiers = append(thumbnailIdentifiers, thumbnailIdentifier)
			thumbnailURLs = append(thumbnailURLs, thumbnailURL)
		}
	}

	return solr.Document{
		"iiif_manifest__id":                   identifier,
		"iiif_manifest__uri":                  manifestURL,
		"iiif_thumbnail_identifier__sequence": thumbnailIdentifiers,
		"iiif_thumbnail_uri__sequence":        thumbnailURLs,
	}, nil
}

// iiifIdentifier converts a repository URI into the flat identifier
// form IIIF services expect, with path separators folded to colons.
func iiifIdentifier(ic *Context, uri string) string {
	path := strings.Trim(ic.Repo.RepoPath(uri), "/")
	return strings.ReplaceAll(path, "/", ":")
}

func firstFileURI(page solr.Document) string {
	files, ok := page["page__has_file"].([]any)
	if !ok || len(files) == 0 {
		return ""
	}
	if doc, isDoc := files[0].(solr.Document); isDoc {
		if id, hasID := doc["id"].(string); hasID {
			return id
		}
	}
	return ""
}

func requiredSetting(settings map[string]any, name string) (string, error) {
	value, ok := settings[name].(string)
	if !ok || value == "" {
		return "", &ConfigurationError{Indexer: "iiif_links", Setting: name}
	}
	return value, nil
}

func requiredTemplate(settings map[string]any, name string) (*uritemplate.Template, error) {
	pattern, err := requiredSetting(settings, name)
	if err != nil {
		return nil, err
	}

	template, err := uritemplate.New(pattern)
	if err != nil {
		return nil, &ConfigurationError{Indexer: "iiif_links", Setting: name, Detail: err.Error()}
	}
	return template, nil
}

func expandIdentifier(template *uritemplate.Template, id string) (string, error) {
	return template.Expand(uritemplate.Values{
		"id": uritemplate.String(id),
	})
}
