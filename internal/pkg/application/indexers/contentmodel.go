package indexers

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/digilib/solrizer/pkg/datamodels/dlib"
	"github.com/digilib/solrizer/pkg/rdf"
	"github.com/digilib/solrizer/pkg/repository"
	"github.com/digilib/solrizer/pkg/solr"
	"github.com/digilib/solrizer/pkg/vocab"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
	"golang.org/x/text/language"
)

// converter turns one RDF term into an index field value.
type converter func(rdf.Term) (any, error)

type fieldSpec struct {
	suffix  string
	convert converter
}

func stringValue(t rdf.Term) (any, error) {
	return t.String(), nil
}

func intValue(t rdf.Term) (any, error) {
	n, err := strconv.Atoi(strings.TrimSpace(t.String()))
	if err != nil {
		return nil, fmt.Errorf("not an integer: %q", t.String())
	}
	return n, nil
}

func datetimeValue(t rdf.Term) (any, error) {
	return solr.Datetime(t.String())
}

func uriValue(t rdf.Term) (any, error) {
	return t.URI, nil
}

func curieValue(t rdf.Term) (any, error) {
	return rdf.Shorten(t.URI), nil
}

// fieldSpecsByDatatype maps literal datatypes to their field suffix and
// value conversion. Typed literals bypass language partitioning.
var fieldSpecsByDatatype = map[string]fieldSpec{
	rdf.XsdInt:            {suffix: "__int", convert: intValue},
	rdf.XsdInteger:        {suffix: "__int", convert: intValue},
	rdf.XsdLong:           {suffix: "__int", convert: intValue},
	rdf.XsdDateTime:       {suffix: "__dt", convert: datetimeValue},
	rdf.DTAccessionNumber: {suffix: "__id", convert: stringValue},
	rdf.DTHandle:          {suffix: "__id", convert: stringValue},
}

// fieldSpecsByName maps attribute names whose untyped literal values
// still get a dedicated suffix instead of the plain text treatment.
var fieldSpecsByName = map[string]fieldSpec{
	"identifier":       {suffix: "__id", convert: stringValue},
	"date":             {suffix: "__edtf", convert: stringValue},
	"filename":         {suffix: "__str", convert: stringValue},
	"mime_type":        {suffix: "__str", convert: stringValue},
	"created_by":       {suffix: "__str", convert: stringValue},
	"last_modified_by": {suffix: "__str", convert: stringValue},
}

// skipFieldsByModel lists properties that are declared on a model but
// excluded from plain field generation. The sequence head is consumed
// by the page sequence indexer instead.
var skipFieldsByModel = map[string]map[string]bool{
	dlib.ModelItem:   {"first": true},
	dlib.ModelLetter: {"first": true},
	dlib.ModelPoster: {"first": true},
	dlib.ModelIssue:  {"first": true},
}

// ContentModelFields generates index fields for every property the
// resource's content model declares, recursing into embedded and linked
// objects and merging controlled vocabulary terms as sibling fields.
func ContentModelFields(ctx context.Context, ic *Context) (solr.Document, error) {
	p := &projector{
		repo:    ic.Repo,
		vocabs:  ic.Vocabs,
		visited: map[string]bool{},
	}

	fields, err := p.modelFields(ctx, ic.Obj)
	if err != nil {
		return nil, err
	}

	fields["content_model_name__str"] = ic.Model.Name
	fields["content_model_prefix__str"] = ic.Model.Prefix()
	return fields, nil
}

type projector struct {
	repo   *repository.Client
	vocabs *vocab.Service

	// visited holds the URIs on the current recursion path, guarding
	// against reference cycles in linked object properties.
	visited map[string]bool
}

func (p *projector) modelFields(ctx context.Context, obj *rdf.TypedResource) (solr.Document, error) {
	if p.visited[obj.URI] {
		return solr.Document{}, nil
	}
	p.visited[obj.URI] = true
	defer delete(p.visited, obj.URI)

	prefix := obj.Model.Prefix()
	fields := solr.Document{}

	for _, prop := range obj.Properties() {
		if prop.Len() == 0 {
			continue
		}
		if skipFieldsByModel[obj.Model.Name][prop.Def.Name] {
			continue
		}

		var (
			propFields solr.Document
			err        error
		)

		if prop.Def.Object {
			propFields, err = p.objectFields(ctx, obj, prop, prefix)
		} else {
			propFields, err = p.dataFields(prop, prefix)
		}
		if err != nil {
			return nil, err
		}

		for key, value := range propFields {
			fields[key] = value
		}
	}

	return fields, nil
}

func (p *projector) dataFields(prop rdf.Property, prefix string) (solr.Document, error) {
	if spec, typed := fieldSpecsByDatatype[prop.Datatype()]; typed {
		return buildField(prop, prefix, spec, nil)
	}
	if spec, named := fieldSpecsByName[prop.Def.Name]; named {
		return buildField(prop, prefix, spec, nil)
	}

	return textFields(prop, prefix)
}

// textFields partitions an untyped literal property by language tag.
// Each language gets its own field and a combined display field keeps
// all values with their tags inline.
func textFields(prop rdf.Property, prefix string) (solr.Document, error) {
	fields := solr.Document{}

	for _, lang := range prop.Languages() {
		suffix, err := languageSuffix(lang)
		if err != nil {
			return nil, &DataError{Reason: err.Error()}
		}

		spec := fieldSpec{suffix: "__txt" + suffix, convert: stringValue}
		langFields, err := buildField(prop, prefix, spec, func(t rdf.Term) bool {
			return t.Literal != nil && t.Literal.Language == lang
		})
		if err != nil {
			return nil, err
		}
		for key, value := range langFields {
			fields[key] = value
		}
	}

	display := make([]string, 0, prop.Len())
	for _, t := range prop.Values() {
		if t.Literal != nil && t.Literal.Language != "" {
			display = append(display, fmt.Sprintf("[@%s]%s", t.Literal.Language, t.Literal.Value))
		} else {
			display = append(display, t.String())
		}
	}
	fields[prefix+prop.Def.Name+"__display"] = display

	return fields, nil
}

func (p *projector) objectFields(ctx context.Context, obj *rdf.TypedResource, prop rdf.Property, prefix string) (solr.Document, error) {
	fields, err := buildField(prop, prefix, fieldSpec{suffix: "__uri", convert: uriValue}, nil)
	if err != nil {
		return nil, err
	}

	curieFields, err := buildField(prop, prefix, fieldSpec{suffix: "__curie", convert: curieValue}, nil)
	if err != nil {
		return nil, err
	}
	for key, value := range curieFields {
		fields[key] = value
	}

	if prop.Def.ObjectModel == "" {
		return fields, nil
	}

	childModel := dlib.ModelByName(prop.Def.ObjectModel)
	if childModel == nil {
		return nil, &ConfigurationError{
			Indexer: "content_model",
			Setting: prop.Def.Name,
			Detail:  fmt.Sprintf("unknown object model %q", prop.Def.ObjectModel),
		}
	}

	if prop.Def.Vocabulary != "" {
		termFields, err := p.vocabTermFields(ctx, prop, prefix, childModel)
		if err != nil {
			return nil, err
		}
		for key, value := range termFields {
			fields[key] = value
		}
		return fields, nil
	}

	children := make([]any, 0, prop.Len())
	for _, uri := range prop.URIs() {
		var child any
		if prop.Def.Embedded {
			child, err = p.embeddedChild(ctx, obj, uri, childModel)
		} else {
			child, err = p.linkedChild(ctx, uri, childModel)
		}
		if err != nil {
			return nil, err
		}
		children = append(children, child)
	}

	if prop.Def.Repeatable {
		fields[prefix+prop.Def.Name] = children
	} else if len(children) > 0 {
		fields[prefix+prop.Def.Name] = children[0]
	}

	return fields, nil
}

// vocabTermFields merges the fields of the first referenced vocabulary
// term into the parent document, namespaced under the property name.
// Unresolvable terms are logged and skipped so that one broken
// vocabulary does not fail the whole document.
func (p *projector) vocabTermFields(ctx context.Context, prop rdf.Property, prefix string, termModel *rdf.Model) (solr.Document, error) {
	termURI := prop.FirstURI()
	if termURI == "" {
		return solr.Document{}, nil
	}

	term, err := p.vocabs.DescribeTerm(ctx, termURI, termModel)
	if err != nil {
		logging.GetFromContext(ctx).Warn("vocabulary term could not be resolved", "term", termURI, "err", err.Error())
		return solr.Document{}, nil
	}

	termFields, err := p.modelFields(ctx, term)
	if err != nil {
		return nil, err
	}

	fields := solr.Document{}
	termPrefix := prefix + prop.Def.Name + "__"
	for key, value := range termFields {
		fields[termPrefix+strings.TrimPrefix(key, termModel.Prefix())] = value
	}
	return fields, nil
}

func (p *projector) embeddedChild(ctx context.Context, parent *rdf.TypedResource, uri string, model *rdf.Model) (any, error) {
	child := rdf.Describe(parent.Graph(), uri, model)

	doc, err := p.modelFields(ctx, child)
	if err != nil {
		return nil, err
	}
	doc["id"] = uri
	return doc, nil
}

// linkedChild reads a referenced resource from the repository and
// projects it as a nested document. References leaving the repository
// are passed through as plain URIs.
func (p *projector) linkedChild(ctx context.Context, uri string, model *rdf.Model) (any, error) {
	if !p.repo.Contains(uri) {
		return uri, nil
	}

	resource, err := p.repo.Read(ctx, uri)
	if err != nil {
		return nil, err
	}

	doc, err := p.modelFields(ctx, resource.Describe(model))
	if err != nil {
		return nil, err
	}
	doc["id"] = uri
	doc["described_by__uri"] = resource.DescribedBy()
	return doc, nil
}

// buildField converts the (optionally filtered) values of a property
// into one field. Repeatable properties get a pluralized field name and
// keep all values; single valued properties keep the first.
func buildField(prop rdf.Property, prefix string, spec fieldSpec, keep func(rdf.Term) bool) (solr.Document, error) {
	values := make([]any, 0, prop.Len())
	for _, t := range prop.Values() {
		if keep != nil && !keep(t) {
			continue
		}
		v, err := spec.convert(t)
		if err != nil {
			return nil, &DataError{Reason: fmt.Sprintf("property %s: %s", prop.Def.Name, err.Error())}
		}
		values = append(values, v)
	}

	if len(values) == 0 {
		return solr.Document{}, nil
	}

	name := prefix + prop.Def.Name + spec.suffix
	if prop.Def.Repeatable {
		return solr.Document{name + "s": values}, nil
	}
	return solr.Document{name: values[0]}, nil
}

// languageSuffix converts an RDF language tag into a field name suffix.
// Tags are canonicalized, so three letter codes fold to their two
// letter equivalents when one exists.
func languageSuffix(lang string) (string, error) {
	if lang == "" {
		return "", nil
	}

	tag, err := language.Parse(lang)
	if err != nil {
		return "", fmt.Errorf("unrecognized language tag %q", lang)
	}

	return "_" + strings.ReplaceAll(strings.ToLower(tag.String()), "-", "_"), nil
}
