package indexers

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/digilib/solrizer/internal/pkg/application/ocr"
	"github.com/digilib/solrizer/pkg/datamodels/dlib"
	"github.com/digilib/solrizer/pkg/rdf"
	"github.com/digilib/solrizer/pkg/repository"
	"github.com/digilib/solrizer/pkg/solr"
	"golang.org/x/net/html"
)

// ExtractedTextFields collects the recognized text of a resource's
// pages, in reading order, into a single searchable field. OCR formats
// with word coordinates tag each word so that search hits can be
// highlighted on page images; when any page carries tags the field name
// switches to the payload variant.
func ExtractedTextFields(ctx context.Context, ic *Context) (solr.Document, error) {
	pages, err := orderedPageResources(ctx, ic)
	if err != nil {
		return nil, err
	}

	texts := []string{}
	tagged := false
	for n, page := range pages {
		text, pageTagged, err := pageText(ctx, page, n)
		if err != nil {
			return nil, err
		}
		if text == "" {
			continue
		}
		texts = append(texts, text)
		tagged = tagged || pageTagged
	}

	if len(texts) == 0 {
		return solr.Document{}, nil
	}

	name := "extracted_text__txt"
	if tagged {
		name = "extracted_text__dps_txt"
	}
	return solr.Document{name: strings.Join(texts, " ")}, nil
}

// orderedPageResources returns the member resources in reading order,
// or the resource itself when it has no page sequence.
func orderedPageResources(ctx context.Context, ic *Context) ([]*repository.Resource, error) {
	seq, err := NewPageSequence(ctx, ic)
	if err != nil {
		return nil, err
	}
	if seq == nil {
		return []*repository.Resource{ic.Resource}, nil
	}

	pages := make([]*repository.Resource, 0, len(seq.URIs))
	for _, uri := range seq.URIs {
		page, err := ic.Repo.Read(ctx, uri)
		if err != nil {
			return nil, err
		}
		pages = append(pages, page)
	}
	return pages, nil
}

// pageText extracts the text of one page. HTML and plain text files are
// selected by MIME type alone; OCR files by their RDF type. The page
// index n is 0-based and used for coordinate tagging, and only OCR text
// is tagged.
func pageText(ctx context.Context, page *repository.Resource, n int) (string, bool, error) {
	if file, err := page.GetFile(ctx, repository.FileMatch{MimeType: "text/html"}); err != nil {
		return "", false, err
	} else if file != nil {
		body, err := file.Open(ctx)
		if err != nil {
			return "", false, err
		}
		defer body.Close()
		text, err := htmlText(body)
		return text, false, err
	}

	if file, err := page.GetFile(ctx, repository.FileMatch{MimeType: "text/plain"}); err != nil {
		return "", false, err
	} else if file != nil {
		body, err := file.Open(ctx)
		if err != nil {
			return "", false, err
		}
		defer body.Close()
		text, err := io.ReadAll(body)
		if err != nil {
			return "", false, err
		}
		return strings.TrimSpace(string(text)), false, nil
	}

	file, err := page.GetFile(ctx, repository.FileMatch{RDFType: rdf.TypeExtractedText})
	if err != nil {
		return "", false, err
	}
	if file == nil {
		return "", false, nil
	}

	body, err := file.Open(ctx)
	if err != nil {
		return "", false, err
	}
	defer body.Close()

	text, err := altoText(ctx, page, body, n)
	return text, true, err
}

// altoText reads ALTO OCR output, scaling word coordinates with the
// resolution of the page's preservation master image, and tags every
// word with its page index and bounding box.
func altoText(ctx context.Context, page *repository.Resource, body io.Reader, n int) (string, error) {
	xRes, yRes, err := masterResolution(ctx, page)
	if err != nil {
		return "", err
	}

	doc, err := ocr.ParseALTO(body, xRes, yRes)
	if err != nil {
		if errors.Is(err, ocr.ErrUnsupportedFormat) || errors.Is(err, ocr.ErrMissingResolution) {
			return "", &DataError{URI: page.URI, Reason: err.Error()}
		}
		return "", err
	}

	tagged := make([]string, 0, len(doc.Words()))
	for _, word := range doc.Words() {
		tagged = append(tagged, fmt.Sprintf("%s|n=%d&xywh=%s", word.Content, n, word.Box))
	}
	return strings.Join(tagged, " "), nil
}

// masterResolution reads the image resolution of the page's
// preservation master file from its description.
func masterResolution(ctx context.Context, page *repository.Resource) (int, int, error) {
	master, err := page.GetFile(ctx, repository.FileMatch{RDFType: rdf.TypePreservationMasterFile})
	if err != nil {
		return 0, 0, err
	}
	if master == nil {
		return 0, 0, &DataError{URI: page.URI, Reason: "page has no preservation master file"}
	}

	obj := master.Describe(dlib.ModelByName(dlib.ModelFile))

	xRes := intProperty(obj, "x_resolution")
	yRes := intProperty(obj, "y_resolution")
	if xRes == 0 || yRes == 0 {
		return 0, 0, &DataError{URI: master.URI, Reason: "missing image resolution"}
	}

	return xRes, yRes, nil
}

func intProperty(obj *rdf.TypedResource, name string) int {
	prop, declared := obj.Property(name)
	if !declared {
		return 0
	}

	v, err := intValue(rdf.Term{Literal: &rdf.Literal{Value: prop.FirstString()}})
	if err != nil {
		return 0
	}
	return v.(int)
}

// htmlText strips markup from an HTML document, keeping only the
// rendered text content.
func htmlText(body io.Reader) (string, error) {
	root, err := html.Parse(body)
	if err != nil {
		return "", err
	}

	parts := []string{}
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			if text := strings.TrimSpace(n.Data); text != "" {
				parts = append(parts, text)
			}
		}
		if n.Type == html.ElementNode && (n.Data == "script" || n.Data == "style") {
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(root)

	return strings.Join(parts, " "), nil
}
