package repository

import (
	"context"
	"io"
	"strings"

	"github.com/digilib/solrizer/pkg/rdf"
)

// FileMatch selects files attached to a resource. Zero valued criteria
// are ignored; all set criteria must match. MimeType is compared
// against the declared media type with any parameters stripped.
type FileMatch struct {
	RDFType  string
	MimeType string
}

// File is a binary file attached to a resource, together with its RDF
// description.
type File struct {
	*Resource
}

// MimeType returns the declared MIME type of the file.
func (f *File) MimeType() string {
	return f.firstLiteral(rdf.NSEbucore + "hasMimeType")
}

// Filename returns the declared original filename of the file.
func (f *File) Filename() string {
	return f.firstLiteral(rdf.NSEbucore + "filename")
}

// Open opens the binary content of the file.
func (f *File) Open(ctx context.Context) (io.ReadCloser, error) {
	return f.client.OpenFile(ctx, f.URI)
}

func (f *File) firstLiteral(predicate string) string {
	for _, term := range f.graph.Objects(f.URI, predicate) {
		if term.Literal != nil {
			return term.Literal.Value
		}
	}
	return ""
}

func (f *File) matches(match FileMatch) bool {
	if match.RDFType != "" && !f.graph.HasType(f.URI, match.RDFType) {
		return false
	}
	if match.MimeType != "" && baseMime(f.MimeType()) != match.MimeType {
		return false
	}
	return true
}

func baseMime(mimeType string) string {
	base, _, _ := strings.Cut(mimeType, ";")
	return strings.TrimSpace(base)
}

// GetFile returns the first file of the resource matching the given
// criteria, or nil when the resource has no such file.
func (r *Resource) GetFile(ctx context.Context, match FileMatch) (*File, error) {
	for _, uri := range r.objectURIs(rdf.NSPcdm + "hasFile") {
		fileResource, err := r.client.Read(ctx, uri)
		if err != nil {
			return nil, err
		}
		file := &File{Resource: fileResource}
		if file.matches(match) {
			return file, nil
		}
	}
	return nil, nil
}

// Members reads the unordered member resources of the resource.
func (r *Resource) Members(ctx context.Context) ([]*Resource, error) {
	uris := r.objectURIs(rdf.NSPcdm + "hasMember")
	members := make([]*Resource, 0, len(uris))
	for _, uri := range uris {
		member, err := r.client.Read(ctx, uri)
		if err != nil {
			return nil, err
		}
		members = append(members, member)
	}
	return members, nil
}

func (r *Resource) objectURIs(predicate string) []string {
	terms := r.graph.Objects(r.URI, predicate)
	uris := make([]string, 0, len(terms))
	for _, t := range terms {
		if t.IsURI() {
			uris = append(uris, t.URI)
		}
	}
	return uris
}
