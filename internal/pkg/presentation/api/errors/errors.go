package errors

import (
	"encoding/json"
	"net/http"
)

// ProblemDetails stores details about a certain problem according to
// RFC 7807. See https://tools.ietf.org/html/rfc7807
type ProblemDetails interface {
	ContentType() string
	Type() string
	Title() string
	Detail() string
	MarshalJSON() ([]byte, error)
	WriteResponse(w http.ResponseWriter)
}

type ProblemDetailsImpl struct {
	typ    string
	title  string
	detail string
	code   int
}

const (
	// ProblemReportContentType as required by https://tools.ietf.org/html/rfc7807
	ProblemReportContentType string = "application/problem+json"

	errorTypePrefix = "https://purl.org/digilib/solrizer/errors/"
)

// NoResourceRequested reports that the request carried no resource URI.
type NoResourceRequested struct {
	ProblemDetailsImpl
}

func NewNoResourceRequested() *NoResourceRequested {
	return &NoResourceRequested{
		ProblemDetailsImpl: ProblemDetailsImpl{
			typ:    errorTypePrefix + "NoResourceRequested",
			title:  "No Resource Requested",
			detail: "the uri query parameter is required",
			code:   http.StatusBadRequest,
		},
	}
}

func ReportNoResourceRequested(w http.ResponseWriter) {
	NewNoResourceRequested().WriteResponse(w)
}

// UnknownCommand reports that the requested command is not one the
// service knows how to perform.
type UnknownCommand struct {
	ProblemDetailsImpl
}

func NewUnknownCommand(detail string) *UnknownCommand {
	return &UnknownCommand{
		ProblemDetailsImpl: ProblemDetailsImpl{
			typ:    errorTypePrefix + "UnknownCommand",
			title:  "Unknown Command",
			detail: detail,
			code:   http.StatusBadRequest,
		},
	}
}

func ReportUnknownCommand(w http.ResponseWriter, detail string) {
	NewUnknownCommand(detail).WriteResponse(w)
}

// ResourceNotAvailable reports that the requested resource could not be
// read from the repository.
type ResourceNotAvailable struct {
	ProblemDetailsImpl
}

func NewResourceNotAvailable(detail string) *ResourceNotAvailable {
	return &ResourceNotAvailable{
		ProblemDetailsImpl: ProblemDetailsImpl{
			typ:    errorTypePrefix + "ResourceNotAvailable",
			title:  "Resource Not Available",
			detail: detail,
			code:   http.StatusNotFound,
		},
	}
}

func ReportResourceNotAvailable(w http.ResponseWriter, detail string) {
	NewResourceNotAvailable(detail).WriteResponse(w)
}

type UnauthorizedRequest struct {
	ProblemDetailsImpl
}

func NewUnauthorizedRequest(detail string) *UnauthorizedRequest {
	return &UnauthorizedRequest{
		ProblemDetailsImpl: ProblemDetailsImpl{
			typ:    errorTypePrefix + "UnauthorizedRequest",
			title:  "Unauthorized Request",
			detail: detail,
			code:   http.StatusUnauthorized,
		},
	}
}

func ReportUnauthorizedRequest(w http.ResponseWriter, detail string) {
	NewUnauthorizedRequest(detail).WriteResponse(w)
}

// ConfigurationError reports an operator facing problem with the
// service configuration, as opposed to a problem with the resource.
type ConfigurationError struct {
	ProblemDetailsImpl
}

func NewConfigurationError(detail string) *ConfigurationError {
	return &ConfigurationError{
		ProblemDetailsImpl: ProblemDetailsImpl{
			typ:    errorTypePrefix + "ConfigurationError",
			title:  "Configuration Error",
			detail: detail,
			code:   http.StatusInternalServerError,
		},
	}
}

func ReportConfigurationError(w http.ResponseWriter, detail string) {
	NewConfigurationError(detail).WriteResponse(w)
}

// InternalError reports that there has been an error during the
// operation execution.
type InternalError struct {
	ProblemDetailsImpl
}

func NewInternalError(detail string) *InternalError {
	return &InternalError{
		ProblemDetailsImpl: ProblemDetailsImpl{
			typ:    errorTypePrefix + "InternalError",
			title:  "Internal Error",
			detail: detail,
			code:   http.StatusInternalServerError,
		},
	}
}

func ReportInternalError(w http.ResponseWriter, detail string) {
	NewInternalError(detail).WriteResponse(w)
}

// ContentType returns the ContentType to be used when returning this problem
func (p *ProblemDetailsImpl) ContentType() string {
	return ProblemReportContentType
}

// Type returns the problem type URI
func (p *ProblemDetailsImpl) Type() string {
	return p.typ
}

// Title returns the short problem summary
func (p *ProblemDetailsImpl) Title() string {
	return p.title
}

// Detail returns the human readable problem description
func (p *ProblemDetailsImpl) Detail() string {
	return p.detail
}

// MarshalJSON is called when a ProblemDetailsImpl instance should be serialized to JSON
func (p *ProblemDetailsImpl) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Type   string `json:"type"`
		Title  string `json:"title"`
		Detail string `json:"detail,omitempty"`
	}{Type: p.typ, Title: p.title, Detail: p.detail})
}

// WriteResponse writes the problem to the supplied http.ResponseWriter
func (p *ProblemDetailsImpl) WriteResponse(w http.ResponseWriter) {
	w.Header().Set("Content-Type", p.ContentType())
	w.WriteHeader(p.code)

	body, err := p.MarshalJSON()
	if err == nil {
		w.Write(body)
	}
}
