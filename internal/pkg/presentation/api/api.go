// Package api exposes the document generation service over HTTP.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"

	"github.com/digilib/solrizer/internal/pkg/application/indexers"
	app "github.com/digilib/solrizer/internal/pkg/application/solrizer"
	"github.com/digilib/solrizer/internal/pkg/presentation/api/auth"
	apierrors "github.com/digilib/solrizer/internal/pkg/presentation/api/errors"
	"github.com/digilib/solrizer/pkg/repository"
	"github.com/digilib/solrizer/pkg/solr"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
)

var tracer = otel.Tracer("solrizer/api")

func RegisterHandlers(ctx context.Context, r *chi.Mux, policies io.Reader, svc app.DocumentService) error {

	authenticator, err := auth.NewAuthenticator(ctx, policies)
	if err != nil {
		return fmt.Errorf("failed to create api authenticator: %w", err)
	}

	r.Use(Logger(logging.GetFromContext(ctx)))

	r.Get("/doc", NewCreateDocumentHandler(svc, authenticator))
	r.Get("/health", NewHealthHandler())

	return nil
}

// Logger stores a logger tagged with the current trace id in each
// request context.
func Logger(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			_, ctx, _ = o11y.AddTraceIDToLoggerAndStoreInContext(
				trace.SpanFromContext(ctx),
				logger,
				ctx)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// NewCreateDocumentHandler handles GET requests for index documents.
// The command query parameter selects the output shape: empty returns
// the plain document, add wraps it in an insert command, update
// produces the atomic update instruction set against the currently
// indexed version.
func NewCreateDocumentHandler(svc app.DocumentService, authenticator auth.Enticator) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var err error

		ctx, span := tracer.Start(r.Context(), "create-document")
		defer func() {
			if err != nil {
				span.RecordError(err)
			}
			span.End()
		}()

		log := logging.GetFromContext(ctx)

		uri := r.URL.Query().Get("uri")
		if uri == "" {
			err = errors.New("no resource uri in request")
			apierrors.ReportNoResourceRequested(w)
			return
		}

		command := r.URL.Query().Get("command")
		if command != "" && command != "add" && command != "update" {
			err = fmt.Errorf("unknown command %q", command)
			apierrors.ReportUnknownCommand(w, err.Error())
			return
		}

		if err = authenticator.CheckAccess(ctx, r); err != nil {
			log.Warn("access denied", "uri", uri, "err", err.Error())
			apierrors.ReportUnauthorizedRequest(w, "access denied")
			return
		}

		doc, err := svc.CreateDocument(ctx, uri)
		if err != nil {
			log.Error("failed to create document", "uri", uri, "err", err.Error())
			reportDocumentError(w, err)
			return
		}

		var body any
		switch command {
		case "add":
			body = solr.Add(doc)
		case "update":
			body, err = svc.CreateAtomicUpdate(ctx, doc)
			if err != nil {
				log.Error("failed to create atomic update", "uri", uri, "err", err.Error())
				reportDocumentError(w, err)
				return
			}
		default:
			body = doc
		}

		response, err := json.Marshal(body)
		if err != nil {
			apierrors.ReportInternalError(w, err.Error())
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write(response)
	})
}

func reportDocumentError(w http.ResponseWriter, err error) {
	var (
		unknownIndexer *indexers.UnknownIndexerError
		configuration  *indexers.ConfigurationError
	)

	switch {
	case errors.Is(err, repository.ErrNotFound):
		apierrors.ReportResourceNotAvailable(w, err.Error())
	case errors.Is(err, app.ErrUpdatesNotConfigured),
		errors.As(err, &unknownIndexer),
		errors.As(err, &configuration):
		apierrors.ReportConfigurationError(w, err.Error())
	default:
		apierrors.ReportInternalError(w, err.Error())
	}
}

// NewHealthHandler handles readiness probes.
func NewHealthHandler() http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})
}
