package graphql

import (
	"context"
	"io"
	"log/slog"
	"net/http"

	"github.com/99designs/gqlgen/graphql"
	"github.com/99designs/gqlgen/graphql/handler"
	"github.com/99designs/gqlgen/graphql/handler/extension"
	"github.com/99designs/gqlgen/graphql/handler/transport"
	"github.com/vektah/gqlparser/v2/gqlerror"

	"github.com/heartmarshall/fairway-backend/pkg/ctxutil"
)

const (
	maxRequestBody = 1 << 20
	maxComplexity  = 500
)

// Handler serves GraphQL over HTTP: queries by GET or POST, mutations by
// POST only.
type Handler struct {
	srv *handler.Server
}

// NewHandler builds the handler for root. presenter maps resolver errors to
// client errors.
func NewHandler(root Root, presenter graphql.ErrorPresenterFunc, log *slog.Logger) *Handler {
	log = log.With("component", "graphql")

	srv := handler.New(&executableSchema{schema: schema, root: root})
	srv.AddTransport(transport.Options{})
	srv.AddTransport(transport.GET{})
	srv.AddTransport(transport.POST{})
	srv.Use(extension.FixedComplexityLimit(maxComplexity))

	srv.SetErrorPresenter(presenter)
	srv.SetRecoverFunc(func(ctx context.Context, err any) error {
		log.ErrorContext(ctx, "resolver panic",
			slog.Any("panic", err),
			slog.String("request_id", ctxutil.RequestIDFromCtx(ctx)),
		)
		return &gqlerror.Error{
			Message:    "internal error",
			Extensions: map[string]any{"code": "INTERNAL"},
		}
	})

	return &Handler{srv: srv}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBody)
	h.srv.ServeHTTP(w, r)
}

// ServeSchema writes the schema SDL.
func (h *Handler) ServeSchema(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = io.WriteString(w, schemaSDL)
}
