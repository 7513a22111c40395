package graphql

import (
	"context"
	"errors"
	"log/slog"

	"github.com/99designs/gqlgen/graphql"
	"github.com/vektah/gqlparser/v2/gqlerror"

	"github.com/heartmarshall/fairway-backend/internal/domain"
	"github.com/heartmarshall/fairway-backend/pkg/ctxutil"
)

// NewErrorPresenter returns a gqlgen error presenter that maps domain errors
// to GraphQL error codes.
func NewErrorPresenter(log *slog.Logger) graphql.ErrorPresenterFunc {
	return func(ctx context.Context, err error) *gqlerror.Error {
		gqlErr := graphql.DefaultErrorPresenter(ctx, err)

		// Parse and validation errors carry no cause and are already
		// meant for the client.
		origErr := errors.Unwrap(gqlErr)
		if origErr == nil {
			return gqlErr
		}

		var ee *domain.ExtractionError
		switch {
		case errors.As(origErr, &ee):
			gqlErr.Message = extractionMessage(ee)
			gqlErr.Extensions = map[string]interface{}{"code": "EXTRACTION", "kind": string(ee.Category)}

		case errors.Is(origErr, domain.ErrNotFound):
			gqlErr.Extensions = map[string]interface{}{"code": "NOT_FOUND"}

		case errors.Is(origErr, domain.ErrAlreadyExists):
			gqlErr.Extensions = map[string]interface{}{"code": "ALREADY_EXISTS"}

		case errors.Is(origErr, domain.ErrValidation):
			gqlErr.Extensions = map[string]interface{}{"code": "VALIDATION"}
			var ve *domain.ValidationError
			if errors.As(origErr, &ve) {
				fields := make([]map[string]string, 0, len(ve.Errors))
				for _, fe := range ve.Errors {
					fields = append(fields, map[string]string{"field": fe.Field, "message": fe.Message})
				}
				gqlErr.Extensions["fields"] = fields
			}

		case errors.Is(origErr, domain.ErrUnauthorized):
			gqlErr.Extensions = map[string]interface{}{"code": "UNAUTHENTICATED"}

		case errors.Is(origErr, domain.ErrAccountPending):
			gqlErr.Extensions = map[string]interface{}{"code": "ACCOUNT_PENDING"}

		case errors.Is(origErr, domain.ErrAccountRejected):
			gqlErr.Extensions = map[string]interface{}{"code": "ACCOUNT_REJECTED"}

		case errors.Is(origErr, domain.ErrForbidden):
			gqlErr.Extensions = map[string]interface{}{"code": "FORBIDDEN"}

		case errors.Is(origErr, domain.ErrConflict):
			gqlErr.Extensions = map[string]interface{}{"code": "CONFLICT"}

		default:
			requestID := ctxutil.RequestIDFromCtx(ctx)
			log.ErrorContext(ctx, "unexpected GraphQL error",
				slog.String("error", origErr.Error()),
				slog.String("request_id", requestID),
			)
			gqlErr.Message = "internal error"
			gqlErr.Extensions = map[string]interface{}{"code": "INTERNAL"}
		}

		return gqlErr
	}
}

// extractionMessage keeps the detail of client-side failures only; backend
// failures may echo provider internals.
func extractionMessage(ee *domain.ExtractionError) string {
	switch ee.Category {
	case domain.CategorySizeExceeded, domain.CategoryUnsupportedFormat:
		if ee.Err != nil {
			return ee.Err.Error()
		}
	}
	return "document extraction failed"
}
