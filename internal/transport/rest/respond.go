package rest

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/fairway-backend/internal/domain"
)

// maxJSONBody bounds request bodies outside of uploads and imports.
const maxJSONBody = 1 << 20

type errorResponse struct {
	Error  string              `json:"error"`
	Fields []fieldErrorPayload `json:"fields,omitempty"`
	Kind   string              `json:"kind,omitempty"`
}

type fieldErrorPayload struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorResponse{Error: message})
}

// decodeJSON reads a single JSON object from the request body into dst.
// Unknown fields are tolerated; trailing data is not.
func decodeJSON(w http.ResponseWriter, r *http.Request, limit int64, dst any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, limit))
	if err := dec.Decode(dst); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return errBodyTooLarge
		}
		return fmt.Errorf("%w: %v", errBadBody, err)
	}
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return fmt.Errorf("%w: unexpected data after object", errBadBody)
	}
	return nil
}

var (
	errBadBody      = errors.New("invalid request body")
	errBodyTooLarge = errors.New("request body too large")
)

// extractionStatus maps extraction categories to HTTP status codes.
var extractionStatus = map[domain.ExtractionCategory]int{
	domain.CategoryUnsupportedFormat:  http.StatusUnsupportedMediaType,
	domain.CategorySizeExceeded:       http.StatusRequestEntityTooLarge,
	domain.CategoryRateLimited:        http.StatusTooManyRequests,
	domain.CategoryServiceUnavailable: http.StatusServiceUnavailable,
	domain.CategoryContentBlocked:     http.StatusUnprocessableEntity,
	domain.CategoryAuthorization:      http.StatusBadGateway,
	domain.CategoryMalformedResponse:  http.StatusBadGateway,
	domain.CategoryUnknown:            http.StatusBadGateway,
}

// handleError translates service errors into JSON error responses. Anything
// unrecognized is logged and reported as 500 without details.
func handleError(log *slog.Logger, w http.ResponseWriter, r *http.Request, err error) {
	var (
		ve *domain.ValidationError
		ee *domain.ExtractionError
	)
	switch {
	case errors.Is(err, errBodyTooLarge):
		writeError(w, http.StatusRequestEntityTooLarge, errBodyTooLarge.Error())
	case errors.Is(err, errBadBody):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.As(err, &ve):
		resp := errorResponse{Error: "validation failed"}
		for _, fe := range ve.Errors {
			resp.Fields = append(resp.Fields, fieldErrorPayload{Field: fe.Field, Message: fe.Message})
		}
		writeJSON(w, http.StatusBadRequest, resp)
	case errors.Is(err, domain.ErrValidation):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.As(err, &ee):
		status, ok := extractionStatus[ee.Category]
		if !ok {
			status = http.StatusBadGateway
		}
		log.WarnContext(r.Context(), "extraction failed",
			slog.String("category", ee.Category.String()),
			slog.String("error", err.Error()),
		)
		writeJSON(w, status, errorResponse{Error: extractionMessage(ee), Kind: ee.Category.String()})
	case errors.Is(err, domain.ErrUnauthorized):
		writeError(w, http.StatusUnauthorized, "unauthorized")
	case errors.Is(err, domain.ErrAccountPending), errors.Is(err, domain.ErrAccountRejected):
		writeError(w, http.StatusForbidden, accountStateMessage(err))
	case errors.Is(err, domain.ErrForbidden):
		writeError(w, http.StatusForbidden, "forbidden")
	case errors.Is(err, domain.ErrNotFound):
		writeError(w, http.StatusNotFound, "not found")
	case errors.Is(err, domain.ErrAlreadyExists):
		writeError(w, http.StatusConflict, "already exists")
	case errors.Is(err, domain.ErrConflict):
		writeError(w, http.StatusConflict, err.Error())
	default:
		log.ErrorContext(r.Context(), "internal error", slog.String("error", err.Error()))
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}

// extractionMessage exposes the detail of failures caused by the upload
// itself; backend failures stay generic.
func extractionMessage(ee *domain.ExtractionError) string {
	switch ee.Category {
	case domain.CategorySizeExceeded, domain.CategoryUnsupportedFormat:
		if ee.Err != nil {
			return ee.Err.Error()
		}
	}
	return "document extraction failed"
}

func accountStateMessage(err error) string {
	if errors.Is(err, domain.ErrAccountRejected) {
		return domain.ErrAccountRejected.Error()
	}
	return domain.ErrAccountPending.Error()
}
