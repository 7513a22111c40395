package rest

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/heartmarshall/fairway-backend/internal/domain"
	"github.com/heartmarshall/fairway-backend/internal/extraction"
	"github.com/heartmarshall/fairway-backend/internal/service/ingest"
	"github.com/heartmarshall/fairway-backend/pkg/ctxutil"
)

// multipartOverhead is allowed on top of the payload limit for boundaries
// and part headers.
const multipartOverhead = 1 << 20

type ingester interface {
	Ingest(ctx context.Context, in ingest.Input) (*ingest.Result, error)
}

type profileLookup interface {
	UserByID(id string) (domain.UserProfile, error)
}

// UploadHandler turns uploaded documents into log entries.
type UploadHandler struct {
	ingest     ingester
	profiles   profileLookup
	maxPayload int64
	log        *slog.Logger
}

// NewUploadHandler creates an UploadHandler. maxPayload bounds the summed
// size of the uploaded files.
func NewUploadHandler(ing ingester, profiles profileLookup, maxPayload int64, logger *slog.Logger) *UploadHandler {
	return &UploadHandler{
		ingest:     ing,
		profiles:   profiles,
		maxPayload: maxPayload,
		log:        logger.With("handler", "upload"),
	}
}

type uploadResponse struct {
	Logs           []domain.LogEntry `json:"logs"`
	CreatedCourses []domain.Course   `json:"createdCourses"`
	Todos          []domain.Todo     `json:"todos"`
	IssuesAdded    int               `json:"issuesAdded"`
	Unresolved     []string          `json:"unresolved"`
}

func toUploadResponse(res *ingest.Result) uploadResponse {
	out := uploadResponse{
		Logs:           res.Logs,
		CreatedCourses: res.CreatedCourses,
		Todos:          res.Todos,
		IssuesAdded:    res.IssuesAdded,
		Unresolved:     res.Unresolved,
	}
	if out.Logs == nil {
		out.Logs = []domain.LogEntry{}
	}
	if out.CreatedCourses == nil {
		out.CreatedCourses = []domain.Course{}
	}
	if out.Todos == nil {
		out.Todos = []domain.Todo{}
	}
	if out.Unresolved == nil {
		out.Unresolved = []string{}
	}
	return out
}

// Upload handles POST /uploads (multipart/form-data). Files go in "files"
// (or "file"); a "text" field is extracted as pasted text.
func (h *UploadHandler) Upload(w http.ResponseWriter, r *http.Request) {
	limit := h.maxPayload + multipartOverhead
	r.Body = http.MaxBytesReader(w, r.Body, limit)
	if err := r.ParseMultipartForm(32 << 20); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			handleError(h.log, w, r, domain.NewExtractionError(domain.CategorySizeExceeded,
				fmt.Errorf("upload exceeds the %d byte limit", h.maxPayload)))
			return
		}
		handleError(h.log, w, r, fmt.Errorf("%w: %v", errBadBody, err))
		return
	}
	defer r.MultipartForm.RemoveAll() //nolint:errcheck

	docs, err := readDocuments(r.MultipartForm)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	if len(docs) == 0 {
		handleError(h.log, w, r, domain.NewValidationError("files", "at least one file or text is required"))
		return
	}

	res, err := h.ingest.Ingest(r.Context(), ingest.Input{Documents: docs, Author: h.author(r)})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, toUploadResponse(res))
}

func (h *UploadHandler) author(r *http.Request) string {
	id, ok := ctxutil.UserIDFromCtx(r.Context())
	if !ok {
		return ""
	}
	u, err := h.profiles.UserByID(id)
	if err != nil {
		return ""
	}
	if u.Name != "" {
		return u.Name
	}
	return u.Email
}

func readDocuments(form *multipart.Form) ([]extraction.Document, error) {
	var docs []extraction.Document
	for _, field := range []string{"files", "file"} {
		for _, fh := range form.File[field] {
			data, err := readPart(fh)
			if err != nil {
				return nil, fmt.Errorf("%w: read %s: %v", errBadBody, fh.Filename, err)
			}
			docs = append(docs, extraction.Document{
				Name:      fh.Filename,
				Bytes:     data,
				MediaType: fh.Header.Get("Content-Type"),
			})
		}
	}
	for _, text := range form.Value["text"] {
		if strings.TrimSpace(text) == "" {
			continue
		}
		docs = append(docs, extraction.Document{Name: "pasted text", Text: text})
	}
	return docs, nil
}

func readPart(fh *multipart.FileHeader) ([]byte, error) {
	f, err := fh.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return io.ReadAll(f)
}
