package rest

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/heartmarshall/fairway-backend/internal/service/transfer"
)

// maxImportBody bounds an uploaded backup bundle.
const maxImportBody = 64 << 20

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type transferService interface {
	Export(ctx context.Context) (*transfer.Bundle, error)
	Import(ctx context.Context, b *transfer.Bundle) (*transfer.ImportResult, error)
	ExportWorkbook(ctx context.Context) (*bytes.Buffer, error)
}

// TransferHandler serves backup export and import.
type TransferHandler struct {
	svc transferService
	log *slog.Logger
	now func() time.Time
}

// NewTransferHandler creates a TransferHandler.
func NewTransferHandler(svc transferService, logger *slog.Logger) *TransferHandler {
	return &TransferHandler{svc: svc, log: logger.With("handler", "transfer"), now: time.Now}
}

func (h *TransferHandler) filename(ext string) string {
	return fmt.Sprintf("fairway-export-%s.%s", h.now().UTC().Format("20060102"), ext)
}

// ExportJSON handles GET /export.
func (h *TransferHandler) ExportJSON(w http.ResponseWriter, r *http.Request) {
	bundle, err := h.svc.Export(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	w.Header().Set("Content-Disposition", `attachment; filename="`+h.filename("json")+`"`)
	writeJSON(w, http.StatusOK, bundle)
}

// ExportWorkbook handles GET /export/xlsx.
func (h *TransferHandler) ExportWorkbook(w http.ResponseWriter, r *http.Request) {
	buf, err := h.svc.ExportWorkbook(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	w.Header().Set("Content-Type", xlsxContentType)
	w.Header().Set("Content-Disposition", `attachment; filename="`+h.filename("xlsx")+`"`)
	w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
	w.WriteHeader(http.StatusOK)
	buf.WriteTo(w) //nolint:errcheck
}

// Import handles POST /import with a bundle produced by ExportJSON.
func (h *TransferHandler) Import(w http.ResponseWriter, r *http.Request) {
	var bundle transfer.Bundle
	if err := decodeJSON(w, r, maxImportBody, &bundle); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	res, err := h.svc.Import(r.Context(), &bundle)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, res)
}
