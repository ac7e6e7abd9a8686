package rest

import (
	"context"
	"io"
	"log/slog"
	"mime"
	"net/http"
	"net/url"

	"github.com/google/uuid"

	"github.com/genialcrm/genial-backend/internal/domain"
)

// recordService defines the minimal interface needed by RecordHandler.
type recordService interface {
	CreateFromForm(ctx context.Context, collectionID uuid.UUID, form url.Values) (*domain.Document, error)
	CreateFromJSON(ctx context.Context, collectionID uuid.UUID, payload []byte) (*domain.Document, error)
	List(ctx context.Context, collectionID uuid.UUID) ([]map[string]any, error)
}

// RecordHandler serves record endpoints.
type RecordHandler struct {
	svc recordService
	log *slog.Logger
}

// NewRecordHandler creates a RecordHandler.
func NewRecordHandler(svc recordService, logger *slog.Logger) *RecordHandler {
	return &RecordHandler{svc: svc, log: logger.With("handler", "record")}
}

const maxRecordBody = 1 << 20 // 1 MiB

// Create handles POST /api/collections/{id}/records. The content type
// picks the mapping path: form-encoded payloads are mapped against the
// schema, JSON payloads pass through natively.
func (h *RecordHandler) Create(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeFail(w, http.StatusBadRequest, "Invalid collection id")
		return
	}

	contentType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))

	var doc *domain.Document
	switch contentType {
	case "application/x-www-form-urlencoded", "multipart/form-data":
		if err := r.ParseMultipartForm(maxRecordBody); err != nil && err != http.ErrNotMultipart {
			writeFail(w, http.StatusBadRequest, "Invalid form payload")
			return
		}
		doc, err = h.svc.CreateFromForm(r.Context(), id, r.PostForm)
	case "application/json", "":
		body, readErr := io.ReadAll(io.LimitReader(r.Body, maxRecordBody))
		if readErr != nil {
			writeFail(w, http.StatusBadRequest, "Invalid request body")
			return
		}
		doc, err = h.svc.CreateFromJSON(r.Context(), id, body)
	default:
		writeFail(w, http.StatusUnsupportedMediaType, "Unsupported content type")
		return
	}
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeMessage(w, http.StatusCreated, "Record created successfully!", doc)
}

// List handles GET /api/collections/{id}/records.
func (h *RecordHandler) List(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeFail(w, http.StatusBadRequest, "Invalid collection id")
		return
	}

	records, err := h.svc.List(r.Context(), id)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeData(w, http.StatusOK, records)
}

func (h *RecordHandler) handleError(w http.ResponseWriter, r *http.Request, err error) {
	respondError(h.log, w, r, err, "Collection not found")
}
