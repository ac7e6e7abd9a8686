package rest

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/genialcrm/genial-backend/internal/domain"
	"github.com/genialcrm/genial-backend/internal/service/schema"
)

// schemaService defines the minimal interface needed by CollectionHandler.
type schemaService interface {
	Create(ctx context.Context, input schema.UpsertInput) (*domain.Collection, error)
	Update(ctx context.Context, id uuid.UUID, input schema.UpsertInput) (*domain.Collection, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.Collection, error)
	List(ctx context.Context) ([]*domain.Collection, error)
	ListByStage(ctx context.Context, stage string) ([]*domain.Collection, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// CollectionHandler serves collection management endpoints.
type CollectionHandler struct {
	svc schemaService
	log *slog.Logger
}

// NewCollectionHandler creates a CollectionHandler.
func NewCollectionHandler(svc schemaService, logger *slog.Logger) *CollectionHandler {
	return &CollectionHandler{svc: svc, log: logger.With("handler", "collection")}
}

type collectionRequest struct {
	Name   string                   `json:"name"`
	Label  string                   `json:"label"`
	Type   string                   `json:"type"`
	Fields []domain.CollectionField `json:"fields"`
}

// collectionSummary is the compact shape of the by-stage overview.
type collectionSummary struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Label      string `json:"label"`
	Type       string `json:"type"`
	FieldCount int    `json:"fieldCount"`
}

// List handles GET /api/collections (caller's current stage).
func (h *CollectionHandler) List(w http.ResponseWriter, r *http.Request) {
	collections, err := h.svc.List(r.Context())
	if err != nil {
		h.handleError(w, r, err, "")
		return
	}

	writeData(w, http.StatusOK, collections)
}

// ListByStage handles GET /api/collections/by-stage?stage=.
func (h *CollectionHandler) ListByStage(w http.ResponseWriter, r *http.Request) {
	stage := r.URL.Query().Get("stage")
	if stage == "" {
		writeFail(w, http.StatusBadRequest, "Stage is required")
		return
	}

	collections, err := h.svc.ListByStage(r.Context(), stage)
	if err != nil {
		h.handleError(w, r, err, "")
		return
	}

	out := make([]collectionSummary, 0, len(collections))
	for _, c := range collections {
		out = append(out, collectionSummary{
			ID:         c.ID.String(),
			Name:       c.Name,
			Label:      c.Label,
			Type:       c.Type,
			FieldCount: len(c.Fields),
		})
	}

	writeData(w, http.StatusOK, out)
}

// Get handles GET /api/collections/{id}.
func (h *CollectionHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}

	c, err := h.svc.Get(r.Context(), id)
	if err != nil {
		h.handleError(w, r, err, "")
		return
	}

	writeData(w, http.StatusOK, c)
}

// Create handles POST /api/collections.
func (h *CollectionHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req collectionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeFail(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	c, err := h.svc.Create(r.Context(), schema.UpsertInput{
		Name:   req.Name,
		Label:  req.Label,
		Type:   req.Type,
		Fields: req.Fields,
	})
	if err != nil {
		h.handleError(w, r, err, req.Name)
		return
	}

	writeData(w, http.StatusCreated, c)
}

// Update handles PUT /api/collections/{id}.
func (h *CollectionHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}

	var req collectionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeFail(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	c, err := h.svc.Update(r.Context(), id, schema.UpsertInput{
		Name:   req.Name,
		Label:  req.Label,
		Type:   req.Type,
		Fields: req.Fields,
	})
	if err != nil {
		h.handleError(w, r, err, req.Name)
		return
	}

	writeData(w, http.StatusOK, c)
}

// Delete handles DELETE /api/collections/{id}.
func (h *CollectionHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}

	if err := h.svc.Delete(r.Context(), id); err != nil {
		h.handleError(w, r, err, "")
		return
	}

	writeMessage(w, http.StatusOK, "Collection deleted successfully", nil)
}

func (h *CollectionHandler) pathID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeFail(w, http.StatusBadRequest, "Invalid collection id")
		return uuid.Nil, false
	}
	return id, true
}

// handleError maps schema service errors; name (when known) makes the
// conflict message specific.
func (h *CollectionHandler) handleError(w http.ResponseWriter, r *http.Request, err error, name string) {
	if errors.Is(err, domain.ErrAlreadyExists) && name != "" {
		writeFail(w, http.StatusConflict,
			fmt.Sprintf("A collection with system name '%s' already exists.", name))
		return
	}
	respondError(h.log, w, r, err, "Collection not found")
}
