package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/genialcrm/genial-backend/internal/domain"
	"github.com/genialcrm/genial-backend/internal/service/fieldtype"
)

// fieldTypeService defines the minimal interface needed by FieldTypeHandler.
type fieldTypeService interface {
	List(ctx context.Context) ([]domain.FieldType, error)
	GetByType(ctx context.Context, typeKey string) (*domain.FieldType, error)
	Create(ctx context.Context, input fieldtype.UpsertInput) (*domain.FieldType, error)
	Update(ctx context.Context, id uuid.UUID, input fieldtype.UpsertInput) (*domain.FieldType, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// FieldTypeHandler serves the field-type catalog.
type FieldTypeHandler struct {
	svc fieldTypeService
	log *slog.Logger
}

// NewFieldTypeHandler creates a FieldTypeHandler.
func NewFieldTypeHandler(svc fieldTypeService, logger *slog.Logger) *FieldTypeHandler {
	return &FieldTypeHandler{svc: svc, log: logger.With("handler", "fieldtype")}
}

type fieldTypeRequest struct {
	Type        string  `json:"type"`
	Label       string  `json:"label"`
	Icon        string  `json:"icon"`
	DisplayIcon *string `json:"displayIcon"`
	Description *string `json:"description"`
	Order       int     `json:"order"`
	Active      *bool   `json:"active"`
}

func (req fieldTypeRequest) toInput() fieldtype.UpsertInput {
	active := true
	if req.Active != nil {
		active = *req.Active
	}
	return fieldtype.UpsertInput{
		Type:        req.Type,
		Label:       req.Label,
		Icon:        req.Icon,
		DisplayIcon: req.DisplayIcon,
		Description: req.Description,
		Order:       req.Order,
		Active:      active,
	}
}

// List handles GET /api/field-types.
func (h *FieldTypeHandler) List(w http.ResponseWriter, r *http.Request) {
	types, err := h.svc.List(r.Context())
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeData(w, http.StatusOK, types)
}

// GetByType handles GET /api/field-types/{type}.
func (h *FieldTypeHandler) GetByType(w http.ResponseWriter, r *http.Request) {
	ft, err := h.svc.GetByType(r.Context(), r.PathValue("type"))
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeData(w, http.StatusOK, ft)
}

// Create handles POST /api/field-types.
func (h *FieldTypeHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req fieldTypeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeFail(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	ft, err := h.svc.Create(r.Context(), req.toInput())
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeData(w, http.StatusCreated, ft)
}

// Update handles PUT /api/field-types/{id}.
func (h *FieldTypeHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeFail(w, http.StatusBadRequest, "Invalid field type id")
		return
	}

	var req fieldTypeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeFail(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	ft, err := h.svc.Update(r.Context(), id, req.toInput())
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeData(w, http.StatusOK, ft)
}

// Delete handles DELETE /api/field-types/{id}.
func (h *FieldTypeHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeFail(w, http.StatusBadRequest, "Invalid field type id")
		return
	}

	if err := h.svc.Delete(r.Context(), id); err != nil {
		h.handleError(w, r, err)
		return
	}

	writeMessage(w, http.StatusOK, "Field type deleted", nil)
}

func (h *FieldTypeHandler) handleError(w http.ResponseWriter, r *http.Request, err error) {
	respondError(h.log, w, r, err, "Field type not found")
}
