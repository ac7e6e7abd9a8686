package rest

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/genialcrm/genial-backend/internal/domain"
	"github.com/genialcrm/genial-backend/internal/service/migration"
)

// migrationService defines the minimal interface needed by MigrationHandler.
type migrationService interface {
	Check(ctx context.Context, sourceID uuid.UUID, targetStage, targetName string) (*migration.CheckResult, error)
	Migrate(ctx context.Context, sourceID uuid.UUID, targetStage, targetName string) (*migration.MigrateResult, error)
}

// MigrationHandler serves stage migration endpoints.
type MigrationHandler struct {
	svc migrationService
	log *slog.Logger
}

// NewMigrationHandler creates a MigrationHandler.
func NewMigrationHandler(svc migrationService, logger *slog.Logger) *MigrationHandler {
	return &MigrationHandler{svc: svc, log: logger.With("handler", "migration")}
}

type migrateRequest struct {
	TargetStage    string `json:"targetStage"`
	CollectionName string `json:"collectionName"`
}

// Check handles GET /api/collections/{id}/migration/check.
func (h *MigrationHandler) Check(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeFail(w, http.StatusBadRequest, "Invalid collection id")
		return
	}

	targetStage := r.URL.Query().Get("targetStage")
	if targetStage == "" {
		writeFail(w, http.StatusBadRequest, "Target stage is required")
		return
	}
	targetName := r.URL.Query().Get("collectionName")

	result, err := h.svc.Check(r.Context(), id, targetStage, targetName)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeMessage(w, http.StatusOK, result.Message, result)
}

// Migrate handles POST /api/collections/{id}/migration.
func (h *MigrationHandler) Migrate(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeFail(w, http.StatusBadRequest, "Invalid collection id")
		return
	}

	var req migrateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeFail(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.TargetStage == "" {
		writeFail(w, http.StatusBadRequest, "Target stage is required")
		return
	}

	result, err := h.svc.Migrate(r.Context(), id, req.TargetStage, req.CollectionName)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeMessage(w, http.StatusOK, result.Message, result)
}

func (h *MigrationHandler) handleError(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, domain.ErrNotFound) {
		writeFail(w, http.StatusNotFound, "Source collection not found")
		return
	}
	respondError(h.log, w, r, err, "Source collection not found")
}
