package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/genialcrm/genial-backend/internal/domain"
)

// stageService defines the minimal interface needed by StageHandler.
type stageService interface {
	List(ctx context.Context) ([]domain.Stage, error)
}

// StageHandler serves the stage catalog.
type StageHandler struct {
	svc stageService
	log *slog.Logger
}

// NewStageHandler creates a StageHandler.
func NewStageHandler(svc stageService, logger *slog.Logger) *StageHandler {
	return &StageHandler{svc: svc, log: logger.With("handler", "stage")}
}

type stageResponse struct {
	Key         string `json:"key"`
	Label       string `json:"label"`
	Letter      string `json:"letter"`
	Description string `json:"description"`
	Order       int    `json:"order"`
}

// List handles GET /api/stages.
func (h *StageHandler) List(w http.ResponseWriter, r *http.Request) {
	stages, err := h.svc.List(r.Context())
	if err != nil {
		respondError(h.log, w, r, err, "Not found")
		return
	}

	out := make([]stageResponse, 0, len(stages))
	for _, s := range stages {
		out = append(out, stageResponse{
			Key:         s.Key,
			Label:       s.Label,
			Letter:      s.Letter,
			Description: s.Description,
			Order:       s.Order,
		})
	}

	writeData(w, http.StatusOK, out)
}
