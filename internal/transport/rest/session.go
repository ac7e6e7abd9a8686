package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/genialcrm/genial-backend/pkg/ctxutil"
)

// sessionService defines the minimal interface needed by SessionHandler.
type sessionService interface {
	SetStage(ctx context.Context, sessionID uuid.UUID, stageKey string) error
}

// SessionHandler serves the current-session endpoints.
type SessionHandler struct {
	svc sessionService
	log *slog.Logger
}

// NewSessionHandler creates a SessionHandler.
func NewSessionHandler(svc sessionService, logger *slog.Logger) *SessionHandler {
	return &SessionHandler{svc: svc, log: logger.With("handler", "session")}
}

type sessionResponse struct {
	UserID string `json:"userId"`
	Email  string `json:"email"`
	Stage  string `json:"stage"`
}

type setStageRequest struct {
	Stage string `json:"stage"`
}

// Get handles GET /api/session.
func (h *SessionHandler) Get(w http.ResponseWriter, r *http.Request) {
	sess, ok := ctxutil.SessionFromCtx(r.Context())
	if !ok {
		writeFail(w, http.StatusUnauthorized, "Not authenticated")
		return
	}

	writeData(w, http.StatusOK, sessionResponse{
		UserID: sess.UserID.String(),
		Email:  sess.Email,
		Stage:  sess.Stage,
	})
}

// SetStage handles PUT /api/session/stage.
func (h *SessionHandler) SetStage(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := ctxutil.SessionIDFromCtx(r.Context())
	if !ok {
		writeFail(w, http.StatusUnauthorized, "Not authenticated")
		return
	}

	var req setStageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeFail(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := h.svc.SetStage(r.Context(), sessionID, req.Stage); err != nil {
		respondError(h.log, w, r, err, "Session not found")
		return
	}

	writeMessage(w, http.StatusOK, "Stage changed", map[string]string{"stage": req.Stage})
}
