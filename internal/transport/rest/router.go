package rest

import (
	"net/http"

	"github.com/genialcrm/genial-backend/internal/transport/middleware"
)

// Handlers bundles every REST handler the router mounts.
type Handlers struct {
	Auth       *AuthHandler
	Session    *SessionHandler
	Stage      *StageHandler
	FieldType  *FieldTypeHandler
	Collection *CollectionHandler
	Record     *RecordHandler
	Migration  *MigrationHandler
	Health     *HealthHandler
}

// NewRouter mounts all routes. base wraps everything; authn additionally
// guards every /api route except register and login.
func NewRouter(h Handlers, base, authn middleware.Middleware) http.Handler {
	mux := http.NewServeMux()

	// Public.
	mux.HandleFunc("POST /api/auth/register", h.Auth.Register)
	mux.HandleFunc("POST /api/auth/login", h.Auth.Login)
	mux.HandleFunc("GET /healthz", h.Health.Live)
	mux.HandleFunc("GET /readyz", h.Health.Ready)

	// Authenticated.
	protected := func(pattern string, fn http.HandlerFunc) {
		mux.Handle(pattern, authn(fn))
	}

	protected("POST /api/auth/logout", h.Auth.Logout)
	protected("GET /api/session", h.Session.Get)
	protected("PUT /api/session/stage", h.Session.SetStage)

	protected("GET /api/stages", h.Stage.List)

	protected("GET /api/field-types", h.FieldType.List)
	protected("POST /api/field-types", h.FieldType.Create)
	protected("GET /api/field-types/{type}", h.FieldType.GetByType)
	protected("PUT /api/field-types/{id}", h.FieldType.Update)
	protected("DELETE /api/field-types/{id}", h.FieldType.Delete)

	protected("GET /api/collections", h.Collection.List)
	protected("GET /api/collections/by-stage", h.Collection.ListByStage)
	protected("POST /api/collections", h.Collection.Create)
	protected("GET /api/collections/{id}", h.Collection.Get)
	protected("PUT /api/collections/{id}", h.Collection.Update)
	protected("DELETE /api/collections/{id}", h.Collection.Delete)

	protected("POST /api/collections/{id}/records", h.Record.Create)
	protected("GET /api/collections/{id}/records", h.Record.List)

	protected("GET /api/collections/{id}/migration/check", h.Migration.Check)
	protected("POST /api/collections/{id}/migration", h.Migration.Migrate)

	return base(mux)
}
