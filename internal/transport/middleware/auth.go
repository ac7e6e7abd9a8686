package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/genialcrm/genial-backend/internal/domain"
	"github.com/genialcrm/genial-backend/pkg/ctxutil"
)

// sessionResolver turns a bearer token into the caller's session identity.
type sessionResolver interface {
	Resolve(ctx context.Context, token string) (domain.SessionContext, uuid.UUID, error)
}

// Auth returns middleware that requires a valid session. The resolved
// identity and session ID are stored in the request context; anything
// else gets the 401 envelope.
func Auth(resolver sessionResolver) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := extractBearerToken(r)
			if token == "" {
				writeUnauthenticated(w)
				return
			}

			sess, sessionID, err := resolver.Resolve(r.Context(), token)
			if err != nil {
				writeUnauthenticated(w)
				return
			}

			ctx := ctxutil.WithSession(r.Context(), sess)
			ctx = ctxutil.WithSessionID(ctx, sessionID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func extractBearerToken(r *http.Request) string {
	auth := r.Header.Get("Authorization")
	if !strings.HasPrefix(auth, "Bearer ") {
		return ""
	}
	return strings.TrimPrefix(auth, "Bearer ")
}

func writeUnauthenticated(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	_ = json.NewEncoder(w).Encode(map[string]any{
		"success": false,
		"message": "Not authenticated",
	})
}
