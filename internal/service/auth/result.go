package auth

import "github.com/genialcrm/genial-backend/internal/domain"

// AuthResult is what a successful login or registration returns.
type AuthResult struct {
	Token   string
	Session *domain.Session
	User    *domain.User
}
