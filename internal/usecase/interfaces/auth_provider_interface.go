package interfaces

import "permitpro/internal/domain/entities"

// IAuthProvider abstracts credential verification and token handling
// (bcrypt + JWT in the default implementation). Tokens are opaque to the use
// cases: they only see the Identity a valid token carries.

type IAuthProvider interface {
	HashPassword(password string) (string, error)
	VerifyPassword(hash, password string) error
	IssueToken(u entities.User) (string, error)
	ValidateToken(token string) (entities.Identity, error)
}
