package entities

import "time"

// Role is the authorization role carried by a User and by issued tokens.
//
// The permit service distinguishes only two roles:
//   - Admin: may complete/reopen any package and sees every package.
//   - User: may create packages and manage the ones they own.

type Role string

const (
	RoleAdmin Role = "Admin"
	RoleUser  Role = "User"
)

func (r Role) Valid() bool {
	return r == RoleAdmin || r == RoleUser
}

// User is the account entity persisted in DynamoDB.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (email-index): email
//
// PasswordHash is a bcrypt hash and is never serialized to JSON.
type User struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         Role      `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
}

// Identity is the authenticated caller extracted from a bearer token.
// It carries everything the use cases need for authorization decisions.
type Identity struct {
	UserID string `json:"user_id"`
	Email  string `json:"email"`
	Role   Role   `json:"role"`
}

func (i Identity) IsAdmin() bool {
	return i.Role == RoleAdmin
}
