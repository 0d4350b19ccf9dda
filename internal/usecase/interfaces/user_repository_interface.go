package interfaces

import (
	"context"

	"permitpro/internal/domain/entities"
)

// IUserRepository abstracts DynamoDB persistence for User.
//
// GetByEmail returns a zero-value user (ID == "") when the email is unknown.

type IUserRepository interface {
	Create(ctx context.Context, u entities.User) (entities.User, error)
	GetByID(ctx context.Context, id string) (entities.User, error)
	GetByEmail(ctx context.Context, email string) (entities.User, error)
}
