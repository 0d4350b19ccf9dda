package interfaces

import (
	"context"
	"time"

	"permitpro/internal/domain/entities"
)

// IPackageRepository abstracts DynamoDB persistence for Package.
//
// Reads return zero-value entities (ID == "") when nothing matches.
// UpdateStatus and TouchUpdatedAt are conditional on the caller's last-read
// updated_at value; a mismatch returns ErrConflict so concurrent transitions
// and attaches on the same package serialize instead of overwriting each
// other.

type IPackageRepository interface {
	Create(ctx context.Context, p entities.Package) (entities.Package, error)
	GetByID(ctx context.Context, id string) (entities.Package, error)
	List(ctx context.Context) ([]entities.Package, error)
	ListByOwnerID(ctx context.Context, ownerID string) ([]entities.Package, error)
	UpdateStatus(ctx context.Context, id string, status entities.PackageStatus, expectedUpdatedAt, updatedAt time.Time) (entities.Package, error)
	TouchUpdatedAt(ctx context.Context, id string, expectedUpdatedAt, updatedAt time.Time) (entities.Package, error)
}
