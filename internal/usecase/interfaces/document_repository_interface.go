package interfaces

import (
	"context"

	"permitpro/internal/domain/entities"
)

// IDocumentRepository abstracts DynamoDB persistence for Document.
//
// Create must reject a duplicate (package, name, version) with ErrConflict;
// documents are never updated or deleted.

type IDocumentRepository interface {
	Create(ctx context.Context, d entities.Document) (entities.Document, error)
	ListByPackageID(ctx context.Context, packageID string) ([]entities.Document, error)
}
