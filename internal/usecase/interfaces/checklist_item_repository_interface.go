package interfaces

import (
	"context"

	"permitpro/internal/domain/entities"
)

// IChecklistItemRepository abstracts DynamoDB persistence for ChecklistItem.
// Checklist items are passthrough records: the core only lists them with
// their package.

type IChecklistItemRepository interface {
	ListByPackageID(ctx context.Context, packageID string) ([]entities.ChecklistItem, error)
}
