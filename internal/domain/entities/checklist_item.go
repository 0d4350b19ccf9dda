package entities

import "time"

// ChecklistItem is an auxiliary review record associated with a package.
// It carries no domain rules; it is stored and listed alongside the package.
//
// Storage model (DynamoDB):
//   - PK: package_id
//   - SK: id
type ChecklistItem struct {
	ID        string    `json:"id"`
	PackageID string    `json:"package_id"`
	Label     string    `json:"label"`
	Completed bool      `json:"completed"`
	CreatedAt time.Time `json:"created_at"`
}
