package entities

import "time"

// PackageStatus represents the lifecycle of a permit package.
//
// Domain notes:
//   - Packages are created as Draft and move forward through Submitted to
//     Completed; Completed is terminal.
//   - Transition rules (guards, caller authorization) live in
//     internal/domain/lifecycle, not here.

type PackageStatus string

const (
	StatusDraft     PackageStatus = "Draft"
	StatusSubmitted PackageStatus = "Submitted"
	StatusCompleted PackageStatus = "Completed"
)

// Package is the permit application package persisted in DynamoDB.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (owner_id-index): owner_id
//
// Documents and ChecklistItems are stored in their own tables keyed by
// package id; they are loaded alongside the package on reads.
type Package struct {
	ID              string        `json:"id"`
	CustomerName    string        `json:"customer_name"`
	PropertyAddress string        `json:"property_address"`
	County          string        `json:"county"`
	Status          PackageStatus `json:"status"`
	OwnerID         string        `json:"owner_id"`
	CreatedAt       time.Time     `json:"created_at"`
	UpdatedAt       time.Time     `json:"updated_at"`

	Documents      []Document      `json:"documents,omitempty"`
	ChecklistItems []ChecklistItem `json:"checklist_items,omitempty"`
}
