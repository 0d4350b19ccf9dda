package response

import (
	"time"

	"permitpro/internal/domain/entities"
)

type PackageResponse struct {
	ID              string                  `json:"id"`
	CustomerName    string                  `json:"customerName"`
	PropertyAddress string                  `json:"propertyAddress"`
	County          string                  `json:"county"`
	Status          string                  `json:"status"`
	OwnerID         string                  `json:"ownerId"`
	CreatedAt       time.Time               `json:"createdAt"`
	UpdatedAt       time.Time               `json:"updatedAt"`
	Documents       []DocumentResponse      `json:"documents"`
	ChecklistItems  []ChecklistItemResponse `json:"checklistItems"`
}

type DocumentResponse struct {
	ID         string    `json:"id"`
	PackageID  string    `json:"packageId"`
	Name       string    `json:"name"`
	URL        string    `json:"url"`
	Version    int       `json:"version"`
	UploaderID string    `json:"uploaderId"`
	UploadedAt time.Time `json:"uploadedAt"`
}

type ChecklistItemResponse struct {
	ID        string    `json:"id"`
	PackageID string    `json:"packageId"`
	Label     string    `json:"label"`
	Completed bool      `json:"completed"`
	CreatedAt time.Time `json:"createdAt"`
}

func FromPackage(p entities.Package) PackageResponse {
	docs := make([]DocumentResponse, 0, len(p.Documents))
	for _, d := range p.Documents {
		docs = append(docs, FromDocument(d))
	}
	items := make([]ChecklistItemResponse, 0, len(p.ChecklistItems))
	for _, c := range p.ChecklistItems {
		items = append(items, FromChecklistItem(c))
	}
	return PackageResponse{
		ID:              p.ID,
		CustomerName:    p.CustomerName,
		PropertyAddress: p.PropertyAddress,
		County:          p.County,
		Status:          string(p.Status),
		OwnerID:         p.OwnerID,
		CreatedAt:       p.CreatedAt,
		UpdatedAt:       p.UpdatedAt,
		Documents:       docs,
		ChecklistItems:  items,
	}
}

func FromPackages(pkgs []entities.Package) []PackageResponse {
	out := make([]PackageResponse, 0, len(pkgs))
	for _, p := range pkgs {
		out = append(out, FromPackage(p))
	}
	return out
}

func FromDocument(d entities.Document) DocumentResponse {
	return DocumentResponse{
		ID:         d.ID,
		PackageID:  d.PackageID,
		Name:       d.Name,
		URL:        d.URL,
		Version:    d.Version,
		UploaderID: d.UploaderID,
		UploadedAt: d.UploadedAt,
	}
}

func FromChecklistItem(c entities.ChecklistItem) ChecklistItemResponse {
	return ChecklistItemResponse{
		ID:        c.ID,
		PackageID: c.PackageID,
		Label:     c.Label,
		Completed: c.Completed,
		CreatedAt: c.CreatedAt,
	}
}
