package request

import (
	"strings"

	"permitpro/internal/domain/attachment"
	"permitpro/internal/domain/entities"
	"permitpro/internal/domain/lifecycle"
	"permitpro/internal/usecase"
)

type CreatePackageRequest struct {
	CustomerName    string `json:"customerName" binding:"required"`
	PropertyAddress string `json:"propertyAddress" binding:"required"`
	County          string `json:"county" binding:"required"`
}

func (r CreatePackageRequest) ToInput() usecase.CreatePackageInput {
	return usecase.CreatePackageInput{
		CustomerName:    r.CustomerName,
		PropertyAddress: r.PropertyAddress,
		County:          r.County,
	}
}

// UpdatePackageStatusRequest carries the target status, matching the wire
// contract of the surrounding UI: clients ask for a state, the handler maps
// it to the lifecycle event that reaches it.
type UpdatePackageStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

func (r UpdatePackageStatusRequest) ResolveEvent() (lifecycle.Event, bool) {
	switch entities.PackageStatus(strings.TrimSpace(r.Status)) {
	case entities.StatusSubmitted:
		return lifecycle.EventSubmit, true
	case entities.StatusCompleted:
		return lifecycle.EventComplete, true
	case entities.StatusDraft:
		return lifecycle.EventReturnToDraft, true
	}
	return "", false
}

type AttachDocumentRequest struct {
	Name string `json:"name" binding:"required"`
	URL  string `json:"url" binding:"required"`
}

func (r AttachDocumentRequest) ToInput() attachment.Input {
	return attachment.Input{Name: r.Name, URL: r.URL}
}
