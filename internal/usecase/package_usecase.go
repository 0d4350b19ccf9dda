package usecase

import (
	"context"
	"log"
	"sort"
	"strings"
	"time"

	"permitpro/internal/domain/attachment"
	"permitpro/internal/domain/entities"
	"permitpro/internal/domain/lifecycle"
	"permitpro/internal/usecase/interfaces"

	"github.com/google/uuid"
)

// ListingScope decides which packages a User-role caller sees when listing.
// Admins always see every package. The source system left this rule
// implicit; here it is an explicit startup configuration.

type ListingScope string

const (
	ListingScopeOwner ListingScope = "owner"
	ListingScopeAll   ListingScope = "all"
)

// CreatePackageInput is the validated command for creating a package.
type CreatePackageInput struct {
	CustomerName    string
	PropertyAddress string
	County          string
}

// IPackageUseCase exposes the permit package operations.

type IPackageUseCase interface {
	Create(ctx context.Context, in CreatePackageInput, actor entities.Identity) (entities.Package, error)
	List(ctx context.Context, actor entities.Identity, filter string) ([]entities.Package, error)
	GetByID(ctx context.Context, id string, actor entities.Identity) (entities.Package, error)
	ChangeStatus(ctx context.Context, id string, event lifecycle.Event, actor entities.Identity) (entities.Package, error)
	AttachDocument(ctx context.Context, packageID string, in attachment.Input, actor entities.Identity) (entities.Document, error)
}

type PackageUseCase struct {
	packages  interfaces.IPackageRepository
	documents interfaces.IDocumentRepository
	checklist interfaces.IChecklistItemRepository
	scope     ListingScope
}

var _ IPackageUseCase = (*PackageUseCase)(nil)

func NewPackageUseCase(
	packages interfaces.IPackageRepository,
	documents interfaces.IDocumentRepository,
	checklist interfaces.IChecklistItemRepository,
	scope ListingScope,
) *PackageUseCase {
	if scope != ListingScopeAll {
		scope = ListingScopeOwner
	}
	return &PackageUseCase{packages: packages, documents: documents, checklist: checklist, scope: scope}
}

func (u *PackageUseCase) Create(ctx context.Context, in CreatePackageInput, actor entities.Identity) (entities.Package, error) {
	in.CustomerName = strings.TrimSpace(in.CustomerName)
	in.PropertyAddress = strings.TrimSpace(in.PropertyAddress)
	in.County = strings.TrimSpace(in.County)

	var fields []FieldError
	if in.CustomerName == "" {
		fields = append(fields, FieldError{Field: "customerName", Message: "customer name is required"})
	}
	if in.PropertyAddress == "" {
		fields = append(fields, FieldError{Field: "propertyAddress", Message: "property address is required"})
	}
	if in.County == "" {
		fields = append(fields, FieldError{Field: "county", Message: "county is required"})
	} else if !entities.IsFloridaCounty(in.County) {
		fields = append(fields, FieldError{Field: "county", Message: "must be one of the 67 Florida counties"})
	}
	if len(fields) > 0 {
		return entities.Package{}, &ValidationError{Fields: fields}
	}

	now := time.Now().UTC()
	p := entities.Package{
		ID:              uuid.NewString(),
		CustomerName:    in.CustomerName,
		PropertyAddress: in.PropertyAddress,
		County:          in.County,
		Status:          entities.StatusDraft,
		OwnerID:         actor.UserID,
		CreatedAt:       now,
		UpdatedAt:       now,
		Documents:       []entities.Document{},
		ChecklistItems:  []entities.ChecklistItem{},
	}

	created, err := u.packages.Create(ctx, p)
	if err != nil {
		log.Printf("[package][usecase] create failed owner_id=%s err=%v", actor.UserID, err)
		return entities.Package{}, storageErr(err)
	}
	created.Documents = []entities.Document{}
	created.ChecklistItems = []entities.ChecklistItem{}
	return created, nil
}

func (u *PackageUseCase) List(ctx context.Context, actor entities.Identity, filter string) ([]entities.Package, error) {
	var (
		pkgs []entities.Package
		err  error
	)
	if actor.IsAdmin() || u.scope == ListingScopeAll {
		pkgs, err = u.packages.List(ctx)
	} else {
		pkgs, err = u.packages.ListByOwnerID(ctx, actor.UserID)
	}
	if err != nil {
		log.Printf("[package][usecase] list failed actor=%s err=%v", actor.UserID, err)
		return nil, storageErr(err)
	}

	pkgs = filterPackages(pkgs, filter)
	sort.Slice(pkgs, func(i, j int) bool {
		return pkgs[i].CreatedAt.After(pkgs[j].CreatedAt)
	})

	for i := range pkgs {
		if err := u.loadRelations(ctx, &pkgs[i]); err != nil {
			return nil, err
		}
	}
	return pkgs, nil
}

// filterPackages keeps packages whose customer name, property address or id
// contains filter, case-insensitively. An empty filter matches everything.
func filterPackages(pkgs []entities.Package, filter string) []entities.Package {
	filter = strings.ToLower(strings.TrimSpace(filter))
	if filter == "" {
		return pkgs
	}
	out := make([]entities.Package, 0, len(pkgs))
	for _, p := range pkgs {
		if strings.Contains(strings.ToLower(p.CustomerName), filter) ||
			strings.Contains(strings.ToLower(p.PropertyAddress), filter) ||
			strings.Contains(strings.ToLower(p.ID), filter) {
			out = append(out, p)
		}
	}
	return out
}

func (u *PackageUseCase) GetByID(ctx context.Context, id string, actor entities.Identity) (entities.Package, error) {
	p, err := u.loadPackage(ctx, id)
	if err != nil {
		return entities.Package{}, err
	}
	if !u.mayView(p, actor) {
		return entities.Package{}, ErrUnauthorized
	}
	if err := u.loadRelations(ctx, &p); err != nil {
		return entities.Package{}, err
	}
	return p, nil
}

func (u *PackageUseCase) mayView(p entities.Package, actor entities.Identity) bool {
	if actor.IsAdmin() || u.scope == ListingScopeAll {
		return true
	}
	return p.OwnerID == actor.UserID
}

func (u *PackageUseCase) ChangeStatus(ctx context.Context, id string, event lifecycle.Event, actor entities.Identity) (entities.Package, error) {
	p, err := u.loadPackage(ctx, id)
	if err != nil {
		return entities.Package{}, err
	}

	transitioned, err := lifecycle.Transition(p, event, actor)
	if err != nil {
		return entities.Package{}, err
	}

	updated, err := u.packages.UpdateStatus(ctx, p.ID, transitioned.Status, p.UpdatedAt, transitioned.UpdatedAt)
	if err != nil {
		log.Printf("[package][usecase] status update failed package_id=%s event=%s err=%v", p.ID, event, err)
		return entities.Package{}, storageErr(err)
	}
	if err := u.loadRelations(ctx, &updated); err != nil {
		return entities.Package{}, err
	}
	return updated, nil
}

func (u *PackageUseCase) AttachDocument(ctx context.Context, packageID string, in attachment.Input, actor entities.Identity) (entities.Document, error) {
	p, err := u.loadPackage(ctx, packageID)
	if err != nil {
		return entities.Document{}, err
	}
	if !actor.IsAdmin() && p.OwnerID != actor.UserID {
		return entities.Document{}, ErrUnauthorized
	}

	existing, err := u.documents.ListByPackageID(ctx, p.ID)
	if err != nil {
		return entities.Document{}, storageErr(err)
	}

	doc, err := attachment.Attach(p, existing, in, actor)
	if err != nil {
		return entities.Document{}, err
	}

	// Claim the package first: the optimistic updated_at check serializes
	// concurrent attaches so two callers cannot both derive the same version.
	if _, err := u.packages.TouchUpdatedAt(ctx, p.ID, p.UpdatedAt, doc.UploadedAt); err != nil {
		log.Printf("[package][usecase] attach touch failed package_id=%s err=%v", p.ID, err)
		return entities.Document{}, storageErr(err)
	}

	created, err := u.documents.Create(ctx, doc)
	if err != nil {
		log.Printf("[package][usecase] document create failed package_id=%s name=%s err=%v", p.ID, doc.Name, err)
		return entities.Document{}, storageErr(err)
	}
	return created, nil
}

func (u *PackageUseCase) loadPackage(ctx context.Context, id string) (entities.Package, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Package{}, ErrPackageNotFound
	}
	p, err := u.packages.GetByID(ctx, id)
	if err != nil {
		return entities.Package{}, storageErr(err)
	}
	if p.ID == "" {
		return entities.Package{}, ErrPackageNotFound
	}
	return p, nil
}

func (u *PackageUseCase) loadRelations(ctx context.Context, p *entities.Package) error {
	docs, err := u.documents.ListByPackageID(ctx, p.ID)
	if err != nil {
		return storageErr(err)
	}
	items, err := u.checklist.ListByPackageID(ctx, p.ID)
	if err != nil {
		return storageErr(err)
	}
	p.Documents = docs
	p.ChecklistItems = items
	return nil
}
