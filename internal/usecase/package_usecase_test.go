package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"permitpro/internal/domain/attachment"
	"permitpro/internal/domain/entities"
	"permitpro/internal/domain/lifecycle"
	"permitpro/internal/usecase/interfaces"
	mock_interfaces "permitpro/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

type packageMocks struct {
	packages  *mock_interfaces.MockIPackageRepository
	documents *mock_interfaces.MockIDocumentRepository
	checklist *mock_interfaces.MockIChecklistItemRepository
}

func newPackageUseCase(t *testing.T, scope ListingScope) (*PackageUseCase, packageMocks) {
	ctrl := gomock.NewController(t)
	m := packageMocks{
		packages:  mock_interfaces.NewMockIPackageRepository(ctrl),
		documents: mock_interfaces.NewMockIDocumentRepository(ctrl),
		checklist: mock_interfaces.NewMockIChecklistItemRepository(ctrl),
	}
	return NewPackageUseCase(m.packages, m.documents, m.checklist, scope), m
}

func actorUser() entities.Identity {
	return entities.Identity{UserID: "user-1", Role: entities.RoleUser}
}

func actorAdmin() entities.Identity {
	return entities.Identity{UserID: "admin-1", Role: entities.RoleAdmin}
}

func storedPackage() entities.Package {
	now := time.Now().UTC().Add(-time.Hour)
	return entities.Package{
		ID:              "pkg-1",
		CustomerName:    "John Smith",
		PropertyAddress: "123 Main St, Orlando, FL",
		County:          "Orange",
		Status:          entities.StatusDraft,
		OwnerID:         "user-1",
		CreatedAt:       now,
		UpdatedAt:       now,
	}
}

func TestPackageUseCase_Create(t *testing.T) {
	t.Run("lists every invalid field", func(t *testing.T) {
		uc, _ := newPackageUseCase(t, ListingScopeOwner)

		_, err := uc.Create(context.Background(), CreatePackageInput{County: "Atlantis"}, actorUser())
		var verr *ValidationError
		if !errors.As(err, &verr) {
			t.Fatalf("expected ValidationError, got %v", err)
		}
		if len(verr.Fields) != 3 {
			t.Fatalf("expected 3 field errors, got %+v", verr.Fields)
		}
		got := map[string]bool{}
		for _, f := range verr.Fields {
			got[f.Field] = true
		}
		for _, want := range []string{"customerName", "propertyAddress", "county"} {
			if !got[want] {
				t.Fatalf("expected field error for %s, got %+v", want, verr.Fields)
			}
		}
	})

	t.Run("success persists a draft owned by the actor", func(t *testing.T) {
		uc, m := newPackageUseCase(t, ListingScopeOwner)

		m.packages.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Package{})).DoAndReturn(
			func(_ context.Context, p entities.Package) (entities.Package, error) {
				if p.ID == "" || p.Status != entities.StatusDraft || p.OwnerID != "user-1" {
					t.Fatalf("unexpected package: %+v", p)
				}
				if p.CreatedAt.IsZero() || !p.UpdatedAt.Equal(p.CreatedAt) {
					t.Fatalf("expected matching timestamps: %+v", p)
				}
				return p, nil
			},
		)

		p, err := uc.Create(context.Background(), CreatePackageInput{
			CustomerName:    " John Smith ",
			PropertyAddress: "123 Main St, Orlando, FL",
			County:          "Orange",
		}, actorUser())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if p.CustomerName != "John Smith" || p.County != "Orange" {
			t.Fatalf("unexpected package: %+v", p)
		}
		if p.Documents == nil || p.ChecklistItems == nil {
			t.Fatalf("expected empty collections, got %+v", p)
		}
	})

	t.Run("storage failure surfaces as ErrStorageUnavailable", func(t *testing.T) {
		uc, m := newPackageUseCase(t, ListingScopeOwner)

		m.packages.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Package{}, errors.New("dynamo down"))

		_, err := uc.Create(context.Background(), CreatePackageInput{
			CustomerName:    "John Smith",
			PropertyAddress: "123 Main St",
			County:          "Orange",
		}, actorUser())
		if !errors.Is(err, ErrStorageUnavailable) {
			t.Fatalf("expected ErrStorageUnavailable, got %v", err)
		}
	})
}

func TestPackageUseCase_List(t *testing.T) {
	older := storedPackage()
	newer := storedPackage()
	newer.ID = "pkg-2"
	newer.CustomerName = "Jane Doe"
	newer.PropertyAddress = "456 Oak Ave, Miami, FL"
	newer.CreatedAt = older.CreatedAt.Add(time.Minute)

	expectRelations := func(m packageMocks, ids ...string) {
		for _, id := range ids {
			m.documents.EXPECT().ListByPackageID(gomock.Any(), id).Return([]entities.Document{}, nil)
			m.checklist.EXPECT().ListByPackageID(gomock.Any(), id).Return([]entities.ChecklistItem{}, nil)
		}
	}

	t.Run("user with owner scope sees only owned packages", func(t *testing.T) {
		uc, m := newPackageUseCase(t, ListingScopeOwner)

		m.packages.EXPECT().ListByOwnerID(gomock.Any(), "user-1").Return([]entities.Package{older}, nil)
		expectRelations(m, "pkg-1")

		pkgs, err := uc.List(context.Background(), actorUser(), "")
		if err != nil || len(pkgs) != 1 {
			t.Fatalf("expected 1 package, got %d err=%v", len(pkgs), err)
		}
	})

	t.Run("admin sees everything newest first", func(t *testing.T) {
		uc, m := newPackageUseCase(t, ListingScopeOwner)

		m.packages.EXPECT().List(gomock.Any()).Return([]entities.Package{older, newer}, nil)
		expectRelations(m, "pkg-2", "pkg-1")

		pkgs, err := uc.List(context.Background(), actorAdmin(), "")
		if err != nil || len(pkgs) != 2 {
			t.Fatalf("expected 2 packages, got %d err=%v", len(pkgs), err)
		}
		if pkgs[0].ID != "pkg-2" || pkgs[1].ID != "pkg-1" {
			t.Fatalf("expected createdAt desc ordering, got %s then %s", pkgs[0].ID, pkgs[1].ID)
		}
	})

	t.Run("all scope lets users see everything", func(t *testing.T) {
		uc, m := newPackageUseCase(t, ListingScopeAll)

		m.packages.EXPECT().List(gomock.Any()).Return([]entities.Package{older}, nil)
		expectRelations(m, "pkg-1")

		pkgs, err := uc.List(context.Background(), actorUser(), "")
		if err != nil || len(pkgs) != 1 {
			t.Fatalf("expected 1 package, got %d err=%v", len(pkgs), err)
		}
	})

	t.Run("filter is case-insensitive substring", func(t *testing.T) {
		uc, m := newPackageUseCase(t, ListingScopeOwner)

		m.packages.EXPECT().List(gomock.Any()).Return([]entities.Package{older, newer}, nil)
		expectRelations(m, "pkg-2")

		pkgs, err := uc.List(context.Background(), actorAdmin(), "MIAMI")
		if err != nil || len(pkgs) != 1 || pkgs[0].ID != "pkg-2" {
			t.Fatalf("expected pkg-2 only, got %+v err=%v", pkgs, err)
		}
	})

	t.Run("filter matches address fragment", func(t *testing.T) {
		uc, m := newPackageUseCase(t, ListingScopeOwner)

		m.packages.EXPECT().List(gomock.Any()).Return([]entities.Package{older}, nil)
		expectRelations(m, "pkg-1")

		pkgs, err := uc.List(context.Background(), actorAdmin(), "orla")
		if err != nil || len(pkgs) != 1 {
			t.Fatalf("expected match on Orlando address, got %+v err=%v", pkgs, err)
		}
	})
}

func TestPackageUseCase_GetByID(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		uc, m := newPackageUseCase(t, ListingScopeOwner)

		m.packages.EXPECT().GetByID(gomock.Any(), "missing").Return(entities.Package{}, nil)

		_, err := uc.GetByID(context.Background(), "missing", actorAdmin())
		if !errors.Is(err, ErrPackageNotFound) {
			t.Fatalf("expected ErrPackageNotFound, got %v", err)
		}
	})

	t.Run("non-owner user is rejected", func(t *testing.T) {
		uc, m := newPackageUseCase(t, ListingScopeOwner)

		m.packages.EXPECT().GetByID(gomock.Any(), "pkg-1").Return(storedPackage(), nil)

		stranger := entities.Identity{UserID: "user-2", Role: entities.RoleUser}
		_, err := uc.GetByID(context.Background(), "pkg-1", stranger)
		if !errors.Is(err, ErrUnauthorized) {
			t.Fatalf("expected ErrUnauthorized, got %v", err)
		}
	})

	t.Run("owner gets package with relations", func(t *testing.T) {
		uc, m := newPackageUseCase(t, ListingScopeOwner)

		m.packages.EXPECT().GetByID(gomock.Any(), "pkg-1").Return(storedPackage(), nil)
		m.documents.EXPECT().ListByPackageID(gomock.Any(), "pkg-1").Return([]entities.Document{{ID: "doc-1"}}, nil)
		m.checklist.EXPECT().ListByPackageID(gomock.Any(), "pkg-1").Return([]entities.ChecklistItem{}, nil)

		p, err := uc.GetByID(context.Background(), "pkg-1", actorUser())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(p.Documents) != 1 || p.Documents[0].ID != "doc-1" {
			t.Fatalf("expected loaded documents, got %+v", p.Documents)
		}
	})
}

func TestPackageUseCase_ChangeStatus(t *testing.T) {
	t.Run("submit persists through optimistic update", func(t *testing.T) {
		uc, m := newPackageUseCase(t, ListingScopeOwner)
		pkg := storedPackage()

		m.packages.EXPECT().GetByID(gomock.Any(), "pkg-1").Return(pkg, nil)
		m.packages.EXPECT().UpdateStatus(gomock.Any(), "pkg-1", entities.StatusSubmitted, pkg.UpdatedAt, gomock.Any()).DoAndReturn(
			func(_ context.Context, id string, status entities.PackageStatus, _, updatedAt time.Time) (entities.Package, error) {
				out := pkg
				out.Status = status
				out.UpdatedAt = updatedAt
				return out, nil
			},
		)
		m.documents.EXPECT().ListByPackageID(gomock.Any(), "pkg-1").Return([]entities.Document{}, nil)
		m.checklist.EXPECT().ListByPackageID(gomock.Any(), "pkg-1").Return([]entities.ChecklistItem{}, nil)

		out, err := uc.ChangeStatus(context.Background(), "pkg-1", lifecycle.EventSubmit, actorUser())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Status != entities.StatusSubmitted {
			t.Fatalf("expected Submitted, got %s", out.Status)
		}
		if !out.UpdatedAt.After(pkg.UpdatedAt) {
			t.Fatalf("expected UpdatedAt to advance")
		}
	})

	t.Run("lifecycle errors pass through unchanged", func(t *testing.T) {
		uc, m := newPackageUseCase(t, ListingScopeOwner)
		pkg := storedPackage()
		pkg.Status = entities.StatusCompleted

		m.packages.EXPECT().GetByID(gomock.Any(), "pkg-1").Return(pkg, nil)

		_, err := uc.ChangeStatus(context.Background(), "pkg-1", lifecycle.EventSubmit, actorAdmin())
		if !errors.Is(err, lifecycle.ErrInvalidTransition) {
			t.Fatalf("expected ErrInvalidTransition, got %v", err)
		}
	})

	t.Run("lost race surfaces as conflict", func(t *testing.T) {
		uc, m := newPackageUseCase(t, ListingScopeOwner)
		pkg := storedPackage()

		m.packages.EXPECT().GetByID(gomock.Any(), "pkg-1").Return(pkg, nil)
		m.packages.EXPECT().UpdateStatus(gomock.Any(), "pkg-1", entities.StatusSubmitted, pkg.UpdatedAt, gomock.Any()).
			Return(entities.Package{}, interfaces.ErrConflict)

		_, err := uc.ChangeStatus(context.Background(), "pkg-1", lifecycle.EventSubmit, actorUser())
		if !errors.Is(err, interfaces.ErrConflict) {
			t.Fatalf("expected ErrConflict, got %v", err)
		}
	})

	t.Run("missing package", func(t *testing.T) {
		uc, m := newPackageUseCase(t, ListingScopeOwner)

		m.packages.EXPECT().GetByID(gomock.Any(), "missing").Return(entities.Package{}, nil)

		_, err := uc.ChangeStatus(context.Background(), "missing", lifecycle.EventSubmit, actorAdmin())
		if !errors.Is(err, ErrPackageNotFound) {
			t.Fatalf("expected ErrPackageNotFound, got %v", err)
		}
	})
}

func TestPackageUseCase_AttachDocument(t *testing.T) {
	in := attachment.Input{Name: "deed.pdf", URL: "https://x/1"}

	t.Run("non-owner user is rejected", func(t *testing.T) {
		uc, m := newPackageUseCase(t, ListingScopeOwner)

		m.packages.EXPECT().GetByID(gomock.Any(), "pkg-1").Return(storedPackage(), nil)

		stranger := entities.Identity{UserID: "user-2", Role: entities.RoleUser}
		_, err := uc.AttachDocument(context.Background(), "pkg-1", in, stranger)
		if !errors.Is(err, ErrUnauthorized) {
			t.Fatalf("expected ErrUnauthorized, got %v", err)
		}
	})

	t.Run("attach assigns next version and touches package", func(t *testing.T) {
		uc, m := newPackageUseCase(t, ListingScopeOwner)
		pkg := storedPackage()

		m.packages.EXPECT().GetByID(gomock.Any(), "pkg-1").Return(pkg, nil)
		m.documents.EXPECT().ListByPackageID(gomock.Any(), "pkg-1").Return([]entities.Document{
			{Name: "deed.pdf", Version: 1},
		}, nil)
		m.packages.EXPECT().TouchUpdatedAt(gomock.Any(), "pkg-1", pkg.UpdatedAt, gomock.Any()).Return(pkg, nil)
		m.documents.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Document{})).DoAndReturn(
			func(_ context.Context, d entities.Document) (entities.Document, error) {
				if d.Version != 2 || d.PackageID != "pkg-1" || d.UploaderID != "user-1" {
					t.Fatalf("unexpected document: %+v", d)
				}
				return d, nil
			},
		)

		doc, err := uc.AttachDocument(context.Background(), "pkg-1", in, actorUser())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if doc.Version != 2 {
			t.Fatalf("expected version 2, got %d", doc.Version)
		}
	})

	t.Run("completed package is closed", func(t *testing.T) {
		uc, m := newPackageUseCase(t, ListingScopeOwner)
		pkg := storedPackage()
		pkg.Status = entities.StatusCompleted

		m.packages.EXPECT().GetByID(gomock.Any(), "pkg-1").Return(pkg, nil)
		m.documents.EXPECT().ListByPackageID(gomock.Any(), "pkg-1").Return(nil, nil)

		_, err := uc.AttachDocument(context.Background(), "pkg-1", in, actorUser())
		if !errors.Is(err, attachment.ErrPackageClosed) {
			t.Fatalf("expected ErrPackageClosed, got %v", err)
		}
	})

	t.Run("concurrent attach loses the touch race", func(t *testing.T) {
		uc, m := newPackageUseCase(t, ListingScopeOwner)
		pkg := storedPackage()

		m.packages.EXPECT().GetByID(gomock.Any(), "pkg-1").Return(pkg, nil)
		m.documents.EXPECT().ListByPackageID(gomock.Any(), "pkg-1").Return(nil, nil)
		m.packages.EXPECT().TouchUpdatedAt(gomock.Any(), "pkg-1", pkg.UpdatedAt, gomock.Any()).
			Return(entities.Package{}, interfaces.ErrConflict)

		_, err := uc.AttachDocument(context.Background(), "pkg-1", in, actorUser())
		if !errors.Is(err, interfaces.ErrConflict) {
			t.Fatalf("expected ErrConflict, got %v", err)
		}
	})
}
