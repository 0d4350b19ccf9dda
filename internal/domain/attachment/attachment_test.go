package attachment

import (
	"errors"
	"testing"

	"permitpro/internal/domain/entities"
)

func openPackage() entities.Package {
	return entities.Package{ID: "pkg-1", Status: entities.StatusSubmitted, OwnerID: "user-1"}
}

func uploader() entities.Identity {
	return entities.Identity{UserID: "user-1", Role: entities.RoleUser}
}

func TestAttach(t *testing.T) {
	t.Run("first upload gets version 1", func(t *testing.T) {
		doc, err := Attach(openPackage(), nil, Input{Name: "deed.pdf", URL: "https://x/1"}, uploader())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if doc.Version != 1 {
			t.Fatalf("expected version 1, got %d", doc.Version)
		}
		if doc.ID == "" || doc.PackageID != "pkg-1" || doc.UploaderID != "user-1" {
			t.Fatalf("unexpected document: %+v", doc)
		}
		if doc.UploadedAt.IsZero() {
			t.Fatalf("expected UploadedAt to be set")
		}
	})

	t.Run("re-upload gets next version", func(t *testing.T) {
		existing := []entities.Document{
			{Name: "deed.pdf", Version: 1},
			{Name: "survey.pdf", Version: 1},
			{Name: "deed.pdf", Version: 2},
		}
		doc, err := Attach(openPackage(), existing, Input{Name: "deed.pdf", URL: "https://x/3"}, uploader())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if doc.Version != 3 {
			t.Fatalf("expected version 3, got %d", doc.Version)
		}
	})

	t.Run("name match is case-sensitive", func(t *testing.T) {
		existing := []entities.Document{{Name: "Deed.pdf", Version: 4}}
		doc, err := Attach(openPackage(), existing, Input{Name: "deed.pdf", URL: "https://x/1"}, uploader())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if doc.Version != 1 {
			t.Fatalf("expected version 1 for distinct name, got %d", doc.Version)
		}
	})

	t.Run("completed package is closed", func(t *testing.T) {
		pkg := openPackage()
		pkg.Status = entities.StatusCompleted
		_, err := Attach(pkg, nil, Input{Name: "deed.pdf", URL: "https://x/1"}, uploader())
		if !errors.Is(err, ErrPackageClosed) {
			t.Fatalf("expected ErrPackageClosed, got %v", err)
		}
	})

	t.Run("empty fields rejected", func(t *testing.T) {
		if _, err := Attach(openPackage(), nil, Input{Name: "", URL: "https://x/1"}, uploader()); !errors.Is(err, ErrEmptyName) {
			t.Fatalf("expected ErrEmptyName, got %v", err)
		}
		if _, err := Attach(openPackage(), nil, Input{Name: "deed.pdf", URL: ""}, uploader()); !errors.Is(err, ErrEmptyURL) {
			t.Fatalf("expected ErrEmptyURL, got %v", err)
		}
	})
}

func TestNextVersion_Interleaved(t *testing.T) {
	// Version chains are independent per name regardless of attach order.
	var existing []entities.Document
	order := []string{"deed.pdf", "survey.pdf", "deed.pdf", "permit.pdf", "deed.pdf", "survey.pdf"}
	want := []int{1, 1, 2, 1, 3, 2}

	for i, name := range order {
		v := NextVersion(existing, name)
		if v != want[i] {
			t.Fatalf("attach %d (%s): expected version %d, got %d", i, name, want[i], v)
		}
		existing = append(existing, entities.Document{Name: name, Version: v})
	}
}
