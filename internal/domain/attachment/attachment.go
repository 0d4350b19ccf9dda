package attachment

import (
	"errors"
	"time"

	"permitpro/internal/domain/entities"

	"github.com/google/uuid"
)

var (
	ErrPackageClosed = errors.New("package is completed; no further documents may be attached")
	ErrEmptyName     = errors.New("document name is required")
	ErrEmptyURL      = errors.New("document url is required")
)

// Input is the caller-supplied part of a new document. The URL points at
// external blob storage; reachability is not checked here.
type Input struct {
	Name string
	URL  string
}

// Attach builds the next document record for pkg. It is pure: existing is
// only scanned to pick the version, and persistence is the caller's
// responsibility.
//
// Versioning: documents sharing a name (case-sensitive exact match) form a
// version chain. The first upload gets version 1; each re-upload gets
// max(existing versions)+1. Because the next version is always derived from
// the full chain, no two documents in a package can share (name, version).
func Attach(pkg entities.Package, existing []entities.Document, in Input, uploader entities.Identity) (entities.Document, error) {
	if pkg.Status == entities.StatusCompleted {
		return entities.Document{}, ErrPackageClosed
	}
	if in.Name == "" {
		return entities.Document{}, ErrEmptyName
	}
	if in.URL == "" {
		return entities.Document{}, ErrEmptyURL
	}

	return entities.Document{
		ID:         uuid.NewString(),
		PackageID:  pkg.ID,
		Name:       in.Name,
		URL:        in.URL,
		Version:    NextVersion(existing, in.Name),
		UploaderID: uploader.UserID,
		UploadedAt: time.Now().UTC(),
	}, nil
}

// NextVersion returns the version to assign to a new upload of name given the
// package's existing documents.
func NextVersion(existing []entities.Document, name string) int {
	max := 0
	for _, d := range existing {
		if d.Name == name && d.Version > max {
			max = d.Version
		}
	}
	return max + 1
}
