package lifecycle

import (
	"errors"
	"strings"
	"time"

	"permitpro/internal/domain/entities"
)

var (
	ErrUnauthorized      = errors.New("actor not allowed to perform this transition")
	ErrInvalidTransition = errors.New("invalid status transition")
	ErrGuardNotSatisfied = errors.New("transition guard not satisfied")
)

// Event is a requested change to a package's status.
//
// The table is intentionally small:
//
//	Draft     --submit-------> Submitted   (owner or Admin; required fields set)
//	Submitted --complete-----> Completed   (Admin only)
//	Submitted --returnToDraft> Draft       (Admin only; explicit re-open)
//	Completed is terminal.

type Event string

const (
	EventSubmit        Event = "submit"
	EventComplete      Event = "complete"
	EventReturnToDraft Event = "returnToDraft"
)

// Transition applies event to pkg on behalf of actor and returns the updated
// package value with a refreshed UpdatedAt. It is pure: no I/O, no mutation
// of pkg or its collections; persistence is the caller's responsibility.
//
// Authorization is checked before the transition table: submit requires the
// package owner or an Admin, complete and returnToDraft require an Admin.
func Transition(pkg entities.Package, event Event, actor entities.Identity) (entities.Package, error) {
	switch event {
	case EventSubmit:
		if !actor.IsAdmin() && actor.UserID != pkg.OwnerID {
			return entities.Package{}, ErrUnauthorized
		}
	case EventComplete, EventReturnToDraft:
		if !actor.IsAdmin() {
			return entities.Package{}, ErrUnauthorized
		}
	default:
		return entities.Package{}, ErrInvalidTransition
	}

	next, ok := nextStatus(pkg.Status, event)
	if !ok {
		return entities.Package{}, ErrInvalidTransition
	}

	if event == EventSubmit && !submitGuard(pkg) {
		return entities.Package{}, ErrGuardNotSatisfied
	}

	pkg.Status = next
	pkg.UpdatedAt = time.Now().UTC()
	return pkg, nil
}

func nextStatus(from entities.PackageStatus, event Event) (entities.PackageStatus, bool) {
	switch {
	case from == entities.StatusDraft && event == EventSubmit:
		return entities.StatusSubmitted, true
	case from == entities.StatusSubmitted && event == EventComplete:
		return entities.StatusCompleted, true
	case from == entities.StatusSubmitted && event == EventReturnToDraft:
		return entities.StatusDraft, true
	}
	return "", false
}

// submitGuard requires every field the county office needs on intake.
func submitGuard(pkg entities.Package) bool {
	return strings.TrimSpace(pkg.CustomerName) != "" &&
		strings.TrimSpace(pkg.PropertyAddress) != "" &&
		strings.TrimSpace(pkg.County) != ""
}
