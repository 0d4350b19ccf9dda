package interfaces

import "errors"

// ErrConflict is returned by repositories when a conditional write loses a
// race: an optimistic updated_at check failed, or a (name, version) document
// slot was taken by a concurrent attach. Callers may retry or surface 409.
var ErrConflict = errors.New("concurrent modification conflict")
