// Package store defines the record store the admin handlers work against.
// Both backends hold the same seeded data set and lose it on restart.
package store

import (
	"errors"

	"adminpanel/models"
)

// ErrNotFound is returned by FindUser for an unknown id. Delete never
// returns it: deleting an absent id is a no-op by contract.
var ErrNotFound = errors.New("user not found")

type Store interface {
	// ListUsers returns the active users in insertion order. Deletions
	// preserve the relative order of the remainder.
	ListUsers() ([]models.User, error)

	// FindUser returns the active user with the given id, or ErrNotFound.
	FindUser(id int) (models.User, error)

	// DeleteUser removes every active user with the given id (at most one,
	// ids are unique). An unknown id is a silent no-op. The deleted-records
	// list and the stats snapshot are not touched.
	DeleteUser(id int) error

	// ListDeleted returns the seeded deleted-user records.
	ListDeleted() ([]models.DeletedUser, error)

	// Stats returns the dashboard counters computed when the store was
	// built. They go stale after deletions on purpose.
	Stats() models.Stats

	// CheckCredentials compares the pair against the fixed admin accounts.
	// Exact, case-sensitive match.
	CheckCredentials(username, password string) (bool, error)
}
