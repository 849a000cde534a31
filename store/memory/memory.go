// Package memory implements the record store as seeded in-process slices.
// This is the default backend: everything is gone on restart.
package memory

import (
	"sync"
	"time"

	"adminpanel/models"
	"adminpanel/store"
)

type Store struct {
	mu      sync.Mutex
	users   []models.User
	deleted []models.DeletedUser
	creds   map[string]string
	stats   models.Stats
}

var _ store.Store = (*Store)(nil)

// New builds a store with the seed data and takes the stats snapshot.
func New() *Store {
	users := store.SeedUsers()
	deleted := store.SeedDeletedUsers(time.Now())
	return &Store{
		users:   users,
		deleted: deleted,
		creds:   store.SeedCredentials(),
		stats: models.Stats{
			TotalUsers:  len(users),
			Reports:     store.SeedReports,
			ActiveLinks: store.SeedActiveLinks,
			TrashItems:  len(deleted),
		},
	}
}

func (s *Store) ListUsers() ([]models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	result := make([]models.User, len(s.users))
	copy(result, s.users)
	return result, nil
}

func (s *Store) FindUser(id int) (models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.users {
		if u.ID == id {
			return u, nil
		}
	}
	return models.User{}, store.ErrNotFound
}

func (s *Store) DeleteUser(id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, u := range s.users {
		if u.ID == id {
			s.users = append(s.users[:i], s.users[i+1:]...)
			return nil
		}
	}
	// Unknown id: no-op, not an error.
	return nil
}

func (s *Store) ListDeleted() ([]models.DeletedUser, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	result := make([]models.DeletedUser, len(s.deleted))
	copy(result, s.deleted)
	return result, nil
}

func (s *Store) Stats() models.Stats {
	return s.stats
}

func (s *Store) CheckCredentials(username, password string) (bool, error) {
	stored, ok := s.creds[username]
	return ok && stored == password, nil
}
