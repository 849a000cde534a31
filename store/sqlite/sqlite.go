// Package sqlite implements the record store over a sqlite database. The
// default DSN is ":memory:", so the panel keeps its reset-on-restart
// behavior; pointing the DSN at a file is what a persistent deployment
// would do.
package sqlite

import (
	"database/sql"
	"time"

	"adminpanel/models"
	"adminpanel/store"

	_ "github.com/mattn/go-sqlite3"
)

type Store struct {
	db    *sql.DB
	stats models.Stats
}

var _ store.Store = (*Store)(nil)

// Open opens the database, creates the schema and seeds it. The stats
// snapshot is taken here and never refreshed.
func Open(dsn string) (*Store, error) {
	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, err
	}
	// An in-memory sqlite database exists per connection; a second
	// connection would see an empty schema.
	db.SetMaxOpenConns(1)

	createTables := `
	CREATE TABLE IF NOT EXISTS users (
		id INTEGER PRIMARY KEY,
		username TEXT NOT NULL,
		email TEXT NOT NULL,
		is_active BOOLEAN NOT NULL
	);

	CREATE TABLE IF NOT EXISTS deleted_users (
		id INTEGER PRIMARY KEY,
		username TEXT NOT NULL,
		email TEXT NOT NULL,
		deleted_reason TEXT NOT NULL,
		deleted_at DATETIME NOT NULL,
		profile_image_url TEXT
	);

	CREATE TABLE IF NOT EXISTS admin_accounts (
		username TEXT PRIMARY KEY,
		password TEXT NOT NULL
	);
	`
	if _, err := db.Exec(createTables); err != nil {
		db.Close()
		return nil, err
	}

	s := &Store{db: db}
	if err := s.seed(); err != nil {
		db.Close()
		return nil, err
	}

	var users, deleted int
	if err := db.QueryRow("SELECT COUNT(*) FROM users").Scan(&users); err != nil {
		db.Close()
		return nil, err
	}
	if err := db.QueryRow("SELECT COUNT(*) FROM deleted_users").Scan(&deleted); err != nil {
		db.Close()
		return nil, err
	}
	s.stats = models.Stats{
		TotalUsers:  users,
		Reports:     store.SeedReports,
		ActiveLinks: store.SeedActiveLinks,
		TrashItems:  deleted,
	}

	return s, nil
}

func (s *Store) seed() error {
	var count int
	if err := s.db.QueryRow("SELECT COUNT(*) FROM users").Scan(&count); err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	for _, u := range store.SeedUsers() {
		if _, err := s.db.Exec("INSERT INTO users (id, username, email, is_active) VALUES (?, ?, ?, ?)",
			u.ID, u.Username, u.Email, u.IsActive); err != nil {
			return err
		}
	}
	for _, d := range store.SeedDeletedUsers(time.Now()) {
		var img any
		if d.ProfileImageURL != nil {
			img = *d.ProfileImageURL
		}
		if _, err := s.db.Exec("INSERT INTO deleted_users (id, username, email, deleted_reason, deleted_at, profile_image_url) VALUES (?, ?, ?, ?, ?, ?)",
			d.ID, d.Username, d.Email, d.DeletedReason, d.DeletedAt, img); err != nil {
			return err
		}
	}
	for username, password := range store.SeedCredentials() {
		if _, err := s.db.Exec("INSERT INTO admin_accounts (username, password) VALUES (?, ?)",
			username, password); err != nil {
			return err
		}
	}
	return nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) ListUsers() ([]models.User, error) {
	rows, err := s.db.Query("SELECT id, username, email, is_active FROM users ORDER BY rowid")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []models.User
	for rows.Next() {
		var u models.User
		if err := rows.Scan(&u.ID, &u.Username, &u.Email, &u.IsActive); err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, rows.Err()
}

func (s *Store) FindUser(id int) (models.User, error) {
	var u models.User
	err := s.db.QueryRow("SELECT id, username, email, is_active FROM users WHERE id = ?", id).
		Scan(&u.ID, &u.Username, &u.Email, &u.IsActive)
	if err == sql.ErrNoRows {
		return models.User{}, store.ErrNotFound
	}
	if err != nil {
		return models.User{}, err
	}
	return u, nil
}

func (s *Store) DeleteUser(id int) error {
	// Deleting an absent id affects zero rows, which is the contract.
	_, err := s.db.Exec("DELETE FROM users WHERE id = ?", id)
	return err
}

func (s *Store) ListDeleted() ([]models.DeletedUser, error) {
	rows, err := s.db.Query("SELECT id, username, email, deleted_reason, deleted_at, profile_image_url FROM deleted_users ORDER BY rowid")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var deleted []models.DeletedUser
	for rows.Next() {
		var d models.DeletedUser
		var img sql.NullString
		if err := rows.Scan(&d.ID, &d.Username, &d.Email, &d.DeletedReason, &d.DeletedAt, &img); err != nil {
			return nil, err
		}
		if img.Valid {
			d.ProfileImageURL = &img.String
		}
		deleted = append(deleted, d)
	}
	return deleted, rows.Err()
}

func (s *Store) Stats() models.Stats {
	return s.stats
}

func (s *Store) CheckCredentials(username, password string) (bool, error) {
	var stored string
	err := s.db.QueryRow("SELECT password FROM admin_accounts WHERE username = ?", username).Scan(&stored)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return stored == password, nil
}
