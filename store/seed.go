package store

import (
	"time"

	"adminpanel/models"
)

// Fixed dashboard counters. Only user and trash counts come from the data.
const (
	SeedReports     = 25
	SeedActiveLinks = 12
)

func SeedUsers() []models.User {
	return []models.User{
		{ID: 1, Username: "john_doe", Email: "john@example.com", IsActive: true},
		{ID: 2, Username: "jane_smith", Email: "jane@example.com", IsActive: true},
		{ID: 3, Username: "bob_wilson", Email: "bob@example.com", IsActive: false},
	}
}

func SeedDeletedUsers(now time.Time) []models.DeletedUser {
	return []models.DeletedUser{
		{
			ID:            10,
			Username:      "deleted_user",
			Email:         "deleted@example.com",
			DeletedReason: "admin",
			DeletedAt:     now.AddDate(0, 0, -5),
		},
	}
}

func SeedCredentials() map[string]string {
	return map[string]string{
		"admin":      "admin123",
		"superadmin": "super456",
	}
}
