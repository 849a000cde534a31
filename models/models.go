package models

import "time"

type User struct {
	ID       int    `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	IsActive bool   `json:"is_active"`
}

type DeletedUser struct {
	ID              int       `json:"id"`
	Username        string    `json:"username"`
	Email           string    `json:"email"`
	DeletedReason   string    `json:"deleted_reason"`
	DeletedAt       time.Time `json:"deleted_at"`
	ProfileImageURL *string   `json:"profile_image_url,omitempty"`
}

// Stats holds the dashboard counters. They are computed once when the store
// is built and are not refreshed after later deletions.
type Stats struct {
	TotalUsers  int `json:"total_users"`
	Reports     int `json:"reports"`
	ActiveLinks int `json:"active_links"`
	TrashItems  int `json:"trash_items"`
}

// Flash is a one-shot notice shown on the next rendered page.
// Type is "success", "error" or "info".
type Flash struct {
	Type    string
	Message string
}
