package domain

import "time"

// Build is a showcased van build.
type Build struct {
	ID          string    `json:"id" db:"id"`
	UserID      string    `json:"userId" db:"user_id"`
	Name        string    `json:"name" db:"name"`
	Model       *string   `json:"model" db:"model"`
	Description *string   `json:"description" db:"description"`
	ImageURL    *string   `json:"imageUrl" db:"image_url"`
	Tags        []string  `json:"tags" db:"tags"`
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt   time.Time `json:"updatedAt" db:"updated_at"`
}
