package domain

import "time"

// GaragePro is a service listing (mechanic, electrician, ...). A user owns
// at most one. Coordinates are optional; listings without them simply never
// show up in proximity results.
type GaragePro struct {
	ID          string    `json:"id" db:"id"`
	UserID      string    `json:"userId" db:"user_id"`
	Name        string    `json:"name" db:"name"`
	Title       *string   `json:"title" db:"title"`
	Specialty   *string   `json:"specialty" db:"specialty"`
	Rate        *string   `json:"rate" db:"rate"`
	Verified    bool      `json:"verified" db:"verified"`
	Category    *string   `json:"category" db:"category"`
	ImageURL    *string   `json:"imageUrl" db:"image_url"`
	PhoneNumber *string   `json:"phoneNumber" db:"phone_number"`
	Email       *string   `json:"email" db:"email"`
	Website     *string   `json:"website" db:"website"`
	Location    *string   `json:"location" db:"location"`
	Latitude    *float64  `json:"latitude" db:"latitude"`
	Longitude   *float64  `json:"longitude" db:"longitude"`
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt   time.Time `json:"updatedAt" db:"updated_at"`
}
