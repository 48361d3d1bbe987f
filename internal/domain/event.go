package domain

import "time"

// Event is a meetup pinned to a fixed position. Only the host may edit or
// delete it.
type Event struct {
	ID          string     `json:"id" db:"id"`
	Title       string     `json:"title" db:"title"`
	Description *string    `json:"description" db:"description"`
	Location    string     `json:"location" db:"location"`
	Latitude    float64    `json:"latitude" db:"latitude"`
	Longitude   float64    `json:"longitude" db:"longitude"`
	StartDate   time.Time  `json:"startDate" db:"start_date"`
	EndDate     *time.Time `json:"endDate" db:"end_date"`
	ImageURL    *string    `json:"imageUrl" db:"image_url"`
	Category    *string    `json:"category" db:"category"`
	HostUserID  string     `json:"hostUserId" db:"host_user_id"`
	CreatedAt   time.Time  `json:"createdAt" db:"created_at"`
}

// EventHost is the slim host projection attached to event listings.
type EventHost struct {
	ID        string  `json:"id" db:"id"`
	Name      *string `json:"name" db:"name"`
	Username  *string `json:"username" db:"username"`
	AvatarURL *string `json:"avatarUrl" db:"avatar_url"`
}

// PinnedEvent marks an event saved to a user's dashboard.
type PinnedEvent struct {
	UserID    string    `json:"userId" db:"user_id"`
	EventID   string    `json:"eventId" db:"event_id"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}
