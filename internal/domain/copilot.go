package domain

import "time"

// CoPilotProfile is the dating-side profile. One per user; the base User
// record keeps the display fields shared with the rest of the app.
type CoPilotProfile struct {
	ID                string    `json:"id" db:"id"`
	UserID            string    `json:"userId" db:"user_id"`
	IsActive          bool      `json:"isActive" db:"is_active"`
	Identity          string    `json:"identity" db:"identity"`
	Seeking           string    `json:"seeking" db:"seeking"`
	RelationshipStyle string    `json:"relationshipStyle" db:"relationship_style"`
	SeatBeltRule      bool      `json:"seatBeltRule" db:"seat_belt_rule"`
	Tagline           *string   `json:"tagline" db:"tagline"`
	Photos            []string  `json:"photos" db:"photos"`
	RigPhotos         []string  `json:"rigPhotos" db:"rig_photos"`
	Prompts           []string  `json:"prompts" db:"prompts"`
	CreatedAt         time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt         time.Time `json:"updatedAt" db:"updated_at"`
}
