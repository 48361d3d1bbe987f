package domain

import "time"

// User mirrors the identity-provider account plus the app-owned profile
// fields. The ID is the provider's opaque identifier and is never generated
// locally.
type User struct {
	ID                  string     `json:"id" db:"id"`
	Email               string     `json:"email" db:"email"`
	Username            *string    `json:"username" db:"username"`
	Name                *string    `json:"name" db:"name"`
	Age                 *int       `json:"age" db:"age"`
	Gender              *string    `json:"gender" db:"gender"`
	Bio                 *string    `json:"bio" db:"bio"`
	VehicleType         *string    `json:"vehicleType" db:"vehicle_type"`
	BuildStatus         *string    `json:"buildStatus" db:"build_status"`
	AvatarURL           *string    `json:"avatarUrl" db:"avatar_url"`
	RigPhotoURL         *string    `json:"rigPhotoUrl" db:"rig_photo_url"`
	OnboardingCompleted bool       `json:"onboardingCompleted" db:"onboarding_completed"`
	LastLatitude        *float64   `json:"lastLatitude" db:"last_latitude"`
	LastLongitude       *float64   `json:"lastLongitude" db:"last_longitude"`
	LastLocationAt      *time.Time `json:"lastLocationAt" db:"last_location_at"`
	CreatedAt           time.Time  `json:"createdAt" db:"created_at"`
	UpdatedAt           time.Time  `json:"updatedAt" db:"updated_at"`
}

// DisplayName prefers the real name, falls back to the username, then to a
// generic label so list views never render an empty card.
func (u *User) DisplayName() string {
	if u.Name != nil && *u.Name != "" {
		return *u.Name
	}
	if u.Username != nil && *u.Username != "" {
		return *u.Username
	}
	return "Nomad"
}

// HasLocation reports whether the user ever shared a position.
func (u *User) HasLocation() bool {
	return u.LastLatitude != nil && u.LastLongitude != nil
}
