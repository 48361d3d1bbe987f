package domain

import "time"

type RoadNewsType string

const (
	RoadNewsAlert   RoadNewsType = "alert"
	RoadNewsTraffic RoadNewsType = "traffic"
	RoadNewsInfo    RoadNewsType = "info"
)

// RoadNews is a safety/traffic item. Read-only from the API's perspective;
// rows are seeded out of band. Coordinates are optional.
type RoadNews struct {
	ID          string       `json:"id" db:"id"`
	Type        RoadNewsType `json:"type" db:"type"`
	Title       string       `json:"title" db:"title"`
	Description *string      `json:"description" db:"description"`
	Latitude    *float64     `json:"latitude" db:"latitude"`
	Longitude   *float64     `json:"longitude" db:"longitude"`
	Timestamp   time.Time    `json:"timestamp" db:"timestamp"`
}
