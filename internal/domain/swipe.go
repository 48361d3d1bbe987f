package domain

import "time"

type SwipeAction string

const (
	SwipeActionLike SwipeAction = "LIKE"
	SwipeActionPass SwipeAction = "PASS"
)

func (a SwipeAction) Valid() bool {
	return a == SwipeActionLike || a == SwipeActionPass
}

// Swipe is a one-directional preference. At most one swipe exists per
// ordered (swiper, target) pair; the table carries a unique index on it.
type Swipe struct {
	ID        string      `json:"id" db:"id"`
	SwiperID  string      `json:"swiperId" db:"swiper_id"`
	TargetID  string      `json:"targetId" db:"target_id"`
	Action    SwipeAction `json:"action" db:"action"`
	CreatedAt time.Time   `json:"createdAt" db:"created_at"`
}
