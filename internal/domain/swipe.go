package domain

import "time"

// Swipe is an append-only directional like/pass decision. At most one
// swipe exists per ordered (swiper, swiped) pair; a match between two
// users is derived from two reciprocal likes, never stored.
type Swipe struct {
	ID        int64     `json:"id" db:"id"`
	SwiperID  string    `json:"swiper_id" db:"swiper_id"`
	SwipedID  string    `json:"swiped_id" db:"swiped_id"`
	IsLike    bool      `json:"is_like" db:"is_like"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}
