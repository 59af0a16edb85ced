package domain

import "time"

// FavoriteGame is one entry of a user's favorite-game list, keyed by
// the external catalog id.
type FavoriteGame struct {
	ID        int64     `json:"id" db:"id"`
	UserID    string    `json:"user_id" db:"user_id"`
	GameID    string    `json:"game_id" db:"game_id"`
	Name      string    `json:"name" db:"name"`
	CoverURL  *string   `json:"cover_url" db:"cover_url"`
	Genres    []string  `json:"genres" db:"genres"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}
