package domain

import "time"

// Rating is a peer evaluation across four dimensions, each scored 1-5.
// At most one rating exists per ordered (rater, rated) pair.
type Rating struct {
	ID            int64     `json:"id" db:"id"`
	RaterID       string    `json:"rater_id" db:"rater_id"`
	RatedID       string    `json:"rated_id" db:"rated_id"`
	Respect       int       `json:"respect" db:"respect"`
	Communication int       `json:"communication" db:"communication"`
	Humor         int       `json:"humor" db:"humor"`
	Collaboration int       `json:"collaboration" db:"collaboration"`
	CreatedAt     time.Time `json:"created_at" db:"created_at"`
}

// RatingAverages holds the per-dimension means over every rating a user
// has received. Recomputed from the rating set, never stored.
type RatingAverages struct {
	RatedID          string  `json:"rated_id" db:"rated_id"`
	AvgRespect       float64 `json:"avg_respect" db:"avg_respect"`
	AvgCommunication float64 `json:"avg_communication" db:"avg_communication"`
	AvgHumor         float64 `json:"avg_humor" db:"avg_humor"`
	AvgCollaboration float64 `json:"avg_collaboration" db:"avg_collaboration"`
	RatingCount      int     `json:"rating_count" db:"rating_count"`
}

// Overall is the unweighted mean of the four dimension averages.
func (a *RatingAverages) Overall() float64 {
	return (a.AvgRespect + a.AvgCommunication + a.AvgHumor + a.AvgCollaboration) / 4
}

// Satisfies reports whether the averages meet every minimum threshold
// of the filter spec.
func (a *RatingAverages) Satisfies(spec FilterSpec) bool {
	return a.AvgRespect >= float64(spec.MinRespect) &&
		a.AvgCommunication >= float64(spec.MinCommunication) &&
		a.AvgHumor >= float64(spec.MinHumor) &&
		a.AvgCollaboration >= float64(spec.MinCollaboration)
}
