package domain

const (
	DefaultMinRating = 1
	MaxRating        = 5
	DefaultMinAge    = 18
	DefaultMaxAge    = 99
)

// FilterSpec narrows the discovery candidate set. It is ephemeral and
// caller-supplied; zero values mean "use the default".
type FilterSpec struct {
	MinRespect       int `json:"min_respect"`
	MinCommunication int `json:"min_communication"`
	MinHumor         int `json:"min_humor"`
	MinCollaboration int `json:"min_collaboration"`

	Gender *string `json:"gender,omitempty"`
	MinAge int     `json:"min_age"`
	MaxAge int     `json:"max_age"`

	SameLocation bool `json:"same_location"`
	SamePlatform bool `json:"same_platform"`
	CommonGames  bool `json:"common_games"`

	MaxDistanceKm *float64 `json:"max_distance_km,omitempty"`
}

// DefaultFilterSpec returns a spec that filters nothing beyond the
// exclusion rules: all rating minimums 1, age 18-99, no flags.
func DefaultFilterSpec() FilterSpec {
	return FilterSpec{
		MinRespect:       DefaultMinRating,
		MinCommunication: DefaultMinRating,
		MinHumor:         DefaultMinRating,
		MinCollaboration: DefaultMinRating,
		MinAge:           DefaultMinAge,
		MaxAge:           DefaultMaxAge,
	}
}

// Normalize fills unset fields with defaults and clamps rating minimums
// into the 1-5 range.
func (f *FilterSpec) Normalize() {
	clamp := func(v int) int {
		if v < DefaultMinRating {
			return DefaultMinRating
		}
		if v > MaxRating {
			return MaxRating
		}
		return v
	}
	f.MinRespect = clamp(f.MinRespect)
	f.MinCommunication = clamp(f.MinCommunication)
	f.MinHumor = clamp(f.MinHumor)
	f.MinCollaboration = clamp(f.MinCollaboration)

	if f.MinAge == 0 {
		f.MinAge = DefaultMinAge
	}
	if f.MaxAge == 0 {
		f.MaxAge = DefaultMaxAge
	}
	if f.Gender != nil && *f.Gender == "" {
		f.Gender = nil
	}
}

// HasRatingThresholds reports whether any rating minimum is above the
// default. Only then is the discovery fallback re-query attempted.
func (f FilterSpec) HasRatingThresholds() bool {
	return f.MinRespect > DefaultMinRating ||
		f.MinCommunication > DefaultMinRating ||
		f.MinHumor > DefaultMinRating ||
		f.MinCollaboration > DefaultMinRating
}

// HasDefaultAgeRange reports whether the age range is the 18-99 default.
func (f FilterSpec) HasDefaultAgeRange() bool {
	return f.MinAge == DefaultMinAge && f.MaxAge == DefaultMaxAge
}
