package domain

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// MaxProfilePhotos caps the ordered photo list on a profile.
const MaxProfilePhotos = 3

// Availability maps a weekday name to the time periods a player is
// usually free ("morning", "afternoon", "evening"). Stored as jsonb.
type Availability map[string][]string

func (a Availability) Value() (driver.Value, error) {
	if a == nil {
		return nil, nil
	}
	return json.Marshal(a)
}

func (a *Availability) Scan(src interface{}) error {
	if src == nil {
		*a = nil
		return nil
	}
	b, ok := src.([]byte)
	if !ok {
		return fmt.Errorf("availability: unsupported scan type %T", src)
	}
	return json.Unmarshal(b, a)
}

type Profile struct {
	ID        string     `json:"id" db:"id"`
	Username  string     `json:"username" db:"username"`
	FullName  *string    `json:"full_name" db:"full_name"`
	Bio       *string    `json:"bio" db:"bio"`
	BirthDate *time.Time `json:"birth_date" db:"birth_date"`
	Gender    *string    `json:"gender" db:"gender"`

	AvatarURL *string  `json:"avatar_url" db:"avatar_url"`
	Photos    []string `json:"photos" db:"photos"`

	City      *string  `json:"city" db:"city"`
	State     *string  `json:"state" db:"state"`
	CEP       *string  `json:"cep" db:"cep"`
	Latitude  *float64 `json:"latitude" db:"latitude"`
	Longitude *float64 `json:"longitude" db:"longitude"`

	DiscordHandle *string `json:"discord_handle" db:"discord_handle"`
	PSNHandle     *string `json:"psn_handle" db:"psn_handle"`
	XboxHandle    *string `json:"xbox_handle" db:"xbox_handle"`
	SteamHandle   *string `json:"steam_handle" db:"steam_handle"`

	GameGenres   []string     `json:"game_genres" db:"game_genres"`
	Availability Availability `json:"availability" db:"availability"`

	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// Age returns the profile's age in whole years at the given instant,
// or nil when no birth date is set.
func (p *Profile) Age(now time.Time) *int {
	if p.BirthDate == nil {
		return nil
	}
	years := now.Year() - p.BirthDate.Year()
	anniversary := p.BirthDate.AddDate(years, 0, 0)
	if anniversary.After(now) {
		years--
	}
	return &years
}

// HasCoordinates reports whether both latitude and longitude are set.
// The pair is set or cleared together; a lone latitude is never stored.
func (p *Profile) HasCoordinates() bool {
	return p.Latitude != nil && p.Longitude != nil
}

// PlatformHandles returns the non-empty platform handles.
func (p *Profile) PlatformHandles() []string {
	var handles []string
	for _, h := range []*string{p.DiscordHandle, p.PSNHandle, p.XboxHandle, p.SteamHandle} {
		if h != nil && *h != "" {
			handles = append(handles, *h)
		}
	}
	return handles
}

// SharesPlatformWith reports whether both profiles have a non-empty
// handle on at least one common platform.
func (p *Profile) SharesPlatformWith(other *Profile) bool {
	pairs := [][2]*string{
		{p.DiscordHandle, other.DiscordHandle},
		{p.PSNHandle, other.PSNHandle},
		{p.XboxHandle, other.XboxHandle},
		{p.SteamHandle, other.SteamHandle},
	}
	for _, pair := range pairs {
		if pair[0] != nil && *pair[0] != "" && pair[1] != nil && *pair[1] != "" {
			return true
		}
	}
	return false
}

// SameLocationAs reports an exact city+state match. Profiles missing
// either field never match.
func (p *Profile) SameLocationAs(other *Profile) bool {
	if p.City == nil || p.State == nil || other.City == nil || other.State == nil {
		return false
	}
	return *p.City == *other.City && *p.State == *other.State
}

// ProfileWithDistance is a profile annotated with the great-circle
// distance to the requesting user, when both sides have coordinates.
type ProfileWithDistance struct {
	Profile
	DistanceKm *float64 `json:"distance_km,omitempty"`
}
