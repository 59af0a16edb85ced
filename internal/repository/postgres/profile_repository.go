package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/squadup-app/squadup-backend/internal/domain"
	"github.com/squadup-app/squadup-backend/internal/repository"
)

const profileColumns = `
	id, username, full_name, bio, birth_date, gender,
	avatar_url, photos, city, state, cep, latitude, longitude,
	discord_handle, psn_handle, xbox_handle, steam_handle,
	game_genres, availability, created_at, updated_at
`

type profileRepository struct {
	db *sqlx.DB
}

func NewProfileRepository(db *sqlx.DB) repository.ProfileRepository {
	return &profileRepository{db: db}
}

func (r *profileRepository) Upsert(ctx context.Context, profile *domain.Profile) error {
	query := `
		INSERT INTO profiles (
			id, username, full_name, bio, birth_date, gender,
			avatar_url, photos, city, state, cep, latitude, longitude,
			discord_handle, psn_handle, xbox_handle, steam_handle,
			game_genres, availability
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19)
		ON CONFLICT (id) DO UPDATE SET
			username = EXCLUDED.username,
			full_name = EXCLUDED.full_name,
			bio = EXCLUDED.bio,
			birth_date = EXCLUDED.birth_date,
			gender = EXCLUDED.gender,
			avatar_url = EXCLUDED.avatar_url,
			photos = EXCLUDED.photos,
			city = EXCLUDED.city,
			state = EXCLUDED.state,
			cep = EXCLUDED.cep,
			latitude = EXCLUDED.latitude,
			longitude = EXCLUDED.longitude,
			discord_handle = EXCLUDED.discord_handle,
			psn_handle = EXCLUDED.psn_handle,
			xbox_handle = EXCLUDED.xbox_handle,
			steam_handle = EXCLUDED.steam_handle,
			game_genres = EXCLUDED.game_genres,
			availability = EXCLUDED.availability,
			updated_at = CURRENT_TIMESTAMP
		RETURNING created_at, updated_at
	`
	err := r.db.QueryRowContext(
		ctx, query,
		profile.ID, profile.Username, profile.FullName, profile.Bio,
		profile.BirthDate, profile.Gender, profile.AvatarURL,
		pq.Array(profile.Photos), profile.City, profile.State, profile.CEP,
		profile.Latitude, profile.Longitude,
		profile.DiscordHandle, profile.PSNHandle, profile.XboxHandle, profile.SteamHandle,
		pq.Array(profile.GameGenres), profile.Availability,
	).Scan(&profile.CreatedAt, &profile.UpdatedAt)
	if isUniqueViolation(err) {
		// The id conflict is handled by the upsert, so a unique
		// violation here can only be the username index.
		return domain.ErrUsernameTaken
	}
	return err
}

func (r *profileRepository) GetByID(ctx context.Context, id string) (*domain.Profile, error) {
	query := `SELECT ` + profileColumns + ` FROM profiles WHERE id = $1`
	return r.getOne(ctx, query, id)
}

func (r *profileRepository) GetByUsername(ctx context.Context, username string) (*domain.Profile, error) {
	query := `SELECT ` + profileColumns + ` FROM profiles WHERE username = $1`
	return r.getOne(ctx, query, username)
}

func (r *profileRepository) ListExcluding(ctx context.Context, excludedIDs []string, limit, offset int) ([]*domain.Profile, error) {
	query := `
		SELECT ` + profileColumns + `
		FROM profiles
		WHERE id <> ALL($1)
		ORDER BY created_at, id
		LIMIT $2 OFFSET $3
	`
	return r.list(ctx, query, pq.Array(excludedIDs), limit, offset)
}

func (r *profileRepository) ListByIDs(ctx context.Context, ids []string) ([]*domain.Profile, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	query := `
		SELECT ` + profileColumns + `
		FROM profiles
		WHERE id = ANY($1)
		ORDER BY created_at, id
	`
	return r.list(ctx, query, pq.Array(ids))
}

func (r *profileRepository) getOne(ctx context.Context, query string, arg interface{}) (*domain.Profile, error) {
	row := r.db.QueryRowContext(ctx, query, arg)
	profile, err := scanProfile(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrProfileNotFound
		}
		return nil, err
	}
	return profile, nil
}

func (r *profileRepository) list(ctx context.Context, query string, args ...interface{}) ([]*domain.Profile, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var profiles []*domain.Profile
	for rows.Next() {
		profile, err := scanProfile(rows)
		if err != nil {
			return nil, err
		}
		profiles = append(profiles, profile)
	}
	return profiles, rows.Err()
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

// scanProfile reads one profile row. text[] columns go through pq.Array,
// availability through its jsonb Scanner.
func scanProfile(row rowScanner) (*domain.Profile, error) {
	var profile domain.Profile
	err := row.Scan(
		&profile.ID, &profile.Username, &profile.FullName, &profile.Bio,
		&profile.BirthDate, &profile.Gender, &profile.AvatarURL,
		pq.Array(&profile.Photos), &profile.City, &profile.State, &profile.CEP,
		&profile.Latitude, &profile.Longitude,
		&profile.DiscordHandle, &profile.PSNHandle, &profile.XboxHandle, &profile.SteamHandle,
		pq.Array(&profile.GameGenres), &profile.Availability,
		&profile.CreatedAt, &profile.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &profile, nil
}
