// Package memory provides in-memory implementations of the repository
// interfaces for tests. Semantics mirror the postgres package: ordered
// inserts, uniqueness violations mapped to domain errors, stable
// creation order on list operations.
package memory

import (
	"context"
	"sync"
	"time"

	"github.com/squadup-app/squadup-backend/internal/domain"
	"github.com/squadup-app/squadup-backend/internal/repository"
)

type Store struct {
	mu sync.Mutex

	users     []*domain.User
	profiles  []*domain.Profile
	swipes    []*domain.Swipe
	ratings   []*domain.Rating
	favorites map[string][]*domain.FavoriteGame
	messages  []*domain.Message
	nextID    int64

	// FailProfileList, when set, is returned by ListExcluding to
	// simulate a store outage.
	FailProfileList error
	// FailProfileGet maps profile ids to errors returned by GetByID,
	// to simulate a partial outage mid-iteration.
	FailProfileGet map[string]error
}

func NewStore() *Store {
	return &Store{
		favorites:      make(map[string][]*domain.FavoriteGame),
		FailProfileGet: make(map[string]error),
	}
}

func (s *Store) Users() repository.UserRepository         { return userRepo{s} }
func (s *Store) Profiles() repository.ProfileRepository   { return profileRepo{s} }
func (s *Store) Swipes() repository.SwipeRepository       { return swipeRepo{s} }
func (s *Store) Ratings() repository.RatingRepository     { return ratingRepo{s} }
func (s *Store) Games() repository.FavoriteGameRepository { return gameRepo{s} }
func (s *Store) Messages() repository.MessageRepository   { return messageRepo{s} }

func (s *Store) id() int64 {
	s.nextID++
	return s.nextID
}

// --- users ---

type userRepo struct{ s *Store }

func (r userRepo) Create(_ context.Context, user *domain.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, u := range r.s.users {
		if u.Email == user.Email {
			return domain.ErrEmailTaken
		}
	}
	user.CreatedAt = time.Now()
	r.s.users = append(r.s.users, user)
	return nil
}

func (r userRepo) GetByID(_ context.Context, id string) (*domain.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, u := range r.s.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r userRepo) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, u := range r.s.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

// --- profiles ---

type profileRepo struct{ s *Store }

func (r profileRepo) Upsert(_ context.Context, profile *domain.Profile) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, p := range r.s.profiles {
		if p.ID != profile.ID && p.Username == profile.Username {
			return domain.ErrUsernameTaken
		}
	}
	now := time.Now()
	for i, p := range r.s.profiles {
		if p.ID == profile.ID {
			profile.CreatedAt = p.CreatedAt
			profile.UpdatedAt = now
			r.s.profiles[i] = profile
			return nil
		}
	}
	profile.CreatedAt = now
	profile.UpdatedAt = now
	r.s.profiles = append(r.s.profiles, profile)
	return nil
}

func (r profileRepo) GetByID(_ context.Context, id string) (*domain.Profile, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.FailProfileGet[id]; err != nil {
		return nil, err
	}
	for _, p := range r.s.profiles {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, domain.ErrProfileNotFound
}

func (r profileRepo) GetByUsername(_ context.Context, username string) (*domain.Profile, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, p := range r.s.profiles {
		if p.Username == username {
			return p, nil
		}
	}
	return nil, domain.ErrProfileNotFound
}

func (r profileRepo) ListExcluding(_ context.Context, excludedIDs []string, limit, offset int) ([]*domain.Profile, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.FailProfileList != nil {
		return nil, r.s.FailProfileList
	}
	excluded := make(map[string]bool, len(excludedIDs))
	for _, id := range excludedIDs {
		excluded[id] = true
	}
	var out []*domain.Profile
	skipped := 0
	for _, p := range r.s.profiles {
		if excluded[p.ID] {
			continue
		}
		if skipped < offset {
			skipped++
			continue
		}
		out = append(out, p)
		if len(out) == limit {
			break
		}
	}
	return out, nil
}

func (r profileRepo) ListByIDs(_ context.Context, ids []string) ([]*domain.Profile, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	wanted := make(map[string]bool, len(ids))
	for _, id := range ids {
		wanted[id] = true
	}
	var out []*domain.Profile
	for _, p := range r.s.profiles {
		if wanted[p.ID] {
			out = append(out, p)
		}
	}
	return out, nil
}

// --- swipes ---

type swipeRepo struct{ s *Store }

func (r swipeRepo) Create(_ context.Context, swipe *domain.Swipe) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, sw := range r.s.swipes {
		if sw.SwiperID == swipe.SwiperID && sw.SwipedID == swipe.SwipedID {
			return domain.ErrSwipeAlreadyExists
		}
	}
	swipe.ID = r.s.id()
	swipe.CreatedAt = time.Now()
	r.s.swipes = append(r.s.swipes, swipe)
	return nil
}

func (r swipeRepo) FindLike(_ context.Context, swiperID, swipedID string) (*domain.Swipe, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, sw := range r.s.swipes {
		if sw.SwiperID == swiperID && sw.SwipedID == swipedID && sw.IsLike {
			return sw, nil
		}
	}
	return nil, domain.ErrSwipeNotFound
}

func (r swipeRepo) ListSwipedIDs(_ context.Context, swiperID string) ([]string, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var ids []string
	for _, sw := range r.s.swipes {
		if sw.SwiperID == swiperID {
			ids = append(ids, sw.SwipedID)
		}
	}
	return ids, nil
}

func (r swipeRepo) ListLikedIDs(_ context.Context, swiperID string) ([]string, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var ids []string
	for _, sw := range r.s.swipes {
		if sw.SwiperID == swiperID && sw.IsLike {
			ids = append(ids, sw.SwipedID)
		}
	}
	return ids, nil
}

func (r swipeRepo) ListMutualLikerIDs(_ context.Context, userID string, candidateIDs []string) ([]string, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	candidates := make(map[string]bool, len(candidateIDs))
	for _, id := range candidateIDs {
		candidates[id] = true
	}
	var ids []string
	for _, sw := range r.s.swipes {
		if sw.SwipedID == userID && sw.IsLike && candidates[sw.SwiperID] {
			ids = append(ids, sw.SwiperID)
		}
	}
	return ids, nil
}

func (r swipeRepo) ListLikesReceived(_ context.Context, userID string, limit, offset int) ([]*domain.Swipe, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	swipedByMe := make(map[string]bool)
	for _, sw := range r.s.swipes {
		if sw.SwiperID == userID {
			swipedByMe[sw.SwipedID] = true
		}
	}
	var likes []*domain.Swipe
	for i := len(r.s.swipes) - 1; i >= 0; i-- {
		sw := r.s.swipes[i]
		if sw.SwipedID == userID && sw.IsLike && !swipedByMe[sw.SwiperID] {
			likes = append(likes, sw)
		}
	}
	if offset >= len(likes) {
		return nil, nil
	}
	likes = likes[offset:]
	if limit > 0 && len(likes) > limit {
		likes = likes[:limit]
	}
	return likes, nil
}

// --- ratings ---

type ratingRepo struct{ s *Store }

func (r ratingRepo) Create(_ context.Context, rating *domain.Rating) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, rt := range r.s.ratings {
		if rt.RaterID == rating.RaterID && rt.RatedID == rating.RatedID {
			return domain.ErrRatingAlreadyExists
		}
	}
	rating.ID = r.s.id()
	rating.CreatedAt = time.Now()
	r.s.ratings = append(r.s.ratings, rating)
	return nil
}

func (r ratingRepo) GetAverages(_ context.Context, ratedID string) (*domain.RatingAverages, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	averages := domain.RatingAverages{RatedID: ratedID}
	for _, rt := range r.s.ratings {
		if rt.RatedID != ratedID {
			continue
		}
		averages.AvgRespect += float64(rt.Respect)
		averages.AvgCommunication += float64(rt.Communication)
		averages.AvgHumor += float64(rt.Humor)
		averages.AvgCollaboration += float64(rt.Collaboration)
		averages.RatingCount++
	}
	if averages.RatingCount == 0 {
		return nil, nil
	}
	n := float64(averages.RatingCount)
	averages.AvgRespect /= n
	averages.AvgCommunication /= n
	averages.AvgHumor /= n
	averages.AvgCollaboration /= n
	return &averages, nil
}

// --- favorite games ---

type gameRepo struct{ s *Store }

func (r gameRepo) ListByUser(_ context.Context, userID string) ([]*domain.FavoriteGame, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return r.s.favorites[userID], nil
}

func (r gameRepo) ListGameIDs(_ context.Context, userID string) ([]string, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var ids []string
	for _, g := range r.s.favorites[userID] {
		ids = append(ids, g.GameID)
	}
	return ids, nil
}

func (r gameRepo) Sync(_ context.Context, userID string, games []*domain.FavoriteGame) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	keep := make(map[string]bool, len(games))
	for _, g := range games {
		keep[g.GameID] = true
	}
	existing := make(map[string]bool)
	var next []*domain.FavoriteGame
	for _, g := range r.s.favorites[userID] {
		if keep[g.GameID] {
			next = append(next, g)
			existing[g.GameID] = true
		}
	}
	for _, g := range games {
		if !existing[g.GameID] {
			g.ID = r.s.id()
			g.UserID = userID
			g.CreatedAt = time.Now()
			next = append(next, g)
		}
	}
	r.s.favorites[userID] = next
	return nil
}

// --- messages ---

type messageRepo struct{ s *Store }

func (r messageRepo) Create(_ context.Context, message *domain.Message) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	message.ID = r.s.id()
	message.CreatedAt = time.Now()
	r.s.messages = append(r.s.messages, message)
	return nil
}

func (r messageRepo) ListConversation(_ context.Context, userID, otherID string, limit int) ([]*domain.Message, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []*domain.Message
	for _, m := range r.s.messages {
		between := (m.SenderID == userID && m.ReceiverID == otherID) ||
			(m.SenderID == otherID && m.ReceiverID == userID)
		if between {
			out = append(out, m)
			if limit > 0 && len(out) == limit {
				break
			}
		}
	}
	return out, nil
}
