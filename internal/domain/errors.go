package domain

import "errors"

var (
	ErrInvalidInput     = errors.New("invalid input")
	ErrNotAuthenticated = errors.New("not authenticated")

	ErrUserNotFound       = errors.New("user not found")
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")

	ErrProfileNotFound      = errors.New("profile not found")
	ErrProfileAlreadyExists = errors.New("profile already exists")
	ErrUsernameTaken        = errors.New("username already taken")

	ErrCannotSwipeSelf    = errors.New("cannot swipe yourself")
	ErrSwipeAlreadyExists = errors.New("swipe already exists")
	ErrSwipeNotFound      = errors.New("swipe not found")

	ErrCannotRateSelf      = errors.New("cannot rate yourself")
	ErrRatingAlreadyExists = errors.New("already rated this user")

	ErrNotMatched = errors.New("users are not matched")

	// ErrFetchFailed marks store-level read failures so callers can tell
	// "query failed" apart from "zero results".
	ErrFetchFailed = errors.New("fetch failed")
)
