package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/squadup-app/squadup-backend/internal/domain"
)

// ErrorResponse represents error response
type ErrorResponse struct {
	Error string `json:"error"`
}

// respondError maps domain errors to HTTP status codes. Anything not in
// the taxonomy is logged and reported as a 500 with a generic message.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrNotAuthenticated):
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
	case errors.Is(err, domain.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "invalid credentials"})
	case errors.Is(err, domain.ErrUserNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "user not found"})
	case errors.Is(err, domain.ErrProfileNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "profile not found"})
	case errors.Is(err, domain.ErrEmailTaken):
		c.JSON(http.StatusConflict, ErrorResponse{Error: "email already registered"})
	case errors.Is(err, domain.ErrUsernameTaken):
		c.JSON(http.StatusConflict, ErrorResponse{Error: "username already taken"})
	case errors.Is(err, domain.ErrProfileAlreadyExists):
		c.JSON(http.StatusConflict, ErrorResponse{Error: "profile already exists"})
	case errors.Is(err, domain.ErrSwipeAlreadyExists):
		c.JSON(http.StatusConflict, ErrorResponse{Error: "already swiped on this user"})
	case errors.Is(err, domain.ErrRatingAlreadyExists):
		c.JSON(http.StatusConflict, ErrorResponse{Error: "already rated this user"})
	case errors.Is(err, domain.ErrCannotSwipeSelf):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "cannot swipe on yourself"})
	case errors.Is(err, domain.ErrCannotRateSelf):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "cannot rate yourself"})
	case errors.Is(err, domain.ErrNotMatched):
		c.JSON(http.StatusForbidden, ErrorResponse{Error: "users are not matched"})
	case errors.Is(err, domain.ErrInvalidInput):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid input"})
	case errors.Is(err, domain.ErrFetchFailed):
		slog.Error("upstream fetch failed", "path", c.FullPath(), "error", err)
		c.JSON(http.StatusBadGateway, ErrorResponse{Error: "failed to fetch data"})
	default:
		slog.Error("request failed", "path", c.FullPath(), "error", err)
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
	}
}

// currentUserID pulls the authenticated user id set by the auth
// middleware. The empty return aborts the request.
func currentUserID(c *gin.Context) (string, bool) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
		return "", false
	}
	id, ok := userID.(string)
	if !ok || id == "" {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
		return "", false
	}
	return id, true
}
