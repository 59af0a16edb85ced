package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/squadup-app/squadup-backend/internal/usecase/swipe"
)

type SwipeHandler struct {
	swipeUseCase *swipe.UseCase
}

func NewSwipeHandler(swipeUseCase *swipe.UseCase) *SwipeHandler {
	return &SwipeHandler{
		swipeUseCase: swipeUseCase,
	}
}

// CreateSwipeRequest represents a swipe decision
type CreateSwipeRequest struct {
	SwipedUserID string `json:"swiped_user_id" binding:"required"`
	IsLike       bool   `json:"is_like"`
}

// CreateSwipe handles POST /swipe
// @Summary Record a swipe
// @Description Record a like or pass; reports a match when the like is mutual
// @Tags swipe
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body CreateSwipeRequest true "Swipe decision"
// @Success 201 {object} swipe.Result
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /swipe [post]
func (h *SwipeHandler) CreateSwipe(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req CreateSwipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: "invalid request body",
		})
		return
	}

	result, err := h.swipeUseCase.RecordSwipe(c.Request.Context(), userID, req.SwipedUserID, req.IsLike)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, result)
}

// GetLikesReceived handles GET /swipe/likes-received
// @Summary Get likes received
// @Description List users who liked me and have not been swiped back, newest first
// @Tags swipe
// @Security BearerAuth
// @Produce json
// @Param limit query int false "Page size (default 20)"
// @Param offset query int false "Page offset"
// @Success 200 {array} swipe.LikeReceived
// @Failure 401 {object} ErrorResponse
// @Failure 502 {object} ErrorResponse
// @Router /swipe/likes-received [get]
func (h *SwipeHandler) GetLikesReceived(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "0"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	likes, err := h.swipeUseCase.ListLikesReceived(c.Request.Context(), userID, limit, offset)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, likes)
}

// GetMatches handles GET /matches
// @Summary Get matches
// @Description List mutual matches with distance annotations
// @Tags swipe
// @Security BearerAuth
// @Produce json
// @Success 200 {array} domain.ProfileWithDistance
// @Failure 401 {object} ErrorResponse
// @Failure 502 {object} ErrorResponse
// @Router /matches [get]
func (h *SwipeHandler) GetMatches(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	matches, err := h.swipeUseCase.ListMatches(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, matches)
}
