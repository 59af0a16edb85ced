package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/squadup-app/squadup-backend/internal/usecase/rating"
)

type RatingHandler struct {
	ratingUseCase *rating.UseCase
}

func NewRatingHandler(ratingUseCase *rating.UseCase) *RatingHandler {
	return &RatingHandler{
		ratingUseCase: ratingUseCase,
	}
}

// SubmitRating handles POST /ratings
// @Summary Rate a user
// @Description Submit a one-time four-dimension rating (respect, communication, humor, collaboration), each 1-5
// @Tags rating
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body rating.SubmitRequest true "Rating"
// @Success 201 {object} domain.Rating
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /ratings [post]
func (h *RatingHandler) SubmitRating(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req rating.SubmitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: "invalid request body",
		})
		return
	}

	result, err := h.ratingUseCase.Submit(c.Request.Context(), userID, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, result)
}

// GetRatingAverages handles GET /ratings/:user_id
// @Summary Get rating averages
// @Description Per-dimension means for a user; empty object fields when unrated
// @Tags rating
// @Security BearerAuth
// @Produce json
// @Param user_id path string true "User ID"
// @Success 200 {object} domain.RatingAverages
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /ratings/{user_id} [get]
func (h *RatingHandler) GetRatingAverages(c *gin.Context) {
	if _, ok := currentUserID(c); !ok {
		return
	}

	averages, err := h.ratingUseCase.AveragesFor(c.Request.Context(), c.Param("user_id"))
	if err != nil {
		respondError(c, err)
		return
	}
	if averages == nil {
		c.JSON(http.StatusOK, gin.H{"rated": false})
		return
	}

	c.JSON(http.StatusOK, averages)
}
