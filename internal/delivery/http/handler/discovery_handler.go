package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/squadup-app/squadup-backend/internal/domain"
	"github.com/squadup-app/squadup-backend/internal/usecase/discovery"
)

type DiscoveryHandler struct {
	discoveryUseCase *discovery.UseCase
}

func NewDiscoveryHandler(discoveryUseCase *discovery.UseCase) *DiscoveryHandler {
	return &DiscoveryHandler{
		discoveryUseCase: discoveryUseCase,
	}
}

// GetCandidates handles POST /discovery/candidates
// @Summary Get discovery candidates
// @Description Return a filtered page of swipeable profiles; falls back to default filters when raised rating minimums match nobody
// @Tags discovery
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param limit query int false "Page size (default 10)"
// @Param request body domain.FilterSpec true "Filter spec"
// @Success 200 {object} discovery.Result
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 502 {object} ErrorResponse
// @Router /discovery/candidates [post]
func (h *DiscoveryHandler) GetCandidates(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	spec := domain.DefaultFilterSpec()
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&spec); err != nil {
			c.JSON(http.StatusBadRequest, ErrorResponse{
				Error: "invalid filter spec",
			})
			return
		}
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "0"))

	result, err := h.discoveryUseCase.GetCandidates(c.Request.Context(), userID, spec, limit)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}
