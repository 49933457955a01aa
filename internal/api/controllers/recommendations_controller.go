package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"kolok/internal/services"
	"kolok/pkg/middleware"
	"kolok/pkg/utils"
)

type RecommendationsController struct {
	recommendationService services.RecommendationServiceInterface
}

func NewRecommendationsController(recommendationService services.RecommendationServiceInterface) *RecommendationsController {
	return &RecommendationsController{recommendationService: recommendationService}
}

// Recommendations never fail the screen; the service degrades to an empty
// list on backend trouble.
func (rc *RecommendationsController) GetRecommendations(c *gin.Context) {
	sourceLocationId, err := uuid.Parse(c.Param("locationId"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid location ID")
		return
	}

	recommendations := rc.recommendationService.RecommendationsFor(
		c.Request.Context(),
		sourceLocationId,
		middleware.AccountIDFromContext(c),
	)

	utils.RespondSuccess(c, recommendations, "Recommendations fetched successfully")
}
