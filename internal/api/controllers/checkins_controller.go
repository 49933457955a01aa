package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"kolok/internal/models/request_models"
	"kolok/internal/services"
	"kolok/pkg/middleware"
	"kolok/pkg/utils"
)

type CheckInsController struct {
	checkInService services.CheckInServiceInterface
}

func NewCheckInsController(checkInService services.CheckInServiceInterface) *CheckInsController {
	return &CheckInsController{checkInService: checkInService}
}

// CheckIn godoc
// @Summary Check in to a mission
// @Description Records the signed-in user completing a mission at a location
// @Tags CheckIns
// @Accept json
// @Produce json
// @Param request body request_models.CheckInRequest true "Check-in payload"
// @Success 200 {object} utils.APIResponse
// @Failure 409 {object} utils.APIResponse
// @Router /checkins [post]
func (ci *CheckInsController) CheckIn(c *gin.Context) {
	var req request_models.CheckInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	checkIn, err := ci.checkInService.CheckIn(
		c.Request.Context(),
		middleware.AccountIDFromContext(c),
		req.LocationID,
		req.MissionID,
	)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, checkIn, "Checked in successfully")
}

func (ci *CheckInsController) GetMissions(c *gin.Context) {
	locationId, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid location ID")
		return
	}

	missions, err := ci.checkInService.GetMissions(c.Request.Context(), locationId)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, missions, "Missions fetched successfully")
}

func (ci *CheckInsController) GetHistory(c *gin.Context) {
	page, pageSize, ok := parsePagination(c)
	if !ok {
		return
	}

	history, err := ci.checkInService.GetHistory(c.Request.Context(), middleware.AccountIDFromContext(c), page, pageSize)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, history, "Check-ins fetched successfully")
}
