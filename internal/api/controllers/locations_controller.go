package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"kolok/internal/services"
	"kolok/pkg/middleware"
	"kolok/pkg/utils"
)

type LocationsController struct {
	locationService services.LocationServiceInterface
}

func NewLocationsController(locationService services.LocationServiceInterface) *LocationsController {
	return &LocationsController{
		locationService: locationService,
	}
}

func (l *LocationsController) GetLocationById(c *gin.Context) {
	locationId := c.Param("id")
	if locationId == "" {
		utils.RespondError(c, http.StatusBadRequest, "Location ID is required")
		return
	}

	location, err := l.locationService.GetLocationByID(locationId, c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, location, "Location fetched successfully")
}

func (l *LocationsController) ListLocations(c *gin.Context) {
	featuredOnly := c.DefaultQuery("featured", "false") == "true"

	page, pageSize, ok := parsePagination(c)
	if !ok {
		return
	}

	locations, err := l.locationService.ListLocations(featuredOnly, page, pageSize, c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, locations, "Locations fetched successfully")
}

// GetProgressOverview godoc
// @Summary Progress overview
// @Description Per-location completion plus the master aggregate for the signed-in user
// @Tags Progress
// @Success 200 {object} utils.APIResponse
// @Router /progress [get]
func (l *LocationsController) GetProgressOverview(c *gin.Context) {
	overview, err := l.locationService.GetProgressOverview(c.Request.Context(), middleware.AccountIDFromContext(c))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, overview, "Progress fetched successfully")
}

func parsePagination(c *gin.Context) (page, pageSize int, ok bool) {
	pageStr := c.DefaultQuery("page", "1")
	pageSizeStr := c.DefaultQuery("pageSize", "10")

	page, err := strconv.Atoi(pageStr)
	if err != nil || page < 1 {
		utils.RespondError(c, http.StatusBadRequest, "Invalid page number")
		return 0, 0, false
	}

	pageSize, err = strconv.Atoi(pageSizeStr)
	if err != nil || pageSize < 1 || pageSize > 100 {
		utils.RespondError(c, http.StatusBadRequest, "Invalid page size (must be 1-100)")
		return 0, 0, false
	}
	return page, pageSize, true
}
