package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"kolok/internal/models/request_models"
	"kolok/internal/services"
	"kolok/pkg/middleware"
	"kolok/pkg/utils"
)

type CertificatesController struct {
	certificateService services.CertificateServiceInterface
}

func NewCertificatesController(certificateService services.CertificateServiceInterface) *CertificatesController {
	return &CertificatesController{certificateService: certificateService}
}

// RequestCertificate godoc
// @Summary Request a certificate
// @Description Issues a location certificate, or a master certificate when no location is given
// @Tags Certificates
// @Accept json
// @Produce json
// @Param request body request_models.CertificateRequest true "Certificate payload"
// @Success 200 {object} utils.APIResponse
// @Failure 422 {object} utils.APIResponse
// @Router /certificates [post]
func (cc *CertificatesController) RequestCertificate(c *gin.Context) {
	var req request_models.CertificateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	certificate, err := cc.certificateService.RequestCertificate(
		c.Request.Context(),
		middleware.AccountIDFromContext(c),
		req.LocationID,
		req.PointsEarned,
	)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, certificate, "Certificate issued successfully")
}

func (cc *CertificatesController) ListCertificates(c *gin.Context) {
	page, pageSize, ok := parsePagination(c)
	if !ok {
		return
	}

	certificates, err := cc.certificateService.ListCertificates(c.Request.Context(), middleware.AccountIDFromContext(c), page, pageSize)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, certificates, "Certificates fetched successfully")
}
