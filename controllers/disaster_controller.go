package controllers

import (
	"alertsystem/models"
	"alertsystem/services"
	"alertsystem/utils"
	"net/http"

	"github.com/gin-gonic/gin"
)

type DisasterController struct {
	disasterService *services.DisasterService
	reportService   *services.ReportService
}

func NewDisasterController(disasterService *services.DisasterService, reportService *services.ReportService) *DisasterController {
	return &DisasterController{
		disasterService: disasterService,
		reportService:   reportService,
	}
}

func (dc *DisasterController) CreateDisaster(c *gin.Context) {
	admin := currentUser(c)
	if admin == nil {
		return
	}

	var req models.DisasterRequest
	if !bindJSON(c, &req) {
		return
	}

	disaster, err := dc.disasterService.Create(c.Request.Context(), admin, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.CreatedResponse(c, disaster)
}

func (dc *DisasterController) GetActive(c *gin.Context) {
	disasters, err := dc.disasterService.ListActive(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.SuccessResponse(c, disasters)
}

func (dc *DisasterController) GetByRegion(c *gin.Context) {
	disasters, err := dc.disasterService.ListByRegion(c.Request.Context(), c.Param("region"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.SuccessResponse(c, disasters)
}

func (dc *DisasterController) GetDisaster(c *gin.Context) {
	disaster, err := dc.disasterService.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.SuccessResponse(c, disaster)
}

func (dc *DisasterController) UpdateDisaster(c *gin.Context) {
	var req models.DisasterRequest
	if !bindJSON(c, &req) {
		return
	}

	disaster, err := dc.disasterService.Update(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.SuccessResponse(c, disaster)
}

func (dc *DisasterController) DeleteDisaster(c *gin.Context) {
	if err := dc.disasterService.Delete(c.Request.Context(), c.Param("id")); err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.MessageResponse(c, http.StatusOK, "Disaster deleted successfully")
}

// ============== FIELD REPORTS ==============

// SubmitReport takes ?disasterId= and ?details=.
func (dc *DisasterController) SubmitReport(c *gin.Context) {
	officer := currentUser(c)
	if officer == nil {
		return
	}

	disasterID, ok := requiredQuery(c, "disasterId")
	if !ok {
		return
	}

	if _, err := dc.reportService.Submit(c.Request.Context(), officer, disasterID, c.Query("details")); err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.MessageResponse(c, http.StatusOK, "Report submitted successfully")
}

func (dc *DisasterController) GetAllReports(c *gin.Context) {
	reports, err := dc.reportService.ListAll(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.SuccessResponse(c, reports)
}
