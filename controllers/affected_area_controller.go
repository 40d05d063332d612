package controllers

import (
	"alertsystem/models"
	"alertsystem/services"
	"alertsystem/utils"
	"net/http"

	"github.com/gin-gonic/gin"
)

type AffectedAreaController struct {
	areaService *services.AffectedAreaService
}

func NewAffectedAreaController(areaService *services.AffectedAreaService) *AffectedAreaController {
	return &AffectedAreaController{
		areaService: areaService,
	}
}

func (ac *AffectedAreaController) CreateArea(c *gin.Context) {
	var req models.AffectedAreaRequest
	if !bindJSON(c, &req) {
		return
	}

	area, err := ac.areaService.Create(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.SuccessResponse(c, area)
}

func (ac *AffectedAreaController) GetArea(c *gin.Context) {
	area, err := ac.areaService.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.SuccessResponse(c, area)
}

func (ac *AffectedAreaController) GetAllAreas(c *gin.Context) {
	ac.respondList(c, func() ([]*models.AffectedArea, error) {
		return ac.areaService.ListAll(c.Request.Context())
	})
}

func (ac *AffectedAreaController) GetByDisaster(c *gin.Context) {
	ac.respondList(c, func() ([]*models.AffectedArea, error) {
		return ac.areaService.ListByDisaster(c.Request.Context(), c.Param("disasterId"))
	})
}

// GetByLocality serves /state/:state, /district/:district and both combined.
func (ac *AffectedAreaController) GetByLocality(c *gin.Context) {
	ac.respondList(c, func() ([]*models.AffectedArea, error) {
		return ac.areaService.ListByLocality(c.Request.Context(), c.Param("state"), c.Param("district"))
	})
}

func (ac *AffectedAreaController) UpdateArea(c *gin.Context) {
	var req models.AffectedAreaRequest
	if !bindJSON(c, &req) {
		return
	}

	area, err := ac.areaService.Update(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.SuccessResponse(c, area)
}

func (ac *AffectedAreaController) AssignOfficer(c *gin.Context) {
	area, err := ac.areaService.AssignOfficer(c.Request.Context(), c.Param("id"), c.Param("officerId"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.SuccessResponse(c, area)
}

func (ac *AffectedAreaController) UpdateStatus(c *gin.Context) {
	status, ok := requiredQuery(c, "status")
	if !ok {
		return
	}

	area, err := ac.areaService.UpdateStatus(c.Request.Context(), c.Param("id"), status)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.SuccessResponse(c, area)
}

func (ac *AffectedAreaController) DeleteArea(c *gin.Context) {
	if err := ac.areaService.Delete(c.Request.Context(), c.Param("id")); err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.MessageResponse(c, http.StatusOK, "Affected area deleted successfully")
}

func (ac *AffectedAreaController) respondList(c *gin.Context, fetch func() ([]*models.AffectedArea, error)) {
	areas, err := fetch()
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.SuccessResponse(c, areas)
}
