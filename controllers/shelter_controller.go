package controllers

import (
	"alertsystem/models"
	"alertsystem/services"
	"alertsystem/utils"
	"net/http"

	"github.com/gin-gonic/gin"
)

type ShelterController struct {
	shelterService *services.ShelterService
}

func NewShelterController(shelterService *services.ShelterService) *ShelterController {
	return &ShelterController{
		shelterService: shelterService,
	}
}

// CreateShelter registers a shelter
// @Summary Create shelter
// @Tags Shelters
// @Security BearerAuth
// @Accept json
// @Param request body models.ShelterRequest true "Shelter"
// @Success 200 {object} models.Shelter
// @Router /api/shelters/create [post]
func (sc *ShelterController) CreateShelter(c *gin.Context) {
	var req models.ShelterRequest
	if !bindJSON(c, &req) {
		return
	}

	shelter, err := sc.shelterService.Create(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.SuccessResponse(c, shelter)
}

func (sc *ShelterController) GetShelter(c *gin.Context) {
	shelter, err := sc.shelterService.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.SuccessResponse(c, shelter)
}

func (sc *ShelterController) GetAllShelters(c *gin.Context) {
	sc.respondList(c, func() ([]*models.Shelter, error) {
		return sc.shelterService.ListAll(c.Request.Context())
	})
}

func (sc *ShelterController) GetByState(c *gin.Context) {
	sc.respondList(c, func() ([]*models.Shelter, error) {
		return sc.shelterService.ListByState(c.Request.Context(), c.Param("state"))
	})
}

func (sc *ShelterController) GetByDistrict(c *gin.Context) {
	sc.respondList(c, func() ([]*models.Shelter, error) {
		return sc.shelterService.ListByDistrict(c.Request.Context(), c.Param("district"))
	})
}

func (sc *ShelterController) GetByDisaster(c *gin.Context) {
	sc.respondList(c, func() ([]*models.Shelter, error) {
		return sc.shelterService.ListByDisaster(c.Request.Context(), c.Param("disasterId"))
	})
}

// GetAvailable lists operational shelters with spare capacity
// @Summary Available shelters
// @Tags Shelters
// @Security BearerAuth
// @Param state query string true "State"
// @Param district query string true "District"
// @Success 200 {array} models.Shelter
// @Router /api/shelters/available [get]
func (sc *ShelterController) GetAvailable(c *gin.Context) {
	state, ok := requiredQuery(c, "state")
	if !ok {
		return
	}
	district, ok := requiredQuery(c, "district")
	if !ok {
		return
	}
	sc.respondList(c, func() ([]*models.Shelter, error) {
		return sc.shelterService.ListAvailable(c.Request.Context(), state, district)
	})
}

func (sc *ShelterController) UpdateShelter(c *gin.Context) {
	var req models.ShelterRequest
	if !bindJSON(c, &req) {
		return
	}

	shelter, err := sc.shelterService.Update(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.SuccessResponse(c, shelter)
}

// UpdateOccupancy sets ?occupancy=; values above capacity are rejected with 409
// @Summary Update shelter occupancy
// @Tags Shelters
// @Security BearerAuth
// @Param id path string true "Shelter ID"
// @Param occupancy query int true "Current occupancy"
// @Success 200 {object} models.Shelter
// @Failure 409 {object} models.MessageResponse
// @Router /api/shelters/{id}/occupancy [put]
func (sc *ShelterController) UpdateOccupancy(c *gin.Context) {
	occupancy, ok := intQuery(c, "occupancy")
	if !ok {
		return
	}

	shelter, err := sc.shelterService.UpdateOccupancy(c.Request.Context(), c.Param("id"), occupancy)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.SuccessResponse(c, shelter)
}

func (sc *ShelterController) UpdateStatus(c *gin.Context) {
	status, ok := requiredQuery(c, "status")
	if !ok {
		return
	}

	shelter, err := sc.shelterService.UpdateStatus(c.Request.Context(), c.Param("id"), status)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.SuccessResponse(c, shelter)
}

func (sc *ShelterController) DeleteShelter(c *gin.Context) {
	if err := sc.shelterService.Delete(c.Request.Context(), c.Param("id")); err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.MessageResponse(c, http.StatusOK, "Shelter deleted successfully")
}

func (sc *ShelterController) respondList(c *gin.Context, fetch func() ([]*models.Shelter, error)) {
	shelters, err := fetch()
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.SuccessResponse(c, shelters)
}
