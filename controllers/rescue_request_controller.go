// controllers/rescue_request_controller.go
package controllers

import (
	"alertsystem/models"
	"alertsystem/services"
	"alertsystem/utils"
	"net/http"

	"github.com/gin-gonic/gin"
)

type RescueRequestController struct {
	requestService *services.RescueRequestService
}

func NewRescueRequestController(requestService *services.RescueRequestService) *RescueRequestController {
	return &RescueRequestController{
		requestService: requestService,
	}
}

// CreateRequest files a rescue request for the calling citizen
// @Summary Create rescue request
// @Description District and state default to the citizen's profile when omitted
// @Tags Rescue Requests
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body models.CreateRescueRequest true "Rescue request"
// @Success 201 {object} models.RescueRequest
// @Failure 400 {object} models.MessageResponse
// @Router /api/rescue-requests [post]
func (rc *RescueRequestController) CreateRequest(c *gin.Context) {
	citizen := currentUser(c)
	if citizen == nil {
		return
	}

	var req models.CreateRescueRequest
	if !bindJSON(c, &req) {
		return
	}

	request, err := rc.requestService.Create(c.Request.Context(), citizen, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.CreatedResponse(c, request)
}

// GetByDistrict lists every request filed in a district
// @Summary List district requests
// @Tags Rescue Requests
// @Security BearerAuth
// @Param district path string true "District"
// @Success 200 {array} models.RescueRequest
// @Router /api/rescue-requests/district/{district} [get]
func (rc *RescueRequestController) GetByDistrict(c *gin.Context) {
	requests, err := rc.requestService.ListByDistrict(c.Request.Context(), c.Param("district"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.SuccessResponse(c, requests)
}

// GetPendingByDistrict lists pending requests, most urgent first
// @Summary List pending district requests
// @Tags Rescue Requests
// @Security BearerAuth
// @Param district path string true "District"
// @Success 200 {array} models.RescueRequest
// @Router /api/rescue-requests/district/{district}/pending [get]
func (rc *RescueRequestController) GetPendingByDistrict(c *gin.Context) {
	requests, err := rc.requestService.ListPendingByDistrict(c.Request.Context(), c.Param("district"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.SuccessResponse(c, requests)
}

// GetDistrictStats returns request totals for a district
// @Summary District request statistics
// @Tags Rescue Requests
// @Security BearerAuth
// @Param district path string true "District"
// @Success 200 {object} models.RescueRequestStats
// @Router /api/rescue-requests/district/{district}/stats [get]
func (rc *RescueRequestController) GetDistrictStats(c *gin.Context) {
	stats, err := rc.requestService.StatsByDistrict(c.Request.Context(), c.Param("district"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.SuccessResponse(c, stats)
}

// GetMyRequests lists the caller's own requests
// @Summary List my rescue requests
// @Tags Rescue Requests
// @Security BearerAuth
// @Success 200 {array} models.RescueRequest
// @Router /api/rescue-requests/my-requests [get]
func (rc *RescueRequestController) GetMyRequests(c *gin.Context) {
	citizen := currentUser(c)
	if citizen == nil {
		return
	}

	requests, err := rc.requestService.ListByCitizen(c.Request.Context(), citizen.ID.Hex())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.SuccessResponse(c, requests)
}

// CountAll returns the total number of requests as a bare number
// @Summary Count rescue requests
// @Tags Rescue Requests
// @Security BearerAuth
// @Success 200 {integer} int
// @Router /api/rescue-requests/all/count [get]
func (rc *RescueRequestController) CountAll(c *gin.Context) {
	count, err := rc.requestService.CountAll(c.Request.Context())
	countResponse(c, count, err)
}

// GetRequest returns one request; citizens may only read their own
// @Summary Get rescue request
// @Tags Rescue Requests
// @Security BearerAuth
// @Param id path string true "Request ID"
// @Success 200 {object} models.RescueRequest
// @Failure 403 {object} models.MessageResponse
// @Failure 404 {object} models.MessageResponse
// @Router /api/rescue-requests/{id} [get]
func (rc *RescueRequestController) GetRequest(c *gin.Context) {
	caller := currentUser(c)
	if caller == nil {
		return
	}

	request, err := rc.requestService.Get(c.Request.Context(), c.Param("id"), caller)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.SuccessResponse(c, request)
}

// AssignRequest assigns the calling officer, plus optional teams and volunteers
// @Summary Assign rescue request
// @Tags Rescue Requests
// @Security BearerAuth
// @Accept json
// @Param id path string true "Request ID"
// @Param request body models.AssignRescueRequest false "Teams and volunteers"
// @Success 200 {object} models.RescueRequest
// @Failure 409 {object} models.MessageResponse
// @Router /api/rescue-requests/{id}/assign [put]
func (rc *RescueRequestController) AssignRequest(c *gin.Context) {
	officer := currentUser(c)
	if officer == nil {
		return
	}

	// An empty body assigns the officer alone.
	var req models.AssignRescueRequest
	if c.Request.ContentLength != 0 {
		if !bindJSON(c, &req) {
			return
		}
	}

	request, err := rc.requestService.Assign(c.Request.Context(), c.Param("id"), officer, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.SuccessResponse(c, request)
}

// UpdateStatus moves a request to a new lifecycle status
// @Summary Update rescue request status
// @Tags Rescue Requests
// @Security BearerAuth
// @Accept json
// @Param id path string true "Request ID"
// @Param request body models.StatusUpdateRequest true "New status"
// @Success 200 {object} models.RescueRequest
// @Router /api/rescue-requests/{id}/status [put]
func (rc *RescueRequestController) UpdateStatus(c *gin.Context) {
	var req models.StatusUpdateRequest
	if !bindJSON(c, &req) {
		return
	}

	request, err := rc.requestService.UpdateStatus(c.Request.Context(), c.Param("id"), req.Status)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.SuccessResponse(c, request)
}

// UpdateRequest edits the descriptive fields of a request
// @Summary Update rescue request
// @Tags Rescue Requests
// @Security BearerAuth
// @Accept json
// @Param id path string true "Request ID"
// @Param request body models.UpdateRescueRequest true "Fields to change"
// @Success 200 {object} models.RescueRequest
// @Router /api/rescue-requests/{id} [put]
func (rc *RescueRequestController) UpdateRequest(c *gin.Context) {
	var req models.UpdateRescueRequest
	if !bindJSON(c, &req) {
		return
	}

	request, err := rc.requestService.Update(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.SuccessResponse(c, request)
}

// DeleteRequest removes a request
// @Summary Delete rescue request
// @Tags Rescue Requests
// @Security BearerAuth
// @Param id path string true "Request ID"
// @Success 200 {object} models.MessageResponse
// @Router /api/rescue-requests/{id} [delete]
func (rc *RescueRequestController) DeleteRequest(c *gin.Context) {
	if err := rc.requestService.Delete(c.Request.Context(), c.Param("id")); err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.MessageResponse(c, http.StatusOK, "Request deleted successfully")
}
