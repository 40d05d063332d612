package controllers

import (
	"alertsystem/models"
	"alertsystem/services"
	"alertsystem/utils"

	"github.com/gin-gonic/gin"
)

type RescueOperationController struct {
	operationService *services.RescueOperationService
}

func NewRescueOperationController(operationService *services.RescueOperationService) *RescueOperationController {
	return &RescueOperationController{
		operationService: operationService,
	}
}

// CreateOperation starts an operation for a request with the caller in charge.
func (oc *RescueOperationController) CreateOperation(c *gin.Context) {
	officer := currentUser(c)
	if officer == nil {
		return
	}

	var req models.CreateRescueOperationRequest
	if !bindJSON(c, &req) {
		return
	}

	operation, err := oc.operationService.Create(c.Request.Context(), officer, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.CreatedResponse(c, operation)
}

func (oc *RescueOperationController) GetByDistrict(c *gin.Context) {
	operations, err := oc.operationService.ListByDistrict(c.Request.Context(), c.Param("district"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.SuccessResponse(c, operations)
}

func (oc *RescueOperationController) GetDistrictStats(c *gin.Context) {
	stats, err := oc.operationService.StatsByDistrict(c.Request.Context(), c.Param("district"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.SuccessResponse(c, stats)
}

func (oc *RescueOperationController) GetByRequest(c *gin.Context) {
	operation, err := oc.operationService.GetByRequest(c.Request.Context(), c.Param("requestId"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.SuccessResponse(c, operation)
}

func (oc *RescueOperationController) GetOperation(c *gin.Context) {
	operation, err := oc.operationService.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.SuccessResponse(c, operation)
}

func (oc *RescueOperationController) UpdateOperation(c *gin.Context) {
	var req models.UpdateRescueOperationRequest
	if !bindJSON(c, &req) {
		return
	}

	operation, err := oc.operationService.Update(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.SuccessResponse(c, operation)
}

// UpdateStatus also drives the linked request to its matching status.
func (oc *RescueOperationController) UpdateStatus(c *gin.Context) {
	var req models.StatusUpdateRequest
	if !bindJSON(c, &req) {
		return
	}

	operation, err := oc.operationService.UpdateStatus(c.Request.Context(), c.Param("id"), req.Status)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.SuccessResponse(c, operation)
}
