package controllers

import (
	"alertsystem/models"
	"alertsystem/services"
	"alertsystem/utils"
	"net/http"

	"github.com/gin-gonic/gin"
)

type ResourceController struct {
	resourceService *services.ResourceService
}

func NewResourceController(resourceService *services.ResourceService) *ResourceController {
	return &ResourceController{
		resourceService: resourceService,
	}
}

func (rc *ResourceController) CreateResource(c *gin.Context) {
	var req models.ResourceRequest
	if !bindJSON(c, &req) {
		return
	}

	resource, err := rc.resourceService.Create(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.SuccessResponse(c, resource)
}

func (rc *ResourceController) GetResource(c *gin.Context) {
	resource, err := rc.resourceService.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.SuccessResponse(c, resource)
}

func (rc *ResourceController) GetAllResources(c *gin.Context) {
	rc.respondList(c, func() ([]*models.Resource, error) {
		return rc.resourceService.ListAll(c.Request.Context())
	})
}

// GetByType accepts the type in any case, e.g. /type/water.
func (rc *ResourceController) GetByType(c *gin.Context) {
	rc.respondList(c, func() ([]*models.Resource, error) {
		return rc.resourceService.ListByType(c.Request.Context(), c.Param("type"))
	})
}

func (rc *ResourceController) GetByDisaster(c *gin.Context) {
	rc.respondList(c, func() ([]*models.Resource, error) {
		return rc.resourceService.ListByDisaster(c.Request.Context(), c.Param("disasterId"))
	})
}

func (rc *ResourceController) GetAvailable(c *gin.Context) {
	rc.respondList(c, func() ([]*models.Resource, error) {
		return rc.resourceService.ListAvailable(c.Request.Context())
	})
}

func (rc *ResourceController) GetByState(c *gin.Context) {
	rc.respondList(c, func() ([]*models.Resource, error) {
		return rc.resourceService.ListByState(c.Request.Context(), c.Param("state"))
	})
}

func (rc *ResourceController) UpdateResource(c *gin.Context) {
	var req models.ResourceRequest
	if !bindJSON(c, &req) {
		return
	}

	resource, err := rc.resourceService.Update(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.SuccessResponse(c, resource)
}

// UpdateQuantity sets ?quantity= and recomputes availability.
func (rc *ResourceController) UpdateQuantity(c *gin.Context) {
	quantity, ok := intQuery(c, "quantity")
	if !ok {
		return
	}

	resource, err := rc.resourceService.UpdateQuantity(c.Request.Context(), c.Param("id"), quantity)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.SuccessResponse(c, resource)
}

func (rc *ResourceController) DeleteResource(c *gin.Context) {
	if err := rc.resourceService.Delete(c.Request.Context(), c.Param("id")); err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.MessageResponse(c, http.StatusOK, "Resource deleted successfully")
}

func (rc *ResourceController) respondList(c *gin.Context, fetch func() ([]*models.Resource, error)) {
	resources, err := fetch()
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.SuccessResponse(c, resources)
}
