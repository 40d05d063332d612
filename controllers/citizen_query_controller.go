package controllers

import (
	"alertsystem/models"
	"alertsystem/services"
	"alertsystem/utils"
	"net/http"

	"github.com/gin-gonic/gin"
)

type CitizenQueryController struct {
	queryService *services.CitizenQueryService
}

func NewCitizenQueryController(queryService *services.CitizenQueryService) *CitizenQueryController {
	return &CitizenQueryController{
		queryService: queryService,
	}
}

func (qc *CitizenQueryController) CreateQuery(c *gin.Context) {
	citizen := currentUser(c)
	if citizen == nil {
		return
	}

	var req models.CreateQueryRequest
	if !bindJSON(c, &req) {
		return
	}

	query, err := qc.queryService.Create(c.Request.Context(), citizen, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.SuccessResponse(c, query)
}

// GetQuery enforces ownership for citizen callers.
func (qc *CitizenQueryController) GetQuery(c *gin.Context) {
	caller := currentUser(c)
	if caller == nil {
		return
	}

	query, err := qc.queryService.Get(c.Request.Context(), c.Param("id"), caller)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.SuccessResponse(c, query)
}

func (qc *CitizenQueryController) GetMyQueries(c *gin.Context) {
	citizen := currentUser(c)
	if citizen == nil {
		return
	}
	qc.respondList(c, func() ([]*models.CitizenQuery, error) {
		return qc.queryService.ListByCitizen(c.Request.Context(), citizen.ID.Hex())
	})
}

func (qc *CitizenQueryController) GetOfficerQueries(c *gin.Context) {
	qc.respondList(c, func() ([]*models.CitizenQuery, error) {
		return qc.queryService.ListByOfficer(c.Request.Context(), c.Param("officerId"))
	})
}

func (qc *CitizenQueryController) GetDisasterQueries(c *gin.Context) {
	qc.respondList(c, func() ([]*models.CitizenQuery, error) {
		return qc.queryService.ListByDisaster(c.Request.Context(), c.Param("disasterId"))
	})
}

func (qc *CitizenQueryController) GetOpenQueries(c *gin.Context) {
	qc.respondList(c, func() ([]*models.CitizenQuery, error) {
		return qc.queryService.ListOpen(c.Request.Context())
	})
}

func (qc *CitizenQueryController) GetAllQueries(c *gin.Context) {
	qc.respondList(c, func() ([]*models.CitizenQuery, error) {
		return qc.queryService.ListAll(c.Request.Context())
	})
}

func (qc *CitizenQueryController) AssignQuery(c *gin.Context) {
	query, err := qc.queryService.Assign(c.Request.Context(), c.Param("id"), c.Param("officerId"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.SuccessResponse(c, query)
}

// RespondToQuery takes the answer from ?response= and resolves the query.
func (qc *CitizenQueryController) RespondToQuery(c *gin.Context) {
	response, ok := requiredQuery(c, "response")
	if !ok {
		return
	}

	query, err := qc.queryService.Respond(c.Request.Context(), c.Param("id"), response)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.SuccessResponse(c, query)
}

func (qc *CitizenQueryController) DeleteQuery(c *gin.Context) {
	if err := qc.queryService.Delete(c.Request.Context(), c.Param("id")); err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.MessageResponse(c, http.StatusOK, "Query deleted successfully")
}

func (qc *CitizenQueryController) respondList(c *gin.Context, fetch func() ([]*models.CitizenQuery, error)) {
	queries, err := fetch()
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.SuccessResponse(c, queries)
}
