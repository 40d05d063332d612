// controllers/emergency_team_controller.go
package controllers

import (
	"alertsystem/models"
	"alertsystem/services"
	"alertsystem/utils"
	"net/http"

	"github.com/gin-gonic/gin"
)

type EmergencyTeamController struct {
	teamService *services.EmergencyTeamService
}

func NewEmergencyTeamController(teamService *services.EmergencyTeamService) *EmergencyTeamController {
	return &EmergencyTeamController{
		teamService: teamService,
	}
}

// CreateTeam registers a response team
// @Summary Create emergency team
// @Tags Emergency Teams
// @Security BearerAuth
// @Accept json
// @Param request body models.EmergencyTeamRequest true "Team"
// @Success 201 {object} models.EmergencyTeam
// @Router /api/emergency-teams [post]
func (tc *EmergencyTeamController) CreateTeam(c *gin.Context) {
	var req models.EmergencyTeamRequest
	if !bindJSON(c, &req) {
		return
	}

	team, err := tc.teamService.Create(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.CreatedResponse(c, team)
}

// GetAllTeams lists every team
// @Summary List emergency teams
// @Tags Emergency Teams
// @Security BearerAuth
// @Success 200 {array} models.EmergencyTeam
// @Router /api/emergency-teams [get]
func (tc *EmergencyTeamController) GetAllTeams(c *gin.Context) {
	tc.respondList(c, func() ([]*models.EmergencyTeam, error) {
		return tc.teamService.ListAll(c.Request.Context())
	})
}

// GetTeam returns one team
// @Summary Get emergency team
// @Tags Emergency Teams
// @Security BearerAuth
// @Param id path string true "Team ID"
// @Success 200 {object} models.EmergencyTeam
// @Failure 404 {object} models.MessageResponse
// @Router /api/emergency-teams/{id} [get]
func (tc *EmergencyTeamController) GetTeam(c *gin.Context) {
	team, err := tc.teamService.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.SuccessResponse(c, team)
}

func (tc *EmergencyTeamController) GetByDistrict(c *gin.Context) {
	tc.respondList(c, func() ([]*models.EmergencyTeam, error) {
		return tc.teamService.ListByDistrict(c.Request.Context(), c.Param("district"))
	})
}

func (tc *EmergencyTeamController) GetAvailableByDistrict(c *gin.Context) {
	tc.respondList(c, func() ([]*models.EmergencyTeam, error) {
		return tc.teamService.ListAvailableByDistrict(c.Request.Context(), c.Param("district"))
	})
}

func (tc *EmergencyTeamController) GetByDistrictAndType(c *gin.Context) {
	tc.respondList(c, func() ([]*models.EmergencyTeam, error) {
		return tc.teamService.ListByDistrictAndType(c.Request.Context(), c.Param("district"), c.Param("teamType"))
	})
}

// GetDistrictStats returns team totals for a district
// @Summary District team statistics
// @Tags Emergency Teams
// @Security BearerAuth
// @Param district path string true "District"
// @Success 200 {object} models.TeamStats
// @Router /api/emergency-teams/district/{district}/stats [get]
func (tc *EmergencyTeamController) GetDistrictStats(c *gin.Context) {
	stats, err := tc.teamService.StatsByDistrict(c.Request.Context(), c.Param("district"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.SuccessResponse(c, stats)
}

func (tc *EmergencyTeamController) CountAll(c *gin.Context) {
	count, err := tc.teamService.CountAll(c.Request.Context())
	countResponse(c, count, err)
}

func (tc *EmergencyTeamController) UpdateTeam(c *gin.Context) {
	var req models.EmergencyTeamRequest
	if !bindJSON(c, &req) {
		return
	}

	team, err := tc.teamService.Update(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.SuccessResponse(c, team)
}

// UpdateStatus reads {"status": "..."} from the body.
func (tc *EmergencyTeamController) UpdateStatus(c *gin.Context) {
	var req models.StatusUpdateRequest
	if !bindJSON(c, &req) {
		return
	}

	team, err := tc.teamService.UpdateStatus(c.Request.Context(), c.Param("id"), req.Status)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.SuccessResponse(c, team)
}

func (tc *EmergencyTeamController) DeleteTeam(c *gin.Context) {
	if err := tc.teamService.Delete(c.Request.Context(), c.Param("id")); err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.MessageResponse(c, http.StatusOK, "Team deleted successfully")
}

func (tc *EmergencyTeamController) respondList(c *gin.Context, fetch func() ([]*models.EmergencyTeam, error)) {
	teams, err := fetch()
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.SuccessResponse(c, teams)
}
