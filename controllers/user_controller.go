package controllers

import (
	"alertsystem/models"
	"alertsystem/services"
	"alertsystem/utils"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type UserController struct {
	userService *services.UserService
}

func NewUserController(userService *services.UserService) *UserController {
	return &UserController{
		userService: userService,
	}
}

// ============== ADMIN: OFFICER MANAGEMENT ==============

// CreateOfficer creates an officer account assigned to the calling admin
// @Summary Create officer
// @Description A random password is generated when none is supplied
// @Tags Admin
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body models.CreateOfficerRequest true "Officer data"
// @Success 200 {object} models.MessageResponse
// @Failure 400 {object} models.MessageResponse
// @Router /api/admin/create-officer [post]
func (uc *UserController) CreateOfficer(c *gin.Context) {
	admin := currentUser(c)
	if admin == nil {
		return
	}

	var req models.CreateOfficerRequest
	if !bindJSON(c, &req) {
		return
	}

	officer, message, err := uc.userService.CreateOfficer(c.Request.Context(), admin, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	logrus.WithFields(logrus.Fields{
		"officerId": officer.ID.Hex(),
		"adminId":   admin.ID.Hex(),
	}).Info("Officer created")

	utils.MessageResponse(c, http.StatusOK, message)
}

// GetMyOfficers lists officers assigned to the calling admin
// @Summary List my officers
// @Tags Admin
// @Security BearerAuth
// @Produce json
// @Success 200 {array} models.User
// @Router /api/admin/officers [get]
func (uc *UserController) GetMyOfficers(c *gin.Context) {
	admin := currentUser(c)
	if admin == nil {
		return
	}

	officers, err := uc.userService.ListOfficersByAdmin(c.Request.Context(), admin.ID.Hex())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.SuccessResponse(c, officers)
}

// UpdateOfficer replaces an officer's profile fields
// @Summary Update officer
// @Tags Admin
// @Security BearerAuth
// @Accept json
// @Param id path string true "Officer ID"
// @Param request body models.UpdateOfficerRequest true "Officer data"
// @Success 200 {object} models.User
// @Router /api/admin/officers/{id} [put]
func (uc *UserController) UpdateOfficer(c *gin.Context) {
	var req models.UpdateOfficerRequest
	if !bindJSON(c, &req) {
		return
	}

	officer, err := uc.userService.UpdateOfficer(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.SuccessResponse(c, officer)
}

// UpdateOfficerStatus sets ACTIVE or INACTIVE from ?status=
// @Summary Update officer status
// @Tags Admin
// @Security BearerAuth
// @Param id path string true "Officer ID"
// @Param status query string true "ACTIVE or INACTIVE"
// @Success 200 {object} models.User
// @Router /api/admin/officers/{id}/status [put]
func (uc *UserController) UpdateOfficerStatus(c *gin.Context) {
	status, ok := requiredQuery(c, "status")
	if !ok {
		return
	}

	officer, err := uc.userService.UpdateOfficerStatus(c.Request.Context(), c.Param("id"), status)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.SuccessResponse(c, officer)
}

func (uc *UserController) DeactivateOfficer(c *gin.Context) {
	if err := uc.userService.SetOfficerActive(c.Request.Context(), c.Param("id"), false); err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.MessageResponse(c, http.StatusOK, "Officer deactivated successfully")
}

func (uc *UserController) ActivateOfficer(c *gin.Context) {
	if err := uc.userService.SetOfficerActive(c.Request.Context(), c.Param("id"), true); err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.MessageResponse(c, http.StatusOK, "Officer activated successfully")
}

func (uc *UserController) DeleteOfficer(c *gin.Context) {
	if err := uc.userService.DeleteOfficer(c.Request.Context(), c.Param("id")); err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.MessageResponse(c, http.StatusOK, "Officer deleted successfully")
}

// ============== VOLUNTEERS ==============

func (uc *UserController) GetDistrictVolunteers(c *gin.Context) {
	volunteers, err := uc.userService.ListVolunteersByDistrict(c.Request.Context(), c.Param("district"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.SuccessResponse(c, volunteers)
}

// CountDistrictVolunteers renders {"count": n}.
func (uc *UserController) CountDistrictVolunteers(c *gin.Context) {
	count, err := uc.userService.CountVolunteersByDistrict(c.Request.Context(), c.Param("district"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.SuccessResponse(c, models.CountResponse{Count: count})
}

func (uc *UserController) CountAllVolunteers(c *gin.Context) {
	count, err := uc.userService.CountAllVolunteers(c.Request.Context())
	countResponse(c, count, err)
}

// GetMyVolunteerProfile returns only the volunteer fields of the caller.
func (uc *UserController) GetMyVolunteerProfile(c *gin.Context) {
	caller := currentUser(c)
	if caller == nil {
		return
	}

	user, err := uc.userService.GetUser(c.Request.Context(), caller.ID.Hex())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.SuccessResponse(c, volunteerProfile(user))
}

// UpdateMyVolunteerProfile applies only the fields present in the body.
func (uc *UserController) UpdateMyVolunteerProfile(c *gin.Context) {
	caller := currentUser(c)
	if caller == nil {
		return
	}

	var req models.UpdateVolunteerRequest
	if !bindJSON(c, &req) {
		return
	}

	user, err := uc.userService.UpdateVolunteerProfile(c.Request.Context(), caller.ID.Hex(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	profile := volunteerProfile(user)
	utils.SuccessResponse(c, gin.H{
		"message":               "Volunteer profile updated successfully",
		"isVolunteer":           profile.IsVolunteer,
		"volunteerSkills":       profile.VolunteerSkills,
		"volunteerAvailability": profile.VolunteerAvailability,
	})
}

func volunteerProfile(user *models.User) models.VolunteerProfile {
	return models.VolunteerProfile{
		IsVolunteer:           user.IsVolunteer,
		VolunteerSkills:       user.VolunteerSkills,
		VolunteerAvailability: user.VolunteerAvailability,
	}
}
