// controllers/auth_controller.go
package controllers

import (
	"alertsystem/models"
	"alertsystem/services"
	"alertsystem/utils"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type AuthController struct {
	authService *services.AuthService
}

func NewAuthController(authService *services.AuthService) *AuthController {
	return &AuthController{
		authService: authService,
	}
}

// ============== PUBLIC AUTHENTICATION ENDPOINTS ==============

// Signin handles user authentication
// @Summary Sign in
// @Description Authenticate with email and password and receive a bearer token
// @Tags Authentication
// @Accept json
// @Produce json
// @Param request body models.LoginRequest true "Login credentials"
// @Success 200 {object} models.JWTResponse
// @Failure 401 {object} models.MessageResponse
// @Router /api/auth/signin [post]
func (ac *AuthController) Signin(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid request body")
		return
	}

	response, err := ac.authService.Signin(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.SuccessResponse(c, response)
}

// Signup registers a citizen account
// @Summary Register a citizen
// @Description Any role in the body is ignored; accounts are always citizens
// @Tags Authentication
// @Accept json
// @Produce json
// @Param request body models.SignupRequest true "Registration data"
// @Success 200 {object} models.MessageResponse
// @Failure 400 {object} models.MessageResponse
// @Router /api/auth/signup [post]
func (ac *AuthController) Signup(c *gin.Context) {
	var req models.SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid request body")
		return
	}

	if _, err := ac.authService.Signup(c.Request.Context(), req); err != nil {
		logrus.WithField("email", utils.MaskEmail(req.Email)).Debugf("Signup rejected: %v", err)
		utils.HandleServiceError(c, err)
		return
	}

	utils.MessageResponse(c, http.StatusOK, "User registered successfully!")
}

// ============== PROTECTED ENDPOINTS ==============

// Signout revokes the token used for this request
// @Summary Sign out
// @Tags Authentication
// @Security BearerAuth
// @Success 200 {object} models.MessageResponse
// @Router /api/auth/signout [post]
func (ac *AuthController) Signout(c *gin.Context) {
	if err := ac.authService.Signout(c.Request.Context(), utils.GetClaims(c)); err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.MessageResponse(c, http.StatusOK, "Signed out successfully")
}

// Me returns the authenticated user
func (ac *AuthController) Me(c *gin.Context) {
	user := utils.GetCurrentUser(c)
	if user == nil {
		utils.UnauthorizedResponse(c, "User not authenticated")
		return
	}
	utils.SuccessResponse(c, user)
}
