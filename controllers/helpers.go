package controllers

import (
	"alertsystem/models"
	"alertsystem/utils"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
)

// currentUser writes a 401 and returns nil when the context carries no user.
func currentUser(c *gin.Context) *models.User {
	user := utils.GetCurrentUser(c)
	if user == nil {
		utils.UnauthorizedResponse(c, "User not authenticated")
	}
	return user
}

// requiredQuery writes a 400 when name is absent or blank.
func requiredQuery(c *gin.Context, name string) (string, bool) {
	value := strings.TrimSpace(c.Query(name))
	if value == "" {
		utils.BadRequestResponse(c, name+" is required")
		return "", false
	}
	return value, true
}

// intQuery parses a required integer query parameter.
func intQuery(c *gin.Context, name string) (int, bool) {
	raw, ok := requiredQuery(c, name)
	if !ok {
		return 0, false
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		utils.BadRequestResponse(c, name+" must be a number")
		return 0, false
	}
	return n, true
}

// bindJSON writes a 400 on malformed bodies.
func bindJSON(c *gin.Context, dst interface{}) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		utils.BadRequestResponse(c, "Invalid request body")
		return false
	}
	return true
}

// countResponse renders a bare number.
func countResponse(c *gin.Context, count int64, err error) {
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.SuccessResponse(c, count)
}
