package utils

import (
	"alertsystem/interfaces"
	"alertsystem/models"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// Success responses carry the entity itself.
func SuccessResponse(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, data)
}

func CreatedResponse(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, data)
}

func MessageResponse(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, models.MessageResponse{Message: message})
}

// ErrorResponse renders the uniform error body {"message":"Error: <detail>"}.
func ErrorResponse(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, models.MessageResponse{Message: "Error: " + message})
}

func UnauthorizedResponse(c *gin.Context, message string) {
	if message == "" {
		message = "Unauthorized"
	}
	ErrorResponse(c, http.StatusUnauthorized, message)
}

func ForbiddenResponse(c *gin.Context, message string) {
	if message == "" {
		message = "Access denied"
	}
	ErrorResponse(c, http.StatusForbidden, message)
}

func BadRequestResponse(c *gin.Context, message string) {
	ErrorResponse(c, http.StatusBadRequest, message)
}

func NotFoundResponse(c *gin.Context, resource string) {
	ErrorResponse(c, http.StatusNotFound, resource+" not found")
}

func InternalServerErrorResponse(c *gin.Context, message string) {
	if message == "" {
		message = "Internal server error"
	}
	ErrorResponse(c, http.StatusInternalServerError, message)
}

func TooManyRequestsResponse(c *gin.Context, message string) {
	if message == "" {
		message = "Too many requests"
	}
	ErrorResponse(c, http.StatusTooManyRequests, message)
}

// HandleServiceError maps any error returned by a service to an HTTP response.
func HandleServiceError(c *gin.Context, err error) {
	if serviceErr, ok := GetServiceError(err); ok {
		status := serviceErr.StatusCode
		if status == 0 {
			status = http.StatusInternalServerError
		}
		if status >= http.StatusInternalServerError {
			logrus.WithError(err).WithField("path", c.Request.URL.Path).Error("Request failed")
		}
		ErrorResponse(c, status, serviceErr.Message)
		return
	}

	switch {
	case errors.Is(err, interfaces.ErrNotFound):
		ErrorResponse(c, http.StatusNotFound, "Resource not found")
	case errors.Is(err, interfaces.ErrInvalidID):
		ErrorResponse(c, http.StatusBadRequest, "Invalid id")
	case errors.Is(err, interfaces.ErrDuplicate):
		ErrorResponse(c, http.StatusConflict, "Resource already exists")
	default:
		logrus.WithError(err).WithField("path", c.Request.URL.Path).Error("Unhandled error")
		InternalServerErrorResponse(c, "")
	}
}

// FromRepositoryError translates repository sentinels into service errors.
// resource names the entity in the not-found message.
func FromRepositoryError(err error, resource, operation string) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, interfaces.ErrNotFound):
		return NewNotFoundError(resource)
	case errors.Is(err, interfaces.ErrInvalidID):
		return NewNotFoundError(resource)
	case errors.Is(err, interfaces.ErrDuplicate):
		return NewConflictError(resource + " already exists")
	}
	return NewDatabaseError(operation, err)
}
