package middleware

import (
	"alertsystem/utils"
	"errors"
	"net/http"
	"runtime/debug"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/mongo"
)

// ErrorHandler recovers panics and renders errors attached with c.Error.
type ErrorHandler struct {
	environment string
	logger      *logrus.Logger
}

func NewErrorHandler(environment string, logger *logrus.Logger) *ErrorHandler {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &ErrorHandler{
		environment: environment,
		logger:      logger,
	}
}

func (eh *ErrorHandler) Handle() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				eh.handlePanic(c, err)
			}
		}()

		c.Next()

		if len(c.Errors) > 0 && !c.Writer.Written() {
			eh.processError(c, c.Errors.Last().Err)
		}
	}
}

func (eh *ErrorHandler) handlePanic(c *gin.Context, err interface{}) {
	fields := logrus.Fields{
		"panic":      err,
		"request_id": c.GetString(RequestIDKey),
		"path":       c.Request.URL.Path,
		"method":     c.Request.Method,
		"user_id":    utils.GetUserID(c),
	}
	if eh.environment != "production" {
		fields["stack"] = string(debug.Stack())
	}
	eh.logger.WithFields(fields).Error("Panic recovered")

	utils.InternalServerErrorResponse(c, "")
	c.Abort()
}

func (eh *ErrorHandler) processError(c *gin.Context, err error) {
	eh.logger.WithFields(logrus.Fields{
		"error":      err.Error(),
		"request_id": c.GetString(RequestIDKey),
		"path":       c.Request.URL.Path,
	}).Warn("Request error")

	switch {
	case mongo.IsDuplicateKeyError(err):
		utils.ErrorResponse(c, http.StatusConflict, "Resource already exists")
	case errors.Is(err, mongo.ErrNoDocuments):
		utils.ErrorResponse(c, http.StatusNotFound, "Resource not found")
	case mongo.IsTimeout(err):
		utils.ErrorResponse(c, http.StatusGatewayTimeout, "Database operation timed out")
	case mongo.IsNetworkError(err):
		utils.ErrorResponse(c, http.StatusServiceUnavailable, "Database connection error")
	default:
		utils.HandleServiceError(c, err)
	}
}

// NoRoute renders unknown paths in the uniform error body.
func NoRoute(c *gin.Context) {
	utils.NotFoundResponse(c, "Endpoint")
}
