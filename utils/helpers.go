package utils

import (
	"alertsystem/models"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Context keys set by the auth middleware.
const (
	ContextUser     = "user"
	ContextUserID   = "userID"
	ContextUserRole = "userRole"
	ContextClaims   = "claims"
)

// GetUserID retrieves the authenticated user id from the Gin context.
func GetUserID(c *gin.Context) string {
	if userID, exists := c.Get(ContextUserID); exists {
		if idStr, ok := userID.(string); ok {
			return idStr
		}
	}
	return ""
}

// GetCurrentUser returns the user loaded by the auth middleware.
func GetCurrentUser(c *gin.Context) *models.User {
	if v, exists := c.Get(ContextUser); exists {
		if user, ok := v.(*models.User); ok {
			return user
		}
	}
	return nil
}

func GetClaims(c *gin.Context) *Claims {
	if v, exists := c.Get(ContextClaims); exists {
		if claims, ok := v.(*Claims); ok {
			return claims
		}
	}
	return nil
}

// UUID Generation
func GenerateUUID() string {
	return uuid.New().String()
}

// GenerateRandomPassword returns an 8 character password for officers created without one.
func GenerateRandomPassword() string {
	return strings.ReplaceAll(uuid.New().String(), "-", "")[:8]
}

// ParseObjectID returns the id or a not-found error named after resource.
func ParseObjectID(id, resource string) (primitive.ObjectID, error) {
	objectID, err := primitive.ObjectIDFromHex(strings.TrimSpace(id))
	if err != nil {
		return primitive.NilObjectID, NewNotFoundError(resource)
	}
	return objectID, nil
}

func TimePtr(t time.Time) *time.Time {
	return &t
}

func ObjectIDPtr(id primitive.ObjectID) *primitive.ObjectID {
	return &id
}

func FirstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}

func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func MaskEmail(email string) string {
	parts := strings.Split(email, "@")
	if len(parts) != 2 || len(parts[0]) < 2 {
		return email
	}
	return parts[0][:1] + strings.Repeat("*", len(parts[0])-1) + "@" + parts[1]
}

func MaskPhoneNumber(phone string) string {
	if len(phone) < 4 {
		return phone
	}
	return strings.Repeat("*", len(phone)-4) + phone[len(phone)-4:]
}

// RetryWithBackoff retries fn with doubling delays.
func RetryWithBackoff(fn func() error, maxRetries int, baseDelay time.Duration) error {
	var err error
	for i := 0; i < maxRetries; i++ {
		if err = fn(); err == nil {
			return nil
		}
		if i < maxRetries-1 {
			time.Sleep(baseDelay * time.Duration(1<<uint(i)))
		}
	}
	return err
}
