package utils

import (
	"alertsystem/models"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

type ValidationService struct {
	validator *validator.Validate
}

type ValidationError struct {
	Field   string `json:"field"`
	Tag     string `json:"tag"`
	Value   string `json:"value"`
	Message string `json:"message"`
}

func NewValidationService() *ValidationService {
	v := validator.New()

	// Enum validators
	v.RegisterValidation("urgency", enumValidator(func(s string) bool { _, ok := models.ParseUrgencyLevel(s); return ok }))
	v.RegisterValidation("role", enumValidator(func(s string) bool { _, ok := models.ParseRole(s); return ok }))
	v.RegisterValidation("team_type", enumValidator(func(s string) bool { _, ok := models.ParseTeamType(s); return ok }))
	v.RegisterValidation("resource_type", enumValidator(func(s string) bool { _, ok := models.ParseResourceType(s); return ok }))
	v.RegisterValidation("task_priority", enumValidator(func(s string) bool { _, ok := models.ParseTaskPriority(s); return ok }))
	v.RegisterValidation("task_type", enumValidator(func(s string) bool { _, ok := models.ParseTaskType(s); return ok }))
	v.RegisterValidation("area_severity", enumValidator(func(s string) bool { _, ok := models.ParseAreaSeverity(s); return ok }))

	return &ValidationService{
		validator: v,
	}
}

func (vs *ValidationService) ValidateStruct(s interface{}) []ValidationError {
	var validationErrors []ValidationError

	err := vs.validator.Struct(s)
	if err != nil {
		fieldErrors, ok := err.(validator.ValidationErrors)
		if !ok {
			return []ValidationError{{Message: err.Error()}}
		}
		for _, fe := range fieldErrors {
			validationErrors = append(validationErrors, ValidationError{
				Field:   fe.Field(),
				Tag:     fe.Tag(),
				Value:   fmt.Sprintf("%v", fe.Value()),
				Message: vs.getErrorMessage(fe),
			})
		}
	}

	return validationErrors
}

// Validate returns a bad-request ServiceError listing every failed field, or nil.
func (vs *ValidationService) Validate(s interface{}) error {
	validationErrors := vs.ValidateStruct(s)
	if len(validationErrors) == 0 {
		return nil
	}
	messages := make([]string, 0, len(validationErrors))
	for _, ve := range validationErrors {
		messages = append(messages, ve.Message)
	}
	return NewBadRequestError(strings.Join(messages, "; "))
}

func (vs *ValidationService) getErrorMessage(fe validator.FieldError) string {
	field := lowerFirst(fe.Field())
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "email":
		return "Invalid email format"
	case "min":
		return fmt.Sprintf("%s must be at least %s characters long", field, fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s characters long", field, fe.Param())
	case "gte":
		return fmt.Sprintf("%s must be greater than or equal to %s", field, fe.Param())
	case "urgency":
		return fmt.Sprintf("Invalid urgency level: %v", fe.Value())
	case "role":
		return fmt.Sprintf("Invalid role: %v", fe.Value())
	case "team_type":
		return fmt.Sprintf("Invalid team type: %v", fe.Value())
	case "resource_type":
		return fmt.Sprintf("Invalid resource type: %v", fe.Value())
	case "task_priority":
		return fmt.Sprintf("Invalid task priority: %v", fe.Value())
	case "task_type":
		return fmt.Sprintf("Invalid task type: %v", fe.Value())
	case "area_severity":
		return fmt.Sprintf("Invalid severity: %v", fe.Value())
	default:
		return fmt.Sprintf("%s is invalid", field)
	}
}

func enumValidator(parse func(string) bool) validator.Func {
	return func(fl validator.FieldLevel) bool {
		return parse(fl.Field().String())
	}
}

func lowerFirst(s string) string {
	if s == "" {
		return s
	}
	return strings.ToLower(s[:1]) + s[1:]
}
