package validator

import (
	"log"

	"github.com/go-playground/validator/v10"

	"jobboard_backend/internal/models"
)

// registerCustomRules installs the domain-specific validation tags.
func registerCustomRules(v *validator.Validate) {
	mustRegister := func(tag string, fn validator.Func) {
		if err := v.RegisterValidation(tag, fn); err != nil {
			log.Fatalf("failed to register custom validation tag '%s': %v", tag, err)
		}
	}

	mustRegister("is-user-role", validateUserRole)
	mustRegister("is-application-status", validateApplicationStatus)
}

func validateUserRole(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true // empty values are 'required's problem
	}
	return models.ValidRole(models.UserRole(value))
}

func validateApplicationStatus(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	switch models.ApplicationStatus(value) {
	case models.ApplicationStatusApplied, models.ApplicationStatusHired,
		models.ApplicationStatusRejected, models.ApplicationStatusCancelled:
		return true
	default:
		return false
	}
}
