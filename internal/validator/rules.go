package validator

import (
	"log"

	"github.com/go-playground/validator/v10"

	"modelboard_backend/internal/models"
)

// registerCustomRules installs the domain validation tags. Registration
// failures abort startup: a missing rule means every request using it
// would be rejected.
func registerCustomRules(v *validator.Validate) {
	mustRegister := func(tag string, fn validator.Func) {
		if err := v.RegisterValidation(tag, fn); err != nil {
			log.Fatalf("failed to register custom validation tag '%s': %v", tag, err)
		}
	}

	mustRegister("is-gender", validateGender)
	mustRegister("is-openness-level", validateOpennessLevel)
}

func validateGender(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true // omitempty territory
	}
	switch value {
	case "женский", "мужской", "female", "male":
		return true
	default:
		return false
	}
}

// validateOpennessLevel only fires on registration payloads. Search keeps
// the looser contract: an unknown level there is ignored, not rejected.
func validateOpennessLevel(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	return models.IsOpennessLevel(value)
}
