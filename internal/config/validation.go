package config

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// validate is the singleton validator instance
var validate *validator.Validate

func init() {
	validate = validator.New()
}

// Validate validates the configuration using struct tags and custom rules
// that cannot be expressed in tags.
func Validate(cfg *Config) error {
	if err := validate.Struct(cfg); err != nil {
		return formatValidationError(err)
	}
	return validateCustomRules(cfg)
}

// validateCustomRules performs validation beyond struct tags
func validateCustomRules(cfg *Config) error {
	// The epoch-type and camera lists are parallel
	if len(cfg.Naming.EpochTypes) != len(cfg.Naming.Cameras) {
		return fmt.Errorf("naming: epoch_types (%d entries) and cameras (%d entries) must be the same length",
			len(cfg.Naming.EpochTypes), len(cfg.Naming.Cameras))
	}
	return nil
}

// formatValidationError converts validator errors into readable messages
func formatValidationError(err error) error {
	errs, ok := err.(validator.ValidationErrors)
	if !ok {
		return err
	}
	for _, fieldErr := range errs {
		return fmt.Errorf("%s: failed %q validation", fieldErr.Namespace(), fieldErr.Tag())
	}
	return err
}
