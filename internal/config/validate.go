package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/conn-castle/ext-installer/internal/messages"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate ensures every required setting is present.
// path identifies the config source in error messages.
func (c *Config) Validate(path string) error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return fmt.Errorf(messages.ConfigInvalidFmt, path, err)
	}
	problems := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		problems = append(problems, fmt.Sprintf(messages.ConfigFieldInvalidFmt, fe.Namespace(), fe.Tag()))
	}
	return fmt.Errorf(messages.ConfigValidationFmt, path, strings.Join(problems, "; "))
}
