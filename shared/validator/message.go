package validator

import (
	"errors"
	"strings"

	val "github.com/go-playground/validator/v10"
)

var (
	messages = map[string]string{
		"required": "{field} is required",
		"gte":      "{field} must be greater than or equal to {param}",
		"gt":       "{field} must be greater than {param}",
		"lte":      "{field} must be less than or equal to {param}",
		"oneof":    "{field} must be one of {param}",
		"max":      "{field} must be less than or equal to {param}",
		"min":      "{field} must be greater than or equal to {param}",
		"phone":    "{field} must be exactly 11 digits",
		"mailbox":  "{field} must look like name@domain.tld",
	}
)

// message renders the first failed rule under the given field name.
func message(err error, name string) string {
	var valErrors val.ValidationErrors

	if errors.As(err, &valErrors) {
		for _, valErr := range valErrors {
			errStr := messages[valErr.Tag()]
			if errStr != "" {
				errStr = strings.ReplaceAll(errStr, "{field}", name)
				errStr = strings.ReplaceAll(errStr, "{param}", valErr.Param())

				return strings.TrimSpace(errStr)
			}
		}

		return valErrors.Error()
	}

	return err.Error()
}
