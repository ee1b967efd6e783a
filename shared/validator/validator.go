package validator

import (
	"hotel/shared/failure"
	"regexp"

	val "github.com/go-playground/validator/v10"
)

const phoneLength = 11

var (
	validate *val.Validate

	mailboxPattern = regexp.MustCompile(`^\w+@\w+\.\w+$`)
)

func registerPhoneValidation(field val.FieldLevel) bool {
	phone := field.Field().String()
	if len(phone) != phoneLength {
		return false
	}

	for _, r := range phone {
		if r < '0' || r > '9' {
			return false
		}
	}

	return true
}

func registerMailboxValidation(field val.FieldLevel) bool {
	return mailboxPattern.MatchString(field.Field().String())
}

func init() {
	validate = val.New(val.WithRequiredStructEnabled())

	err := validate.RegisterValidation("phone", registerPhoneValidation)
	if err != nil {
		panic(err)
	}

	err = validate.RegisterValidation("mailbox", registerMailboxValidation)
	if err != nil {
		panic(err)
	}
}

// ValidateField validates a single value and names it in the failure message.
func ValidateField(name string, field any, tag string) error {
	err := validate.Var(field, tag)

	if err != nil {
		msg := message(err, name)

		return failure.BadRequestFromString(msg) //nolint:wrapcheck
	}

	return nil
}
