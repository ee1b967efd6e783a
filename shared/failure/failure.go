package failure

import (
	"errors"
	"fmt"
	"net/http"
)

// Failure is a wrapper for error messages and codes using standard HTTP response codes.
// Any error that is not a Failure is treated as a storage/driver failure.
type Failure struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

var InvalidDateTime = &Failure{Code: http.StatusBadRequest, Message: "invalid date-time format, expected YYYY-MM-DD HH:MM:SS"}

// Error returns the error message.
func (e *Failure) Error() string {
	return e.Message
}

// BadRequest returns a new validation Failure derived from an error.
func BadRequest(err error) error {
	if err != nil {
		return &Failure{
			Code:    http.StatusBadRequest,
			Message: err.Error(),
		}
	}

	return nil
}

// BadRequestFromString returns a new validation Failure with message set from string.
func BadRequestFromString(msg string) error {
	return &Failure{
		Code:    http.StatusBadRequest,
		Message: msg,
	}
}

// NotFound returns a new Failure with code for entity not found.
func NotFound(msg string) error {
	return &Failure{
		Code:    http.StatusNotFound,
		Message: msg,
	}
}

// NotFoundf formats a not-found message, e.g. NotFoundf("room %d doesn't exist", 101).
func NotFoundf(format string, args ...any) error {
	return NotFound(fmt.Sprintf(format, args...))
}

// Conflict returns a new Failure with code for conflict situations.
func Conflict(msg string) error {
	return &Failure{
		Code:    http.StatusConflict,
		Message: msg,
	}
}

// BusinessRule returns a new Failure for a request that is well formed but refused by a business rule.
func BusinessRule(msg string) error {
	return &Failure{
		Code:    http.StatusUnprocessableEntity,
		Message: msg,
	}
}

// DataIntegrity returns a new Failure for stored data that cannot be mapped back to an entity.
func DataIntegrity(msg string) error {
	return &Failure{
		Code:    http.StatusInternalServerError,
		Message: msg,
	}
}

// GetCode returns the error code of an error interface.
func GetCode(err error) int {
	var fail *Failure
	if errors.As(err, &fail) {
		return fail.Code
	}

	return http.StatusInternalServerError
}

// Is reports whether err carries a Failure with the given code.
func Is(err error, code int) bool {
	var fail *Failure
	if errors.As(err, &fail) {
		return fail.Code == code
	}

	return false
}

// IsNotFound reports whether err is a not-found Failure.
func IsNotFound(err error) bool {
	return Is(err, http.StatusNotFound)
}
