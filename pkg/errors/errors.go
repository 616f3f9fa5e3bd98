package errors

import (
	"errors"
	"fmt"
)

var (
	ErrNoSession    = errors.New("no active session")
	ErrUnknownView  = errors.New("no dashboard for this role")
	ErrUnknownTab   = errors.New("unknown tab")
	ErrUnknownList  = errors.New("unknown list")
	ErrInvalidInput = errors.New("invalid input data")

	ErrMalformedSession = errors.New("persisted session is malformed")
)

// CodeValidation marks an AppError caused by bad input
const CodeValidation = "VALIDATION_ERROR"

type AppError struct {
	Code    string
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}

	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func NewAppError(code, message string, err error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// CodeOf returns the code of the first AppError in err's chain, or "".
func CodeOf(err error) string {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code
	}
	return ""
}
