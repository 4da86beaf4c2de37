// Package apperrors defines the error taxonomy shared by the domain
// services. Handlers map these onto HTTP status codes; anything else
// propagates as an opaque internal error.
package apperrors

import "errors"

// ValidationError signals malformed or missing caller input. The caller
// can always recover by fixing the request.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func NewValidation(message string) *ValidationError {
	return &ValidationError{Message: message}
}

// IsValidation reports whether err is (or wraps) a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// BusinessError signals an operation that is structurally valid but
// refused by a business rule, e.g. the legacy delete path hitting a
// missing comment.
type BusinessError struct {
	Message string
}

func (e *BusinessError) Error() string {
	return e.Message
}

func NewBusiness(message string) *BusinessError {
	return &BusinessError{Message: message}
}

func IsBusiness(err error) bool {
	var be *BusinessError
	return errors.As(err, &be)
}
