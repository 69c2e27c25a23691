package vsys

import (
	"errors"
	"fmt"
)

// ValidationError reports malformed or out-of-range input handed to a
// constructor or encoder. It is raised before any cryptographic or network
// work is attempted.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// IsValidationError checks if error is a ValidationError.
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// KeyError reports malformed key material: wrong byte length, or a public
// key that does not match the supplied private key.
type KeyError struct {
	Reason string
}

func (e *KeyError) Error() string {
	return fmt.Sprintf("bad key material: %s", e.Reason)
}

// IsKeyError checks if error is a KeyError.
func IsKeyError(err error) bool {
	var ke *KeyError
	return errors.As(err, &ke)
}

// EncodingError reports a value that exceeds a fixed-width or
// length-prefixed field's capacity.
type EncodingError struct {
	Field  string
	Reason string
}

func (e *EncodingError) Error() string {
	return fmt.Sprintf("cannot encode %s: %s", e.Field, e.Reason)
}

// IsEncodingError checks if error is an EncodingError.
func IsEncodingError(err error) bool {
	var ee *EncodingError
	return errors.As(err, &ee)
}
