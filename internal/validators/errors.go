package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	// ErrValidation wraps every rule violation; the wrapped ozzo error
	// carries the per-field messages.
	ErrValidation = errors.New("validation failed")

	ErrInvalidFileExtension = errors.New("file extension is not allowed")
)
