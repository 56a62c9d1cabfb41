package service

import "errors"

var (
	// ErrInvalidCredential covers every token failure: bad signature, wrong
	// purpose, expiry, malformed payload, unknown user or a failed lookup.
	ErrInvalidCredential = errors.New("invalid or expired token")

	// ErrIncorrectCredentials is returned by Login for an unknown username and
	// for a wrong password alike.
	ErrIncorrectCredentials = errors.New("incorrect username or password")

	// ErrUnauthorizedAction means the caller is authenticated but does not own
	// the resource.
	ErrUnauthorizedAction = errors.New("not authorized to perform this action")

	ErrInvalidImage        = errors.New("uploaded file is not a valid image")
	ErrAlreadyVerified     = errors.New("email is already verified")
	ErrNotificationFailed  = errors.New("verification mail could not be sent")
	ErrTokenCreationFailed = errors.New("token creation failed")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)
