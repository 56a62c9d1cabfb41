// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors for malformed requests. They are mapped to 400 Bad Request
// by [statusFromError].
var (
	// ErrInvalidJSON is returned when a request body cannot be decoded.
	ErrInvalidJSON = errors.New("invalid JSON was passed")

	// ErrInvalidID is returned when a path id is not a positive integer.
	ErrInvalidID = errors.New("invalid id")

	// ErrInvalidPagination is returned for malformed limit or offset values.
	ErrInvalidPagination = errors.New("limit and offset must be non-negative integers")

	// ErrMissingCredentials is returned by /token when the form lacks the
	// username or the password.
	ErrMissingCredentials = errors.New("username and password are required")

	// ErrMissingFile is returned when a multipart upload has no "file" part.
	ErrMissingFile = errors.New("multipart field `file` is required")

	// ErrUploadTooLarge is returned when a multipart body exceeds the
	// configured upload size.
	ErrUploadTooLarge = errors.New("uploaded file is too large")

	// ErrMissingToken is returned by /verification without a token.
	ErrMissingToken = errors.New("query parameter `token` is required")
)
