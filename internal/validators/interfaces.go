// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks client supplied payloads (registrations,
// product and business edits, image uploads) before the service layer
// touches storage.
//
// Rules are declared with ozzo-validation. Every violation is returned
// wrapped in [ErrValidation] so the HTTP layer can answer 400 with the
// per-field messages, except a disallowed upload extension which yields
// [ErrInvalidFileExtension].
package validators

import "context"

// Validator validates a payload. When fields are given only the rules of
// those fields run; an unknown field name yields ErrUnknownField.
type Validator interface {
	Validate(ctx context.Context, obj any, fields ...string) error
}
