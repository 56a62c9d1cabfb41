// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// buy-from-me HTTP handlers and middleware.
//
// All Msg* constants are human-readable strings written into HTTP response
// bodies. Keeping them in one place keeps the wording consistent throughout
// the API.
package app

const (
	// MsgInvalidToken is returned when a bearer or verification token is
	// missing, malformed, expired or resolves to no user.
	MsgInvalidToken = "Invalid or expired token"

	// MsgIncorrectCredentials is returned by /token for an unknown username
	// and for a wrong password alike.
	MsgIncorrectCredentials = "Incorrect username or password"

	// MsgNotAuthorized is returned when an authenticated user acts on a
	// resource owned by someone else.
	MsgNotAuthorized = "Not authorized to perform this action."

	// MsgFileExtensionNotAllowed is returned for uploads outside the
	// png/jpg/jpeg allow-list.
	MsgFileExtensionNotAllowed = "File extension is not allowed."

	// MsgUserAlreadyExists is returned when the username or the email is
	// taken.
	MsgUserAlreadyExists = "Username or email is already registered"

	MsgUserNotFound     = "User not found"
	MsgBusinessNotFound = "Business not found"
	MsgProductNotFound  = "Product not found"

	MsgNotFound         = "Not Found"
	MsgMethodNotAllowed = "Method Not Allowed"

	// MsgInternalServerError hides unexpected failures from clients.
	MsgInternalServerError = "Internal Server Error"

	MsgHelloWorld = "Hello World"
	MsgDeleted    = "Deleted"

	// MsgWelcomeFormat is the registration greeting; the verb is the username.
	MsgWelcomeFormat = "Hello %s, thanks for registering. Please check your email to verify your email."
)
