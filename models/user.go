// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// JoinDateLayout is the MM/DD/YYYY layout used when a join date is shown to
// clients.
const JoinDateLayout = "01/02/2006"

// User represents a registered account. It is the terminal link of the
// ownership chain Product -> Business -> User.
type User struct {
	// ID is the store-assigned unique identifier of the user.
	ID int64 `json:"id"`

	// Username is the unique login name. It also becomes the default
	// business name when the account is registered.
	Username string `json:"username"`

	// Email is the unique address verification mails are sent to.
	Email string `json:"email"`

	// Password holds the plaintext password only on its way in from a
	// registration request. Once the user is persisted it holds the bcrypt
	// digest and is never serialized.
	Password string `json:"-"`

	// IsVerified flips to true exactly once, after the verification link is
	// followed.
	IsVerified bool `json:"is_verified"`

	// JoinDate is set by the store at creation and never changes.
	JoinDate time.Time `json:"join_date"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// RegistrationRequest is the JSON body accepted by the registration endpoint.
type RegistrationRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// ToUser converts the request into a not yet persisted [User].
func (r RegistrationRequest) ToUser() User {
	return User{
		Username: r.Username,
		Email:    r.Email,
		Password: r.Password,
	}
}

// Profile is the public view of the authenticated user returned by /user/me.
type Profile struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Verified bool   `json:"verified"`
	JoinDate string `json:"join_date"`
	Logo     string `json:"logo"`
}
