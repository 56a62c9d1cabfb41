// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"github.com/golang-jwt/jwt/v5"
)

// TokenPurpose separates access tokens from email verification tokens. It is
// carried in the "aud" claim so a verification link can never be replayed as
// a bearer token and vice versa.
type TokenPurpose string

const (
	// AccessPurpose marks bearer tokens issued by /token.
	AccessPurpose TokenPurpose = "access"
	// VerificationPurpose marks tokens embedded into verification mails.
	VerificationPurpose TokenPurpose = "email-verification"
)

// TokenClaims is the signed payload: the user identity plus the standard
// registered claims (iss, aud, iat, exp).
type TokenClaims struct {
	// UserID is the identifier of the user the token was issued for.
	UserID int64 `json:"id"`

	// Username is informational; the user is always resolved by UserID.
	Username string `json:"username"`

	// Email is only set on verification tokens.
	Email string `json:"email,omitempty"`

	jwt.RegisteredClaims
}

// Token wraps a JWT together with its decoded claims.
//
// It embeds [jwt.Token] for low-level token operations and [TokenClaims] for
// claim access. SignedString holds the compact serialized form
// (header.payload.signature) ready to be handed out to clients.
type Token struct {
	// Token is the underlying JWT. Excluded from JSON serialization because
	// only the compact string form is meaningful outside the server process.
	*jwt.Token `json:"-"`

	TokenClaims

	// SignedString is the compact JWS representation of the token.
	SignedString string `json:"-"`
}

// String returns the compact JWS serialization of the token.
// It implements the [fmt.Stringer] interface.
func (t *Token) String() string {
	return t.SignedString
}

// AccessTokenResponse is the OAuth2 password-flow style body returned by
// /token.
type AccessTokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// NewAccessTokenResponse builds a bearer token response for t.
func NewAccessTokenResponse(t Token) AccessTokenResponse {
	return AccessTokenResponse{
		AccessToken: t.SignedString,
		TokenType:   "bearer",
	}
}
