// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides outbound integrations of the buy-from-me server.
//
// The primary abstraction is [Notifier], which decouples the registration use
// case from the mail transport. The package ships an SMTP implementation
// ([NewSMTPNotifier]) built on wneessen/go-mail.
package adapter

import (
	"context"

	"github.com/MKhiriev/buy-from-me/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/notifier_mock.go -package=mock

// Notifier dispatches account notifications.
type Notifier interface {
	// SendVerification mails user a link embedding the signed verification
	// token. It blocks until the mail server accepted the message, ctx is
	// done, or delivery failed.
	SendVerification(ctx context.Context, user models.User, token models.Token) error
}
