package service

import (
	"context"

	"github.com/pkg/errors"
)

// ErrWebhookRejected is returned when the webhook answered with a client error.
// Retrying the same payload will not succeed.
var ErrWebhookRejected = errors.New("webhook rejected the request")

// WelcomeWebhook triggers the welcome automation for a new WhatsApp contact.
type WelcomeWebhook interface {
	// SendWelcome posts the contact to the automation endpoint
	SendWelcome(ctx context.Context, tenantID string, contact *ContactAddedPayload) error
}
