package pubsub

import (
	"github.com/LudwingValecillos/VentaCarniceria/internal/domain/service"
)

// PubSubPushMessage represents the structure of a Pub/Sub push message.
// This mimics the format Google Pub/Sub uses when pushing to HTTP endpoints.
type PubSubPushMessage struct {
	Message struct {
		Data        string            `json:"data"`
		Attributes  map[string]string `json:"attributes,omitempty"`
		MessageID   string            `json:"messageId"`
		PublishTime string            `json:"publishTime"`
	} `json:"message"`
	Subscription string `json:"subscription"`
}

// eventAttributes are the message attributes used for subscription filtering and tracing.
func eventAttributes(event *service.StoreEvent) map[string]string {
	attributes := map[string]string{
		"event_id":  event.ID,
		"kind":      string(event.Kind),
		"tenant_id": event.TenantID,
	}
	if event.RequestID != "" {
		attributes["request_id"] = event.RequestID
	}

	return attributes
}
