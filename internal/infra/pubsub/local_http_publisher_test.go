package pubsub

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/LudwingValecillos/VentaCarniceria/internal/domain/service"
)

func testEvent() *service.StoreEvent {
	return &service.StoreEvent{
		ID:         "evt-1",
		RequestID:  "req-1",
		Kind:       service.EventContactAdded,
		TenantID:   "demo",
		OccurredAt: time.Date(2024, 11, 5, 14, 0, 0, 0, time.UTC),
		Contact: &service.ContactAddedPayload{
			Name:       "Juan",
			Phone:      "5491144443333",
			Role:       "vendedor",
			TenantName: "Demo",
		},
	}
}

func TestLocalHTTPPublisher_Publish(t *testing.T) {
	t.Parallel()

	var (
		gotMsg    PubSubPushMessage
		gotHeader string
	)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotHeader = r.Header.Get("X-Request-Id")
		body, _ := io.ReadAll(r.Body)
		_ = json.Unmarshal(body, &gotMsg)
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	publisher := newLocalHTTPPublisher(server.URL, server.Client(), slog.New(slog.DiscardHandler))

	require.NoError(t, publisher.Publish(context.Background(), testEvent()))

	assert.Equal(t, "req-1", gotHeader)
	assert.Equal(t, "evt-1", gotMsg.Message.MessageID)
	assert.Equal(t, map[string]string{
		"event_id":   "evt-1",
		"kind":       "contact.added",
		"tenant_id":  "demo",
		"request_id": "req-1",
	}, gotMsg.Message.Attributes)

	raw, err := base64.StdEncoding.DecodeString(gotMsg.Message.Data)
	require.NoError(t, err)
	var event service.StoreEvent
	require.NoError(t, json.Unmarshal(raw, &event))
	assert.Equal(t, service.EventContactAdded, event.Kind)
	require.NotNil(t, event.Contact)
	assert.Equal(t, "Juan", event.Contact.Name)
}

func TestLocalHTTPPublisher_NonSuccessStatus(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	publisher := newLocalHTTPPublisher(server.URL, server.Client(), slog.New(slog.DiscardHandler))

	err := publisher.Publish(context.Background(), testEvent())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "503")
}

func TestEventAttributes_OmitsEmptyRequestID(t *testing.T) {
	t.Parallel()

	event := testEvent()
	event.RequestID = ""

	assert.NotContains(t, eventAttributes(event), "request_id")
}
