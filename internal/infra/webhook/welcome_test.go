package webhook

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/LudwingValecillos/VentaCarniceria/config"
	deliverycontext "github.com/LudwingValecillos/VentaCarniceria/internal/delivery/context"
	"github.com/LudwingValecillos/VentaCarniceria/internal/domain/service"
)

var fixedNow = time.Date(2025, 3, 14, 9, 30, 0, 0, time.UTC)

func testContact() *service.ContactAddedPayload {
	return &service.ContactAddedPayload{
		Name:       "Nacho",
		Phone:      "5491122334455",
		Role:       "propietario",
		TenantName: "Carnicería Lo de Nacho",
		CreatedAt:  time.Date(2025, 3, 14, 9, 29, 0, 0, time.UTC),
	}
}

func TestWelcomeClient_SendWelcome(t *testing.T) {
	t.Parallel()

	var (
		got       map[string]any
		requestID string
	)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID = r.Header.Get("X-Request-Id")
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client := newWelcomeClient(server.URL, server.Client(), slog.New(slog.DiscardHandler))
	client.now = func() time.Time { return fixedNow }

	ctx := deliverycontext.WithRequestID(context.Background(), "req-42")
	require.NoError(t, client.SendWelcome(ctx, "lo-de-nacho", testContact()))

	assert.Equal(t, "req-42", requestID)
	assert.Equal(t, "new_whatsapp_user", got["event"])
	assert.Equal(t, "2025-03-14T09:30:00Z", got["timestamp"])
	assert.Equal(t, map[string]any{
		"name":         "Nacho",
		"phone":        "5491122334455",
		"role":         "propietario",
		"butcheryName": "Carnicería Lo de Nacho",
		"butcheryId":   "lo-de-nacho",
		"createdAt":    "2025-03-14T09:29:00Z",
	}, got["data"])
}

func TestWelcomeClient_StatusHandling(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		status       int
		wantErr      bool
		wantRejected bool
	}{
		{name: "accepted", status: http.StatusAccepted},
		{name: "bad request is rejected", status: http.StatusBadRequest, wantErr: true, wantRejected: true},
		{name: "not found is rejected", status: http.StatusNotFound, wantErr: true, wantRejected: true},
		{name: "throttled is retryable", status: http.StatusTooManyRequests, wantErr: true},
		{name: "server error is retryable", status: http.StatusBadGateway, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(tt.status)
			}))
			defer server.Close()

			client := newWelcomeClient(server.URL, server.Client(), slog.New(slog.DiscardHandler))
			err := client.SendWelcome(context.Background(), "demo", testContact())

			if !tt.wantErr {
				assert.NoError(t, err)

				return
			}
			require.Error(t, err)
			assert.Equal(t, tt.wantRejected, errors.Is(err, service.ErrWebhookRejected))
		})
	}
}

func TestNewWelcomeWebhook_WithoutURLOnlyLogs(t *testing.T) {
	t.Parallel()

	client := NewWelcomeWebhook(&config.Config{}, slog.New(slog.DiscardHandler))

	assert.NoError(t, client.SendWelcome(context.Background(), "demo", testContact()))
	assert.Error(t, client.SendWelcome(context.Background(), "demo", nil))
}
