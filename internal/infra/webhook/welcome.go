// Package webhook calls the external automation that greets new WhatsApp contacts.
package webhook

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/pkg/errors"

	"github.com/LudwingValecillos/VentaCarniceria/config"
	deliverycontext "github.com/LudwingValecillos/VentaCarniceria/internal/delivery/context"
	"github.com/LudwingValecillos/VentaCarniceria/internal/domain/service"
)

const (
	welcomeEvent   = "new_whatsapp_user"
	defaultTimeout = 10 * time.Second
	maxErrorBody   = 512
)

type welcomeRequest struct {
	Event     string      `json:"event"`
	Timestamp time.Time   `json:"timestamp"`
	Data      welcomeData `json:"data"`
}

type welcomeData struct {
	Name         string    `json:"name"`
	Phone        string    `json:"phone"`
	Role         string    `json:"role"`
	ButcheryName string    `json:"butcheryName"`
	ButcheryID   string    `json:"butcheryId"`
	CreatedAt    time.Time `json:"createdAt"`
}

type welcomeClient struct {
	url        string
	httpClient *http.Client
	logger     *slog.Logger
	now        func() time.Time
}

// NewWelcomeWebhook returns a client for the welcome automation. An empty URL yields
// a client that only logs.
func NewWelcomeWebhook(cfg *config.Config, logger *slog.Logger) service.WelcomeWebhook {
	webhookCfg := cfg.Webhook
	if webhookCfg == nil {
		webhookCfg = &config.WebhookConfig{}
	}
	timeout := webhookCfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	return newWelcomeClient(webhookCfg.WelcomeURL, &http.Client{Timeout: timeout}, logger)
}

func newWelcomeClient(url string, httpClient *http.Client, logger *slog.Logger) *welcomeClient {
	return &welcomeClient{
		url:        url,
		httpClient: httpClient,
		logger:     logger,
		now:        time.Now,
	}
}

func (c *welcomeClient) SendWelcome(ctx context.Context, tenantID string, contact *service.ContactAddedPayload) error {
	logger := deliverycontext.GetLoggerOrDefault(ctx, c.logger)
	if contact == nil {
		return errors.New("welcome webhook: missing contact")
	}
	if c.url == "" {
		logger.Info("Welcome webhook not configured, skipping",
			slog.String("phone", contact.Phone),
		)

		return nil
	}

	createdAt := contact.CreatedAt
	if createdAt.IsZero() {
		createdAt = c.now()
	}
	body, err := json.Marshal(welcomeRequest{
		Event:     welcomeEvent,
		Timestamp: c.now().UTC(),
		Data: welcomeData{
			Name:         contact.Name,
			Phone:        contact.Phone,
			Role:         contact.Role,
			ButcheryName: contact.TenantName,
			ButcheryID:   tenantID,
			CreatedAt:    createdAt.UTC(),
		},
	})
	if err != nil {
		return errors.WithStack(err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return errors.WithStack(err)
	}
	req.Header.Set("Content-Type", "application/json")
	if requestID := deliverycontext.GetRequestIDFromContext(ctx); requestID != "" {
		req.Header.Set("X-Request-Id", requestID)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return errors.Wrap(err, "welcome webhook request failed")
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		logger.Info("Welcome webhook delivered",
			slog.String("phone", contact.Phone),
			slog.Int("status", resp.StatusCode),
		)

		return nil
	}

	snippet, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	if resp.StatusCode >= 400 && resp.StatusCode < 500 && resp.StatusCode != http.StatusTooManyRequests {
		return errors.Wrapf(service.ErrWebhookRejected, "status %d: %s", resp.StatusCode, snippet)
	}

	return errors.Errorf("welcome webhook returned status %d: %s", resp.StatusCode, snippet)
}
