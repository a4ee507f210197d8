package handler

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"google.golang.org/api/idtoken"

	"github.com/LudwingValecillos/VentaCarniceria/config"
	deliverycontext "github.com/LudwingValecillos/VentaCarniceria/internal/delivery/context"
	"github.com/LudwingValecillos/VentaCarniceria/internal/domain/constants"
	"github.com/LudwingValecillos/VentaCarniceria/internal/domain/service"
	"github.com/LudwingValecillos/VentaCarniceria/internal/infra/pubsub"
	"github.com/LudwingValecillos/VentaCarniceria/internal/util"
)

// maxTokensPerBatch is the FCM multicast limit.
const maxTokensPerBatch = 500

// errMalformedEvent marks events that can never be processed.
var errMalformedEvent = errors.New("malformed event")

// retryableError wraps an error to indicate it should trigger a Pub/Sub retry
type retryableError struct {
	err error
}

func (e *retryableError) Error() string {
	return fmt.Sprintf("retryable: %v", e.err)
}

func (e *retryableError) Unwrap() error {
	return e.err
}

func newRetryableError(err error) error {
	return &retryableError{err: err}
}

func isRetryableError(err error) bool {
	var re *retryableError

	return errors.As(err, &re)
}

// TokenVerifier checks the OIDC token Google attaches to push requests.
type TokenVerifier func(req *http.Request) error

// PushHandler handles Pub/Sub push messages carrying store events
type PushHandler struct {
	verifyPushAuth bool
	verify         TokenVerifier
	logger         *slog.Logger
	welcome        service.WelcomeWebhook
	notifications  service.NotificationService
	adminTopic     string
	adminTokens    []string
}

// PushHandlerParams holds dependencies for the PushHandler
type PushHandlerParams struct {
	fx.In

	Config        *config.Config
	Logger        *slog.Logger
	Welcome       service.WelcomeWebhook
	Notifications service.NotificationService
}

// NewPushHandler creates a new Pub/Sub push handler
func NewPushHandler(params PushHandlerParams) *PushHandler {
	// Push requests are only signed by Google Pub/Sub
	verifyPushAuth := params.Config.PubSub != nil &&
		params.Config.PubSub.Provider == constants.PubSubProviderGoogle &&
		params.Config.Env.Env != constants.EnvDevelop

	h := &PushHandler{
		verifyPushAuth: verifyPushAuth,
		verify:         verifyPubSubToken,
		logger:         params.Logger,
		welcome:        params.Welcome,
		notifications:  params.Notifications,
	}
	if params.Config.Notification != nil {
		h.adminTopic = params.Config.Notification.AdminTopic
		h.adminTokens = params.Config.Notification.AdminTokens
	}

	return h
}

// HandlePush handles incoming Pub/Sub push messages.
// 400 drops a malformed message, 503 asks Pub/Sub to redeliver, 200 acknowledges.
func (h *PushHandler) HandlePush(c echo.Context) error {
	ctx := c.Request().Context()

	if h.verifyPushAuth {
		if err := h.verify(c.Request()); err != nil {
			h.logger.Warn("[Worker] Invalid Pub/Sub token", slog.Any("error", err))

			return c.NoContent(http.StatusUnauthorized)
		}
	}

	var pushMsg pubsub.PubSubPushMessage
	if err := c.Bind(&pushMsg); err != nil {
		h.logger.Error("[Worker] Failed to parse push message", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	data, err := base64.StdEncoding.DecodeString(pushMsg.Message.Data)
	if err != nil {
		h.logger.Error("[Worker] Failed to decode message data", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	var event service.StoreEvent
	if err := json.Unmarshal(data, &event); err != nil {
		h.logger.Error("[Worker] Failed to parse store event", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	requestID := h.extractRequestID(ctx, &pushMsg, &event)
	ctx, reqLogger := deliverycontext.Scope(ctx, h.logger, requestID)

	reqLogger.Info("[Worker] Processing store event",
		slog.String("event_id", event.ID),
		slog.String("kind", string(event.Kind)),
		slog.String("tenant_id", event.TenantID),
	)

	if err := h.processEvent(ctx, &event); err != nil {
		reqLogger.Error("[Worker] Failed to process store event",
			slog.String("event_id", event.ID),
			slog.Any("error", err),
			slog.Bool("retryable", isRetryableError(err)),
		)

		switch {
		case errors.Is(err, errMalformedEvent):
			return c.NoContent(http.StatusBadRequest)
		case isRetryableError(err):
			return c.NoContent(http.StatusServiceUnavailable)
		default:
			return c.NoContent(http.StatusOK)
		}
	}

	reqLogger.Info("[Worker] Store event processed", slog.String("event_id", event.ID))

	return c.NoContent(http.StatusOK)
}

// extractRequestID prefers message attributes, then the event, then the incoming request.
func (h *PushHandler) extractRequestID(ctx context.Context, pushMsg *pubsub.PubSubPushMessage, event *service.StoreEvent) string {
	if requestID, ok := pushMsg.Message.Attributes["request_id"]; ok && requestID != "" {
		return requestID
	}
	if event.RequestID != "" {
		return event.RequestID
	}
	if requestID := deliverycontext.GetRequestIDFromContext(ctx); requestID != "" {
		return requestID
	}

	return uuid.New().String()
}

func (h *PushHandler) processEvent(ctx context.Context, event *service.StoreEvent) error {
	switch event.Kind {
	case service.EventContactAdded:
		return h.handleContactAdded(ctx, event)
	case service.EventStockLow:
		return h.handleStockLow(ctx, event)
	default:
		deliverycontext.GetLoggerOrDefault(ctx, h.logger).Warn("[Worker] Ignoring unknown event kind",
			slog.String("kind", string(event.Kind)),
		)

		return nil
	}
}

func (h *PushHandler) handleContactAdded(ctx context.Context, event *service.StoreEvent) error {
	if event.Contact == nil || event.Contact.Phone == "" {
		return errors.Wrap(errMalformedEvent, "contact.added without contact")
	}

	err := h.welcome.SendWelcome(ctx, event.TenantID, event.Contact)
	if err == nil {
		return nil
	}
	if errors.Is(err, service.ErrWebhookRejected) {
		return err
	}

	return newRetryableError(err)
}

func (h *PushHandler) handleStockLow(ctx context.Context, event *service.StoreEvent) error {
	if event.Stock == nil || event.Stock.ProductID == "" {
		return errors.Wrap(errMalformedEvent, "stock.low without product")
	}

	logger := deliverycontext.GetLoggerOrDefault(ctx, h.logger)
	title, body, data := stockLowContent(event)

	if h.adminTopic == "" && len(h.adminTokens) == 0 {
		logger.Info("[Worker] No admin push targets configured", slog.String("product_id", event.Stock.ProductID))

		return nil
	}

	if h.adminTopic != "" {
		if err := h.notifications.SendToTopic(ctx, h.adminTopic, title, body, data); err != nil {
			return newRetryableError(errors.WithStack(err))
		}
	}

	for start := 0; start < len(h.adminTokens); start += maxTokensPerBatch {
		batch := h.adminTokens[start:min(start+maxTokensPerBatch, len(h.adminTokens))]

		sent, failed, invalid, err := h.notifications.SendBatchNotification(ctx, batch, title, body, data)
		if err != nil {
			return newRetryableError(errors.WithStack(err))
		}
		if len(invalid) > 0 {
			logger.Warn("[Worker] Admin device tokens are no longer valid", slog.Int("count", len(invalid)))
		}
		logger.Info("[Worker] Low stock alert sent",
			slog.Int("sent", sent),
			slog.Int("failed", failed),
		)
	}

	return nil
}

func stockLowContent(event *service.StoreEvent) (title, body string, data map[string]string) {
	stock := event.Stock
	title = "Stock bajo"
	body = fmt.Sprintf("%s: quedan %s kg", stock.ProductName, util.FormatQuantity(stock.Stock))
	if stock.Stock <= 0 {
		body = stock.ProductName + ": sin stock"
	}

	data = map[string]string{
		"event_id":   event.ID,
		"kind":       string(event.Kind),
		"tenant_id":  event.TenantID,
		"product_id": stock.ProductID,
		"stock":      util.FormatQuantity(stock.Stock),
		"threshold":  util.FormatQuantity(stock.Threshold),
	}

	return title, body, data
}

// verifyPubSubToken verifies the JWT token from Google Pub/Sub push requests
// Reference: https://cloud.google.com/pubsub/docs/push#authenticating_standard_push_requests
func verifyPubSubToken(req *http.Request) error {
	authHeader := req.Header.Get("Authorization")
	if authHeader == "" {
		return errors.New("missing authorization header")
	}

	token, found := strings.CutPrefix(authHeader, "Bearer ")
	if !found {
		return errors.New("invalid authorization header format")
	}

	// The audience is the URL of this endpoint
	scheme := "https"
	if req.TLS == nil {
		scheme = "http"
	}
	audience := fmt.Sprintf("%s://%s%s", scheme, req.Host, req.URL.Path)

	payload, err := idtoken.Validate(req.Context(), token, audience)
	if err != nil {
		return errors.Wrap(err, "failed to validate token")
	}

	if payload.Issuer != "accounts.google.com" && payload.Issuer != "https://accounts.google.com" {
		return errors.Errorf("invalid issuer: %s", payload.Issuer)
	}

	if emailVerified, ok := payload.Claims["email_verified"].(bool); ok && !emailVerified {
		return errors.New("email not verified")
	}

	return nil
}
