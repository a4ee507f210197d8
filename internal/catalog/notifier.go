package catalog

import (
	"context"
	"log/slog"
	"sync"
	"time"

	deliverycontext "github.com/LudwingValecillos/VentaCarniceria/internal/delivery/context"
)

// Level is the severity of a user-facing notification.
type Level string

const (
	LevelInfo    Level = "info"
	LevelSuccess Level = "success"
	LevelError   Level = "error"
)

// Notification is a toast-style message for the admin UI.
type Notification struct {
	Seq       uint64    `json:"seq"`
	Level     Level     `json:"level"`
	Message   string    `json:"message"`
	ProductID string    `json:"productId,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// Notifier receives notifications emitted by catalog actions.
type Notifier interface {
	Notify(ctx context.Context, notification Notification)
}

const defaultFeedSize = 50

// Feed is a Notifier that logs every notification and keeps the most recent ones
// so the admin UI can poll them.
type Feed struct {
	logger *slog.Logger

	mu    sync.RWMutex
	seq   uint64
	size  int
	items []Notification
}

// NewFeed returns a feed retaining up to size notifications. A non-positive size uses the default.
func NewFeed(logger *slog.Logger, size int) *Feed {
	if size <= 0 {
		size = defaultFeedSize
	}

	return &Feed{logger: logger, size: size}
}

func (f *Feed) Notify(ctx context.Context, notification Notification) {
	f.mu.Lock()
	f.seq++
	notification.Seq = f.seq
	if notification.CreatedAt.IsZero() {
		notification.CreatedAt = time.Now()
	}
	f.items = append(f.items, notification)
	if len(f.items) > f.size {
		f.items = f.items[len(f.items)-f.size:]
	}
	f.mu.Unlock()

	logger := deliverycontext.GetLoggerOrDefault(ctx, f.logger)
	level := slog.LevelInfo
	if notification.Level == LevelError {
		level = slog.LevelWarn
	}
	logger.Log(ctx, level, "Catalog notification",
		slog.String("level", string(notification.Level)),
		slog.String("message", notification.Message),
		slog.String("product_id", notification.ProductID),
	)
}

// Since returns the retained notifications with a sequence number greater than seq.
func (f *Feed) Since(seq uint64) []Notification {
	f.mu.RLock()
	defer f.mu.RUnlock()

	out := make([]Notification, 0, len(f.items))
	for _, item := range f.items {
		if item.Seq > seq {
			out = append(out, item)
		}
	}

	return out
}
