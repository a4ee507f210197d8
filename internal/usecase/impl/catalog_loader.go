package impl

import (
	"context"
	"log/slog"

	"github.com/LudwingValecillos/VentaCarniceria/internal/catalog"
	deliverycontext "github.com/LudwingValecillos/VentaCarniceria/internal/delivery/context"
)

// ensureCatalog performs the first catalog load, and retries it while every load
// so far has failed. A failed load is recorded in the store state, and callers
// serve whatever the store holds.
func ensureCatalog(ctx context.Context, actions *catalog.Actions, logger *slog.Logger) {
	if !actions.Store().NeedsLoad() {
		return
	}
	if err := actions.Fetch(ctx); err != nil {
		deliverycontext.GetLoggerOrDefault(ctx, logger).Warn("Catalog load failed", slog.Any("error", err))
	}
}

// refreshCatalog reloads the catalog after writes that change many products.
func refreshCatalog(ctx context.Context, actions *catalog.Actions, logger *slog.Logger) {
	if err := actions.Refresh(ctx); err != nil {
		deliverycontext.GetLoggerOrDefault(ctx, logger).Warn("Catalog refresh failed", slog.Any("error", err))
	}
}
