package catalog

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFeed_RetainsMostRecent(t *testing.T) {
	t.Parallel()

	feed := NewFeed(slog.New(slog.DiscardHandler), 2)
	ctx := context.Background()

	feed.Notify(ctx, Notification{Level: LevelInfo, Message: "uno"})
	feed.Notify(ctx, Notification{Level: LevelError, Message: "dos"})
	feed.Notify(ctx, Notification{Level: LevelSuccess, Message: "tres"})

	all := feed.Since(0)
	require.Len(t, all, 2)
	assert.Equal(t, "dos", all[0].Message)
	assert.Equal(t, uint64(3), all[1].Seq)
	assert.False(t, all[1].CreatedAt.IsZero())

	newer := feed.Since(2)
	require.Len(t, newer, 1)
	assert.Equal(t, "tres", newer[0].Message)
}
