package pubsub

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"

	"github.com/LudwingValecillos/VentaCarniceria/config"
)

func TestNewEventPublisher(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		cfg      *config.PubSubConfig
		wantNoop bool
		wantErr  string
	}{
		{name: "nil config is noop", cfg: nil, wantNoop: true},
		{name: "empty provider is noop", cfg: &config.PubSubConfig{}, wantNoop: true},
		{name: "local requires endpoint", cfg: &config.PubSubConfig{Provider: "local"}, wantErr: "local endpoint"},
		{name: "google requires project", cfg: &config.PubSubConfig{Provider: "google", TopicID: "t"}, wantErr: "project ID"},
		{name: "google requires topic", cfg: &config.PubSubConfig{Provider: "google", ProjectID: "p"}, wantErr: "topic ID"},
		{name: "unknown provider", cfg: &config.PubSubConfig{Provider: "kafka"}, wantErr: "unknown pubsub provider"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			publisher, err := NewEventPublisher(PublisherParams{
				Lc:     fxtest.NewLifecycle(t),
				Ctx:    context.Background(),
				Config: &config.Config{PubSub: tt.cfg},
				Logger: slog.New(slog.DiscardHandler),
			})

			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)

				return
			}
			require.NoError(t, err)
			_, isNoop := publisher.(*noopPublisher)
			assert.Equal(t, tt.wantNoop, isNoop)
			require.NoError(t, publisher.Publish(context.Background(), testEvent()))
		})
	}
}

func TestNewEventPublisher_LocalClosesOnStop(t *testing.T) {
	t.Parallel()

	lc := fxtest.NewLifecycle(t)
	publisher, err := NewEventPublisher(PublisherParams{
		Lc:     lc,
		Ctx:    context.Background(),
		Config: &config.Config{PubSub: &config.PubSubConfig{Provider: "local", LocalEndpoint: "http://127.0.0.1:0/push"}},
		Logger: slog.New(slog.DiscardHandler),
	})
	require.NoError(t, err)
	_, isLocal := publisher.(*localHTTPPublisher)
	assert.True(t, isLocal)

	lc.RequireStart().RequireStop()
}
