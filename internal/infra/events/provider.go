// Package events publishes domain events after committed account and catalog writes.
package events

import (
	"context"
	"log/slog"

	"madr/config"
	"madr/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// noopPublisher is a no-op implementation when event publishing is disabled
type noopPublisher struct {
	logger *slog.Logger
}

// NewNoopPublisher returns a publisher that only records events at debug level.
func NewNoopPublisher(logger *slog.Logger) service.EventPublisher {
	return &noopPublisher{logger: logger}
}

func (p *noopPublisher) Publish(ctx context.Context, event *service.DomainEvent) error {
	p.logger.DebugContext(ctx, "[NoopEvents] Event publishing disabled, skipping",
		slog.String("type", string(event.Type)),
		slog.String("aggregate_id", event.AggregateID),
	)

	return nil
}

func (p *noopPublisher) Close() error {
	return nil
}

// PublisherParams holds dependencies for EventPublisher, injected by Fx
type PublisherParams struct {
	fx.In

	Lc     fx.Lifecycle
	Config *config.Config
	Logger *slog.Logger
}

// NewEventPublisher creates an EventPublisher based on configuration
func NewEventPublisher(params PublisherParams) (service.EventPublisher, error) {
	cfg := params.Config.Events
	logger := params.Logger

	if cfg == nil || !cfg.Enabled {
		logger.Info("Events not enabled, using no-op publisher")

		return NewNoopPublisher(logger), nil
	}

	if len(cfg.Brokers) == 0 {
		return nil, errors.New("at least one broker is required when events are enabled")
	}
	if cfg.Topic == "" {
		return nil, errors.New("topic is required when events are enabled")
	}

	logger.Info("Using Kafka event publisher",
		slog.Any("brokers", cfg.Brokers),
		slog.String("topic", cfg.Topic),
	)

	publisher := NewKafkaPublisher(cfg, logger)

	// Register lifecycle hook to flush and close the writer on shutdown
	params.Lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			logger.Info("Closing EventPublisher")

			return publisher.Close()
		},
	})

	return publisher, nil
}

// Module provides the events FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewEventPublisher),
)
