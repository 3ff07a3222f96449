package messaging

import (
	"context"
	"log/slog"

	"github.com/loanscope/loanscope/internal/domain/event"
)

// LogEventPublisher logs events instead of sending them anywhere, for local
// development and the seeder where no broker is running.
type LogEventPublisher struct {
	logger *slog.Logger
}

// NewLogEventPublisher creates a log-only publisher.
func NewLogEventPublisher(logger *slog.Logger) *LogEventPublisher {
	return &LogEventPublisher{logger: logger}
}

// Publish logs each event.
func (p *LogEventPublisher) Publish(_ context.Context, events ...event.DomainEvent) error {
	for _, evt := range events {
		p.logger.Info("domain event",
			"event_type", evt.EventType(),
			"aggregate_id", evt.AggregateID(),
			"aggregate_type", evt.AggregateType(),
		)
	}
	return nil
}
