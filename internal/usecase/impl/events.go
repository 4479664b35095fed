// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	deliverycontext "madr/internal/delivery/context"
	"madr/internal/domain/entity"
	"madr/internal/domain/service"

	"github.com/google/uuid"
)

type accountPayload struct {
	ID       uuid.UUID `json:"id"`
	Username string    `json:"username"`
	Email    string    `json:"email"`
}

type novelistPayload struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"nome"`
}

type novelistDeletedPayload struct {
	ID      uuid.UUID   `json:"id"`
	BookIDs []uuid.UUID `json:"livros"`
}

type bookPayload struct {
	ID         uuid.UUID `json:"id"`
	Year       int       `json:"ano"`
	Title      string    `json:"titulo"`
	NovelistID uuid.UUID `json:"romancista_id"`
}

func newAccountPayload(a *entity.Account) accountPayload {
	return accountPayload{ID: a.ID, Username: a.Username, Email: a.Email}
}

func newNovelistPayload(n *entity.Novelist) novelistPayload {
	return novelistPayload{ID: n.ID, Name: n.Name}
}

func newBookPayload(b *entity.Book) bookPayload {
	return bookPayload{ID: b.ID, Year: b.Year, Title: b.Title, NovelistID: b.NovelistID}
}

// publishEvent emits a domain event for a committed change. Failures are
// logged and never returned: the write has already been committed.
func publishEvent(
	ctx context.Context,
	publisher service.EventPublisher,
	logger *slog.Logger,
	eventType service.EventType,
	aggregateID uuid.UUID,
	payload any,
) {
	data, err := json.Marshal(payload)
	if err != nil {
		logger.Error("Failed to encode event payload", slog.String("type", string(eventType)), slog.Any("error", err))

		return
	}

	event := &service.DomainEvent{
		RequestID:   deliverycontext.RequestIDFromContext(ctx),
		Type:        eventType,
		AggregateID: aggregateID.String(),
		OccurredAt:  time.Now().UTC(),
		Payload:     data,
	}

	if err := publisher.Publish(ctx, event); err != nil {
		logger.Warn("Failed to publish domain event",
			slog.String("type", string(eventType)),
			slog.String("aggregate_id", event.AggregateID),
			slog.Any("error", err),
		)
	}
}
