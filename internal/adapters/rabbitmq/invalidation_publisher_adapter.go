package rabbitmq

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"estate-service/internal/constants"
	"estate-service/internal/core/domain"
	"estate-service/pkg/rabbitmq/rabbitmq_common"
	"estate-service/pkg/rabbitmq/rabbitmq_producer"

	amqp "github.com/rabbitmq/amqp091-go"
)

// propertiesChangedMessage is the wire form of the invalidation event. It
// carries no record payload; consumers refetch from storage.
type propertiesChangedMessage struct {
	Event      string    `json:"event"`
	Change     string    `json:"change"`
	PropertyID string    `json:"propertyId"`
	OccurredAt time.Time `json:"occurredAt"`
}

// InvalidationPublisherAdapter implements InvalidationPublisherPort over
// the shared events exchange.
type InvalidationPublisherAdapter struct {
	publisher *rabbitmq_producer.Publisher
}

func NewInvalidationPublisherAdapter(connManager *rabbitmq_common.ConnectionManager, url string, logger rabbitmq_common.Logger) (*InvalidationPublisherAdapter, error) {
	publisher, err := rabbitmq_producer.NewPublisher(rabbitmq_producer.PublisherConfig{
		Config:                   rabbitmq_common.Config{URL: url},
		ExchangeName:             constants.EventsExchange,
		ExchangeType:             "direct",
		DurableExchange:          true,
		DeclareExchangeIfMissing: true,
		Logger:                   logger,
	}, connManager)
	if err != nil {
		return nil, fmt.Errorf("failed to create events publisher: %w", err)
	}
	return &InvalidationPublisherAdapter{publisher: publisher}, nil
}

func (a *InvalidationPublisherAdapter) PublishPropertiesChanged(ctx context.Context, event domain.PropertiesChangedEvent) error {
	body, err := json.Marshal(propertiesChangedMessage{
		Event:      "PropertiesChanged",
		Change:     string(event.Change),
		PropertyID: event.PropertyID.String(),
		OccurredAt: event.OccurredAt,
	})
	if err != nil {
		return fmt.Errorf("failed to marshal properties-changed event: %w", err)
	}

	return a.publisher.Publish(ctx, constants.RoutingKeyPropertiesChanged, amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Transient,
		Timestamp:    event.OccurredAt,
		Body:         body,
	})
}

func (a *InvalidationPublisherAdapter) Close() error {
	return a.publisher.Close()
}
