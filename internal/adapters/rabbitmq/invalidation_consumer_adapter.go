package rabbitmq

import (
	"context"
	"encoding/json"
	"fmt"

	"estate-service/internal/constants"
	"estate-service/internal/core/port"
	"estate-service/pkg/rabbitmq/rabbitmq_common"
	"estate-service/pkg/rabbitmq/rabbitmq_consumer"

	amqp "github.com/rabbitmq/amqp091-go"
)

// InvalidationConsumerAdapter listens for PropertiesChanged events and
// clears the local listing cache. Each instance binds its own exclusive
// server-named queue, so every replica drops its cache independently.
type InvalidationConsumerAdapter struct {
	consumer *rabbitmq_consumer.Consumer
	cache    port.ListingCachePort
	logger   port.LoggerPort
}

func NewInvalidationConsumerAdapter(
	connManager *rabbitmq_common.ConnectionManager,
	url string,
	cache port.ListingCachePort,
	logger port.LoggerPort,
) (*InvalidationConsumerAdapter, error) {
	if cache == nil {
		return nil, fmt.Errorf("listing cache cannot be nil")
	}

	consumer, err := rabbitmq_consumer.NewConsumer(rabbitmq_consumer.ConsumerConfig{
		Config: rabbitmq_common.Config{URL: url},

		QueueName:       "", // server-named, one per instance
		DeclareQueue:    true,
		ExclusiveQueue:  true,
		AutoDeleteQueue: true,

		ExchangeNameForBind:    constants.EventsExchange,
		DeclareExchangeForBind: true,
		ExchangeTypeForBind:    "direct",
		DurableExchangeForBind: true,

		RoutingKeyForBind: constants.RoutingKeyPropertiesChanged,

		ConsumerTag: constants.InvalidationConsumerTag,

		Logger: NewLoggerBridge(logger),
	}, connManager)
	if err != nil {
		return nil, fmt.Errorf("failed to create invalidation consumer: %w", err)
	}

	return &InvalidationConsumerAdapter{
		consumer: consumer,
		cache:    cache,
		logger:   logger,
	}, nil
}

// Start blocks consuming invalidation events until the context ends.
func (a *InvalidationConsumerAdapter) Start(ctx context.Context) error {
	return a.consumer.Start(ctx, a.handle)
}

func (a *InvalidationConsumerAdapter) handle(ctx context.Context, d amqp.Delivery) error {
	var msg propertiesChangedMessage
	if err := json.Unmarshal(d.Body, &msg); err != nil {
		a.logger.Warn("Dropping undecodable invalidation message", port.Fields{
			"error": err.Error(),
		})
		// Acked anyway: a malformed event can never become parseable.
		return nil
	}

	a.cache.Clear()
	a.logger.Debug("Listing cache cleared", port.Fields{
		"change":      msg.Change,
		"property_id": msg.PropertyID,
	})
	return nil
}

func (a *InvalidationConsumerAdapter) Close() error {
	return a.consumer.Close()
}
