package constants

// AMQP topology for catalog invalidation events.
const (
	EventsExchange = "estate_events"

	RoutingKeyPropertiesChanged = "properties.changed"

	// Consumers bind server-named exclusive queues, one per instance, so
	// every instance sees every invalidation.
	InvalidationConsumerTag = "listing-cache-invalidator"
)
