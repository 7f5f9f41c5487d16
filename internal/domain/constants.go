package domain

import "time"

const (
	// CacheKeyPrefix namespaces cached task lookups in Redis.
	CacheKeyPrefix = "task:"

	// DefaultCacheTTL bounds how long a cached lookup is served.
	DefaultCacheTTL = 5 * time.Minute

	// DefaultEventsTopic is the Kafka topic task events are written to.
	DefaultEventsTopic = "tasks.events"

	// EventPublishTimeout bounds how long a create waits on event delivery.
	EventPublishTimeout = 3 * time.Second

	// MaxTitleLength caps the title accepted on create.
	MaxTitleLength = 255

	// MaxSearchLength caps the free-text search accepted on list.
	MaxSearchLength = 200
)
