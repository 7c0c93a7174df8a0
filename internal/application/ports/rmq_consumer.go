package ports

import "context"

// RMQConsumer drains the user event exchange on the service's own side,
// so registration and login events are observable without an external client.
type RMQConsumer interface {
	Connect(dsn string) error
	Init() error
	DeliveryWorker(ctx context.Context)
}
