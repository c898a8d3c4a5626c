package service

import "context"

// OrderEvent is published after a successful order submission so back-office
// consumers (fulfilment, status advancement) can react. It carries only the
// identifiers a consumer needs to fetch the full record.
type OrderEvent struct {
	OrderID   string `json:"order_id"`
	OwnerID   string `json:"owner_id"`
	Total     int64  `json:"total"`
	ItemCount int    `json:"item_count"`
	CreatedAt int64  `json:"created_at"`
}

// EventPublisher publishes order events. Publishing is best-effort from the
// submission flow's point of view; a failure is logged, never surfaced.
type EventPublisher interface {
	PublishOrderEvent(ctx context.Context, event *OrderEvent) error

	// Close releases any underlying connections.
	Close() error
}
