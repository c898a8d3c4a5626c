package service

import (
	"context"

	"streesilk/internal/domain/entity"
)

// Mailer sends transactional notification email. Delivery is best-effort
// everywhere it is used: a failed send is logged by the caller and never
// surfaced as a request error.
type Mailer interface {
	// SendOrderNotification notifies the shop inbox about a new order.
	SendOrderNotification(ctx context.Context, order *entity.Order) error

	// SendContactNotification forwards a contact-form message to the shop inbox.
	SendContactNotification(ctx context.Context, message *entity.ContactMessage) error
}
