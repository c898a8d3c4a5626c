package entity

// Order statuses. Only "pending" is assigned by this service; later
// transitions belong to back-office tooling.
const (
	OrderStatusPending = "pending"
)

// DefaultPaymentMode is the only payment mode the storefront currently offers.
const DefaultPaymentMode = "Cash on Delivery"

// OrderCustomer is a snapshot of the purchaser's profile taken at submission
// time. It is never re-resolved against the identity provider or the Users
// table, so past orders stay historically accurate.
type OrderCustomer struct {
	ID    string `json:"id" dynamodbav:"id"`
	Name  string `json:"name" dynamodbav:"name"`
	Email string `json:"email" dynamodbav:"email"`
}

// Order is an immutable purchase record. Items are snapshot copies of cart
// lines, not live references to products.
type Order struct {
	ID          string        `json:"id" dynamodbav:"id"`
	OwnerID     string        `json:"ownerId" dynamodbav:"ownerId"`
	Customer    OrderCustomer `json:"customer" dynamodbav:"customer"`
	Items       CartLines     `json:"items" dynamodbav:"items"`
	Total       int64         `json:"total" dynamodbav:"total"`
	Status      string        `json:"status" dynamodbav:"status"`
	PaymentMode string        `json:"paymentMode" dynamodbav:"paymentMode"`
	CreatedAt   int64         `json:"createdAt" dynamodbav:"createdAt"`
}
