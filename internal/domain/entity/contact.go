package entity

// ContactMessage statuses. New messages start as "new"; the admin console
// may flip them later.
const (
	ContactStatusNew = "new"
)

// ContactMessage is a support inquiry submitted through the contact form.
// OwnerID is set only when the sender was signed in at submission time.
type ContactMessage struct {
	ID        string `json:"id" dynamodbav:"id"`
	Name      string `json:"name" dynamodbav:"name"`
	Email     string `json:"email" dynamodbav:"email"`
	Subject   string `json:"subject" dynamodbav:"subject"`
	Message   string `json:"message" dynamodbav:"message"`
	OwnerID   string `json:"ownerId,omitempty" dynamodbav:"ownerId,omitempty"`
	Status    string `json:"status" dynamodbav:"status"`
	CreatedAt int64  `json:"createdAt" dynamodbav:"createdAt"`
}
