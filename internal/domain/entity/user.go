package entity

// Preferences is the per-user preference bag synced alongside the profile.
type Preferences struct {
	Theme         string `json:"theme" dynamodbav:"theme"`
	ReceiveEmails bool   `json:"receiveEmails" dynamodbav:"receiveEmails"`
}

// DefaultPreferences are assigned when a user is first synced.
func DefaultPreferences() Preferences {
	return Preferences{Theme: "system", ReceiveEmails: true}
}

// User is the synced profile of an identity-provider subject, keyed by the
// provider's stable subject id. IsAdmin follows union semantics: once true it
// is never cleared by a sync.
type User struct {
	OwnerID     string      `json:"ownerId" dynamodbav:"ownerId"`
	Email       string      `json:"email" dynamodbav:"email"`
	Name        string      `json:"name" dynamodbav:"name"`
	ImageURL    string      `json:"imageUrl" dynamodbav:"imageUrl"`
	IsAdmin     bool        `json:"isAdmin" dynamodbav:"isAdmin"`
	Preferences Preferences `json:"preferences" dynamodbav:"preferences"`
	CreatedAt   int64       `json:"createdAt" dynamodbav:"createdAt"`
	UpdatedAt   int64       `json:"updatedAt" dynamodbav:"updatedAt"`
}
