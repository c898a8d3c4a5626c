package entity

// CartLine is one product's quantity within one owner's cart. The line is
// keyed by (OwnerID, ProductID); ID always equals ProductID so that clients
// can address a line without a separate lookup. Display fields are copied
// from the product at add-time.
type CartLine struct {
	OwnerID       string `json:"ownerId" dynamodbav:"ownerId"`
	ProductID     string `json:"productId" dynamodbav:"productId"`
	ID            string `json:"id" dynamodbav:"id"`
	Name          string `json:"name" dynamodbav:"name"`
	Price         int64  `json:"price" dynamodbav:"price"`
	OriginalPrice int64  `json:"originalPrice,omitempty" dynamodbav:"originalPrice,omitempty"`
	Image         string `json:"image" dynamodbav:"image"`
	Category      string `json:"category" dynamodbav:"category"`
	Quantity      int    `json:"quantity" dynamodbav:"quantity"`
	Size          string `json:"size,omitempty" dynamodbav:"size,omitempty"`
	Color         string `json:"color,omitempty" dynamodbav:"color,omitempty"`
	CreatedAt     int64  `json:"createdAt" dynamodbav:"createdAt"`
	UpdatedAt     int64  `json:"updatedAt" dynamodbav:"updatedAt"`
}

// CartLines is an owner's full cart.
type CartLines []CartLine

// Total is the cart value in minor units: Σ(price × quantity).
// Recomputed on every read, never stored.
func (lines CartLines) Total() int64 {
	var total int64
	for _, line := range lines {
		total += line.Price * int64(line.Quantity)
	}

	return total
}

// Count is the number of units in the cart: Σ(quantity).
func (lines CartLines) Count() int {
	var count int
	for _, line := range lines {
		count += line.Quantity
	}

	return count
}
