// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

// Product is a single catalog entry. Prices are stored as integers in
// minor currency units (paise) so that totals never accumulate
// floating-point drift.
type Product struct {
	ID            string   `json:"id" dynamodbav:"id"`
	Name          string   `json:"name" dynamodbav:"name"`
	Description   string   `json:"description,omitempty" dynamodbav:"description,omitempty"`
	Price         int64    `json:"price" dynamodbav:"price"`
	OriginalPrice int64    `json:"originalPrice,omitempty" dynamodbav:"originalPrice,omitempty"`
	Image         string   `json:"image" dynamodbav:"image"`
	Images        []string `json:"images" dynamodbav:"images"`
	Category      string   `json:"category" dynamodbav:"category"`
	Sizes         []string `json:"sizes,omitempty" dynamodbav:"sizes,omitempty"`
	Colors        []string `json:"colors,omitempty" dynamodbav:"colors,omitempty"`
	IsNew         bool     `json:"isNew" dynamodbav:"isNew"`
	IsSale        bool     `json:"isSale" dynamodbav:"isSale"`
	IsActive      bool     `json:"isActive" dynamodbav:"isActive"`
	Stock         int      `json:"stock,omitempty" dynamodbav:"stock,omitempty"`
	CreatedAt     int64    `json:"createdAt" dynamodbav:"createdAt"`
	UpdatedAt     int64    `json:"updatedAt" dynamodbav:"updatedAt"`
}

// CoverImage returns the canonical cover image: the first entry of the
// image list, falling back to the legacy single-image field.
func (p *Product) CoverImage() string {
	if len(p.Images) > 0 {
		return p.Images[0]
	}

	return p.Image
}
