package types

import "time"

// Category types distinguishing how inventory in the category is acquired.
const (
	CategoryPurchased = "Purchased"
	CategoryRented    = "Rented"
)

// ValidCategoryType reports whether value is one of the accepted
// category types.
func ValidCategoryType(value string) bool {
	return value == CategoryPurchased || value == CategoryRented
}

// Category groups products by how they are acquired.
type Category struct {
	// ID is the unique identifier of the category.
	ID int `json:"id" db:"id"`

	// Name is the category's display name. Category names are unique.
	Name string `json:"name" db:"name"`

	// Type is either "Purchased" or "Rented".
	Type string `json:"type" db:"type"`

	// CreatedAt is the timestamp when the category was created.
	CreatedAt time.Time `json:"created_at" db:"created_at"`

	// UpdatedAt is the timestamp of the most recent update to the category.
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}
