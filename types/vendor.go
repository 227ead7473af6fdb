package types

// Vendor represents a supplier that products are purchased or rented from.
// Products reference vendors by name only; there is no foreign-key relation.
type Vendor struct {
	// ID is the unique identifier of the vendor.
	ID int `json:"id" db:"id"`

	// Name is the vendor's display name.
	Name string `json:"name" db:"name"`

	// Location is the vendor's city or site.
	Location string `json:"location" db:"location"`

	// Department is the internal department the vendor supplies.
	Department string `json:"department" db:"department"`

	// Email is the vendor's contact address. Vendor emails are unique.
	Email string `json:"email" db:"email"`

	// Phone is the vendor's contact number.
	Phone string `json:"phone" db:"phone"`
}
