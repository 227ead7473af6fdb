package types

// Product represents a tracked inventory item.
//
// Vendor and Category are denormalized name strings rather than foreign keys:
// renaming or deleting a vendor does not cascade to products that mention it.
// Quantity, Price and the date fields are carried as strings end to end; the
// dashboard tolerates non-numeric legacy prices by skipping them.
type Product struct {
	// ID is the unique identifier of the product.
	ID int `json:"id" db:"id"`

	// Name is the product's display name.
	Name string `json:"name" db:"name"`

	// Description is optional free-form text about the product.
	Description string `json:"description,omitempty" db:"description"`

	// Vendor is the name of the vendor the product was acquired from.
	Vendor string `json:"vendor" db:"vendor"`

	// Category is the name of the category the product belongs to.
	Category string `json:"category" db:"category"`

	// Quantity is the number of units held.
	Quantity string `json:"quantity" db:"quantity"`

	// Price is the per-unit price. Stored as entered; values that do not
	// parse as positive numbers are excluded from dashboard totals.
	Price string `json:"price" db:"price"`

	// SerialBox is an optional comma-joined list of serial numbers.
	SerialBox string `json:"serialBox,omitempty" db:"serial_box"`

	// PurchaseDate is the acquisition date in YYYY-MM-DD form.
	PurchaseDate string `json:"purchaseDate" db:"purchase_date"`

	// WarrantyPeriod is the warranty length in months.
	WarrantyPeriod string `json:"warrantyPeriod" db:"warranty_period"`

	// ExpiryDate is PurchaseDate plus WarrantyPeriod months. It is derived
	// server-side on every create and update; client-supplied values are
	// overridden.
	ExpiryDate string `json:"expiryDate" db:"expiry_date"`
}
