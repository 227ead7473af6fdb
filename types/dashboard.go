package types

// DashboardSummary aggregates counts across the resource collections for
// display on the dashboard page.
type DashboardSummary struct {
	// TotalVendors is the number of vendor records.
	TotalVendors int `json:"totalVendors"`

	// TotalCategories is the number of category records.
	TotalCategories int `json:"totalCategories"`

	// TotalProducts is the number of product records.
	TotalProducts int `json:"totalProducts"`

	// TotalItemPrice is the sum of all product prices that parse as
	// positive numbers. Non-numeric and non-positive prices do not
	// contribute.
	TotalItemPrice float64 `json:"totalItemPrice"`

	// ActiveUsers is the number of registered user accounts.
	ActiveUsers int `json:"activeUsers"`
}
