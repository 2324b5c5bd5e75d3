package repository

// Product is a sellable remedy with descriptive and indication metadata.
// The catalog is loaded once at startup and never mutated.
type Product struct {
	// Name uniquely identifies the product.
	Name string
	// UsedFor is the comma-separated list of indications the product treats.
	UsedFor string
	// Description is the customer-facing product description.
	Description string
}

// Repository provides read access to the product catalog.
// Order matters: lookups resolve ties by catalog order.
type Repository interface {
	// All returns every product in catalog order.
	All() []Product
	// Names returns the product names in catalog order.
	Names() []string
}
