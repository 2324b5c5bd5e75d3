package repository

// staticRepository serves the fixed product list from memory.
type staticRepository struct {
	products []Product
	names    []string
}

// New creates a Repository over the shop's static product catalog.
func New() Repository {
	return newWithProducts(catalogProducts)
}

func newWithProducts(products []Product) Repository {
	names := make([]string, len(products))
	for i, p := range products {
		names[i] = p.Name
	}
	return &staticRepository{products: products, names: names}
}

// All returns every product in catalog order.
// Callers receive a copy; the catalog itself is immutable.
func (r *staticRepository) All() []Product {
	return append([]Product(nil), r.products...)
}

// Names returns the product names in catalog order.
func (r *staticRepository) Names() []string {
	return append([]string(nil), r.names...)
}
