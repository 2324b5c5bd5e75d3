package transport

import "tcmshop_backend/internal/catalog/repository"

// ProductResponse is the JSON shape of a catalog product.
type ProductResponse struct {
	Name        string `json:"name"`
	UsedFor     string `json:"usedFor"`
	Description string `json:"description"`
}

// ToProductResponse maps a catalog product to its response shape.
func ToProductResponse(p repository.Product) ProductResponse {
	return ProductResponse{
		Name:        p.Name,
		UsedFor:     p.UsedFor,
		Description: p.Description,
	}
}

// ToProductResponses maps a product slice preserving catalog order.
func ToProductResponses(products []repository.Product) []ProductResponse {
	out := make([]ProductResponse, 0, len(products))
	for _, p := range products {
		out = append(out, ToProductResponse(p))
	}
	return out
}
