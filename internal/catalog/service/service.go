// Package service implements catalog queries, including the three-tier
// product lookup used by the chat assistant.
package service

import (
	"fmt"
	"strings"

	"tcmshop_backend/internal/catalog/repository"
	"tcmshop_backend/platform/apperr"
	"tcmshop_backend/platform/logger"
)

// Service exposes read operations over the product catalog.
type Service struct {
	repo repository.Repository
	log  *logger.Logger
}

// New creates a new catalog service.
func New(repo repository.Repository, log *logger.Logger) *Service {
	return &Service{repo: repo, log: log}
}

// List returns every product in catalog order.
func (s *Service) List() []repository.Product {
	return s.repo.All()
}

// Names returns the product names in catalog order.
func (s *Service) Names() []string {
	return s.repo.Names()
}

// GetByName returns the product whose name matches case-insensitively.
func (s *Service) GetByName(name string) (repository.Product, error) {
	for _, p := range s.repo.All() {
		if strings.EqualFold(p.Name, name) {
			return p, nil
		}
	}
	return repository.Product{}, apperr.NotFound("Product not found")
}

// Lookup resolves a free-text query against the catalog and formats a reply.
// Resolution degrades through three tiers and never comes back empty:
//
//  1. exact name match: the first product whose name appears in the query
//     wins, and only that product is shown;
//  2. indication keywords: the query is split on commas (with " and "
//     treated as a comma first) and every product whose indications contain
//     any token is listed, in catalog order;
//  3. full listing: all products, prefixed with a no-perfect-match notice.
func (s *Service) Lookup(query string) string {
	lower := strings.ToLower(query)

	// Exact product name match first
	for _, p := range s.repo.All() {
		if strings.Contains(lower, strings.ToLower(p.Name)) {
			return formatSingleProduct(p)
		}
	}

	// Keyword matching fallback
	keywords := splitKeywords(query)
	var matching []repository.Product
	for _, p := range s.repo.All() {
		if matchesAnyKeyword(p, keywords) {
			matching = append(matching, p)
		}
	}

	if len(matching) > 0 {
		return formatMatchingProducts(matching)
	}

	// Final fallback: show all
	return formatFullCatalog(s.repo.All())
}

// splitKeywords tokenizes a query on commas, treating " and " as an
// additional delimiter, then trims and lower-cases each token.
func splitKeywords(query string) []string {
	normalized := strings.ReplaceAll(query, " and ", ",")
	parts := strings.Split(normalized, ",")
	keywords := make([]string, 0, len(parts))
	for _, part := range parts {
		keywords = append(keywords, strings.ToLower(strings.TrimSpace(part)))
	}
	return keywords
}

func matchesAnyKeyword(p repository.Product, keywords []string) bool {
	usedFor := strings.ToLower(p.UsedFor)
	for _, k := range keywords {
		if k != "" && strings.Contains(usedFor, k) {
			return true
		}
	}
	return false
}

func formatSingleProduct(p repository.Product) string {
	return fmt.Sprintf(
		"**%s**\n\n%s\n\nUsed For: %s\n\nLet me know if you'd like to book a consultation or hear more!",
		p.Name, p.Description, p.UsedFor,
	)
}

func formatMatchingProducts(products []repository.Product) string {
	var b strings.Builder
	b.WriteString("Here are products that may help:\n\n")
	for i, p := range products {
		if i > 0 {
			b.WriteString("\n")
		}
		fmt.Fprintf(&b, "- **%s**: %s (Used for: %s)", p.Name, p.Description, p.UsedFor)
	}
	return b.String()
}

func formatFullCatalog(products []repository.Product) string {
	var b strings.Builder
	b.WriteString("Sorry, there was no perfect match. Here's our full product list:\n\n")
	for i, p := range products {
		if i > 0 {
			b.WriteString("\n")
		}
		fmt.Fprintf(&b, "- **%s**: %s", p.Name, p.UsedFor)
	}
	return b.String()
}
