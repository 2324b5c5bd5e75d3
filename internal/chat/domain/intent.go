// Package domain holds the chat domain model: intents, turns, and the
// keyword classifier that routes queries to fulfillment.
package domain

import "strings"

// Intent is the classified category of a user query. It drives which
// fulfillment function runs.
type Intent string

const (
	// IntentProduct routes to the catalog lookup.
	IntentProduct Intent = "product"
	// IntentConsultation routes to the booking-link reply.
	IntentConsultation Intent = "consultation"
	// IntentGeneral routes to the business-info facts.
	IntentGeneral Intent = "general"
	// IntentFallback is the default when nothing else matches.
	IntentFallback Intent = "fallback"
)

// productKeywords are the terms that mark a query as product-seeking.
// They are checked before the general keywords: product terms are more
// specific, so a query mentioning both classifies as product.
var productKeywords = []string{
	"product", "recommend", "remedy", "what do you have for",
	"tell me about", "help with", "dampness", "insomnia",
	"cold hands", "fatigue", "circulation", "tea", "soak",
	"patch", "soup", "herbal",
}

var consultationKeywords = []string{
	"consultation", "book", "schedule", "appointment",
}

var generalKeywords = []string{
	"hours", "hour", "location", "address", "shipping", "deliver",
	"business", "contact", "phone", "email",
}

// Classifier maps free text to an Intent by substring membership tests.
// It carries the lower-cased catalog product names so a query naming a
// product classifies as product even without a generic product keyword.
type Classifier struct {
	productNames []string
}

// NewClassifier creates a classifier over the given catalog product names.
func NewClassifier(productNames []string) *Classifier {
	lowered := make([]string, len(productNames))
	for i, name := range productNames {
		lowered[i] = strings.ToLower(name)
	}
	return &Classifier{productNames: lowered}
}

// Classify returns exactly one Intent for any input. It is a total pure
// function: no I/O, no side effects, and the priority order
// product > consultation > general > fallback is fixed.
func (c *Classifier) Classify(query string) Intent {
	lower := strings.ToLower(query)

	if containsAny(lower, productKeywords) || containsAny(lower, c.productNames) {
		return IntentProduct
	}
	if containsAny(lower, consultationKeywords) {
		return IntentConsultation
	}
	if containsAny(lower, generalKeywords) {
		return IntentGeneral
	}
	return IntentFallback
}

func containsAny(s string, substrings []string) bool {
	for _, sub := range substrings {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
