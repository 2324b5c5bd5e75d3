// Package domain holds the leads domain model.
package domain

import (
	"time"

	"github.com/google/uuid"
)

// QueryType categorizes what a lead is asking about.
type QueryType string

const (
	QueryTypeConsultation  QueryType = "Consultation"
	QueryTypeProduct       QueryType = "Product"
	QueryTypeBusinessHours QueryType = "Business Hours"
	QueryTypeOther         QueryType = "Other"
)

// Lead is a prospective customer's submitted contact record. Leads are
// appended exactly once to the store and are immutable thereafter; no
// update or delete path exists.
type Lead struct {
	ID          uuid.UUID
	Name        string
	Email       string
	QueryType   QueryType
	Message     string
	SubmittedAt time.Time
}
