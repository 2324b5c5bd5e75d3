package repository

import (
	"context"

	"tcmshop_backend/internal/leads/domain"
)

// LeadsRepository is the append-only lead store.
type LeadsRepository interface {
	// Append writes exactly one record for the lead. Records are never
	// updated or deleted.
	Append(ctx context.Context, lead domain.Lead) error
	// List returns all stored leads in append order.
	List(ctx context.Context) ([]domain.Lead, error)
}
