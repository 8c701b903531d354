package repository

import (
	"context"

	"github.com/akulagin/shopapi/internal/model"
	"github.com/gofrs/uuid/v5"
)

// OrderRepository persists orders and their line items.
type OrderRepository interface {
	// Create inserts the order header and every item as one atomic unit;
	// a partially written order is never visible.
	Create(ctx context.Context, o *model.Order) error
	// ListByUser returns the user's orders newest-first, each with its items
	// in insertion order. An empty slice means no orders, not an error.
	ListByUser(ctx context.Context, userID uuid.UUID) ([]model.Order, error)
}
