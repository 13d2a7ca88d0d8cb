package membership

import (
	"context"
	"time"
)

// Repository defines the read-only query surface over persisted membership
// orders.
type Repository interface {
	// FindOrderLineIDsByProduct resolves all internal order-line identifiers
	// associated with a product. A product may have accumulated multiple
	// historical order-line rows.
	FindOrderLineIDsByProduct(ctx context.Context, productID string) ([]int64, error)
	// FindCompletedOrdersInRange returns COMPLETED orders referencing the given
	// order lines whose creation time falls within [start, end], in the store's
	// return order.
	FindCompletedOrdersInRange(ctx context.Context, lineIDs []int64, start, end time.Time) ([]*Order, error)
	// FindCompletedOrdersAfter returns COMPLETED orders referencing the given
	// order lines created strictly after the given time.
	FindCompletedOrdersAfter(ctx context.Context, lineIDs []int64, after time.Time) ([]*Order, error)
}
