package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"membership_deactivation_bot/internal/domain/membership"

	"github.com/lib/pq"
)

// PostgresOrderRepository implements membership.Repository over the shop's
// order schema. All queries are read-only.
type PostgresOrderRepository struct {
	db *sql.DB
}

func NewPostgresOrderRepository(db *sql.DB) *PostgresOrderRepository {
	return &PostgresOrderRepository{db: db}
}

func (r *PostgresOrderRepository) FindOrderLineIDsByProduct(ctx context.Context, productID string) ([]int64, error) {
	query := `SELECT id FROM order_lines WHERE product_id = $1 ORDER BY id`

	rows, err := r.db.QueryContext(ctx, query, productID)
	if err != nil {
		return nil, fmt.Errorf("error querying order lines for product %s: %w", productID, err)
	}
	defer rows.Close()

	ids := make([]int64, 0)
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("error scanning order line id: %w", err)
		}
		ids = append(ids, id)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating order line ids: %w", err)
	}
	return ids, nil
}

func (r *PostgresOrderRepository) FindCompletedOrdersInRange(ctx context.Context, lineIDs []int64, start, end time.Time) ([]*membership.Order, error) {
	query := `SELECT id, customer_email, customer_first_name, customer_last_name, status, created_at
               FROM orders
               WHERE status = $1 AND order_line_id = ANY($2) AND created_at BETWEEN $3 AND $4
               ORDER BY created_at, id`

	return r.queryOrders(ctx, query, membership.OrderStatusCompleted, pq.Array(lineIDs), start, end)
}

func (r *PostgresOrderRepository) FindCompletedOrdersAfter(ctx context.Context, lineIDs []int64, after time.Time) ([]*membership.Order, error) {
	query := `SELECT id, customer_email, customer_first_name, customer_last_name, status, created_at
               FROM orders
               WHERE status = $1 AND order_line_id = ANY($2) AND created_at > $3
               ORDER BY created_at, id`

	return r.queryOrders(ctx, query, membership.OrderStatusCompleted, pq.Array(lineIDs), after)
}

func (r *PostgresOrderRepository) queryOrders(ctx context.Context, query string, args ...any) ([]*membership.Order, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("error querying orders: %w", err)
	}
	defer rows.Close()

	orders := make([]*membership.Order, 0)
	for rows.Next() {
		o := &membership.Order{}
		if err := rows.Scan(&o.ID, &o.CustomerEmail, &o.CustomerFirstName, &o.CustomerLastName, &o.Status, &o.CreatedAt); err != nil {
			return nil, fmt.Errorf("error scanning order: %w", err)
		}
		orders = append(orders, o)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating orders: %w", err)
	}
	return orders, nil
}
