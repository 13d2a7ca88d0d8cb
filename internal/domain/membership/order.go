package membership

import (
	"database/sql"
	"time"
)

// OrderStatus mirrors the status column of the external order store.
type OrderStatus string

const (
	OrderStatusCompleted OrderStatus = "COMPLETED"
	OrderStatusPending   OrderStatus = "PENDING"
	OrderStatusRefunded  OrderStatus = "REFUNDED"
)

// Order is a read-only snapshot of a persisted membership order. The store is
// owned by the shop system; this service never writes to it.
type Order struct {
	ID                int64
	CustomerEmail     string
	CustomerFirstName string
	CustomerLastName  sql.NullString // optional in the store
	Status            OrderStatus
	CreatedAt         time.Time
}

// CustomerName joins the customer's first and last name for display.
func (o *Order) CustomerName() string {
	if o.CustomerLastName.Valid && o.CustomerLastName.String != "" {
		return o.CustomerFirstName + " " + o.CustomerLastName.String
	}
	return o.CustomerFirstName
}

// Candidate is a customer whose membership is due for deactivation this run.
// Derived from an in-window order, discarded after dispatch.
type Candidate struct {
	Name  string
	Email string
}
