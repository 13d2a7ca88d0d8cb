package entitlement

import (
	"context"

	"membership_deactivation_bot/internal/domain/membership"
)

// Client deactivates a customer's access with the external entitlement
// provider. This decouples the reconciliation logic from the concrete webhook
// transport.
type Client interface {
	Deactivate(ctx context.Context, candidate membership.Candidate) error
}
