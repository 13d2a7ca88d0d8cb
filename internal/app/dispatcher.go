package app

import (
	"context"
	"sync"

	"membership_deactivation_bot/internal/domain/entitlement"
	"membership_deactivation_bot/internal/domain/membership"

	"github.com/sirupsen/logrus"
)

// DeactivationDispatcher fans out deactivation calls to the entitlement
// provider and collects per-candidate outcomes.
type DeactivationDispatcher struct {
	client entitlement.Client
	logger *logrus.Logger
}

func NewDeactivationDispatcher(client entitlement.Client, logger *logrus.Logger) *DeactivationDispatcher {
	return &DeactivationDispatcher{client: client, logger: logger}
}

// Dispatch issues one deactivation call per candidate. All calls start
// concurrently and the dispatcher waits for every one of them to settle; a
// failed call never cancels or blocks another, and nothing is retried.
// outcomes[i] always pairs with candidates[i]: each goroutine writes only its
// own slot, so no locking is needed.
func (d *DeactivationDispatcher) Dispatch(ctx context.Context, candidates []membership.Candidate) []membership.Outcome {
	outcomes := make([]membership.Outcome, len(candidates))

	var wg sync.WaitGroup
	for i, c := range candidates {
		wg.Add(1)
		go func(i int, c membership.Candidate) {
			defer wg.Done()
			err := d.client.Deactivate(ctx, c)
			if err != nil {
				d.logger.WithError(err).WithField("email", c.Email).Warn("Deactivation call failed")
			}
			outcomes[i] = membership.Outcome{Candidate: c, Err: err}
		}(i, c)
	}
	wg.Wait()

	return outcomes
}
