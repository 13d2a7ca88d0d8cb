package notify

import "context"

// Client publishes a run report to the configured notification channel.
type Client interface {
	Publish(ctx context.Context, text string) error
}
