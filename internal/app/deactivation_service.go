package app

import (
	"context"
	"fmt"
	"time"

	"membership_deactivation_bot/internal/domain/membership"
	"membership_deactivation_bot/internal/domain/notify"

	"github.com/sirupsen/logrus"
)

// DeactivationService runs a single membership reconciliation pass: compute
// the renewal window, resolve candidates, dispatch deactivations and publish
// the resulting report.
type DeactivationService interface {
	Run(ctx context.Context, now time.Time) (*membership.RunReport, error)
}

// DeactivationServiceImpl implements DeactivationService.
type DeactivationServiceImpl struct {
	orderRepo  membership.Repository
	dispatcher *DeactivationDispatcher
	notifier   notify.Client
	logger     *logrus.Logger
	productID  string
	graceDays  int
}

func NewDeactivationService(
	orderRepo membership.Repository,
	dispatcher *DeactivationDispatcher,
	notifier notify.Client,
	logger *logrus.Logger,
	productID string,
	graceDays int,
) *DeactivationServiceImpl {
	return &DeactivationServiceImpl{
		orderRepo:  orderRepo,
		dispatcher: dispatcher,
		notifier:   notifier,
		logger:     logger,
		productID:  productID,
		graceDays:  graceDays,
	}
}

// Run executes one reconciliation pass. A candidate resolution failure aborts
// the run before any deactivation call is made; a failure notice is still
// published so the run never dies silently. Deactivation failures never abort
// the run; they appear in the report instead.
func (s *DeactivationServiceImpl) Run(ctx context.Context, now time.Time) (*membership.RunReport, error) {
	window := membership.ComputeRenewalWindow(now, s.graceDays)
	s.logger.WithFields(logrus.Fields{
		"window_start": window.Start.Format(time.RFC3339),
		"window_end":   window.End.Format(time.RFC3339),
		"product_id":   s.productID,
	}).Info("Starting membership deactivation run")

	candidates, err := s.resolveCandidates(ctx, window)
	if err != nil {
		s.logger.WithError(err).Error("Candidate resolution failed; aborting run")
		s.publish(ctx, fmt.Sprintf("Membership deactivation run for %s failed before dispatch: %v", window.Label(), err))
		return nil, err
	}
	s.logger.WithField("candidates", len(candidates)).Info("Candidate resolution complete")

	outcomes := s.dispatcher.Dispatch(ctx, candidates)

	report := membership.BuildRunReport(window, outcomes)
	s.logger.WithFields(logrus.Fields{
		"succeeded": len(report.Succeeded),
		"failed":    len(report.Failed),
	}).Info("Membership deactivation run complete")

	// A report is published even when there was nothing to deactivate.
	s.publish(ctx, report.Message())
	return report, nil
}

// resolveCandidates fetches in-window orders and excludes customers whose
// email appears on any COMPLETED order created strictly after the window end.
// Both queries must complete before dispatch, since the exclusion set depends
// on the renewal query. Query failures propagate; there is no retry.
func (s *DeactivationServiceImpl) resolveCandidates(ctx context.Context, window membership.RenewalWindow) ([]membership.Candidate, error) {
	lineIDs, err := s.orderRepo.FindOrderLineIDsByProduct(ctx, s.productID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve order lines for product %s: %w", s.productID, err)
	}
	if len(lineIDs) == 0 {
		s.logger.WithField("product_id", s.productID).Warn("No order lines found for membership product")
		return nil, nil
	}

	inWindow, err := s.orderRepo.FindCompletedOrdersInRange(ctx, lineIDs, window.Start, window.End)
	if err != nil {
		return nil, fmt.Errorf("failed to query in-window orders: %w", err)
	}
	renewals, err := s.orderRepo.FindCompletedOrdersAfter(ctx, lineIDs, window.End)
	if err != nil {
		return nil, fmt.Errorf("failed to query renewal orders: %w", err)
	}

	renewed := make(map[string]struct{}, len(renewals))
	for _, o := range renewals {
		renewed[o.CustomerEmail] = struct{}{}
	}

	// Exclusion is by email identity, not order id: a customer who renewed
	// under the same email is never deactivated, regardless of how many
	// in-window orders they have.
	candidates := make([]membership.Candidate, 0, len(inWindow))
	for _, o := range inWindow {
		if _, ok := renewed[o.CustomerEmail]; ok {
			s.logger.WithField("email", o.CustomerEmail).Info("Customer renewed after window; excluded from deactivation")
			continue
		}
		candidates = append(candidates, membership.Candidate{
			Name:  o.CustomerName(),
			Email: o.CustomerEmail,
		})
	}
	return candidates, nil
}

// publish sends text to the notification channel. Delivery failures are
// logged, not returned: the report was already computed and the triggering
// caller still receives it.
func (s *DeactivationServiceImpl) publish(ctx context.Context, text string) {
	if err := s.notifier.Publish(ctx, text); err != nil {
		s.logger.WithError(err).Error("Failed to publish run report to notification channel")
	}
}
