package scheduler

import (
	"context"
	"time"

	"membership_deactivation_bot/internal/app"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
)

// jobTimeout bounds a single scheduled run. The fan-out itself has no
// internal timeout; this only protects the cron slot from a wedged transport.
const jobTimeout = 10 * time.Minute

// ReconciliationScheduler triggers the membership deactivation run on a cron
// schedule, alongside the authenticated HTTP trigger.
type ReconciliationScheduler struct {
	cronEngine *cron.Cron
	service    app.DeactivationService
	logger     *logrus.Logger
	cronSpec   string
}

func NewReconciliationScheduler(
	service app.DeactivationService,
	logger *logrus.Logger,
	cronSpec string, // e.g., "0 6 * * *" (06:00 daily)
) *ReconciliationScheduler {
	return &ReconciliationScheduler{
		cronEngine: cron.New(cron.WithLocation(time.Local)), // Use server's local time for cron
		service:    service,
		logger:     logger,
		cronSpec:   cronSpec,
	}
}

func (s *ReconciliationScheduler) Start() error {
	_, err := s.cronEngine.AddFunc(s.cronSpec, func() {
		s.logger.Info("Cron job triggered for membership deactivation run")
		ctx, cancel := context.WithTimeout(context.Background(), jobTimeout)
		defer cancel()

		report, err := s.service.Run(ctx, time.Now())
		if err != nil {
			s.logger.WithError(err).Error("Scheduled membership deactivation run failed")
			return
		}
		s.logger.WithFields(logrus.Fields{
			"succeeded": len(report.Succeeded),
			"failed":    len(report.Failed),
		}).Info("Scheduled membership deactivation run finished")
	})
	if err != nil {
		return err
	}

	s.cronEngine.Start()
	s.logger.WithField("cron_spec", s.cronSpec).Info("Reconciliation scheduler started")
	return nil
}

func (s *ReconciliationScheduler) Stop() {
	s.logger.Info("Stopping reconciliation scheduler...")
	ctx := s.cronEngine.Stop() // Stops new runs, waits for a running job.
	<-ctx.Done()
	s.logger.Info("Reconciliation scheduler gracefully stopped")
}
