package httpapi

import (
	"context"
	"net/http"
	"time"

	"membership_deactivation_bot/internal/app"
	"membership_deactivation_bot/internal/domain/notify"

	"github.com/go-chi/chi/v5"
	"github.com/sirupsen/logrus"
)

// Server exposes the authenticated endpoints: the deactivation run trigger
// and the order announcement hook. It is a thin wrapper over chi + stdlib
// http.Server. Each route carries its own shared secret.
type Server struct {
	addr string
	srv  *http.Server
}

func NewServer(addr, cronSecret, orderSecret string, service app.DeactivationService, notifier notify.Client, logger *logrus.Logger) *Server {
	r := chi.NewRouter()

	h := &deactivationHandler{service: service, logger: logger}
	// Scheduled callers vary between GET and POST, so accept both.
	r.With(RequireBearer(cronSecret)).Handle("/jobs/deactivate-memberships", http.HandlerFunc(h.trigger))

	oh := newOrderHandler(notifier, logger)
	r.With(RequireBearer(orderSecret)).Post("/orders", oh.notifyNewOrder)

	return &Server{
		addr: addr,
		srv: &http.Server{
			Addr:              addr,
			Handler:           r,
			ReadHeaderTimeout: 10 * time.Second,
		},
	}
}

// Run starts the server and blocks until it is shut down.
func (s *Server) Run() error {
	err := s.srv.ListenAndServe()
	if err == http.ErrServerClosed {
		return nil
	}
	return err
}

// Shutdown stops the server gracefully.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.srv.Shutdown(ctx)
}

// Addr returns the listening address.
func (s *Server) Addr() string { return s.addr }
