package httpapi

import (
	"encoding/json"
	"net/http"

	"membership_deactivation_bot/internal/domain/notify"
	"membership_deactivation_bot/internal/domain/order"

	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"
)

type orderHandler struct {
	notifier notify.Client
	validate *validator.Validate
	logger   *logrus.Logger
}

func newOrderHandler(notifier notify.Client, logger *logrus.Logger) *orderHandler {
	return &orderHandler{
		notifier: notifier,
		validate: validator.New(validator.WithRequiredStructEnabled()),
		logger:   logger,
	}
}

// notifyNewOrder validates the posted order and announces it on the
// notification channel. Unlike the deactivation run, a delivery failure here
// is the whole point of the request, so it surfaces as an error status.
func (h *orderHandler) notifyNewOrder(w http.ResponseWriter, r *http.Request) {
	var o order.Order
	if err := json.NewDecoder(r.Body).Decode(&o); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid order payload: " + err.Error()})
		return
	}
	if err := h.validate.Struct(&o); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid order payload: " + err.Error()})
		return
	}

	if err := h.notifier.Publish(r.Context(), o.Message()); err != nil {
		h.logger.WithError(err).Error("Failed to publish order announcement")
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "notification delivery failed"})
		return
	}

	h.logger.WithField("email", o.Email).Info("New order announced")
	w.WriteHeader(http.StatusOK)
}
