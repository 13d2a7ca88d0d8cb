package httpapi

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"membership_deactivation_bot/internal/app"

	"github.com/sirupsen/logrus"
)

type runResponse struct {
	Message string `json:"message"`
}

type errorResponse struct {
	Error string `json:"error"`
}

type deactivationHandler struct {
	service app.DeactivationService
	logger  *logrus.Logger
}

// trigger runs one reconciliation pass and answers with the formatted report.
// Repository and webhook failures are folded into the response body rather
// than a distinct status: the caller is a scheduler, not a user, and the
// failure notice has already been published to the notification channel.
func (h *deactivationHandler) trigger(w http.ResponseWriter, r *http.Request) {
	h.logger.WithField("remote_addr", r.RemoteAddr).Info("Deactivation run triggered via HTTP")

	report, err := h.service.Run(r.Context(), time.Now())
	if err != nil {
		writeJSON(w, http.StatusOK, runResponse{
			Message: fmt.Sprintf("Membership deactivation run failed: %v", err),
		})
		return
	}
	writeJSON(w, http.StatusOK, runResponse{Message: report.Message()})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
