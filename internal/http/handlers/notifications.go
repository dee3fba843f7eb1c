package handlers

import (
	"net/http"

	"bloomnet-dispatch/internal/logx"
)

// NotificationHandler exposes the read-only notification stream and the
// aerial-delivery signal to the presentation layer.
type NotificationHandler struct {
	source notificationSource
	signal aerialSignal
	logger logx.Logger
}

// NewNotificationHandler wires the stream and the drone signal into HTTP handlers.
func NewNotificationHandler(source notificationSource, signal aerialSignal, base *Handlers) *NotificationHandler {
	return &NotificationHandler{source: source, signal: signal, logger: base.Logger}
}

// List handles GET /notifications, most recent first.
func (h *NotificationHandler) List(w http.ResponseWriter, r *http.Request) {
	recent := h.source.Recent()
	out := make([]notificationDTO, 0, len(recent))
	for _, n := range recent {
		out = append(out, toNotificationDTO(n))
	}
	writeJSON(h.logger, w, r, http.StatusOK, out)
}

// DroneStatus handles GET /drone and reports whether the UI should show
// the aerial-delivery interface.
func (h *NotificationHandler) DroneStatus(w http.ResponseWriter, r *http.Request) {
	writeJSON(h.logger, w, r, http.StatusOK, droneStatusDTO{
		ShowDroneInterface: h.signal.Active(),
	})
}
