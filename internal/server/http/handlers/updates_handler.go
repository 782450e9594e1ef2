package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/passtrack/passboard/internal/server/http/dto"
)

// UpdatesHandler serves the polling endpoint.
type UpdatesHandler struct {
	facade UpdatesFacade
}

// NewUpdatesHandler constructs UpdatesHandler.
func NewUpdatesHandler(facade UpdatesFacade) *UpdatesHandler {
	return &UpdatesHandler{facade: facade}
}

// Poll handles GET /api/updates. A failure anywhere in the detection or
// stale-selection sequence yields a generic error with no partial data.
func (h *UpdatesHandler) Poll(c *gin.Context) {
	report, err := h.facade.PollUpdates(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to check for updates"})
		return
	}

	response := dto.UpdatesResponse{
		HasUpdates:        report.HasUpdates,
		AppointmentsCount: report.AppointmentsCount,
		OrdersCount:       report.OrdersCount,
	}
	if report.LatestAppointment != nil {
		appointment := toAppointmentResponse(*report.LatestAppointment)
		response.LatestAppointment = &appointment
	}
	if report.LatestOrder != nil {
		order := toOrderResponse(*report.LatestOrder)
		response.LatestOrder = &order
	}

	c.JSON(http.StatusOK, response)
}
