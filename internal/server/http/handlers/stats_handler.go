package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/passtrack/passboard/internal/server/http/dto"
)

// StatsHandler serves aggregate dashboard counts.
type StatsHandler struct {
	facade StatsFacade
}

// NewStatsHandler constructs StatsHandler.
func NewStatsHandler(facade StatsFacade) *StatsHandler {
	return &StatsHandler{facade: facade}
}

// Summary handles GET /api/stats.
func (h *StatsHandler) Summary(c *gin.Context) {
	filter, err := parseFilter(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	summary, err := h.facade.Stats(c.Request.Context(), filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch statistics"})
		return
	}

	c.JSON(http.StatusOK, dto.StatsResponse{
		AppointmentsCount:       summary.AppointmentsCount,
		SuccessfulOrdersCount:   summary.OrdersCount,
		FailedAppointmentsCount: summary.FailedAppointments,
		PaidOrdersCount:         summary.PaidOrders,
		FailedOrdersCount:       summary.FailedOrders,
	})
}
