package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/passtrack/passboard/internal/domain/repository"
	"github.com/passtrack/passboard/internal/server/http/dto"
)

// ChartsHandler serves grouped counts for dashboard charts and the
// username listing.
type ChartsHandler struct {
	facade ChartsFacade
}

// NewChartsHandler constructs ChartsHandler.
func NewChartsHandler(facade ChartsFacade) *ChartsHandler {
	return &ChartsHandler{facade: facade}
}

// AppointmentsByOffice handles GET /api/charts/appointments-by-office.
func (h *ChartsHandler) AppointmentsByOffice(c *gin.Context) {
	filter, err := parseFilter(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	counts, err := h.facade.AppointmentsByOffice(c.Request.Context(), filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch appointments by office"})
		return
	}

	response := make([]dto.OfficeCountResponse, 0, len(counts))
	for _, oc := range counts {
		response = append(response, dto.OfficeCountResponse{OfficeName: oc.OfficeName, Count: oc.Count})
	}
	c.JSON(http.StatusOK, response)
}

// OrdersByUsername handles GET /api/charts/orders-by-username.
func (h *ChartsHandler) OrdersByUsername(c *gin.Context) {
	filter, err := parseFilter(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	h.usernameCounts(c, filter)
}

// Usernames handles GET /api/users/usernames: all submitting usernames
// with their order counts, busiest first.
func (h *ChartsHandler) Usernames(c *gin.Context) {
	h.usernameCounts(c, repository.Filter{})
}

func (h *ChartsHandler) usernameCounts(c *gin.Context, filter repository.Filter) {
	counts, err := h.facade.OrdersByUsername(c.Request.Context(), filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch orders by username"})
		return
	}

	response := make([]dto.UsernameCountResponse, 0, len(counts))
	for _, uc := range counts {
		response = append(response, dto.UsernameCountResponse{Username: uc.Username, Count: uc.Count})
	}
	c.JSON(http.StatusOK, response)
}
