package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/passtrack/passboard/internal/server/http/dto"
)

// OrdersHandler serves the filtered order listing.
type OrdersHandler struct {
	facade OrderFacade
}

// NewOrdersHandler constructs OrdersHandler.
func NewOrdersHandler(facade OrderFacade) *OrdersHandler {
	return &OrdersHandler{facade: facade}
}

// List handles GET /api/orders.
func (h *OrdersHandler) List(c *gin.Context) {
	filter, err := parseFilter(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	page := parsePage(c)

	orders, total, err := h.facade.Orders(c.Request.Context(), filter, page)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch orders"})
		return
	}

	if page.Number <= 0 {
		page.Number = 1
	}
	if page.Size <= 0 {
		page.Size = 10
	}

	response := dto.OrdersResponse{
		Orders: make([]dto.OrderResponse, 0, len(orders)),
		Pagination: dto.Pagination{
			Page:       page.Number,
			PageSize:   page.Size,
			TotalCount: total,
			TotalPages: (total + int64(page.Size) - 1) / int64(page.Size),
		},
	}
	for _, o := range orders {
		response.Orders = append(response.Orders, toOrderResponse(o))
	}

	c.JSON(http.StatusOK, response)
}
