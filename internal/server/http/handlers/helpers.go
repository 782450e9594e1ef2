package handlers

import (
	"fmt"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/passtrack/passboard/internal/domain/model"
	"github.com/passtrack/passboard/internal/domain/repository"
	"github.com/passtrack/passboard/internal/server/http/dto"
)

const dateLayout = "2006-01-02"

// parseFilter extracts the shared date/username/search filter from query
// parameters. singleDate expands to that whole day and wins over a range.
func parseFilter(c *gin.Context) (repository.Filter, error) {
	f := repository.Filter{
		Username: c.Query("username"),
		Search:   c.Query("search"),
	}

	if single := c.Query("singleDate"); single != "" {
		day, err := time.Parse(dateLayout, single)
		if err != nil {
			return f, fmt.Errorf("invalid singleDate: %w", err)
		}
		from := day
		to := endOfDay(day)
		f.From = &from
		f.To = &to
		return f, nil
	}

	startParam := c.Query("startDate")
	endParam := c.Query("endDate")
	if startParam != "" && endParam != "" {
		start, err := time.Parse(dateLayout, startParam)
		if err != nil {
			return f, fmt.Errorf("invalid startDate: %w", err)
		}
		end, err := time.Parse(dateLayout, endParam)
		if err != nil {
			return f, fmt.Errorf("invalid endDate: %w", err)
		}
		to := endOfDay(end)
		f.From = &start
		f.To = &to
	}

	return f, nil
}

func endOfDay(day time.Time) time.Time {
	return day.Add(24*time.Hour - time.Nanosecond)
}

func parsePage(c *gin.Context) repository.Page {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	size, _ := strconv.Atoi(c.DefaultQuery("pageSize", "10"))
	return repository.Page{Number: page, Size: size}
}

func toOrderResponse(order model.Order) dto.OrderResponse {
	return dto.OrderResponse{
		ID:            order.ID,
		FullName:      order.FullName,
		OfficeName:    order.OfficeName,
		TraceNumber:   order.TraceNumber,
		Date:          order.CreatedAt,
		PaymentStatus: string(order.PaymentStatus),
		Username:      order.Username,
	}
}

func toAppointmentResponse(appointment model.Appointment) dto.AppointmentResponse {
	return dto.AppointmentResponse{
		ID:            appointment.ID,
		OfficeName:    appointment.OfficeName,
		AppointmentID: appointment.AppointmentID,
		Date:          appointment.CreatedAt,
		Username:      appointment.Username,
	}
}
