package dto

import "time"

// AppointmentResponse is the wire form of an appointment row.
type AppointmentResponse struct {
	ID            int64     `json:"id"`
	OfficeName    string    `json:"officeName"`
	AppointmentID int64     `json:"appointmentId"`
	Date          time.Time `json:"date"`
	Username      string    `json:"username,omitempty"`
}

// UpdatesResponse is the polling endpoint payload. Latest rows are null
// unless updates were detected.
type UpdatesResponse struct {
	HasUpdates        bool                 `json:"hasUpdates"`
	AppointmentsCount int64                `json:"appointmentsCount"`
	OrdersCount       int64                `json:"ordersCount"`
	LatestAppointment *AppointmentResponse `json:"latestAppointment"`
	LatestOrder       *OrderResponse       `json:"latestOrder"`
}
