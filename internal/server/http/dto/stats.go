package dto

// StatsResponse carries the headline dashboard counts.
type StatsResponse struct {
	AppointmentsCount       int64 `json:"appointmentsCount"`
	SuccessfulOrdersCount   int64 `json:"successfulOrdersCount"`
	FailedAppointmentsCount int64 `json:"failedAppointmentsCount"`
	PaidOrdersCount         int64 `json:"paidOrdersCount"`
	FailedOrdersCount       int64 `json:"failedOrdersCount"`
}
