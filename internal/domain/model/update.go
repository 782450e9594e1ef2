package model

// UpdateReport is the result of one update-detection pass. Latest rows are
// populated only when HasUpdates is true.
type UpdateReport struct {
	HasUpdates        bool
	AppointmentsCount int64
	OrdersCount       int64
	LatestAppointment *Appointment
	LatestOrder       *Order
}
