package model

// StatsSummary aggregates dashboard headline counts for a filter window.
// FailedAppointments is derived: appointments without a matching order.
type StatsSummary struct {
	AppointmentsCount  int64
	OrdersCount        int64
	FailedAppointments int64
	PaidOrders         int64
	FailedOrders       int64
}

// OfficeCount is a grouped appointment count for one office.
type OfficeCount struct {
	OfficeName string
	Count      int64
}

// UsernameCount is a grouped order count for one submitting username.
type UsernameCount struct {
	Username string
	Count    int64
}
