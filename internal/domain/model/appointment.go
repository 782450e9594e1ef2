package model

import "time"

// Appointment describes a captured scheduling event. Appointments are
// immutable: the dashboard only ever reads them.
type Appointment struct {
	ID            int64
	OfficeName    string
	AppointmentID int64
	CreatedAt     time.Time
	Username      string
}
