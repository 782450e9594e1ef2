package model

import "time"

// PaymentStatus describes the payment lifecycle of an order.
type PaymentStatus string

const (
	PaymentStatusPending PaymentStatus = "Pending"
	PaymentStatusPaid    PaymentStatus = "Paid"
	PaymentStatusTimeout PaymentStatus = "Timeout"
	PaymentStatusError   PaymentStatus = "Error"
)

// FailedPaymentStatuses enumerates statuses counted as unsuccessful payments.
var FailedPaymentStatuses = []PaymentStatus{
	PaymentStatusPending,
	PaymentStatusTimeout,
	PaymentStatusError,
}

// Order describes a payment order captured for a passport application.
// TraceNumber is the external system's unique application reference and is
// the key used when probing the status service.
type Order struct {
	ID            int64
	FullName      string
	OfficeName    string
	TraceNumber   string
	CreatedAt     time.Time
	PaymentStatus PaymentStatus
	Username      string
}
