package model

// ProbeOutcome classifies a reply from the external payment status service.
type ProbeOutcome string

const (
	// ProbePaid means the service reported the payment as completed.
	ProbePaid ProbeOutcome = "PAID"
	// ProbeNotFound means the service does not know the application.
	ProbeNotFound ProbeOutcome = "NOT_FOUND"
	// ProbeUnresolved covers every other reply shape, transport failures
	// included. Orders stay Pending and are retried on the next pass.
	ProbeUnresolved ProbeOutcome = "UNRESOLVED"
)
