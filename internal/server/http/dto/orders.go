package dto

import "time"

// OrderResponse is the wire form of an order row.
type OrderResponse struct {
	ID            int64     `json:"id"`
	FullName      string    `json:"fullName"`
	OfficeName    string    `json:"officeName"`
	TraceNumber   string    `json:"traceNumber"`
	Date          time.Time `json:"date"`
	PaymentStatus string    `json:"paymentStatus"`
	Username      string    `json:"username,omitempty"`
}

// Pagination describes the page window of a listing response.
type Pagination struct {
	Page       int   `json:"page"`
	PageSize   int   `json:"pageSize"`
	TotalCount int64 `json:"totalCount"`
	TotalPages int64 `json:"totalPages"`
}

// OrdersResponse is the order listing payload.
type OrdersResponse struct {
	Orders     []OrderResponse `json:"orders"`
	Pagination Pagination      `json:"pagination"`
}
