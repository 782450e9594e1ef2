package repository

import "time"

// Filter narrows record queries. Zero values mean "no constraint".
type Filter struct {
	From     *time.Time
	To       *time.Time
	Username string
	// Search matches a substring of the order's full name or trace number.
	// Appointments ignore it.
	Search string
}

// Page describes offset/limit pagination.
type Page struct {
	Number int
	Size   int
}

// Offset returns the row offset for the page.
func (p Page) Offset() int {
	if p.Number <= 1 {
		return 0
	}
	return (p.Number - 1) * p.Size
}
