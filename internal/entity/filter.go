package entity

// StatusFilter is an ephemeral, per-view value; it narrows an already
// fetched collection and never triggers a re-fetch.
type StatusFilter string

const FilterAll StatusFilter = "all"

// ParseStatusFilter falls back to "all" for anything it does not recognize.
func ParseStatusFilter(raw string) StatusFilter {
	switch BookingStatus(raw) {
	case BookingStatusPending, BookingStatusConfirmed, BookingStatusRejected, BookingStatusCancelled:
		return StatusFilter(raw)
	default:
		return FilterAll
	}
}

// Apply returns the bookings matching the filter. FilterAll passes the
// collection through untouched.
func (f StatusFilter) Apply(bookings []*Booking) []*Booking {
	if f == FilterAll || f == "" {
		return bookings
	}
	filtered := make([]*Booking, 0, len(bookings))
	for _, b := range bookings {
		if b.Status == BookingStatus(f) {
			filtered = append(filtered, b)
		}
	}
	return filtered
}
