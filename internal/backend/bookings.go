package backend

import (
	"context"

	"room-booking-frontend/internal/entity"
)

// BookingInput is the create-booking body. Dates travel as YYYY-MM-DD
// strings, the way the date inputs submit them; totalPrice is computed by
// the backend, never by the client.
type BookingInput struct {
	RoomID          string `json:"room"`
	CheckInDate     string `json:"checkInDate"`
	CheckOutDate    string `json:"checkOutDate"`
	Guests          int    `json:"guests"`
	SpecialRequests string `json:"specialRequests,omitempty"`
	GuestEmail      string `json:"guestEmail,omitempty"`
}

func (c *Client) UserBookings(ctx context.Context, token string) ([]*entity.Booking, error) {
	var bookings []*entity.Booking
	if err := c.call(ctx, "GET", "/api/bookings/user", nil, token, &bookings); err != nil {
		return nil, err
	}
	return bookings, nil
}

func (c *Client) AllBookings(ctx context.Context, token string) ([]*entity.Booking, error) {
	var bookings []*entity.Booking
	if err := c.call(ctx, "GET", "/api/bookings/all", nil, token, &bookings); err != nil {
		return nil, err
	}
	return bookings, nil
}

func (c *Client) CreateBooking(ctx context.Context, token string, input *BookingInput) error {
	return c.call(ctx, "POST", "/api/bookings", input, token, nil)
}

// CancelBooking is the owner-facing cancellation endpoint.
func (c *Client) CancelBooking(ctx context.Context, token, bookingID string) error {
	return c.call(ctx, "PUT", "/api/bookings/cancel/"+bookingID, nil, token, nil)
}

// UpdateBookingStatus is the admin transition endpoint (approve, reject,
// cancel).
func (c *Client) UpdateBookingStatus(ctx context.Context, token, bookingID string, status entity.BookingStatus) error {
	body := map[string]entity.BookingStatus{"status": status}
	return c.call(ctx, "PUT", "/api/bookings/"+bookingID+"/status", body, token, nil)
}
