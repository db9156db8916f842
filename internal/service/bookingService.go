package service

import (
	"context"
	"time"

	"room-booking-frontend/internal/backend"
	"room-booking-frontend/internal/entity"
)

const dateLayout = "2006-01-02"

// BookingRequest carries the booking form fields as submitted.
type BookingRequest struct {
	RoomID          string
	CheckInDate     string
	CheckOutDate    string
	Guests          int
	SpecialRequests string
}

func (r *BookingRequest) validate() error {
	if r.RoomID == "" {
		return entity.ErrMissingRoom
	}
	if r.CheckInDate == "" || r.CheckOutDate == "" {
		return entity.ErrMissingDates
	}
	checkIn, err := time.Parse(dateLayout, r.CheckInDate)
	if err != nil {
		return entity.ErrMissingDates
	}
	checkOut, err := time.Parse(dateLayout, r.CheckOutDate)
	if err != nil {
		return entity.ErrMissingDates
	}
	if !checkOut.After(checkIn) {
		return entity.ErrInvalidDateOrder
	}
	if r.Guests < 1 {
		return entity.ErrInvalidGuests
	}
	return nil
}

type bookingService struct {
	api backend.BookingAPI
}

func NewBookingService(api backend.BookingAPI) BookingService {
	return &bookingService{api: api}
}

func (s *bookingService) UserBookings(ctx context.Context, sess *entity.Session) ([]*entity.Booking, error) {
	if !sess.Complete() {
		return nil, entity.ErrSessionAbsent
	}
	return s.api.UserBookings(ctx, sess.Token)
}

func (s *bookingService) AllBookings(ctx context.Context, sess *entity.Session) ([]*entity.Booking, error) {
	if !sess.IsAdmin() {
		return nil, entity.ErrForbidden
	}
	return s.api.AllBookings(ctx, sess.Token)
}

// CreateBooking validates the form locally before any call is made; pricing
// and availability stay with the backend.
func (s *bookingService) CreateBooking(ctx context.Context, sess *entity.Session, req *BookingRequest) error {
	if !sess.Complete() {
		return entity.ErrSessionAbsent
	}
	if err := req.validate(); err != nil {
		return err
	}
	return s.api.CreateBooking(ctx, sess.Token, &backend.BookingInput{
		RoomID:          req.RoomID,
		CheckInDate:     req.CheckInDate,
		CheckOutDate:    req.CheckOutDate,
		Guests:          req.Guests,
		SpecialRequests: req.SpecialRequests,
	})
}

// Cancel is the owner-side cancellation. The backend verifies ownership and
// the status transition; success is never assumed before its response.
func (s *bookingService) Cancel(ctx context.Context, sess *entity.Session, bookingID string) error {
	if !sess.Complete() {
		return entity.ErrSessionAbsent
	}
	return s.api.CancelBooking(ctx, sess.Token, bookingID)
}

// UpdateStatus is the admin transition (approve, reject, cancel). Targets
// outside the lifecycle are refused before any call is made.
func (s *bookingService) UpdateStatus(ctx context.Context, sess *entity.Session, bookingID string, status entity.BookingStatus) error {
	if !sess.IsAdmin() {
		return entity.ErrForbidden
	}
	switch status {
	case entity.BookingStatusConfirmed, entity.BookingStatusRejected, entity.BookingStatusCancelled:
	default:
		return entity.ErrInvalidTransition
	}
	return s.api.UpdateBookingStatus(ctx, sess.Token, bookingID, status)
}
