package backend

import (
	"context"

	"room-booking-frontend/internal/entity"
)

// The backend owns every business rule: availability, pricing, persistence
// and authorization. These interfaces are the whole surface the front-end
// consumes from it.

type AuthAPI interface {
	Login(ctx context.Context, email, password string) (*entity.Session, error)
	Register(ctx context.Context, req *Registration) (*entity.Session, error)
}

type RoomAPI interface {
	ListRooms(ctx context.Context, token string) ([]*entity.Room, error)
	CreateRoom(ctx context.Context, token string, input *RoomInput) error
	UpdateRoom(ctx context.Context, token, roomID string, input *RoomInput) error
	DeleteRoom(ctx context.Context, token, roomID string) error
}

type BookingAPI interface {
	UserBookings(ctx context.Context, token string) ([]*entity.Booking, error)
	AllBookings(ctx context.Context, token string) ([]*entity.Booking, error)
	CreateBooking(ctx context.Context, token string, input *BookingInput) error
	CancelBooking(ctx context.Context, token, bookingID string) error
	UpdateBookingStatus(ctx context.Context, token, bookingID string, status entity.BookingStatus) error
}
