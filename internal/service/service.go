package service

import (
	"context"

	"room-booking-frontend/internal/entity"
)

type AuthService interface {
	Login(ctx context.Context, email, password string) (*entity.Session, error)
	Register(ctx context.Context, req *RegisterRequest) (*entity.Session, error)
}

type RoomService interface {
	// Основные операции
	ListRooms(ctx context.Context, sess *entity.Session) ([]*entity.Room, error)

	// Administrative operations
	CreateRoom(ctx context.Context, sess *entity.Session, form *RoomForm) error
	UpdateRoom(ctx context.Context, sess *entity.Session, roomID string, form *RoomForm) error
	DeleteRoom(ctx context.Context, sess *entity.Session, roomID string) error
}

type BookingService interface {
	// Основные операции
	UserBookings(ctx context.Context, sess *entity.Session) ([]*entity.Booking, error)
	CreateBooking(ctx context.Context, sess *entity.Session, req *BookingRequest) error
	Cancel(ctx context.Context, sess *entity.Session, bookingID string) error

	// Administrative operations
	AllBookings(ctx context.Context, sess *entity.Session) ([]*entity.Booking, error)
	UpdateStatus(ctx context.Context, sess *entity.Session, bookingID string, status entity.BookingStatus) error
}
