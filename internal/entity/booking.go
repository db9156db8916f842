package entity

import (
	"time"
)

type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "pending"
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusRejected  BookingStatus = "rejected"
	BookingStatusCancelled BookingStatus = "cancelled"
)

// statusTransitions is the booking lifecycle: pending may be confirmed,
// rejected or cancelled; confirmed may only be cancelled; rejected and
// cancelled are terminal.
var statusTransitions = map[BookingStatus][]BookingStatus{
	BookingStatusPending:   {BookingStatusConfirmed, BookingStatusRejected, BookingStatusCancelled},
	BookingStatusConfirmed: {BookingStatusCancelled},
	BookingStatusRejected:  {},
	BookingStatusCancelled: {},
}

func (s BookingStatus) Valid() bool {
	_, ok := statusTransitions[s]
	return ok
}

func (s BookingStatus) CanTransition(to BookingStatus) bool {
	for _, next := range statusTransitions[s] {
		if next == to {
			return true
		}
	}
	return false
}

func (s BookingStatus) Terminal() bool {
	return len(statusTransitions[s]) == 0
}

// RoomRef is the room projection embedded in a booking payload. The backend
// may omit it when the room was deleted.
type RoomRef struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// UserRef is the owning-user projection embedded in a booking payload.
type UserRef struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

// Booking is a read-only projection of a reservation held by the backend.
// Copies are replaced wholesale after every mutating action, never patched
// in place.
type Booking struct {
	ID              string        `json:"id"`
	Room            *RoomRef      `json:"room"`
	User            *UserRef      `json:"user"`
	GuestEmail      string        `json:"guestEmail,omitempty"`
	CheckInDate     time.Time     `json:"checkInDate"`
	CheckOutDate    time.Time     `json:"checkOutDate"`
	Guests          int           `json:"guests"`
	TotalPrice      float64       `json:"totalPrice"`
	SpecialRequests string        `json:"specialRequests,omitempty"`
	Status          BookingStatus `json:"status"`
	CreatedAt       time.Time     `json:"createdAt"`
}

// RoomName degrades to a placeholder when the referenced room is absent from
// the payload.
func (b *Booking) RoomName() string {
	if b.Room == nil || b.Room.Name == "" {
		return "Unknown Room"
	}
	return b.Room.Name
}

// BookedBy degrades to the guest email, then to a placeholder.
func (b *Booking) BookedBy() string {
	if b.User != nil && b.User.Email != "" {
		return b.User.Email
	}
	if b.GuestEmail != "" {
		return b.GuestEmail
	}
	return "Unknown User"
}

// OwnedBy reports whether the booking belongs to the given user id.
func (b *Booking) OwnedBy(userID string) bool {
	return b.User != nil && userID != "" && b.User.ID == userID
}
