package service

import (
	"room-booking-frontend/internal/entity"
)

// Capabilities is the action set one viewer holds over one booking. Views
// render controls from this set instead of re-deriving role checks inline.
type Capabilities struct {
	CanApprove bool
	CanReject  bool
	CanCancel  bool
}

func (c Capabilities) Any() bool {
	return c.CanApprove || c.CanReject || c.CanCancel
}

// CapabilitiesFor applies the lifecycle table plus the cancellation policy:
// an admin may cancel any pending or confirmed booking, a non-admin owner
// may cancel their own pending or confirmed booking.
func CapabilitiesFor(sess *entity.Session, b *entity.Booking) Capabilities {
	if !sess.Complete() {
		return Capabilities{}
	}

	caps := Capabilities{}
	if sess.IsAdmin() {
		caps.CanApprove = b.Status.CanTransition(entity.BookingStatusConfirmed)
		caps.CanReject = b.Status.CanTransition(entity.BookingStatusRejected)
		caps.CanCancel = b.Status.CanTransition(entity.BookingStatusCancelled)
		return caps
	}

	if b.OwnedBy(sess.ID) {
		caps.CanCancel = b.Status.CanTransition(entity.BookingStatusCancelled)
	}
	return caps
}
