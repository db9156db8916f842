package transport

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"room-booking-frontend/internal/backend"
	"room-booking-frontend/internal/entity"
	"room-booking-frontend/internal/service"
	"room-booking-frontend/internal/session"
)

// page is the state every template receives: the current session for the
// navbar and an inline error, empty unless a fetch or mutation failed.
type page struct {
	Session *entity.Session
	Error   string
}

func newPage(c *gin.Context) page {
	return page{Session: session.Current(c)}
}

// BookingView pairs one booking with the action set the viewer holds over
// it. Admin and owner cards are the same component with different
// capabilities.
type BookingView struct {
	*entity.Booking
	Caps service.Capabilities

	// Admin switches the card's controls to the admin transition endpoint.
	Admin bool
}

func bookingViews(sess *entity.Session, bookings []*entity.Booking) []BookingView {
	views := make([]BookingView, 0, len(bookings))
	for _, b := range bookings {
		views = append(views, BookingView{
			Booking: b,
			Caps:    service.CapabilitiesFor(sess, b),
			Admin:   sess.IsAdmin(),
		})
	}
	return views
}

// errorMessage translates a failure into the user-visible inline message.
// Backend-sent messages are surfaced verbatim.
func errorMessage(err error) string {
	var apiErr *backend.APIError
	switch {
	case errors.As(err, &apiErr):
		return apiErr.Message
	case errors.Is(err, backend.ErrUnreachable):
		return "Unable to reach the booking service. Please try again later."
	case errors.Is(err, backend.ErrMalformedResponse):
		return "The booking service returned an unexpected response."
	default:
		return err.Error()
	}
}

// sessionExpired handles the backend declaring the token invalid: the
// persisted session is destroyed and the user is sent back to login.
func sessionExpired(c *gin.Context, store *session.Store, err error) bool {
	if !backend.IsUnauthorized(err) {
		return false
	}
	store.Clear(c)
	c.Redirect(http.StatusFound, "/login")
	c.Abort()
	return true
}
