package transport

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"room-booking-frontend/internal/entity"
	"room-booking-frontend/internal/service"
	"room-booking-frontend/internal/session"
)

type BookingHandler struct {
	bookings service.BookingService
	rooms    service.RoomService
	store    *session.Store
}

func NewBookingHandler(bookings service.BookingService, rooms service.RoomService, store *session.Store) *BookingHandler {
	return &BookingHandler{bookings: bookings, rooms: rooms, store: store}
}

type bookingsPage struct {
	page
	Bookings []BookingView
}

type bookingFormPage struct {
	page
	Room *entity.Room
	Form service.BookingRequest
}

// MyBookings renders the signed-in user's bookings: exclusively the error,
// the empty-state message, or the collection.
func (h *BookingHandler) MyBookings(c *gin.Context) {
	sess := session.Current(c)
	data := bookingsPage{page: newPage(c)}

	bookings, err := h.bookings.UserBookings(c.Request.Context(), sess)
	if err != nil {
		if sessionExpired(c, h.store, err) {
			return
		}
		data.Error = errorMessage(err)
		c.HTML(http.StatusOK, "bookings.html", data)
		return
	}

	data.Bookings = bookingViews(sess, bookings)
	c.HTML(http.StatusOK, "bookings.html", data)
}

// BookingForm renders the create form for one room. The room is looked up
// in the freshly fetched list; a missing room degrades to a placeholder
// instead of failing the view.
func (h *BookingHandler) BookingForm(c *gin.Context) {
	roomID := c.Param("roomID")
	data := bookingFormPage{page: newPage(c), Form: service.BookingRequest{RoomID: roomID, Guests: 1}}

	rooms, err := h.rooms.ListRooms(c.Request.Context(), session.Current(c))
	if err != nil {
		if sessionExpired(c, h.store, err) {
			return
		}
		data.Error = errorMessage(err)
		c.HTML(http.StatusOK, "book.html", data)
		return
	}

	for _, room := range rooms {
		if room.ID == roomID {
			data.Room = room
			break
		}
	}
	if data.Room == nil {
		data.Room = &entity.Room{ID: roomID, Name: "Unknown Room"}
	}
	c.HTML(http.StatusOK, "book.html", data)
}

// CreateBooking submits the form and, only after the response arrives,
// moves on to the refreshed bookings list.
func (h *BookingHandler) CreateBooking(c *gin.Context) {
	sess := session.Current(c)

	guests, _ := strconv.Atoi(c.PostForm("guests"))
	req := service.BookingRequest{
		RoomID:          c.PostForm("room"),
		CheckInDate:     c.PostForm("checkInDate"),
		CheckOutDate:    c.PostForm("checkOutDate"),
		Guests:          guests,
		SpecialRequests: c.PostForm("specialRequests"),
	}

	if err := h.bookings.CreateBooking(c.Request.Context(), sess, &req); err != nil {
		if sessionExpired(c, h.store, err) {
			return
		}
		h.renderBookingFormError(c, req, err)
		return
	}
	c.Redirect(http.StatusSeeOther, "/my-bookings")
}

// CancelBooking requests the transition and re-fetches the owning list by
// redirect on success; on failure the list re-renders with the inline error.
func (h *BookingHandler) CancelBooking(c *gin.Context) {
	sess := session.Current(c)
	bookingID := c.Param("id")

	if err := h.bookings.Cancel(c.Request.Context(), sess, bookingID); err != nil {
		if sessionExpired(c, h.store, err) {
			return
		}
		h.renderBookingsError(c, sess, err)
		return
	}
	c.Redirect(http.StatusSeeOther, "/my-bookings")
}

func (h *BookingHandler) renderBookingFormError(c *gin.Context, req service.BookingRequest, cause error) {
	data := bookingFormPage{page: newPage(c), Form: req}
	data.Error = errorMessage(cause)
	data.Room = &entity.Room{ID: req.RoomID, Name: "Unknown Room"}

	if rooms, err := h.rooms.ListRooms(c.Request.Context(), session.Current(c)); err == nil {
		for _, room := range rooms {
			if room.ID == req.RoomID {
				data.Room = room
				break
			}
		}
	}
	c.HTML(http.StatusOK, "book.html", data)
}

func (h *BookingHandler) renderBookingsError(c *gin.Context, sess *entity.Session, cause error) {
	data := bookingsPage{page: newPage(c)}
	data.Error = errorMessage(cause)

	// keep the list on screen when it can still be fetched
	if bookings, err := h.bookings.UserBookings(c.Request.Context(), sess); err == nil {
		data.Bookings = bookingViews(sess, bookings)
	}
	c.HTML(http.StatusOK, "bookings.html", data)
}
