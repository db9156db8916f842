package transport

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"room-booking-frontend/internal/entity"
	"room-booking-frontend/internal/service"
	"room-booking-frontend/internal/session"
)

const (
	tabBookings = "bookings"
	tabRooms    = "rooms"
)

type AdminHandler struct {
	bookings service.BookingService
	rooms    service.RoomService
	store    *session.Store
}

func NewAdminHandler(bookings service.BookingService, rooms service.RoomService, store *session.Store) *AdminHandler {
	return &AdminHandler{bookings: bookings, rooms: rooms, store: store}
}

type adminPage struct {
	page
	Tab      string
	Filter   entity.StatusFilter
	Filters  []entity.StatusFilter
	Bookings []BookingView
	Rooms    []*entity.Room
}

var bookingFilters = []entity.StatusFilter{
	entity.FilterAll,
	entity.StatusFilter(entity.BookingStatusPending),
	entity.StatusFilter(entity.BookingStatusConfirmed),
	entity.StatusFilter(entity.BookingStatusRejected),
	entity.StatusFilter(entity.BookingStatusCancelled),
}

// Dashboard renders the bookings or rooms tab. Switching tabs re-fetches;
// switching the status filter only narrows the already-fetched collection.
func (h *AdminHandler) Dashboard(c *gin.Context) {
	data := h.loadDashboard(c, c.Query("tab"), nil)
	if c.IsAborted() {
		return
	}
	c.HTML(http.StatusOK, "admin.html", data)
}

// UpdateBookingStatus handles approve, reject and cancel. The re-fetch is
// the redirect, issued only after the backend responded.
func (h *AdminHandler) UpdateBookingStatus(c *gin.Context) {
	sess := session.Current(c)
	bookingID := c.Param("id")
	status := entity.BookingStatus(c.PostForm("status"))

	if err := h.bookings.UpdateStatus(c.Request.Context(), sess, bookingID, status); err != nil {
		if sessionExpired(c, h.store, err) {
			return
		}
		data := h.loadDashboard(c, tabBookings, err)
		if c.IsAborted() {
			return
		}
		c.HTML(http.StatusOK, "admin.html", data)
		return
	}
	c.Redirect(http.StatusSeeOther, "/admin?tab=bookings&status="+c.Query("status"))
}

type roomFormPage struct {
	page
	IsEdit bool
	RoomID string
	Form   service.RoomForm
}

func (h *AdminHandler) NewRoomForm(c *gin.Context) {
	c.HTML(http.StatusOK, "room_form.html", roomFormPage{page: newPage(c), Form: service.RoomForm{IsActive: true, Capacity: 1}})
}

func (h *AdminHandler) CreateRoom(c *gin.Context) {
	form := roomFormFrom(c)
	if err := h.rooms.CreateRoom(c.Request.Context(), session.Current(c), &form); err != nil {
		if sessionExpired(c, h.store, err) {
			return
		}
		data := roomFormPage{page: newPage(c), Form: form}
		data.Error = errorMessage(err)
		c.HTML(http.StatusOK, "room_form.html", data)
		return
	}
	c.Redirect(http.StatusSeeOther, "/admin?tab=rooms")
}

func (h *AdminHandler) EditRoomForm(c *gin.Context) {
	roomID := c.Param("id")
	data := roomFormPage{page: newPage(c), IsEdit: true, RoomID: roomID}

	rooms, err := h.rooms.ListRooms(c.Request.Context(), session.Current(c))
	if err != nil {
		if sessionExpired(c, h.store, err) {
			return
		}
		data.Error = errorMessage(err)
		c.HTML(http.StatusOK, "room_form.html", data)
		return
	}

	for _, room := range rooms {
		if room.ID == roomID {
			data.Form = service.RoomForm{
				Name:        room.Name,
				Description: room.Description,
				Price:       room.Price,
				Capacity:    room.Capacity,
				Images:      room.Images,
				IsActive:    room.IsActive,
			}
			break
		}
	}
	c.HTML(http.StatusOK, "room_form.html", data)
}

func (h *AdminHandler) UpdateRoom(c *gin.Context) {
	roomID := c.Param("id")
	form := roomFormFrom(c)

	if err := h.rooms.UpdateRoom(c.Request.Context(), session.Current(c), roomID, &form); err != nil {
		if sessionExpired(c, h.store, err) {
			return
		}
		data := roomFormPage{page: newPage(c), IsEdit: true, RoomID: roomID, Form: form}
		data.Error = errorMessage(err)
		c.HTML(http.StatusOK, "room_form.html", data)
		return
	}
	c.Redirect(http.StatusSeeOther, "/admin?tab=rooms")
}

func (h *AdminHandler) DeleteRoom(c *gin.Context) {
	roomID := c.Param("id")

	if err := h.rooms.DeleteRoom(c.Request.Context(), session.Current(c), roomID); err != nil {
		if sessionExpired(c, h.store, err) {
			return
		}
		data := h.loadDashboard(c, tabRooms, err)
		if c.IsAborted() {
			return
		}
		c.HTML(http.StatusOK, "admin.html", data)
		return
	}
	c.Redirect(http.StatusSeeOther, "/admin?tab=rooms")
}

// loadDashboard fetches the active tab's collection; cause, when set, is a
// mutation failure surfaced inline above the restored list.
func (h *AdminHandler) loadDashboard(c *gin.Context, tab string, cause error) adminPage {
	sess := session.Current(c)
	if tab != tabRooms {
		tab = tabBookings
	}

	data := adminPage{
		page:    newPage(c),
		Tab:     tab,
		Filter:  entity.ParseStatusFilter(c.Query("status")),
		Filters: bookingFilters,
	}
	if cause != nil {
		data.Error = errorMessage(cause)
	}

	switch tab {
	case tabRooms:
		rooms, err := h.rooms.ListRooms(c.Request.Context(), sess)
		if err != nil {
			if sessionExpired(c, h.store, err) {
				return data
			}
			data.Error = errorMessage(err)
			return data
		}
		data.Rooms = rooms
	default:
		bookings, err := h.bookings.AllBookings(c.Request.Context(), sess)
		if err != nil {
			if sessionExpired(c, h.store, err) {
				return data
			}
			data.Error = errorMessage(err)
			return data
		}
		data.Bookings = bookingViews(sess, data.Filter.Apply(bookings))
	}
	return data
}

func roomFormFrom(c *gin.Context) service.RoomForm {
	price, _ := strconv.ParseFloat(c.PostForm("price"), 64)
	capacity, _ := strconv.Atoi(c.PostForm("capacity"))
	return service.RoomForm{
		Name:        c.PostForm("name"),
		Description: c.PostForm("description"),
		Price:       price,
		Capacity:    capacity,
		Images:      c.PostFormArray("images"),
		IsActive:    c.PostForm("isActive") == "on" || c.PostForm("isActive") == "true",
	}
}
