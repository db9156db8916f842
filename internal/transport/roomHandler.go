package transport

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"room-booking-frontend/internal/entity"
	"room-booking-frontend/internal/service"
	"room-booking-frontend/internal/session"
)

type RoomHandler struct {
	rooms service.RoomService
}

func NewRoomHandler(rooms service.RoomService) *RoomHandler {
	return &RoomHandler{rooms: rooms}
}

type homePage struct {
	page
	Rooms []*entity.Room
}

// Home renders the public room list. The collection is fetched on every
// visit and replaced wholesale; on failure the error renders exclusively.
func (h *RoomHandler) Home(c *gin.Context) {
	data := homePage{page: newPage(c)}

	rooms, err := h.rooms.ListRooms(c.Request.Context(), session.Current(c))
	if err != nil {
		data.Error = errorMessage(err)
		c.HTML(http.StatusOK, "home.html", data)
		return
	}

	data.Rooms = rooms
	c.HTML(http.StatusOK, "home.html", data)
}
