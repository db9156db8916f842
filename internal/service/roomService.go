package service

import (
	"context"
	"strings"

	"room-booking-frontend/internal/backend"
	"room-booking-frontend/internal/entity"
)

// RoomForm carries the admin create/update form fields. Empty image rows
// are dropped before the payload is built.
type RoomForm struct {
	Name        string
	Description string
	Price       float64
	Capacity    int
	Images      []string
	IsActive    bool
}

func (f *RoomForm) validate() error {
	f.Name = strings.TrimSpace(f.Name)
	if f.Name == "" || f.Price <= 0 {
		return entity.ErrMissingRoomFields
	}
	if f.Capacity < 1 {
		f.Capacity = 1
	}
	return nil
}

func (f *RoomForm) toInput() *backend.RoomInput {
	images := make([]string, 0, len(f.Images))
	for _, img := range f.Images {
		if img = strings.TrimSpace(img); img != "" {
			images = append(images, img)
		}
	}
	return &backend.RoomInput{
		Name:        f.Name,
		Description: f.Description,
		Price:       f.Price,
		Capacity:    f.Capacity,
		Images:      images,
		IsActive:    f.IsActive,
	}
}

type roomService struct {
	api backend.RoomAPI
}

func NewRoomService(api backend.RoomAPI) RoomService {
	return &roomService{api: api}
}

// ListRooms is public; a token is attached when a session is present so the
// backend can apply per-role visibility.
func (s *roomService) ListRooms(ctx context.Context, sess *entity.Session) ([]*entity.Room, error) {
	var token string
	if sess.Complete() {
		token = sess.Token
	}
	return s.api.ListRooms(ctx, token)
}

func (s *roomService) CreateRoom(ctx context.Context, sess *entity.Session, form *RoomForm) error {
	if !sess.IsAdmin() {
		return entity.ErrForbidden
	}
	if err := form.validate(); err != nil {
		return err
	}
	return s.api.CreateRoom(ctx, sess.Token, form.toInput())
}

func (s *roomService) UpdateRoom(ctx context.Context, sess *entity.Session, roomID string, form *RoomForm) error {
	if !sess.IsAdmin() {
		return entity.ErrForbidden
	}
	if roomID == "" {
		return entity.ErrMissingRoom
	}
	if err := form.validate(); err != nil {
		return err
	}
	return s.api.UpdateRoom(ctx, sess.Token, roomID, form.toInput())
}

func (s *roomService) DeleteRoom(ctx context.Context, sess *entity.Session, roomID string) error {
	if !sess.IsAdmin() {
		return entity.ErrForbidden
	}
	if roomID == "" {
		return entity.ErrMissingRoom
	}
	return s.api.DeleteRoom(ctx, sess.Token, roomID)
}
