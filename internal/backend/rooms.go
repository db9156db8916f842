package backend

import (
	"context"

	"room-booking-frontend/internal/entity"
)

// RoomInput is the create/update body for the room endpoints.
type RoomInput struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Price       float64  `json:"price"`
	Capacity    int      `json:"capacity"`
	Images      []string `json:"images"`
	IsActive    bool     `json:"isActive"`
}

func (c *Client) ListRooms(ctx context.Context, token string) ([]*entity.Room, error) {
	var rooms []*entity.Room
	if err := c.call(ctx, "GET", "/api/rooms", nil, token, &rooms); err != nil {
		return nil, err
	}
	return rooms, nil
}

func (c *Client) CreateRoom(ctx context.Context, token string, input *RoomInput) error {
	return c.call(ctx, "POST", "/api/rooms", input, token, nil)
}

func (c *Client) UpdateRoom(ctx context.Context, token, roomID string, input *RoomInput) error {
	return c.call(ctx, "PUT", "/api/rooms/"+roomID, input, token, nil)
}

func (c *Client) DeleteRoom(ctx context.Context, token, roomID string) error {
	return c.call(ctx, "DELETE", "/api/rooms/"+roomID, nil, token, nil)
}
