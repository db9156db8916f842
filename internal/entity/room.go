package entity

// Room is owned by the backend; the front-end holds read-only or
// locally-edited copies for list and form rendering. Collections are
// replaced wholesale on every re-fetch.
type Room struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Price       float64  `json:"price"`
	Capacity    int      `json:"capacity"`
	Images      []string `json:"images"`
	IsActive    bool     `json:"isActive"`
}

func (r *Room) HasImages() bool {
	return len(r.Images) > 0
}

func (r *Room) Availability() string {
	if r.IsActive {
		return "Available"
	}
	return "Currently unavailable"
}
