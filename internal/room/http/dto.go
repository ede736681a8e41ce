package http

import (
	"time"

	"github.com/campuskit/scheduling-backend/internal/room"
)

type RoomResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Building  string    `json:"building"`
	Capacity  int       `json:"capacity"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func NewRoomResponse(r *room.Room) RoomResponse {
	return RoomResponse{
		ID:        r.ID,
		Name:      r.Name,
		Building:  r.Building,
		Capacity:  r.Capacity,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}

type CreateRoomRequest struct {
	Name     string `json:"name" binding:"required"`
	Building string `json:"building"`
	Capacity int    `json:"capacity" binding:"omitempty,min=0"`
}

type UpdateRoomRequest struct {
	Name     *string `json:"name"`
	Building *string `json:"building"`
	Capacity *int    `json:"capacity" binding:"omitempty,min=0"`
}
