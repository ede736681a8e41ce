package room

import (
	"net/http"
	"time"

	"github.com/campuskit/scheduling-backend/internal/pkg/apperror"
)

var (
	ErrNotFound  = apperror.New(http.StatusNotFound, "room_not_found", "room not found")
	ErrEmptyName = apperror.New(http.StatusBadRequest, "room_empty_name", "name cannot be empty")
	ErrNameTaken = apperror.New(http.StatusConflict, "room_name_taken", "a room with this name already exists")
)

// Room is a bookable classroom or laboratory.
type Room struct {
	ID        string
	Name      string
	Building  string
	Capacity  int
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Filter defines parameters for listing rooms.
type Filter struct {
	Building string
	Page     int
	PageSize int
}
