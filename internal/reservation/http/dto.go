package http

import (
	"time"

	"github.com/campuskit/scheduling-backend/internal/reservation"
)

type ReservationResponse struct {
	ID          string    `json:"id"`
	RoomID      string    `json:"room_id"`
	ProfessorID string    `json:"professor_id"`
	Semester    string    `json:"semester"`
	Date        string    `json:"date"`
	Day         string    `json:"day"`
	Start       string    `json:"start"`
	End         string    `json:"end"`
	Status      string    `json:"status"`
	Notes       string    `json:"notes,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func NewReservationResponse(r *reservation.Reservation) ReservationResponse {
	return ReservationResponse{
		ID:          r.ID,
		RoomID:      r.RoomID,
		ProfessorID: r.ProfessorID,
		Semester:    r.Semester.String(),
		Date:        r.Date.Format("2006-01-02"),
		Day:         r.Slot.Day.String(),
		Start:       r.Slot.Start.String(),
		End:         r.Slot.End.String(),
		Status:      string(r.Status),
		Notes:       r.Notes,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
}

type CreateReservationRequest struct {
	RoomID      string `json:"room_id" binding:"required,uuid"`
	ProfessorID string `json:"professor_id" binding:"required,uuid"`
	Semester    string `json:"semester" binding:"required"`
	Date        string `json:"date" binding:"required"`
	Day         string `json:"day" binding:"required"`
	Start       string `json:"start" binding:"required"`
	End         string `json:"end" binding:"required"`
	Notes       string `json:"notes"`
}

type StatusChangeRequest struct {
	ProfessorID string `json:"professor_id" binding:"required,uuid"`
}
