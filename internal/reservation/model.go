package reservation

import (
	"net/http"
	"time"

	"github.com/campuskit/scheduling-backend/internal/pkg/apperror"
	"github.com/campuskit/scheduling-backend/internal/semester"
	"github.com/campuskit/scheduling-backend/internal/timeslot"
)

var (
	ErrNotFound         = apperror.New(http.StatusNotFound, "reservation_not_found", "reservation not found")
	ErrRoomNotFound     = apperror.New(http.StatusNotFound, "room_not_found", "room not found")
	ErrPermissionDenied = apperror.New(http.StatusForbidden, "permission_denied", "reservation belongs to another professor")
	ErrInvalidDate      = apperror.New(http.StatusBadRequest, "invalid_date", "date must be YYYY-MM-DD")
	ErrDateDayMismatch  = apperror.New(http.StatusBadRequest, "date_day_mismatch", "date does not fall on the requested weekday")

	ErrQuotaExceeded                = apperror.New(http.StatusConflict, "quota_exceeded", "weekly reservation quota reached")
	ErrRoomFixedConflict            = apperror.New(http.StatusConflict, "room_fixed_conflict", "room is taken by a fixed schedule in this slot")
	ErrRoomReservationConflict      = apperror.New(http.StatusConflict, "room_reservation_conflict", "room is taken by another reservation in this slot")
	ErrProfessorFixedConflict       = apperror.New(http.StatusConflict, "professor_fixed_conflict", "professor teaches a fixed schedule in this slot")
	ErrProfessorReservationConflict = apperror.New(http.StatusConflict, "professor_reservation_conflict", "professor holds another reservation in this slot")

	ErrAlreadyCancelled = apperror.New(http.StatusConflict, "reservation_already_cancelled", "reservation is already cancelled")
	ErrAlreadyReserved  = apperror.New(http.StatusConflict, "reservation_already_reserved", "reservation is already active")
)

// Status is the reservation lifecycle state. FREE means cancelled; a FREE
// reservation never participates in overlap checks.
type Status string

const (
	StatusReserved Status = "RESERVED"
	StatusFree     Status = "FREE"
)

// Reservation is a one-off room booking made outside the fixed schedule.
// Never hard-deleted; cancel/confirm flip the status.
type Reservation struct {
	ID          string
	RoomID      string
	ProfessorID string
	Semester    semester.Semester
	Date        time.Time // midnight UTC of the booked day
	Slot        timeslot.TimeSlot
	Status      Status
	Notes       string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Cancel flips RESERVED -> FREE.
func (r *Reservation) Cancel() error {
	if r.Status == StatusFree {
		return ErrAlreadyCancelled
	}
	r.Status = StatusFree
	return nil
}

// Confirm flips FREE -> RESERVED. Callers must re-run the conflict checks
// before confirming; re-activation must not resurrect a slot that has since
// been taken.
func (r *Reservation) Confirm() error {
	if r.Status == StatusReserved {
		return ErrAlreadyReserved
	}
	r.Status = StatusReserved
	return nil
}
