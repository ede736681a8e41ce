package schedule

import (
	"net/http"
	"time"

	"github.com/campuskit/scheduling-backend/internal/pkg/apperror"
	"github.com/campuskit/scheduling-backend/internal/semester"
	"github.com/campuskit/scheduling-backend/internal/timeslot"
)

var (
	ErrNotFound         = apperror.New(http.StatusNotFound, "fixed_schedule_not_found", "fixed schedule not found")
	ErrInvalidOwnerKind = apperror.New(http.StatusBadRequest, "invalid_owner_kind", "owner kind must be theory or lab")
	ErrRoomConflict     = apperror.New(http.StatusConflict, "fixed_schedule_conflict", "room already has a fixed schedule in this slot")
	ErrRoomNotFound     = apperror.New(http.StatusNotFound, "room_not_found", "room not found")
)

// OwnerKind tags which kind of group owns a fixed schedule. Modeling the
// owner as kind+id makes "exactly one owner" hold structurally.
type OwnerKind string

const (
	OwnerTheory OwnerKind = "theory"
	OwnerLab    OwnerKind = "lab"
)

func (k OwnerKind) Valid() bool {
	return k == OwnerTheory || k == OwnerLab
}

// FixedSchedule is a recurring weekly class or lab block tied to a room for
// a whole semester. Immutable after creation; cancelled offerings delete it.
type FixedSchedule struct {
	ID        string
	RoomID    string
	Semester  semester.Semester
	Slot      timeslot.TimeSlot
	OwnerKind OwnerKind
	GroupID   string
	CreatedAt time.Time
}
