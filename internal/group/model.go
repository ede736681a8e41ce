package group

import (
	"net/http"
	"time"

	"github.com/campuskit/scheduling-backend/internal/pkg/apperror"
	"github.com/campuskit/scheduling-backend/internal/semester"
)

var (
	ErrTheoryNotFound  = apperror.New(http.StatusNotFound, "theory_group_not_found", "theory group not found")
	ErrLabNotFound     = apperror.New(http.StatusNotFound, "lab_group_not_found", "lab group not found")
	ErrGroupFull       = apperror.New(http.StatusConflict, "group_full", "lab group has no free seats")
	ErrNoneEnrolled    = apperror.New(http.StatusConflict, "group_empty", "lab group has no enrolled students")
	ErrInvalidCapacity = apperror.New(http.StatusBadRequest, "invalid_capacity", "capacity must be positive")
	ErrEmptyName       = apperror.New(http.StatusBadRequest, "group_empty_name", "name cannot be empty")
)

// TheoryGroup is a lecture section of a course.
type TheoryGroup struct {
	ID          string
	CourseID    string
	ProfessorID string
	Semester    semester.Semester
	Name        string
	CreatedAt   time.Time
}

// LabGroup is a lab section with a hard seat limit. Invariant:
// 0 <= Enrolled <= Capacity, enforced here and re-checked at write time
// by the repository's conditional update.
type LabGroup struct {
	ID          string
	CourseID    string
	ProfessorID string
	Semester    semester.Semester
	Name        string
	Capacity    int
	Enrolled    int
	CreatedAt   time.Time
}

// Full reports whether the group has no free seats.
func (g *LabGroup) Full() bool {
	return g.Enrolled >= g.Capacity
}

// Enroll takes one seat, failing when the group is already full.
func (g *LabGroup) Enroll() error {
	if g.Full() {
		return ErrGroupFull
	}
	g.Enrolled++
	return nil
}

// Withdraw releases one seat.
func (g *LabGroup) Withdraw() error {
	if g.Enrolled <= 0 {
		return ErrNoneEnrolled
	}
	g.Enrolled--
	return nil
}
