package enrollment

import (
	"net/http"
	"time"

	"github.com/campuskit/scheduling-backend/internal/pkg/apperror"
)

var (
	ErrNotFound           = apperror.New(http.StatusNotFound, "enrollment_not_found", "enrollment not found")
	ErrForbidden          = apperror.New(http.StatusForbidden, "enrollment_forbidden", "enrollment belongs to another student")
	ErrLabAlreadyAssigned = apperror.New(http.StatusConflict, "lab_already_assigned", "enrollment already has a lab group")
	ErrNoLabAssigned      = apperror.New(http.StatusConflict, "no_lab_assigned", "enrollment has no lab group")
	ErrCourseMismatch     = apperror.New(http.StatusConflict, "course_mismatch", "lab group belongs to a different course")
	ErrDuplicate          = apperror.New(http.StatusConflict, "enrollment_duplicate", "student is already enrolled in this theory group")
)

// Enrollment ties a student to a theory group and, optionally, one lab group
// of the same course. References are id-only; related records are resolved
// through repositories, never through back-pointers.
type Enrollment struct {
	ID            string
	StudentID     string
	TheoryGroupID string
	LabGroupID    *string
	CreatedAt     time.Time
}

// AssignLab sets the lab reference. Overwriting an existing assignment is
// refused at the entity so every call site gets the same rule.
func (e *Enrollment) AssignLab(labGroupID string) error {
	if e.LabGroupID != nil {
		return ErrLabAlreadyAssigned
	}
	e.LabGroupID = &labGroupID
	return nil
}

// ClearLab removes the lab reference.
func (e *Enrollment) ClearLab() error {
	if e.LabGroupID == nil {
		return ErrNoLabAssigned
	}
	e.LabGroupID = nil
	return nil
}
