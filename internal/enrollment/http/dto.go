package http

import (
	"time"

	"github.com/campuskit/scheduling-backend/internal/enrollment"
)

type EnrollmentResponse struct {
	ID            string    `json:"id"`
	StudentID     string    `json:"student_id"`
	TheoryGroupID string    `json:"theory_group_id"`
	LabGroupID    *string   `json:"lab_group_id,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}

func NewEnrollmentResponse(e *enrollment.Enrollment) EnrollmentResponse {
	return EnrollmentResponse{
		ID:            e.ID,
		StudentID:     e.StudentID,
		TheoryGroupID: e.TheoryGroupID,
		LabGroupID:    e.LabGroupID,
		CreatedAt:     e.CreatedAt,
	}
}

type CreateEnrollmentRequest struct {
	StudentID     string `json:"student_id" binding:"required,uuid"`
	TheoryGroupID string `json:"theory_group_id" binding:"required,uuid"`
}

type AssignLabGroupRequest struct {
	StudentID  string `json:"student_id" binding:"required,uuid"`
	LabGroupID string `json:"lab_group_id" binding:"required,uuid"`
}

type WithdrawLabGroupRequest struct {
	StudentID string `json:"student_id" binding:"required,uuid"`
}

type BulkSelection struct {
	EnrollmentID string `json:"enrollment_id" binding:"required,uuid"`
	LabGroupID   string `json:"lab_group_id" binding:"required,uuid"`
}

type AssignLabGroupsBulkRequest struct {
	StudentID  string          `json:"student_id" binding:"required,uuid"`
	Selections []BulkSelection `json:"selections" binding:"required,min=1,dive"`
}
