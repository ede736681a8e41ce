package http

import (
	"github.com/campuskit/scheduling-backend/internal/group"
)

type TheoryGroupResponse struct {
	ID          string `json:"id"`
	CourseID    string `json:"course_id"`
	ProfessorID string `json:"professor_id"`
	Semester    string `json:"semester"`
	Name        string `json:"name"`
}

func NewTheoryGroupResponse(g *group.TheoryGroup) TheoryGroupResponse {
	return TheoryGroupResponse{
		ID:          g.ID,
		CourseID:    g.CourseID,
		ProfessorID: g.ProfessorID,
		Semester:    g.Semester.String(),
		Name:        g.Name,
	}
}

type LabGroupResponse struct {
	ID          string `json:"id"`
	CourseID    string `json:"course_id"`
	ProfessorID string `json:"professor_id"`
	Semester    string `json:"semester"`
	Name        string `json:"name"`
	Capacity    int    `json:"capacity"`
	Enrolled    int    `json:"enrolled"`
	Full        bool   `json:"full"`
}

func NewLabGroupResponse(g *group.LabGroup) LabGroupResponse {
	return LabGroupResponse{
		ID:          g.ID,
		CourseID:    g.CourseID,
		ProfessorID: g.ProfessorID,
		Semester:    g.Semester.String(),
		Name:        g.Name,
		Capacity:    g.Capacity,
		Enrolled:    g.Enrolled,
		Full:        g.Full(),
	}
}

type CreateTheoryGroupRequest struct {
	CourseID    string `json:"course_id" binding:"required,uuid"`
	ProfessorID string `json:"professor_id" binding:"required,uuid"`
	Semester    string `json:"semester" binding:"required"`
	Name        string `json:"name" binding:"required"`
}

type CreateLabGroupRequest struct {
	CourseID    string `json:"course_id" binding:"required,uuid"`
	ProfessorID string `json:"professor_id" binding:"required,uuid"`
	Semester    string `json:"semester" binding:"required"`
	Name        string `json:"name" binding:"required"`
	Capacity    int    `json:"capacity" binding:"required,min=1"`
}
