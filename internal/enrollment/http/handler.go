package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/campuskit/scheduling-backend/internal/enrollment"
	"github.com/campuskit/scheduling-backend/internal/pkg/response"
)

type Handler struct {
	service enrollment.Service
}

func NewHandler(service enrollment.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) Create(c *gin.Context) {
	var body CreateEnrollmentRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	e, err := h.service.Create(c.Request.Context(), enrollment.CreateRequest{
		StudentID:     body.StudentID,
		TheoryGroupID: body.TheoryGroupID,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, NewEnrollmentResponse(e))
}

func (h *Handler) Get(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid UUID"})
		return
	}

	e, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, NewEnrollmentResponse(e))
}

func (h *Handler) ListByStudent(c *gin.Context) {
	studentID := c.Query("student_id")
	if _, err := uuid.Parse(studentID); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "student_id query parameter must be a UUID"})
		return
	}

	enrollments, err := h.service.ListByStudent(c.Request.Context(), studentID)
	if err != nil {
		response.Error(c, err)
		return
	}

	items := make([]EnrollmentResponse, len(enrollments))
	for i, e := range enrollments {
		items[i] = NewEnrollmentResponse(e)
	}

	c.JSON(http.StatusOK, gin.H{"items": items})
}

func (h *Handler) AssignLabGroup(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid UUID"})
		return
	}

	var body AssignLabGroupRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	e, err := h.service.AssignLabGroup(c.Request.Context(), body.StudentID, enrollment.Selection{
		EnrollmentID: id,
		LabGroupID:   body.LabGroupID,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, NewEnrollmentResponse(e))
}

func (h *Handler) AssignLabGroupsBulk(c *gin.Context) {
	var body AssignLabGroupsBulkRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	sels := make([]enrollment.Selection, len(body.Selections))
	for i, sel := range body.Selections {
		sels[i] = enrollment.Selection{
			EnrollmentID: sel.EnrollmentID,
			LabGroupID:   sel.LabGroupID,
		}
	}

	if err := h.service.AssignLabGroupsBulk(c.Request.Context(), body.StudentID, sels); err != nil {
		response.Error(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *Handler) WithdrawFromLabGroup(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid UUID"})
		return
	}

	var body WithdrawLabGroupRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	e, err := h.service.WithdrawFromLabGroup(c.Request.Context(), body.StudentID, id)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, NewEnrollmentResponse(e))
}
